package handlers

import (
	"AyurCare/middlewares"
	"AyurCare/models"
	"AyurCare/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	service *services.PlanService
}

func NewPlanHandler(service *services.PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

func parseTemplateID(c *gin.Context) (uint, bool) {
	idStr := c.Param("template_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid template ID"})
		return 0, false
	}
	return uint(id), true
}

func (h *PlanHandler) CreateTemplate(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	var template models.PlanTemplate
	if err := c.ShouldBindJSON(&template); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	template.ClinicID = clinicID

	if err := h.service.CreateTemplate(c.Request.Context(), &template); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(201, template)
}

func (h *PlanHandler) GetTemplateByID(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}
	id, ok := parseTemplateID(c)
	if !ok {
		return
	}

	template, err := h.service.GetTemplateByID(c.Request.Context(), clinicID, id)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	if template == nil {
		c.JSON(404, gin.H{"error": "Template not found"})
		return
	}
	c.JSON(200, template)
}

// ListTemplates optionally filters by kind=DIET or kind=THERAPY.
func (h *PlanHandler) ListTemplates(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	templates, err := h.service.ListTemplates(c.Request.Context(), clinicID, c.Query("kind"))
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, templates)
}

func (h *PlanHandler) UpdateTemplate(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}
	id, ok := parseTemplateID(c)
	if !ok {
		return
	}

	var template models.PlanTemplate
	if err := c.ShouldBindJSON(&template); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	template.ID = id
	template.ClinicID = clinicID

	if err := h.service.UpdateTemplate(c.Request.Context(), &template); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, template)
}

func (h *PlanHandler) DeleteTemplate(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}
	id, ok := parseTemplateID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTemplate(c.Request.Context(), clinicID, id); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Template deleted"})
}

// GeneratePlan assigns a copy of a template to a patient.
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	var body struct {
		PatientID  string `json:"patient_id"`
		TemplateID uint   `json:"template_id"`
		StartDate  string `json:"start_date"`
		DoctorNote string `json:"doctor_note"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.service.GeneratePlan(c.Request.Context(), clinicID, body.PatientID, body.TemplateID, body.StartDate, body.DoctorNote)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(201, plan)
}

func (h *PlanHandler) GetPlansByPatient(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	plans, err := h.service.ListPatientPlans(c.Request.Context(), clinicID, c.Param("patient_id"))
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, plans)
}

func (h *PlanHandler) DeletePatientPlan(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	idStr := c.Param("plan_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid plan ID"})
		return
	}

	if err := h.service.DeletePatientPlan(c.Request.Context(), clinicID, uint(id)); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Plan deleted"})
}
