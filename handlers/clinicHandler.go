package handlers

import (
	"AyurCare/middlewares"
	"AyurCare/models"
	"AyurCare/services"

	"github.com/gin-gonic/gin"
)

type ClinicHandler struct {
	service *services.ClinicService
}

func NewClinicHandler(service *services.ClinicService) *ClinicHandler {
	return &ClinicHandler{service: service}
}

func (h *ClinicHandler) CreateClinic(c *gin.Context) {
	var clinic models.Clinic
	if err := c.ShouldBindJSON(&clinic); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Create(c.Request.Context(), &clinic); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(201, clinic)
}

// GetMyClinic returns the caller's own clinic.
func (h *ClinicHandler) GetMyClinic(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	clinic, err := h.service.GetByID(c.Request.Context(), clinicID)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	if clinic == nil {
		c.JSON(404, gin.H{"error": "Clinic not found"})
		return
	}
	c.JSON(200, clinic)
}

// UpdateMyClinic edits the caller's own clinic profile.
func (h *ClinicHandler) UpdateMyClinic(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	var clinic models.Clinic
	if err := c.ShouldBindJSON(&clinic); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	clinic.ID = clinicID

	if err := h.service.Update(c.Request.Context(), &clinic); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, clinic)
}
