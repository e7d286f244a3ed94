package handlers

import (
	"AyurCare/middlewares"
	"AyurCare/models"
	"AyurCare/services"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	patient.ClinicID = clinicID

	if err := h.service.Create(c.Request.Context(), &patient); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(201, patient)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	patient, err := h.service.GetByID(c.Request.Context(), clinicID, c.Param("patient_id"))
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	if patient == nil {
		c.JSON(404, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(200, patient)
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	patients, err := h.service.GetAll(c.Request.Context(), clinicID)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, patients)
}

// SearchPatients matches the q term against names and phone numbers.
func (h *PatientHandler) SearchPatients(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	patients, err := h.service.Search(c.Request.Context(), clinicID, c.Query("q"))
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, patients)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	patient.ID = c.Param("patient_id")
	patient.ClinicID = clinicID

	if err := h.service.Update(c.Request.Context(), &patient); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, patient)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), clinicID, c.Param("patient_id")); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Patient deleted"})
}
