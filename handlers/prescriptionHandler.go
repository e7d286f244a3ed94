package handlers

import (
	"AyurCare/middlewares"
	"AyurCare/models"
	"AyurCare/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PrescriptionHandler struct {
	service *services.PrescriptionService
}

func NewPrescriptionHandler(service *services.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{service: service}
}

func parsePrescriptionID(c *gin.Context) (uint, bool) {
	idStr := c.Param("prescription_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid prescription ID"})
		return 0, false
	}
	return uint(id), true
}

func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}
	userIDStr, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "User not resolved from token"})
		return
	}
	doctorID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		c.JSON(401, gin.H{"error": "User not resolved from token"})
		return
	}

	var prescription models.Prescription
	if err := c.ShouldBindJSON(&prescription); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	prescription.ClinicID = clinicID
	prescription.DoctorID = doctorID

	if err := h.service.Create(c.Request.Context(), &prescription); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(201, prescription)
}

func (h *PrescriptionHandler) GetPrescriptionByID(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}
	id, ok := parsePrescriptionID(c)
	if !ok {
		return
	}

	prescription, err := h.service.GetByID(c.Request.Context(), clinicID, id)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	if prescription == nil {
		c.JSON(404, gin.H{"error": "Prescription not found"})
		return
	}
	c.JSON(200, prescription)
}

func (h *PrescriptionHandler) GetPrescriptionsByPatient(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	prescriptions, err := h.service.ListByPatient(c.Request.Context(), clinicID, c.Param("patient_id"))
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, prescriptions)
}

func (h *PrescriptionHandler) DeletePrescription(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}
	id, ok := parsePrescriptionID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), clinicID, id); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Prescription deleted"})
}
