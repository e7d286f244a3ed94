package handlers

import (
	"AyurCare/middlewares"
	"AyurCare/models"
	"AyurCare/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

func parseAppointmentID(c *gin.Context) (uint, bool) {
	idStr := c.Param("appointment_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid appointment ID"})
		return 0, false
	}
	return uint(id), true
}

func clinicFromContext(c *gin.Context) (string, bool) {
	clinicID, err := middlewares.ExtractClinicIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Clinic not resolved from token"})
		return "", false
	}
	return clinicID, true
}

// CreateAppointment books an appointment directly as staff.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	appointment.ClinicID = clinicID

	if err := h.service.Create(c.Request.Context(), &appointment); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(201, appointment)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}

	appointment, err := h.service.GetByID(c.Request.Context(), clinicID, id)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	if appointment == nil {
		c.JSON(404, gin.H{"error": "Appointment not found"})
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	appointments, err := h.service.GetAll(c.Request.Context(), clinicID)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, appointments)
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}

	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	appointment.ID = id
	appointment.ClinicID = clinicID

	if err := h.service.Update(c.Request.Context(), &appointment); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, appointment)
}

// RespondToAppointment applies a staff approve/decline/suggest_alternative
// action to a pending appointment request.
func (h *AppointmentHandler) RespondToAppointment(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}

	var response services.StaffResponse
	if err := c.ShouldBindJSON(&response); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	appointment, err := h.service.RespondAsStaff(c.Request.Context(), clinicID, id, response)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), clinicID, id); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Appointment deleted"})
}
