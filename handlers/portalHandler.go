package handlers

import (
	"AyurCare/middlewares"
	"AyurCare/models"
	"AyurCare/services"

	"github.com/gin-gonic/gin"
)

// PortalHandler serves the patient-facing portal routes. The patient
// identity comes from the token, never from the request body.
type PortalHandler struct {
	appointments  *services.AppointmentService
	bills         *services.BillingService
	prescriptions *services.PrescriptionService
	plans         *services.PlanService
}

func NewPortalHandler(
	appointments *services.AppointmentService,
	bills *services.BillingService,
	prescriptions *services.PrescriptionService,
	plans *services.PlanService,
) *PortalHandler {
	return &PortalHandler{
		appointments:  appointments,
		bills:         bills,
		prescriptions: prescriptions,
		plans:         plans,
	}
}

func portalIdentity(c *gin.Context) (clinicID, patientID string, ok bool) {
	clinicID, err := middlewares.ExtractClinicIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Clinic not resolved from token"})
		return "", "", false
	}
	patientID, err = middlewares.ExtractPatientIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(403, gin.H{"error": "Portal access requires a patient account"})
		return "", "", false
	}
	return clinicID, patientID, true
}

// RequestAppointment files an appointment request awaiting staff approval.
func (h *PortalHandler) RequestAppointment(c *gin.Context) {
	clinicID, patientID, ok := portalIdentity(c)
	if !ok {
		return
	}

	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	appointment.ClinicID = clinicID
	appointment.PatientID = &patientID
	appointment.GuestName = ""
	appointment.GuestPhone = ""
	appointment.GuestEmail = ""

	if err := h.appointments.Request(c.Request.Context(), &appointment); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(201, appointment)
}

func (h *PortalHandler) ListMyAppointments(c *gin.Context) {
	clinicID, patientID, ok := portalIdentity(c)
	if !ok {
		return
	}

	appointments, err := h.appointments.ListByPatient(c.Request.Context(), clinicID, patientID)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, appointments)
}

// RespondToProposal lets the patient accept or decline a proposed
// alternative date/time.
func (h *PortalHandler) RespondToProposal(c *gin.Context) {
	clinicID, patientID, ok := portalIdentity(c)
	if !ok {
		return
	}
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}

	var body struct {
		Action string `json:"action"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	appointment, err := h.appointments.RespondAsPatient(c.Request.Context(), clinicID, patientID, id, body.Action)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, appointment)
}

func (h *PortalHandler) ListMyBills(c *gin.Context) {
	clinicID, patientID, ok := portalIdentity(c)
	if !ok {
		return
	}

	bills, err := h.bills.ListByPatient(c.Request.Context(), clinicID, patientID)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, bills)
}

func (h *PortalHandler) ListMyPrescriptions(c *gin.Context) {
	clinicID, patientID, ok := portalIdentity(c)
	if !ok {
		return
	}

	prescriptions, err := h.prescriptions.ListByPatient(c.Request.Context(), clinicID, patientID)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, prescriptions)
}

func (h *PortalHandler) ListMyPlans(c *gin.Context) {
	clinicID, patientID, ok := portalIdentity(c)
	if !ok {
		return
	}

	plans, err := h.plans.ListPatientPlans(c.Request.Context(), clinicID, patientID)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, plans)
}
