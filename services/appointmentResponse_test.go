package services

import (
	"testing"

	"AyurCare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingAppointment() *models.Appointment {
	patientID := "pat-1"
	return &models.Appointment{
		ID:              1,
		ClinicID:        "clinic-1",
		PatientID:       &patientID,
		AppointmentDate: "2026-09-10",
		AppointmentTime: "10:30",
		Duration:        30,
		Reason:          "Consultation",
		Status:          models.AppointmentPendingApproval,
	}
}

func TestApplyStaffResponseApprove(t *testing.T) {
	appointment := pendingAppointment()

	err := ApplyStaffResponse(appointment, StaffResponse{Action: ActionApprove})
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentScheduled, appointment.Status)
	assert.Equal(t, "2026-09-10", appointment.AppointmentDate)
	assert.Equal(t, "10:30", appointment.AppointmentTime)
}

func TestApplyStaffResponseDeclineWithReason(t *testing.T) {
	appointment := pendingAppointment()

	err := ApplyStaffResponse(appointment, StaffResponse{
		Action:        ActionDecline,
		DeclineReason: "Doctor unavailable",
	})
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentDeclined, appointment.Status)
	assert.Equal(t, "Doctor unavailable", appointment.DeclineReason)
}

func TestApplyStaffResponseDeclineDefaultReason(t *testing.T) {
	appointment := pendingAppointment()

	err := ApplyStaffResponse(appointment, StaffResponse{Action: ActionDecline})
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentDeclined, appointment.Status)
	assert.Equal(t, DefaultDeclineReason, appointment.DeclineReason)
}

func TestApplyStaffResponseSuggestAlternative(t *testing.T) {
	appointment := pendingAppointment()

	err := ApplyStaffResponse(appointment, StaffResponse{
		Action:          ActionSuggestAlternative,
		AlternativeDate: "2026-09-12",
		AlternativeTime: "02:00 PM",
		StaffMessage:    "Morning is fully booked",
	})
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentAlternativeProposed, appointment.Status)
	assert.Equal(t, "2026-09-12", appointment.ProposedDate)
	assert.Equal(t, "14:00", appointment.ProposedTime)
	assert.Equal(t, "Morning is fully booked", appointment.StaffMessage)

	// The requested slot stays untouched until the patient accepts.
	assert.Equal(t, "2026-09-10", appointment.AppointmentDate)
	assert.Equal(t, "10:30", appointment.AppointmentTime)
}

func TestApplyStaffResponseSuggestAlternativeBadDate(t *testing.T) {
	appointment := pendingAppointment()

	err := ApplyStaffResponse(appointment, StaffResponse{
		Action:          ActionSuggestAlternative,
		AlternativeDate: "12/09/2026",
		AlternativeTime: "14:00",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, models.AppointmentPendingApproval, appointment.Status)
	assert.Empty(t, appointment.ProposedDate)
}

func TestApplyStaffResponseUnknownAction(t *testing.T) {
	appointment := pendingAppointment()

	err := ApplyStaffResponse(appointment, StaffResponse{Action: "reschedule"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, models.AppointmentPendingApproval, appointment.Status)
}

func TestApplyStaffResponseWrongStatus(t *testing.T) {
	for _, status := range []string{
		models.AppointmentScheduled,
		models.AppointmentDeclined,
		models.AppointmentCompleted,
		models.AppointmentCancelled,
	} {
		appointment := pendingAppointment()
		appointment.Status = status

		err := ApplyStaffResponse(appointment, StaffResponse{Action: ActionApprove})
		assert.ErrorIs(t, err, ErrInvalidTransition, "status %s", status)
		assert.Equal(t, status, appointment.Status, "record must stay untouched")
	}
}

func TestApplyPatientResponseAccept(t *testing.T) {
	appointment := pendingAppointment()
	appointment.Status = models.AppointmentAlternativeProposed
	appointment.ProposedDate = "2026-09-12"
	appointment.ProposedTime = "14:00"
	appointment.StaffMessage = "Morning is fully booked"

	err := ApplyPatientResponse(appointment, ActionAccept)
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentScheduled, appointment.Status)
	assert.Equal(t, "2026-09-12", appointment.AppointmentDate)
	assert.Equal(t, "14:00", appointment.AppointmentTime)
	assert.Empty(t, appointment.ProposedDate)
	assert.Empty(t, appointment.ProposedTime)
	assert.Empty(t, appointment.StaffMessage)
}

func TestApplyPatientResponseDecline(t *testing.T) {
	appointment := pendingAppointment()
	appointment.Status = models.AppointmentAlternativeProposed
	appointment.ProposedDate = "2026-09-12"
	appointment.ProposedTime = "14:00"

	err := ApplyPatientResponse(appointment, ActionDecline)
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentDeclined, appointment.Status)
	// The original slot is kept for the record.
	assert.Equal(t, "2026-09-10", appointment.AppointmentDate)
	assert.Equal(t, "10:30", appointment.AppointmentTime)
	assert.Empty(t, appointment.ProposedDate)
	assert.Empty(t, appointment.ProposedTime)
}

func TestApplyPatientResponseWrongStatus(t *testing.T) {
	appointment := pendingAppointment()

	err := ApplyPatientResponse(appointment, ActionAccept)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, models.AppointmentPendingApproval, appointment.Status)
}

func TestApplyPatientResponseUnknownAction(t *testing.T) {
	appointment := pendingAppointment()
	appointment.Status = models.AppointmentAlternativeProposed

	err := ApplyPatientResponse(appointment, "maybe")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, models.AppointmentAlternativeProposed, appointment.Status)
}
