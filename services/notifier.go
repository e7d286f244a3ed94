package services

import (
	"AyurCare/models"
	"AyurCare/utils"
	"fmt"
)

// Notifier delivers appointment outcome messages. Delivery is best effort;
// a failed notification never fails the transition that triggered it.
type Notifier interface {
	NotifyAppointment(appointment *models.Appointment, subject, body string)
}

// EmailNotifier sends appointment notifications over SMTP.
type EmailNotifier struct{}

func NewEmailNotifier() *EmailNotifier {
	return &EmailNotifier{}
}

func (n *EmailNotifier) NotifyAppointment(appointment *models.Appointment, subject, body string) {
	email := appointment.GuestEmail
	if appointment.Patient != nil && appointment.Patient.Email != "" {
		email = appointment.Patient.Email
	}
	utils.SendAppointmentEmail(email, subject, body)
}

// appointmentOutcomeMessage builds the notification for a completed
// transition, or returns false when no message is warranted.
func appointmentOutcomeMessage(appointment *models.Appointment) (subject, body string, ok bool) {
	when := fmt.Sprintf("%s at %s", appointment.AppointmentDate, appointment.AppointmentTime)
	switch appointment.Status {
	case models.AppointmentScheduled:
		return "Appointment confirmed", "Your appointment on " + when + " is confirmed.", true
	case models.AppointmentDeclined:
		body := "Your appointment request could not be accommodated."
		if appointment.DeclineReason != "" {
			body += " Reason: " + appointment.DeclineReason
		}
		return "Appointment declined", body, true
	case models.AppointmentAlternativeProposed:
		body := fmt.Sprintf("We propose %s at %s instead. Please accept or decline from the patient portal.",
			appointment.ProposedDate, appointment.ProposedTime)
		if appointment.StaffMessage != "" {
			body += "\n\n" + appointment.StaffMessage
		}
		return "Alternative appointment proposed", body, true
	}
	return "", "", false
}
