package services

import (
	"AyurCare/models"
	"AyurCare/utils"
)

// Staff and patient response actions.
const (
	ActionApprove            = "approve"
	ActionDecline            = "decline"
	ActionSuggestAlternative = "suggest_alternative"
	ActionAccept             = "accept"
)

// DefaultDeclineReason is stored when staff decline without giving a reason.
const DefaultDeclineReason = "Schedule conflict"

// StaffResponse is a staff action on a PENDING_APPROVAL appointment.
type StaffResponse struct {
	Action          string `json:"action"`
	DeclineReason   string `json:"decline_reason"`
	AlternativeDate string `json:"alternative_date"`
	AlternativeTime string `json:"alternative_time"`
	StaffMessage    string `json:"staff_message"`
}

// ApplyStaffResponse applies a staff action to the appointment in place.
// The appointment is only mutated when the transition is legal and the
// request is valid; on any error it is left untouched.
func ApplyStaffResponse(appointment *models.Appointment, response StaffResponse) error {
	switch response.Action {
	case ActionApprove, ActionDecline, ActionSuggestAlternative:
	default:
		return NewValidationError("action", "must be approve, decline or suggest_alternative")
	}

	if appointment.Status != models.AppointmentPendingApproval {
		return ErrInvalidTransition
	}

	switch response.Action {
	case ActionApprove:
		// Date and time stay as requested.
		appointment.Status = models.AppointmentScheduled

	case ActionDecline:
		reason := response.DeclineReason
		if reason == "" {
			reason = DefaultDeclineReason
		}
		appointment.Status = models.AppointmentDeclined
		appointment.DeclineReason = reason

	case ActionSuggestAlternative:
		if !utils.ValidCalendarDate(response.AlternativeDate) {
			return NewValidationError("alternative_date", "must be a YYYY-MM-DD date")
		}
		normalized, err := utils.NormalizeClockTime(response.AlternativeTime)
		if err != nil {
			return NewValidationError("alternative_time", "must be a valid time of day")
		}
		// Original date/time stay untouched until the patient accepts.
		appointment.Status = models.AppointmentAlternativeProposed
		appointment.ProposedDate = response.AlternativeDate
		appointment.ProposedTime = normalized
		appointment.StaffMessage = response.StaffMessage
	}
	return nil
}

// ApplyPatientResponse applies a patient accept/decline to an appointment
// carrying an alternative proposal, in place. Accept adopts the proposed
// date/time; decline keeps the original ones. Either way the proposal
// fields are cleared.
func ApplyPatientResponse(appointment *models.Appointment, action string) error {
	if action != ActionAccept && action != ActionDecline {
		return NewValidationError("action", "must be accept or decline")
	}

	if appointment.Status != models.AppointmentAlternativeProposed {
		return ErrInvalidTransition
	}

	if action == ActionAccept {
		appointment.AppointmentDate = appointment.ProposedDate
		appointment.AppointmentTime = appointment.ProposedTime
		appointment.Status = models.AppointmentScheduled
	} else {
		appointment.Status = models.AppointmentDeclined
	}

	appointment.ProposedDate = ""
	appointment.ProposedTime = ""
	appointment.StaffMessage = ""
	return nil
}
