package services

import (
	"AyurCare/models"
	"AyurCare/utils"
	"context"
)

// AppointmentStore is the persistence collaborator of the response engine.
// Mutate runs the whole read-modify-write under the store's write lock;
// responses go through it so a concurrent responder always re-reads the
// committed status.
type AppointmentStore interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, clinicID string, id uint) (*models.Appointment, error)
	GetAll(ctx context.Context, clinicID string) ([]models.Appointment, error)
	ListByPatient(ctx context.Context, clinicID, patientID string) ([]models.Appointment, error)
	Update(ctx context.Context, appointment *models.Appointment) error
	Mutate(ctx context.Context, clinicID string, id uint, fn func(*models.Appointment) error) (*models.Appointment, error)
	Delete(ctx context.Context, clinicID string, id uint) error
}

type AppointmentService struct {
	store    AppointmentStore
	notifier Notifier
}

func NewAppointmentService(store AppointmentStore, notifier Notifier) *AppointmentService {
	return &AppointmentService{store: store, notifier: notifier}
}

// Create books an appointment directly as staff: it lands in SCHEDULED.
func (s *AppointmentService) Create(ctx context.Context, appointment *models.Appointment) error {
	if err := s.prepare(appointment); err != nil {
		return err
	}
	appointment.Status = models.AppointmentScheduled
	return s.store.Create(ctx, appointment)
}

// Request files a patient-originated appointment request: it awaits staff
// approval in PENDING_APPROVAL.
func (s *AppointmentService) Request(ctx context.Context, appointment *models.Appointment) error {
	if err := s.prepare(appointment); err != nil {
		return err
	}
	appointment.Status = models.AppointmentPendingApproval
	return s.store.Create(ctx, appointment)
}

func (s *AppointmentService) prepare(appointment *models.Appointment) error {
	if appointment.Duration == 0 {
		appointment.Duration = 30
	}
	normalized, err := utils.NormalizeClockTime(appointment.AppointmentTime)
	if err != nil {
		return NewValidationError("appointment_time", "must be a valid time of day")
	}
	appointment.AppointmentTime = normalized
	if err := utils.ValidateAppointmentRequest(*appointment); err != nil {
		return NewValidationError("appointment", err.Error())
	}
	return nil
}

func (s *AppointmentService) GetByID(ctx context.Context, clinicID string, id uint) (*models.Appointment, error) {
	return s.store.GetByID(ctx, clinicID, id)
}

func (s *AppointmentService) GetAll(ctx context.Context, clinicID string) ([]models.Appointment, error) {
	return s.store.GetAll(ctx, clinicID)
}

func (s *AppointmentService) ListByPatient(ctx context.Context, clinicID, patientID string) ([]models.Appointment, error) {
	return s.store.ListByPatient(ctx, clinicID, patientID)
}

// Update applies a direct staff edit (reschedule, cancel, mark complete or
// no-show). The approval workflow is not re-entered from here.
func (s *AppointmentService) Update(ctx context.Context, appointment *models.Appointment) error {
	normalized, err := utils.NormalizeClockTime(appointment.AppointmentTime)
	if err != nil {
		return NewValidationError("appointment_time", "must be a valid time of day")
	}
	appointment.AppointmentTime = normalized
	return s.store.Update(ctx, appointment)
}

func (s *AppointmentService) Delete(ctx context.Context, clinicID string, id uint) error {
	return s.store.Delete(ctx, clinicID, id)
}

// RespondAsStaff applies a staff approve/decline/suggest_alternative action
// to a pending appointment and persists the result. The transition runs
// inside the store's write lock, so the loser of a concurrent response
// re-reads the committed status and fails the precondition. On any error the
// stored record is untouched.
func (s *AppointmentService) RespondAsStaff(ctx context.Context, clinicID string, id uint, response StaffResponse) (*models.Appointment, error) {
	appointment, err := s.store.Mutate(ctx, clinicID, id, func(a *models.Appointment) error {
		return ApplyStaffResponse(a, response)
	})
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrNotFound
	}

	s.notify(appointment)
	return appointment, nil
}

// RespondAsPatient applies a portal accept/decline to an appointment with a
// proposed alternative. The appointment must belong to the calling patient;
// like the staff path, the transition runs inside the store's write lock.
func (s *AppointmentService) RespondAsPatient(ctx context.Context, clinicID, patientID string, id uint, action string) (*models.Appointment, error) {
	appointment, err := s.store.Mutate(ctx, clinicID, id, func(a *models.Appointment) error {
		if !a.HasRegisteredPatient() || *a.PatientID != patientID {
			return ErrNotFound
		}
		return ApplyPatientResponse(a, action)
	})
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrNotFound
	}

	s.notify(appointment)
	return appointment, nil
}

func (s *AppointmentService) notify(appointment *models.Appointment) {
	if s.notifier == nil {
		return
	}
	if subject, body, ok := appointmentOutcomeMessage(appointment); ok {
		s.notifier.NotifyAppointment(appointment, subject, body)
	}
}
