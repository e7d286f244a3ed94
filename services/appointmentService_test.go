package services

import (
	"context"
	"testing"

	"AyurCare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAppointmentStore struct {
	mock.Mock
}

func (m *MockAppointmentStore) Create(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentStore) GetByID(ctx context.Context, clinicID string, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, clinicID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentStore) GetAll(ctx context.Context, clinicID string) ([]models.Appointment, error) {
	args := m.Called(ctx, clinicID)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentStore) ListByPatient(ctx context.Context, clinicID, patientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, clinicID, patientID)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentStore) Update(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

// Mutate mirrors the repository contract: the callback runs against the
// stored record and an error from it aborts the write. The mock returns the
// same record to every caller, so back-to-back responders see each other's
// committed status exactly as they would behind the real lock.
func (m *MockAppointmentStore) Mutate(ctx context.Context, clinicID string, id uint, fn func(*models.Appointment) error) (*models.Appointment, error) {
	args := m.Called(ctx, clinicID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	appointment := args.Get(0).(*models.Appointment)
	if err := fn(appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (m *MockAppointmentStore) Delete(ctx context.Context, clinicID string, id uint) error {
	args := m.Called(ctx, clinicID, id)
	return args.Error(0)
}

type recordingNotifier struct {
	subjects []string
}

func (n *recordingNotifier) NotifyAppointment(appointment *models.Appointment, subject, body string) {
	n.subjects = append(n.subjects, subject)
}

func TestAppointmentServiceCreateSchedulesDirectly(t *testing.T) {
	store := new(MockAppointmentStore)
	service := NewAppointmentService(store, nil)

	patientID := "pat-1"
	appointment := &models.Appointment{
		ClinicID:        "clinic-1",
		PatientID:       &patientID,
		AppointmentDate: "2026-09-10",
		AppointmentTime: "10:30 AM",
		Reason:          "Consultation",
	}

	store.On("Create", mock.Anything, appointment).Return(nil)

	err := service.Create(context.Background(), appointment)
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentScheduled, appointment.Status)
	assert.Equal(t, "10:30", appointment.AppointmentTime)
	assert.Equal(t, 30, appointment.Duration)
	store.AssertExpectations(t)
}

func TestAppointmentServiceRequestAwaitsApproval(t *testing.T) {
	store := new(MockAppointmentStore)
	service := NewAppointmentService(store, nil)

	patientID := "pat-1"
	appointment := &models.Appointment{
		ClinicID:        "clinic-1",
		PatientID:       &patientID,
		AppointmentDate: "2026-09-10",
		AppointmentTime: "15:00",
		Reason:          "Follow-up",
	}

	store.On("Create", mock.Anything, appointment).Return(nil)

	err := service.Request(context.Background(), appointment)
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentPendingApproval, appointment.Status)
	store.AssertExpectations(t)
}

func TestAppointmentServiceRequestRejectsBadTime(t *testing.T) {
	store := new(MockAppointmentStore)
	service := NewAppointmentService(store, nil)

	patientID := "pat-1"
	appointment := &models.Appointment{
		ClinicID:        "clinic-1",
		PatientID:       &patientID,
		AppointmentDate: "2026-09-10",
		AppointmentTime: "25:99",
		Reason:          "Consultation",
	}

	err := service.Request(context.Background(), appointment)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAppointmentServiceRejectsBothPatientAndGuest(t *testing.T) {
	store := new(MockAppointmentStore)
	service := NewAppointmentService(store, nil)

	patientID := "pat-1"
	appointment := &models.Appointment{
		ClinicID:        "clinic-1",
		PatientID:       &patientID,
		GuestName:       "Walk-in visitor",
		AppointmentDate: "2026-09-10",
		AppointmentTime: "10:30",
		Reason:          "Consultation",
	}

	err := service.Request(context.Background(), appointment)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAppointmentServiceRejectsNoSubject(t *testing.T) {
	store := new(MockAppointmentStore)
	service := NewAppointmentService(store, nil)

	appointment := &models.Appointment{
		ClinicID:        "clinic-1",
		AppointmentDate: "2026-09-10",
		AppointmentTime: "10:30",
		Reason:          "Consultation",
	}

	err := service.Create(context.Background(), appointment)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAppointmentServiceAcceptsGuestSubject(t *testing.T) {
	store := new(MockAppointmentStore)
	service := NewAppointmentService(store, nil)

	appointment := &models.Appointment{
		ClinicID:        "clinic-1",
		GuestName:       "Walk-in visitor",
		GuestPhone:      "9876543210",
		AppointmentDate: "2026-09-10",
		AppointmentTime: "10:30",
		Reason:          "Consultation",
	}
	store.On("Create", mock.Anything, appointment).Return(nil)

	err := service.Create(context.Background(), appointment)
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestAppointmentServiceRespondAsStaffApproves(t *testing.T) {
	store := new(MockAppointmentStore)
	notifier := &recordingNotifier{}
	service := NewAppointmentService(store, notifier)

	appointment := pendingAppointment()
	appointment.GuestEmail = "guest@example.com"

	store.On("Mutate", mock.Anything, "clinic-1", uint(1)).Return(appointment, nil)

	updated, err := service.RespondAsStaff(context.Background(), "clinic-1", 1, StaffResponse{Action: ActionApprove})
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentScheduled, updated.Status)
	assert.Len(t, notifier.subjects, 1)
	store.AssertExpectations(t)
}

func TestAppointmentServiceRespondAsStaffNotFound(t *testing.T) {
	store := new(MockAppointmentStore)
	service := NewAppointmentService(store, nil)

	store.On("Mutate", mock.Anything, "clinic-1", uint(9)).Return(nil, nil)

	_, err := service.RespondAsStaff(context.Background(), "clinic-1", 9, StaffResponse{Action: ActionApprove})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppointmentServiceRespondAsStaffIllegalTransitionDoesNotPersist(t *testing.T) {
	store := new(MockAppointmentStore)
	service := NewAppointmentService(store, nil)

	appointment := pendingAppointment()
	appointment.Status = models.AppointmentScheduled

	store.On("Mutate", mock.Anything, "clinic-1", uint(1)).Return(appointment, nil)

	_, err := service.RespondAsStaff(context.Background(), "clinic-1", 1, StaffResponse{Action: ActionDecline})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, models.AppointmentScheduled, appointment.Status)
}

// Two responders acting on the same pending request: only the first wins.
// The second re-reads the committed status inside the write lock and fails
// the precondition instead of silently overwriting the first response.
func TestAppointmentServiceSecondResponderGetsConflict(t *testing.T) {
	store := new(MockAppointmentStore)
	service := NewAppointmentService(store, nil)

	appointment := pendingAppointment()
	store.On("Mutate", mock.Anything, "clinic-1", uint(1)).Return(appointment, nil)

	first, err := service.RespondAsStaff(context.Background(), "clinic-1", 1, StaffResponse{Action: ActionApprove})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentScheduled, first.Status)

	_, err = service.RespondAsStaff(context.Background(), "clinic-1", 1, StaffResponse{Action: ActionDecline})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// The first response stands; the decline never touched the record.
	assert.Equal(t, models.AppointmentScheduled, appointment.Status)
	assert.Empty(t, appointment.DeclineReason)
}

func TestAppointmentServiceRespondAsPatientAccept(t *testing.T) {
	store := new(MockAppointmentStore)
	service := NewAppointmentService(store, nil)

	appointment := pendingAppointment()
	appointment.Status = models.AppointmentAlternativeProposed
	appointment.ProposedDate = "2026-09-12"
	appointment.ProposedTime = "14:00"

	store.On("Mutate", mock.Anything, "clinic-1", uint(1)).Return(appointment, nil)

	updated, err := service.RespondAsPatient(context.Background(), "clinic-1", "pat-1", 1, ActionAccept)
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentScheduled, updated.Status)
	assert.Equal(t, "2026-09-12", updated.AppointmentDate)
	store.AssertExpectations(t)
}

func TestAppointmentServiceRespondAsPatientForeignAppointment(t *testing.T) {
	store := new(MockAppointmentStore)
	service := NewAppointmentService(store, nil)

	appointment := pendingAppointment()
	appointment.Status = models.AppointmentAlternativeProposed

	store.On("Mutate", mock.Anything, "clinic-1", uint(1)).Return(appointment, nil)

	// Someone else's appointment reads as not found, not as forbidden.
	_, err := service.RespondAsPatient(context.Background(), "clinic-1", "pat-2", 1, ActionAccept)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, models.AppointmentAlternativeProposed, appointment.Status)
}
