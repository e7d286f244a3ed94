package repositories

import (
	"AyurCare/cache"
	"AyurCare/database"
	"AyurCare/models"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

const (
	AppointmentCacheExpiry = 24 * time.Hour
)

type AppointmentRepository struct {
	cache *cache.Cache
}

func NewAppointmentRepository(cache *cache.Cache) *AppointmentRepository {
	return &AppointmentRepository{cache: cache}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if err := database.DB.Create(appointment).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return r.invalidate(ctx, appointment.ClinicID, appointment.ID)
}

func (r *AppointmentRepository) GetByID(ctx context.Context, clinicID string, id uint) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.appointmentCacheKey(clinicID, id)
	var cached models.Appointment
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get appointment from cache: %v", err)
	}

	var appointment models.Appointment
	err := database.DB.
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, clinic_id, first_name, last_name, phone, email")
		}).
		First(&appointment, "id = ? AND clinic_id = ?", id, clinicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, appointment, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointment in cache: %v", err)
	}

	return &appointment, nil
}

func (r *AppointmentRepository) GetAll(ctx context.Context, clinicID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := fmt.Sprintf("appointments_cache:%s", clinicID)
	var cached []models.Appointment
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get appointments from cache: %v", err)
	}

	var appointments []models.Appointment
	err := database.DB.
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, clinic_id, first_name, last_name, phone, email")
		}).
		Where("clinic_id = ?", clinicID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all appointments: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, appointments, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointments in cache: %v", err)
	}

	return appointments, nil
}

// ListByPatient returns a patient's appointments, newest first. Portal
// listings bypass the cache so patients always see fresh statuses.
func (r *AppointmentRepository) ListByPatient(ctx context.Context, clinicID, patientID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := database.DB.
		Where("clinic_id = ? AND patient_id = ?", clinicID, patientID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list patient appointments: %w", err)
	}
	return appointments, nil
}

// Update persists the appointment as one write, serialized behind a redis
// lock so two concurrent responses on the same id cannot interleave.
func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	lockKey := fmt.Sprintf("appointment_lock:%s_%d", appointment.ClinicID, appointment.ID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Save(appointment).Error; err != nil {
			return fmt.Errorf("failed to update appointment: %w", err)
		}
		return r.invalidate(ctx, appointment.ClinicID, appointment.ID)
	})
}

// Mutate runs a read-modify-write on one appointment entirely inside the
// lock, so a concurrent responder cannot act on a status it read before this
// write committed. The record is re-read from the database, not the cache.
// Returns (nil, nil) when the appointment does not exist; an error from fn
// aborts without saving.
func (r *AppointmentRepository) Mutate(ctx context.Context, clinicID string, id uint, fn func(*models.Appointment) error) (*models.Appointment, error) {
	lockKey := fmt.Sprintf("appointment_lock:%s_%d", clinicID, id)
	var appointment *models.Appointment
	err := withLock(ctx, lockKey, func() error {
		var loaded models.Appointment
		err := database.DB.First(&loaded, "id = ? AND clinic_id = ?", id, clinicID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get appointment: %w", err)
		}
		if err := fn(&loaded); err != nil {
			return err
		}
		if err := database.DB.Save(&loaded).Error; err != nil {
			return fmt.Errorf("failed to update appointment: %w", err)
		}
		appointment = &loaded
		return r.invalidate(ctx, clinicID, id)
	})
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, clinicID string, id uint) error {
	lockKey := fmt.Sprintf("appointment_lock:%s_%d", clinicID, id)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Delete(&models.Appointment{}, "id = ? AND clinic_id = ?", id, clinicID).Error; err != nil {
			return fmt.Errorf("failed to delete appointment: %w", err)
		}
		return r.invalidate(ctx, clinicID, id)
	})
}

func (r *AppointmentRepository) invalidate(ctx context.Context, clinicID string, id uint) error {
	if err := r.cache.Delete(ctx, r.appointmentCacheKey(clinicID, id)); err != nil {
		return fmt.Errorf("failed to delete appointment cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, fmt.Sprintf("appointments_cache:%s", clinicID))
}

func (r *AppointmentRepository) appointmentCacheKey(clinicID string, id uint) string {
	return fmt.Sprintf("appointment_cache:%s_%d", clinicID, id)
}
