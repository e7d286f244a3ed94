package utils

import (
	"AyurCare/models"
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation errors
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNotComplex = errors.New("password must include at least one uppercase letter, one lowercase letter, one digit, and one special character")
)

// ValidateUserData validates user data using ozzo-validation.
func ValidateUserData(user models.User) error {
	return validation.ValidateStruct(&user,
		validation.Field(&user.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&user.Email, validation.Required, is.Email),
		validation.Field(&user.ClinicID, validation.Required),
		validation.Field(&user.Password, validation.Required.Error("password cannot be blank"), validation.By(validatePassword)),
	)
}

// ValidatePatientData validates a patient record before persisting.
func ValidatePatientData(patient models.Patient) error {
	return validation.ValidateStruct(&patient,
		validation.Field(&patient.FirstName, validation.Required),
		validation.Field(&patient.LastName, validation.Required),
		validation.Field(&patient.Sex, validation.Required, validation.In("Male", "Female", "Other")),
		validation.Field(&patient.DateOfBirth, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&patient.Email, is.Email),
		validation.Field(&patient.DoshaType, validation.In(
			models.DoshaVata, models.DoshaPitta, models.DoshaKapha,
			models.DoshaVataPitta, models.DoshaPittaKapha, models.DoshaVataKapha,
			models.DoshaTridosha, "")),
	)
}

// ValidateAppointmentRequest enforces the subject invariant: exactly one of
// a registered patient reference or inline guest identity.
func ValidateAppointmentRequest(appointment models.Appointment) error {
	registered := appointment.HasRegisteredPatient()
	guest := appointment.GuestName != "" || appointment.GuestPhone != "" || appointment.GuestEmail != ""
	if registered && guest {
		return errors.New("appointment cannot reference both a registered patient and guest details")
	}
	if !registered && appointment.GuestName == "" {
		return errors.New("appointment requires a patient reference or a guest name")
	}

	return validation.ValidateStruct(&appointment,
		validation.Field(&appointment.Reason, validation.Required),
		validation.Field(&appointment.AppointmentDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&appointment.AppointmentTime, validation.Required),
		validation.Field(&appointment.Duration, validation.Min(5), validation.Max(480)),
		validation.Field(&appointment.GuestEmail, is.Email),
	)
}

// ValidateMedicineData validates a pharmacy inventory record.
func ValidateMedicineData(medicine models.Medicine) error {
	return validation.ValidateStruct(&medicine,
		validation.Field(&medicine.Name, validation.Required),
		validation.Field(&medicine.Unit, validation.Required),
		validation.Field(&medicine.UnitPrice, validation.Min(0.0)),
		validation.Field(&medicine.StockQuantity, validation.Min(0)),
		validation.Field(&medicine.ReorderLevel, validation.Min(0)),
	)
}

// ValidatePasswordReset validates the reset code and new password.
func ValidatePasswordReset(resetCode, newPassword string) error {
	return validation.Errors{
		"resetCode": validation.Validate(resetCode, validation.Required.Error("invalid reset code")),
		"password":  validation.Validate(newPassword, validation.Required, validation.By(validatePassword)),
	}.Filter()
}

// validatePassword checks the password for length and complexity.
func validatePassword(value interface{}) error {
	password, _ := value.(string)

	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var (
		lowercaseRegex = regexp.MustCompile(`[a-z]`)
		uppercaseRegex = regexp.MustCompile(`[A-Z]`)
		digitRegex     = regexp.MustCompile(`\d`)
		specialRegex   = regexp.MustCompile(`[@$!%*?&]`)
	)

	if !lowercaseRegex.MatchString(password) ||
		!uppercaseRegex.MatchString(password) ||
		!digitRegex.MatchString(password) ||
		!specialRegex.MatchString(password) {
		return ErrPasswordNotComplex
	}

	return nil
}
