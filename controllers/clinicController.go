package controllers

import (
	"AyurCare/handlers"
	"AyurCare/middlewares"
	"AyurCare/models"

	"github.com/gin-gonic/gin"
)

// SetupClinicRoutes registers the staff-facing clinic routes. Every route
// requires a valid token; write access is limited per role group.
func SetupClinicRoutes(
	router *gin.Engine,
	clinicHandler *handlers.ClinicHandler,
	patientHandler *handlers.PatientHandler,
	appointmentHandler *handlers.AppointmentHandler,
	billingHandler *handlers.BillingHandler,
	pharmacyHandler *handlers.PharmacyHandler,
	prescriptionHandler *handlers.PrescriptionHandler,
	planHandler *handlers.PlanHandler,
	staffHandler *handlers.StaffHandler,
) {
	// Tenant onboarding happens before any user exists for the clinic, so it
	// sits outside the token groups (the server-level bearer token still
	// applies).
	router.POST("/clinics", clinicHandler.CreateClinic)

	staff := router.Group("/").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleOwner, models.RoleDoctor, models.RoleStaff),
	)
	{
		staff.GET("/clinic", clinicHandler.GetMyClinic)

		staff.POST("/patients", patientHandler.CreatePatient)
		staff.GET("/patients", patientHandler.GetAllPatients)
		staff.GET("/patients/search", patientHandler.SearchPatients)
		staff.GET("/patients/:patient_id", patientHandler.GetPatientByID)
		staff.PUT("/patients/:patient_id", patientHandler.UpdatePatient)
		staff.DELETE("/patients/:patient_id", patientHandler.DeletePatient)

		staff.POST("/appointments", appointmentHandler.CreateAppointment)
		staff.GET("/appointments", appointmentHandler.GetAllAppointments)
		staff.GET("/appointments/:appointment_id", appointmentHandler.GetAppointmentByID)
		staff.PUT("/appointments/:appointment_id", appointmentHandler.UpdateAppointment)
		staff.POST("/appointments/:appointment_id/respond", appointmentHandler.RespondToAppointment)
		staff.DELETE("/appointments/:appointment_id", appointmentHandler.DeleteAppointment)

		staff.POST("/bills", billingHandler.CreateBill)
		staff.GET("/bills", billingHandler.GetAllBills)
		staff.GET("/bills/:bill_id", billingHandler.GetBillByID)
		staff.PUT("/bills/:bill_id", billingHandler.UpdateBill)
		staff.POST("/bills/:bill_id/discount", billingHandler.ApplyQuickDiscount)
		staff.POST("/bills/:bill_id/payments", billingHandler.RecordPayment)
		staff.DELETE("/bills/:bill_id", billingHandler.DeleteBill)
		staff.GET("/patients/:patient_id/bills", billingHandler.GetBillsByPatient)

		staff.POST("/medicines", pharmacyHandler.CreateMedicine)
		staff.GET("/medicines", pharmacyHandler.GetAllMedicines)
		staff.GET("/medicines/low-stock", pharmacyHandler.GetLowStockMedicines)
		staff.GET("/medicines/:medicine_id", pharmacyHandler.GetMedicineByID)
		staff.PUT("/medicines/:medicine_id", pharmacyHandler.UpdateMedicine)
		staff.POST("/medicines/:medicine_id/stock", pharmacyHandler.AdjustStock)
		staff.DELETE("/medicines/:medicine_id", pharmacyHandler.DeleteMedicine)

		staff.GET("/patients/:patient_id/prescriptions", prescriptionHandler.GetPrescriptionsByPatient)
		staff.GET("/prescriptions/:prescription_id", prescriptionHandler.GetPrescriptionByID)

		staff.GET("/plan-templates", planHandler.ListTemplates)
		staff.GET("/plan-templates/:template_id", planHandler.GetTemplateByID)
		staff.GET("/patients/:patient_id/plans", planHandler.GetPlansByPatient)

		staff.POST("/leave-requests", staffHandler.RequestLeave)
	}

	// Prescriptions and plan content are authored by doctors.
	doctors := router.Group("/").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleOwner, models.RoleDoctor),
	)
	{
		doctors.POST("/prescriptions", prescriptionHandler.CreatePrescription)
		doctors.DELETE("/prescriptions/:prescription_id", prescriptionHandler.DeletePrescription)

		doctors.POST("/plan-templates", planHandler.CreateTemplate)
		doctors.PUT("/plan-templates/:template_id", planHandler.UpdateTemplate)
		doctors.DELETE("/plan-templates/:template_id", planHandler.DeleteTemplate)
		doctors.POST("/plans/generate", planHandler.GeneratePlan)
		doctors.DELETE("/plans/:plan_id", planHandler.DeletePatientPlan)
	}

	// Payroll and leave review are owner-only.
	owner := router.Group("/").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleOwner),
	)
	{
		owner.PUT("/clinic", clinicHandler.UpdateMyClinic)

		owner.POST("/payroll", staffHandler.CreatePayroll)
		owner.GET("/payroll", staffHandler.ListPayroll)
		owner.GET("/payroll/:payroll_id", staffHandler.GetPayrollByID)
		owner.PUT("/payroll/:payroll_id", staffHandler.UpdatePayroll)
		owner.DELETE("/payroll/:payroll_id", staffHandler.DeletePayroll)

		owner.GET("/leave-requests", staffHandler.ListLeave)
		owner.POST("/leave-requests/:leave_id/review", staffHandler.ReviewLeave)
	}
}
