package routes

import (
	"AyurCare/cache"
	"AyurCare/config"
	"AyurCare/controllers"
	"AyurCare/handlers"
	"AyurCare/middlewares"
	"AyurCare/repositories"
	"AyurCare/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://app.ayurcare.example"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	appointmentRepo := repositories.NewAppointmentRepository(cache)
	patientRepo := repositories.NewPatientRepository(cache)
	billingRepo := repositories.NewBillingRepository(cache)
	medicineRepo := repositories.NewMedicineRepository(cache)
	prescriptionRepo := repositories.NewPrescriptionRepository()
	planRepo := repositories.NewPlanRepository()
	staffRepo := repositories.NewStaffRepository()
	clinicRepo := repositories.NewClinicRepository()
	userRepo := repositories.NewUserRepository(db, cache)

	appointmentService := services.NewAppointmentService(appointmentRepo, services.NewEmailNotifier())
	patientService := services.NewPatientService(patientRepo)
	billingService := services.NewBillingService(billingRepo)
	pharmacyService := services.NewPharmacyService(medicineRepo)
	prescriptionService := services.NewPrescriptionService(prescriptionRepo)
	planService := services.NewPlanService(planRepo)
	staffService := services.NewStaffService(staffRepo)
	clinicService := services.NewClinicService(clinicRepo)
	userService := services.NewUserService(userRepo)

	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	patientHandler := handlers.NewPatientHandler(patientService)
	billingHandler := handlers.NewBillingHandler(billingService)
	pharmacyHandler := handlers.NewPharmacyHandler(pharmacyService)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionService)
	planHandler := handlers.NewPlanHandler(planService)
	staffHandler := handlers.NewStaffHandler(staffService)
	clinicHandler := handlers.NewClinicHandler(clinicService)
	authHandler := handlers.NewAuthHandler(userService)
	portalHandler := handlers.NewPortalHandler(appointmentService, billingService, prescriptionService, planService)

	// Register routes
	controllers.SetupClinicRoutes(
		router,
		clinicHandler,
		patientHandler,
		appointmentHandler,
		billingHandler,
		pharmacyHandler,
		prescriptionHandler,
		planHandler,
		staffHandler,
	)

	controllers.SetupPortalRoutes(router, portalHandler)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
