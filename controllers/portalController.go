package controllers

import (
	"AyurCare/handlers"
	"AyurCare/middlewares"
	"AyurCare/models"

	"github.com/gin-gonic/gin"
)

// SetupPortalRoutes registers the patient portal. Every route is scoped to
// the patient record linked to the caller's token.
func SetupPortalRoutes(router *gin.Engine, portalHandler *handlers.PortalHandler) {
	portal := router.Group("/portal").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RolePatient),
	)
	{
		portal.POST("/appointments", portalHandler.RequestAppointment)
		portal.GET("/appointments", portalHandler.ListMyAppointments)
		portal.POST("/appointments/:appointment_id/respond", portalHandler.RespondToProposal)

		portal.GET("/bills", portalHandler.ListMyBills)
		portal.GET("/prescriptions", portalHandler.ListMyPrescriptions)
		portal.GET("/plans", portalHandler.ListMyPlans)
	}
}
