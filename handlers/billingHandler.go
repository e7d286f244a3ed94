package handlers

import (
	"AyurCare/middlewares"
	"AyurCare/models"
	"AyurCare/services"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	service *services.BillingService
}

func NewBillingHandler(service *services.BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

func (h *BillingHandler) CreateBill(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	var bill models.Bill
	if err := c.ShouldBindJSON(&bill); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	bill.ClinicID = clinicID

	if err := h.service.Create(c.Request.Context(), &bill); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(201, bill)
}

func (h *BillingHandler) GetBillByID(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	bill, err := h.service.GetByID(c.Request.Context(), clinicID, c.Param("bill_id"))
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	if bill == nil {
		c.JSON(404, gin.H{"error": "Bill not found"})
		return
	}
	c.JSON(200, bill)
}

func (h *BillingHandler) GetAllBills(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	bills, err := h.service.GetAll(c.Request.Context(), clinicID)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, bills)
}

func (h *BillingHandler) GetBillsByPatient(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	bills, err := h.service.ListByPatient(c.Request.Context(), clinicID, c.Param("patient_id"))
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, bills)
}

func (h *BillingHandler) UpdateBill(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	var bill models.Bill
	if err := c.ShouldBindJSON(&bill); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	bill.BillID = c.Param("bill_id")
	bill.ClinicID = clinicID

	if err := h.service.Update(c.Request.Context(), &bill); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, bill)
}

// ApplyQuickDiscount sets one of the preset percentage discounts.
func (h *BillingHandler) ApplyQuickDiscount(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	var body struct {
		Percentage float64 `json:"percentage"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	bill, err := h.service.ApplyQuickDiscount(c.Request.Context(), clinicID, c.Param("bill_id"), body.Percentage)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, bill)
}

func (h *BillingHandler) RecordPayment(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	bill, err := h.service.RecordPayment(c.Request.Context(), clinicID, c.Param("bill_id"), &payment)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, bill)
}

func (h *BillingHandler) DeleteBill(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), clinicID, c.Param("bill_id")); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Bill deleted"})
}
