package handlers

import (
	"AyurCare/middlewares"
	"AyurCare/models"
	"AyurCare/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

// StaffHandler covers payroll records and leave requests.
type StaffHandler struct {
	service *services.StaffService
}

func NewStaffHandler(service *services.StaffService) *StaffHandler {
	return &StaffHandler{service: service}
}

func parsePathID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

func (h *StaffHandler) CreatePayroll(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	var record models.PayrollRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	record.ClinicID = clinicID

	if err := h.service.CreatePayroll(c.Request.Context(), &record); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(201, record)
}

func (h *StaffHandler) GetPayrollByID(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}
	id, ok := parsePathID(c, "payroll_id")
	if !ok {
		return
	}

	record, err := h.service.GetPayrollByID(c.Request.Context(), clinicID, id)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	if record == nil {
		c.JSON(404, gin.H{"error": "Payroll record not found"})
		return
	}
	c.JSON(200, record)
}

// ListPayroll optionally filters by month=YYYY-MM.
func (h *StaffHandler) ListPayroll(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	records, err := h.service.ListPayroll(c.Request.Context(), clinicID, c.Query("month"))
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, records)
}

func (h *StaffHandler) UpdatePayroll(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}
	id, ok := parsePathID(c, "payroll_id")
	if !ok {
		return
	}

	var record models.PayrollRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	record.ID = id
	record.ClinicID = clinicID

	if err := h.service.UpdatePayroll(c.Request.Context(), &record); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, record)
}

func (h *StaffHandler) DeletePayroll(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}
	id, ok := parsePathID(c, "payroll_id")
	if !ok {
		return
	}

	if err := h.service.DeletePayroll(c.Request.Context(), clinicID, id); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Payroll record deleted"})
}

// RequestLeave files a leave request for the authenticated staff member.
func (h *StaffHandler) RequestLeave(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}
	userIDStr, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "User not resolved from token"})
		return
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		c.JSON(401, gin.H{"error": "User not resolved from token"})
		return
	}

	var request models.LeaveRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	request.ClinicID = clinicID
	request.UserID = userID

	if err := h.service.RequestLeave(c.Request.Context(), &request); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(201, request)
}

func (h *StaffHandler) ListLeave(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	requests, err := h.service.ListLeave(c.Request.Context(), clinicID)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, requests)
}

// ReviewLeave approves or rejects a pending leave request.
func (h *StaffHandler) ReviewLeave(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}
	id, ok := parsePathID(c, "leave_id")
	if !ok {
		return
	}

	var body struct {
		Approve bool   `json:"approve"`
		Note    string `json:"note"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	request, err := h.service.ReviewLeave(c.Request.Context(), clinicID, id, body.Approve, body.Note)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, request)
}
