package handlers

import (
	"AyurCare/middlewares"
	"AyurCare/models"
	"AyurCare/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PharmacyHandler struct {
	service *services.PharmacyService
}

func NewPharmacyHandler(service *services.PharmacyService) *PharmacyHandler {
	return &PharmacyHandler{service: service}
}

func parseMedicineID(c *gin.Context) (uint, bool) {
	idStr := c.Param("medicine_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid medicine ID"})
		return 0, false
	}
	return uint(id), true
}

func (h *PharmacyHandler) CreateMedicine(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	var medicine models.Medicine
	if err := c.ShouldBindJSON(&medicine); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	medicine.ClinicID = clinicID

	if err := h.service.Create(c.Request.Context(), &medicine); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(201, medicine)
}

func (h *PharmacyHandler) GetMedicineByID(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}
	id, ok := parseMedicineID(c)
	if !ok {
		return
	}

	medicine, err := h.service.GetByID(c.Request.Context(), clinicID, id)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	if medicine == nil {
		c.JSON(404, gin.H{"error": "Medicine not found"})
		return
	}
	c.JSON(200, medicine)
}

func (h *PharmacyHandler) GetAllMedicines(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	medicines, err := h.service.GetAll(c.Request.Context(), clinicID)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, medicines)
}

// GetLowStockMedicines lists medicines at or below their reorder level.
func (h *PharmacyHandler) GetLowStockMedicines(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}

	medicines, err := h.service.ListLowStock(c.Request.Context(), clinicID)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, medicines)
}

func (h *PharmacyHandler) UpdateMedicine(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}
	id, ok := parseMedicineID(c)
	if !ok {
		return
	}

	var medicine models.Medicine
	if err := c.ShouldBindJSON(&medicine); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	medicine.ID = id
	medicine.ClinicID = clinicID

	if err := h.service.Update(c.Request.Context(), &medicine); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, medicine)
}

// AdjustStock applies a signed delta to the stock level.
func (h *PharmacyHandler) AdjustStock(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}
	id, ok := parseMedicineID(c)
	if !ok {
		return
	}

	var body struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	medicine, err := h.service.AdjustStock(c.Request.Context(), clinicID, id, body.Delta)
	if err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(200, medicine)
}

func (h *PharmacyHandler) DeleteMedicine(c *gin.Context) {
	clinicID, ok := clinicFromContext(c)
	if !ok {
		return
	}
	id, ok := parseMedicineID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), clinicID, id); err != nil {
		middlewares.RespondServiceError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Medicine deleted"})
}
