package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hospital-ops/ward-staffing-api/internal/httperr"
	"github.com/hospital-ops/ward-staffing-api/internal/models"
	"github.com/hospital-ops/ward-staffing-api/internal/services"
)

// WardHandler coordinates ward HTTP handlers.
type WardHandler struct {
	wardService *services.WardService
}

// NewWardHandler creates a new WardHandler.
func NewWardHandler(wardService *services.WardService) *WardHandler {
	return &WardHandler{
		wardService: wardService,
	}
}

// CreateWard creates a new ward.
func (h *WardHandler) CreateWard(c *gin.Context) {
	type CreateWardRequest struct {
		WardName  string `json:"wardName" binding:"required"`
		WardColor string `json:"wardColor" binding:"required"`
	}

	var req CreateWardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	ward, err := h.wardService.CreateWard(req.WardName, req.WardColor)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWardExists):
			httperr.BadRequest(c, "Ward already exists")
		case errors.Is(err, services.ErrInvalidWardColor):
			httperr.BadRequest(c, "Please select a color from either Red, Green, Blue, or Yellow")
		default:
			httperr.InternalError(c, "Error creating ward")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Ward created successfully!",
		"ward":    ward,
	})
}

// ListWards returns all wards.
func (h *WardHandler) ListWards(c *gin.Context) {
	wards, err := h.wardService.ListWards()
	if err != nil {
		httperr.InternalError(c, "Error fetching wards")
		return
	}

	c.JSON(http.StatusOK, wards)
}

// DeleteWard removes a ward by ID.
func (h *WardHandler) DeleteWard(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "Ward not found")
		return
	}

	if err := h.wardService.DeleteWard(id); err != nil {
		switch {
		case errors.Is(err, services.ErrWardNotFound):
			httperr.NotFound(c, "Ward not found")
		case errors.Is(err, services.ErrWardHasNurses):
			httperr.BadRequest(c, "Cannot delete ward with assigned nurses")
		default:
			httperr.InternalError(c, "Error deleting ward")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ward deleted successfully",
		"error":   false,
	})
}

// CreateManyWards inserts multiple wards from a single payload.
func (h *WardHandler) CreateManyWards(c *gin.Context) {
	var wards []models.Ward
	if err := c.ShouldBindJSON(&wards); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	created, err := h.wardService.CreateManyWards(wards)
	if err != nil {
		httperr.InternalError(c, "Error creating wards")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Wards created successfully",
		"wards":   created,
	})
}
