package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hospital-ops/ward-staffing-api/internal/httperr"
	"github.com/hospital-ops/ward-staffing-api/internal/models"
	"github.com/hospital-ops/ward-staffing-api/internal/repository"
	"github.com/hospital-ops/ward-staffing-api/internal/services"
	"github.com/hospital-ops/ward-staffing-api/internal/utils"
)

// NurseHandler coordinates nurse HTTP handlers.
type NurseHandler struct {
	nurseService *services.NurseService
}

// NewNurseHandler creates a new NurseHandler.
func NewNurseHandler(nurseService *services.NurseService) *NurseHandler {
	return &NurseHandler{
		nurseService: nurseService,
	}
}

// CreateNurse creates a new nurse assigned to an existing ward.
func (h *NurseHandler) CreateNurse(c *gin.Context) {
	type CreateNurseRequest struct {
		FirstName string `json:"firstName" binding:"required"`
		LastName  string `json:"lastName" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		WardID    uint64 `json:"wardId" binding:"required"`
	}

	var req CreateNurseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	nurse, err := h.nurseService.CreateNurse(services.CreateNurseInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		WardID:    req.WardID,
	})
	if err != nil {
		respondNurseError(c, err, "Error creating nurse")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Nurse created successfully!",
		"nurse":   nurse,
	})
}

// ListNurses returns all nurses with their ward details.
func (h *NurseHandler) ListNurses(c *gin.Context) {
	nurses, err := h.nurseService.ListNurses()
	if err != nil {
		httperr.InternalError(c, "Error fetching nurses")
		return
	}

	c.JSON(http.StatusOK, nurses)
}

// GetNurse returns a nurse by ID with its ward details.
func (h *NurseHandler) GetNurse(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "Nurse not found!")
		return
	}

	nurse, err := h.nurseService.GetNurse(id)
	if err != nil {
		respondNurseError(c, err, "Error fetching nurse")
		return
	}

	c.JSON(http.StatusOK, nurse)
}

// UpdateNurse applies a partial update to a nurse.
func (h *NurseHandler) UpdateNurse(c *gin.Context) {
	type UpdateNurseRequest struct {
		FirstName string  `json:"firstName" binding:"required"`
		LastName  string  `json:"lastName" binding:"required"`
		Email     string  `json:"email" binding:"required,email"`
		WardID    *uint64 `json:"wardId"`
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "Nurse not found!")
		return
	}

	var req UpdateNurseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	nurse, err := h.nurseService.UpdateNurse(id, services.UpdateNurseInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		WardID:    req.WardID,
	})
	if err != nil {
		respondNurseError(c, err, "Error updating nurse")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Nurse updated successfully!",
		"nurse":   nurse,
	})
}

// DeleteNurse removes a nurse and echoes the deleted record.
func (h *NurseHandler) DeleteNurse(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "Nurse not found!")
		return
	}

	nurse, err := h.nurseService.DeleteNurse(id)
	if err != nil {
		respondNurseError(c, err, "Error deleting nurse")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Nurse deleted successfully!",
		"nurse":   nurse,
	})
}

// FilterNurses searches nurses by name and ward name with pagination.
func (h *NurseHandler) FilterNurses(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	nurses, total, err := h.nurseService.FilterNurses(repository.NurseFilter{
		FullName: c.Query("fullName"),
		WardName: c.Query("wardName"),
		Page:     params.Page,
		Limit:    params.Limit,
	})
	if err != nil {
		httperr.InternalError(c, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalRecords": total,
		"totalPages":   utils.TotalPages(total, params.Limit),
		"currentPage":  params.Page,
		"nurses":       nurses,
	})
}

// CreateManyNurses inserts multiple nurses from a single payload.
func (h *NurseHandler) CreateManyNurses(c *gin.Context) {
	var nurses []models.Nurse
	if err := c.ShouldBindJSON(&nurses); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	created, err := h.nurseService.CreateManyNurses(nurses)
	if err != nil {
		httperr.InternalError(c, "Error creating nurses")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Nurses created successfully",
		"nurses":  created,
	})
}

// respondNurseError maps nurse service errors to the wire statuses the
// client depends on. A duplicate nurse email deliberately answers 404,
// matching the legacy contract.
func respondNurseError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrNurseNotFound):
		httperr.NotFound(c, "Nurse not found!")
	case errors.Is(err, services.ErrWardNotFound):
		httperr.NotFound(c, "Ward not found!")
	case errors.Is(err, services.ErrNurseEmailTaken):
		httperr.NotFound(c, "Nurse with this email already exist")
	default:
		httperr.InternalError(c, fallback)
	}
}
