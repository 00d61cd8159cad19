package handlers

import (
	"net/http"

	"kurumaya-backend/internal/api/middleware"
	"kurumaya-backend/internal/services"
	"kurumaya-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type RentalHandler struct {
	rentalService *services.RentalService
	validator     *validator.Validate
}

func NewRentalHandler(rentalService *services.RentalService) *RentalHandler {
	return &RentalHandler{
		rentalService: rentalService,
		validator:     validator.New(),
	}
}

// Reserve holds an available vehicle for the caller before payment.
func (h *RentalHandler) Reserve(c *gin.Context) {
	var req struct {
		VehicleID string `json:"vehicleId" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	vehicle, err := h.rentalService.Reserve(req.VehicleID, middleware.CallerID(c))
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), "Failed to reserve vehicle", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle reserved", vehicle)
}

// Pay opens the rental and returns the charged totals.
func (h *RentalHandler) Pay(c *gin.Context) {
	var req services.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	rental, err := h.rentalService.Pay(middleware.CallerID(c), req)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), "Failed to open rental", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Rental opened", rental)
}

// PreviewReturn shows the settlement the renter would get right now without
// committing anything.
func (h *RentalHandler) PreviewReturn(c *gin.Context) {
	var req services.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	summary, err := h.rentalService.PreviewReturn(middleware.CallerID(c), req)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), "Failed to preview return", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Return preview", summary)
}

// ConfirmReturn settles the rental and releases the vehicle.
func (h *RentalHandler) ConfirmReturn(c *gin.Context) {
	var req services.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	summary, err := h.rentalService.ConfirmReturn(middleware.CallerID(c), req)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), "Failed to confirm return", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Return confirmed", summary)
}

// History lists the caller's past and ongoing rentals.
func (h *RentalHandler) History(c *gin.Context) {
	entries := h.rentalService.HistoryForRenter(middleware.CallerID(c))
	utils.SuccessResponse(c, http.StatusOK, "Rental history", entries)
}
