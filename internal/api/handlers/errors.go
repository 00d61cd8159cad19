package handlers

import (
	"errors"
	"net/http"

	"kurumaya-backend/internal/models"
)

// statusForError maps domain errors onto HTTP status codes. Unknown errors
// come back as 500 so nothing gets silently swallowed.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrVehicleNotFound),
		errors.Is(err, models.ErrRentalNotFound),
		errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrVehicleNotAvailable),
		errors.Is(err, models.ErrRentalFinished),
		errors.Is(err, models.ErrPlateTaken),
		errors.Is(err, models.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, models.ErrNotRentalOwner):
		return http.StatusForbidden
	case errors.Is(err, models.ErrInvalidDays),
		errors.Is(err, models.ErrInvalidOdometer),
		errors.Is(err, models.ErrInvalidDamage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
