package models

import "time"

// Vehicle statuses. A vehicle is rented iff exactly one ongoing rental
// references it.
const (
	VehicleAvailable   = "available"
	VehicleReserved    = "reserved"
	VehicleRented      = "rented"
	VehicleMaintenance = "maintenance"
)

type Vehicle struct {
	ID         string    `json:"id"`
	Plate      string    `json:"plate" validate:"required"`
	Model      string    `json:"model" validate:"required"`
	Brand      string    `json:"brand" validate:"required"`
	Year       int       `json:"year" validate:"required,min=1950,max=2030"`
	Category   string    `json:"category" validate:"required"`
	DailyPrice float64   `json:"dailyPrice" validate:"required,gt=0"`
	ImageURL   string    `json:"imageUrl"`
	Odometer   int       `json:"odometer"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ValidVehicleStatus reports whether s is one of the four known statuses.
func ValidVehicleStatus(s string) bool {
	switch s {
	case VehicleAvailable, VehicleReserved, VehicleRented, VehicleMaintenance:
		return true
	}
	return false
}
