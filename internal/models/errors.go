package models

import "errors"

// Domain errors returned by the store and services. Handlers map these onto
// HTTP status codes with errors.Is.
var (
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrRentalNotFound      = errors.New("rental not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrVehicleNotAvailable = errors.New("vehicle is not available")
	ErrRentalFinished      = errors.New("rental already finished")
	ErrNotRentalOwner      = errors.New("rental belongs to another renter")
	ErrPlateTaken          = errors.New("plate already registered")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidDays         = errors.New("days must be a positive integer")
	ErrInvalidOdometer     = errors.New("odometer reading must not be negative")
	ErrInvalidDamage       = errors.New("damage value must not be negative")
)
