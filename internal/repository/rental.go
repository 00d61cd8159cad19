package repository

import (
	"kurumaya-backend/internal/models"
	"kurumaya-backend/internal/store"
)

type RentalRepository struct {
	store *store.Store
}

func NewRentalRepository(s *store.Store) *RentalRepository {
	return &RentalRepository{store: s}
}

func (r *RentalRepository) FindByID(id string) (models.Rental, error) {
	return r.store.Rental(id)
}

func (r *RentalRepository) FindByRenter(renterID string) []models.Rental {
	return r.store.RentalsByRenter(renterID)
}

// Create inserts the rental and marks its vehicle rented in one atomic step.
func (r *RentalRepository) Create(rental models.Rental, from ...string) (models.Rental, error) {
	return r.store.CreateRental(rental, from...)
}

// Finish settles the rental and releases its vehicle in one atomic step.
func (r *RentalRepository) Finish(rentalID, renterID string, finish func(*models.Rental)) (models.Rental, error) {
	return r.store.FinishRental(rentalID, renterID, finish)
}
