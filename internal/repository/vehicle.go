package repository

import (
	"time"

	"kurumaya-backend/internal/models"
	"kurumaya-backend/internal/store"
)

type VehicleRepository struct {
	store *store.Store
}

func NewVehicleRepository(s *store.Store) *VehicleRepository {
	return &VehicleRepository{store: s}
}

func (r *VehicleRepository) FindByID(id string) (models.Vehicle, error) {
	return r.store.Vehicle(id)
}

func (r *VehicleRepository) FindByPlate(plate string) (models.Vehicle, error) {
	return r.store.VehicleByPlate(plate)
}

func (r *VehicleRepository) FindAll() []models.Vehicle {
	return r.store.Vehicles()
}

func (r *VehicleRepository) FindByStatus(status string) []models.Vehicle {
	return r.store.VehiclesByStatus(status)
}

func (r *VehicleRepository) Create(v models.Vehicle) (models.Vehicle, error) {
	return r.store.InsertVehicle(v)
}

func (r *VehicleRepository) Update(id string, mutate func(*models.Vehicle) error) (models.Vehicle, error) {
	return r.store.UpdateVehicle(id, mutate)
}

func (r *VehicleRepository) Delete(id string) error {
	return r.store.DeleteVehicle(id)
}

// Transition atomically moves the vehicle between statuses; see
// store.TransitionVehicleStatus.
func (r *VehicleRepository) Transition(id, to string, at time.Time, from ...string) (models.Vehicle, error) {
	return r.store.TransitionVehicleStatus(id, to, at, from...)
}
