package services

import (
	"fmt"
	"time"

	"kurumaya-backend/internal/models"
	"kurumaya-backend/internal/repository"
	"kurumaya-backend/pkg/cache"

	"github.com/sirupsen/logrus"
)

// VehicleService handles fleet management CRUD. Reads go through the cache
// when one is attached; the in-memory store stays the source of truth and the
// ledger's state transitions invalidate nothing here because cached entries
// carry short TTLs.
type VehicleService struct {
	vehicleRepo  *repository.VehicleRepository
	cacheManager cache.Manager
	cacheConfig  cache.Config
}

func NewVehicleService(vehicleRepo *repository.VehicleRepository) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		cacheConfig: cache.DefaultConfig(),
	}
}

// SetCacheManager attaches a cache for read paths.
func (s *VehicleService) SetCacheManager(m cache.Manager) {
	s.cacheManager = m
}

// SetCacheConfig overrides the default cache TTLs.
func (s *VehicleService) SetCacheConfig(cfg cache.Config) {
	s.cacheConfig = cfg
}

type CreateVehicleRequest struct {
	Plate      string  `json:"plate" validate:"required,min=1,max=20"`
	Model      string  `json:"model" validate:"required,min=1,max=100"`
	Brand      string  `json:"brand" validate:"required,min=1,max=100"`
	Year       int     `json:"year" validate:"required,min=1950,max=2030"`
	Category   string  `json:"category" validate:"required"`
	DailyPrice float64 `json:"dailyPrice" validate:"required,gt=0"`
	ImageURL   string  `json:"imageUrl,omitempty"`
	Odometer   int     `json:"odometer,omitempty" validate:"omitempty,min=0"`
}

type UpdateVehicleRequest struct {
	DailyPrice float64 `json:"dailyPrice,omitempty" validate:"omitempty,gt=0"`
	ImageURL   string  `json:"imageUrl,omitempty"`
	Status     string  `json:"status,omitempty" validate:"omitempty,oneof=available reserved rented maintenance"`
	Category   string  `json:"category,omitempty"`
}

func (s *VehicleService) GetAllVehicles() ([]models.Vehicle, error) {
	if s.cacheManager != nil {
		cached, err := s.cacheManager.GetVehicleList(cache.KeyAllVehicles)
		if err != nil {
			logrus.WithError(err).Warn("vehicle list cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	vehicles := s.vehicleRepo.FindAll()

	if s.cacheManager != nil {
		if err := s.cacheManager.SetVehicleList(cache.KeyAllVehicles, vehicles, s.cacheConfig.VehicleListTTL); err != nil {
			logrus.WithError(err).Warn("vehicle list cache write failed")
		}
	}
	return vehicles, nil
}

func (s *VehicleService) GetVehicleByID(id string) (models.Vehicle, error) {
	if s.cacheManager != nil {
		cached, err := s.cacheManager.GetVehicle(id)
		if err != nil {
			logrus.WithError(err).WithField("vehicle_id", id).Warn("vehicle cache read failed")
		} else if cached != nil {
			return *cached, nil
		}
	}

	vehicle, err := s.vehicleRepo.FindByID(id)
	if err != nil {
		return models.Vehicle{}, err
	}

	if s.cacheManager != nil {
		if err := s.cacheManager.SetVehicle(id, vehicle, s.cacheConfig.VehicleTTL); err != nil {
			logrus.WithError(err).WithField("vehicle_id", id).Warn("vehicle cache write failed")
		}
	}
	return vehicle, nil
}

func (s *VehicleService) GetVehiclesByStatus(status string) ([]models.Vehicle, error) {
	if !models.ValidVehicleStatus(status) {
		return nil, fmt.Errorf("list vehicles: unknown status %q", status)
	}

	key := cache.KeyVehiclesByStatus(status)
	if s.cacheManager != nil {
		cached, err := s.cacheManager.GetVehicleList(key)
		if err != nil {
			logrus.WithError(err).Warn("vehicle list cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	vehicles := s.vehicleRepo.FindByStatus(status)

	if s.cacheManager != nil {
		if err := s.cacheManager.SetVehicleList(key, vehicles, s.cacheConfig.VehicleListTTL); err != nil {
			logrus.WithError(err).Warn("vehicle list cache write failed")
		}
	}
	return vehicles, nil
}

func (s *VehicleService) CreateVehicle(req *CreateVehicleRequest) (models.Vehicle, error) {
	now := time.Now()
	vehicle := models.Vehicle{
		Plate:      req.Plate,
		Model:      req.Model,
		Brand:      req.Brand,
		Year:       req.Year,
		Category:   req.Category,
		DailyPrice: req.DailyPrice,
		ImageURL:   req.ImageURL,
		Odometer:   req.Odometer,
		Status:     models.VehicleAvailable,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if vehicle.ImageURL == "" {
		vehicle.ImageURL = "/static/img/default-car.jpg"
	}

	created, err := s.vehicleRepo.Create(vehicle)
	if err != nil {
		return models.Vehicle{}, err
	}

	s.invalidateLists(created.Status)
	return created, nil
}

func (s *VehicleService) UpdateVehicle(id string, req *UpdateVehicleRequest) (models.Vehicle, error) {
	var previousStatus string
	updated, err := s.vehicleRepo.Update(id, func(v *models.Vehicle) error {
		previousStatus = v.Status
		if req.DailyPrice > 0 {
			v.DailyPrice = req.DailyPrice
		}
		if req.ImageURL != "" {
			v.ImageURL = req.ImageURL
		}
		if req.Category != "" {
			v.Category = req.Category
		}
		if req.Status != "" {
			if !models.ValidVehicleStatus(req.Status) {
				return fmt.Errorf("update vehicle: unknown status %q", req.Status)
			}
			v.Status = req.Status
		}
		v.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return models.Vehicle{}, err
	}

	s.invalidateVehicle(id)
	s.invalidateLists(previousStatus, updated.Status)
	return updated, nil
}

func (s *VehicleService) DeleteVehicle(id string) error {
	vehicle, err := s.vehicleRepo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.vehicleRepo.Delete(id); err != nil {
		return err
	}

	s.invalidateVehicle(id)
	s.invalidateLists(vehicle.Status)
	return nil
}

func (s *VehicleService) invalidateVehicle(id string) {
	if s.cacheManager == nil {
		return
	}
	if err := s.cacheManager.InvalidateVehicle(id); err != nil {
		logrus.WithError(err).WithField("vehicle_id", id).Warn("vehicle cache invalidation failed")
	}
}

func (s *VehicleService) invalidateLists(statuses ...string) {
	if s.cacheManager == nil {
		return
	}
	keys := []string{cache.KeyAllVehicles}
	for _, st := range statuses {
		if st != "" {
			keys = append(keys, cache.KeyVehiclesByStatus(st))
		}
	}
	for _, key := range keys {
		if err := s.cacheManager.Delete(key); err != nil {
			logrus.WithError(err).WithField("key", key).Warn("vehicle list cache invalidation failed")
		}
	}
}
