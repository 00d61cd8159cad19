package cache

import (
	"fmt"
	"time"

	"kurumaya-backend/internal/models"
)

// Manager is the read-side cache used in front of the fleet store.
type Manager interface {
	GetVehicle(vehicleID string) (*models.Vehicle, error)
	SetVehicle(vehicleID string, vehicle models.Vehicle, ttl time.Duration) error
	InvalidateVehicle(vehicleID string) error

	GetVehicleList(key string) ([]models.Vehicle, error)
	SetVehicleList(key string, vehicles []models.Vehicle, ttl time.Duration) error

	Delete(key string) error

	Stats() Stats
	HealthCheck() error
	Close() error
}

// Stats reports cache hit behaviour since startup.
type Stats struct {
	TotalHits   int64   `json:"totalHits"`
	TotalMisses int64   `json:"totalMisses"`
	HitRate     float64 `json:"hitRate"`
}

type Config struct {
	VehicleTTL     time.Duration
	VehicleListTTL time.Duration
	KeyPrefix      string
}

func DefaultConfig() Config {
	return Config{
		VehicleTTL:     30 * time.Second,
		VehicleListTTL: 2 * time.Minute,
		KeyPrefix:      "rental:",
	}
}

// KeyAllVehicles caches the full fleet listing.
const KeyAllVehicles = "all_vehicles"

func KeyVehiclesByStatus(status string) string {
	return fmt.Sprintf("vehicles_by_status_%s", status)
}
