package services

import (
	"testing"

	"kurumaya-backend/internal/models"
	"kurumaya-backend/internal/repository"
	"kurumaya-backend/internal/store"
	"kurumaya-backend/pkg/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVehicleService(t *testing.T, withCache bool) (*VehicleService, *repository.VehicleRepository) {
	t.Helper()

	st := store.New()
	vehicleRepo := repository.NewVehicleRepository(st)
	service := NewVehicleService(vehicleRepo)

	if withCache {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { client.Close() })
		service.SetCacheManager(cache.NewRedisManager(client, cache.DefaultConfig()))
	}
	return service, vehicleRepo
}

func TestCreateVehicle(t *testing.T) {
	service, _ := newVehicleService(t, false)

	created, err := service.CreateVehicle(&CreateVehicleRequest{
		Plate:      "NEW-0001",
		Model:      "Kicks",
		Brand:      "Nissan",
		Year:       2023,
		Category:   "SUV",
		DailyPrice: 220,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.VehicleAvailable, created.Status)
	assert.Equal(t, "/static/img/default-car.jpg", created.ImageURL)

	_, err = service.CreateVehicle(&CreateVehicleRequest{
		Plate:      "NEW-0001",
		Model:      "Kicks",
		Brand:      "Nissan",
		Year:       2023,
		Category:   "SUV",
		DailyPrice: 220,
	})
	assert.ErrorIs(t, err, models.ErrPlateTaken)
}

func TestUpdateVehicle(t *testing.T) {
	service, _ := newVehicleService(t, false)

	created, err := service.CreateVehicle(&CreateVehicleRequest{
		Plate: "NEW-0001", Model: "Kicks", Brand: "Nissan", Year: 2023,
		Category: "SUV", DailyPrice: 220,
	})
	require.NoError(t, err)

	updated, err := service.UpdateVehicle(created.ID, &UpdateVehicleRequest{
		DailyPrice: 250,
		Status:     models.VehicleMaintenance,
	})
	require.NoError(t, err)
	assert.Equal(t, 250.0, updated.DailyPrice)
	assert.Equal(t, models.VehicleMaintenance, updated.Status)

	_, err = service.UpdateVehicle(created.ID, &UpdateVehicleRequest{Status: "scrapped"})
	assert.Error(t, err)

	_, err = service.UpdateVehicle("missing", &UpdateVehicleRequest{DailyPrice: 100})
	assert.ErrorIs(t, err, models.ErrVehicleNotFound)
}

func TestDeleteVehicle(t *testing.T) {
	service, _ := newVehicleService(t, false)

	created, err := service.CreateVehicle(&CreateVehicleRequest{
		Plate: "NEW-0001", Model: "Kicks", Brand: "Nissan", Year: 2023,
		Category: "SUV", DailyPrice: 220,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteVehicle(created.ID))
	assert.ErrorIs(t, service.DeleteVehicle(created.ID), models.ErrVehicleNotFound)
}

func TestGetVehiclesByStatusRejectsUnknown(t *testing.T) {
	service, _ := newVehicleService(t, false)

	_, err := service.GetVehiclesByStatus("scrapped")
	assert.Error(t, err)
}

func TestGetVehicleServedFromCache(t *testing.T) {
	service, vehicleRepo := newVehicleService(t, true)

	created, err := service.CreateVehicle(&CreateVehicleRequest{
		Plate: "NEW-0001", Model: "Kicks", Brand: "Nissan", Year: 2023,
		Category: "SUV", DailyPrice: 220,
	})
	require.NoError(t, err)

	first, err := service.GetVehicleByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 220.0, first.DailyPrice)

	// Mutate the store behind the cache; the cached copy still answers.
	_, err = vehicleRepo.Update(created.ID, func(v *models.Vehicle) error {
		v.DailyPrice = 999
		return nil
	})
	require.NoError(t, err)

	second, err := service.GetVehicleByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 220.0, second.DailyPrice)
}

func TestUpdateVehicleInvalidatesCache(t *testing.T) {
	service, _ := newVehicleService(t, true)

	created, err := service.CreateVehicle(&CreateVehicleRequest{
		Plate: "NEW-0001", Model: "Kicks", Brand: "Nissan", Year: 2023,
		Category: "SUV", DailyPrice: 220,
	})
	require.NoError(t, err)

	_, err = service.GetVehicleByID(created.ID)
	require.NoError(t, err)

	_, err = service.UpdateVehicle(created.ID, &UpdateVehicleRequest{DailyPrice: 250})
	require.NoError(t, err)

	got, err := service.GetVehicleByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 250.0, got.DailyPrice)
}

func TestGetAllVehiclesListCache(t *testing.T) {
	service, _ := newVehicleService(t, true)

	_, err := service.CreateVehicle(&CreateVehicleRequest{
		Plate: "NEW-0001", Model: "Kicks", Brand: "Nissan", Year: 2023,
		Category: "SUV", DailyPrice: 220,
	})
	require.NoError(t, err)

	all, err := service.GetAllVehicles()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// Creating another vehicle invalidates the list key, so the next read
	// sees both.
	_, err = service.CreateVehicle(&CreateVehicleRequest{
		Plate: "NEW-0002", Model: "Creta", Brand: "Hyundai", Year: 2022,
		Category: "SUV", DailyPrice: 230,
	})
	require.NoError(t, err)

	all, err = service.GetAllVehicles()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
