package cache

import (
	"testing"
	"time"

	"kurumaya-backend/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*RedisManager, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisManager(client, DefaultConfig()), mr
}

func testVehicle(id string) models.Vehicle {
	return models.Vehicle{
		ID:         id,
		Plate:      "TST-0001",
		Model:      "Corolla",
		Brand:      "Toyota",
		Year:       2022,
		Category:   "Sedan",
		DailyPrice: 150,
		Status:     models.VehicleAvailable,
	}
}

func TestVehicleRoundTrip(t *testing.T) {
	m, _ := newTestManager(t)
	vehicle := testVehicle("v-1")

	require.NoError(t, m.SetVehicle(vehicle.ID, vehicle, time.Minute))

	got, err := m.GetVehicle(vehicle.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, vehicle.ID, got.ID)
	assert.Equal(t, vehicle.DailyPrice, got.DailyPrice)
}

func TestVehicleMissIsNilNil(t *testing.T) {
	m, _ := newTestManager(t)

	got, err := m.GetVehicle("nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestVehicleTTLExpiry(t *testing.T) {
	m, mr := newTestManager(t)
	vehicle := testVehicle("v-1")

	require.NoError(t, m.SetVehicle(vehicle.ID, vehicle, 30*time.Second))

	mr.FastForward(31 * time.Second)

	got, err := m.GetVehicle(vehicle.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestInvalidateVehicle(t *testing.T) {
	m, _ := newTestManager(t)
	vehicle := testVehicle("v-1")

	require.NoError(t, m.SetVehicle(vehicle.ID, vehicle, time.Minute))
	require.NoError(t, m.InvalidateVehicle(vehicle.ID))

	got, err := m.GetVehicle(vehicle.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestVehicleListRoundTrip(t *testing.T) {
	m, _ := newTestManager(t)
	vehicles := []models.Vehicle{testVehicle("v-1"), testVehicle("v-2")}

	require.NoError(t, m.SetVehicleList(KeyAllVehicles, vehicles, time.Minute))

	got, err := m.GetVehicleList(KeyAllVehicles)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "v-1", got[0].ID)

	// Different list keys do not collide.
	byStatus, err := m.GetVehicleList(KeyVehiclesByStatus(models.VehicleAvailable))
	require.NoError(t, err)
	assert.Nil(t, byStatus)
}

func TestDeleteVehicleList(t *testing.T) {
	m, _ := newTestManager(t)
	vehicles := []models.Vehicle{testVehicle("v-1")}

	require.NoError(t, m.SetVehicleList(KeyAllVehicles, vehicles, time.Minute))
	require.NoError(t, m.Delete(KeyAllVehicles))

	got, err := m.GetVehicleList(KeyAllVehicles)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStats(t *testing.T) {
	m, _ := newTestManager(t)
	vehicle := testVehicle("v-1")

	require.NoError(t, m.SetVehicle(vehicle.ID, vehicle, time.Minute))

	_, err := m.GetVehicle(vehicle.ID)
	require.NoError(t, err)
	_, err = m.GetVehicle("missing")
	require.NoError(t, err)

	stats := m.Stats()
	assert.Equal(t, int64(1), stats.TotalHits)
	assert.Equal(t, int64(1), stats.TotalMisses)
	assert.Equal(t, 0.5, stats.HitRate)
}

func TestGetVehicleTransportError(t *testing.T) {
	m, mr := newTestManager(t)

	mr.Close()

	_, err := m.GetVehicle("v-1")
	assert.Error(t, err)
}

func TestHealthCheck(t *testing.T) {
	m, mr := newTestManager(t)

	assert.NoError(t, m.HealthCheck())

	mr.Close()
	assert.Error(t, m.HealthCheck())
}
