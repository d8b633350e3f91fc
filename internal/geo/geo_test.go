package geo

import (
	"context"
	"testing"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversine(t *testing.T) {
	// Москва - Санкт-Петербург, около 634 км
	d := Haversine(Point{55.7558, 37.6173}, Point{59.9343, 30.3351})
	assert.InDelta(t, 634, d, 2)

	assert.Equal(t, 0.0, Haversine(Point{40.7, -74}, Point{40.7, -74}))
}

func TestDistanceToService(t *testing.T) {
	l := NewDefaultLocator()

	d, ok := l.DistanceToService(40.7128, -74.0060, models.ResponseFireBrigade)
	require.True(t, ok)
	assert.InDelta(t, 0, d, 1e-9)

	_, ok = l.DistanceToService(40.7128, -74.0060, models.ResponseRescueTeam)
	assert.False(t, ok)
}

func TestNearestResponderKm_UsesPrimaryService(t *testing.T) {
	l := NewDefaultLocator()

	d, ok := l.NearestResponderKm(context.Background(), 40.7589, -73.9851, models.TypeViolence)

	require.True(t, ok)
	assert.InDelta(t, 0, d, 1e-9)
}

func TestNearSensitiveLocation(t *testing.T) {
	l := NewDefaultLocator()

	assert.True(t, l.NearSensitiveLocation(context.Background(), 40.7130, -74.0062))
	assert.False(t, l.NearSensitiveLocation(context.Background(), 41.5, -75.0))
}

func TestReverseGeocode(t *testing.T) {
	addr, err := NewDefaultLocator().ReverseGeocode(context.Background(), 40.71283, -74.00601)

	require.NoError(t, err)
	assert.Equal(t, "Address near 40.7128, -74.0060", addr)
}

func TestPrimaryService(t *testing.T) {
	assert.Equal(t, models.ResponseFireBrigade, PrimaryService(models.TypeFire))
	assert.Equal(t, models.ResponseAmbulance, PrimaryService(models.TypeMedicalEmergency))
	assert.Equal(t, models.ResponseGasEmergency, PrimaryService(models.TypeGasLeak))
	assert.Equal(t, models.ResponsePolice, PrimaryService(models.TypeFlood))
}

func TestBounds_ContainsCircle(t *testing.T) {
	center := Point{28.6139, 77.2090}

	box := Bounds(center, 10)

	assert.Less(t, box.MinLat, center.Lat)
	assert.Greater(t, box.MaxLat, center.Lat)
	// точки на окружности по сторонам света лежат внутри прямоугольника
	north := Point{box.MaxLat, center.Lng}
	east := Point{center.Lat, box.MaxLng}
	assert.InDelta(t, 10, Haversine(center, north), 0.01)
	assert.GreaterOrEqual(t, Haversine(center, east), 10.0)
}

func TestBounds_DatelineAndPole(t *testing.T) {
	nearDateline := Bounds(Point{10, 179.95}, 20)
	assert.Equal(t, -180.0, nearDateline.MinLng)
	assert.Equal(t, 180.0, nearDateline.MaxLng)

	nearPole := Bounds(Point{89.99, 0}, 5)
	assert.Equal(t, 90.0, nearPole.MaxLat)
	assert.Equal(t, -180.0, nearPole.MinLng)
}
