// Package geo - расстояния до станций экстренных служб и заглушки геокодирования
package geo

import (
	"context"
	"fmt"
	"math"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
)

const (
	earthRadiusKm = 6371.0
	// Радиус, в котором точка считается рядом с чувствительным объектом
	sensitiveRadiusKm = 0.5
)

// Point - координаты в градусах
type Point struct {
	Lat float64
	Lng float64
}

// Station - станция экстренной службы
type Station struct {
	Service models.ResponseType
	Point   Point
}

// Sensitive - объект, близость к которому повышает риск
type Sensitive struct {
	Name  string
	Point Point
}

// DefaultStations - станции по умолчанию, одна на службу
var DefaultStations = []Station{
	{Service: models.ResponseFireBrigade, Point: Point{40.7128, -74.0060}},
	{Service: models.ResponsePolice, Point: Point{40.7589, -73.9851}},
	{Service: models.ResponseAmbulance, Point: Point{40.7505, -73.9934}},
	{Service: models.ResponseHospital, Point: Point{40.7614, -73.9776}},
	{Service: models.ResponseGasEmergency, Point: Point{40.7282, -74.0776}},
}

// DefaultSensitive - мэрия, больница, школа, правительственное здание
var DefaultSensitive = []Sensitive{
	{Name: "city_hall", Point: Point{40.7128, -74.0060}},
	{Name: "hospital", Point: Point{40.7589, -73.9851}},
	{Name: "school", Point: Point{40.7505, -73.9934}},
	{Name: "government", Point: Point{40.7614, -73.9776}},
}

// Locator отвечает на геозапросы по фиксированному списку станций
type Locator struct {
	stations  []Station
	sensitive []Sensitive
}

func NewLocator(stations []Station, sensitive []Sensitive) *Locator {
	return &Locator{stations: stations, sensitive: sensitive}
}

// NewDefaultLocator - локатор со станциями по умолчанию
func NewDefaultLocator() *Locator {
	return NewLocator(DefaultStations, DefaultSensitive)
}

// Haversine возвращает расстояние между точками по большому кругу, км
func Haversine(a, b Point) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Bounds - прямоугольник, содержащий круг радиусом radiusKm вокруг center.
// У полюсов и у линии смены дат долгота не ограничивается
func Bounds(center Point, radiusKm float64) models.BoundingBox {
	angular := radiusKm / earthRadiusKm
	dLat := angular * 180 / math.Pi
	box := models.BoundingBox{
		MinLat: math.Max(center.Lat-dLat, -90),
		MaxLat: math.Min(center.Lat+dLat, 90),
		MinLng: -180,
		MaxLng: 180,
	}
	if box.MinLat == -90 || box.MaxLat == 90 {
		return box
	}
	ratio := math.Sin(angular) / math.Cos(toRad(center.Lat))
	if ratio >= 1 {
		return box
	}
	dLng := math.Asin(ratio) * 180 / math.Pi
	if center.Lng-dLng < -180 || center.Lng+dLng > 180 {
		return box
	}
	box.MinLng, box.MaxLng = center.Lng-dLng, center.Lng+dLng
	return box
}

// DistanceToService - расстояние до ближайшей станции службы; ok=false, если станций нет
func (l *Locator) DistanceToService(lat, lng float64, svc models.ResponseType) (float64, bool) {
	from := Point{lat, lng}
	best, found := 0.0, false
	for _, s := range l.stations {
		if s.Service != svc {
			continue
		}
		d := Haversine(from, s.Point)
		if !found || d < best {
			best, found = d, true
		}
	}
	return best, found
}

// PrimaryService - основная служба для типа инцидента
func PrimaryService(t models.IncidentType) models.ResponseType {
	switch t {
	case models.TypeFire:
		return models.ResponseFireBrigade
	case models.TypeMedicalEmergency:
		return models.ResponseAmbulance
	case models.TypeViolence, models.TypeRoadAccident:
		return models.ResponsePolice
	case models.TypeGasLeak:
		return models.ResponseGasEmergency
	}
	return models.ResponsePolice
}

// NearestResponderKm - расстояние до основной службы для типа инцидента
func (l *Locator) NearestResponderKm(_ context.Context, lat, lng float64, t models.IncidentType) (float64, bool) {
	return l.DistanceToService(lat, lng, PrimaryService(t))
}

// NearSensitiveLocation - есть ли чувствительный объект в радиусе 0.5 км
func (l *Locator) NearSensitiveLocation(_ context.Context, lat, lng float64) bool {
	from := Point{lat, lng}
	for _, s := range l.sensitive {
		if Haversine(from, s.Point) <= sensitiveRadiusKm {
			return true
		}
	}
	return false
}

// ReverseGeocode - заглушка, настоящий геокодер подключается снаружи
func (l *Locator) ReverseGeocode(_ context.Context, lat, lng float64) (string, error) {
	return fmt.Sprintf("Address near %.4f, %.4f", lat, lng), nil
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
