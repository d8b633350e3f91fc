// Package dispatch содержит детерминированные правила выбора экстренных служб:
// базовую таблицу по типу инцидента, рекомендации по уточняющим вопросам,
// срочность и оценку времени прибытия.
package dispatch

import (
	"math"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
)

// Средняя скорость экстренного транспорта, км/ч
const averageSpeedKmh = 40.0

// TrafficSevere - значение trafficSeverity, при котором нужна полиция
const TrafficSevere = "SEVERE"

// GuidedQuestions - ответы автора на уточняющие вопросы
type GuidedQuestions struct {
	HasInjuries          bool   `json:"has_injuries"`
	HasBleeding          bool   `json:"has_bleeding"`
	HasUnconsciousPeople bool   `json:"has_unconscious_people"`
	VehiclesInvolved     int    `json:"vehicles_involved"`
	HasFireRisk          bool   `json:"has_fire_risk"`
	HasExplosionRisk     bool   `json:"has_explosion_risk"`
	IsRoadBlocked        bool   `json:"is_road_blocked"`
	TrafficSeverity      string `json:"traffic_severity,omitempty"`
}

// Urgency - срочность реагирования
type Urgency string

const (
	UrgencyLow      Urgency = "LOW"
	UrgencyMedium   Urgency = "MEDIUM"
	UrgencyHigh     Urgency = "HIGH"
	UrgencyCritical Urgency = "CRITICAL"
)

// Recommendation - какие службы дополнительно советует оценка
type Recommendation struct {
	Ambulance    bool    `json:"recommend_ambulance"`
	Police       bool    `json:"recommend_police"`
	Fire         bool    `json:"recommend_fire"`
	Urgency      Urgency `json:"urgency"`
	UsedFallback bool    `json:"used_fallback"`
}

// BaseServices возвращает обязательный набор служб для типа инцидента
func BaseServices(t models.IncidentType) []models.ResponseType {
	switch t {
	case models.TypeFire:
		return []models.ResponseType{models.ResponseFireBrigade, models.ResponseAmbulance}
	case models.TypeMedicalEmergency:
		return []models.ResponseType{models.ResponseAmbulance, models.ResponseHospital}
	case models.TypeViolence:
		return []models.ResponseType{models.ResponsePolice, models.ResponseAmbulance}
	case models.TypeRoadAccident:
		return []models.ResponseType{models.ResponsePolice, models.ResponseAmbulance}
	case models.TypeGasLeak:
		return []models.ResponseType{models.ResponseGasEmergency, models.ResponseFireBrigade}
	case models.TypeFlood:
		return []models.ResponseType{models.ResponseRescueTeam, models.ResponseVolunteerTeam}
	case models.TypePowerOutage, models.TypeInfrastructureFailure, models.TypeNaturalDisaster, models.TypeOther:
		return []models.ResponseType{models.ResponsePolice}
	}
	return []models.ResponseType{models.ResponsePolice}
}

// Merge объединяет базовый набор с рекомендациями; порядок сохраняется, дубликатов нет
func Merge(base []models.ResponseType, rec Recommendation) []models.ResponseType {
	out := make([]models.ResponseType, 0, len(base)+3)
	seen := make(map[models.ResponseType]bool, len(base)+3)
	add := func(rt models.ResponseType) {
		if !seen[rt] {
			seen[rt] = true
			out = append(out, rt)
		}
	}
	for _, rt := range base {
		add(rt)
	}
	if rec.Ambulance {
		add(models.ResponseAmbulance)
	}
	if rec.Police {
		add(models.ResponsePolice)
	}
	if rec.Fire {
		add(models.ResponseFireBrigade)
	}
	return out
}

// Recommend применяет правила рекомендаций и срочности
func Recommend(t models.IncidentType, q GuidedQuestions, riskScore float64) Recommendation {
	rec := Recommendation{
		Ambulance: q.HasInjuries || q.HasBleeding || q.HasUnconsciousPeople ||
			t == models.TypeMedicalEmergency || riskScore > 70,
		Police: t == models.TypeRoadAccident || t == models.TypeViolence ||
			q.IsRoadBlocked || q.VehiclesInvolved > 1 || q.TrafficSeverity == TrafficSevere,
		Fire: q.HasFireRisk || q.HasExplosionRisk ||
			t == models.TypeFire || t == models.TypeGasLeak,
	}
	rec.Urgency = urgencyFor(q, riskScore)
	return rec
}

func urgencyFor(q GuidedQuestions, riskScore float64) Urgency {
	switch {
	case q.HasUnconsciousPeople || q.HasBleeding || riskScore > 90:
		return UrgencyCritical
	case q.HasFireRisk || q.HasExplosionRisk || riskScore > 75:
		return UrgencyHigh
	case riskScore < 40 && !q.HasInjuries:
		return UrgencyLow
	default:
		return UrgencyMedium
	}
}

// QuestionsFromIncident выводит ответы на вопросы из полей самого инцидента,
// когда автор их не заполнял
func QuestionsFromIncident(inc *models.Incident) GuidedQuestions {
	q := GuidedQuestions{
		HasInjuries: inc.InjuriesReported > 0,
		HasFireRisk: inc.Type == models.TypeFire || inc.Type == models.TypeGasLeak,
	}
	if inc.Type == models.TypeRoadAccident {
		q.VehiclesInvolved = 1
	}
	return q
}

// BaseResponseMinutes - фиксированное время сбора службы
func BaseResponseMinutes(rt models.ResponseType) int {
	switch rt {
	case models.ResponseFireBrigade:
		return 8
	case models.ResponseAmbulance:
		return 6
	case models.ResponsePolice:
		return 5
	case models.ResponseHospital:
		return 10
	case models.ResponseGasEmergency:
		return 12
	case models.ResponseRescueTeam, models.ResponseVolunteerTeam:
		return 10
	}
	return 10
}

// EstimateArrival = ceil(d / 40 км/ч * 60) + базовое время службы, в минутах
func EstimateArrival(distanceKm float64, rt models.ResponseType) int {
	if distanceKm < 0 || math.IsNaN(distanceKm) {
		distanceKm = 0
	}
	travel := int(math.Ceil(distanceKm / averageSpeedKmh * 60))
	return travel + BaseResponseMinutes(rt)
}

// PlannedService - служба в предварительном плане выезда
type PlannedService struct {
	ResponseType            models.ResponseType `json:"response_type"`
	DistanceKm              float64             `json:"distance_km"`
	EstimatedArrivalMinutes int                 `json:"estimated_arrival_minutes"`
}

// Plan - предварительный план без создания выездов
type Plan struct {
	Recommendation Recommendation   `json:"recommendation"`
	Services       []PlannedService `json:"services"`
}
