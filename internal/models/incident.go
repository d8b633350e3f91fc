package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentType - тип происшествия
type IncidentType string

const (
	TypeFire                  IncidentType = "FIRE"
	TypeFlood                 IncidentType = "FLOOD"
	TypeViolence              IncidentType = "VIOLENCE"
	TypeRoadAccident          IncidentType = "ROAD_ACCIDENT"
	TypeGasLeak               IncidentType = "GAS_LEAK"
	TypePowerOutage           IncidentType = "POWER_OUTAGE"
	TypeInfrastructureFailure IncidentType = "INFRASTRUCTURE_FAILURE"
	TypeMedicalEmergency      IncidentType = "MEDICAL_EMERGENCY"
	TypeNaturalDisaster       IncidentType = "NATURAL_DISASTER"
	TypeOther                 IncidentType = "OTHER"
)

func (t IncidentType) Valid() bool {
	switch t {
	case TypeFire, TypeFlood, TypeViolence, TypeRoadAccident, TypeGasLeak, TypePowerOutage,
		TypeInfrastructureFailure, TypeMedicalEmergency, TypeNaturalDisaster, TypeOther:
		return true
	}
	return false
}

// Severity - тяжесть происшествия, заявленная автором
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Status - состояние жизненного цикла инцидента
type Status string

const (
	StatusNew        Status = "NEW"
	StatusVerified   Status = "VERIFIED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusRejected   Status = "REJECTED"
	StatusDuplicate  Status = "DUPLICATE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusVerified, StatusInProgress, StatusResolved, StatusRejected, StatusDuplicate:
		return true
	}
	return false
}

// Terminal сообщает, что из состояния больше нет переходов
func (s Status) Terminal() bool {
	switch s {
	case StatusResolved, StatusRejected, StatusDuplicate:
		return true
	}
	return false
}

// Incident - сообщение о происшествии вместе с результатами оценки
type Incident struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        IncidentType `json:"type"`
	Severity    Severity     `json:"severity"`
	Status      Status       `json:"status"`

	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Address   string   `json:"address,omitempty"`
	Landmark  string   `json:"landmark,omitempty"`
	MediaURLs []string `json:"media_urls,omitempty"`

	// Слабая ссылка на автора, сам пользователь живет в другом хранилище
	ReporterID *uuid.UUID `json:"reporter_id,omitempty"`

	Upvotes           int `json:"upvotes"`
	Flags             int `json:"flags"`
	VerificationCount int `json:"verification_count"`
	InjuriesReported  int `json:"injuries_reported"`
	PeopleInvolved    int `json:"people_involved"`

	// nil до первой оценки
	FraudProbability *float64 `json:"fraud_probability,omitempty"`
	IsFraud          bool     `json:"is_fraud"`
	RiskScore        *float64 `json:"risk_score,omitempty"`
	RiskLevel        *string  `json:"risk_level,omitempty"`
	SimilarityScore  *float64 `json:"similarity_score,omitempty"`

	DistanceToResponder   *float64 `json:"distance_to_responder,omitempty"`
	NearSensitiveLocation bool     `json:"near_sensitive_location"`

	LedgerTxHash   *string `json:"ledger_tx_hash,omitempty"`
	LedgerVerified bool    `json:"ledger_verified"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// HasMedia - приложены ли к сообщению фото/видео
func (i *Incident) HasMedia() bool {
	return len(i.MediaURLs) > 0
}

// Scores - результаты одного прохода оценки, сохраняются вместе
type Scores struct {
	FraudProbability *float64
	IsFraud          bool
	RiskScore        *float64
	RiskLevel        *string
	SimilarityScore  *float64
}

// Apply переносит оценки в инцидент
func (s Scores) Apply(i *Incident) {
	i.FraudProbability = s.FraudProbability
	i.IsFraud = s.IsFraud
	i.RiskScore = s.RiskScore
	i.RiskLevel = s.RiskLevel
	if s.SimilarityScore != nil {
		i.SimilarityScore = s.SimilarityScore
	}
}

// ActiveStatuses - инцидент еще ждет реакции
var ActiveStatuses = []Status{StatusNew, StatusVerified, StatusInProgress}

// IncidentOrder - порядок выдачи списка
type IncidentOrder string

const (
	OrderNewest     IncidentOrder = ""
	OrderRisk       IncidentOrder = "risk"
	OrderSimilarity IncidentOrder = "similarity"
)

// NearbyIncident - инцидент с расстоянием от точки запроса
type NearbyIncident struct {
	*Incident
	DistanceKm float64 `json:"distance_km"`
}

// BoundingBox - прямоугольник координат для предварительного отбора по радиусу
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// IncidentFilter - параметры выборки списка инцидентов.
// Status и Statuses складываются через AND; пустые поля не фильтруют
type IncidentFilter struct {
	Status        Status
	Statuses      []Status
	Severity      Severity
	Type          IncidentType
	MinRiskScore  *float64
	MinSimilarity *float64
	ExcludeID     *uuid.UUID
	Since         *time.Time
	Area          *BoundingBox
	Order         IncidentOrder
	Page          int
	PageSize      int
}

// TransitionCheck проверяет переход из текущего статуса под блокировкой строки
type TransitionCheck func(from Status) error
