package v1

import (
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/google/uuid"
)

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Title            string     `json:"title" validate:"required,min=2,max=255"`
	Description      string     `json:"description,omitempty" validate:"max=5000"`
	Type             string     `json:"type" validate:"required,oneof=FIRE FLOOD VIOLENCE ROAD_ACCIDENT GAS_LEAK POWER_OUTAGE INFRASTRUCTURE_FAILURE MEDICAL_EMERGENCY NATURAL_DISASTER OTHER"`
	Severity         string     `json:"severity" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	Latitude         float64    `json:"latitude" validate:"latitude"`
	Longitude        float64    `json:"longitude" validate:"longitude"`
	Address          string     `json:"address,omitempty" validate:"max=500"`
	Landmark         string     `json:"landmark,omitempty" validate:"max=255"`
	MediaURLs        []string   `json:"media_urls,omitempty" validate:"max=10,dive,url"`
	ReporterID       *uuid.UUID `json:"reporter_id,omitempty"`
	InjuriesReported int        `json:"injuries_reported" validate:"gte=0"`
	PeopleInvolved   int        `json:"people_involved" validate:"gte=0"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                    uuid.UUID  `json:"id"`
	Title                 string     `json:"title"`
	Description           string     `json:"description,omitempty"`
	Type                  string     `json:"type"`
	Severity              string     `json:"severity"`
	Status                string     `json:"status"`
	Latitude              float64    `json:"latitude"`
	Longitude             float64    `json:"longitude"`
	Address               string     `json:"address,omitempty"`
	Landmark              string     `json:"landmark,omitempty"`
	MediaURLs             []string   `json:"media_urls,omitempty"`
	ReporterID            *uuid.UUID `json:"reporter_id,omitempty"`
	Upvotes               int        `json:"upvotes"`
	Flags                 int        `json:"flags"`
	VerificationCount     int        `json:"verification_count"`
	InjuriesReported      int        `json:"injuries_reported"`
	PeopleInvolved        int        `json:"people_involved"`
	FraudProbability      *float64   `json:"fraud_probability,omitempty"`
	IsFraud               bool       `json:"is_fraud"`
	RiskScore             *float64   `json:"risk_score,omitempty"`
	RiskLevel             *string    `json:"risk_level,omitempty"`
	SimilarityScore       *float64   `json:"similarity_score,omitempty"`
	DistanceToResponder   *float64   `json:"distance_to_responder,omitempty"`
	NearSensitiveLocation bool       `json:"near_sensitive_location"`
	LedgerTxHash          *string    `json:"ledger_tx_hash,omitempty"`
	LedgerVerified        bool       `json:"ledger_verified"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	ResolvedAt            *time.Time `json:"resolved_at,omitempty"`
}

// CreateIncidentResponse - инцидент и автоматически назначенные службы
// @Description Инцидент и автоматически назначенные службы
type CreateIncidentResponse struct {
	Incident   *IncidentResponse        `json:"incident"`
	Dispatches []*models.DispatchRecord `json:"dispatches"`
}

// UpdateStatusRequest DTO для смены статуса
// @Description DTO для смены статуса
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=NEW VERIFIED IN_PROGRESS RESOLVED REJECTED DUPLICATE"`
}

// VerificationRequest DTO для отклика сообщества
// @Description DTO для отклика сообщества
type VerificationRequest struct {
	VerifierID      uuid.UUID `json:"verifier_id" validate:"required"`
	Type            string    `json:"type" validate:"required,oneof=UPVOTE FLAG DETAILED_VERIFICATION ADMIN_VERIFICATION"`
	IsAccurate      bool      `json:"is_accurate"`
	ConfidenceLevel int       `json:"confidence_level" validate:"required,min=1,max=10"`
	Comments        string    `json:"comments,omitempty" validate:"max=2000"`
}

// AuditListResponse - страница журнала
// @Description Страница журнала аудита
type AuditListResponse struct {
	Items    []*models.AuditLogEntry `json:"items"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

// SetConfigRequest DTO для изменения флага
// @Description DTO для изменения флага
type SetConfigRequest struct {
	Value *bool `json:"value" validate:"required"`
}

// InitializeConfigResponse - созданные ключи
// @Description Ключи, созданные при инициализации
type InitializeConfigResponse struct {
	Created []string `json:"created"`
}

// NearbyIncidentResponse - инцидент с расстоянием от точки запроса
// @Description Инцидент с расстоянием от точки запроса
type NearbyIncidentResponse struct {
	*IncidentResponse
	DistanceKm float64 `json:"distance_km"`
}

// NearbyResponse - инциденты в радиусе
// @Description Активные инциденты в радиусе от точки
type NearbyResponse struct {
	Latitude  float64                   `json:"latitude"`
	Longitude float64                   `json:"longitude"`
	RadiusKm  float64                   `json:"radius_km"`
	Incidents []*NearbyIncidentResponse `json:"incidents"`
}

// SimilarIncidentsResponse - похожие инциденты
// @Description Инциденты с похожестью не ниже порога
type SimilarIncidentsResponse struct {
	Threshold float64             `json:"threshold"`
	Incidents []*IncidentResponse `json:"incidents"`
}

// TrustScoreRequest DTO для ручной правки доверия
// @Description DTO для ручной правки доверия автора
type TrustScoreRequest struct {
	TrustScore *float64 `json:"trust_score" validate:"required,gte=0,lte=100"`
}
