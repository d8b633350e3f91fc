package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTrustScore = 100.0
	MinTrustScore     = 0.0
	MaxTrustScore     = 100.0
)

// Reporter - срез пользователя, нужный движку (доверие и счетчики сообщений)
type Reporter struct {
	ID              uuid.UUID `json:"id"`
	TrustScore      float64   `json:"trust_score"`
	TotalReports    int       `json:"total_reports"`
	VerifiedReports int       `json:"verified_reports"`
	FlaggedReports  int       `json:"flagged_reports"`
	Verified        bool      `json:"verified"`
	CreatedAt       time.Time `json:"created_at"`
}

// AccountAgeDays возвращает возраст аккаунта в полных днях на момент now
func (r *Reporter) AccountAgeDays(now time.Time) int {
	if r.CreatedAt.IsZero() || now.Before(r.CreatedAt) {
		return 0
	}
	return int(now.Sub(r.CreatedAt).Hours() / 24)
}

// ClampTrustScore ограничивает доверие диапазоном [0,100]
func ClampTrustScore(v float64) float64 {
	if v < MinTrustScore {
		return MinTrustScore
	}
	if v > MaxTrustScore {
		return MaxTrustScore
	}
	return v
}

// Actor - кто совершает действие; идентичность и роль уже проверены снаружи
type Actor struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

const (
	RoleAdmin     = "ADMIN"
	RoleUser      = "USER"
	RoleVolunteer = "VOLUNTEER"
	RoleSystem    = "SYSTEM"
)

// SystemActor - автоматические действия движка
var SystemActor = Actor{ID: "SYSTEM", Role: RoleSystem}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// ReputationChange - изменения счетчиков и доверия автора за одно событие
type ReputationChange struct {
	VerifiedReports int
	FlaggedReports  int
	TrustDelta      float64
}

// ApplyTo возвращает новое доверие после изменения; результат всегда в [MinTrustScore, MaxTrustScore]
func (c ReputationChange) ApplyTo(trust float64) float64 {
	return ClampTrustScore(trust + c.TrustDelta)
}
