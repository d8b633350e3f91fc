package models

import "time"

// Известные ключи флагов
const (
	FlagAutoDispatch  = "auto-dispatch-volunteers"
	FlagAIRiskScoring = "ai-risk-scoring"
	FlagLockdownMode  = "lockdown-mode"
)

// ConfigFlag - булев флаг поведения системы
type ConfigFlag struct {
	Key         string    `json:"key"`
	Value       bool      `json:"value"`
	Description string    `json:"description"`
	UpdatedBy   string    `json:"updated_by"`
	UpdatedAt   time.Time `json:"updated_at"`
}
