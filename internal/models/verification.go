package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationType - вид отклика сообщества на инцидент
type VerificationType string

const (
	VerificationUpvote   VerificationType = "UPVOTE"
	VerificationFlag     VerificationType = "FLAG"
	VerificationDetailed VerificationType = "DETAILED_VERIFICATION"
	VerificationAdmin    VerificationType = "ADMIN_VERIFICATION"
)

func (t VerificationType) Valid() bool {
	switch t {
	case VerificationUpvote, VerificationFlag, VerificationDetailed, VerificationAdmin:
		return true
	}
	return false
}

// Verification создается на каждый вызов и больше не меняется
type Verification struct {
	ID              uuid.UUID        `json:"id"`
	IncidentID      uuid.UUID        `json:"incident_id"`
	VerifierID      uuid.UUID        `json:"verifier_id"`
	Type            VerificationType `json:"type"`
	IsAccurate      bool             `json:"is_accurate"`
	ConfidenceLevel int              `json:"confidence_level"`
	Comments        string           `json:"comments,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// CounterDelta - на сколько увеличить счетчики инцидента
type CounterDelta struct {
	Upvotes int
	Flags   int
}

// Delta возвращает приращения счетчиков для типа отклика
func (t VerificationType) Delta() CounterDelta {
	switch t {
	case VerificationUpvote:
		return CounterDelta{Upvotes: 1}
	case VerificationFlag:
		return CounterDelta{Flags: 1}
	}
	return CounterDelta{}
}
