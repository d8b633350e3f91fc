package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ActionType - закрытый словарь действий журнала аудита
type ActionType string

const (
	ActionIncidentReported     ActionType = "INCIDENT_REPORTED"
	ActionIncidentVerified     ActionType = "INCIDENT_VERIFIED"
	ActionIncidentRejected     ActionType = "INCIDENT_REJECTED"
	ActionIncidentDuplicate    ActionType = "INCIDENT_DUPLICATE"
	ActionIncidentInProgress   ActionType = "INCIDENT_IN_PROGRESS"
	ActionIncidentResolved     ActionType = "INCIDENT_RESOLVED"
	ActionVerificationRecorded ActionType = "VERIFICATION_RECORDED"
	ActionResourceAssigned     ActionType = "RESOURCE_ASSIGNED"
	ActionConfigEnabled        ActionType = "SYSTEM_CONFIG_ENABLED"
	ActionConfigDisabled       ActionType = "SYSTEM_CONFIG_DISABLED"
	ActionConfigInitialized    ActionType = "SYSTEM_CONFIG_INITIALIZED"
	ActionTrustScoreUpdated    ActionType = "USER_TRUST_SCORE_UPDATED"
)

func (a ActionType) Valid() bool {
	switch a {
	case ActionIncidentReported, ActionIncidentVerified, ActionIncidentRejected, ActionIncidentDuplicate,
		ActionIncidentInProgress, ActionIncidentResolved, ActionVerificationRecorded, ActionResourceAssigned,
		ActionConfigEnabled, ActionConfigDisabled, ActionConfigInitialized, ActionTrustScoreUpdated:
		return true
	}
	return false
}

// ActionForStatus - действие аудита для перехода в статус
func ActionForStatus(s Status) ActionType {
	switch s {
	case StatusVerified:
		return ActionIncidentVerified
	case StatusRejected:
		return ActionIncidentRejected
	case StatusDuplicate:
		return ActionIncidentDuplicate
	case StatusInProgress:
		return ActionIncidentInProgress
	case StatusResolved:
		return ActionIncidentResolved
	}
	return ActionIncidentReported
}

// AuditStatus - исход самого действия
type AuditStatus string

const (
	AuditSuccess AuditStatus = "SUCCESS"
	AuditFailed  AuditStatus = "FAILED"
	AuditPending AuditStatus = "PENDING"
)

// LedgerStatus - состояние подтверждения в реестре, не зависит от AuditStatus
type LedgerStatus string

const (
	LedgerPending   LedgerStatus = "PENDING"
	LedgerConfirmed LedgerStatus = "CONFIRMED"
	LedgerFailed    LedgerStatus = "FAILED"
)

// Цели аудита
const (
	TargetIncident     = "INCIDENT"
	TargetSystemConfig = "SYSTEM_CONFIG"
	TargetUser         = "USER"
)

// Ключ метаданных с идентификатором ресурса для RESOURCE_ASSIGNED
const MetadataResourceID = "resourceId"

// AuditLogEntry пишется один раз; потом меняются только поля реестра
type AuditLogEntry struct {
	ID           int64          `json:"id"`
	ActionType   ActionType     `json:"action_type"`
	ActorID      string         `json:"actor_id"`
	ActorRole    string         `json:"actor_role"`
	TargetType   string         `json:"target_type,omitempty"`
	TargetID     string         `json:"target_id,omitempty"`
	Description  string         `json:"description,omitempty"`
	Status       AuditStatus    `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`

	LedgerStatus      LedgerStatus `json:"ledger_status"`
	LedgerTxHash      *string      `json:"ledger_tx_hash,omitempty"`
	LedgerGasUsed     *int64       `json:"ledger_gas_used,omitempty"`
	LedgerBlockNumber *int64       `json:"ledger_block_number,omitempty"`
	LedgerError       string       `json:"ledger_error,omitempty"`
	LedgerAttempts    int          `json:"ledger_attempts"`

	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
}

// MetadataString возвращает строковое значение из метаданных
func (e *AuditLogEntry) MetadataString(key string) string {
	if e.Metadata == nil {
		return ""
	}
	if v, ok := e.Metadata[key].(string); ok {
		return v
	}
	return ""
}

// MetadataJSON сериализует метаданные; пустые метаданные дают пустую строку
func (e *AuditLogEntry) MetadataJSON() (string, error) {
	if len(e.Metadata) == 0 {
		return "", nil
	}
	b, err := json.Marshal(e.Metadata)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// IncidentID разбирает TargetID как идентификатор инцидента
func (e *AuditLogEntry) IncidentID() (uuid.UUID, error) {
	return uuid.Parse(e.TargetID)
}

// LedgerReceipt - подтверждение записи в реестре
type LedgerReceipt struct {
	TxHash      string
	GasUsed     int64
	BlockNumber int64
}

// AuditFilter - параметры выборки журнала
type AuditFilter struct {
	ActionType   ActionType
	ActorID      string
	Status       AuditStatus
	LedgerStatus LedgerStatus
	From         *time.Time
	To           *time.Time
	Page         int
	PageSize     int
}

// AuditStats - сводка по журналу
type AuditStats struct {
	ByActionType   map[string]int64 `json:"by_action_type"`
	ByStatus       map[string]int64 `json:"by_status"`
	ByLedgerStatus map[string]int64 `json:"by_ledger_status"`
	Total          int64            `json:"total"`
}
