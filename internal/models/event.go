package models

import "time"

// EventType - вид уведомления об инциденте
type EventType string

const (
	EventIncidentCreated       EventType = "INCIDENT_CREATED"
	EventIncidentStatusChanged EventType = "INCIDENT_STATUS_CHANGED"
	EventIncidentDispatched    EventType = "INCIDENT_DISPATCHED"
)

// IncidentEvent рассылается подписчикам (вебхуки, живая лента)
type IncidentEvent struct {
	Type           EventType         `json:"type"`
	Incident       *Incident         `json:"incident"`
	PreviousStatus Status            `json:"previous_status,omitempty"`
	Dispatches     []*DispatchRecord `json:"dispatches,omitempty"`
	Timestamp      time.Time         `json:"timestamp"`
}
