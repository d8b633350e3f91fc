package models

import (
	"time"

	"github.com/google/uuid"
)

// ResponseType - вид экстренной службы
type ResponseType string

const (
	ResponseFireBrigade   ResponseType = "FIRE_BRIGADE"
	ResponseAmbulance     ResponseType = "AMBULANCE"
	ResponsePolice        ResponseType = "POLICE"
	ResponseRescueTeam    ResponseType = "RESCUE_TEAM"
	ResponseGasEmergency  ResponseType = "GAS_EMERGENCY"
	ResponseHospital      ResponseType = "HOSPITAL"
	ResponseVolunteerTeam ResponseType = "VOLUNTEER_TEAM"
)

// DispatchStatus - состояние выезда
type DispatchStatus string

const (
	DispatchDispatched DispatchStatus = "DISPATCHED"
	DispatchEnRoute    DispatchStatus = "EN_ROUTE"
	DispatchArrived    DispatchStatus = "ARRIVED"
	DispatchCompleted  DispatchStatus = "COMPLETED"
	DispatchCancelled  DispatchStatus = "CANCELLED"
)

// DispatchRecord - одно назначение службы на инцидент
type DispatchRecord struct {
	ID                      uuid.UUID      `json:"id"`
	IncidentID              uuid.UUID      `json:"incident_id"`
	ResponseType            ResponseType   `json:"response_type"`
	Status                  DispatchStatus `json:"status"`
	ResourceID              string         `json:"resource_id"`
	EstimatedArrivalMinutes int            `json:"estimated_arrival_minutes"`
	DistanceKm              float64        `json:"distance_km"`
	DispatchedAt            time.Time      `json:"dispatched_at"`
}
