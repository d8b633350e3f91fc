package repository

import (
	"context"
	"fmt"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DispatchRepository struct {
	db *pgxpool.Pool
}

func NewDispatchRepository(db *pgxpool.Pool) *DispatchRepository {
	return &DispatchRepository{db: db}
}

// Create сохраняет назначение службы
func (r *DispatchRepository) Create(ctx context.Context, record *models.DispatchRecord) error {
	query := `
		INSERT INTO dispatch_records (id, incident_id, response_type, status, resource_id, estimated_arrival_minutes, distance_km, dispatched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		record.ID,
		record.IncidentID,
		string(record.ResponseType),
		string(record.Status),
		record.ResourceID,
		record.EstimatedArrivalMinutes,
		record.DistanceKm,
		record.DispatchedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create dispatch record: %w", err)
	}
	return nil
}

func (r *DispatchRepository) ListByIncident(ctx context.Context, incidentID uuid.UUID) ([]*models.DispatchRecord, error) {
	query := `
		SELECT id, incident_id, response_type, status, resource_id, estimated_arrival_minutes, distance_km, dispatched_at
		FROM dispatch_records
		WHERE incident_id = $1
		ORDER BY dispatched_at;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatch records: %w", err)
	}
	defer rows.Close()

	records := make([]*models.DispatchRecord, 0)
	for rows.Next() {
		d := &models.DispatchRecord{}
		err := rows.Scan(&d.ID, &d.IncidentID, &d.ResponseType, &d.Status, &d.ResourceID, &d.EstimatedArrivalMinutes, &d.DistanceKm, &d.DispatchedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dispatch record row: %w", err)
		}
		records = append(records, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return records, nil
}
