package repository

import (
	"context"
	"fmt"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VerificationRepository struct {
	db *pgxpool.Pool
}

func NewVerificationRepository(db *pgxpool.Pool) *VerificationRepository {
	return &VerificationRepository{db: db}
}

// Create добавляет отклик; отклики не меняются и не удаляются
func (r *VerificationRepository) Create(ctx context.Context, v *models.Verification) error {
	query := `
		INSERT INTO verifications (id, incident_id, verifier_id, type, is_accurate, confidence_level, comments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		v.ID,
		v.IncidentID,
		v.VerifierID,
		string(v.Type),
		v.IsAccurate,
		v.ConfidenceLevel,
		v.Comments,
		v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create verification: %w", err)
	}
	return nil
}

// ListByIncident возвращает отклики по инциденту в порядке поступления
func (r *VerificationRepository) ListByIncident(ctx context.Context, incidentID uuid.UUID) ([]*models.Verification, error) {
	query := `
		SELECT id, incident_id, verifier_id, type, is_accurate, confidence_level, comments, created_at
		FROM verifications
		WHERE incident_id = $1
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list verifications: %w", err)
	}
	defer rows.Close()

	list := make([]*models.Verification, 0)
	for rows.Next() {
		v := &models.Verification{}
		if err := rows.Scan(&v.ID, &v.IncidentID, &v.VerifierID, &v.Type, &v.IsAccurate, &v.ConfidenceLevel, &v.Comments, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan verification row: %w", err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return list, nil
}
