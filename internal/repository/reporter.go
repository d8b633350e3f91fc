package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReporterRepository struct {
	db *pgxpool.Pool
}

func NewReporterRepository(db *pgxpool.Pool) *ReporterRepository {
	return &ReporterRepository{db: db}
}

// GetByID возвращает автора по идентификатору
func (r *ReporterRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Reporter, error) {
	query := `
		SELECT id, trust_score, total_reports, verified_reports, flagged_reports, verified, created_at
		FROM reporters
		WHERE id = $1;
	`
	rep := &models.Reporter{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rep.ID,
		&rep.TrustScore,
		&rep.TotalReports,
		&rep.VerifiedReports,
		&rep.FlaggedReports,
		&rep.Verified,
		&rep.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("reporter with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get reporter by id: %w", err)
	}
	return rep, nil
}

// IncrementTotalReports увеличивает счетчик сообщений; неизвестный автор создается с доверием по умолчанию
func (r *ReporterRepository) IncrementTotalReports(ctx context.Context, id uuid.UUID) error {
	query := `
		INSERT INTO reporters (id, trust_score, total_reports)
		VALUES ($1, $2, 1)
		ON CONFLICT (id) DO UPDATE SET total_reports = reporters.total_reports + 1;
	`
	if _, err := r.db.Exec(ctx, query, id, models.DefaultTrustScore); err != nil {
		return fmt.Errorf("failed to increment reporter total reports: %w", err)
	}
	return nil
}

// AdjustReputation атомарно меняет счетчики и доверие; доверие ограничивается диапазоном в самом запросе
func (r *ReporterRepository) AdjustReputation(ctx context.Context, id uuid.UUID, change models.ReputationChange) error {
	query := `
		INSERT INTO reporters (id, trust_score, verified_reports, flagged_reports)
		VALUES ($1, $2::float8, $4, $7)
		ON CONFLICT (id) DO UPDATE SET
			trust_score = GREATEST($5::float8, LEAST($6::float8, reporters.trust_score + $3::float8)),
			verified_reports = reporters.verified_reports + $4,
			flagged_reports = reporters.flagged_reports + $7;
	`
	_, err := r.db.Exec(ctx, query,
		id,
		change.ApplyTo(models.DefaultTrustScore),
		change.TrustDelta,
		change.VerifiedReports,
		models.MinTrustScore,
		models.MaxTrustScore,
		change.FlaggedReports,
	)
	if err != nil {
		return fmt.Errorf("failed to adjust reporter reputation: %w", err)
	}
	return nil
}

// SetTrustScore задает доверие автора и возвращает прежнее значение; значение ограничивается диапазоном
func (r *ReporterRepository) SetTrustScore(ctx context.Context, id uuid.UUID, score float64) (float64, error) {
	query := `
		WITH prev AS (
			SELECT trust_score FROM reporters WHERE id = $1 FOR UPDATE
		)
		UPDATE reporters SET trust_score = $2
		WHERE id = $1
		RETURNING (SELECT trust_score FROM prev);
	`
	var old float64
	err := r.db.QueryRow(ctx, query, id, models.ClampTrustScore(score)).Scan(&old)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("reporter with id %s: %w", id, models.ErrNotFound)
		}
		return 0, fmt.Errorf("failed to set reporter trust score: %w", err)
	}
	return old, nil
}
