package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ConfigRepository struct {
	db *pgxpool.Pool
}

func NewConfigRepository(db *pgxpool.Pool) *ConfigRepository {
	return &ConfigRepository{db: db}
}

func (r *ConfigRepository) Get(ctx context.Context, key string) (*models.ConfigFlag, error) {
	query := `SELECT key, value, description, updated_by, updated_at FROM config_flags WHERE key = $1;`
	f := &models.ConfigFlag{}
	err := r.db.QueryRow(ctx, query, key).Scan(&f.Key, &f.Value, &f.Description, &f.UpdatedBy, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("config flag %q: %w", key, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	return f, nil
}

func (r *ConfigRepository) List(ctx context.Context) ([]*models.ConfigFlag, error) {
	rows, err := r.db.Query(ctx, `SELECT key, value, description, updated_by, updated_at FROM config_flags ORDER BY key;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list config flags: %w", err)
	}
	defer rows.Close()

	flags := make([]*models.ConfigFlag, 0)
	for rows.Next() {
		f := &models.ConfigFlag{}
		if err := rows.Scan(&f.Key, &f.Value, &f.Description, &f.UpdatedBy, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan config flag row: %w", err)
		}
		flags = append(flags, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return flags, nil
}

// InsertIfMissing не трогает существующий флаг
func (r *ConfigRepository) InsertIfMissing(ctx context.Context, flag *models.ConfigFlag) (bool, error) {
	query := `
		INSERT INTO config_flags (key, value, description, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (key) DO NOTHING;
	`
	cmdTag, err := r.db.Exec(ctx, query, flag.Key, flag.Value, flag.Description, flag.UpdatedBy, flag.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to insert config flag: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Upsert записывает значение и возвращает прежнее. Описание существующего флага сохраняется.
func (r *ConfigRepository) Upsert(ctx context.Context, flag *models.ConfigFlag) (*bool, error) {
	query := `
		WITH prev AS (
			SELECT value FROM config_flags WHERE key = $1 FOR UPDATE
		), upserted AS (
			INSERT INTO config_flags (key, value, description, updated_by, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
				updated_by = EXCLUDED.updated_by,
				updated_at = EXCLUDED.updated_at
			RETURNING description
		)
		SELECT (SELECT value FROM prev), (SELECT description FROM upserted);
	`
	var old *bool
	err := r.db.QueryRow(ctx, query, flag.Key, flag.Value, flag.Description, flag.UpdatedBy, flag.UpdatedAt).
		Scan(&old, &flag.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert config flag: %w", err)
	}
	return old, nil
}
