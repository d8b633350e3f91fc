package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const incidentColumns = `
	id, title, description, type, severity, status,
	latitude, longitude, address, landmark, media_urls, reporter_id,
	upvotes, flags, verification_count, injuries_reported, people_involved,
	fraud_probability, is_fraud, risk_score, risk_level, similarity_score,
	distance_to_responder, near_sensitive_location,
	ledger_tx_hash, ledger_verified,
	created_at, updated_at, resolved_at`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) *IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	i := &models.Incident{}
	err := row.Scan(
		&i.ID, &i.Title, &i.Description, &i.Type, &i.Severity, &i.Status,
		&i.Latitude, &i.Longitude, &i.Address, &i.Landmark, &i.MediaURLs, &i.ReporterID,
		&i.Upvotes, &i.Flags, &i.VerificationCount, &i.InjuriesReported, &i.PeopleInvolved,
		&i.FraudProbability, &i.IsFraud, &i.RiskScore, &i.RiskLevel, &i.SimilarityScore,
		&i.DistanceToResponder, &i.NearSensitiveLocation,
		&i.LedgerTxHash, &i.LedgerVerified,
		&i.CreatedAt, &i.UpdatedAt, &i.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return i, nil
}

// Create создает новую запись об инциденте в бд вместе с первичными оценками
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	mediaURLs := incident.MediaURLs
	if mediaURLs == nil {
		mediaURLs = []string{}
	}
	query := `
		INSERT INTO incidents (
			id, title, description, type, severity, status,
			latitude, longitude, address, landmark, media_urls, reporter_id,
			injuries_reported, people_involved,
			fraud_probability, is_fraud, risk_score, risk_level, similarity_score,
			distance_to_responder, near_sensitive_location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
	`
	_, err := r.db.Exec(ctx, query,
		incident.ID, incident.Title, incident.Description, string(incident.Type), string(incident.Severity), string(incident.Status),
		incident.Latitude, incident.Longitude, incident.Address, incident.Landmark, mediaURLs, incident.ReporterID,
		incident.InjuriesReported, incident.PeopleInvolved,
		incident.FraudProbability, incident.IsFraud, incident.RiskScore, incident.RiskLevel, incident.SimilarityScore,
		incident.DistanceToResponder, incident.NearSensitiveLocation, incident.CreatedAt, incident.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// List возвращает список инцидентов с фильтрами и пагинацией; порядок задается filter.Order
func (r *IncidentRepository) List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.Status != "" {
		add("status = $%d", string(filter.Status))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, st := range filter.Statuses {
			statuses = append(statuses, string(st))
		}
		add("status = ANY($%d)", statuses)
	}
	if filter.Severity != "" {
		add("severity = $%d", string(filter.Severity))
	}
	if filter.Type != "" {
		add("type = $%d", string(filter.Type))
	}
	if filter.MinRiskScore != nil {
		add("risk_score >= $%d", *filter.MinRiskScore)
	}
	if filter.MinSimilarity != nil {
		add("similarity_score >= $%d", *filter.MinSimilarity)
	}
	if filter.ExcludeID != nil {
		add("id <> $%d", *filter.ExcludeID)
	}
	if filter.Since != nil {
		add("created_at >= $%d", *filter.Since)
	}
	if box := filter.Area; box != nil {
		add("latitude >= $%d", box.MinLat)
		add("latitude <= $%d", box.MaxLat)
		add("longitude >= $%d", box.MinLng)
		add("longitude <= $%d", box.MaxLng)
	}

	query := `SELECT ` + incidentColumns + ` FROM incidents`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)
	query += fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d;", orderClause(filter.Order), len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

func orderClause(order models.IncidentOrder) string {
	switch order {
	case models.OrderRisk:
		return "risk_score DESC NULLS LAST, created_at DESC"
	case models.OrderSimilarity:
		return "similarity_score DESC NULLS LAST, created_at DESC"
	default:
		return "created_at DESC"
	}
}

// Statistics агрегирует инциденты, созданные начиная с since, одной группировкой
func (r *IncidentRepository) Statistics(ctx context.Context, since time.Time) (*models.IncidentStats, error) {
	query := `
		SELECT type, severity, status,
			COUNT(*),
			COUNT(*) FILTER (WHERE similarity_score > $2),
			COALESCE(SUM(risk_score), 0),
			COUNT(risk_score)
		FROM incidents
		WHERE created_at >= $1
		GROUP BY type, severity, status;
	`
	rows, err := r.db.Query(ctx, query, since, models.DuplicateSimilarityThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate incidents: %w", err)
	}
	defer rows.Close()

	stats := models.NewIncidentStats(since)
	for rows.Next() {
		var row models.IncidentStatsRow
		if err := rows.Scan(&row.Type, &row.Severity, &row.Status, &row.Count, &row.Duplicates, &row.RiskSum, &row.RiskCount); err != nil {
			return nil, fmt.Errorf("failed to scan incident statistics row: %w", err)
		}
		stats.Add(row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error statistics iteration: %w", err)
	}
	return stats, nil
}

// UpdateScores сохраняет результаты оценки; похожесть остается прежней, если не передана
func (r *IncidentRepository) UpdateScores(ctx context.Context, id uuid.UUID, scores models.Scores) error {
	query := `
		UPDATE incidents SET
			fraud_probability = $2,
			is_fraud = $3,
			risk_score = $4,
			risk_level = $5,
			similarity_score = COALESCE($6, similarity_score),
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id,
		scores.FraudProbability, scores.IsFraud, scores.RiskScore, scores.RiskLevel, scores.SimilarityScore)
	if err != nil {
		return fmt.Errorf("failed to update incident scores: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// IncrementCounters атомарно увеличивает счетчики откликов и возвращает инцидент после изменения
func (r *IncidentRepository) IncrementCounters(ctx context.Context, id uuid.UUID, delta models.CounterDelta) (*models.Incident, error) {
	query := `
		UPDATE incidents SET
			upvotes = upvotes + $2,
			flags = flags + $3,
			verification_count = verification_count + 1,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + incidentColumns + `;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id, delta.Upvotes, delta.Flags))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to increment incident counters: %w", err)
	}
	return incident, nil
}

// TransitionStatus меняет статус под блокировкой строки. check получает текущий статус
// и может отменить переход; возвращается статус до изменения.
func (r *IncidentRepository) TransitionStatus(ctx context.Context, id uuid.UUID, to models.Status, check models.TransitionCheck) (models.Status, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin status transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var from models.Status
	err = tx.QueryRow(ctx, `SELECT status FROM incidents WHERE id = $1 FOR UPDATE;`, id).Scan(&from)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
		}
		return "", fmt.Errorf("failed to lock incident: %w", err)
	}

	if err := check(from); err != nil {
		return from, err
	}

	// resolved_at выставляется один раз и только вместе с RESOLVED
	query := `
		UPDATE incidents SET
			status = $2::varchar,
			resolved_at = CASE WHEN $2::varchar = 'RESOLVED' THEN COALESCE(resolved_at, NOW()) ELSE NULL END,
			updated_at = NOW()
		WHERE id = $1;
	`
	if _, err := tx.Exec(ctx, query, id, string(to)); err != nil {
		return from, fmt.Errorf("failed to update incident status: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return from, fmt.Errorf("failed to commit status transition: %w", err)
	}
	return from, nil
}

// SetLedgerProof сохраняет хеш подтвержденной транзакции реестра
func (r *IncidentRepository) SetLedgerProof(ctx context.Context, id uuid.UUID, txHash string) error {
	query := `
		UPDATE incidents SET
			ledger_tx_hash = $2,
			ledger_verified = TRUE
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, txHash)
	if err != nil {
		return fmt.Errorf("failed to set incident ledger proof: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
	}
	// Кешированная копия устарела
	return r.InvalidateIncidentCache(ctx, id)
}

func incidentCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("incident:%s", id.String())
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, incidentCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, incidentCacheKey(incident.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, incidentCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
