package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const auditColumns = `
	id, action_type, actor_id, actor_role, target_type, target_id, description,
	status, error_message, metadata,
	ledger_status, ledger_tx_hash, ledger_gas_used, ledger_block_number, ledger_error, ledger_attempts,
	created_at, confirmed_at`

// Запись свободна, если ее никто не захватил или аренда истекла
const auditUnclaimed = `(ledger_claimed_until IS NULL OR ledger_claimed_until < NOW())`

type AuditRepository struct {
	db *pgxpool.Pool
}

func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{db: db}
}

func scanAudit(row pgx.Row) (*models.AuditLogEntry, error) {
	e := &models.AuditLogEntry{}
	err := row.Scan(
		&e.ID, &e.ActionType, &e.ActorID, &e.ActorRole, &e.TargetType, &e.TargetID, &e.Description,
		&e.Status, &e.ErrorMessage, &e.Metadata,
		&e.LedgerStatus, &e.LedgerTxHash, &e.LedgerGasUsed, &e.LedgerBlockNumber, &e.LedgerError, &e.LedgerAttempts,
		&e.CreatedAt, &e.ConfirmedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func collectAudit(rows pgx.Rows) ([]*models.AuditLogEntry, error) {
	defer rows.Close()
	entries := make([]*models.AuditLogEntry, 0)
	for rows.Next() {
		e, err := scanAudit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return entries, nil
}

// Create сохраняет запись; id и created_at выдает база
func (r *AuditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	var metadata any
	if len(entry.Metadata) > 0 {
		metadata = entry.Metadata
	}
	query := `
		INSERT INTO audit_logs (action_type, actor_id, actor_role, target_type, target_id, description,
			status, error_message, metadata, ledger_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		string(entry.ActionType),
		entry.ActorID,
		entry.ActorRole,
		entry.TargetType,
		entry.TargetID,
		entry.Description,
		string(entry.Status),
		entry.ErrorMessage,
		metadata,
		string(entry.LedgerStatus),
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}
	return nil
}

func (r *AuditRepository) GetByID(ctx context.Context, id int64) (*models.AuditLogEntry, error) {
	entry, err := scanAudit(r.db.QueryRow(ctx, `SELECT `+auditColumns+` FROM audit_logs WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("audit entry %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get audit entry: %w", err)
	}
	return entry, nil
}

func (r *AuditRepository) GetByTxHash(ctx context.Context, txHash string) (*models.AuditLogEntry, error) {
	entry, err := scanAudit(r.db.QueryRow(ctx, `SELECT `+auditColumns+` FROM audit_logs WHERE ledger_tx_hash = $1;`, txHash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("audit entry with tx %s: %w", txHash, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get audit entry by tx hash: %w", err)
	}
	return entry, nil
}

// List возвращает страницу журнала и общее число записей под фильтром
func (r *AuditRepository) List(ctx context.Context, filter models.AuditFilter) ([]*models.AuditLogEntry, int64, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.ActionType != "" {
		add("action_type = $%d", string(filter.ActionType))
	}
	if filter.ActorID != "" {
		add("actor_id = $%d", filter.ActorID)
	}
	if filter.Status != "" {
		add("status = $%d", string(filter.Status))
	}
	if filter.LedgerStatus != "" {
		add("ledger_status = $%d", string(filter.LedgerStatus))
	}
	if filter.From != nil {
		add("created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("created_at <= $%d", *filter.To)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM audit_logs`+where+`;`, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)
	query := `SELECT ` + auditColumns + ` FROM audit_logs` + where +
		fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d;", len(args)-1, len(args))
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}
	entries, err := collectAudit(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// ListByTarget - история объекта по времени
func (r *AuditRepository) ListByTarget(ctx context.Context, targetType, targetID string) ([]*models.AuditLogEntry, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_logs WHERE target_type = $1 AND target_id = $2 ORDER BY created_at, id;`
	rows, err := r.db.Query(ctx, query, targetType, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit trail: %w", err)
	}
	return collectAudit(rows)
}

// ListPending - неподтвержденные записи старше olderThan, которые сейчас никто не обрабатывает
func (r *AuditRepository) ListPending(ctx context.Context, olderThan time.Time, limit int) ([]*models.AuditLogEntry, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_logs
		WHERE ledger_status = 'PENDING' AND created_at <= $1 AND ` + auditUnclaimed + `
		ORDER BY created_at
		LIMIT $2;`
	rows, err := r.db.Query(ctx, query, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending audit entries: %w", err)
	}
	return collectAudit(rows)
}

func (r *AuditRepository) Stats(ctx context.Context) (*models.AuditStats, error) {
	stats := &models.AuditStats{}
	var err error
	if stats.ByActionType, err = r.countBy(ctx, "action_type"); err != nil {
		return nil, err
	}
	if stats.ByStatus, err = r.countBy(ctx, "status"); err != nil {
		return nil, err
	}
	if stats.ByLedgerStatus, err = r.countBy(ctx, "ledger_status"); err != nil {
		return nil, err
	}
	for _, n := range stats.ByStatus {
		stats.Total += n
	}
	return stats, nil
}

// countBy группирует журнал по колонке; имя колонки приходит только из кода
func (r *AuditRepository) countBy(ctx context.Context, column string) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT `+column+`, COUNT(*) FROM audit_logs GROUP BY `+column+`;`)
	if err != nil {
		return nil, fmt.Errorf("failed to count audit entries by %s: %w", column, err)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var (
			key   string
			count int64
		)
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("failed to scan audit stats row: %w", err)
		}
		out[key] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error stats iteration: %w", err)
	}
	return out, nil
}

// Claim захватывает PENDING запись на время lease и увеличивает счетчик попыток
func (r *AuditRepository) Claim(ctx context.Context, id int64, lease time.Duration) (*models.AuditLogEntry, bool, error) {
	query := `
		UPDATE audit_logs SET
			ledger_attempts = ledger_attempts + 1,
			ledger_claimed_until = NOW() + make_interval(secs => $2)
		WHERE id = $1 AND ledger_status = 'PENDING' AND ` + auditUnclaimed + `
		RETURNING ` + auditColumns + `;`
	entry, err := scanAudit(r.db.QueryRow(ctx, query, id, lease.Seconds()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to claim audit entry: %w", err)
	}
	return entry, true, nil
}

// MarkConfirmed меняет только PENDING записи; false - запись уже не в PENDING
func (r *AuditRepository) MarkConfirmed(ctx context.Context, id int64, receipt models.LedgerReceipt) (bool, error) {
	query := `
		UPDATE audit_logs SET
			ledger_status = 'CONFIRMED',
			ledger_tx_hash = $2,
			ledger_gas_used = $3,
			ledger_block_number = $4,
			ledger_error = '',
			ledger_claimed_until = NULL,
			confirmed_at = NOW()
		WHERE id = $1 AND ledger_status = 'PENDING';
	`
	cmdTag, err := r.db.Exec(ctx, query, id, receipt.TxHash, receipt.GasUsed, receipt.BlockNumber)
	if err != nil {
		if isUniqueViolation(err) {
			return false, fmt.Errorf("ledger tx hash %s already stored: %w", receipt.TxHash, models.ErrConflict)
		}
		return false, fmt.Errorf("failed to mark audit entry confirmed: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *AuditRepository) MarkFailed(ctx context.Context, id int64, reason string) (bool, error) {
	query := `
		UPDATE audit_logs SET
			ledger_status = 'FAILED',
			ledger_error = $2,
			ledger_claimed_until = NULL
		WHERE id = $1 AND ledger_status = 'PENDING';
	`
	cmdTag, err := r.db.Exec(ctx, query, id, reason)
	if err != nil {
		return false, fmt.Errorf("failed to mark audit entry failed: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// ResetFailed возвращает FAILED запись в PENDING для повторной отправки
func (r *AuditRepository) ResetFailed(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE audit_logs SET
			ledger_status = 'PENDING',
			ledger_error = '',
			ledger_claimed_until = NULL
		WHERE id = $1 AND ledger_status = 'FAILED';
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to reset audit entry: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
