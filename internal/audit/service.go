// Package audit ведет журнал действий. Запись в журнал синхронная, подтверждение
// в реестре выполняется позже фоновыми обработчиками и не влияет на исход действия.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Repository - хранилище журнала
type Repository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
	GetByID(ctx context.Context, id int64) (*models.AuditLogEntry, error)
	GetByTxHash(ctx context.Context, txHash string) (*models.AuditLogEntry, error)
	List(ctx context.Context, filter models.AuditFilter) ([]*models.AuditLogEntry, int64, error)
	ListByTarget(ctx context.Context, targetType, targetID string) ([]*models.AuditLogEntry, error)
	ListPending(ctx context.Context, olderThan time.Time, limit int) ([]*models.AuditLogEntry, error)
	Stats(ctx context.Context) (*models.AuditStats, error)
	// Claim захватывает запись в статусе PENDING на время lease; false - запись уже обработана или занята
	Claim(ctx context.Context, id int64, lease time.Duration) (*models.AuditLogEntry, bool, error)
	MarkConfirmed(ctx context.Context, id int64, receipt models.LedgerReceipt) (bool, error)
	MarkFailed(ctx context.Context, id int64, reason string) (bool, error)
	ResetFailed(ctx context.Context, id int64) (bool, error)
}

// Queue - очередь идентификаторов записей на подтверждение
type Queue interface {
	Enqueue(ctx context.Context, id int64) error
}

// Ledger - операции реестра
type Ledger interface {
	LogVerified(ctx context.Context, incidentID string) (models.LedgerReceipt, error)
	LogResource(ctx context.Context, incidentID, resourceID string) (models.LedgerReceipt, error)
	LogResolved(ctx context.Context, incidentID string) (models.LedgerReceipt, error)
	LogGenericAudit(ctx context.Context, entry *models.AuditLogEntry) (models.LedgerReceipt, error)
}

// IncidentProofWriter сохраняет подтверждение реестра в самом инциденте
type IncidentProofWriter interface {
	SetLedgerProof(ctx context.Context, id uuid.UUID, txHash string) error
}

// Service - журнал аудита
type Service struct {
	repo   Repository
	queue  Queue
	ledger Ledger
	proofs IncidentProofWriter
	logger *logrus.Logger
	lease  time.Duration
	now    func() time.Time
}

// NewService создает журнал. lease - сколько запись остается захваченной одним обработчиком.
func NewService(repo Repository, queue Queue, ledger Ledger, proofs IncidentProofWriter, logger *logrus.Logger, lease time.Duration) *Service {
	return &Service{
		repo:   repo,
		queue:  queue,
		ledger: ledger,
		proofs: proofs,
		logger: logger,
		lease:  lease,
		now:    time.Now,
	}
}

// Record сохраняет запись со статусом реестра PENDING и ставит ее в очередь на подтверждение
func (s *Service) Record(ctx context.Context, entry *models.AuditLogEntry) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "AuditService",
		"method":      "Record",
		"action_type": entry.ActionType,
		"target_id":   entry.TargetID,
	})

	if !entry.ActionType.Valid() {
		return fmt.Errorf("audit: unknown action type %q: %w", entry.ActionType, models.ErrValidation)
	}
	if entry.ActorID == "" {
		return fmt.Errorf("audit: actor id is required: %w", models.ErrValidation)
	}
	if entry.Status == "" {
		entry.Status = models.AuditSuccess
	}
	entry.LedgerStatus = models.LedgerPending
	entry.LedgerTxHash = nil
	entry.LedgerAttempts = 0

	if err := s.repo.Create(ctx, entry); err != nil {
		log.WithError(err).Error("Failed to persist audit entry")
		return fmt.Errorf("audit: failed to record entry: %w", err)
	}

	// Сбой очереди не теряет запись: она останется PENDING и ее подберет обход
	if err := s.queue.Enqueue(ctx, entry.ID); err != nil {
		log.WithError(err).WithField("audit_id", entry.ID).Warn("Failed to enqueue audit entry for ledger confirmation")
	}

	log.WithField("audit_id", entry.ID).Debug("Audit entry recorded")
	return nil
}

// Get возвращает запись по идентификатору
func (s *Service) Get(ctx context.Context, id int64) (*models.AuditLogEntry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("audit: failed to get entry %d: %w", id, err)
	}
	return entry, nil
}

// GetByTxHash ищет запись по хешу транзакции реестра
func (s *Service) GetByTxHash(ctx context.Context, txHash string) (*models.AuditLogEntry, error) {
	if txHash == "" {
		return nil, fmt.Errorf("audit: tx hash is required: %w", models.ErrValidation)
	}
	entry, err := s.repo.GetByTxHash(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("audit: failed to get entry by tx hash: %w", err)
	}
	return entry, nil
}

// List возвращает страницу журнала и общее число подходящих записей
func (s *Service) List(ctx context.Context, filter models.AuditFilter) ([]*models.AuditLogEntry, int64, error) {
	if filter.ActionType != "" && !filter.ActionType.Valid() {
		return nil, 0, fmt.Errorf("audit: unknown action type %q: %w", filter.ActionType, models.ErrValidation)
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, 0, fmt.Errorf("audit: date range is inverted: %w", models.ErrValidation)
	}
	normalizePage(&filter)

	entries, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("audit: failed to list entries: %w", err)
	}
	return entries, total, nil
}

// Trail - вся история одной цели по времени
func (s *Service) Trail(ctx context.Context, targetType, targetID string) ([]*models.AuditLogEntry, error) {
	entries, err := s.repo.ListByTarget(ctx, targetType, targetID)
	if err != nil {
		return nil, fmt.Errorf("audit: failed to load trail for %s %s: %w", targetType, targetID, err)
	}
	return entries, nil
}

// Stats - сводка по типам действий и статусам
func (s *Service) Stats(ctx context.Context) (*models.AuditStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("audit: failed to compute stats: %w", err)
	}
	return stats, nil
}

// ListPending - записи, застрявшие в PENDING дольше minAge
func (s *Service) ListPending(ctx context.Context, minAge time.Duration, limit int) ([]*models.AuditLogEntry, error) {
	if limit <= 0 {
		limit = maxPageSize
	}
	entries, err := s.repo.ListPending(ctx, s.now().Add(-minAge), limit)
	if err != nil {
		return nil, fmt.Errorf("audit: failed to list pending entries: %w", err)
	}
	return entries, nil
}

// Retry возвращает запись со статусом FAILED в очередь подтверждения
func (s *Service) Retry(ctx context.Context, id int64) error {
	ok, err := s.repo.ResetFailed(ctx, id)
	if err != nil {
		return fmt.Errorf("audit: failed to reset entry %d: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("audit: entry %d is not in FAILED ledger status: %w", id, models.ErrInvalidTransition)
	}
	if err := s.queue.Enqueue(ctx, id); err != nil {
		s.logger.WithError(err).WithField("audit_id", id).Warn("Failed to enqueue retried audit entry")
	}
	return nil
}

func normalizePage(f *models.AuditFilter) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
}
