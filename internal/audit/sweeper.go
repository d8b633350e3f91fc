package audit

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const sweepLockTTL = time.Minute

// PendingLister возвращает застрявшие записи
type PendingLister interface {
	ListPending(ctx context.Context, minAge time.Duration, limit int) ([]*models.AuditLogEntry, error)
}

// Locker - блокировка между экземплярами
type Locker interface {
	TryLock(ctx context.Context, owner string, ttl time.Duration) (bool, error)
}

// Sweeper по расписанию возвращает в очередь записи, застрявшие в PENDING
type Sweeper struct {
	cron       *cron.Cron
	lister     PendingLister
	queue      Queue
	locker     Locker
	logger     *logrus.Logger
	minAge     time.Duration
	batch      int
	instanceID string
}

func NewSweeper(lister PendingLister, queue Queue, locker Locker, logger *logrus.Logger, minAge time.Duration, batch int) *Sweeper {
	instanceID, err := os.Hostname()
	if err != nil || instanceID == "" {
		instanceID = fmt.Sprintf("instance-%d", time.Now().UnixNano())
	}
	return &Sweeper{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		lister:     lister,
		queue:      queue,
		locker:     locker,
		logger:     logger,
		minAge:     minAge,
		batch:      batch,
		instanceID: instanceID,
	}
}

// Start регистрирует обход по расписанию cron (поддерживаются дескрипторы вида "@every 5m")
func (s *Sweeper) Start(ctx context.Context, schedule string) error {
	if _, err := s.cron.AddFunc(schedule, func() { s.Sweep(ctx) }); err != nil {
		return fmt.Errorf("failed to register ledger sweep %q: %w", schedule, err)
	}
	s.cron.Start()
	s.logger.WithField("schedule", schedule).Info("Ledger sweep scheduler started")
	return nil
}

// Stop ждет завершения текущего обхода
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Ledger sweep scheduler stopped")
}

// Sweep выполняет один обход и возвращает число записей, поставленных в очередь
func (s *Sweeper) Sweep(ctx context.Context) int {
	log := s.logger.WithField("component", "ledger_sweep")

	if s.locker != nil {
		acquired, err := s.locker.TryLock(ctx, s.instanceID, sweepLockTTL)
		if err != nil {
			log.WithError(err).Error("Failed to acquire ledger sweep lock")
			return 0
		}
		if !acquired {
			log.Debug("Ledger sweep already running on another instance, skipping")
			return 0
		}
	}

	entries, err := s.lister.ListPending(ctx, s.minAge, s.batch)
	if err != nil {
		log.WithError(err).Error("Failed to list pending audit entries")
		return 0
	}

	requeued := 0
	for _, e := range entries {
		if err := s.queue.Enqueue(ctx, e.ID); err != nil {
			log.WithError(err).WithField("audit_id", e.ID).Warn("Failed to re-enqueue pending audit entry")
			continue
		}
		requeued++
	}
	if requeued > 0 {
		log.WithField("requeued", requeued).Info("Re-enqueued pending audit entries")
	}
	return requeued
}
