package audit

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	pollTimeout = 5 * time.Second
	errorDelay  = time.Second
)

// Dequeuer выдает идентификаторы записей из очереди
type Dequeuer interface {
	Dequeue(ctx context.Context, timeout time.Duration) (int64, bool, error)
}

// Confirmer подтверждает запись в реестре
type Confirmer interface {
	Confirm(ctx context.Context, id int64) error
}

// ConfirmationWorker - пул горутин, разбирающих очередь подтверждений
type ConfirmationWorker struct {
	queue     Dequeuer
	confirmer Confirmer
	logger    *logrus.Logger
	workers   int
	wg        sync.WaitGroup
}

func NewConfirmationWorker(queue Dequeuer, confirmer Confirmer, logger *logrus.Logger, workers int) *ConfirmationWorker {
	if workers < 1 {
		workers = 1
	}
	return &ConfirmationWorker{
		queue:     queue,
		confirmer: confirmer,
		logger:    logger,
		workers:   workers,
	}
}

// Start запускает обработчиков; они работают до отмены ctx
func (w *ConfirmationWorker) Start(ctx context.Context) {
	w.logger.WithField("workers", w.workers).Info("Starting ledger confirmation workers...")
	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go func(n int) {
			defer w.wg.Done()
			w.run(ctx, w.logger.WithFields(logrus.Fields{"component": "ledger_worker", "worker": n}))
		}(i)
	}
}

// Wait ждет завершения всех обработчиков
func (w *ConfirmationWorker) Wait() {
	w.wg.Wait()
	w.logger.Info("Ledger confirmation workers stopped.")
}

func (w *ConfirmationWorker) run(ctx context.Context, log *logrus.Entry) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		id, ok, err := w.queue.Dequeue(ctx, pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.WithError(err).Error("Failed to dequeue audit entry")
			select {
			case <-ctx.Done():
				return
			case <-time.After(errorDelay):
			}
			continue
		}
		if !ok {
			continue
		}

		// Ошибка оставляет запись в PENDING, ее вернет в очередь обход
		if err := w.confirmer.Confirm(ctx, id); err != nil {
			log.WithError(err).WithField("audit_id", id).Error("Failed to confirm audit entry")
		}
	}
}
