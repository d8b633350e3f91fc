package v1

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/ledger"
	"github.com/AdwikaVishal/Disaster-Management/internal/models"
)

// AuditService - журнал аудита
type AuditService interface {
	Get(ctx context.Context, id int64) (*models.AuditLogEntry, error)
	GetByTxHash(ctx context.Context, txHash string) (*models.AuditLogEntry, error)
	List(ctx context.Context, filter models.AuditFilter) ([]*models.AuditLogEntry, int64, error)
	Trail(ctx context.Context, targetType, targetID string) ([]*models.AuditLogEntry, error)
	Stats(ctx context.Context) (*models.AuditStats, error)
	ListPending(ctx context.Context, minAge time.Duration, limit int) ([]*models.AuditLogEntry, error)
	Retry(ctx context.Context, id int64) error
	ExportCSV(ctx context.Context, w io.Writer, filter models.AuditFilter) error
}

// ConfigService - флаги поведения системы
type ConfigService interface {
	Get(ctx context.Context, key string) (*models.ConfigFlag, error)
	All(ctx context.Context) ([]*models.ConfigFlag, error)
	Set(ctx context.Context, key string, value bool, actor models.Actor) (*models.ConfigFlag, error)
	InitializeDefaults(ctx context.Context, actor models.Actor) ([]string, error)
}

// LedgerHealthChecker - состояние шлюза реестра
type LedgerHealthChecker interface {
	Health(ctx context.Context) ledger.Health
}

// RealtimeServer обслуживает websocket ленту
type RealtimeServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request)
}
