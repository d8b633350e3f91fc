package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const connectBackoff = time.Second

// NewPostgresDB создает пул соединений PostgreSQL. База в compose поднимается
// позже сервиса, поэтому ping повторяется DBConnectAttempts раз.
func NewPostgresDB(ctx context.Context, appCfg *config.Config, log *logrus.Logger) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}
	if appCfg.DBMaxConns > 0 {
		cfgPool.MaxConns = int32(appCfg.DBMaxConns)
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}

	delay := connectBackoff
	for attempt := 1; ; attempt++ {
		err = dbpool.Ping(ctx)
		if err == nil {
			return dbpool, nil
		}
		if attempt >= appCfg.DBConnectAttempts {
			break
		}
		log.WithError(err).WithField("attempt", attempt).Warn("Postgres is not ready, retrying")
		select {
		case <-ctx.Done():
			dbpool.Close()
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	dbpool.Close()
	return nil, fmt.Errorf("не удалось выполнить ping к postgres: %w", err)
}
