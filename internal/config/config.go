package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`

	// Postgres pool Config
	DBMaxConns        int `env:"DB_MAX_CONNS" envDefault:"10"`
	DBConnectAttempts int `env:"DB_CONNECT_ATTEMPTS" envDefault:"5"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`
	RedisPool int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Webhook Config
	WebhookURLs       []string      `env:"WEBHOOK_URLS"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Scoring service Config
	ScoringBaseURL string        `env:"SCORING_BASE_URL"`
	ScoringTimeout time.Duration `env:"SCORING_TIMEOUT" envDefault:"3s"`

	// Ledger gateway Config
	LedgerBaseURL         string        `env:"LEDGER_BASE_URL"`
	LedgerContractAddress string        `env:"LEDGER_CONTRACT_ADDRESS"`
	LedgerTimeout         time.Duration `env:"LEDGER_TIMEOUT" envDefault:"10s"`
	LedgerWorkers         int           `env:"LEDGER_WORKERS" envDefault:"4"`
	LedgerSweepSchedule   string        `env:"LEDGER_SWEEP_SCHEDULE" envDefault:"@every 5m"`
	LedgerSweepMinAge     time.Duration `env:"LEDGER_SWEEP_MIN_AGE" envDefault:"2m"`
	LedgerSweepBatch      int           `env:"LEDGER_SWEEP_BATCH" envDefault:"100"`

	// Cache Config
	IncidentCacheTTL time.Duration `env:"INCIDENT_CACHE_TTL" envDefault:"5m"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "json"),
		DBMaxConns:            getEnvAsInt("DB_MAX_CONNS", 10),
		DBConnectAttempts:     getEnvAsInt("DB_CONNECT_ATTEMPTS", 5),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		RedisPool:             getEnvAsInt("REDIS_POOL_SIZE", 10),
		WebhookURLs:           getEnvAsList("WEBHOOK_URLS"),
		WebhookSecret:         os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:        getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:     getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:      getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		ScoringBaseURL:        strings.TrimRight(os.Getenv("SCORING_BASE_URL"), "/"),
		ScoringTimeout:        getEnvAsDuration("SCORING_TIMEOUT", 3*time.Second),
		LedgerBaseURL:         strings.TrimRight(os.Getenv("LEDGER_BASE_URL"), "/"),
		LedgerContractAddress: os.Getenv("LEDGER_CONTRACT_ADDRESS"),
		LedgerTimeout:         getEnvAsDuration("LEDGER_TIMEOUT", 10*time.Second),
		LedgerWorkers:         getEnvAsInt("LEDGER_WORKERS", 4),
		LedgerSweepSchedule:   getEnv("LEDGER_SWEEP_SCHEDULE", "@every 5m"),
		LedgerSweepMinAge:     getEnvAsDuration("LEDGER_SWEEP_MIN_AGE", 2*time.Minute),
		LedgerSweepBatch:      getEnvAsInt("LEDGER_SWEEP_BATCH", 100),
		IncidentCacheTTL:      getEnvAsDuration("INCIDENT_CACHE_TTL", 5*time.Minute),
		APIKeys:               getEnvAsList("API_KEYS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.LedgerWorkers < 1 {
		cfg.LedgerWorkers = 1
	}
	if cfg.DBConnectAttempts < 1 {
		cfg.DBConnectAttempts = 1
	}

	return cfg, nil
}

const (
	minLedgerClaimLease = 2 * time.Minute
	ledgerClaimMargin   = 30 * time.Second
)

// LedgerClaimLease - время захвата записи аудита обработчиком; всегда больше двух таймаутов реестра
func (c *Config) LedgerClaimLease() time.Duration {
	lease := 2*c.LedgerTimeout + ledgerClaimMargin
	if lease < minLedgerClaimLease {
		return minLedgerClaimLease
	}
	return lease
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
