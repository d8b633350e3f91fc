package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/AdwikaVishal/Disaster-Management/internal/audit"
	"github.com/AdwikaVishal/Disaster-Management/internal/config"
	"github.com/AdwikaVishal/Disaster-Management/internal/configgate"
	"github.com/AdwikaVishal/Disaster-Management/internal/geo"
	v1 "github.com/AdwikaVishal/Disaster-Management/internal/handler/http/v1"
	"github.com/AdwikaVishal/Disaster-Management/internal/ledger"
	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/AdwikaVishal/Disaster-Management/internal/realtime"
	"github.com/AdwikaVishal/Disaster-Management/internal/repository"
	"github.com/AdwikaVishal/Disaster-Management/internal/scoring"
	"github.com/AdwikaVishal/Disaster-Management/internal/service"
	"github.com/AdwikaVishal/Disaster-Management/internal/webhook"
	"github.com/AdwikaVishal/Disaster-Management/pkg/logger"
	"github.com/AdwikaVishal/Disaster-Management/pkg/postgres"
	redisclient "github.com/AdwikaVishal/Disaster-Management/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/AdwikaVishal/Disaster-Management/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Disaster Management Incident API
// @version 1.0
// @description Incident lifecycle, community verification and responder dispatch.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient, cfg.IncidentCacheTTL)
	reporterRepo := repository.NewReporterRepository(dbpool)
	verificationRepo := repository.NewVerificationRepository(dbpool)
	dispatchRepo := repository.NewDispatchRepository(dbpool)
	auditRepo := repository.NewAuditRepository(dbpool)
	configRepo := repository.NewConfigRepository(dbpool)

	// Журнал аудита и подтверждение в реестре
	ledgerClient := ledger.NewClient(cfg.LedgerBaseURL, cfg.LedgerContractAddress, cfg.LedgerTimeout, log)
	auditQueue := audit.NewRedisQueue(redisClient)
	auditService := audit.NewService(auditRepo, auditQueue, ledgerClient, incidentRepo, log, cfg.LedgerClaimLease())

	// Флаги поведения и внешняя оценка
	gate := configgate.NewGate(configRepo, auditService, log)
	scorer := scoring.NewClient(cfg.ScoringBaseURL, cfg.ScoringTimeout, gate, log)

	// Доставка событий: вебхуки через очередь Redis и websocket лента
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	hub := realtime.NewHub(log)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(service.Dependencies{
		Incidents:     incidentRepo,
		Reporters:     reporterRepo,
		Verifications: verificationRepo,
		Dispatches:    dispatchRepo,
		Scorer:        scorer,
		Audit:         auditService,
		Flags:         gate,
		Geo:           geo.NewDefaultLocator(),
		Publishers:    []service.EventPublisher{webhookPublisher, hub},
	}, log)

	created, err := gate.InitializeDefaults(ctx, models.SystemActor)
	if err != nil {
		log.WithError(err).Warn("Failed to initialize default system flags")
	} else if len(created) > 0 {
		log.WithField("keys", created).Info("Default system flags created")
	}

	// Фоновые обработчики
	webhookWorker.Start(ctx)
	confirmationWorker := audit.NewConfirmationWorker(auditQueue, auditService, log, cfg.LedgerWorkers)
	confirmationWorker.Start(ctx)
	sweeper := audit.NewSweeper(auditService, auditQueue, auditQueue, log, cfg.LedgerSweepMinAge, cfg.LedgerSweepBatch)
	if err := sweeper.Start(ctx, cfg.LedgerSweepSchedule); err != nil {
		log.Fatalf("Failed to start ledger sweeper: %v", err)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, auditService, gate, ledgerClient, hub, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), logger.GinMiddleware(log))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	// websocket соединения не завершаются через Shutdown
	hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	// Фоновые обработчики останавливаются после HTTP
	sweeper.Stop()
	cancel()
	webhookWorker.Wait()
	confirmationWorker.Wait()

	log.Info("Server gracefully stopped")
}
