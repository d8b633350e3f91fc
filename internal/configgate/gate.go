// Package configgate хранит булевы флаги поведения системы. Каждое изменение
// флага попадает в журнал аудита.
package configgate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/sirupsen/logrus"
)

const defaultDescription = "System configuration"

type defaultFlag struct {
	key         string
	value       bool
	description string
}

var defaults = []defaultFlag{
	{models.FlagAutoDispatch, true, "Automatically assign tasks based on proximity"},
	{models.FlagAIRiskScoring, true, "Use ML model for incident triage"},
	{models.FlagLockdownMode, false, "Restrict user movements suggestions"},
}

// Repository - хранилище флагов
type Repository interface {
	Get(ctx context.Context, key string) (*models.ConfigFlag, error)
	List(ctx context.Context) ([]*models.ConfigFlag, error)
	// InsertIfMissing создает флаг, если ключа еще нет; true - флаг создан
	InsertIfMissing(ctx context.Context, flag *models.ConfigFlag) (bool, error)
	// Upsert записывает флаг и возвращает прежнее значение (nil, если флага не было)
	Upsert(ctx context.Context, flag *models.ConfigFlag) (*bool, error)
}

// AuditRecorder пишет записи журнала
type AuditRecorder interface {
	Record(ctx context.Context, entry *models.AuditLogEntry) error
}

// Gate - доступ к флагам
type Gate struct {
	repo   Repository
	audit  AuditRecorder
	logger *logrus.Logger
	now    func() time.Time
}

func NewGate(repo Repository, audit AuditRecorder, logger *logrus.Logger) *Gate {
	return &Gate{repo: repo, audit: audit, logger: logger, now: time.Now}
}

// IsEnabled возвращает значение флага. Отсутствующий флаг создается со значением false.
func (g *Gate) IsEnabled(ctx context.Context, key string) (bool, error) {
	flag, err := g.repo.Get(ctx, key)
	if err == nil {
		return flag.Value, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return false, fmt.Errorf("configgate: failed to read flag %s: %w", key, err)
	}

	created, err := g.repo.InsertIfMissing(ctx, &models.ConfigFlag{
		Key:         key,
		Value:       false,
		Description: Describe(key),
		UpdatedBy:   models.SystemActor.ID,
		UpdatedAt:   g.now().UTC(),
	})
	if err != nil {
		g.logger.WithError(err).WithField("key", key).Warn("Failed to create missing config flag")
	} else if created {
		g.logger.WithField("key", key).Info("Config flag created lazily with value false")
	}
	return false, nil
}

// Get возвращает флаг целиком
func (g *Gate) Get(ctx context.Context, key string) (*models.ConfigFlag, error) {
	flag, err := g.repo.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("configgate: failed to get flag %s: %w", key, err)
	}
	return flag, nil
}

// All возвращает все флаги
func (g *Gate) All(ctx context.Context) ([]*models.ConfigFlag, error) {
	flags, err := g.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("configgate: failed to list flags: %w", err)
	}
	return flags, nil
}

// Set записывает значение флага. Запись в журнал делается всегда,
// даже если значение не изменилось.
func (g *Gate) Set(ctx context.Context, key string, value bool, actor models.Actor) (*models.ConfigFlag, error) {
	log := g.logger.WithFields(logrus.Fields{
		"service": "ConfigGate",
		"method":  "Set",
		"key":     key,
		"actor":   actor.ID,
	})

	if !actor.IsAdmin() {
		return nil, fmt.Errorf("configgate: actor %s may not change flags: %w", actor.ID, models.ErrForbidden)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("configgate: key is required: %w", models.ErrValidation)
	}

	flag := &models.ConfigFlag{
		Key:         key,
		Value:       value,
		Description: Describe(key),
		UpdatedBy:   actor.ID,
		UpdatedAt:   g.now().UTC(),
	}
	old, err := g.repo.Upsert(ctx, flag)
	if err != nil {
		log.WithError(err).Error("Failed to store config flag")
		return nil, fmt.Errorf("configgate: failed to set flag %s: %w", key, err)
	}

	action := models.ActionConfigDisabled
	if value {
		action = models.ActionConfigEnabled
	}
	var oldValue any
	if old != nil {
		oldValue = *old
	}
	entry := &models.AuditLogEntry{
		ActionType:  action,
		ActorID:     actor.ID,
		ActorRole:   actor.Role,
		TargetType:  models.TargetSystemConfig,
		TargetID:    key,
		Description: fmt.Sprintf("Config flag %s set to %t", key, value),
		Status:      models.AuditSuccess,
		Metadata: map[string]any{
			"key":      key,
			"oldValue": oldValue,
			"newValue": value,
		},
	}
	if err := g.audit.Record(ctx, entry); err != nil {
		log.WithError(err).Error("Failed to audit config flag change")
	}

	log.WithField("value", value).Info("Config flag updated")
	return flag, nil
}

// InitializeDefaults создает недостающие флаги по умолчанию; существующие не трогает
func (g *Gate) InitializeDefaults(ctx context.Context, actor models.Actor) ([]string, error) {
	log := g.logger.WithFields(logrus.Fields{
		"service": "ConfigGate",
		"method":  "InitializeDefaults",
		"actor":   actor.ID,
	})

	if !actor.IsAdmin() && actor.Role != models.RoleSystem {
		return nil, fmt.Errorf("configgate: actor %s may not initialize flags: %w", actor.ID, models.ErrForbidden)
	}

	now := g.now().UTC()
	created := make([]string, 0, len(defaults))
	for _, d := range defaults {
		ok, err := g.repo.InsertIfMissing(ctx, &models.ConfigFlag{
			Key:         d.key,
			Value:       d.value,
			Description: d.description,
			UpdatedBy:   actor.ID,
			UpdatedAt:   now,
		})
		if err != nil {
			log.WithError(err).WithField("key", d.key).Error("Failed to initialize config flag")
			return created, fmt.Errorf("configgate: failed to initialize %s: %w", d.key, err)
		}
		if ok {
			created = append(created, d.key)
		}
	}

	if len(created) == 0 {
		log.Debug("All default config flags already present")
		return created, nil
	}

	entry := &models.AuditLogEntry{
		ActionType:  models.ActionConfigInitialized,
		ActorID:     actor.ID,
		ActorRole:   actor.Role,
		TargetType:  models.TargetSystemConfig,
		TargetID:    "defaults",
		Description: fmt.Sprintf("Initialized %d default config flags", len(created)),
		Status:      models.AuditSuccess,
		Metadata:    map[string]any{"keys": created},
	}
	if err := g.audit.Record(ctx, entry); err != nil {
		log.WithError(err).Error("Failed to audit config initialization")
	}

	log.WithField("created", created).Info("Default config flags initialized")
	return created, nil
}

// Describe возвращает описание известного флага
func Describe(key string) string {
	for _, d := range defaults {
		if d.key == key {
			return d.description
		}
	}
	return defaultDescription
}
