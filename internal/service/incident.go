package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/dispatch"
	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/AdwikaVishal/Disaster-Management/internal/scoring"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	UpdateScores(ctx context.Context, id uuid.UUID, scores models.Scores) error
	IncrementCounters(ctx context.Context, id uuid.UUID, delta models.CounterDelta) (*models.Incident, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, to models.Status, check models.TransitionCheck) (models.Status, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
	Statistics(ctx context.Context, since time.Time) (*models.IncidentStats, error)
}

// ReporterRepository - счетчики и доверие авторов
type ReporterRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Reporter, error)
	IncrementTotalReports(ctx context.Context, id uuid.UUID) error
	AdjustReputation(ctx context.Context, id uuid.UUID, change models.ReputationChange) error
	SetTrustScore(ctx context.Context, id uuid.UUID, score float64) (float64, error)
}

// VerificationRepository - журнал откликов сообщества
type VerificationRepository interface {
	Create(ctx context.Context, v *models.Verification) error
	ListByIncident(ctx context.Context, incidentID uuid.UUID) ([]*models.Verification, error)
}

// DispatchRepository - назначенные службы
type DispatchRepository interface {
	Create(ctx context.Context, record *models.DispatchRecord) error
	ListByIncident(ctx context.Context, incidentID uuid.UUID) ([]*models.DispatchRecord, error)
}

// Scorer - оценка сообщений и рекомендации по службам; обе операции не возвращают ошибок
type Scorer interface {
	Score(ctx context.Context, kind scoring.Kind, incident *models.Incident, reporter *models.Reporter) scoring.Result
	Recommend(ctx context.Context, incident *models.Incident, q dispatch.GuidedQuestions) dispatch.Recommendation
}

// AuditRecorder пишет записи журнала аудита
type AuditRecorder interface {
	Record(ctx context.Context, entry *models.AuditLogEntry) error
}

// FlagReader читает флаги конфигурации
type FlagReader interface {
	IsEnabled(ctx context.Context, key string) (bool, error)
}

// Geolocator - геокодирование и расстояния до служб
type Geolocator interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
	NearestResponderKm(ctx context.Context, lat, lng float64, t models.IncidentType) (float64, bool)
	NearSensitiveLocation(ctx context.Context, lat, lng float64) bool
	DistanceToService(lat, lng float64, svc models.ResponseType) (float64, bool)
}

// EventPublisher - получатель уведомлений об инцидентах
type EventPublisher interface {
	Publish(ctx context.Context, event models.IncidentEvent) error
}

// IncidentService определяет контракт бизнес-логики жизненного цикла инцидентов
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident, actor models.Actor) ([]*models.DispatchRecord, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.Status, actor models.Actor) (*models.Incident, error)
	RecordVerification(ctx context.Context, v *models.Verification) (*models.Incident, error)
	ListVerifications(ctx context.Context, id uuid.UUID) ([]*models.Verification, error)
	ListDispatches(ctx context.Context, id uuid.UUID) ([]*models.DispatchRecord, error)
	PlanRecommendation(ctx context.Context, id uuid.UUID, q dispatch.GuidedQuestions) (*dispatch.Plan, error)
	NearbyIncidents(ctx context.Context, lat, lng, radiusKm float64) ([]*models.NearbyIncident, error)
	CriticalIncidents(ctx context.Context) ([]*models.Incident, error)
	HighRiskIncidents(ctx context.Context, minRiskScore float64) ([]*models.Incident, error)
	SimilarIncidents(ctx context.Context, id uuid.UUID, threshold float64) ([]*models.Incident, error)
	Statistics(ctx context.Context, window time.Duration) (*models.IncidentStats, error)
	UpdateTrustScore(ctx context.Context, reporterID uuid.UUID, score float64, actor models.Actor) (*models.Reporter, error)
}

// Dependencies - внешние зависимости сервиса
type Dependencies struct {
	Incidents     IncidentRepository
	Reporters     ReporterRepository
	Verifications VerificationRepository
	Dispatches    DispatchRepository
	Scorer        Scorer
	Audit         AuditRecorder
	Flags         FlagReader
	Geo           Geolocator
	Publishers    []EventPublisher
}

type incidentService struct {
	repo          IncidentRepository
	reporters     ReporterRepository
	verifications VerificationRepository
	dispatches    DispatchRepository
	scorer        Scorer
	audit         AuditRecorder
	flags         FlagReader
	geo           Geolocator
	publishers    []EventPublisher
	logger        *logrus.Logger
	now           func() time.Time
}

func NewIncidentService(deps Dependencies, logger *logrus.Logger) IncidentService {
	return &incidentService{
		repo:          deps.Incidents,
		reporters:     deps.Reporters,
		verifications: deps.Verifications,
		dispatches:    deps.Dispatches,
		scorer:        deps.Scorer,
		audit:         deps.Audit,
		flags:         deps.Flags,
		geo:           deps.Geo,
		publishers:    deps.Publishers,
		logger:        logger,
		now:           time.Now,
	}
}

// CreateIncident принимает сообщение: обогащение, оценка, сохранение, аудит,
// уведомления и, для критических инцидентов, автоматический выезд служб
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident, actor models.Actor) ([]*models.DispatchRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"type":    incident.Type,
	})
	log.Info("Attempting to create a new incident")

	if err := validateNewIncident(incident); err != nil {
		log.WithError(err).Warn("Incident rejected by validation")
		return nil, err
	}

	now := s.now()
	incident.ID = uuid.New()
	incident.Status = models.StatusNew
	incident.Upvotes, incident.Flags, incident.VerificationCount = 0, 0, 0
	incident.LedgerTxHash, incident.LedgerVerified, incident.ResolvedAt = nil, false, nil
	incident.CreatedAt, incident.UpdatedAt = now, now

	s.enrich(ctx, log, incident)
	reporter := s.loadReporter(ctx, log, incident.ReporterID)
	s.scoreNew(ctx, incident, reporter).Apply(incident)

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}
	log = log.WithField("incident_id", incident.ID)

	if incident.ReporterID != nil {
		if err := s.reporters.IncrementTotalReports(ctx, *incident.ReporterID); err != nil {
			log.WithError(err).Error("Failed to increment reporter total reports")
		}
	}

	s.recordAudit(ctx, log, &models.AuditLogEntry{
		ActionType:  models.ActionIncidentReported,
		ActorID:     actor.ID,
		ActorRole:   actor.Role,
		TargetType:  models.TargetIncident,
		TargetID:    incident.ID.String(),
		Description: fmt.Sprintf("Incident reported: %s", incident.Title),
		Status:      models.AuditSuccess,
		Metadata: map[string]any{
			"type":     string(incident.Type),
			"severity": string(incident.Severity),
		},
	})

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache new incident")
	}

	s.notify(ctx, models.IncidentEvent{Type: models.EventIncidentCreated, Incident: incident, Timestamp: now})

	log.Info("Incident created successfully")

	if incident.Severity != models.SeverityCritical || !s.isEnabled(ctx, log, models.FlagAutoDispatch) {
		return []*models.DispatchRecord{}, nil
	}
	return s.autoDispatch(ctx, incident), nil
}

// GetIncident возвращает инцидент, сначала из кеша
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from cache")
	}
	if cached != nil {
		log.Debug("Incident found in cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to set incident to cache")
	}
	return incident, nil
}

// ListIncidents возвращает страницу инцидентов с фильтрами
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("service: unknown status %q: %w", filter.Status, models.ErrValidation)
	}
	if filter.Severity != "" && !filter.Severity.Valid() {
		return nil, fmt.Errorf("service: unknown severity %q: %w", filter.Severity, models.ErrValidation)
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, fmt.Errorf("service: unknown type %q: %w", filter.Type, models.ErrValidation)
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	incidents, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return incidents, nil
}

func validateNewIncident(i *models.Incident) error {
	var problems []string
	if strings.TrimSpace(i.Title) == "" {
		problems = append(problems, "title is required")
	}
	if !i.Type.Valid() {
		problems = append(problems, fmt.Sprintf("unknown type %q", i.Type))
	}
	if !i.Severity.Valid() {
		problems = append(problems, fmt.Sprintf("unknown severity %q", i.Severity))
	}
	if i.Latitude < -90 || i.Latitude > 90 {
		problems = append(problems, "latitude out of range")
	}
	if i.Longitude < -180 || i.Longitude > 180 {
		problems = append(problems, "longitude out of range")
	}
	if i.InjuriesReported < 0 || i.PeopleInvolved < 0 {
		problems = append(problems, "injuries and people involved must be non-negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("service: %s: %w", strings.Join(problems, "; "), models.ErrValidation)
	}
	return nil
}

// enrich дополняет адрес и геопризнаки; сбои геолокации не мешают приему сообщения
func (s *incidentService) enrich(ctx context.Context, log *logrus.Entry, incident *models.Incident) {
	if strings.TrimSpace(incident.Address) == "" {
		addr, err := s.geo.ReverseGeocode(ctx, incident.Latitude, incident.Longitude)
		if err != nil {
			log.WithError(err).Warn("Reverse geocoding failed")
		} else {
			incident.Address = addr
		}
	}
	if d, ok := s.geo.NearestResponderKm(ctx, incident.Latitude, incident.Longitude, incident.Type); ok {
		incident.DistanceToResponder = &d
	}
	incident.NearSensitiveLocation = s.geo.NearSensitiveLocation(ctx, incident.Latitude, incident.Longitude)
}

// loadReporter возвращает автора или nil для анонимного сообщения.
// Неизвестный автор считается новым с доверием по умолчанию.
func (s *incidentService) loadReporter(ctx context.Context, log *logrus.Entry, id *uuid.UUID) *models.Reporter {
	if id == nil {
		return nil
	}
	reporter, err := s.reporters.GetByID(ctx, *id)
	if err == nil {
		return reporter
	}
	if !errors.Is(err, models.ErrNotFound) {
		log.WithError(err).Warn("Failed to load reporter, scoring with defaults")
	}
	return &models.Reporter{ID: *id, TrustScore: models.DefaultTrustScore, CreatedAt: s.now()}
}

func (s *incidentService) isEnabled(ctx context.Context, log *logrus.Entry, key string) bool {
	enabled, err := s.flags.IsEnabled(ctx, key)
	if err != nil {
		log.WithError(err).WithField("flag", key).Warn("Failed to read config flag, treating as disabled")
		return false
	}
	return enabled
}

// recordAudit - сбой журнала не откатывает основное действие
func (s *incidentService) recordAudit(ctx context.Context, log *logrus.Entry, entry *models.AuditLogEntry) {
	if err := s.audit.Record(ctx, entry); err != nil {
		log.WithError(err).WithField("action_type", entry.ActionType).Error("Failed to record audit entry")
	}
}

// notify рассылает событие всем получателям; сбой одного не влияет на остальных
func (s *incidentService) notify(ctx context.Context, event models.IncidentEvent) {
	for _, p := range s.publishers {
		if err := p.Publish(ctx, event); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"event_type":  event.Type,
				"incident_id": event.Incident.ID,
			}).Error("Failed to publish incident event")
		}
	}
}
