package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/dispatch"
	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/AdwikaVishal/Disaster-Management/internal/scoring"
	"github.com/AdwikaVishal/Disaster-Management/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)

type testDeps struct {
	repo          *mocks.MockIncidentRepository
	reporters     *mocks.MockReporterRepository
	verifications *mocks.MockVerificationRepository
	dispatches    *mocks.MockDispatchRepository
	scorer        *mocks.MockScorer
	audit         *mocks.MockAuditRecorder
	flags         *mocks.MockFlagReader
	geo           *mocks.MockGeolocator
	publisher     *mocks.MockEventPublisher
}

// newTestIncidentService - сервис с моками всех зависимостей
func newTestIncidentService(t *testing.T) (*incidentService, *testDeps) {
	ctrl := gomock.NewController(t)
	d := &testDeps{
		repo:          mocks.NewMockIncidentRepository(ctrl),
		reporters:     mocks.NewMockReporterRepository(ctrl),
		verifications: mocks.NewMockVerificationRepository(ctrl),
		dispatches:    mocks.NewMockDispatchRepository(ctrl),
		scorer:        mocks.NewMockScorer(ctrl),
		audit:         mocks.NewMockAuditRecorder(ctrl),
		flags:         mocks.NewMockFlagReader(ctrl),
		geo:           mocks.NewMockGeolocator(ctrl),
		publisher:     mocks.NewMockEventPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := NewIncidentService(Dependencies{
		Incidents:     d.repo,
		Reporters:     d.reporters,
		Verifications: d.verifications,
		Dispatches:    d.dispatches,
		Scorer:        d.scorer,
		Audit:         d.audit,
		Flags:         d.flags,
		Geo:           d.geo,
		Publishers:    []EventPublisher{d.publisher},
	}, logger).(*incidentService)
	svc.now = func() time.Time { return fixedNow }
	return svc, d
}

func newIncidentInput(severity models.Severity) *models.Incident {
	return &models.Incident{
		Title:            "Пожар в жилом доме",
		Description:      "Дым из окон третьего этажа, люди на балконах",
		Type:             models.TypeFire,
		Severity:         severity,
		Latitude:         28.6139,
		Longitude:        77.2090,
		InjuriesReported: 1,
		PeopleInvolved:   4,
	}
}

// expectScoring задает ответы оценщика для всех трех видов оценки
func expectScoring(d *testDeps, fraud, risk, similarity float64) {
	d.scorer.EXPECT().Score(gomock.Any(), scoring.KindSimilarity, gomock.Any(), gomock.Any()).
		Return(scoring.Result{Kind: scoring.KindSimilarity, Value: similarity})
	expectRescoring(d, fraud, risk)
}

func expectRescoring(d *testDeps, fraud, risk float64) {
	d.scorer.EXPECT().Score(gomock.Any(), scoring.KindFraud, gomock.Any(), gomock.Any()).
		Return(scoring.Result{Kind: scoring.KindFraud, Value: fraud, IsFraud: fraud > 0.5})
	d.scorer.EXPECT().Score(gomock.Any(), scoring.KindRisk, gomock.Any(), gomock.Any()).
		Return(scoring.Result{Kind: scoring.KindRisk, Value: risk})
}

func expectEnrichment(d *testDeps) {
	d.geo.EXPECT().ReverseGeocode(gomock.Any(), 28.6139, 77.2090).Return("Address near 28.6139, 77.2090", nil)
	d.geo.EXPECT().NearestResponderKm(gomock.Any(), 28.6139, 77.2090, models.TypeFire).Return(2.5, true)
	d.geo.EXPECT().NearSensitiveLocation(gomock.Any(), 28.6139, 77.2090).Return(false)
}

func TestCreateIncident_Success(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	input := newIncidentInput(models.SeverityMedium)
	reporterID := uuid.New()
	input.ReporterID = &reporterID
	actor := models.Actor{ID: reporterID.String(), Role: models.RoleUser}

	// Ожидания
	expectEnrichment(d)
	d.reporters.EXPECT().GetByID(ctx, reporterID).Return(&models.Reporter{ID: reporterID, TrustScore: 90}, nil)
	expectScoring(d, 0.1, 72, 0.05)
	d.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, inc *models.Incident) error {
		assert.Equal(t, models.StatusNew, inc.Status)
		assert.Equal(t, "Address near 28.6139, 77.2090", inc.Address)
		require.NotNil(t, inc.RiskLevel)
		assert.Equal(t, scoring.RiskLevelHigh, *inc.RiskLevel)
		require.NotNil(t, inc.SimilarityScore)
		assert.InDelta(t, 0.05, *inc.SimilarityScore, 1e-9)
		return nil
	})
	d.reporters.EXPECT().IncrementTotalReports(ctx, reporterID).Return(nil)
	d.audit.EXPECT().Record(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *models.AuditLogEntry) error {
		assert.Equal(t, models.ActionIncidentReported, e.ActionType)
		assert.Equal(t, actor.ID, e.ActorID)
		assert.Equal(t, models.TargetIncident, e.TargetType)
		return nil
	})
	d.repo.EXPECT().SetIncidentCache(ctx, gomock.Any()).Return(nil)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev models.IncidentEvent) error {
		assert.Equal(t, models.EventIncidentCreated, ev.Type)
		return nil
	})

	// Действие
	records, err := service.CreateIncident(ctx, input, actor)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotEqual(t, uuid.Nil, input.ID)
	assert.Equal(t, fixedNow, input.CreatedAt)
	require.NotNil(t, input.DistanceToResponder)
	assert.Equal(t, 2.5, *input.DistanceToResponder)
}

func TestCreateIncident_UnknownReporterUsesDefaults(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	input := newIncidentInput(models.SeverityLow)
	input.Address = "Connaught Place"
	reporterID := uuid.New()
	input.ReporterID = &reporterID

	// Ожидания: адрес задан, геокодирование не вызывается
	d.geo.EXPECT().NearestResponderKm(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0.0, false)
	d.geo.EXPECT().NearSensitiveLocation(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	d.reporters.EXPECT().GetByID(ctx, reporterID).Return(nil, models.ErrNotFound)
	d.scorer.EXPECT().Score(gomock.Any(), scoring.KindSimilarity, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ scoring.Kind, _ *models.Incident, rep *models.Reporter) scoring.Result {
			require.NotNil(t, rep)
			assert.Equal(t, models.DefaultTrustScore, rep.TrustScore)
			return scoring.Result{}
		})
	expectRescoring(d, 0.2, 30)
	d.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.reporters.EXPECT().IncrementTotalReports(ctx, reporterID).Return(nil)
	d.audit.EXPECT().Record(ctx, gomock.Any()).Return(nil)
	d.repo.EXPECT().SetIncidentCache(ctx, gomock.Any()).Return(nil)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	// Действие
	_, err := service.CreateIncident(ctx, input, models.Actor{ID: reporterID.String(), Role: models.RoleUser})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Connaught Place", input.Address)
	assert.True(t, input.NearSensitiveLocation)
	assert.Nil(t, input.DistanceToResponder)
}

func TestCreateIncident_SideEffectFailuresAreIsolated(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	input := newIncidentInput(models.SeverityHigh)

	// Ожидания: сбои геокодирования, аудита, кеша и уведомлений не мешают приему
	d.geo.EXPECT().ReverseGeocode(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("geocoder down"))
	d.geo.EXPECT().NearestResponderKm(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(1.0, true)
	d.geo.EXPECT().NearSensitiveLocation(gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
	expectScoring(d, 0.1, 60, 0)
	d.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.audit.EXPECT().Record(ctx, gomock.Any()).Return(errors.New("db error"))
	d.repo.EXPECT().SetIncidentCache(ctx, gomock.Any()).Return(errors.New("redis down"))
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("queue down"))

	// Действие
	records, err := service.CreateIncident(ctx, input, models.Actor{ID: "anon", Role: models.RoleUser})

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Empty(t, input.Address)
}

func TestCreateIncident_ValidationError(t *testing.T) {
	service, _ := newTestIncidentService(t)
	cases := []struct {
		name   string
		modify func(i *models.Incident)
	}{
		{"пустой заголовок", func(i *models.Incident) { i.Title = " " }},
		{"неизвестный тип", func(i *models.Incident) { i.Type = "ALIENS" }},
		{"неизвестная тяжесть", func(i *models.Incident) { i.Severity = "EXTREME" }},
		{"широта вне диапазона", func(i *models.Incident) { i.Latitude = 91 }},
		{"долгота вне диапазона", func(i *models.Incident) { i.Longitude = -181 }},
		{"отрицательные пострадавшие", func(i *models.Incident) { i.InjuriesReported = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := newIncidentInput(models.SeverityLow)
			tc.modify(input)

			_, err := service.CreateIncident(context.Background(), input, models.SystemActor)

			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestCreateIncident_RepositoryError(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	input := newIncidentInput(models.SeverityCritical)

	// Ожидания: после ошибки сохранения ничего больше не вызывается
	expectEnrichment(d)
	expectScoring(d, 0.1, 90, 0)
	d.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db error"))

	// Действие
	_, err := service.CreateIncident(ctx, input, models.SystemActor)

	// Проверки
	require.Error(t, err)
}

func TestCreateIncident_CriticalWithAutoDispatchDisabled(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	input := newIncidentInput(models.SeverityCritical)

	// Ожидания
	expectEnrichment(d)
	expectScoring(d, 0.1, 95, 0)
	d.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.audit.EXPECT().Record(ctx, gomock.Any()).Return(nil)
	d.repo.EXPECT().SetIncidentCache(ctx, gomock.Any()).Return(nil)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
	d.flags.EXPECT().IsEnabled(ctx, models.FlagAutoDispatch).Return(false, nil)

	// Действие
	records, err := service.CreateIncident(ctx, input, models.SystemActor)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCreateIncident_CriticalDispatches(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	input := newIncidentInput(models.SeverityCritical)

	// Ожидания
	expectEnrichment(d)
	expectScoring(d, 0.1, 95, 0)
	d.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.audit.EXPECT().Record(ctx, gomock.Any()).Return(nil).Times(3) // отчет + 2 выезда
	d.repo.EXPECT().SetIncidentCache(ctx, gomock.Any()).Return(nil)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(2) // создание + выезд
	d.flags.EXPECT().IsEnabled(ctx, models.FlagAutoDispatch).Return(true, nil)
	d.scorer.EXPECT().Recommend(gomock.Any(), gomock.Any(), dispatch.GuidedQuestions{HasInjuries: true, HasFireRisk: true}).
		Return(dispatch.Recommendation{Ambulance: true, Fire: true, Urgency: dispatch.UrgencyHigh})
	d.geo.EXPECT().DistanceToService(gomock.Any(), gomock.Any(), gomock.Any()).Return(4.0, true).Times(2)
	d.dispatches.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	// Действие
	records, err := service.CreateIncident(ctx, input, models.SystemActor)

	// Проверки
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, models.ResponseFireBrigade, records[0].ResponseType)
	assert.Equal(t, models.ResponseAmbulance, records[1].ResponseType)
	assert.Equal(t, 14, records[0].EstimatedArrivalMinutes) // 6 мин в пути + 8
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{ID: incidentID, Title: "Тестовый инцидент из кеша"}

	// Ожидания
	d.repo.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{ID: incidentID, Title: "Тестовый инцидент из БД"}

	// Ожидания
	// 1. Промах кеша
	d.repo.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, nil)
	// 2. Попадание в БД
	d.repo.EXPECT().GetByID(ctx, incidentID).Return(expectedIncident, nil)
	// 3. Запись в кеш
	d.repo.EXPECT().SetIncidentCache(ctx, expectedIncident).Return(nil)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	d.repo.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, errors.New("redis down"))
	d.repo.EXPECT().GetByID(ctx, incidentID).Return(nil, models.ErrNotFound)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, incident)
}

func TestListIncidents_NormalizesPaging(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	d.repo.EXPECT().List(ctx, models.IncidentFilter{Status: models.StatusNew, Page: 1, PageSize: maxPageSize}).
		Return([]*models.Incident{}, nil)

	// Действие
	list, err := service.ListIncidents(ctx, models.IncidentFilter{Status: models.StatusNew, PageSize: 1000})

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListIncidents_BadFilter(t *testing.T) {
	service, _ := newTestIncidentService(t)

	_, err := service.ListIncidents(context.Background(), models.IncidentFilter{Status: "ARCHIVED"})

	assert.ErrorIs(t, err, models.ErrValidation)
}
