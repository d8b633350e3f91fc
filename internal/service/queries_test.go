package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNearbyIncidents_FiltersByRadiusAndSortsByDistance(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	// Коннот-плейс, Нью-Дели
	lat, lng := 28.6315, 77.2167
	// около 14, 2 и 6.6 км от центра
	far := &models.Incident{ID: uuid.New(), Latitude: 28.70, Longitude: 77.10}
	near := &models.Incident{ID: uuid.New(), Latitude: 28.6139, Longitude: 77.2090}
	mid := &models.Incident{ID: uuid.New(), Latitude: 28.58, Longitude: 77.25}

	// Ожидания
	d.repo.EXPECT().List(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f models.IncidentFilter) ([]*models.Incident, error) {
		assert.Equal(t, models.ActiveStatuses, f.Statuses)
		require.NotNil(t, f.Area)
		assert.Less(t, f.Area.MinLat, lat)
		assert.Greater(t, f.Area.MaxLng, lng)
		assert.Equal(t, maxQueryResults, f.PageSize)
		return []*models.Incident{far, near, mid}, nil
	})

	// Действие
	nearby, err := service.NearbyIncidents(ctx, lat, lng, 10)

	// Проверки
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, near.ID, nearby[0].ID)
	assert.Equal(t, mid.ID, nearby[1].ID)
	assert.InDelta(t, 2.1, nearby[0].DistanceKm, 0.3)
	assert.LessOrEqual(t, nearby[1].DistanceKm, 10.0)
}

func TestNearbyIncidents_Validation(t *testing.T) {
	service, _ := newTestIncidentService(t)
	ctx := context.Background()

	cases := []struct {
		name          string
		lat, lng, rad float64
	}{
		{"широта", 91, 0, 5},
		{"долгота", 0, -181, 5},
		{"нулевой радиус", 0, 0, 0},
		{"слишком большой радиус", 0, 0, 501},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.NearbyIncidents(ctx, tc.lat, tc.lng, tc.rad)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestCriticalIncidents(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	expected := []*models.Incident{{ID: uuid.New(), Severity: models.SeverityCritical, Status: models.StatusVerified}}

	// Ожидания
	d.repo.EXPECT().List(ctx, models.IncidentFilter{
		Statuses: models.ActiveStatuses,
		Severity: models.SeverityCritical,
		Page:     1,
		PageSize: maxQueryResults,
	}).Return(expected, nil)

	// Действие
	incidents, err := service.CriticalIncidents(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incidents)
}

func TestHighRiskIncidents(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	d.repo.EXPECT().List(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f models.IncidentFilter) ([]*models.Incident, error) {
		require.NotNil(t, f.MinRiskScore)
		assert.Equal(t, 80.0, *f.MinRiskScore)
		assert.Equal(t, models.OrderRisk, f.Order)
		return []*models.Incident{}, nil
	})

	// Действие
	incidents, err := service.HighRiskIncidents(ctx, 80)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, incidents)

	_, err = service.HighRiskIncidents(ctx, 120)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestSimilarIncidents_ExcludesItself(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	id := uuid.New()
	other := &models.Incident{ID: uuid.New()}

	// Ожидания
	d.repo.EXPECT().GetIncidentFromCache(ctx, id).Return(&models.Incident{ID: id}, nil)
	d.repo.EXPECT().List(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f models.IncidentFilter) ([]*models.Incident, error) {
		require.NotNil(t, f.ExcludeID)
		assert.Equal(t, id, *f.ExcludeID)
		require.NotNil(t, f.MinSimilarity)
		assert.Equal(t, 0.75, *f.MinSimilarity)
		assert.Equal(t, models.OrderSimilarity, f.Order)
		return []*models.Incident{other}, nil
	})

	// Действие
	incidents, err := service.SimilarIncidents(ctx, id, 0.75)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []*models.Incident{other}, incidents)
}

func TestSimilarIncidents_UnknownIncident(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	id := uuid.New()

	// Ожидания
	d.repo.EXPECT().GetIncidentFromCache(ctx, id).Return(nil, nil)
	d.repo.EXPECT().GetByID(ctx, id).Return(nil, models.ErrNotFound)
	d.repo.EXPECT().List(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.SimilarIncidents(ctx, id, 0.7)

	// Проверки
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSimilarIncidents_BadThreshold(t *testing.T) {
	service, _ := newTestIncidentService(t)

	_, err := service.SimilarIncidents(context.Background(), uuid.New(), 1.5)

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestStatistics_WindowEndsNow(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	since := fixedNow.Add(-30 * 24 * time.Hour)
	expected := models.NewIncidentStats(since)

	// Ожидания
	d.repo.EXPECT().Statistics(ctx, since).Return(expected, nil)

	// Действие
	stats, err := service.Statistics(ctx, 30*24*time.Hour)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}

func TestStatistics_Errors(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	d.repo.EXPECT().Statistics(ctx, gomock.Any()).Return(nil, errors.New("db error"))

	// Действие и проверки
	_, err := service.Statistics(ctx, 0)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = service.Statistics(ctx, time.Hour)
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrValidation)
}

func TestUpdateTrustScore_AuditsChange(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	reporterID := uuid.New()
	admin := models.Actor{ID: "admin-1", Role: models.RoleAdmin}
	updated := &models.Reporter{ID: reporterID, TrustScore: 35}

	// Ожидания
	gomock.InOrder(
		d.reporters.EXPECT().SetTrustScore(ctx, reporterID, 35.0).Return(82.0, nil),
		d.audit.EXPECT().Record(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *models.AuditLogEntry) error {
			assert.Equal(t, models.ActionTrustScoreUpdated, e.ActionType)
			assert.Equal(t, admin.ID, e.ActorID)
			assert.Equal(t, models.TargetUser, e.TargetType)
			assert.Equal(t, reporterID.String(), e.TargetID)
			assert.Equal(t, map[string]any{"oldValue": 82.0, "newValue": 35.0}, e.Metadata)
			return nil
		}),
		d.reporters.EXPECT().GetByID(ctx, reporterID).Return(updated, nil),
	)

	// Действие
	reporter, err := service.UpdateTrustScore(ctx, reporterID, 35, admin)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, updated, reporter)
}

func TestUpdateTrustScore_Rejections(t *testing.T) {
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	admin := models.Actor{ID: "admin-1", Role: models.RoleAdmin}
	d.reporters.EXPECT().SetTrustScore(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := service.UpdateTrustScore(ctx, uuid.New(), 50, models.Actor{ID: "u", Role: models.RoleVolunteer})
	assert.ErrorIs(t, err, models.ErrForbidden)

	_, err = service.UpdateTrustScore(ctx, uuid.New(), 100.5, admin)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = service.UpdateTrustScore(ctx, uuid.New(), -1, admin)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestUpdateTrustScore_UnknownReporter(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	reporterID := uuid.New()

	// Ожидания: аудит не пишется
	d.reporters.EXPECT().SetTrustScore(ctx, reporterID, 10.0).Return(0.0, models.ErrNotFound)
	d.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.UpdateTrustScore(ctx, reporterID, 10, models.Actor{ID: "admin-1", Role: models.RoleAdmin})

	// Проверки
	assert.ErrorIs(t, err, models.ErrNotFound)
}
