package service

import (
	"context"
	"errors"
	"testing"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var admin = models.Actor{ID: "admin-1", Role: models.RoleAdmin}

func TestCanTransition(t *testing.T) {
	all := []models.Status{
		models.StatusNew, models.StatusVerified, models.StatusInProgress,
		models.StatusResolved, models.StatusRejected, models.StatusDuplicate,
	}
	allowed := map[models.Status][]models.Status{
		models.StatusNew:        {models.StatusVerified, models.StatusInProgress, models.StatusResolved, models.StatusRejected, models.StatusDuplicate},
		models.StatusVerified:   {models.StatusInProgress, models.StatusResolved, models.StatusRejected, models.StatusDuplicate},
		models.StatusInProgress: {models.StatusResolved},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, s := range allowed[from] {
				if s == to {
					want = true
				}
			}
			assert.Equal(t, want, canTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestConsensus(t *testing.T) {
	fraud := func(v float64) *float64 { return &v }
	cases := []struct {
		name   string
		inc    models.Incident
		want   models.Status
		wantOk bool
	}{
		{"три жалобы", models.Incident{Status: models.StatusNew, Flags: 3}, models.StatusRejected, true},
		{"высокая вероятность обмана", models.Incident{Status: models.StatusNew, FraudProbability: fraud(0.71)}, models.StatusRejected, true},
		{"0.7 еще не обман", models.Incident{Status: models.StatusNew, FraudProbability: fraud(0.7)}, "", false},
		{"двух голосов мало", models.Incident{Status: models.StatusNew, Upvotes: 2, Flags: 0, FraudProbability: fraud(0.0)}, "", false},
		{"двух голосов мало без оценки", models.Incident{Status: models.StatusNew, Upvotes: 2}, "", false},
		{"три голоса", models.Incident{Status: models.StatusNew, Upvotes: 3, Flags: 1, FraudProbability: fraud(0.1)}, models.StatusVerified, true},
		{"без оценки", models.Incident{Status: models.StatusNew, Upvotes: 5}, models.StatusVerified, true},
		{"две жалобы мешают", models.Incident{Status: models.StatusNew, Upvotes: 5, Flags: 2}, "", false},
		{"оценка 0.3 мешает", models.Incident{Status: models.StatusNew, Upvotes: 5, FraudProbability: fraud(0.3)}, "", false},
		{"отклонение побеждает", models.Incident{Status: models.StatusNew, Upvotes: 10, Flags: 3}, models.StatusRejected, true},
		{"только для NEW", models.Incident{Status: models.StatusVerified, Flags: 5}, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := consensus(&tc.inc)
			assert.Equal(t, tc.wantOk, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

// transitionFrom имитирует репозиторий: проверка вызывается с текущим статусом
func transitionFrom(current models.Status) func(context.Context, uuid.UUID, models.Status, models.TransitionCheck) (models.Status, error) {
	return func(_ context.Context, _ uuid.UUID, _ models.Status, check models.TransitionCheck) (models.Status, error) {
		if err := check(current); err != nil {
			return "", err
		}
		return current, nil
	}
}

func TestSetStatus_VerifyRewardsReporter(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	id := uuid.New()
	reporterID := uuid.New()
	reloaded := &models.Incident{ID: id, Status: models.StatusVerified, ReporterID: &reporterID}

	// Ожидания
	d.repo.EXPECT().TransitionStatus(ctx, id, models.StatusVerified, gomock.Any()).DoAndReturn(transitionFrom(models.StatusNew))
	d.repo.EXPECT().GetByID(ctx, id).Return(reloaded, nil)
	d.reporters.EXPECT().AdjustReputation(ctx, reporterID, models.ReputationChange{VerifiedReports: 1, TrustDelta: 2})
	d.audit.EXPECT().Record(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *models.AuditLogEntry) error {
		assert.Equal(t, models.ActionIncidentVerified, e.ActionType)
		assert.Equal(t, admin.ID, e.ActorID)
		assert.Equal(t, "NEW", e.Metadata["previousStatus"])
		assert.Equal(t, "VERIFIED", e.Metadata["newStatus"])
		return nil
	})
	d.repo.EXPECT().InvalidateIncidentCache(ctx, id).Return(nil)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev models.IncidentEvent) error {
		assert.Equal(t, models.EventIncidentStatusChanged, ev.Type)
		assert.Equal(t, models.StatusNew, ev.PreviousStatus)
		return nil
	})

	// Действие
	incident, err := service.SetStatus(ctx, id, models.StatusVerified, admin)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, reloaded, incident)
}

func TestSetStatus_ManualRejectHasNoPenalty(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	id := uuid.New()
	reporterID := uuid.New()

	// Ожидания: AdjustReputation не вызывается
	d.repo.EXPECT().TransitionStatus(ctx, id, models.StatusRejected, gomock.Any()).DoAndReturn(transitionFrom(models.StatusVerified))
	d.repo.EXPECT().GetByID(ctx, id).Return(&models.Incident{ID: id, Status: models.StatusRejected, ReporterID: &reporterID}, nil)
	d.audit.EXPECT().Record(ctx, gomock.Any()).Return(nil)
	d.repo.EXPECT().InvalidateIncidentCache(ctx, id).Return(nil)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	// Действие
	_, err := service.SetStatus(ctx, id, models.StatusRejected, admin)

	// Проверки
	require.NoError(t, err)
}

func TestSetStatus_TerminalIsFinal(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	id := uuid.New()

	// Ожидания
	d.repo.EXPECT().TransitionStatus(ctx, id, models.StatusInProgress, gomock.Any()).DoAndReturn(transitionFrom(models.StatusResolved))

	// Действие
	_, err := service.SetStatus(ctx, id, models.StatusInProgress, admin)

	// Проверки
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestSetStatus_Forbidden(t *testing.T) {
	service, _ := newTestIncidentService(t)

	_, err := service.SetStatus(context.Background(), uuid.New(), models.StatusResolved, models.Actor{ID: "v", Role: models.RoleVolunteer})

	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestSetStatus_UnknownStatus(t *testing.T) {
	service, _ := newTestIncidentService(t)

	_, err := service.SetStatus(context.Background(), uuid.New(), "ARCHIVED", admin)

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestSetStatus_NotFound(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	id := uuid.New()

	// Ожидания
	d.repo.EXPECT().TransitionStatus(ctx, id, models.StatusResolved, gomock.Any()).Return(models.Status(""), models.ErrNotFound)

	// Действие
	_, err := service.SetStatus(ctx, id, models.StatusResolved, admin)

	// Проверки
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func newVerification(incidentID uuid.UUID, t models.VerificationType) *models.Verification {
	return &models.Verification{
		IncidentID:      incidentID,
		VerifierID:      uuid.New(),
		Type:            t,
		IsAccurate:      t != models.VerificationFlag,
		ConfidenceLevel: 7,
	}
}

func TestRecordVerification_UpvoteWithoutConsensus(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	id := uuid.New()
	v := newVerification(id, models.VerificationUpvote)
	counted := &models.Incident{ID: id, Status: models.StatusNew, Upvotes: 1, VerificationCount: 1}

	// Ожидания
	d.repo.EXPECT().GetByID(ctx, id).Return(&models.Incident{ID: id, Status: models.StatusNew}, nil)
	d.verifications.EXPECT().Create(ctx, v).Return(nil)
	d.repo.EXPECT().IncrementCounters(ctx, id, models.CounterDelta{Upvotes: 1}).Return(counted, nil)
	d.audit.EXPECT().Record(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *models.AuditLogEntry) error {
		assert.Equal(t, models.ActionVerificationRecorded, e.ActionType)
		assert.Equal(t, v.VerifierID.String(), e.ActorID)
		assert.Equal(t, "UPVOTE", e.Metadata["verificationType"])
		return nil
	})
	expectRescoring(d, 0.1, 40)
	d.repo.EXPECT().UpdateScores(ctx, id, gomock.Any()).Return(nil)
	d.repo.EXPECT().InvalidateIncidentCache(ctx, id).Return(nil)

	// Действие
	incident, err := service.RecordVerification(ctx, v)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusNew, incident.Status)
	require.NotNil(t, incident.FraudProbability)
	assert.InDelta(t, 0.1, *incident.FraudProbability, 1e-9)
	assert.NotEqual(t, uuid.Nil, v.ID)
	assert.Equal(t, fixedNow, v.CreatedAt)
}

func TestRecordVerification_ThirdFlagRejects(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	id := uuid.New()
	reporterID := uuid.New()
	v := newVerification(id, models.VerificationFlag)
	counted := &models.Incident{ID: id, Status: models.StatusNew, Flags: 3, Upvotes: 4, ReporterID: &reporterID}

	// Ожидания
	d.repo.EXPECT().GetByID(ctx, id).Return(&models.Incident{ID: id, Status: models.StatusNew}, nil)
	d.verifications.EXPECT().Create(ctx, v).Return(nil)
	d.repo.EXPECT().IncrementCounters(ctx, id, models.CounterDelta{Flags: 1}).Return(counted, nil)
	d.reporters.EXPECT().GetByID(ctx, reporterID).Return(&models.Reporter{ID: reporterID, TrustScore: 80}, nil)
	expectRescoring(d, 0.2, 40)
	d.repo.EXPECT().UpdateScores(ctx, id, gomock.Any()).Return(nil)
	d.repo.EXPECT().TransitionStatus(ctx, id, models.StatusRejected, gomock.Any()).DoAndReturn(transitionFrom(models.StatusNew))
	d.reporters.EXPECT().AdjustReputation(ctx, reporterID, models.ReputationChange{FlaggedReports: 1, TrustDelta: -5}).Return(nil)
	gomock.InOrder(
		d.audit.EXPECT().Record(ctx, gomock.Any()).Return(nil),
		d.audit.EXPECT().Record(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *models.AuditLogEntry) error {
			assert.Equal(t, models.ActionIncidentRejected, e.ActionType)
			assert.Equal(t, models.SystemActor.ID, e.ActorID)
			return nil
		}),
	)
	d.repo.EXPECT().InvalidateIncidentCache(ctx, id).Return(nil).Times(2)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	// Действие
	incident, err := service.RecordVerification(ctx, v)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, incident.Status)
}

func TestRecordVerification_ThirdUpvoteVerifies(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	id := uuid.New()
	reporterID := uuid.New()
	v := newVerification(id, models.VerificationUpvote)
	counted := &models.Incident{ID: id, Status: models.StatusNew, Upvotes: 3, ReporterID: &reporterID}

	// Ожидания
	d.repo.EXPECT().GetByID(ctx, id).Return(&models.Incident{ID: id, Status: models.StatusNew}, nil)
	d.verifications.EXPECT().Create(ctx, v).Return(nil)
	d.repo.EXPECT().IncrementCounters(ctx, id, models.CounterDelta{Upvotes: 1}).Return(counted, nil)
	d.reporters.EXPECT().GetByID(ctx, reporterID).Return(&models.Reporter{ID: reporterID, TrustScore: 100}, nil)
	expectRescoring(d, 0.1, 40)
	d.repo.EXPECT().UpdateScores(ctx, id, gomock.Any()).Return(nil)
	d.repo.EXPECT().TransitionStatus(ctx, id, models.StatusVerified, gomock.Any()).DoAndReturn(transitionFrom(models.StatusNew))
	d.reporters.EXPECT().AdjustReputation(ctx, reporterID, models.ReputationChange{VerifiedReports: 1, TrustDelta: 2}).Return(nil)
	d.audit.EXPECT().Record(ctx, gomock.Any()).Return(nil).Times(2)
	d.repo.EXPECT().InvalidateIncidentCache(ctx, id).Return(nil).Times(2)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	// Действие
	incident, err := service.RecordVerification(ctx, v)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, incident.Status)
}

func TestRecordVerification_ConcurrentTransitionSkipsConsensus(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	id := uuid.New()
	v := newVerification(id, models.VerificationUpvote)
	counted := &models.Incident{ID: id, Status: models.StatusNew, Upvotes: 3}

	// Ожидания: администратор успел сменить статус, репутация и журнал не трогаются
	d.repo.EXPECT().GetByID(ctx, id).Return(&models.Incident{ID: id, Status: models.StatusNew}, nil)
	d.verifications.EXPECT().Create(ctx, v).Return(nil)
	d.repo.EXPECT().IncrementCounters(ctx, id, gomock.Any()).Return(counted, nil)
	d.audit.EXPECT().Record(ctx, gomock.Any()).Return(nil).Times(1)
	expectRescoring(d, 0.1, 40)
	d.repo.EXPECT().UpdateScores(ctx, id, gomock.Any()).Return(nil)
	d.repo.EXPECT().TransitionStatus(ctx, id, models.StatusVerified, gomock.Any()).DoAndReturn(transitionFrom(models.StatusDuplicate))
	d.repo.EXPECT().InvalidateIncidentCache(ctx, id).Return(nil)

	// Действие
	incident, err := service.RecordVerification(ctx, v)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusNew, incident.Status)
}

func TestRecordVerification_Validation(t *testing.T) {
	service, _ := newTestIncidentService(t)
	id := uuid.New()
	cases := []struct {
		name   string
		modify func(v *models.Verification)
	}{
		{"нет инцидента", func(v *models.Verification) { v.IncidentID = uuid.Nil }},
		{"нет проверяющего", func(v *models.Verification) { v.VerifierID = uuid.Nil }},
		{"неизвестный тип", func(v *models.Verification) { v.Type = "LIKE" }},
		{"уверенность 0", func(v *models.Verification) { v.ConfidenceLevel = 0 }},
		{"уверенность 11", func(v *models.Verification) { v.ConfidenceLevel = 11 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := newVerification(id, models.VerificationDetailed)
			tc.modify(v)

			_, err := service.RecordVerification(context.Background(), v)

			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestRecordVerification_UnknownIncident(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	id := uuid.New()

	// Ожидания
	d.repo.EXPECT().GetByID(ctx, id).Return(nil, models.ErrNotFound)

	// Действие
	_, err := service.RecordVerification(ctx, newVerification(id, models.VerificationUpvote))

	// Проверки
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRecordVerification_CounterError(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	id := uuid.New()

	// Ожидания
	d.repo.EXPECT().GetByID(ctx, id).Return(&models.Incident{ID: id}, nil)
	d.verifications.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.repo.EXPECT().IncrementCounters(ctx, id, gomock.Any()).Return(nil, errors.New("db error"))

	// Действие
	_, err := service.RecordVerification(ctx, newVerification(id, models.VerificationFlag))

	// Проверки
	require.Error(t, err)
}
