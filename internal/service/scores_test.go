package service

import (
	"context"
	"sync"
	"testing"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/AdwikaVishal/Disaster-Management/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScoreNew_FraudSeesSimilarity(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	incident := newIncidentInput(models.SeverityHigh)

	var (
		mu          sync.Mutex
		seenByFraud *float64
		seenByRisk  *float64
	)

	// Ожидания
	d.scorer.EXPECT().Score(ctx, scoring.KindSimilarity, incident, nil).
		Return(scoring.Result{Kind: scoring.KindSimilarity, Value: 0.93})
	d.scorer.EXPECT().Score(ctx, scoring.KindFraud, incident, nil).
		DoAndReturn(func(_ context.Context, _ scoring.Kind, inc *models.Incident, _ *models.Reporter) scoring.Result {
			mu.Lock()
			defer mu.Unlock()
			seenByFraud = inc.SimilarityScore
			return scoring.Result{Kind: scoring.KindFraud, Value: 0.6, IsFraud: true}
		})
	d.scorer.EXPECT().Score(ctx, scoring.KindRisk, incident, nil).
		DoAndReturn(func(_ context.Context, _ scoring.Kind, inc *models.Incident, _ *models.Reporter) scoring.Result {
			mu.Lock()
			defer mu.Unlock()
			seenByRisk = inc.SimilarityScore
			return scoring.Result{Kind: scoring.KindRisk, Value: 65}
		})

	// Действие
	scores := service.scoreNew(ctx, incident, nil)

	// Проверки
	require.NotNil(t, seenByFraud)
	assert.Equal(t, 0.93, *seenByFraud)
	require.NotNil(t, seenByRisk)
	require.NotNil(t, scores.SimilarityScore)
	assert.Equal(t, 0.93, *scores.SimilarityScore)
	assert.True(t, scores.IsFraud)
	require.NotNil(t, scores.RiskLevel)
	assert.Equal(t, scoring.RiskLevel(65), *scores.RiskLevel)
}

func TestScoreFraudAndRisk_KeepsSimilarityUntouched(t *testing.T) {
	// Подготовка
	service, d := newTestIncidentService(t)
	ctx := context.Background()
	incident := newIncidentInput(models.SeverityLow)

	// Ожидания: повторная оценка не вызывает похожесть
	d.scorer.EXPECT().Score(ctx, scoring.KindSimilarity, gomock.Any(), gomock.Any()).Times(0)
	expectRescoring(d, 0.2, 30)

	// Действие
	scores := service.scoreFraudAndRisk(ctx, incident, nil)

	// Проверки
	assert.Nil(t, scores.SimilarityScore)
	require.NotNil(t, scores.FraudProbability)
	assert.Equal(t, 0.2, *scores.FraudProbability)
}
