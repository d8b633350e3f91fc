package service

import (
	"context"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/AdwikaVishal/Disaster-Management/internal/scoring"
	"golang.org/x/sync/errgroup"
)

// scoreNew: сначала похожесть, затем мошенничество и риск параллельно
func (s *incidentService) scoreNew(ctx context.Context, incident *models.Incident, reporter *models.Reporter) models.Scores {
	similarity := s.scorer.Score(ctx, scoring.KindSimilarity, incident, reporter)
	// Оценка мошенничества учитывает похожесть как duplicate_score
	incident.SimilarityScore = ptr(similarity.Value)

	scores := s.scoreFraudAndRisk(ctx, incident, reporter)
	scores.SimilarityScore = incident.SimilarityScore
	return scores
}

// scoreFraudAndRisk - повторная оценка после отклика; похожесть не пересчитывается
func (s *incidentService) scoreFraudAndRisk(ctx context.Context, incident *models.Incident, reporter *models.Reporter) models.Scores {
	var fraud, risk scoring.Result

	// Score не возвращает ошибок, группа нужна только для ожидания обеих оценок
	var g errgroup.Group
	g.Go(func() error {
		fraud = s.scorer.Score(ctx, scoring.KindFraud, incident, reporter)
		return nil
	})
	g.Go(func() error {
		risk = s.scorer.Score(ctx, scoring.KindRisk, incident, reporter)
		return nil
	})
	_ = g.Wait()

	return models.Scores{
		FraudProbability: ptr(fraud.Value),
		IsFraud:          fraud.IsFraud,
		RiskScore:        ptr(risk.Value),
		RiskLevel:        ptr(scoring.RiskLevel(risk.Value)),
	}
}

func ptr[T any](v T) *T {
	return &v
}
