package scoring

import (
	"unicode/utf8"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
)

// Уверенность локальных правил
const (
	fallbackFraudConfidence = 0.7
	fallbackRiskConfidence  = 0.8
)

// Уровни риска
const (
	RiskLevelCritical = "critical"
	RiskLevelHigh     = "high"
	RiskLevelMedium   = "medium"
	RiskLevelLow      = "low"
)

// FallbackFraud - детерминированная вероятность мошенничества.
// Без автора (анонимное сообщение) слагаемые по автору пропускаются.
func FallbackFraud(inc *models.Incident, rep *models.Reporter) Result {
	score := 0.0
	if rep != nil {
		if rep.TrustScore < 50 {
			score += 0.3
		}
		if rep.FlaggedReports > 2 {
			score += 0.4
		}
	}
	if inc.Flags > inc.Upvotes {
		score += 0.2
	}
	if utf8.RuneCountInString(inc.Description) < 20 {
		score += 0.1
	}
	score = clamp(score, 0, 1)

	return Result{
		Kind:         KindFraud,
		Value:        score,
		IsFraud:      score > 0.5,
		Confidence:   fallbackFraudConfidence,
		UsedFallback: true,
	}
}

// FallbackRisk - детерминированная оценка риска в диапазоне [0,100]
func FallbackRisk(inc *models.Incident) Result {
	score := 50.0 + typeWeight(inc.Type) + severityWeight(inc.Severity)
	score += float64(inc.InjuriesReported) * 10
	score += float64(inc.PeopleInvolved) * 2
	if inc.NearSensitiveLocation {
		score += 15
	}
	score = clamp(score, 0, 100)

	return Result{
		Kind:         KindRisk,
		Value:        score,
		Level:        RiskLevel(score),
		Confidence:   fallbackRiskConfidence,
		UsedFallback: true,
	}
}

// FallbackSimilarity - совпадений нет
func FallbackSimilarity() Result {
	return Result{
		Kind:         KindSimilarity,
		Value:        0,
		Candidates:   []string{},
		UsedFallback: true,
	}
}

// RiskLevel выводит уровень из числовой оценки
func RiskLevel(score float64) string {
	switch {
	case score >= 80:
		return RiskLevelCritical
	case score >= 60:
		return RiskLevelHigh
	case score >= 40:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

func typeWeight(t models.IncidentType) float64 {
	switch t {
	case models.TypeFire:
		return 30
	case models.TypeFlood:
		return 25
	case models.TypeGasLeak:
		return 35
	case models.TypeMedicalEmergency:
		return 20
	case models.TypeViolence:
		return 25
	case models.TypeRoadAccident:
		return 15
	}
	return 10
}

func severityWeight(s models.Severity) float64 {
	switch s {
	case models.SeverityCritical:
		return 20
	case models.SeverityHigh:
		return 15
	case models.SeverityMedium:
		return 10
	case models.SeverityLow:
		return 5
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
