package models

import "time"

// DuplicateSimilarityThreshold - похожесть, выше которой сообщение считается вероятным дубликатом
const DuplicateSimilarityThreshold = 0.8

// IncidentStatsRow - одна группа (тип, важность, статус) агрегата по инцидентам
type IncidentStatsRow struct {
	Type       IncidentType
	Severity   Severity
	Status     Status
	Count      int
	Duplicates int
	RiskSum    float64
	RiskCount  int
}

// IncidentStats - сводка инцидентов, созданных начиная с Since
type IncidentStats struct {
	Since            time.Time      `json:"since"`
	Total            int            `json:"total"`
	Active           int            `json:"active"`
	Critical         int            `json:"critical"`
	Duplicates       int            `json:"duplicates"`
	AverageRiskScore *float64       `json:"average_risk_score,omitempty"`
	ByType           map[string]int `json:"by_type"`
	BySeverity       map[string]int `json:"by_severity"`
	ByStatus         map[string]int `json:"by_status"`

	riskSum   float64
	riskCount int
}

func NewIncidentStats(since time.Time) *IncidentStats {
	return &IncidentStats{
		Since:      since,
		ByType:     map[string]int{},
		BySeverity: map[string]int{},
		ByStatus:   map[string]int{},
	}
}

// Add учитывает группу в сводке
func (s *IncidentStats) Add(row IncidentStatsRow) {
	s.Total += row.Count
	s.Duplicates += row.Duplicates
	s.ByType[string(row.Type)] += row.Count
	s.BySeverity[string(row.Severity)] += row.Count
	s.ByStatus[string(row.Status)] += row.Count

	if !row.Status.Terminal() {
		s.Active += row.Count
	}
	if row.Severity == SeverityCritical {
		s.Critical += row.Count
	}

	s.riskSum += row.RiskSum
	s.riskCount += row.RiskCount
	if s.riskCount > 0 {
		avg := s.riskSum / float64(s.riskCount)
		s.AverageRiskScore = &avg
	}
}
