package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncidentStats_Add(t *testing.T) {
	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	stats := NewIncidentStats(since)

	stats.Add(IncidentStatsRow{Type: TypeFire, Severity: SeverityCritical, Status: StatusNew, Count: 3, Duplicates: 1, RiskSum: 240, RiskCount: 3})
	stats.Add(IncidentStatsRow{Type: TypeFire, Severity: SeverityLow, Status: StatusResolved, Count: 2, RiskSum: 40, RiskCount: 1})
	stats.Add(IncidentStatsRow{Type: TypeFlood, Severity: SeverityCritical, Status: StatusRejected, Count: 1})

	assert.Equal(t, since, stats.Since)
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 3, stats.Active)
	assert.Equal(t, 4, stats.Critical)
	assert.Equal(t, 1, stats.Duplicates)
	assert.Equal(t, map[string]int{"FIRE": 5, "FLOOD": 1}, stats.ByType)
	assert.Equal(t, map[string]int{"CRITICAL": 4, "LOW": 2}, stats.BySeverity)
	assert.Equal(t, map[string]int{"NEW": 3, "RESOLVED": 2, "REJECTED": 1}, stats.ByStatus)
	require.NotNil(t, stats.AverageRiskScore)
	assert.Equal(t, 70.0, *stats.AverageRiskScore)
}

func TestIncidentStats_EmptyWindow(t *testing.T) {
	stats := NewIncidentStats(time.Time{})

	assert.Zero(t, stats.Total)
	assert.Nil(t, stats.AverageRiskScore)
	assert.Empty(t, stats.ByType)
}
