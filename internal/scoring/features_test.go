package scoring

import (
	"testing"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/dispatch"
	"github.com/stretchr/testify/assert"
)

func TestRequests_LowerCaseEnums(t *testing.T) {
	inc := testIncident()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	risk := newRiskRequest(inc, now)
	rec := newRecommendRequest(inc, dispatch.GuidedQuestions{}, 40)

	assert.Equal(t, "fire", newFraudRequest(inc, nil, now).IncidentType)
	assert.Equal(t, risk.IncidentType, rec.IncidentType)
	assert.Equal(t, risk.Severity, rec.Severity)
	assert.Equal(t, "high", rec.Severity)
	assert.Equal(t, 40.0, rec.RiskScore)
}
