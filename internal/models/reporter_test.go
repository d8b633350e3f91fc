package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampTrustScore(t *testing.T) {
	assert.Equal(t, 0.0, ClampTrustScore(-3))
	assert.Equal(t, 100.0, ClampTrustScore(102))
	assert.Equal(t, 42.5, ClampTrustScore(42.5))
}

func TestReputationChange_ApplyTo_RepeatedNearBounds(t *testing.T) {
	verified := ReputationChange{VerifiedReports: 1, TrustDelta: 2}
	flagged := ReputationChange{FlaggedReports: 1, TrustDelta: -5}

	cases := []struct {
		name  string
		start float64
		steps []ReputationChange
		want  float64
	}{
		{"у верхней границы", 99, []ReputationChange{verified, verified, verified, verified}, MaxTrustScore},
		{"у нижней границы", 3, []ReputationChange{flagged, flagged, flagged}, MinTrustScore},
		{"вниз от максимума и обратно", 100, []ReputationChange{flagged, verified, verified, verified}, 100},
		{"вверх от нуля", 0, []ReputationChange{flagged, verified}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trust := tc.start
			for _, step := range tc.steps {
				trust = step.ApplyTo(trust)
				assert.GreaterOrEqual(t, trust, MinTrustScore)
				assert.LessOrEqual(t, trust, MaxTrustScore)
			}
			assert.Equal(t, tc.want, trust)
		})
	}
}

func TestReputationChange_ApplyTo_ManySteps(t *testing.T) {
	trust := DefaultTrustScore
	for i := 0; i < 200; i++ {
		change := ReputationChange{TrustDelta: 2}
		if i%3 == 0 {
			change.TrustDelta = -5
		}
		trust = change.ApplyTo(trust)
		assert.GreaterOrEqual(t, trust, MinTrustScore)
		assert.LessOrEqual(t, trust, MaxTrustScore)
	}
}
