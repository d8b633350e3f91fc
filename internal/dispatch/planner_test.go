package dispatch

import (
	"testing"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBaseServices(t *testing.T) {
	tests := []struct {
		name     string
		typ      models.IncidentType
		expected []models.ResponseType
	}{
		{"пожар", models.TypeFire, []models.ResponseType{models.ResponseFireBrigade, models.ResponseAmbulance}},
		{"медицина", models.TypeMedicalEmergency, []models.ResponseType{models.ResponseAmbulance, models.ResponseHospital}},
		{"насилие", models.TypeViolence, []models.ResponseType{models.ResponsePolice, models.ResponseAmbulance}},
		{"дтп", models.TypeRoadAccident, []models.ResponseType{models.ResponsePolice, models.ResponseAmbulance}},
		{"утечка газа", models.TypeGasLeak, []models.ResponseType{models.ResponseGasEmergency, models.ResponseFireBrigade}},
		{"наводнение", models.TypeFlood, []models.ResponseType{models.ResponseRescueTeam, models.ResponseVolunteerTeam}},
		{"прочее", models.TypeOther, []models.ResponseType{models.ResponsePolice}},
		{"отключение света", models.TypePowerOutage, []models.ResponseType{models.ResponsePolice}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BaseServices(tt.typ))
		})
	}
}

func TestMerge_NoDuplicates(t *testing.T) {
	base := BaseServices(models.TypeFire)
	rec := Recommendation{Ambulance: true, Police: true, Fire: true}

	merged := Merge(base, rec)

	assert.Equal(t, []models.ResponseType{
		models.ResponseFireBrigade,
		models.ResponseAmbulance,
		models.ResponsePolice,
	}, merged)
}

func TestMerge_FireWithoutOverridesKeepsBase(t *testing.T) {
	inc := &models.Incident{Type: models.TypeFire}
	rec := Recommend(inc.Type, QuestionsFromIncident(inc), 0)

	merged := Merge(BaseServices(inc.Type), rec)

	assert.Contains(t, merged, models.ResponseFireBrigade)
	assert.Contains(t, merged, models.ResponseAmbulance)
}

func TestRecommend_Rules(t *testing.T) {
	t.Run("скорая при кровотечении", func(t *testing.T) {
		rec := Recommend(models.TypeOther, GuidedQuestions{HasBleeding: true}, 10)
		assert.True(t, rec.Ambulance)
		assert.False(t, rec.Police)
		assert.False(t, rec.Fire)
	})
	t.Run("скорая при высоком риске", func(t *testing.T) {
		assert.True(t, Recommend(models.TypeOther, GuidedQuestions{}, 70.5).Ambulance)
		assert.False(t, Recommend(models.TypeOther, GuidedQuestions{}, 70).Ambulance)
	})
	t.Run("полиция при пробке", func(t *testing.T) {
		assert.True(t, Recommend(models.TypeFlood, GuidedQuestions{TrafficSeverity: TrafficSevere}, 0).Police)
		assert.True(t, Recommend(models.TypeFlood, GuidedQuestions{VehiclesInvolved: 2}, 0).Police)
		assert.False(t, Recommend(models.TypeFlood, GuidedQuestions{VehiclesInvolved: 1}, 0).Police)
	})
	t.Run("пожарные при риске взрыва", func(t *testing.T) {
		assert.True(t, Recommend(models.TypeOther, GuidedQuestions{HasExplosionRisk: true}, 0).Fire)
		assert.True(t, Recommend(models.TypeGasLeak, GuidedQuestions{}, 0).Fire)
	})
}

func TestRecommend_Urgency(t *testing.T) {
	tests := []struct {
		name     string
		q        GuidedQuestions
		risk     float64
		expected Urgency
	}{
		{"без сознания", GuidedQuestions{HasUnconsciousPeople: true}, 10, UrgencyCritical},
		{"риск выше 90", GuidedQuestions{}, 91, UrgencyCritical},
		{"риск пожара", GuidedQuestions{HasFireRisk: true}, 10, UrgencyHigh},
		{"риск выше 75", GuidedQuestions{}, 76, UrgencyHigh},
		{"низкий риск без травм", GuidedQuestions{}, 39, UrgencyLow},
		{"низкий риск с травмами", GuidedQuestions{HasInjuries: true}, 39, UrgencyMedium},
		{"средний риск", GuidedQuestions{}, 50, UrgencyMedium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Recommend(models.TypeOther, tt.q, tt.risk).Urgency)
		})
	}
}

func TestEstimateArrival(t *testing.T) {
	// 10 км при 40 км/ч = 15 минут
	assert.Equal(t, 15+8, EstimateArrival(10, models.ResponseFireBrigade))
	assert.Equal(t, 15+6, EstimateArrival(10, models.ResponseAmbulance))
	// округление вверх: 1 км = 1.5 минуты -> 2
	assert.Equal(t, 2+5, EstimateArrival(1, models.ResponsePolice))
	assert.Equal(t, 12, EstimateArrival(0, models.ResponseGasEmergency))
	assert.Equal(t, 10, EstimateArrival(-3, models.ResponseVolunteerTeam))
}

func TestQuestionsFromIncident(t *testing.T) {
	q := QuestionsFromIncident(&models.Incident{Type: models.TypeRoadAccident, InjuriesReported: 2})

	assert.True(t, q.HasInjuries)
	assert.Equal(t, 1, q.VehiclesInvolved)
	assert.False(t, q.HasFireRisk)
}
