package scoring

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/AdwikaVishal/Disaster-Management/internal/dispatch"
	"github.com/AdwikaVishal/Disaster-Management/internal/models"
)

const (
	// Расстояние до службы, если геолокация не дала результата
	defaultDistanceToResponder = 5.0
	// Похожесть на предыдущие сообщения автора, история пока не считается
	defaultSimilarityToPrevious = 0.2
)

type fraudRequest struct {
	IncidentType         string  `json:"incident_type"`
	DescriptionLength    int     `json:"description_length"`
	HasMedia             bool    `json:"has_media"`
	Upvotes              int     `json:"upvotes"`
	Flags                int     `json:"flags"`
	DuplicateScore       float64 `json:"duplicate_score"`
	SimilarityToPrevious float64 `json:"similarity_to_previous"`
	PostedAtNight        bool    `json:"posted_at_night"`
	AccountAgeDays       int     `json:"account_age_days"`
	TotalReportsByUser   int     `json:"total_reports_by_user"`
	PastFraudReports     int     `json:"past_fraud_reports"`
	UserTotalFlags       int     `json:"user_total_flags"`
	VerifiedUser         bool    `json:"verified_user"`
	TrustScore           float64 `json:"trust_score"`
}

type riskRequest struct {
	IncidentType          string  `json:"incident_type"`
	Severity              string  `json:"severity"`
	InjuriesReported      int     `json:"injuries_reported"`
	PeopleInvolved        int     `json:"people_involved"`
	DistanceToResponder   float64 `json:"distance_to_responder"`
	NearSensitiveLocation bool    `json:"near_sensitive_location"`
	TimeOfDay             string  `json:"time_of_day"`
	DescriptionLength     int     `json:"description_length"`
	HasMedia              bool    `json:"has_media"`
}

type similarityRequest struct {
	IncidentID   string  `json:"incident_id"`
	IncidentType string  `json:"incident_type"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

type recommendRequest struct {
	dispatch.GuidedQuestions
	IncidentType string  `json:"incident_type"`
	Severity     string  `json:"severity"`
	RiskScore    float64 `json:"risk_score"`
}

func newFraudRequest(inc *models.Incident, rep *models.Reporter, now time.Time) fraudRequest {
	req := fraudRequest{
		IncidentType:         strings.ToLower(string(inc.Type)),
		DescriptionLength:    utf8.RuneCountInString(inc.Description),
		HasMedia:             inc.HasMedia(),
		Upvotes:              inc.Upvotes,
		Flags:                inc.Flags,
		DuplicateScore:       derefOr(inc.SimilarityScore, 0),
		SimilarityToPrevious: defaultSimilarityToPrevious,
		PostedAtNight:        postedAtNight(createdOr(inc, now)),
	}
	if rep != nil {
		req.AccountAgeDays = rep.AccountAgeDays(now)
		req.TotalReportsByUser = rep.TotalReports
		req.PastFraudReports = rep.FlaggedReports
		req.UserTotalFlags = rep.FlaggedReports
		req.VerifiedUser = rep.Verified
		req.TrustScore = rep.TrustScore
	}
	return req
}

func newRiskRequest(inc *models.Incident, now time.Time) riskRequest {
	return riskRequest{
		IncidentType:          strings.ToLower(string(inc.Type)),
		Severity:              strings.ToLower(string(inc.Severity)),
		InjuriesReported:      inc.InjuriesReported,
		PeopleInvolved:        inc.PeopleInvolved,
		DistanceToResponder:   derefOr(inc.DistanceToResponder, defaultDistanceToResponder),
		NearSensitiveLocation: inc.NearSensitiveLocation,
		TimeOfDay:             timeOfDay(createdOr(inc, now)),
		DescriptionLength:     utf8.RuneCountInString(inc.Description),
		HasMedia:              inc.HasMedia(),
	}
}

func newRecommendRequest(inc *models.Incident, q dispatch.GuidedQuestions, risk float64) recommendRequest {
	return recommendRequest{
		GuidedQuestions: q,
		IncidentType:    strings.ToLower(string(inc.Type)),
		Severity:        strings.ToLower(string(inc.Severity)),
		RiskScore:       risk,
	}
}

func newSimilarityRequest(inc *models.Incident) similarityRequest {
	return similarityRequest{
		IncidentID:   inc.ID.String(),
		IncidentType: strings.ToLower(string(inc.Type)),
		Title:        inc.Title,
		Description:  inc.Description,
		Latitude:     inc.Latitude,
		Longitude:    inc.Longitude,
	}
}

// postedAtNight - с 22:00 до 06:00
func postedAtNight(t time.Time) bool {
	h := t.Hour()
	return h >= 22 || h < 6
}

func timeOfDay(t time.Time) string {
	switch h := t.Hour(); {
	case h < 6:
		return "night"
	case h < 12:
		return "morning"
	case h < 18:
		return "afternoon"
	case h < 22:
		return "evening"
	default:
		return "night"
	}
}

func createdOr(inc *models.Incident, now time.Time) time.Time {
	if inc.CreatedAt.IsZero() {
		return now
	}
	return inc.CreatedAt
}

func derefOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
