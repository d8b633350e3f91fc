// Package scoring обращается к внешнему сервису оценки сообщений и при любой
// его недоступности возвращает результат детерминированных правил.
package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/dispatch"
	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/sirupsen/logrus"
)

// Kind - вид оценки
type Kind string

const (
	KindFraud      Kind = "fraud"
	KindRisk       Kind = "risk"
	KindSimilarity Kind = "similarity"
)

const maxResponseBytes = 1 << 20

var errMalformedResponse = errors.New("malformed scoring response")

// Result - итог одной оценки, удаленной или локальной
type Result struct {
	Kind         Kind
	Value        float64
	Level        string
	IsFraud      bool
	Confidence   float64
	UsedFallback bool
	Candidates   []string
}

// FlagReader читает флаги конфигурации
type FlagReader interface {
	IsEnabled(ctx context.Context, key string) (bool, error)
}

// Client - клиент сервиса оценки
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	flags      FlagReader
	logger     *logrus.Logger
	now        func() time.Time
}

// NewClient создает клиента. Пустой baseURL означает работу только на локальных правилах.
func NewClient(baseURL string, timeout time.Duration, flags FlagReader, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: &http.Client{},
		flags:      flags,
		logger:     logger,
		now:        time.Now,
	}
}

// Score возвращает оценку указанного вида и никогда не возвращает ошибку
func (c *Client) Score(ctx context.Context, kind Kind, inc *models.Incident, rep *models.Reporter) Result {
	log := c.logger.WithFields(logrus.Fields{
		"service":     "ScoringClient",
		"method":      "Score",
		"kind":        kind,
		"incident_id": inc.ID,
	})

	if !c.remoteAllowed(ctx) {
		log.Debug("Remote scoring disabled, using fallback")
		return fallback(kind, inc, rep)
	}

	res, err := c.remoteScore(ctx, kind, inc, rep)
	if err != nil {
		log.WithError(err).Warn("Scoring service unavailable, using fallback")
		return fallback(kind, inc, rep)
	}

	log.WithField("value", res.Value).Debug("Remote score received")
	return res
}

// Recommend возвращает рекомендации по службам; при сбое сервиса - локальные правила
func (c *Client) Recommend(ctx context.Context, inc *models.Incident, q dispatch.GuidedQuestions) dispatch.Recommendation {
	log := c.logger.WithFields(logrus.Fields{
		"service":     "ScoringClient",
		"method":      "Recommend",
		"incident_id": inc.ID,
	})
	risk := derefOr(inc.RiskScore, 0)

	local := func() dispatch.Recommendation {
		rec := dispatch.Recommend(inc.Type, q, risk)
		rec.UsedFallback = true
		return rec
	}

	if !c.remoteAllowed(ctx) {
		return local()
	}

	var resp struct {
		Success   bool             `json:"success"`
		Ambulance *bool            `json:"recommend_ambulance"`
		Police    *bool            `json:"recommend_police"`
		Fire      *bool            `json:"recommend_fire"`
		Urgency   dispatch.Urgency `json:"urgency"`
	}
	if err := c.post(ctx, "/recommend", newRecommendRequest(inc, q, risk), &resp); err != nil {
		log.WithError(err).Warn("Recommendation service unavailable, using local rules")
		return local()
	}
	if !resp.Success || resp.Ambulance == nil || resp.Police == nil || resp.Fire == nil || !validUrgency(resp.Urgency) {
		log.Warn("Recommendation response rejected, using local rules")
		return local()
	}

	return dispatch.Recommendation{
		Ambulance: *resp.Ambulance,
		Police:    *resp.Police,
		Fire:      *resp.Fire,
		Urgency:   resp.Urgency,
	}
}

// remoteAllowed - ошибка чтения флага не запрещает удаленный вызов
func (c *Client) remoteAllowed(ctx context.Context) bool {
	if c.baseURL == "" {
		return false
	}
	if c.flags == nil {
		return true
	}
	enabled, err := c.flags.IsEnabled(ctx, models.FlagAIRiskScoring)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to read ai-risk-scoring flag")
		return true
	}
	return enabled
}

type scoreResponse struct {
	Success          bool      `json:"success"`
	FraudProbability *float64  `json:"fraud_probability"`
	IsFraud          *bool     `json:"is_fraud"`
	RiskScore        *float64  `json:"risk_score"`
	Confidence       *float64  `json:"confidence"`
	SimilarIncidents []string  `json:"similar_incidents"`
	SimilarityScores []float64 `json:"similarity_scores"`
	TopMatchScore    *float64  `json:"top_match_score"`
}

func (c *Client) remoteScore(ctx context.Context, kind Kind, inc *models.Incident, rep *models.Reporter) (Result, error) {
	var body any
	switch kind {
	case KindFraud:
		body = newFraudRequest(inc, rep, c.now())
	case KindRisk:
		body = newRiskRequest(inc, c.now())
	case KindSimilarity:
		body = newSimilarityRequest(inc)
	default:
		return Result{}, fmt.Errorf("unknown scoring kind %q", kind)
	}

	var resp scoreResponse
	if err := c.post(ctx, "/"+string(kind), body, &resp); err != nil {
		return Result{}, err
	}
	if !resp.Success {
		return Result{}, fmt.Errorf("scoring service reported failure")
	}

	res := Result{Kind: kind}
	if resp.Confidence != nil {
		if !inRange(*resp.Confidence, 0, 1) {
			return Result{}, errMalformedResponse
		}
		res.Confidence = *resp.Confidence
	}

	switch kind {
	case KindFraud:
		if resp.FraudProbability == nil || !inRange(*resp.FraudProbability, 0, 1) {
			return Result{}, errMalformedResponse
		}
		res.Value = *resp.FraudProbability
		res.IsFraud = res.Value > 0.5
		if resp.IsFraud != nil {
			res.IsFraud = *resp.IsFraud
		}
	case KindRisk:
		if resp.RiskScore == nil || !inRange(*resp.RiskScore, 0, 100) {
			return Result{}, errMalformedResponse
		}
		res.Value = *resp.RiskScore
		res.Level = RiskLevel(res.Value)
	case KindSimilarity:
		top := 0.0
		for _, s := range resp.SimilarityScores {
			if !inRange(s, 0, 1) {
				return Result{}, errMalformedResponse
			}
			if s > top {
				top = s
			}
		}
		if resp.TopMatchScore != nil {
			if !inRange(*resp.TopMatchScore, 0, 1) {
				return Result{}, errMalformedResponse
			}
			top = *resp.TopMatchScore
		}
		res.Value = top
		res.Candidates = resp.SimilarIncidents
		if res.Candidates == nil {
			res.Candidates = []string{}
		}
	}

	return res, nil
}

// post отправляет JSON и разбирает ответ; время ограничено timeout клиента
func (c *Client) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", errMalformedResponse, err)
	}
	return nil
}

func fallback(kind Kind, inc *models.Incident, rep *models.Reporter) Result {
	switch kind {
	case KindFraud:
		return FallbackFraud(inc, rep)
	case KindRisk:
		return FallbackRisk(inc)
	default:
		return FallbackSimilarity()
	}
}

func validUrgency(u dispatch.Urgency) bool {
	switch u {
	case dispatch.UrgencyLow, dispatch.UrgencyMedium, dispatch.UrgencyHigh, dispatch.UrgencyCritical:
		return true
	}
	return false
}

func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
