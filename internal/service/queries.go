package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/geo"
	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// Предел выборки для запросов без пагинации
	maxQueryResults = 500
	maxNearbyRadius = 500.0
	maxStatsWindow  = 365 * 24 * time.Hour
)

// NearbyIncidents - активные инциденты в радиусе от точки, ближние первыми
func (s *incidentService) NearbyIncidents(ctx context.Context, lat, lng, radiusKm float64) ([]*models.NearbyIncident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "NearbyIncidents",
		"radius_km": radiusKm,
	})

	switch {
	case math.IsNaN(lat) || lat < -90 || lat > 90:
		return nil, fmt.Errorf("service: latitude out of range: %w", models.ErrValidation)
	case math.IsNaN(lng) || lng < -180 || lng > 180:
		return nil, fmt.Errorf("service: longitude out of range: %w", models.ErrValidation)
	case math.IsNaN(radiusKm) || radiusKm <= 0 || radiusKm > maxNearbyRadius:
		return nil, fmt.Errorf("service: radius must be in (0, %.0f] km: %w", maxNearbyRadius, models.ErrValidation)
	}

	center := geo.Point{Lat: lat, Lng: lng}
	box := geo.Bounds(center, radiusKm)
	candidates, err := s.repo.List(ctx, models.IncidentFilter{
		Statuses: models.ActiveStatuses,
		Area:     &box,
		Page:     1,
		PageSize: maxQueryResults,
	})
	if err != nil {
		log.WithError(err).Error("Failed to list incidents around point")
		return nil, fmt.Errorf("service: could not list nearby incidents: %w", err)
	}

	nearby := make([]*models.NearbyIncident, 0, len(candidates))
	for _, inc := range candidates {
		d := geo.Haversine(center, geo.Point{Lat: inc.Latitude, Lng: inc.Longitude})
		if d <= radiusKm {
			nearby = append(nearby, &models.NearbyIncident{Incident: inc, DistanceKm: d})
		}
	}
	sort.SliceStable(nearby, func(i, j int) bool { return nearby[i].DistanceKm < nearby[j].DistanceKm })

	log.WithField("count", len(nearby)).Debug("Nearby incidents selected")
	return nearby, nil
}

// CriticalIncidents - критические инциденты, которые еще ждут реакции
func (s *incidentService) CriticalIncidents(ctx context.Context) ([]*models.Incident, error) {
	incidents, err := s.repo.List(ctx, models.IncidentFilter{
		Statuses: models.ActiveStatuses,
		Severity: models.SeverityCritical,
		Page:     1,
		PageSize: maxQueryResults,
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to list critical incidents")
		return nil, fmt.Errorf("service: could not list critical incidents: %w", err)
	}
	return incidents, nil
}

// HighRiskIncidents - инциденты с риском не ниже порога, самые опасные первыми
func (s *incidentService) HighRiskIncidents(ctx context.Context, minRiskScore float64) ([]*models.Incident, error) {
	if math.IsNaN(minRiskScore) || minRiskScore < 0 || minRiskScore > 100 {
		return nil, fmt.Errorf("service: minRiskScore must be in [0, 100]: %w", models.ErrValidation)
	}
	incidents, err := s.repo.List(ctx, models.IncidentFilter{
		MinRiskScore: &minRiskScore,
		Order:        models.OrderRisk,
		Page:         1,
		PageSize:     maxQueryResults,
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to list high-risk incidents")
		return nil, fmt.Errorf("service: could not list high-risk incidents: %w", err)
	}
	return incidents, nil
}

// SimilarIncidents - другие инциденты с похожестью не ниже порога
func (s *incidentService) SimilarIncidents(ctx context.Context, id uuid.UUID, threshold float64) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "SimilarIncidents",
		"incident_id": id,
	})

	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("service: threshold must be in [0, 1]: %w", models.ErrValidation)
	}
	if _, err := s.GetIncident(ctx, id); err != nil {
		return nil, err
	}

	incidents, err := s.repo.List(ctx, models.IncidentFilter{
		MinSimilarity: &threshold,
		ExcludeID:     &id,
		Order:         models.OrderSimilarity,
		Page:          1,
		PageSize:      maxQueryResults,
	})
	if err != nil {
		log.WithError(err).Error("Failed to list similar incidents")
		return nil, fmt.Errorf("service: could not list similar incidents: %w", err)
	}
	return incidents, nil
}

// Statistics - сводка по инцидентам, созданным за последние window
func (s *incidentService) Statistics(ctx context.Context, window time.Duration) (*models.IncidentStats, error) {
	if window <= 0 || window > maxStatsWindow {
		return nil, fmt.Errorf("service: statistics window must be in (0, %s]: %w", maxStatsWindow, models.ErrValidation)
	}
	since := s.now().Add(-window)
	stats, err := s.repo.Statistics(ctx, since)
	if err != nil {
		s.logger.WithError(err).Error("Failed to aggregate incident statistics")
		return nil, fmt.Errorf("service: could not aggregate incidents: %w", err)
	}
	return stats, nil
}

// UpdateTrustScore - ручная правка доверия автора администратором
func (s *incidentService) UpdateTrustScore(ctx context.Context, reporterID uuid.UUID, score float64, actor models.Actor) (*models.Reporter, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateTrustScore",
		"reporter_id": reporterID,
		"actor_id":    actor.ID,
	})

	if !actor.IsAdmin() {
		return nil, fmt.Errorf("service: trust score correction requires admin: %w", models.ErrForbidden)
	}
	if math.IsNaN(score) || score < models.MinTrustScore || score > models.MaxTrustScore {
		return nil, fmt.Errorf("service: trust score must be in [%.0f, %.0f]: %w",
			models.MinTrustScore, models.MaxTrustScore, models.ErrValidation)
	}

	old, err := s.reporters.SetTrustScore(ctx, reporterID, score)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Reporter not found")
		} else {
			log.WithError(err).Error("Failed to set reporter trust score")
		}
		return nil, fmt.Errorf("service: could not update trust score: %w", err)
	}

	s.recordAudit(ctx, log, &models.AuditLogEntry{
		ActionType:  models.ActionTrustScoreUpdated,
		ActorID:     actor.ID,
		ActorRole:   actor.Role,
		TargetType:  models.TargetUser,
		TargetID:    reporterID.String(),
		Description: fmt.Sprintf("Trust score changed from %.1f to %.1f", old, score),
		Status:      models.AuditSuccess,
		Metadata: map[string]any{
			"oldValue": old,
			"newValue": score,
		},
	})

	reporter, err := s.reporters.GetByID(ctx, reporterID)
	if err != nil {
		log.WithError(err).Error("Failed to reload reporter after trust update")
		return nil, fmt.Errorf("service: could not reload reporter: %w", err)
	}
	log.Info("Reporter trust score updated")
	return reporter, nil
}
