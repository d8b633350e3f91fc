package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Пороги консенсуса сообщества
const (
	rejectFlagThreshold   = 3
	rejectFraudThreshold  = 0.7
	verifyUpvoteThreshold = 3
	verifyMaxFlags        = 1
	verifyFraudCeiling    = 0.3

	verifiedTrustBonus = 2.0
	flaggedTrustFine   = -5.0

	minConfidence = 1
	maxConfidence = 10
)

// canTransition - таблица ручных переходов
func canTransition(from, to models.Status) bool {
	if from == to || from.Terminal() {
		return false
	}
	switch from {
	case models.StatusNew:
		return true
	case models.StatusVerified:
		switch to {
		case models.StatusInProgress, models.StatusResolved, models.StatusRejected, models.StatusDuplicate:
			return true
		}
	case models.StatusInProgress:
		return to == models.StatusResolved
	}
	return false
}

// consensus решает судьбу нового инцидента по откликам.
// Отклонение проверяется первым и побеждает при одновременном выполнении условий.
func consensus(i *models.Incident) (models.Status, bool) {
	if i.Status != models.StatusNew {
		return "", false
	}
	fraud := i.FraudProbability
	if i.Flags >= rejectFlagThreshold || (fraud != nil && *fraud > rejectFraudThreshold) {
		return models.StatusRejected, true
	}
	if i.Upvotes >= verifyUpvoteThreshold && i.Flags <= verifyMaxFlags && (fraud == nil || *fraud < verifyFraudCeiling) {
		return models.StatusVerified, true
	}
	return "", false
}

// reputationFor - изменение репутации автора при переходе
func reputationFor(from, to models.Status, byConsensus bool) (models.ReputationChange, bool) {
	switch {
	case from == models.StatusNew && to == models.StatusVerified:
		return models.ReputationChange{VerifiedReports: 1, TrustDelta: verifiedTrustBonus}, true
	case byConsensus && to == models.StatusRejected:
		return models.ReputationChange{FlaggedReports: 1, TrustDelta: flaggedTrustFine}, true
	}
	return models.ReputationChange{}, false
}

// SetStatus - ручной перевод инцидента администратором
func (s *incidentService) SetStatus(ctx context.Context, id uuid.UUID, status models.Status, actor models.Actor) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "SetStatus",
		"incident_id": id,
		"status":      status,
	})
	log.Info("Attempting to change incident status")

	if !actor.IsAdmin() {
		return nil, fmt.Errorf("service: status change requires admin: %w", models.ErrForbidden)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("service: unknown status %q: %w", status, models.ErrValidation)
	}

	from, err := s.repo.TransitionStatus(ctx, id, status, func(from models.Status) error {
		if !canTransition(from, status) {
			return fmt.Errorf("%s -> %s: %w", from, status, models.ErrInvalidTransition)
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Failed to change incident status")
		return nil, fmt.Errorf("service: could not change status: %w", err)
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to reload incident after status change")
		return nil, fmt.Errorf("service: could not reload incident: %w", err)
	}

	s.afterTransition(ctx, log, incident, from, status, actor, false)

	log.WithField("previous_status", from).Info("Incident status changed successfully")
	return incident, nil
}

// RecordVerification добавляет отклик, пересчитывает оценки и применяет консенсус
func (s *incidentService) RecordVerification(ctx context.Context, v *models.Verification) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "RecordVerification",
		"incident_id": v.IncidentID,
		"type":        v.Type,
	})
	log.Info("Attempting to record verification")

	if err := validateVerification(v); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, v.IncidentID); err != nil {
		log.WithError(err).Warn("Verification for unknown incident")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	v.ID = uuid.New()
	v.CreatedAt = s.now()
	if err := s.verifications.Create(ctx, v); err != nil {
		log.WithError(err).Error("Failed to store verification")
		return nil, fmt.Errorf("service: could not store verification: %w", err)
	}

	incident, err := s.repo.IncrementCounters(ctx, v.IncidentID, v.Type.Delta())
	if err != nil {
		log.WithError(err).Error("Failed to increment incident counters")
		return nil, fmt.Errorf("service: could not update counters: %w", err)
	}

	role := models.RoleUser
	if v.Type == models.VerificationAdmin {
		role = models.RoleAdmin
	}
	s.recordAudit(ctx, log, &models.AuditLogEntry{
		ActionType:  models.ActionVerificationRecorded,
		ActorID:     v.VerifierID.String(),
		ActorRole:   role,
		TargetType:  models.TargetIncident,
		TargetID:    incident.ID.String(),
		Description: fmt.Sprintf("Verification %s recorded", v.Type),
		Status:      models.AuditSuccess,
		Metadata: map[string]any{
			"verificationId":   v.ID.String(),
			"verificationType": string(v.Type),
			"isAccurate":       v.IsAccurate,
			"confidenceLevel":  v.ConfidenceLevel,
		},
	})

	reporter := s.loadReporter(ctx, log, incident.ReporterID)
	scores := s.scoreFraudAndRisk(ctx, incident, reporter)
	if err := s.repo.UpdateScores(ctx, incident.ID, scores); err != nil {
		log.WithError(err).Error("Failed to persist re-scored values")
		return nil, fmt.Errorf("service: could not update scores: %w", err)
	}
	scores.Apply(incident)

	if to, ok := consensus(incident); ok {
		s.applyConsensus(ctx, log, incident, to)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, incident.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Verification recorded successfully")
	return incident, nil
}

// applyConsensus переводит инцидент только если он все еще NEW
func (s *incidentService) applyConsensus(ctx context.Context, log *logrus.Entry, incident *models.Incident, to models.Status) {
	from, err := s.repo.TransitionStatus(ctx, incident.ID, to, func(from models.Status) error {
		if from != models.StatusNew {
			return fmt.Errorf("consensus on %s: %w", from, models.ErrInvalidTransition)
		}
		return nil
	})
	if errors.Is(err, models.ErrInvalidTransition) {
		log.WithField("target_status", to).Info("Incident left NEW concurrently, consensus skipped")
		return
	}
	if err != nil {
		log.WithError(err).Error("Failed to apply consensus transition")
		return
	}

	incident.Status = to
	incident.UpdatedAt = s.now()
	s.afterTransition(ctx, log, incident, from, to, models.SystemActor, true)
	log.WithField("status", to).Info("Consensus transition applied")
}

// afterTransition - побочные эффекты перехода: репутация, аудит, кеш, уведомления
func (s *incidentService) afterTransition(ctx context.Context, log *logrus.Entry, incident *models.Incident, from, to models.Status, actor models.Actor, byConsensus bool) {
	if change, ok := reputationFor(from, to, byConsensus); ok && incident.ReporterID != nil {
		if err := s.reporters.AdjustReputation(ctx, *incident.ReporterID, change); err != nil {
			log.WithError(err).Error("Failed to adjust reporter reputation")
		}
	}

	description := fmt.Sprintf("Incident status changed from %s to %s", from, to)
	if byConsensus {
		description = fmt.Sprintf("Incident %s by community consensus", to)
	}
	s.recordAudit(ctx, log, &models.AuditLogEntry{
		ActionType:  models.ActionForStatus(to),
		ActorID:     actor.ID,
		ActorRole:   actor.Role,
		TargetType:  models.TargetIncident,
		TargetID:    incident.ID.String(),
		Description: description,
		Status:      models.AuditSuccess,
		Metadata: map[string]any{
			"previousStatus": string(from),
			"newStatus":      string(to),
		},
	})

	if err := s.repo.InvalidateIncidentCache(ctx, incident.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	s.notify(ctx, models.IncidentEvent{
		Type:           models.EventIncidentStatusChanged,
		Incident:       incident,
		PreviousStatus: from,
		Timestamp:      s.now(),
	})
}

// ListVerifications - отклики по инциденту в порядке поступления
func (s *incidentService) ListVerifications(ctx context.Context, id uuid.UUID) ([]*models.Verification, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	list, err := s.verifications.ListByIncident(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("incident_id", id).Error("Failed to list verifications")
		return nil, fmt.Errorf("service: could not list verifications: %w", err)
	}
	return list, nil
}

func validateVerification(v *models.Verification) error {
	switch {
	case v.IncidentID == uuid.Nil:
		return fmt.Errorf("service: incident id is required: %w", models.ErrValidation)
	case v.VerifierID == uuid.Nil:
		return fmt.Errorf("service: verifier id is required: %w", models.ErrValidation)
	case !v.Type.Valid():
		return fmt.Errorf("service: unknown verification type %q: %w", v.Type, models.ErrValidation)
	case v.ConfidenceLevel < minConfidence || v.ConfidenceLevel > maxConfidence:
		return fmt.Errorf("service: confidence level must be within %d..%d: %w", minConfidence, maxConfidence, models.ErrValidation)
	}
	return nil
}
