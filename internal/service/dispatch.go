package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/AdwikaVishal/Disaster-Management/internal/dispatch"
	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Время прибытия, когда станции нужной службы нет в справочнике
const noStationETAMinutes = 15

// autoDispatch направляет службы параллельно; сбой одной не мешает остальным
func (s *incidentService) autoDispatch(ctx context.Context, incident *models.Incident) []*models.DispatchRecord {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "autoDispatch",
		"incident_id": incident.ID,
	})

	rec := s.scorer.Recommend(ctx, incident, dispatch.QuestionsFromIncident(incident))
	services := dispatch.Merge(dispatch.BaseServices(incident.Type), rec)
	log.WithFields(logrus.Fields{
		"services":      services,
		"urgency":       rec.Urgency,
		"used_fallback": rec.UsedFallback,
	}).Info("Dispatching responders")

	results := make([]*models.DispatchRecord, len(services))
	var wg sync.WaitGroup
	for i, svc := range services {
		wg.Add(1)
		go func(i int, svc models.ResponseType) {
			defer wg.Done()
			record, err := s.dispatchOne(ctx, incident, svc)
			if err != nil {
				log.WithError(err).WithField("response_type", svc).Error("Failed to dispatch service")
				return
			}
			results[i] = record
		}(i, svc)
	}
	wg.Wait()

	records := make([]*models.DispatchRecord, 0, len(results))
	for _, r := range results {
		if r != nil {
			records = append(records, r)
		}
	}

	if len(records) > 0 {
		s.notify(ctx, models.IncidentEvent{
			Type:       models.EventIncidentDispatched,
			Incident:   incident,
			Dispatches: records,
			Timestamp:  s.now(),
		})
	}
	log.WithField("dispatched", len(records)).Info("Dispatch finished")
	return records
}

func (s *incidentService) dispatchOne(ctx context.Context, incident *models.Incident, svc models.ResponseType) (*models.DispatchRecord, error) {
	distance, eta := s.estimate(incident, svc)
	record := &models.DispatchRecord{
		ID:                      uuid.New(),
		IncidentID:              incident.ID,
		ResponseType:            svc,
		Status:                  models.DispatchDispatched,
		ResourceID:              fmt.Sprintf("%s-%s", svc, uuid.New()),
		EstimatedArrivalMinutes: eta,
		DistanceKm:              distance,
		DispatchedAt:            s.now(),
	}
	if err := s.dispatches.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("service: could not store dispatch record: %w", err)
	}

	s.recordAudit(ctx, s.logger.WithField("incident_id", incident.ID), &models.AuditLogEntry{
		ActionType:  models.ActionResourceAssigned,
		ActorID:     models.SystemActor.ID,
		ActorRole:   models.SystemActor.Role,
		TargetType:  models.TargetIncident,
		TargetID:    incident.ID.String(),
		Description: fmt.Sprintf("%s dispatched, ETA %d min", svc, eta),
		Status:      models.AuditSuccess,
		Metadata: map[string]any{
			models.MetadataResourceID: record.ResourceID,
			"responseType":            string(svc),
			"etaMinutes":              eta,
			"distanceKm":              distance,
		},
	})
	return record, nil
}

// estimate возвращает расстояние до ближайшей станции службы и время прибытия
func (s *incidentService) estimate(incident *models.Incident, svc models.ResponseType) (float64, int) {
	distance, ok := s.geo.DistanceToService(incident.Latitude, incident.Longitude, svc)
	if !ok {
		return 0, noStationETAMinutes
	}
	return distance, dispatch.EstimateArrival(distance, svc)
}

// ListDispatches - выезды по инциденту
func (s *incidentService) ListDispatches(ctx context.Context, id uuid.UUID) ([]*models.DispatchRecord, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	records, err := s.dispatches.ListByIncident(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("incident_id", id).Error("Failed to list dispatches")
		return nil, fmt.Errorf("service: could not list dispatches: %w", err)
	}
	return records, nil
}

// PlanRecommendation строит план выезда по ответам на вопросы, ничего не создавая
func (s *incidentService) PlanRecommendation(ctx context.Context, id uuid.UUID, q dispatch.GuidedQuestions) (*dispatch.Plan, error) {
	incident, err := s.GetIncident(ctx, id)
	if err != nil {
		return nil, err
	}

	rec := s.scorer.Recommend(ctx, incident, q)
	services := dispatch.Merge(dispatch.BaseServices(incident.Type), rec)

	plan := &dispatch.Plan{Recommendation: rec, Services: make([]dispatch.PlannedService, 0, len(services))}
	for _, svc := range services {
		distance, eta := s.estimate(incident, svc)
		plan.Services = append(plan.Services, dispatch.PlannedService{
			ResponseType:            svc,
			DistanceKm:              distance,
			EstimatedArrivalMinutes: eta,
		})
	}
	return plan, nil
}
