package v1

import (
	"errors"
	"net/http"

	"github.com/AdwikaVishal/Disaster-Management/internal/config"
	"github.com/AdwikaVishal/Disaster-Management/internal/dispatch"
	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/AdwikaVishal/Disaster-Management/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	auditService    AuditService
	configService   ConfigService
	ledger          LedgerHealthChecker
	realtime        RealtimeServer
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	auditService AuditService,
	configService ConfigService,
	ledger LedgerHealthChecker,
	realtime RealtimeServer,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService: incidentService,
		auditService:    auditService,
		configService:   configService,
		ledger:          ledger,
		realtime:        realtime,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// writeError переводит доменную ошибку в HTTP статус
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		log.WithError(err).Warn("Request rejected by validation")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrForbidden):
		log.WithError(err).Warn("Actor is not allowed to perform the operation")
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidTransition):
		log.WithError(err).Warn("Status transition rejected")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindJSON разбирает и валидирует тело запроса; при ошибке ответ уже записан
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseIncidentID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Report a new incident
// @Description Create an incident, score it and dispatch responders when it is critical. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} CreateIncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")
	if !h.bindJSON(c, log, &input) {
		return
	}

	model := DTOToIncidentModel(input)
	dispatches, err := h.incidentService.CreateIncident(c.Request.Context(), model, actorFromRequest(c))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	if dispatches == nil {
		dispatches = []*models.DispatchRecord{}
	}
	c.JSON(http.StatusCreated, CreateIncidentResponse{
		Incident:   ModelToIncidentResponse(model),
		Dispatches: dispatches,
	})
}

// @Summary Get a list of incidents
// @Description Get a paginated list of incidents, newest first. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Param status query string false "Status filter"
// @Param severity query string false "Severity filter"
// @Param type query string false "Type filter"
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), incidentFilterFromQuery(c))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, ok := parseIncidentID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Change incident status
// @Description Move an incident through its lifecycle. Admin only. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param X-Actor-ID header string false "Acting user"
// @Param X-Actor-Role header string false "Acting user role"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 403 {object} map[string]string "Actor is not an admin"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/status [patch]
func (h *Handler) updateStatus(c *gin.Context) {
	id, ok := parseIncidentID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateStatus").WithField("id", id)

	var input UpdateStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	incident, err := h.incidentService.SetStatus(c.Request.Context(), id, models.Status(input.Status), actorFromRequest(c))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Record a community verification
// @Description Upvote, flag or verify an incident; may move it to VERIFIED or REJECTED by consensus. Requires API key.
// @Tags Verifications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param verification body VerificationRequest true "Verification"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/verifications [post]
func (h *Handler) createVerification(c *gin.Context) {
	id, ok := parseIncidentID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "createVerification").WithField("id", id)

	var input VerificationRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	incident, err := h.incidentService.RecordVerification(c.Request.Context(), DTOToVerificationModel(id, input))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary List incident verifications
// @Tags Verifications
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {array} models.Verification
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/verifications [get]
func (h *Handler) listVerifications(c *gin.Context) {
	id, ok := parseIncidentID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listVerifications").WithField("id", id)

	verifications, err := h.incidentService.ListVerifications(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, verifications)
}

// @Summary List incident dispatches
// @Tags Dispatch
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {array} models.DispatchRecord
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/dispatches [get]
func (h *Handler) listDispatches(c *gin.Context) {
	id, ok := parseIncidentID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listDispatches").WithField("id", id)

	records, err := h.incidentService.ListDispatches(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// @Summary Preview a dispatch plan
// @Description Recommend responders for the guided answers without dispatching anyone. Requires API key.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param questions body dispatch.GuidedQuestions true "Guided answers"
// @Success 200 {object} dispatch.Plan
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/recommendations [post]
func (h *Handler) recommend(c *gin.Context) {
	id, ok := parseIncidentID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "recommend").WithField("id", id)

	var q dispatch.GuidedQuestions
	if err := c.ShouldBindJSON(&q); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	plan, err := h.incidentService.PlanRecommendation(c.Request.Context(), id, q)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// @Summary Incident audit trail
// @Tags Audit
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {array} models.AuditLogEntry
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Router /incidents/{id}/audit [get]
func (h *Handler) incidentTrail(c *gin.Context) {
	id, ok := parseIncidentID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "incidentTrail").WithField("id", id)

	entries, err := h.auditService.Trail(c.Request.Context(), models.TargetIncident, id.String())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// @Summary Live incident feed
// @Description Websocket stream of incident events.
// @Tags Realtime
// @Router /ws/incidents [get]
func (h *Handler) incidentFeed(c *gin.Context) {
	h.realtime.ServeWS(c.Writer, c.Request)
}

// @Summary Ledger gateway status
// @Tags System
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ledger.Health
// @Router /ledger/health [get]
func (h *Handler) ledgerHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledger.Health(c.Request.Context()))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
