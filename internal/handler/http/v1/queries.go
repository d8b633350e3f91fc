package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultNearbyRadiusKm   = 10.0
	defaultMinRiskScore     = 70.0
	defaultSimilarThreshold = 0.7
	defaultStatisticsDays   = 30
	defaultAnalyticsHours   = 24
)

// queryFloat читает число из строки запроса; пустое значение дает def
func queryFloat(c *gin.Context, name string, def float64) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, models.ErrValidation)
	}
	return v, nil
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, models.ErrValidation)
	}
	return v, nil
}

// @Summary Active incidents around a point
// @Description Incidents that still need a response within radiusKm, nearest first. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radiusKm query number false "Radius in km" default(10)
// @Success 200 {object} NearbyResponse
// @Failure 400 {object} map[string]string "Invalid coordinates or radius"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/nearby [get]
func (h *Handler) nearbyIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyIncidents")

	if c.Query("lat") == "" || c.Query("lng") == "" {
		h.writeError(c, log, fmt.Errorf("lat and lng are required: %w", models.ErrValidation))
		return
	}
	lat, err := queryFloat(c, "lat", 0)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	lng, err := queryFloat(c, "lng", 0)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	radius, err := queryFloat(c, "radiusKm", defaultNearbyRadiusKm)
	if err != nil {
		h.writeError(c, log, err)
		return
	}

	nearby, err := h.incidentService.NearbyIncidents(c.Request.Context(), lat, lng, radius)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	resp := NearbyResponse{
		Latitude:  lat,
		Longitude: lng,
		RadiusKm:  radius,
		Incidents: make([]*NearbyIncidentResponse, len(nearby)),
	}
	for i, n := range nearby {
		resp.Incidents[i] = &NearbyIncidentResponse{
			IncidentResponse: ModelToIncidentResponse(n.Incident),
			DistanceKm:       n.DistanceKm,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Critical active incidents
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} IncidentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/critical [get]
func (h *Handler) criticalIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "criticalIncidents")

	incidents, err := h.incidentService.CriticalIncidents(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary High-risk incidents
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param minRiskScore query number false "Lowest risk score" default(70)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid threshold"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/high-risk [get]
func (h *Handler) highRiskIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "highRiskIncidents")

	minRisk, err := queryFloat(c, "minRiskScore", defaultMinRiskScore)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	incidents, err := h.incidentService.HighRiskIncidents(c.Request.Context(), minRisk)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Incidents similar to the given one
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param threshold query number false "Lowest similarity score" default(0.7)
// @Success 200 {object} SimilarIncidentsResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or threshold"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/similar [get]
func (h *Handler) similarIncidents(c *gin.Context) {
	id, ok := parseIncidentID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "similarIncidents").WithField("id", id)

	threshold, err := queryFloat(c, "threshold", defaultSimilarThreshold)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	incidents, err := h.incidentService.SimilarIncidents(c.Request.Context(), id, threshold)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SimilarIncidentsResponse{
		Threshold: threshold,
		Incidents: ModelsToIncidentResponses(incidents),
	})
}

// @Summary Incident statistics over days
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param days query int false "Window in days" default(30)
// @Success 200 {object} models.IncidentStats
// @Failure 400 {object} map[string]string "Invalid window"
// @Router /incidents/statistics [get]
func (h *Handler) incidentStatistics(c *gin.Context) {
	log := h.logger.WithField("method", "incidentStatistics")

	days, err := queryInt(c, "days", defaultStatisticsDays)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	h.writeStatistics(c, time.Duration(days)*24*time.Hour)
}

// @Summary Incident analytics over hours
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param hours query int false "Window in hours" default(24)
// @Success 200 {object} models.IncidentStats
// @Failure 400 {object} map[string]string "Invalid window"
// @Router /incidents/analytics [get]
func (h *Handler) incidentAnalytics(c *gin.Context) {
	log := h.logger.WithField("method", "incidentAnalytics")

	hours, err := queryInt(c, "hours", defaultAnalyticsHours)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	h.writeStatistics(c, time.Duration(hours)*time.Hour)
}

func (h *Handler) writeStatistics(c *gin.Context, window time.Duration) {
	log := h.logger.WithField("method", "writeStatistics").WithField("window", window.String())

	stats, err := h.incidentService.Statistics(c.Request.Context(), window)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Correct a reporter trust score
// @Description Set the trust score of a reporter. Admin only. Requires API key.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Reporter ID"
// @Param X-Actor-ID header string false "Acting user"
// @Param X-Actor-Role header string false "Acting user role"
// @Param trust body TrustScoreRequest true "New trust score"
// @Success 200 {object} models.Reporter
// @Failure 400 {object} map[string]string "Invalid reporter ID or request body"
// @Failure 403 {object} map[string]string "Actor is not an admin"
// @Failure 404 {object} map[string]string "Reporter not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id}/trust-score [put]
func (h *Handler) updateTrustScore(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reporter ID"})
		return
	}
	log := h.logger.WithField("method", "updateTrustScore").WithField("reporter_id", id)

	var input TrustScoreRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	reporter, err := h.incidentService.UpdateTrustScore(c.Request.Context(), id, *input.TrustScore, actorFromRequest(c))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, reporter)
}
