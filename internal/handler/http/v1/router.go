package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	secured := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		secured.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	incidents := secured.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/nearby", h.nearbyIncidents)
		incidents.GET("/critical", h.criticalIncidents)
		incidents.GET("/high-risk", h.highRiskIncidents)
		incidents.GET("/statistics", h.incidentStatistics)
		incidents.GET("/analytics", h.incidentAnalytics)
		incidents.GET("/:id", h.getIncident)
		incidents.GET("/:id/similar", h.similarIncidents)
		incidents.PATCH("/:id/status", h.updateStatus)
		incidents.POST("/:id/verifications", h.createVerification)
		incidents.GET("/:id/verifications", h.listVerifications)
		incidents.GET("/:id/dispatches", h.listDispatches)
		incidents.POST("/:id/recommendations", h.recommend)
		incidents.GET("/:id/audit", h.incidentTrail)
	}

	audit := secured.Group("/audit")
	{
		audit.GET("", h.listAudit)
		audit.GET("/stats", h.auditStats)
		audit.GET("/pending", h.pendingAudit)
		audit.GET("/export", h.exportAudit)
		audit.GET("/tx/:hash", h.getAuditByTx)
		audit.GET("/:id", h.getAudit)
		audit.POST("/:id/retry", h.retryAudit)
	}

	cfg := secured.Group("/config")
	{
		cfg.GET("", h.listConfig)
		cfg.POST("/initialize", h.initializeConfig)
		cfg.GET("/:key", h.getConfig)
		cfg.PUT("/:key", h.setConfig)
	}

	secured.PUT("/users/:id/trust-score", h.updateTrustScore)
	secured.GET("/ledger/health", h.ledgerHealth)
	secured.GET("/ws/incidents", h.incidentFeed)
}
