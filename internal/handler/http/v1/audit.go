package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultPendingMinAge = 5 * time.Minute
	defaultPendingLimit  = 100
)

// @Summary Search the audit log
// @Tags Audit
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Param actionType query string false "Action type"
// @Param actorId query string false "Actor"
// @Param status query string false "Audit status"
// @Param ledgerStatus query string false "Ledger status"
// @Param from query string false "RFC3339 lower bound"
// @Param to query string false "RFC3339 upper bound"
// @Success 200 {object} AuditListResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /audit [get]
func (h *Handler) listAudit(c *gin.Context) {
	log := h.logger.WithField("method", "listAudit")

	filter, err := auditFilterFromQuery(c)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	items, total, err := h.auditService.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, AuditListResponse{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
}

// @Summary Get audit entry
// @Tags Audit
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Audit entry ID"
// @Success 200 {object} models.AuditLogEntry
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /audit/{id} [get]
func (h *Handler) getAudit(c *gin.Context) {
	id, ok := parseAuditID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getAudit").WithField("id", id)

	entry, err := h.auditService.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// @Summary Find audit entry by ledger transaction
// @Tags Audit
// @Produce json
// @Security ApiKeyAuth
// @Param hash path string true "Transaction hash"
// @Success 200 {object} models.AuditLogEntry
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /audit/tx/{hash} [get]
func (h *Handler) getAuditByTx(c *gin.Context) {
	hash := c.Param("hash")
	log := h.logger.WithField("method", "getAuditByTx").WithField("tx_hash", hash)

	entry, err := h.auditService.GetByTxHash(c.Request.Context(), hash)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// @Summary Audit statistics
// @Tags Audit
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.AuditStats
// @Router /audit/stats [get]
func (h *Handler) auditStats(c *gin.Context) {
	log := h.logger.WithField("method", "auditStats")

	stats, err := h.auditService.Stats(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Entries waiting for ledger confirmation
// @Tags Audit
// @Produce json
// @Security ApiKeyAuth
// @Param minAgeMinutes query int false "Minimum age in minutes" default(5)
// @Param limit query int false "Maximum entries" default(100)
// @Success 200 {array} models.AuditLogEntry
// @Router /audit/pending [get]
func (h *Handler) pendingAudit(c *gin.Context) {
	log := h.logger.WithField("method", "pendingAudit")

	minAge := defaultPendingMinAge
	if raw := c.Query("minAgeMinutes"); raw != "" {
		if m, err := strconv.Atoi(raw); err == nil && m >= 0 {
			minAge = time.Duration(m) * time.Minute
		}
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPendingLimit)))
	if err != nil || limit <= 0 {
		limit = defaultPendingLimit
	}

	entries, err := h.auditService.ListPending(c.Request.Context(), minAge, limit)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// @Summary Retry ledger confirmation
// @Tags Audit
// @Security ApiKeyAuth
// @Param id path int true "Audit entry ID"
// @Success 202 "Accepted"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is not failed"
// @Router /audit/{id}/retry [post]
func (h *Handler) retryAudit(c *gin.Context) {
	id, ok := parseAuditID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "retryAudit").WithField("id", id)

	if err := h.auditService.Retry(c.Request.Context(), id); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Export the audit log as CSV
// @Tags Audit
// @Produce text/csv
// @Security ApiKeyAuth
// @Success 200 {string} string "CSV"
// @Router /audit/export [get]
func (h *Handler) exportAudit(c *gin.Context) {
	log := h.logger.WithField("method", "exportAudit")

	filter, err := auditFilterFromQuery(c)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=audit-%s.csv", time.Now().UTC().Format("20060102")))
	c.Status(http.StatusOK)
	// Заголовки уже ушли, ошибку можно только залогировать
	if err := h.auditService.ExportCSV(c.Request.Context(), c.Writer, filter); err != nil {
		log.WithError(err).Error("Failed to export audit log")
	}
}

func parseAuditID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid audit entry ID"})
		return 0, false
	}
	return id, true
}
