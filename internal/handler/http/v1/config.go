package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List system flags
// @Tags Config
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.ConfigFlag
// @Router /config [get]
func (h *Handler) listConfig(c *gin.Context) {
	log := h.logger.WithField("method", "listConfig")

	flags, err := h.configService.All(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, flags)
}

// @Summary Get system flag
// @Tags Config
// @Produce json
// @Security ApiKeyAuth
// @Param key path string true "Flag key"
// @Success 200 {object} models.ConfigFlag
// @Failure 404 {object} map[string]string "Unknown flag"
// @Router /config/{key} [get]
func (h *Handler) getConfig(c *gin.Context) {
	key := c.Param("key")
	log := h.logger.WithField("method", "getConfig").WithField("key", key)

	flag, err := h.configService.Get(c.Request.Context(), key)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, flag)
}

// @Summary Toggle system flag
// @Tags Config
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param key path string true "Flag key"
// @Param value body SetConfigRequest true "New value"
// @Success 200 {object} models.ConfigFlag
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 403 {object} map[string]string "Actor is not an admin"
// @Router /config/{key} [put]
func (h *Handler) setConfig(c *gin.Context) {
	key := c.Param("key")
	log := h.logger.WithField("method", "setConfig").WithField("key", key)

	var input SetConfigRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	flag, err := h.configService.Set(c.Request.Context(), key, *input.Value, actorFromRequest(c))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, flag)
}

// @Summary Create missing default flags
// @Tags Config
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} InitializeConfigResponse
// @Router /config/initialize [post]
func (h *Handler) initializeConfig(c *gin.Context) {
	log := h.logger.WithField("method", "initializeConfig")

	created, err := h.configService.InitializeDefaults(c.Request.Context(), actorFromRequest(c))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	if created == nil {
		created = []string{}
	}
	c.JSON(http.StatusOK, InitializeConfigResponse{Created: created})
}
