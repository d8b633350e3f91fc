package v1

import (
	"net/http"
	"strings"

	"github.com/AdwikaVishal/Disaster-Management/internal/config"
	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	actorIDHeader   = "X-Actor-ID"
	actorRoleHeader = "X-Actor-Role"
	anonymousActor  = "anonymous"
)

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.APIKeys {
			if key == apiKey {
				isValid = true
				break
			}
		}

		if !isValid {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// actorFromRequest - актор, уже аутентифицированный шлюзом перед сервисом
func actorFromRequest(c *gin.Context) models.Actor {
	id := strings.TrimSpace(c.GetHeader(actorIDHeader))
	if id == "" {
		id = anonymousActor
	}
	role := strings.ToUpper(strings.TrimSpace(c.GetHeader(actorRoleHeader)))
	if role == "" {
		role = models.RoleUser
	}
	return models.Actor{ID: id, Role: role}
}
