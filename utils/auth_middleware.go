package utils

import (
	"net/http"
	"strings"

	"s2inventory/models"
	"s2inventory/pkg/logger"
	"s2inventory/services/auth"

	"github.com/gin-gonic/gin"
)

// ContextIdentite is the gin context key carrying the authenticated identity.
const ContextIdentite = "identite"

// AuthMiddleware validates the bearer token of each request and stores the
// identity it carries in the context. Requests without a valid token are
// rejected with 401.
func AuthMiddleware(manager *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		entete := c.GetHeader("Authorization")
		const prefixe = "Bearer "
		if !strings.HasPrefix(entete, prefixe) {
			logger.Warnf("Requête sans jeton depuis %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "jeton d'authentification requis",
			})
			return
		}
		identite, err := manager.Parse(strings.TrimPrefix(entete, prefixe))
		if err != nil {
			logger.Warnf("Jeton refusé depuis %s: %v", c.ClientIP(), err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.Set(ContextIdentite, identite)
		c.Next()
	}
}

// CurrentUser returns the identity stored by AuthMiddleware, nil when the
// request went through an unauthenticated route.
func CurrentUser(c *gin.Context) *models.UserIdentity {
	v, ok := c.Get(ContextIdentite)
	if !ok {
		return nil
	}
	identite, _ := v.(*models.UserIdentity)
	return identite
}
