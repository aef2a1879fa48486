package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
)

const userKey = "currentUser"

// authRequired gates every protected route. The rejection body always uses
// the fixed messages of the access service, never verifier internals.
func (s *HTTPServer) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, accessErr := s.access.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if accessErr != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": accessErr.Message})
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// currentUser returns the user stashed by authRequired. It is only valid
// inside handlers registered behind the middleware.
func currentUser(c *gin.Context) *models.User {
	v, _ := c.Get(userKey)
	u, _ := v.(*models.User)
	return u
}
