package middleware

import (
	"github.com/gin-gonic/gin"

	"laundryadmin/internal/pkg/navigation"
)

// Navigation gives every request a recorder for redirects and notifications
// raised by the services.
func Navigation() gin.HandlerFunc {
	return func(c *gin.Context) {
		rec := navigation.NewRecorder()
		c.Request = c.Request.WithContext(navigation.With(c.Request.Context(), rec))
		c.Next()
	}
}
