// utils/respond.go
package utils

import (
	"salonstore-backend/models"

	"github.com/gin-gonic/gin"
)

// RespondWithError answers a request with a plain error message.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// RespondWithAlert answers a request with the storefront alert tuple the
// client renders as a dialog.
func RespondWithAlert(c *gin.Context, code int, n models.Notification) {
	c.AbortWithStatusJSON(code, gin.H{"notification": n})
}
