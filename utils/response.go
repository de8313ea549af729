package utils

import (
	"github.com/gin-gonic/gin"

	"elegant-hotel/apperrors"
)

func JSONError(c *gin.Context, code int, message string, details ...string) {
	body := gin.H{"error": message}
	if len(details) > 0 {
		body["details"] = details
	}
	c.JSON(code, body)
}

// JSONDomainError maps a domain error to its HTTP status and error body.
func JSONDomainError(c *gin.Context, err error) {
	httpErr := apperrors.MapErrorToHTTP(err)
	c.JSON(httpErr.StatusCode, gin.H{"error": httpErr.Message})
}
