package middleware

import (
	"github.com/gin-gonic/gin"
)

// NoStore forbids caching of the response. Eligibility verdicts must always
// reflect the current records.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Header("Pragma", "no-cache")
		c.Next()
	}
}
