package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const AccessKeyHeader = "X-Access-Key"

// AccessKey gates a route group behind a shared key sent in X-Access-Key.
// An empty expected key disables the check; the generate endpoint is public
// unless an operator opts in.
func AccessKey(expect string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expect == "" {
			c.Next()
			return
		}
		if !constantTimeEqual(c.GetHeader(AccessKeyHeader), expect) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid access key"})
			return
		}
		c.Next()
	}
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
