package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const ctxUserIDKey = "user_id"

// RequireUser resolves the caller identity from the X-User-ID header set by
// the upstream gateway. Authentication itself happens before traffic reaches
// this service.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		if raw == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "X-User-ID header required",
			})
			c.Abort()
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid X-User-ID header",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
