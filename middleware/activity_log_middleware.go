package middleware

import (
	"encoding/json"
	"log"
	"time"

	"github.com/Verdant-Commerce/verdant-storefront-backend/config"
	"github.com/gin-gonic/gin"
)

const activityLogKey = "activity:admin"

// activityEntry is one recorded admin action
type activityEntry struct {
	AdminEmail string    `json:"admin_email"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	Status     int       `json:"status"`
	At         time.Time `json:"at"`
}

// ActivityLoggingMiddleware records admin actions to a capped Redis list.
// Must be used AFTER AuthMiddleware (which sets userEmail). GET requests
// are skipped — only mutations are worth an audit trail.
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" {
			c.Next()
			return
		}

		email, exists := GetUserEmailFromContext(c)
		if !exists {
			log.Printf("[activity-logging] warning: user info not in context")
			c.Next()
			return
		}

		// Execute the handler, then log the outcome
		c.Next()

		entry := activityEntry{
			AdminEmail: email,
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			Status:     c.Writer.Status(),
			At:         time.Now(),
		}

		payload, err := json.Marshal(entry)
		if err != nil {
			log.Printf("[activity-logging] failed to encode entry: %v", err)
			return
		}

		pipe := config.RedisClient.Pipeline()
		pipe.LPush(config.Ctx, activityLogKey, payload)
		pipe.LTrim(config.Ctx, activityLogKey, 0, 999)
		if _, err := pipe.Exec(config.Ctx); err != nil {
			// Logging failure never affects the response
			log.Printf("[activity-logging] failed to record entry: %v", err)
		}
	}
}
