package middleware

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

// ActorHeader optionally names the coworker performing the request.
const ActorHeader = "X-User-ID"

// ActorMiddleware resolves the acting coworker. There is no authentication:
// the X-User-ID header is trusted as is and defaultUserID fills in when it is
// absent. The resolved id is stored in both contexts and added to the
// request logger.
func ActorMiddleware(defaultUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(ActorHeader))
		if userID == "" {
			userID = defaultUserID
		}

		logger := GetLoggerFromCtx(c.Request.Context()).With(slog.String("user_id", userID))

		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		ctx = WithLogger(ctx, logger)
		c.Request = c.Request.WithContext(ctx)

		c.Set(string(userIDKey), userID)
		c.Set(string(loggerKey), logger)
		c.Next()
	}
}
