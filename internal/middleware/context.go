package middleware

import (
	"context"
	"time"

	"github.com/Payphone-Digital/roster/internal/constants"
	ctxutil "github.com/Payphone-Digital/roster/pkg/context"
	"github.com/Payphone-Digital/roster/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestContext gives every request an ID, request metadata in its
// context.Context and, when timeout is positive, a deadline.
func RequestContext(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(constants.HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Header(constants.HeaderXRequestID, rid)

		ctx := ctxutil.NewContextWithRequest(
			c.Request.Context(),
			rid,
			c.ClientIP(),
			c.GetHeader(constants.HeaderUserAgent),
			"http",
			c.FullPath(),
		)

		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		c.Request = c.Request.WithContext(ctx)

		logger.DebugWithContext(ctx, "Request started").
			String("method", c.Request.Method).
			String("path", c.Request.URL.Path).
			String("query", c.Request.URL.RawQuery).
			Log()

		c.Next()

		logger.DebugWithContext(ctx, "Request completed").
			String("method", c.Request.Method).
			String("path", c.Request.URL.Path).
			Int("status_code", c.Writer.Status()).
			Int("response_size", c.Writer.Size()).
			Duration(ctxutil.GetDuration(ctx)).
			Log()
	}
}

// GetRequestID extracts request_id from gin context when available.
func GetRequestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if v, ok := c.Get(requestIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
