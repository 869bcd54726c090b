package middleware

import (
	"time"

	"neurodek-backend/internal/domain"
	"neurodek-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-Id"

// RequestID tags the request with an id (taken from X-Request-Id when the
// caller sent one) and attaches a logger carrying it to the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.NewString()
		}

		c.Set(string(domain.KeyRequestID), requestID)
		c.Header(RequestIDHeader, requestID)

		ctx := logger.WithFields(c.Request.Context(), zap.String("request_id", requestID))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// AccessLog writes one structured line per request after it completes
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info(c.Request.Context(), "Access log",
			zap.Int("status_code", c.Writer.Status()),
			zap.Float64("latency", time.Since(start).Seconds()),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
	}
}
