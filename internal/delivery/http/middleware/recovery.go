package middleware

import (
	"fmt"
	"io"

	"neurodek-backend/pkg/apperror"
	"neurodek-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a handler panic into an internal AppError so ErrorHandler
// renders the usual envelope. Register it after RequestID and ErrorHandler.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Error(c.Request.Context(), "Panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		_ = c.Error(apperror.Internal(fmt.Errorf("panic: %v", recovered)))
		c.Abort()
	})
}
