package middleware

import (
	"errors"
	"net/http"

	"neurodek-backend/internal/delivery/http/response"
	"neurodek-backend/pkg/apperror"
	"neurodek-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Error(c.Request.Context(), "Request failed",
					zap.Int("status", appErr.Code),
					zap.Error(appErr.Err),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// unknown errors never reach the client verbatim
		logger.Error(c.Request.Context(), "Unhandled error", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
