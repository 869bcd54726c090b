package response

import (
	"neurodek-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope for failed requests
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	idStr := c.GetString(string(domain.KeyRequestID))

	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: idStr,
	})
}
