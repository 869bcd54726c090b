package v1

import (
	"net/http"

	"neurodek-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// RootResponse is the body of GET /
type RootResponse struct {
	Message string `json:"message" example:"Neurodek API is running"`
}

type HealthHandler struct {
	serviceName   string
	diagnosticsUC domain.DiagnosticsUsecase
}

func NewHealthHandler(r gin.IRoutes, serviceName string, diagnosticsUC domain.DiagnosticsUsecase) {
	handler := &HealthHandler{
		serviceName:   serviceName,
		diagnosticsUC: diagnosticsUC,
	}

	r.GET("/", handler.Root)
	r.GET("/test", handler.Diagnostics)
}

// Root godoc
// @Summary      Liveness
// @Tags         health
// @Produce      json
// @Success      200  {object}  RootResponse
// @Router       / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{Message: h.serviceName + " is running"})
}

// Diagnostics godoc
// @Summary      Backend and database diagnostics
// @Description  Always 200. Database problems are reported inside the body.
// @Tags         health
// @Produce      json
// @Success      200  {object}  domain.DiagnosticsReport
// @Router       /test [get]
func (h *HealthHandler) Diagnostics(c *gin.Context) {
	c.JSON(http.StatusOK, h.diagnosticsUC.Report(c.Request.Context()))
}
