package v1

import (
	"neurodek-backend/internal/delivery/http/middleware"
	"neurodek-backend/internal/domain"
	"neurodek-backend/pkg/apperror"
	"neurodek-backend/pkg/logger"
	"neurodek-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const DefaultServiceName = "Neurodek API"

type RouterDeps struct {
	ServiceName    string
	ContactUC      domain.ContactUsecase
	DiagnosticsUC  domain.DiagnosticsUsecase
	Validator      *validation.ContactValidator
	TrustedProxies []string                // nil: ClientIP is the socket peer
	ContactLimiter *middleware.RateLimiter // optional
	Metrics        *middleware.HTTPMetrics // optional
	Gatherer       prometheus.Gatherer     // serves /metrics when set
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(deps.TrustedProxies); err != nil {
		logger.Log.Warn("Invalid trusted proxies, trusting none", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}

	if deps.ServiceName == "" {
		deps.ServiceName = DefaultServiceName
	}
	if deps.Validator == nil {
		deps.Validator = validation.NewContactValidator(nil)
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // preflight must short-circuit before anything else
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
	}
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.Recovery())

	NewHealthHandler(r, deps.ServiceName, deps.DiagnosticsUC)

	var contactMiddleware []gin.HandlerFunc
	if deps.ContactLimiter != nil {
		contactMiddleware = append(contactMiddleware, deps.ContactLimiter.Middleware())
	}
	NewContactHandler(r, deps.ContactUC, deps.Validator, contactMiddleware...)

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		c.Error(apperror.NotFound("Route not found"))
	})

	return r
}
