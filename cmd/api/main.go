package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"neurodek-backend/config"
	_ "neurodek-backend/docs" // registers the swagger spec
	"neurodek-backend/internal/delivery/http/middleware"
	v1 "neurodek-backend/internal/delivery/http/v1"
	"neurodek-backend/internal/domain"
	"neurodek-backend/internal/notifier"
	"neurodek-backend/internal/repository"
	"neurodek-backend/internal/usecase"
	"neurodek-backend/pkg/email"
	"neurodek-backend/pkg/logger"
	"neurodek-backend/pkg/queue"
	"neurodek-backend/pkg/redis"
	"neurodek-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// @title           Neurodek API
// @version         1.0
// @description     Contact form and diagnostics backend.
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	if cfg.AppEnv == logger.ProductionEnvironment {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.Log.Info("Starting Neurodek backend", zap.String("port", cfg.Port))

	ctx := context.Background()

	// 3. Setup Document Store (optional)
	var store domain.DocumentStore
	if cfg.DatabaseURLSet() {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		store, err = repository.OpenStore(connectCtx, cfg.DBUrl, cfg.DBName)
		cancel()
		if err != nil {
			logger.Log.Warn("Document store unavailable, contact submissions will not be stored", zap.Error(err))
			store = nil
		} else {
			logger.Log.Info("Document store connected", zap.String("driver", store.Driver()))
		}
	} else {
		logger.Log.Warn("DATABASE_URL is not set, contact submissions will not be stored")
	}

	// 4. Setup Redis (optional, rate limiting)
	redisClient, err := redis.New(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	if err != nil {
		if errors.Is(err, redis.ErrNotConfigured) {
			logger.Log.Info("REDIS_URL is not set, rate limiting is in-memory")
		} else {
			logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", zap.Error(err))
		}
		redisClient = nil
	}

	// 5. Setup Notifiers (optional)
	var notifiers []domain.ContactNotifier
	if emailService := email.NewEmailService(cfg); emailService.IsConfigured() {
		notifiers = append(notifiers, notifier.NewEmailNotifier(emailService))
	}
	if publisher := queue.NewPublisher(cfg.AMQPUrl, cfg.ContactQueue); publisher.IsConfigured() {
		notifiers = append(notifiers, notifier.NewQueueNotifier(publisher))
		logger.Log.Info("Contact events enabled", zap.String("queue", publisher.Queue()))
	}

	// 6. Setup UseCases
	// a nil DocumentStore must stay a nil interface for the usecases
	var contactRepo domain.ContactRepository
	var inspector domain.DatabaseInspector
	if store != nil {
		contactRepo = store
		inspector = store
	}
	contactUC := usecase.NewContactUsecase(contactRepo, usecase.ContactTimeouts{
		Store:  cfg.DBTimeout,
		Notify: cfg.NotifyTimeout,
	}, notifiers...)
	diagnosticsUC := usecase.NewDiagnosticsUsecase(cfg, inspector)

	// 7. Setup Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:      contactUC,
		DiagnosticsUC:  diagnosticsUC,
		Validator:      validation.NewContactValidator(validator.New()),
		TrustedProxies: cfg.TrustedProxies,
		ContactLimiter: middleware.NewRateLimiter(
			middleware.ContactRateLimitConfig(cfg.ContactRateLimit, time.Duration(cfg.RateLimitWindowSeconds)*time.Second),
			redisClient,
		),
		Metrics:  middleware.NewHTTPMetrics(registry),
		Gatherer: registry,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Listen failed", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := contactUC.Wait(shutdownCtx); err != nil {
		logger.Log.Warn("Pending contact notifications abandoned", zap.Error(err))
	}
	if store != nil {
		if err := store.Close(shutdownCtx); err != nil {
			logger.Log.Error("Failed to close document store", zap.Error(err))
		}
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}

	logger.Log.Info("Server exiting")
}
