package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/loan-reschedule-api/api/swagger"
	"github.com/noah-isme/loan-reschedule-api/internal/handler"
	internalmiddleware "github.com/noah-isme/loan-reschedule-api/internal/middleware"
	"github.com/noah-isme/loan-reschedule-api/internal/repository"
	"github.com/noah-isme/loan-reschedule-api/internal/service"
	"github.com/noah-isme/loan-reschedule-api/pkg/cache"
	"github.com/noah-isme/loan-reschedule-api/pkg/config"
	"github.com/noah-isme/loan-reschedule-api/pkg/database"
	"github.com/noah-isme/loan-reschedule-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/loan-reschedule-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/loan-reschedule-api/pkg/middleware/requestid"
)

// @title Loan Reschedule API
// @version 1.0.0
// @description Read access to loan reschedule requests
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("database unavailable", zap.Error(err))
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, lookup cache disabled", zap.Error(err))
			redisClient = nil
		}
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck

	metrics := service.NewMetricsService()
	validate := validator.New()
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Reschedule.CacheTTL, logr, redisClient != nil)
	if err := cacheSvc.Invalidate(ctx, "code-values:*"); err != nil {
		logr.Warn("stale lookup cache not flushed", zap.Error(err))
	}

	rescheduleSvc := service.NewLoanRescheduleService(
		repository.NewLoanRescheduleRepository(db),
		repository.NewCodeValueRepository(db),
		cacheSvc,
		metrics,
		validate,
		logr,
		service.LoanRescheduleConfig{
			ReasonCodeName: cfg.Reschedule.ReasonCodeName,
			CacheTTL:       cfg.Reschedule.CacheTTL,
			ListLimit:      cfg.Reschedule.ListLimit,
		},
	)
	exportSvc := service.NewRescheduleExportService(rescheduleSvc, validate, logr, nil, nil)
	tokens := service.NewTokenService(cfg.JWT.Secret)

	rescheduleHandler := handler.NewLoanRescheduleHandler(rescheduleSvc, exportSvc, logr)
	metricsHandler := handler.NewMetricsHandler(metrics, db)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metrics))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(internalmiddleware.WithResponseMeta(), internalmiddleware.JWT(tokens))

	readers := internalmiddleware.RequireRoles(internalmiddleware.RescheduleReaders...)
	api.GET("/rescheduleloans", readers, rescheduleHandler.ListByStatus)
	api.GET("/rescheduleloans/template", readers, rescheduleHandler.Template)
	api.GET("/rescheduleloans/export", internalmiddleware.RequireRoles(internalmiddleware.RescheduleExporters...), rescheduleHandler.Export)
	api.GET("/rescheduleloans/:id", readers, rescheduleHandler.Get)
	api.GET("/loans/:loanId/rescheduleloans", readers, rescheduleHandler.ListByLoan)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	logr.Info("server stopped")
}
