package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"motor-backend/internal/config"
	"motor-backend/internal/handler"
	"motor-backend/internal/infrastructure/database"
	"motor-backend/internal/logger"
	"motor-backend/internal/metrics"
	"motor-backend/internal/middleware"
	"motor-backend/internal/repository"
	"motor-backend/internal/service"
	"motor-backend/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	articleRepo := repository.NewPostgresArticleRepository(pool)
	searchRepo := repository.NewPostgresSearchRepository(pool)
	pinRepo := repository.NewPostgresPinRepository(pool)
	gradeRepo := repository.NewPostgresGradeRepository(pool)
	behaviorRepo := repository.NewPostgresBehaviorRepository(pool)
	sessionRepo := repository.NewPostgresSessionRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	enricher := service.NewEnricher(pinRepo, gradeRepo)
	userService := service.NewUserService(userRepo, v, cfg.BcryptCost)
	sessionService := service.NewSessionService(sessionRepo)
	articleService := service.NewArticleService(
		articleRepo,
		searchRepo,
		behaviorRepo,
		enricher,
		cfg.SearchLimit,
		cfg.MaxGeneratedArticles,
	)
	behaviorService := service.NewBehaviorService(
		articleRepo,
		pinRepo,
		gradeRepo,
		behaviorRepo,
		enricher,
		v,
	)

	// Sweep idle sessions in the background
	sweeperCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go sweepIdleSessions(sweeperCtx, sessionRepo, cfg.SessionTTL)

	// Initialize handlers
	cookie := handler.CookieSettings{
		Name:   cfg.SessionCookieName,
		MaxAge: int(cfg.SessionTTL.Seconds()),
		Secure: cfg.CookieSecure,
	}
	userHandler := handler.NewUserHandler(userService, sessionService, behaviorService, cookie)
	articleHandler := handler.NewArticleHandler(articleService, behaviorService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.Session(sessionService, cfg.SessionCookieName))
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Application routes
	motor := router.Group("/motor")
	{
		article := motor.Group("/article")
		{
			article.GET("/search", articleHandler.Search)
			article.GET("/addArticle", articleHandler.AddArticle)
			article.POST("/click", articleHandler.Click)
			article.POST("/pin", articleHandler.Pin)
			article.POST("/grade", articleHandler.Grade)
		}

		user := motor.Group("/user")
		{
			user.POST("/login", userHandler.Login)
			user.POST("/register", userHandler.Register)
			user.POST("/is_login", userHandler.IsLogin)
			user.POST("/exit", userHandler.Exit)
			user.GET("/click", userHandler.Click)
			user.GET("/pin", userHandler.Pin)
			user.GET("/grade", userHandler.Grade)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	stopSweeper()

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

// sweepIdleSessions periodically removes sessions that have been idle
// longer than the TTL.
func sweepIdleSessions(ctx context.Context, sessions repository.SessionRepository, ttl time.Duration) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := sessions.DeleteIdle(ctx, int64(ttl.Seconds()))
			if err != nil {
				logger.Warn("Failed to sweep idle sessions",
					slog.String("error", err.Error()))
				continue
			}
			if removed > 0 {
				logger.Info("Swept idle sessions",
					slog.Int64("removed", removed))
			}
		}
	}
}
