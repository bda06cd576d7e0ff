package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiter falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	notifRepo := postgres.NewNotificationRepository(dbPool)
	recRepo := postgres.NewRecommendationRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - signup verification and job alerts will fail")
	}

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	// The binding: tags on request DTOs run on gin's own validator engine,
	// which needs the custom rules too.
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(engine)
	}

	accountUC := usecase.NewAccountUsecase(userRepo, emailService)
	authUC := usecase.NewAuthUsecase(userRepo)
	jobUC := usecase.NewJobUsecase(jobRepo)
	savedJobUC := usecase.NewSavedJobUsecase(userRepo, jobRepo, validate)
	recommendUC := usecase.NewRecommendationUsecase(recRepo, userRepo, jobRepo)
	notificationUC := usecase.NewNotificationUsecase(notifRepo)
	alertUC := usecase.NewAlertUsecase(emailService)

	// 8. Setup Session Tokens
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTL)*time.Hour)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AccountUC:      accountUC,
		AuthUC:         authUC,
		JobUC:          jobUC,
		SavedJobUC:     savedJobUC,
		RecommendUC:    recommendUC,
		NotificationUC: notificationUC,
		AlertUC:        alertUC,
		Tokens:         tokens,
		Config:         cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
