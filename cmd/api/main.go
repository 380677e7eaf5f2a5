package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio-backend/config"
	_ "go-portfolio-backend/docs" // Important for Swagger
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/redis"
	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Portfolio Contact Backend
// @version         1.0
// @description     Backend relaying portfolio contact form submissions to email.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio contact backend", "port", cfg.Port)

	// 3. Setup Redis (optional; rate limiter falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory store", "error", err)
	}
	defer redis.Close()

	// 4. Setup Mail Dispatch Gateway
	gateway := email.NewService(cfg)
	if !gateway.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}

	// 5. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	contactUC := usecase.NewContactUsecase(gateway, validate)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
		// Hosting-layer timeouts so a hung transport cannot hold a
		// connection indefinitely
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
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
