// Package main is the entry point for the Finlog API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/finlog/backend/config"
	"github.com/finlog/backend/internal/infra/db"
	"github.com/finlog/backend/internal/infra/dependency"
	"github.com/finlog/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Finlog API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Database connection and migrations
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Redis connection for the login rate limiter
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}
	if cfg.Redis.Password != "" {
		redisOpts.Password = cfg.Redis.Password
	}
	redisOpts.DB = cfg.Redis.DB
	redisClient := redis.NewClient(redisOpts)
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}()

	// Wire everything and set up the router
	injector := dependency.NewInjector(cfg, database.DB(), redisClient)
	engine := injector.Router.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
