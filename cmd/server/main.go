package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tupsu-jy/star-retriever/internal/application/service"
	"github.com/Tupsu-jy/star-retriever/internal/config"
	"github.com/Tupsu-jy/star-retriever/internal/domain/events"
	"github.com/Tupsu-jy/star-retriever/internal/domain/repo"
	"github.com/Tupsu-jy/star-retriever/internal/github"
	infraGitHub "github.com/Tupsu-jy/star-retriever/internal/infrastructure/github"
	"github.com/Tupsu-jy/star-retriever/internal/logging"
	"github.com/Tupsu-jy/star-retriever/internal/middleware"
	"github.com/Tupsu-jy/star-retriever/internal/presentation"
	"github.com/Tupsu-jy/star-retriever/internal/presentation/handlers"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const version = "1.0.0"

// @title Star Retriever API
// @version 1.0.0
// @description This API allows users to reach for the stars ie fetch starred Github repositories.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Environment, cfg.LogLevel)

	// Initialize infrastructure layer
	githubClient, err := github.NewClient(&cfg.GitHub)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize GitHub client")
	}
	githubService := infraGitHub.NewGitHubService(githubClient)

	dispatcher := events.NewDispatcher()
	dispatcher.Register(repo.EventTypeStarredRepositoriesFetched, func(ctx context.Context, e events.DomainEvent) error {
		fetched, ok := e.(*repo.StarredRepositoriesFetchedEvent)
		if !ok {
			return fmt.Errorf("unexpected event %T", e)
		}
		zerolog.Ctx(ctx).Info().
			Str("event_id", fetched.EventID()).
			Int("count", fetched.RepositoryCount).
			Msg("starred repositories fetched")
		return nil
	})

	// Initialize application layer
	starredService := service.NewStarredService(githubService, dispatcher)

	// Set Gin mode
	if cfg.Environment != config.EnvironmentDev {
		gin.SetMode(gin.ReleaseMode)
	}

	router := presentation.NewRouter(presentation.RouterConfig{
		Logger:         logger,
		Production:     cfg.IsProduction(),
		RateLimiter:    middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute),
		StarredHandler: handlers.NewStarredHandler(starredService),
		HealthHandler:  handlers.NewHealthHandler(version),
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().
			Str("addr", cfg.GetServerAddress()).
			Str("environment", cfg.Environment).
			Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
