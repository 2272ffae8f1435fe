// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the ScholarGate API server.
// It loads configuration, connects to services, sets up routing, and
// starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"scholargate/internal/config"
	"scholargate/internal/database"
	"scholargate/internal/handlers"
	"scholargate/internal/mailer"
	"scholargate/internal/middleware"
	"scholargate/internal/newsletter"
	"scholargate/internal/router"
	"scholargate/internal/scheduler"
	"scholargate/internal/storage"
	"scholargate/internal/store"
	"scholargate/internal/workflow"
)

// Rate limit for write endpoints: requests per window per client IP.
const (
	rateLimit       = 60
	rateLimitWindow = time.Minute
)

func main() {
	// .env is optional — real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		slog.Info(".env file loaded")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed lookup data in development (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Redis backs the write-endpoint rate limiter. Optional: without it
	// the API runs unlimited.
	var limiter *middleware.RateLimiter
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			slog.Error("invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			slog.Error("failed to connect to redis", "error", err)
			cancel()
			os.Exit(1)
		}
		cancel()
		slog.Info("redis connected")

		limiter = middleware.NewRateLimiter(rdb, rateLimit, rateLimitWindow)
	} else {
		slog.Warn("redis not configured — rate limiting disabled")
	}

	// Connect to S3-compatible object storage (optional — the API works
	// without it, uploads return 503).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured — image uploads disabled")
	}

	// Initialize data stores.
	postStore := store.NewPostStore(db)
	jobStore := store.NewJobStore(db)
	tagStore := store.NewTagStore(db)
	categoryStore := store.NewCategoryStore(db)
	countryStore := store.NewCountryStore(db)
	degreeLevelStore := store.NewDegreeLevelStore(db)
	fundingTypeStore := store.NewFundingTypeStore(db)
	employmentTypeStore := store.NewEmploymentTypeStore(db)
	quoteStore := store.NewQuoteStore(db)
	subscriberStore := store.NewSubscriberStore(db)

	// Newsletter fan-out: SMTP sender behind the dispatcher.
	sender := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	dispatcher := newsletter.NewDispatcher(sender, cfg.FrontendURL)

	// Workflow services.
	postService := workflow.NewPostService(postStore, tagStore, degreeLevelStore, subscriberStore, dispatcher)
	jobService := workflow.NewJobService(jobStore)

	// Scheduled publisher.
	sched := scheduler.New(postStore, postService)
	if err := sched.Start(context.Background()); err != nil {
		slog.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	// Create handler groups with their dependencies.
	postHandlers := handlers.NewPosts(postService, postStore, tagStore, degreeLevelStore)
	jobHandlers := handlers.NewJobs(jobService, jobStore)
	taxonomyHandlers := handlers.NewTaxonomy(tagStore, categoryStore, countryStore, degreeLevelStore, fundingTypeStore, employmentTypeStore, quoteStore, postStore)
	newsletterHandlers := handlers.NewNewsletter(subscriberStore)
	uploadHandlers := handlers.NewUpload(storageClient)

	// Set up the Chi router with all middleware and routes.
	r := router.New(postHandlers, jobHandlers, taxonomyHandlers, newsletterHandlers, uploadHandlers, limiter)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// Best-effort drain of in-flight newsletter fan-outs before exit.
	postService.Wait()

	slog.Info("server stopped gracefully")
}
