package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"churchconnect/internal/config"
	"churchconnect/internal/database"
	"churchconnect/internal/handlers"
	"churchconnect/internal/middleware"
	"churchconnect/internal/models"
	"churchconnect/internal/repositories"
	"churchconnect/internal/screens"
	"churchconnect/internal/server"
	"churchconnect/internal/services"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("WARNING: could not read .env: %v", err)
	}

	cfg := config.Load()

	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := services.NewPrometheusMetrics(nil)

	// Seed catalog: database tables when configured, built-in rows otherwise
	var (
		db        *database.DB
		dbHealth  handlers.HealthChecker
		seedOpts  []services.SeedCatalogOption
		generator = services.NewSeedGenerator(cfg.Seed.FakerSeed)
	)
	if cfg.Database.Enabled() {
		var err error
		db, err = database.Initialize(ctx, cfg, logger)
		if err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}
		dbHealth = db
		seedOpts = append(seedOpts, services.WithSeedRepositories(
			repositories.NewEventRepository(db.DB),
			repositories.NewTransactionRepository(db.DB),
		))
		log.Printf("Seed database ready (driver=%s)", cfg.Database.Driver)
	}
	if cfg.Seed.GeneratedCount > 0 {
		seedOpts = append(seedOpts, services.WithGeneratedRows(generator, cfg.Seed.GeneratedCount))
	}

	// Configure email sender
	var sender services.EmailSenderInterface
	if cfg.Email.ResendAPIKey != "" {
		sender = services.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.From, logger)
		log.Println("Email sender configured (Resend)")
	} else {
		sender = services.NewNoopSender(logger)
		if cfg.IsProduction() {
			log.Println("WARNING: RESEND_API_KEY is not set, bulk email delivery is DISABLED in production")
		}
	}
	bulk := services.NewBulkEmailService(sender, cfg.Email.From, cfg.Email.SimulatedDelay, metrics, logger)

	settings := services.NewSettingsService(models.DefaultSettings(), cfg.Screens.SettingsAutosave, logger)

	registry := screens.NewRegistry(screens.Dependencies{
		Directory: services.NewMemberDirectory(&cfg.MembersAPI, metrics, logger),
		Seeds:     services.NewSeedCatalog(logger, seedOpts...),
		BulkEmail: bulk,
		Metrics:   metrics,
		Logger:    services.NewScreenLogger(logger),
		Slog:      logger,
		Config:    cfg.Screens,
	}, settings.Theme, nil)
	go registry.Run(ctx)

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	go limiter.Run(ctx)

	e := server.New(server.NewHandlers(registry, settings, dbHealth), server.Options{
		CORSAllowOrigins: cfg.Server.CORSAllowOrigins,
		RateLimiter:      limiter,
	})
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		log.Printf("ChurchConnect %s starting on %s (env=%s)", version, cfg.Address(), cfg.Server.Environment)
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	registry.Shutdown(shutdownCtx)
	settings.Flush()
	bulk.Wait()
	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("database close failed", "error", err)
		}
	}
}
