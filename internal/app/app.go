// Package app wires configuration, storage, services, and the HTTP server
// into a running application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/wordmemo/wordmemo-backend/internal/adapter/postgres"
	counterrepo "github.com/wordmemo/wordmemo-backend/internal/adapter/postgres/counter"
	userrepo "github.com/wordmemo/wordmemo-backend/internal/adapter/postgres/user"
	wordrepo "github.com/wordmemo/wordmemo-backend/internal/adapter/postgres/word"
	"github.com/wordmemo/wordmemo-backend/internal/adapter/provider/deepseek"
	jwtauth "github.com/wordmemo/wordmemo-backend/internal/auth"
	"github.com/wordmemo/wordmemo-backend/internal/config"
	authsvc "github.com/wordmemo/wordmemo-backend/internal/service/auth"
	"github.com/wordmemo/wordmemo-backend/internal/service/lexicon"
	"github.com/wordmemo/wordmemo-backend/internal/service/stats"
	"github.com/wordmemo/wordmemo-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and database, creates the aggregate public-lookup identity,
// wires services and the HTTP router, and serves until a shutdown signal.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("enrichment_enabled", cfg.Enrichment.EnrichmentEnabled()),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	words := wordrepo.New(pool, txm)
	counters := counterrepo.New(pool)
	users := userrepo.New(pool)

	publicIdentity, err := users.GetOrCreateAggregate(ctx,
		cfg.PublicLookup.IdentityUsername, cfg.PublicLookup.IdentityEmail)
	if err != nil {
		return fmt.Errorf("ensure aggregate identity: %w", err)
	}
	logger.Info("aggregate identity ready",
		slog.String("username", publicIdentity.Username),
		slog.String("user_id", publicIdentity.ID.String()),
	)

	tokens := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	enricher := deepseek.New(cfg.Enrichment, logger)

	authService := authsvc.NewService(logger, users, tokens, cfg.Auth.BcryptCost)
	lexiconService := lexicon.NewService(logger, words, counters, enricher,
		cfg.PublicLookup.SharedCode, publicIdentity.ID)
	statsService := stats.NewService(logger, counters)

	router := rest.NewRouter(rest.RouterDeps{
		Words:          rest.NewWordHandler(lexiconService, logger),
		Stats:          rest.NewStatsHandler(statsService, logger),
		Auth:           rest.NewAuthHandler(authService, logger),
		Health:         rest.NewHealthHandler(pool, BuildVersion()),
		Media:          rest.NewMediaHandler(cfg.MediaProxy, logger),
		TokenValidator: authService,
		CORS:           cfg.CORS,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
