package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TomasB/ip2country/internal/config"
	"github.com/TomasB/ip2country/internal/data"
	"github.com/TomasB/ip2country/internal/handler/check"
	"github.com/TomasB/ip2country/internal/handler/health"
	"github.com/TomasB/ip2country/internal/handler/lookup"
	"github.com/TomasB/ip2country/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newHTTPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve lookups over HTTP",
		Long: `Serve lookups over HTTP.

GET /<ip> answers with the bare country code (empty when unknown),
GET /api/v1/lookup/<ip> with JSON, and POST /api/v1/check checks an
address against a list of allowed countries.`,
		Example: "  PORT=5000 ip2country http --ipv4-csv ipv4.csv --ipv6-csv ipv6.csv",
		Args:    cobra.NoArgs,
		RunE:    runHTTP,
	}
	config.AddDataFlags(cmd.Flags())
	config.AddHTTPFlags(cmd.Flags())
	return cmd
}

func runHTTP(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd, os.Stdout)
	if err != nil {
		return err
	}
	slog.Info("service starting", "log_level", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	countries, table, err := openLookup(cfg)
	if err != nil {
		return err
	}
	defer countries.Close()

	if err := watchData(ctx, cfg, stop); err != nil {
		return fmt.Errorf("failed to watch data files: %w", err)
	}

	router := newRouter(ctx, cfg, logger, countries, table)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("service started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
	}

	slog.Info("service shutting down")

	// Graceful shutdown with 30s timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("service stopped")
	return nil
}

// newRouter wires the HTTP handlers. Readiness fails once ctx is done so
// load balancers drain the instance during shutdown. table, when not nil,
// supplies the record counts reported by /health.
func newRouter(ctx context.Context, cfg config.Config, logger *slog.Logger, countries data.CountryLookup, table *data.TableReader) *gin.Engine {
	// Set Gin mode based on log level
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.GinLogger(logger))
	router.Use(gin.Recovery())

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, 5*time.Minute)
		go limiter.Run(ctx)
		router.Use(limiter.Gin())
	}

	healthHandler := health.NewHandler(func() error {
		if ctx.Err() != nil {
			return errors.New("shutting down")
		}
		return nil
	})
	healthHandler.SetDetail("version", version)
	if table != nil {
		healthHandler.SetDetail("ipv4_records", table.Table().LenV4())
		healthHandler.SetDetail("ipv6_records", table.Table().LenV6())
	}
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	checkHandler := check.NewHandler(countries)
	lookupHandler := lookup.NewHandler(countries)
	api := router.Group("/api/v1")
	{
		api.POST("/check", checkHandler.Check)
		api.GET("/lookup/:ip", lookupHandler.JSON)
	}

	router.NoRoute(lookupHandler.Plain)
	return router
}
