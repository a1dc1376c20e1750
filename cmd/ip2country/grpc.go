package main

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TomasB/ip2country/internal/config"
	grpchandler "github.com/TomasB/ip2country/internal/handler/grpc"
	"github.com/TomasB/ip2country/internal/middleware"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func newGRPCCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "grpc",
		Short:   "Serve lookups over gRPC",
		Long:    "Serve the ip2c.IpLookup gRPC service, with health checking and reflection.",
		Example: "  SRV_ADDR=0.0.0.0:50051 ip2country grpc",
		Args:    cobra.NoArgs,
		RunE:    runGRPC,
	}
	config.AddDataFlags(cmd.Flags())
	config.AddGRPCFlags(cmd.Flags())
	return cmd
}

func runGRPC(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd, os.Stdout)
	if err != nil {
		return err
	}
	slog.Info("service starting", "log_level", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	countries, _, err := openLookup(cfg)
	if err != nil {
		return err
	}
	defer countries.Close()

	if err := watchData(ctx, cfg, stop); err != nil {
		return fmt.Errorf("failed to watch data files: %w", err)
	}

	lis, err := net.Listen("tcp", cfg.SrvAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.SrvAddr, err)
	}

	srv := grpc.NewServer(grpc.UnaryInterceptor(middleware.UnaryLogger(logger)))
	grpchandler.Register(srv, grpchandler.NewHandler(countries))

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthSrv.SetServingStatus(grpchandler.ServiceName, healthpb.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("service started", "addr", lis.Addr().String())
		if err := srv.Serve(lis); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("service shutting down")
	healthSrv.Shutdown()

	// Graceful shutdown with 30s timeout
	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		slog.Error("server forced to shutdown")
		srv.Stop()
	}

	slog.Info("service stopped")
	return nil
}
