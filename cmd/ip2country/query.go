package main

import (
	"context"
	"fmt"
	"time"

	grpchandler "github.com/TomasB/ip2country/internal/handler/grpc"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "query <ip>...",
		Short:   "Query a running gRPC server",
		Example: "  ip2country query --server [::1]:50051 8.8.8.8",
		Args:    cobra.MinimumNArgs(1),
		RunE:    runQuery,
	}
	cmd.Flags().String("server", "[::1]:50051", "gRPC server address")
	cmd.Flags().Duration("timeout", 5*time.Second, "per-request timeout")
	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	server, _ := cmd.Flags().GetString("server")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	conn, err := grpc.NewClient(server, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", server, err)
	}
	defer conn.Close()

	client := grpchandler.NewClient(conn)
	out := cmd.OutOrStdout()
	for _, ip := range args {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		country, err := client.Send(ctx, ip)
		cancel()
		if err != nil {
			return fmt.Errorf("query %s: %w", ip, err)
		}
		if country == "" {
			country = "-"
		}
		fmt.Fprintf(out, "%s %s\n", ip, country)
	}
	return nil
}
