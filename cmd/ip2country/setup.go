package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/netip"

	"github.com/TomasB/ip2country/internal/config"
	"github.com/TomasB/ip2country/internal/data"
	"github.com/TomasB/ip2country/internal/logging"
	"github.com/TomasB/ip2country/internal/watch"
	"github.com/spf13/cobra"
)

// smokeIP is looked up once after loading so the log shows the data works.
var smokeIP = netip.MustParseAddr("172.217.16.78")

// setup reads the configuration for cmd and installs the default logger
// writing to w.
func setup(cmd *cobra.Command, w io.Writer) (config.Config, *slog.Logger, error) {
	v, err := config.New(cmd.Flags())
	if err != nil {
		return config.Config{}, nil, err
	}
	cfg := config.Load(v)

	level := logging.Level(cfg.LogLevel)
	logger := logging.New(w, cfg.LogFormat, level)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// openLookup loads the range files and, when configured, the MMDB used for
// addresses the ranges do not cover.
func openLookup(cfg config.Config) (data.CountryLookup, *data.TableReader, error) {
	table, err := data.NewTableReader(cfg.IPv4CSV, cfg.IPv6CSV)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("range table loaded",
		"ipv4_csv", cfg.IPv4CSV,
		"ipv6_csv", cfg.IPv6CSV,
		"ipv4_records", table.Table().LenV4(),
		"ipv6_records", table.Table().LenV6(),
	)
	country, _ := table.LookupCountry(smokeIP)
	slog.Debug("smoke lookup", "ip", smokeIP.String(), "country", country)

	if cfg.MMDBPath == "" {
		return table, table, nil
	}
	mmdb, err := data.NewMmdbReader(cfg.MMDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open MMDB %s: %w", cfg.MMDBPath, err)
	}
	slog.Info("MMDB loaded", "path", cfg.MMDBPath)
	return &data.Fallback{Primary: table, Secondary: mmdb}, table, nil
}

// watchData arranges for stop to be called when a data file changes, if the
// configuration asks for it.
func watchData(ctx context.Context, cfg config.Config, stop func()) error {
	if !cfg.ExitOnDataChange {
		return nil
	}
	paths := []string{cfg.IPv4CSV, cfg.IPv6CSV, cfg.MMDBPath}
	return watch.Files(ctx, paths, func(path string) {
		slog.Info("data file changed, initiating shutdown", "path", path)
		stop()
	})
}
