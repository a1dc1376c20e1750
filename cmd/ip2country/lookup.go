package main

import (
	"fmt"
	"net/netip"
	"os"

	"github.com/TomasB/ip2country/internal/config"
	"github.com/spf13/cobra"
)

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lookup <ip>...",
		Short:   "Look up addresses without starting a server",
		Example: "  ip2country lookup --ipv4-csv ipv4.csv 1.1.1.1 8.8.8.8",
		Args:    cobra.MinimumNArgs(1),
		RunE:    runLookup,
	}
	config.AddDataFlags(cmd.Flags())
	return cmd
}

// runLookup prints one "<ip> <code>" line per argument, with "-" for
// addresses that have no country.
func runLookup(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup(cmd, os.Stderr)
	if err != nil {
		return err
	}

	addrs := make([]netip.Addr, 0, len(args))
	for _, a := range args {
		ip, err := netip.ParseAddr(a)
		if err != nil {
			return fmt.Errorf("invalid IP address %q", a)
		}
		addrs = append(addrs, ip)
	}

	countries, _, err := openLookup(cfg)
	if err != nil {
		return err
	}
	defer countries.Close()

	out := cmd.OutOrStdout()
	for _, ip := range addrs {
		country, err := countries.LookupCountry(ip)
		if err != nil {
			return fmt.Errorf("lookup %s: %w", ip, err)
		}
		if country == "" {
			country = "-"
		}
		fmt.Fprintf(out, "%s %s\n", ip, country)
	}
	return nil
}
