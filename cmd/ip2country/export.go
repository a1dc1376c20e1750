package main

import (
	"bufio"
	"fmt"
	"io"
	"net/netip"
	"os"

	"github.com/TomasB/ip2country/internal/config"
	"github.com/TomasB/ip2country/internal/rangetable"
	"github.com/spf13/cobra"
	"go4.org/netipx"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the loaded ranges as CIDR prefixes",
		Long: `Print the loaded ranges as "prefix,code" lines, one CIDR prefix per line.

Gap ranges (address space the source files do not cover) are skipped
unless --gaps is given, in which case they are printed with an empty code.
The last range of each family extends to the top of the address space.`,
		Example: "  ip2country export --family v4 > ipv4-prefixes.csv",
		Args:    cobra.NoArgs,
		RunE:    runExport,
	}
	config.AddDataFlags(cmd.Flags())
	cmd.Flags().String("family", "all", "address family to export (v4, v6, all)")
	cmd.Flags().Bool("gaps", false, "include gap ranges with an empty code")
	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	family, _ := cmd.Flags().GetString("family")
	gaps, _ := cmd.Flags().GetBool("gaps")
	if family != "v4" && family != "v6" && family != "all" {
		return fmt.Errorf("unknown family %q", family)
	}

	cfg, _, err := setup(cmd, os.Stderr)
	if err != nil {
		return err
	}
	if family == "v4" {
		cfg.IPv6CSV = ""
	}
	if family == "v6" {
		cfg.IPv4CSV = ""
	}

	countries, table, err := openLookup(cfg)
	if err != nil {
		return err
	}
	defer countries.Close()

	w := bufio.NewWriter(cmd.OutOrStdout())
	for r := range table.Table().Ranges4() {
		writePrefixes(w, r.First.Addr(), r.Last.Addr(), r.Code, gaps)
	}
	for r := range table.Table().Ranges6() {
		writePrefixes(w, r.First.Addr(), r.Last.Addr(), r.Code, gaps)
	}
	return w.Flush()
}

func writePrefixes(w io.Writer, first, last netip.Addr, code rangetable.Code, gaps bool) {
	if !code.Valid() && !gaps {
		return
	}
	for _, p := range netipx.IPRangeFrom(first, last).Prefixes() {
		fmt.Fprintf(w, "%s,%s\n", p, code)
	}
}
