// Command ip2country serves IP-to-country lookups from CSV range files over
// HTTP or gRPC, and offers one-shot lookup, export and query tools.
package main

import (
	"fmt"
	"os"

	"github.com/TomasB/ip2country/internal/config"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ip2country",
		Short:         "ip2country maps IP addresses to two-letter country codes",
		Long:          "ip2country maps IP addresses to two-letter country codes using sorted range files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.AddLogFlags(root.PersistentFlags())

	root.AddCommand(
		newHTTPCmd(),
		newGRPCCmd(),
		newLookupCmd(),
		newExportCmd(),
		newQueryCmd(),
		newVersionCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ip2country: %v\n", err)
		os.Exit(1)
	}
}
