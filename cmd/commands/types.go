package commands

// Command listing the chart types and barcode symbologies the factory knows

import (
	"fmt"
	"strings"

	"pchart/internal/pchart/barcode"
	"pchart/internal/pchart/factory"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List registered chart types and barcode symbologies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "charts:   %s\n", strings.Join(factory.Default.Types(), ", "))
		fmt.Fprintf(out, "barcodes: %s, %s\n", barcode.Symbology39, barcode.Symbology128)
		return nil
	},
}
