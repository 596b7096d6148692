package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/gfpoly/gfpoly/internal/cli"
	"github.com/gfpoly/gfpoly/pkg/config"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "gfpoly",
		Short: "Primitive polynomial search and GF(2^d) field tables",
		Long: `gfpoly works with polynomials over GF(2), the binary field arithmetic
behind CRCs, LFSRs, and Reed-Solomon codes.

Polynomials are written as bit strings with the constant term first,
so "1100001" is 1 + x + x^6, or as hex values with a 0x prefix.

Features:
- Candidate search that selects the first primitive polynomial
- Order-based primitivity testing with near-miss reporting
- Field enumeration as successive powers of x
- Whole-degree scans and a built-in catalog (degrees 2-15)
- exp/log table export as Go source, JSON, or text`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			if cm, err := config.NewConfigManager(); err == nil {
				if !cm.GetConfig().UI.UseColor {
					color.NoColor = true
				}
			}
		},
	}

	rootCmd.AddCommand(
		cli.NewSearchCommand(),
		cli.NewCheckCommand(),
		cli.NewTableCommand(),
		cli.NewScanCommand(),
		cli.NewCatalogCommand(),
		cli.NewExportCommand(),
		cli.NewConfigCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
