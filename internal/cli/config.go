package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gfpoly/gfpoly/pkg/config"
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the settings command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change gfpoly settings",
		Long: `Persisted preferences: the default output format, the degree caps for
check/search and scan, color use, and export defaults. Settings live in
a JSON file under your user config directory (or $GFPOLY_CONFIG when
set).`,
		Example: `  # Show the active settings and where they live
  gfpoly config show

  # Default to hex output everywhere
  gfpoly config set defaults.format hex

  # Turn color off for dumb terminals
  gfpoly config set ui.use_color false`,
	}

	cmd.AddCommand(
		newConfigShowCommand(),
		newConfigSetCommand(),
	)

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			cm, err := config.NewConfigManager()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg := cm.GetConfig()

			if outputJSON {
				return printJSON(cfg)
			}

			cyan := color.New(color.FgCyan, color.Bold)

			fmt.Println()
			cyan.Println("=== CONFIGURATION ===")
			fmt.Println()
			fmt.Printf("File: %s\n", cm.Path())
			fmt.Println()
			fmt.Printf("defaults.format:          %s\n", cfg.Defaults.Format)
			fmt.Printf("defaults.max_degree:      %d\n", cfg.Defaults.MaxDegree)
			fmt.Printf("defaults.max_scan_degree: %d\n", cfg.Defaults.MaxScanDegree)
			fmt.Printf("ui.use_color:             %t\n", cfg.UI.UseColor)
			fmt.Printf("export.default_path:      %s\n", valueOrUnset(cfg.Export.DefaultPath))
			fmt.Printf("export.go_package:        %s\n", cfg.Export.GoPackage)

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := config.NewConfigManager()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if err := cm.Set(args[0], args[1]); err != nil {
				return err
			}

			green := color.New(color.FgGreen, color.Bold)
			green.Printf("✓ %s = %s\n", args[0], args[1])

			return nil
		},
	}
}

func valueOrUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
