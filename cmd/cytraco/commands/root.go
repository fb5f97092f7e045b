// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/cytraco/cytraco/cmd/cytraco/handlers"
	"github.com/cytraco/cytraco/internal/trainer"
)

// Root returns the root command for the cytraco CLI.
//
// Running the root command performs setup: it loads or creates the
// configuration and connects to a trainer.
//
// Flags:
//
//	--demo: Skip trainer selection and run in demo mode
//	--config, -c: Configuration file (default $XDG_CONFIG_HOME/cytraco/config.toml)
//	--scan-timeout: How long to scan for trainers
//	--connect-timeout: How long to wait for the configured trainer
//	--log-level, --log-format: Diagnostic logging on stderr
//	--metrics-textfile: Write run metrics in Prometheus text format
func Root() *cobra.Command {
	opts := handlers.Options{}

	cmd := &cobra.Command{
		Use:   "cytraco",
		Short: "Set up FTP and pair a BLE cycling trainer",
		Long: `Set up cytraco and pair a Bluetooth cycling trainer.

On first run you are asked for your FTP (Functional Threshold Power).
cytraco then reconnects to the trainer saved in the configuration, or
scans for nearby FTMS trainers and lets you pick one. When no trainer
can be used, setup can finish in demo mode.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Bootstrap(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Configuration file (default $XDG_CONFIG_HOME/cytraco/config.toml)")
	cmd.Flags().BoolVar(&opts.Demo, "demo", false, "Skip trainer selection and run in demo mode")
	cmd.Flags().DurationVar(&opts.ScanTimeout, "scan-timeout", trainer.DefaultScanTimeout, "How long to scan for trainers")
	cmd.Flags().DurationVar(&opts.ConnectTimeout, "connect-timeout", trainer.DefaultConnectTimeout, "How long to wait for the configured trainer")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	cmd.Flags().StringVar(&opts.LogFormat, "log-format", "text", "Log format: text or json")
	cmd.Flags().StringVar(&opts.MetricsTextfile, "metrics-textfile", "", "Write run metrics to this file in Prometheus text format")

	cmd.AddCommand(Config(&opts.ConfigPath))
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
