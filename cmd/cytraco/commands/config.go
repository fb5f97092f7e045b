package commands

import (
	"github.com/spf13/cobra"

	"github.com/cytraco/cytraco/cmd/cytraco/handlers"
)

// Config returns the command group for inspecting the configuration file.
// configPath is bound to the root --config flag.
func Config(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the cytraco configuration",
	}

	cmd.AddCommand(configShow(configPath))
	cmd.AddCommand(configPathCmd(configPath))

	return cmd
}

func configShow(configPath *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored configuration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.ConfigShow(*configPath, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", handlers.FormatTOML, "Output format: toml, yaml or json")

	return cmd
}

func configPathCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.ConfigPath(*configPath)
		},
	}
}
