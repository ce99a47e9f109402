package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/teranos/tension/am"
	"github.com/teranos/tension/errors"
	"gopkg.in/yaml.v3"
)

func newAmCmd() *cobra.Command {
	amCmd := &cobra.Command{
		Use:   "am",
		Short: "Manage tension configuration",
		Long: `am - Manage tension configuration ("I am")

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (TENSION_* prefix)
3. Project config (./am.toml, searched upward)
4. User config (~/.tension/am.toml)
5. System config (/etc/tension/am.toml)
6. Default values

Examples:
  tension am show                # Show current configuration
  tension am show --format json  # Show configuration in JSON format
  tension am get sweep.samples   # Get specific config value
  tension am validate            # Validate current configuration`,
	}

	var configFormat string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current tension configuration from all sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := am.Load()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}
			out := cmd.OutOrStdout()

			switch configFormat {
			case "json":
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return errors.Wrap(err, "failed to marshal config to JSON")
				}
				fmt.Fprintln(out, string(data))

			case "yaml":
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return errors.Wrap(err, "failed to marshal config to YAML")
				}
				fmt.Fprintf(out, "# tension configuration\n%s", string(data))

			case "toml":
				data, err := toml.Marshal(cfg)
				if err != nil {
					return errors.Wrap(err, "failed to marshal config to TOML")
				}
				fmt.Fprintf(out, "# tension configuration\n%s", string(data))

			default:
				return errors.NewInvalidRequestError("unsupported format: %s (supported: toml, json, yaml)", configFormat)
			}
			return nil
		},
	}
	showCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a specific configuration value",
		Long:  "Get a specific configuration value using dot notation (e.g., sweep.samples, output.format)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !am.GetViper().IsSet(key) {
				return errors.NewInvalidRequestError("configuration key %q not found", key)
			}
			fmt.Fprintln(cmd.OutOrStdout(), am.Get(key))
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate current configuration",
		Long: `Validate that the current tension configuration is valid.

With a file argument only that file (over the defaults) is checked, which is
useful before dropping it into place.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg   *am.Config
				err   error
				files []string
			)
			if len(args) == 1 {
				cfg, err = am.LoadFromFile(args[0])
				files = args
			} else {
				cfg, err = am.Load()
				files = am.LoadedFiles()
			}
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}
			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, "configuration validation failed")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "  loaded %s\n", f)
			}
			return nil
		},
	}

	amCmd.AddCommand(showCmd, getCmd, validateCmd)
	return amCmd
}
