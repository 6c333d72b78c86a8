// Package cli implements the cobra-based CLI commands for configdemo.
//
// configdemo is the example application for the cobra-config library: a
// small tool whose entire job is to demonstrate layered configuration.
// Every command resolves its settings through internal/settings, which
// merges defaults, an optional config file, environment variables, and the
// command line (via cobra-config) in that precedence order.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/p2p-org/cobra-config/internal/model"
	"github.com/p2p-org/cobra-config/internal/settings"
)

// Version is the semantic version of the binary, injected from main.
var Version = "dev"

// NewRootCommand creates and configures the root cobra command.
//
// Run without a subcommand, configdemo resolves all layers and prints the
// effective merged configuration, which makes the precedence order directly
// observable:
//
//	CONFIGDEMO_SERVE_PORT=9090 configdemo --config demo.yaml -f json -vv
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "configdemo",
		Short: "Show layered configuration with command-line flags on top",
		Long: `configdemo resolves its configuration from four layers and prints the result.

Layers, lowest to highest precedence:
  1. Built-in defaults
  2. Config file (--config; YAML, TOML, JSON, or JSONC)
  3. Environment variables (CONFIGDEMO_ prefix, e.g. CONFIGDEMO_SERVE_PORT)
  4. Command-line flags of the invoked command

Only flags you actually type override the lower layers; everything else
falls through to the file, the environment, or the defaults.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically;
		// Execute formats them itself.
		SilenceErrors: true,

		Version: Version,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd)
		},
	}

	// PersistentFlags are inherited by all subcommands, and their values
	// stay root-level keys in the merged configuration no matter where on
	// the command line they appear.
	rootCmd.PersistentFlags().String("config", "", "Config file path (YAML, TOML, JSON, or JSONC)")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "Output format (text or json)")
	rootCmd.PersistentFlags().CountP("verbosity", "v", "Increase stderr trace verbosity (repeatable)")
	rootCmd.PersistentFlags().StringSlice("label", nil, "Label to attach to this run (repeatable)")

	rootCmd.AddCommand(NewServeCommand())

	return rootCmd
}

// runShow resolves the effective configuration for the root invocation and
// prints it to stdout in the configured format.
func runShow(cmd *cobra.Command) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	verboseLog(cfg.Verbosity, "resolved configuration for %q", cmd.Name())

	switch cfg.Format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render configuration: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	default:
		out, err := cfg.YAML()
		if err != nil {
			return fmt.Errorf("failed to render configuration: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
	}

	return nil
}

// loadSettings reads the --config flag and hands the running command to the
// settings loader. Shared by every command's RunE.
func loadSettings(cmd *cobra.Command) (*settings.Settings, error) {
	// The flag lives on the root but is reachable from any command in the
	// chain through the merged flag set.
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return settings.Load(cmd, path)
}

// Execute runs the root command and handles exit codes.
//
// It inspects errors returned by cobra commands and translates them into
// OS exit codes. CLIError values carry their own codes; anything else
// exits with the general error code.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError writes "Error: <message>" to stderr, with the underlying
// error appended when present. Errors always go to stderr; stdout is
// reserved for command output.
func printError(message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}

// verboseLog prints a trace message to stderr when the resolved verbosity
// is above zero. Verbosity comes from the merged configuration, so -vv,
// CONFIGDEMO_VERBOSITY, and a file setting all enable it the same way.
func verboseLog(verbosity int, format string, args ...any) {
	if verbosity > 0 {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}
