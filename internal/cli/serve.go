// Package cli — serve.go implements the "configdemo serve" command.
//
// serve is the demo's only subcommand. Its flags land under the "serve"
// table of the merged configuration, nested exactly one level below the
// root flags, so the same settings can also come from a config file's
// serve section or from CONFIGDEMO_SERVE_* environment variables.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewServeCommand creates the "serve" cobra command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Print the effective server settings",
		Long: `Resolve the serve settings from all configuration layers and print what
a server started with them would bind to.

Examples:
  configdemo serve --port 9000
  configdemo --config demo.yaml serve --watch
  CONFIGDEMO_SERVE_HOST=0.0.0.0 configdemo serve`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	cmd.Flags().String("host", "localhost", "Interface to bind")
	cmd.Flags().IntP("port", "p", 8080, "TCP port to listen on")
	cmd.Flags().Bool("watch", false, "Reload when watched inputs change")
	cmd.Flags().StringSlice("origin", nil, "Allowed request origin (repeatable)")

	return cmd
}

// runServe resolves the merged configuration and prints the serve summary.
func runServe(cmd *cobra.Command) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	verboseLog(cfg.Verbosity, "command %q resolved serve settings %+v", cfg.Command, cfg.Serve)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "serve %s:%d (watch=%v)\n", cfg.Serve.Host, cfg.Serve.Port, cfg.Serve.Watch)
	if len(cfg.Serve.Origins) > 0 {
		fmt.Fprintf(out, "origins: %s\n", strings.Join(cfg.Serve.Origins, ", "))
	}
	if len(cfg.Labels) > 0 {
		fmt.Fprintf(out, "labels: %s\n", strings.Join(cfg.Labels, ", "))
	}

	return nil
}
