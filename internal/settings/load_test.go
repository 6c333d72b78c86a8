package settings

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p2p-org/cobra-config/internal/model"
)

// runCommand executes a grammar mirroring the configdemo CLI with the given
// argv and returns the command that ran, ready to hand to Load. The grammar
// is rebuilt per call so flag state never leaks between tests.
func runCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	var invoked *cobra.Command
	capture := func(cmd *cobra.Command, _ []string) error {
		invoked = cmd
		return nil
	}

	root := &cobra.Command{
		Use:           "configdemo",
		RunE:          capture,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("format", "f", "text", "")
	root.PersistentFlags().CountP("verbosity", "v", "")
	root.PersistentFlags().StringSlice("label", nil, "")

	serve := &cobra.Command{Use: "serve", RunE: capture}
	serve.Flags().String("host", "localhost", "")
	serve.Flags().IntP("port", "p", 8080, "")
	serve.Flags().Bool("watch", false, "")
	serve.Flags().StringSlice("origin", nil, "")
	root.AddCommand(serve)

	root.SetArgs(args)
	require.NoError(t, root.Execute())
	require.NotNil(t, invoked)
	return invoked
}

// TestLoad_DefaultsOnly verifies that a bare invocation with no file and no
// environment yields exactly the built-in defaults.
func TestLoad_DefaultsOnly(t *testing.T) {
	cmd := runCommand(t)

	cfg, err := Load(cmd, "")
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, 0, cfg.Verbosity)
	assert.Empty(t, cfg.Labels)
	assert.Empty(t, cfg.Command)
	assert.Equal(t, "localhost", cfg.Serve.Host)
	assert.Equal(t, 8080, cfg.Serve.Port)
	assert.False(t, cfg.Serve.Watch)
}

// TestLoad_FileLayer verifies that a YAML config file overrides the
// defaults it names and leaves the rest untouched.
func TestLoad_FileLayer(t *testing.T) {
	cmd := runCommand(t)

	cfg, err := Load(cmd, filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, []string{"from-file"}, cfg.Labels)
	assert.Equal(t, "0.0.0.0", cfg.Serve.Host)
	assert.Equal(t, 9000, cfg.Serve.Port)
	assert.Equal(t, []string{"https://example.com"}, cfg.Serve.Origins)

	// Not in the file: stays at its default.
	assert.False(t, cfg.Serve.Watch)
}

// TestLoad_JSONCFile verifies that .jsonc files parse after comment and
// trailing-comma stripping.
func TestLoad_JSONCFile(t *testing.T) {
	cmd := runCommand(t)

	cfg, err := Load(cmd, filepath.Join("testdata", "demo.jsonc"))
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 9100, cfg.Serve.Port)
}

// TestLoad_EnvBeatsFile verifies the environment layer sits above the file
// layer.
func TestLoad_EnvBeatsFile(t *testing.T) {
	t.Setenv("CONFIGDEMO_SERVE_PORT", "9300")

	cmd := runCommand(t)

	cfg, err := Load(cmd, filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 9300, cfg.Serve.Port, "env must beat the file layer")
	assert.Equal(t, "0.0.0.0", cfg.Serve.Host, "file value must survive where env is silent")
}

// TestLoad_FlagsBeatEverything verifies that explicitly typed flags sit at
// the top of the precedence order, and that untyped flags do not mask the
// layers below.
func TestLoad_FlagsBeatEverything(t *testing.T) {
	t.Setenv("CONFIGDEMO_SERVE_PORT", "9300")
	t.Setenv("CONFIGDEMO_FORMAT", "json")

	cmd := runCommand(t, "serve", "-p", "7777")

	cfg, err := Load(cmd, filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Serve.Port, "typed flag must beat env and file")
	assert.Equal(t, "json", cfg.Format, "untyped flag must leave the env value visible")
	assert.Equal(t, "0.0.0.0", cfg.Serve.Host, "untyped flag must leave the file value visible")
	assert.Equal(t, "serve", cfg.Command, "the matched subcommand name is recorded")
}

// TestLoad_RepeatableFlag verifies multi-valued flags arrive in supply
// order.
func TestLoad_RepeatableFlag(t *testing.T) {
	cmd := runCommand(t, "--label", "b", "--label", "a", "serve", "--origin", "https://a", "--origin", "https://b")

	cfg, err := Load(cmd, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, cfg.Labels)
	assert.Equal(t, []string{"https://a", "https://b"}, cfg.Serve.Origins)
}

// TestLoad_VerbosityCount verifies that repeated -v flags land as an
// integer in the merged settings.
func TestLoad_VerbosityCount(t *testing.T) {
	cmd := runCommand(t, "-vvv")

	cfg, err := Load(cmd, "")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Verbosity)
}

// TestLoad_MissingFile verifies the not-found exit code surfaces for both
// the viper path and the jsonc path.
func TestLoad_MissingFile(t *testing.T) {
	for _, name := range []string{"nope.yaml", "nope.jsonc"} {
		cmd := runCommand(t)

		_, err := Load(cmd, filepath.Join("testdata", name))
		require.Error(t, err)

		var cliErr *model.CLIError
		require.True(t, errors.As(err, &cliErr), "expected a CLIError for %s", name)
		assert.Equal(t, model.ExitConfigNotFound, cliErr.Code)
	}
}

// TestLoad_InvalidFile verifies the parse-failure exit code.
func TestLoad_InvalidFile(t *testing.T) {
	cmd := runCommand(t)

	_, err := Load(cmd, filepath.Join("testdata", "invalid.yaml"))
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitConfigInvalid, cliErr.Code)
}
