package settings

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tidwall/jsonc"

	cobraconfig "github.com/p2p-org/cobra-config"
	"github.com/p2p-org/cobra-config/internal/model"
)

// envPrefix namespaces the demo's environment variables: the key
// "serve.port" maps to CONFIGDEMO_SERVE_PORT.
const envPrefix = "CONFIGDEMO"

// Load merges all configuration layers and returns the typed settings.
//
// cmd is the cobra command whose RunE is currently executing; its matched
// command chain becomes the highest-precedence layer. configPath names an
// optional configuration file (YAML, TOML, JSON, or JSONC); when empty the
// file layer is skipped entirely.
//
// Layer order, lowest to highest: defaults, file, environment, flags.
func Load(cmd *cobra.Command, configPath string) (*Settings, error) {
	v := viper.New()

	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	if configPath != "" {
		if err := readConfigFile(v, configPath); err != nil {
			return nil, err
		}
	}

	// Environment layer. AutomaticEnv resolves any key viper already
	// knows about (the defaults above register all of them) against
	// CONFIGDEMO_* variables at lookup time.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Command-line layer, merged last so explicit flags win. The
	// subcommand key records which command ran alongside its nested flags.
	src := cobraconfig.New(
		cobraconfig.FromCommand(cmd),
		cobraconfig.WithSubcommandKey("command"),
	)
	if err := cobraconfig.MergeInto(v, src); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigInvalid, "failed to merge command-line flags", err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigInvalid, "invalid configuration", err)
	}

	return &s, nil
}

// readConfigFile folds the file layer into v.
//
// Plain YAML/TOML/JSON files go straight through viper, which picks the
// parser from the file extension. JSONC files get their comments and
// trailing commas stripped with github.com/tidwall/jsonc first, then parse
// as ordinary JSON.
func readConfigFile(v *viper.Viper, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".jsonc") {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return model.WrapCLIError(
					model.ExitConfigNotFound,
					fmt.Sprintf("config file not found: %s", path),
					err,
				)
			}
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		v.SetConfigType("json")
		if err := v.ReadConfig(bytes.NewReader(jsonc.ToJSON(data))); err != nil {
			return model.WrapCLIError(
				model.ExitConfigInvalid,
				fmt.Sprintf("failed to parse config file %s", path),
				err,
			)
		}
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return model.WrapCLIError(
				model.ExitConfigNotFound,
				fmt.Sprintf("config file not found: %s", path),
				err,
			)
		}
		return model.WrapCLIError(
			model.ExitConfigInvalid,
			fmt.Sprintf("failed to parse config file %s", path),
			err,
		)
	}
	return nil
}
