package cobraconfig

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMergeInto_Precedence verifies the merge contract end to end: keys
// present in the CLI tree overwrite the lower layer, keys absent leave the
// lower layer untouched.
func TestMergeInto_Precedence(t *testing.T) {
	v := viper.New()

	// Lower-precedence layer, standing in for a config file.
	require.NoError(t, v.MergeConfigMap(map[string]any{
		"format": "text",
		"serve": map[string]any{
			"host": "localhost",
			"port": 8080,
		},
	}))

	// CLI layer: the user typed a format and a serve flag, nothing else.
	inv := fakeInvocation{
		flags: []Flag{
			fakeFlag{name: "format", kind: FlagSingle, explicit: true, value: "json"},
		},
		subName: "serve",
		sub: fakeInvocation{flags: []Flag{
			fakeFlag{name: "watch", kind: FlagBool, explicit: true, value: "true"},
		}},
	}
	require.NoError(t, MergeInto(v, New(inv)))

	assert.Equal(t, "json", v.GetString("format"), "explicit flag must win")
	assert.True(t, v.GetBool("serve.watch"))
	assert.Equal(t, "localhost", v.GetString("serve.host"), "absent flag must not mask the file layer")
	assert.Equal(t, 8080, v.GetInt("serve.port"))
}

// TestMergeInto_BeatsEnvironment pins the layer choice: the command-line
// source must land above viper's environment layer, so an explicitly typed
// flag wins even when a matching variable is set.
func TestMergeInto_BeatsEnvironment(t *testing.T) {
	t.Setenv("DEMO_FORMAT", "from-env")

	v := viper.New()
	v.SetDefault("format", "text")
	v.SetEnvPrefix("DEMO")
	v.AutomaticEnv()

	require.Equal(t, "from-env", v.GetString("format"), "sanity: env layer is active")

	inv := fakeInvocation{flags: []Flag{
		fakeFlag{name: "format", kind: FlagSingle, explicit: true, value: "json"},
	}}
	require.NoError(t, MergeInto(v, New(inv)))

	assert.Equal(t, "json", v.GetString("format"), "explicit flag must beat the environment")
}

// TestMergeInto_EmptySource verifies that an empty command line is a no-op
// layer.
func TestMergeInto_EmptySource(t *testing.T) {
	v := viper.New()
	require.NoError(t, v.MergeConfigMap(map[string]any{"format": "text"}))

	require.NoError(t, MergeInto(v, New(fakeInvocation{})))

	assert.Equal(t, "text", v.GetString("format"))
}

// TestMergeInto_TypedUnmarshal verifies the deferred-coercion contract: the
// tree carries raw string tokens and viper's unmarshal step interprets them
// against the destination field types.
func TestMergeInto_TypedUnmarshal(t *testing.T) {
	type ServeConfig struct {
		Port  int  `mapstructure:"port"`
		Watch bool `mapstructure:"watch"`
	}
	type Config struct {
		Format    string      `mapstructure:"format"`
		Verbosity int         `mapstructure:"verbosity"`
		Serve     ServeConfig `mapstructure:"serve"`
	}

	inv := fakeInvocation{
		flags: []Flag{
			fakeFlag{name: "format", kind: FlagSingle, explicit: true, value: "json"},
			fakeFlag{name: "verbosity", kind: FlagCount, explicit: true, count: 2},
		},
		subName: "serve",
		sub: fakeInvocation{flags: []Flag{
			// Raw token: the tree never parses this, the unmarshal does.
			fakeFlag{name: "port", kind: FlagSingle, explicit: true, value: "9000"},
			fakeFlag{name: "watch", kind: FlagBool, explicit: true, value: "true"},
		}},
	}

	v := viper.New()
	require.NoError(t, MergeInto(v, New(inv)))

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 2, cfg.Verbosity)
	assert.Equal(t, 9000, cfg.Serve.Port, "string token must coerce at unmarshal time")
	assert.True(t, cfg.Serve.Watch)
}
