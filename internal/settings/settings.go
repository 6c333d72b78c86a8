// Package settings assembles the configdemo configuration from its layers:
// built-in defaults, an optional configuration file, CONFIGDEMO_* environment
// variables, and finally the command-line flags of the invocation that is
// currently running.
//
// Viper is the merge engine. Each layer is folded in lowest-precedence
// first; the command-line layer is produced by the cobraconfig library and
// merged last, so only the flags the user explicitly typed override the
// layers below.
package settings

import "gopkg.in/yaml.v3"

// Serve holds the settings for the serve subcommand. The mapstructure tags
// are the merge keys: they match the serve command's flag names, the nested
// "serve" table of a config file, and the CONFIGDEMO_SERVE_* variables.
type Serve struct {
	// Host is the interface to bind.
	Host string `mapstructure:"host" yaml:"host" json:"host"`

	// Port is the TCP port to listen on.
	Port int `mapstructure:"port" yaml:"port" json:"port"`

	// Watch enables reloading when watched inputs change.
	Watch bool `mapstructure:"watch" yaml:"watch" json:"watch"`

	// Origins lists the allowed request origins, in the order supplied.
	Origins []string `mapstructure:"origin" yaml:"origin" json:"origin"`
}

// Settings is the fully merged configdemo configuration.
type Settings struct {
	// Format selects the output format (text, json, yaml).
	Format string `mapstructure:"format" yaml:"format" json:"format"`

	// Verbosity is the stderr trace level, raised with repeated -v flags.
	Verbosity int `mapstructure:"verbosity" yaml:"verbosity" json:"verbosity"`

	// Labels are free-form labels attached to every run.
	Labels []string `mapstructure:"label" yaml:"label" json:"label"`

	// Command is the name of the subcommand that ran, recorded by the
	// command-line layer. Empty when the root command ran directly.
	Command string `mapstructure:"command" yaml:"command,omitempty" json:"command,omitempty"`

	// Serve holds the serve subcommand settings.
	Serve Serve `mapstructure:"serve" yaml:"serve" json:"serve"`
}

// YAML renders the settings as YAML, the shape the root command prints so
// users can inspect the effective merged configuration.
func (s *Settings) YAML() (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// defaults is the lowest-precedence layer. Every key the demo understands
// appears here; besides providing fallback values, registering the keys is
// what lets viper surface matching environment variables during unmarshal.
func defaults() map[string]any {
	return map[string]any{
		"format":       "text",
		"verbosity":    0,
		"label":        []string{},
		"command":      "",
		"serve.host":   "localhost",
		"serve.port":   8080,
		"serve.watch":  false,
		"serve.origin": []string{},
	}
}
