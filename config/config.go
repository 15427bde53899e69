// Package config loads generator settings with viper.
//
// Settings come from boardgen.toml, searched in the working directory and
// in /etc/boardgen, overridden by BOARDGEN_* environment variables (dots
// become underscores, so log.level is BOARDGEN_LOG_LEVEL) and finally by
// command line flags bound onto the same viper instance.
//
//	[output]
//	root    = "out"
//	client  = "client"
//	server  = "server"
//	project = "project"
//
//	templates = "templates"
//	backends  = ["client", "sdk", "xps"]
//
//	[log]
//	level       = "info"
//	development = false
package config

import (
	stderrors "errors"
	"path"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wippyai/boardgen/backend"
	"github.com/wippyai/boardgen/backend/client"
	"github.com/wippyai/boardgen/backend/sdk"
	"github.com/wippyai/boardgen/backend/xps"
	"github.com/wippyai/boardgen/errors"
)

// Name is the configuration file name without extension.
const Name = "boardgen"

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "BOARDGEN"

// Keys understood by Load.
const (
	KeyOutputRoot     = "output.root"
	KeyOutputClient   = "output.client"
	KeyOutputServer   = "output.server"
	KeyOutputProject  = "output.project"
	KeyTemplates      = "templates"
	KeyBackends       = "backends"
	KeyLogLevel       = "log.level"
	KeyLogDevelopment = "log.development"
)

// Known lists the backends that can be selected, in run order.
var Known = []string{client.Name, sdk.Name, xps.Name}

// Config is the resolved generator configuration.
type Config struct {
	Output    Output   `mapstructure:"output"`
	Templates string   `mapstructure:"templates"`
	Backends  []string `mapstructure:"backends"`
	Log       Log      `mapstructure:"log"`
}

// Output holds the output root and each backend's directory below it.
type Output struct {
	Root    string `mapstructure:"root"`
	Client  string `mapstructure:"client"`
	Server  string `mapstructure:"server"`
	Project string `mapstructure:"project"`
}

// Log configures the zap logger built by Config.Logger.
type Log struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// New returns a viper instance with defaults, search paths and
// environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyOutputRoot, ".")
	v.SetDefault(KeyOutputClient, "client")
	v.SetDefault(KeyOutputServer, "server")
	v.SetDefault(KeyOutputProject, "project")
	v.SetDefault(KeyTemplates, "templates")
	v.SetDefault(KeyBackends, Known)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogDevelopment, false)

	v.SetConfigName(Name)
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/" + Name)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration into a Config. An explicit file must exist;
// a missing file on the search path leaves the defaults in place.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !stderrors.As(err, &notFound) {
			return nil, errors.New(errors.PhaseConfig, errors.KindConfiguration).
				Cause(err).
				Detail("read configuration").
				Build()
		}
	}
	if used := v.ConfigFileUsed(); used != "" {
		Logger().Debug("configuration loaded", zap.String("file", used))
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindConfiguration).
			Cause(err).
			Detail("decode configuration").
			Build()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the backend selection.
func (c *Config) Validate() error {
	if len(c.Backends) == 0 {
		return errors.New(errors.PhaseConfig, errors.KindConfiguration).
			Path(KeyBackends).
			Detail("no backend selected").
			Build()
	}
	for _, name := range c.Backends {
		if !slices.Contains(Known, name) {
			return errors.New(errors.PhaseConfig, errors.KindConfiguration).
				Path(KeyBackends).
				Detail("unknown backend %q, want one of %s", name, strings.Join(Known, ", ")).
				Build()
		}
	}
	return nil
}

// Selected builds the configured backends in the order they were listed.
// Backend directories are relative to the output root.
func (c *Config) Selected() []backend.Backend {
	var out []backend.Backend
	for _, name := range c.Backends {
		switch name {
		case client.Name:
			out = append(out, client.New(client.Options{Dir: c.Output.Client}))
		case sdk.Name:
			out = append(out, sdk.New(sdk.Options{
				Dir:       c.Output.Server,
				Templates: path.Join(c.Templates, "server"),
			}))
		case xps.Name:
			out = append(out, xps.New(xps.Options{
				Dir:       c.Output.Project,
				Templates: path.Join(c.Templates, "project"),
			}))
		}
	}
	return out
}
