// Package config loads server settings from defaults, an optional YAML file
// and the environment.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PORTFOLIO_VIEWS_IDLE_TTL.
const EnvPrefix = "PORTFOLIO"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Views   ViewsConfig   `mapstructure:"views"`
	Content ContentConfig `mapstructure:"content"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	// Mode is the gin mode: debug, release or test.
	Mode string `mapstructure:"mode"`
}

// ViewsConfig bounds how long an abandoned page keeps its view in memory
// and how many views may be live at once.
type ViewsConfig struct {
	IdleTTL       time.Duration `mapstructure:"idle_ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	MaxLive       int           `mapstructure:"max_live"`
}

type ContentConfig struct {
	// Path to a portfolio YAML file. Empty uses the embedded portfolio.
	Path string `mapstructure:"path"`
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// Load reads configuration. An empty path looks for config.yaml in the
// working directory and carries on with defaults if there is none.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The bare PORT variable is honoured the way most hosting platforms set it.
	if err := v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT"); err != nil {
		return nil, errors.Wrap(err, "failed to bind PORT")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config")
		}
		slog.Debug("no config file found, using defaults")
	} else {
		slog.Debug("using config file", "file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("views.idle_ttl", 30*time.Minute)
	v.SetDefault("views.sweep_interval", time.Minute)
	v.SetDefault("views.max_live", 1000)
	v.SetDefault("content.path", "")
}

func (c *Config) validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return errors.Errorf("invalid server.mode %q", c.Server.Mode)
	}
	if c.Server.Port == "" {
		return errors.New("server.port must not be empty")
	}
	if c.Views.IdleTTL <= 0 || c.Views.SweepInterval <= 0 {
		return errors.New("views.idle_ttl and views.sweep_interval must be positive")
	}
	if c.Views.MaxLive <= 0 {
		return errors.New("views.max_live must be positive")
	}
	return nil
}
