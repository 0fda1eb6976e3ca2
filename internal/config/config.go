package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme     string `mapstructure:"theme"`
	AltScreen bool   `mapstructure:"alt_screen"`
	Mouse     bool   `mapstructure:"mouse"`
}

// LogConfig selects where logs go. An empty File discards them.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and env. Env var overrides use prefix COUNTER_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("COUNTER_CONFIG")
	search := true
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "counter"))
		v.SetConfigName("config")
	} else {
		// no $XDG_CONFIG_HOME or $HOME: defaults and env only
		search = false
	}

	v.SetEnvPrefix("COUNTER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if search {
		if err := v.ReadInConfig(); err != nil {
			// a missing default file is fine; an explicit or broken one is not
			var notFound viper.ConfigFileNotFoundError
			if cfgPath != "" || !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
