package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds renderer settings.
type Config struct {
	Log    LogConfig
	UI     UIConfig
	Listen ListenConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen bool
	MaxDepth  int
}

// ListenConfig holds the default producer socket.
type ListenConfig struct {
	Addr string
}

// loadConfig reads configuration from file and env. Env var overrides
// use prefix A2UI_.
func loadConfig() (Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "warn")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.max_depth", 32)
	v.SetDefault("listen.addr", "127.0.0.1:8642")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("A2UI_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "a2ui"))
		v.SetConfigName("render")
	}

	v.SetEnvPrefix("A2UI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
