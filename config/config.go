// Package config loads process configuration from defaults, an optional
// config file, and CHESSMATE_* environment variables.
package config

import (
	"strings"

	"github.com/notnil/chess"
	"github.com/spf13/viper"
)

type Config struct {
	Depth          int    `mapstructure:"depth"`
	UseBook        bool   `mapstructure:"use_book"`
	PhaseThreshold int    `mapstructure:"phase_threshold"`
	Side           string `mapstructure:"side"`
	Bot            string `mapstructure:"bot"`
	TimeLimitMS    int    `mapstructure:"time_limit_ms"`
}

// Load reads configuration. path may be empty, in which case only defaults
// and the environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("depth", 3)
	v.SetDefault("use_book", true)
	v.SetDefault("phase_threshold", 24)
	v.SetDefault("side", "white")
	v.SetDefault("bot", "search")
	v.SetDefault("time_limit_ms", 0)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix("CHESSMATE")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SearchDepth clamps the configured depth to the supported 1-5 ply range.
func (c *Config) SearchDepth() int {
	if c.Depth < 1 {
		return 1
	}
	if c.Depth > 5 {
		return 5
	}
	return c.Depth
}

// HumanSide maps the configured side string to a color; anything that is not
// black means the human plays White.
func (c *Config) HumanSide() chess.Color {
	switch strings.ToLower(c.Side) {
	case "b", "black":
		return chess.Black
	default:
		return chess.White
	}
}
