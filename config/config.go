package config

import (
	"fmt"
	"strings"
	"time"

	"conquest/agent"
	"conquest/meta"

	"github.com/spf13/viper"
)

// Config controls a batch of local matches.
type Config struct {
	Matches   int           `mapstructure:"matches"`
	Turns     int           `mapstructure:"turns"`
	TurnTime  time.Duration `mapstructure:"turn_time"`
	Seed      uint64        `mapstructure:"seed"`
	MapFile   string        `mapstructure:"map_file"` // Empty for the default board
	Policies  []string      `mapstructure:"policies"` // One per player
	LogLevel  string        `mapstructure:"log_level"`
	OutputDir string        `mapstructure:"output_dir"`
}

// Load reads the configuration from path, if any, then from CONQUEST_* environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("matches", 1)
	v.SetDefault("turns", meta.MAX_TURNS)
	v.SetDefault("turn_time", meta.TurnTime)
	v.SetDefault("seed", meta.DefaultSeed)
	v.SetDefault("map_file", "")
	v.SetDefault("policies", []string{agent.BaselinePolicyName, agent.GreedyPolicyName})
	v.SetDefault("log_level", "info")
	v.SetDefault("output_dir", "experiments")

	v.SetEnvPrefix("conquest")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations no match can be played with.
func (c *Config) Validate() error {
	if c.Matches <= 0 {
		return fmt.Errorf("matches must be positive, got %d", c.Matches)
	}
	if c.Turns <= 0 {
		return fmt.Errorf("turns must be positive, got %d", c.Turns)
	}
	if c.TurnTime <= 0 {
		return fmt.Errorf("turn_time must be positive, got %s", c.TurnTime)
	}
	if len(c.Policies) != 2 {
		return fmt.Errorf("need one policy per player, got %d", len(c.Policies))
	}
	for _, name := range c.Policies {
		if _, err := agent.PolicyByName(name, c.Seed); err != nil {
			return err
		}
	}
	return nil
}
