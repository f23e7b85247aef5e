package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BotToken  string `envconfig:"BOT_TOKEN"`
	ChannelID int64  `envconfig:"CHANNEL"`
	TempDir   string `envconfig:"TEMP_DIR" default:"./temp"`
	BotDebug  bool   `envconfig:"BOT_DEBUG" default:"false"`
}

// Load reads the environment into a Config. A .env file is picked up when
// present, real environment variables take precedence either way.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is not set")
	}
	if cfg.ChannelID == 0 {
		return nil, fmt.Errorf("CHANNEL is not set")
	}
	return &cfg, nil
}
