package main

import (
	"log/slog"

	"github.com/joho/godotenv"

	"etiketka/config"
	"etiketka/logging"
)

// commandContext lazily loads the configuration and logger once and
// shares them across subcommands.
type commandContext struct {
	configFlag *string

	cfg *config.Config
	log *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// ensure loads .env, the config file and the logger on first use.
func (c *commandContext) ensure() (config.Config, *slog.Logger, error) {
	if c.cfg != nil {
		return *c.cfg, c.log, nil
	}

	_ = godotenv.Load() // optional .env with DATABASE_DSN

	cfg, err := config.Load(*c.configFlag)
	if err != nil {
		return config.Config{}, nil, err
	}
	log, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return config.Config{}, nil, err
	}

	c.cfg = &cfg
	c.log = log
	return cfg, log, nil
}
