package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config carries the process-level knobs. Everything else (session key,
// roster, color tables) is fixed reference data.
type Config struct {
	WebServerAddress string        `env:"WEBSERVER_ADDRESS" envDefault:":8000"`
	OpenF1BaseURL    string        `env:"OPENF1_BASE_URL"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5m"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parsing environment")
	}
	return cfg, nil
}
