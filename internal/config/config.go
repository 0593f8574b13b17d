package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr         string        `env:"ADDR" envDefault:":8080"`
	Debug        bool          `env:"DEBUG" envDefault:"false"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"60s"`

	// MaxRounds caps rounds per calculation or session. 0 disables the cap.
	MaxRounds int `env:"MAX_ROUNDS" envDefault:"100"`

	FetchRetries  int `env:"FETCH_RETRIES" envDefault:"3"`
	MaxFetchBytes int `env:"MAX_FETCH_BYTES" envDefault:"65536"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
