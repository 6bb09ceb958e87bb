// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env        string `envconfig:"ENV" default:"dev"`
	DataDir    string `envconfig:"DATA_DIR" default:"data"`
	ReceiptDir string `envconfig:"RECEIPT_DIR" default:"receipts"`
}

func Load() (Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("cinema", &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
