// Package config loads configuration structs from environment variables.
// A .env file in the working directory is loaded once, lazily, before the
// first parse; missing .env files are not an error.
package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParse is returned when environment variables cannot be parsed into the
// target struct (missing required variables, type mismatches).
var ErrParse = errors.New("failed to parse environment config")

var dotenvOnce sync.Once

// Load parses environment variables into cfg based on `env` struct tags.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// The .env file is a development convenience; absence is fine.
		_ = godotenv.Load()
	})

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParse, err)
	}
	return nil
}

// MustLoad is Load for configuration the process cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
