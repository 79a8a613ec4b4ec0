package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config reads a key from .env / environment. Missing keys return "".
func Config(key string) string {
	loadOnce.Do(func() {
		// .env is optional, real deployments use the environment directly
		godotenv.Load()
	})
	return os.Getenv(key)
}

// ConfigOr reads a key and falls back to def when unset.
func ConfigOr(key, def string) string {
	if v := Config(key); v != "" {
		return v
	}
	return def
}
