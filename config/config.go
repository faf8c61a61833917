package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

const DefaultAddr = "127.0.0.1:8080"

type Config struct {
	// Addr is the host:port the HTTP server binds to.
	Addr string
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment")
	}

	cfg := Config{Addr: DefaultAddr}
	if addr := os.Getenv("TASK_TRACKER_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	return cfg
}
