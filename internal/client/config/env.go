package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first if present; a missing file is
// not an error. Recognized variables:
//
//	DOCUCHAT_GATEWAY_URL  — base URL of the gateway
//	DOCUCHAT_TIMEOUT      — request timeout as a Go duration ("15s")
//	DOCUCHAT_TOKEN_FILE   — path of the persisted token file
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("DOCUCHAT_GATEWAY_URL"); v != "" {
		cfg.GatewayURL = v
	}
	if v := os.Getenv("DOCUCHAT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("DOCUCHAT_TOKEN_FILE"); v != "" {
		cfg.TokenFile = v
	}
}
