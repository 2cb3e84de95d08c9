package config

import (
	"encoding/json"
	"os"

	"github.com/aadarshprajapati/docuchat-cli/internal/flagx"
	"github.com/aadarshprajapati/docuchat-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can specify the timeout either as a string like
// "15s" or as integer nanoseconds.
type JsonConfig struct {
	GatewayURL     string         `json:"gateway_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	TokenFile      string         `json:"token_file"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. With no such flag it does nothing. Only fields
// present in the file override the current values. Read or unmarshal errors
// panic; startup configuration problems should be loud.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.GatewayURL != "" {
		cfg.GatewayURL = jc.GatewayURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
}
