package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/jobboard/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty fields
// leave the corresponding Config value untouched.
type JsonConfig struct {
	APIURL     string `json:"api_url"`
	APIKey     string `json:"api_key"`
	StorePath  string `json:"store_path"`
	LogLevel   string `json:"log_level"`
	LogBackend string `json:"log_backend"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without the flag nothing happens. Read or unmarshal errors
// panic (caller should recover if desired).
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

	setIfNotEmpty(&cfg.APIURL, jc.APIURL)
	setIfNotEmpty(&cfg.APIKey, jc.APIKey)
	setIfNotEmpty(&cfg.StorePath, jc.StorePath)
	setIfNotEmpty(&cfg.LogLevel, jc.LogLevel)
	setIfNotEmpty(&cfg.LogBackend, jc.LogBackend)
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
