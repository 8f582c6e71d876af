// Package config loads runtime configuration for the jobboard CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables JOBBOARD_*, optionally seeded from a dotenv file
//     selected via -e or -env (".env" is tried when the flag is absent).
//  3. Optional JSON file (see parseJson) selected via -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the API
//	-k string   API key
//	-s string   path to the local credential store
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_url": "http://localhost:3000",
//	  "api_key": "secret",
//	  "store_path": "jobboard.db",
//	  "log_level": "info",
//	  "log_backend": "zap"
//	}
package config
