package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/jobboard/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variables recognised by parseEnv.
const (
	EnvAPIURL     = "JOBBOARD_API_URL"
	EnvAPIKey     = "JOBBOARD_API_KEY"
	EnvStorePath  = "JOBBOARD_STORE_PATH"
	EnvLogLevel   = "JOBBOARD_LOG_LEVEL"
	EnvLogBackend = "JOBBOARD_LOG_BACKEND"
)

const defaultEnvFile = ".env"

// parseEnv loads a dotenv file into the process environment and then copies
// any non-empty JOBBOARD_* variables into cfg.
//
// The file comes from -e/-env; without the flag ".env" is tried and silently
// skipped when missing. An explicitly named file that cannot be loaded panics,
// like the JSON loader does. Variables already set in the environment are not
// overridden by the file.
func parseEnv(cfg *Config) {
	path := flagx.EnvFileFlags()
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	overlay := map[string]*string{
		EnvAPIURL:     &cfg.APIURL,
		EnvAPIKey:     &cfg.APIKey,
		EnvStorePath:  &cfg.StorePath,
		EnvLogLevel:   &cfg.LogLevel,
		EnvLogBackend: &cfg.LogBackend,
	}
	for name, dst := range overlay {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*dst = v
		}
	}
}
