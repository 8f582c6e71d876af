package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("variables overlay defaults", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv(EnvAPIURL, "http://env-api:9000")
		t.Setenv(EnvLogBackend, "zap")
		t.Setenv(EnvAPIKey, "")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "http://env-api:9000", cfg.APIURL)
		assert.Equal(t, "zap", cfg.LogBackend)
		assert.Empty(t, cfg.APIKey, "empty variables are ignored")
		assert.Equal(t, "jobboard.db", cfg.StorePath)
	})

	t.Run("dotenv file from -env", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("JOBBOARD_API_KEY=from-file\nJOBBOARD_STORE_PATH=/var/lib/jb.db\n"), 0o600))

		// godotenv.Load sets variables via os.Setenv; register cleanup first.
		t.Setenv(EnvAPIKey, "")
		t.Setenv(EnvStorePath, "")
		require.NoError(t, os.Unsetenv(EnvAPIKey))
		require.NoError(t, os.Unsetenv(EnvStorePath))

		os.Args = []string{"testbin", "-env", path}

		cfg := &Config{}
		parseEnv(cfg)

		assert.Equal(t, "from-file", cfg.APIKey)
		assert.Equal(t, "/var/lib/jb.db", cfg.StorePath)
	})

	t.Run("explicit missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-e", filepath.Join(t.TempDir(), "nope.env")}
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
