// Package config loads browscap's runtime configuration from the
// environment, optionally seeded from a ".env" file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the CLI needs that isn't passed as a positional
// argument.
type Config struct {
	// IndexDir is the directory a published index lives in (and the
	// directory convert stages a new build into before publishing).
	IndexDir string

	// LibsqlURL and LibsqlAuthToken, when LibsqlURL is non-empty, select the
	// remote libsqlkv backend instead of the local sqlitekv file under
	// IndexDir.
	LibsqlURL       string
	LibsqlAuthToken string

	// BuildLogPath is the build ledger's sqlite file, defaulting to a file
	// inside IndexDir.
	BuildLogPath string

	// WALCheckpointMB is the BROWSCAP_WAL_CHECKPOINT_MB setting, in
	// megabytes. Load parses and validates it, but sqlitekv.Open does not
	// take it, so it has no effect on WAL checkpointing.
	WALCheckpointMB int

	// Debug enables verbose GORM/SQL logging.
	Debug bool
}

const (
	envIndexDir        = "BROWSCAP_INDEX_DIR"
	envLibsqlURL       = "BROWSCAP_LIBSQL_URL"
	envLibsqlAuthToken = "BROWSCAP_LIBSQL_AUTH_TOKEN"
	envBuildLogPath    = "BROWSCAP_BUILD_LOG"
	envWALCheckpointMB = "BROWSCAP_WAL_CHECKPOINT_MB"
	envDebug           = "BROWSCAP_DEBUG"

	defaultIndexDir        = "./browscap-index"
	defaultWALCheckpointMB = 64
)

// Load reads configuration from the environment. If a ".env" file exists in
// the working directory it is loaded first via godotenv, without
// overwriting variables already set in the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := &Config{
		IndexDir:        getEnvDefault(envIndexDir, defaultIndexDir),
		LibsqlURL:       os.Getenv(envLibsqlURL),
		LibsqlAuthToken: os.Getenv(envLibsqlAuthToken),
		WALCheckpointMB: defaultWALCheckpointMB,
	}
	cfg.BuildLogPath = getEnvDefault(envBuildLogPath, cfg.IndexDir+"/build.db")

	if v := os.Getenv(envWALCheckpointMB); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config: %s=%q: %w", envWALCheckpointMB, v, err)
		}
		cfg.WALCheckpointMB = n
	}

	if v := os.Getenv(envDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("config: %s=%q: %w", envDebug, v, err)
		}
		cfg.Debug = b
	}

	return cfg, nil
}

// UsesRemoteKV reports whether the configuration points at a libsql backend
// rather than a local sqlitekv file.
func (c *Config) UsesRemoteKV() bool {
	return c.LibsqlURL != ""
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
