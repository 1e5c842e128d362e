// Package config resolves the default game version, language and logging
// settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/charset"
	"github.com/provide-io/boxnames/go/boxnames/pkg/logging"
)

// Environment variables
const (
	EnvVersion  = "BOXNAMES_VERSION"
	EnvLanguage = "BOXNAMES_LANGUAGE"
	EnvLogLevel = "BOXNAMES_LOG_LEVEL"
	EnvJSONLog  = "BOXNAMES_JSON_LOG"
)

// Defaults
const (
	DefaultVersion  = charset.Emerald
	DefaultLanguage = charset.English
)

// Config is the resolved startup configuration.
type Config struct {
	Version  charset.Version
	Language charset.Language
	LogLevel string
	JSONLog  bool
}

// Load reads the given .env files (".env" when none are given; a missing
// file is not an error) and resolves the configuration from the
// environment. Variables already set in the environment win over the files.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := Config{
		Version:  DefaultVersion,
		Language: DefaultLanguage,
		LogLevel: logging.GetLogLevel(),
		JSONLog:  os.Getenv(EnvJSONLog) == "1",
	}

	if s := os.Getenv(EnvVersion); s != "" {
		v, err := charset.ParseVersion(s)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvVersion, err)
		}
		cfg.Version = v
	}
	if s := os.Getenv(EnvLanguage); s != "" {
		l, err := charset.ParseLanguage(s)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLanguage, err)
		}
		cfg.Language = l
	}
	return cfg, nil
}
