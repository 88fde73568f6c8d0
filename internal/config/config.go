package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/alexanderramin/quorum/internal/app"
	"github.com/joho/godotenv"
)

// Collaborator names an external lookup the suggestion engine depends on.
type Collaborator string

const (
	CollaboratorDirectory Collaborator = "directory"
	CollaboratorCalendar  Collaborator = "calendar"
)

// Config holds runtime settings for the quorum CLI.
type Config struct {
	DBPath          string
	Workers         int
	MaxSuggestions  int
	PersonCacheSize int
	LogUseCases     bool
	Location        *time.Location

	// LookupTimeoutMs bounds each directory or calendar call. Per-collaborator
	// entries override it when > 0.
	LookupTimeoutMs int
	Timeouts        map[Collaborator]int
}

// DefaultConfig returns a Config with sensible defaults. The database path is
// left empty and resolved by Load.
func DefaultConfig() Config {
	return Config{
		Workers:         runtime.NumCPU(),
		MaxSuggestions:  app.DefaultMaxSuggestions,
		PersonCacheSize: 256,
		Location:        time.Local,
		LookupTimeoutMs: 2000,
		Timeouts:        map[Collaborator]int{},
	}
}

// Load reads configuration from the environment, then from any of the given
// dotenv files that exist. Real environment variables win over file values.
// Invalid values are ignored and the default is kept.
func Load(dotenvPaths ...string) (Config, error) {
	fileEnv := map[string]string{}
	for _, path := range dotenvPaths {
		values, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
		for k, v := range values {
			if _, ok := fileEnv[k]; !ok {
				fileEnv[k] = v
			}
		}
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return fileEnv[key]
	}

	cfg := DefaultConfig()
	apply(&cfg, lookup)

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".quorum", "quorum.db")
	}
	return cfg, nil
}

func apply(cfg *Config, lookup func(string) string) {
	if v := lookup("QUORUM_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := lookup("QUORUM_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}
	if v := lookup("QUORUM_MAX_SUGGESTIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxSuggestions = min(n, app.DefaultMaxSuggestions)
		}
	}
	if v := lookup("QUORUM_PERSON_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.PersonCacheSize = n
		}
	}
	if v := lookup("QUORUM_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := lookup("QUORUM_TZ"); v != "" {
		if loc, err := time.LoadLocation(v); err == nil {
			cfg.Location = loc
		}
	}
	if v := lookup("QUORUM_LOOKUP_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LookupTimeoutMs = n
		}
	}

	applyTimeoutEnv(cfg, lookup, CollaboratorDirectory, "QUORUM_DIRECTORY_TIMEOUT_MS")
	applyTimeoutEnv(cfg, lookup, CollaboratorCalendar, "QUORUM_CALENDAR_TIMEOUT_MS")
}

// Timeout returns the effective timeout for a collaborator.
func (c Config) Timeout(who Collaborator) time.Duration {
	if ms, ok := c.Timeouts[who]; ok && ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return time.Duration(c.LookupTimeoutMs) * time.Millisecond
}

func applyTimeoutEnv(cfg *Config, lookup func(string) string, who Collaborator, envName string) {
	v := lookup(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	cfg.Timeouts[who] = n
}
