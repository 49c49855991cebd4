// Package config reads degreeplan settings from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings.
type Config struct {
	APIURL           string
	DBPath           string // empty means ~/.degreeplan/session.db
	TimeoutMs        int    // semester-count generation deadline
	FetchTimeoutMs   int    // per catalog GET
	LogCalls         bool
	ReligionCourseID int
	PreviewAddr      string
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		APIURL:           "http://localhost:3000",
		TimeoutMs:        30000,
		FetchTimeoutMs:   10000,
		ReligionCourseID: domain.ReligionCourseID,
		PreviewAddr:      "127.0.0.1:8080",
	}
}

// Load reads an optional .env file (or the given files) and then the
// DEGREEPLAN_* variables, falling back to defaults for unset or invalid
// values. Variables already set in the environment win over .env entries.
func Load(envFiles ...string) Config {
	// A missing .env is normal.
	_ = godotenv.Load(envFiles...)

	cfg := DefaultConfig()
	cfg.APIURL = getEnv("DEGREEPLAN_API_URL", cfg.APIURL)
	cfg.DBPath = getEnv("DEGREEPLAN_DB", cfg.DBPath)
	cfg.TimeoutMs = getEnvPositiveInt("DEGREEPLAN_TIMEOUT_MS", cfg.TimeoutMs)
	cfg.FetchTimeoutMs = getEnvPositiveInt("DEGREEPLAN_FETCH_TIMEOUT_MS", cfg.FetchTimeoutMs)
	cfg.ReligionCourseID = getEnvPositiveInt("DEGREEPLAN_RELIGION_COURSE_ID", cfg.ReligionCourseID)
	cfg.PreviewAddr = getEnv("DEGREEPLAN_PREVIEW_ADDR", cfg.PreviewAddr)
	if v := os.Getenv("DEGREEPLAN_LOG"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	return cfg
}

// SemestersTimeout is TimeoutMs as a duration.
func (c Config) SemestersTimeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// FetchTimeout is FetchTimeoutMs as a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutMs) * time.Millisecond
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvPositiveInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
