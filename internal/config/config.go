// Package config reads server and tool settings from the environment, with
// an optional .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process-wide settings.
type Config struct {
	Addr  string
	DBURL string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	AITimeout     time.Duration

	// PlanRegenSchedule is a six-field cron spec (with seconds). Empty
	// disables the scheduler.
	PlanRegenSchedule string
	MigrationsDir     string
}

// Defaults.
const (
	DefaultAddr          = "localhost:3000"
	DefaultOpenAIBaseURL = "https://api.openai.com"
	DefaultOpenAIModel   = "gpt-4o-mini"
	DefaultAITimeout     = 15 * time.Second
	DefaultRegenSchedule = "0 0 4 * * 1"
	DefaultMigrationsDir = "db"
)

// Load reads .env when present and then the environment. Variables already
// set in the environment win over .env. A missing .env is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Addr:              getEnv("ADDR", DefaultAddr),
		DBURL:             os.Getenv("DB_URL"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", DefaultOpenAIBaseURL),
		OpenAIModel:       getEnv("OPENAI_MODEL", DefaultOpenAIModel),
		AITimeout:         DefaultAITimeout,
		PlanRegenSchedule: getEnv("PLAN_REGEN_SCHEDULE", DefaultRegenSchedule),
		MigrationsDir:     getEnv("MIGRATIONS_DIR", DefaultMigrationsDir),
	}
	if v := os.Getenv("PLAN_REGEN_SCHEDULE"); v == "off" {
		cfg.PlanRegenSchedule = ""
	}

	if v := os.Getenv("AI_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("AI_TIMEOUT must be a positive duration, got %q", v)
		}
		cfg.AITimeout = d
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
