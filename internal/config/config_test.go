package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"ADDR", "DB_URL", "OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL", "AI_TIMEOUT", "PLAN_REGEN_SCHEDULE", "MIGRATIONS_DIR"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != DefaultAddr || cfg.OpenAIModel != DefaultOpenAIModel || cfg.AITimeout != DefaultAITimeout {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.PlanRegenSchedule != DefaultRegenSchedule || cfg.MigrationsDir != DefaultMigrationsDir {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ADDR", ":8080")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("AI_TIMEOUT", "3s")
	t.Setenv("PLAN_REGEN_SCHEDULE", "off")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.OpenAIModel != "gpt-4o" || cfg.AITimeout != 3*time.Second {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.PlanRegenSchedule != "" {
		t.Errorf("schedule = %q, want disabled", cfg.PlanRegenSchedule)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AI_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid AI_TIMEOUT")
	}
}
