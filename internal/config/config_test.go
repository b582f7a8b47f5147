package config

import "testing"

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("expected default driver sqlite, got %s", cfg.DBDriver)
	}
	if !cfg.EnableLocalAuth {
		t.Fatal("local auth defaults on")
	}
	if len(cfg.QuizOverrides) != 0 {
		t.Fatalf("expected no overrides, got %v", cfg.QuizOverrides)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("ENABLE_LOCAL_AUTH", "false")
	t.Setenv("QUIZ_ID_OVERRIDES", "redes=quiz-1, mates = quiz-2,malformed")

	cfg := FromEnv()
	if cfg.HTTPAddr != ":9999" {
		t.Fatalf("expected :9999, got %s", cfg.HTTPAddr)
	}
	if cfg.EnableLocalAuth {
		t.Fatal("expected local auth disabled")
	}
	if cfg.QuizOverrides["redes"] != "quiz-1" || cfg.QuizOverrides["mates"] != "quiz-2" {
		t.Fatalf("unexpected overrides: %v", cfg.QuizOverrides)
	}
	if _, ok := cfg.QuizOverrides["malformed"]; ok {
		t.Fatal("malformed pair must be skipped")
	}
}
