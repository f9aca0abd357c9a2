package config

import "testing"

// Env mutation via t.Setenv means these tests cannot be parallel.

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ServerPort != "8080" {
		t.Errorf("port = %q, want 8080", cfg.ServerPort)
	}
	if cfg.StoreBackend != BackendFile {
		t.Errorf("backend = %q, want file", cfg.StoreBackend)
	}
	if cfg.CategorizeProvider != ProviderLocal {
		t.Errorf("provider = %q, want local", cfg.CategorizeProvider)
	}
	if cfg.RatelimitRate != "20-S" {
		t.Errorf("rate = %q, want 20-S", cfg.RatelimitRate)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_BACKEND", BackendMemory)
	t.Setenv("SERVER_DEBUG_MODE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ServerPort != "9090" || cfg.StoreBackend != BackendMemory || !cfg.ServerDebugMode {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "unknown backend",
			env:  map[string]string{"STORE_BACKEND": "tape"},
		},
		{
			name: "postgres without url",
			env:  map[string]string{"STORE_BACKEND": BackendPostgres},
		},
		{
			name: "remote provider without url",
			env:  map[string]string{"CATEGORIZE_PROVIDER": ProviderRemote},
		},
		{
			name: "openai provider without key",
			env:  map[string]string{"CATEGORIZE_PROVIDER": ProviderOpenAI},
		},
		{
			name: "unknown provider",
			env:  map[string]string{"CATEGORIZE_PROVIDER": "oracle"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadPostgresWithURL(t *testing.T) {
	t.Setenv("STORE_BACKEND", BackendPostgres)
	t.Setenv("DATABASE_URL", "postgres://localhost/catalog")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DatabaseURL == "" {
		t.Error("database url lost")
	}
}
