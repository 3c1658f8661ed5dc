package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected default read timeout 10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected default readiness timeout 10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Lists.VendorLimit != 50 {
		t.Errorf("expected default vendor limit 50, got %d", cfg.Lists.VendorLimit)
	}
	if cfg.Lists.DefaultLimit != 100 {
		t.Errorf("expected default list limit 100, got %d", cfg.Lists.DefaultLimit)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{
		HTTP:  HTTPConfig{Port: 9000},
		Lists: ListsConfig{VendorLimit: 25},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 9000 {
		t.Errorf("expected port 9000 preserved, got %d", cfg.HTTP.Port)
	}
	if cfg.Lists.VendorLimit != 25 {
		t.Errorf("expected vendor limit 25 preserved, got %d", cfg.Lists.VendorLimit)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  Config{HTTP: HTTPConfig{Port: 8000}},
		},
		{
			name: "valid with empty database url",
			cfg:  Config{HTTP: HTTPConfig{Port: 8000}, Database: DatabaseConfig{URL: ""}},
		},
		{
			name:    "port too large",
			cfg:     Config{HTTP: HTTPConfig{Port: 70000}},
			wantErr: true,
		},
		{
			name:    "port zero",
			cfg:     Config{HTTP: HTTPConfig{Port: 0}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TEST_CRM_PORT", "9090")
	os.Unsetenv("TEST_CRM_MISSING")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "set variable",
			input: "port: ${TEST_CRM_PORT}",
			want:  "port: 9090",
		},
		{
			name:  "unset variable becomes empty",
			input: "url: ${TEST_CRM_MISSING}",
			want:  "url: ",
		},
		{
			name:  "unset variable with default",
			input: "port: ${TEST_CRM_MISSING:-8000}",
			want:  "port: 8000",
		},
		{
			name:  "set variable ignores default",
			input: "port: ${TEST_CRM_PORT:-8000}",
			want:  "port: 9090",
		},
		{
			name:  "no variables",
			input: "level: info",
			want:  "level: info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(expandEnvVars([]byte(tt.input)))
			if got != tt.want {
				t.Errorf("expandEnvVars(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if env := GetEnv(); env != "local" {
		t.Errorf("expected default env local, got %q", env)
	}

	t.Setenv("ENV", "prod")
	if env := GetEnv(); env != "prod" {
		t.Errorf("expected env prod, got %q", env)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "config")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}

	content := []byte(`
http:
  port: ${TEST_CRM_LOAD_PORT:-8123}
database:
  url: ${TEST_CRM_LOAD_URL}
lists:
  vendor_default_limit: 20
`)
	if err := os.WriteFile(filepath.Join(cfgDir, "test.yaml"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	os.Unsetenv("TEST_CRM_LOAD_PORT")
	os.Unsetenv("TEST_CRM_LOAD_URL")

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTP.Port != 8123 {
		t.Errorf("expected port 8123, got %d", cfg.HTTP.Port)
	}
	if cfg.Database.URL != "" {
		t.Errorf("expected empty database url, got %q", cfg.Database.URL)
	}
	if cfg.Lists.VendorLimit != 20 {
		t.Errorf("expected vendor limit 20, got %d", cfg.Lists.VendorLimit)
	}
	if cfg.Lists.DefaultLimit != 100 {
		t.Errorf("expected default list limit 100, got %d", cfg.Lists.DefaultLimit)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	if _, err := Load("nonexistent"); err == nil {
		t.Error("expected error for missing config file")
	}
}
