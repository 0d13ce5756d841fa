package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: 8080},
		Records: RecordsConfig{
			Driver: "sqlite",
			DSN:    "expertmatch.db",
		},
		Index: IndexConfig{
			Addrs: []string{"localhost:6379"},
		},
		Embedding: EmbeddingConfig{
			Provider: "hash",
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingIndexAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Index.Addrs = nil

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing index addrs")
	}
}

func TestValidate_UnknownRecordsDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Records.Driver = "mysql"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown records driver")
	}

	expected := `records.driver must be "sqlite" or "postgres", got "mysql"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_UnknownEmbeddingProvider(t *testing.T) {
	cfg := validConfig()
	cfg.Embedding.Provider = "cohere"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown embedding provider")
	}
}

func TestValidate_OpenAIRequiresModel(t *testing.T) {
	cfg := validConfig()
	cfg.Embedding.Provider = "openai"
	cfg.Embedding.Model = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for openai provider without model")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Records.Driver != "sqlite" {
		t.Errorf("expected records driver sqlite, got %q", cfg.Records.Driver)
	}
	if cfg.Records.DSN != "expertmatch.db" {
		t.Errorf("expected default sqlite dsn, got %q", cfg.Records.DSN)
	}
	if cfg.Index.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Index.ReadinessTimeout)
	}
	if cfg.Index.KeyPrefix != "expertmatch:" {
		t.Errorf("expected KeyPrefix=expertmatch:, got %q", cfg.Index.KeyPrefix)
	}
	if cfg.Embedding.Provider != "hash" {
		t.Errorf("expected embedding provider hash, got %q", cfg.Embedding.Provider)
	}
	if cfg.Embedding.Dimensions != 256 {
		t.Errorf("expected Dimensions=256, got %d", cfg.Embedding.Dimensions)
	}
	if cfg.Matching.TopK != 10 {
		t.Errorf("expected TopK=10, got %d", cfg.Matching.TopK)
	}
	if cfg.Reindex.Workers != 4 {
		t.Errorf("expected Workers=4, got %d", cfg.Reindex.Workers)
	}
	if cfg.Reindex.MaxAttempts != 3 {
		t.Errorf("expected MaxAttempts=3, got %d", cfg.Reindex.MaxAttempts)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("EM_TEST_PORT", "9090")

	in := []byte("port: ${EM_TEST_PORT}\npassword: ${EM_TEST_MISSING:-secret}\n")
	out := string(expandEnvVars(in))

	expected := "port: 9090\npassword: secret\n"
	if out != expected {
		t.Errorf("expanded config:\ngot:  %q\nwant: %q", out, expected)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	configDir := filepath.Join(dir, "config")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatal(err)
	}

	yaml := `
http:
  port: 8080
index:
  addrs:
    - localhost:6379
`
	if err := os.WriteFile(filepath.Join(configDir, "test.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.HTTP.Port)
	}
	if cfg.Matching.TopK != 10 {
		t.Errorf("defaults not applied, TopK = %d", cfg.Matching.TopK)
	}
}
