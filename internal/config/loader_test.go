package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/axolotl-dash/internal/storage"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded default = %+v\nwant %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
store:
  backend: sqlite
  sqlite_path: /tmp/board.db
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Store.Backend != "sqlite" || cfg.Store.SQLitePath != "/tmp/board.db" {
		t.Errorf("store section not applied: %+v", cfg.Store)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
	// Unset values keep their defaults
	if cfg.Store.Path != Default().Store.Path {
		t.Errorf("file path = %q, want default", cfg.Store.Path)
	}
	if cfg.Serve.IdleTimeout != 30*time.Minute {
		t.Errorf("idle timeout = %v, want 30m", cfg.Serve.IdleTimeout)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(bad, []byte("store: [not, a, map"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("Load() of invalid YAML should fail")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	dir := filepath.Join(home, ".axolotl")
	os.MkdirAll(dir, 0o755)
	os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("serve:\n  address: \":2222\"\n"), 0o644)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Serve.Address != ":2222" {
		t.Errorf("serve address = %q, want :2222", cfg.Serve.Address)
	}
}

func TestStorageOptions(t *testing.T) {
	cfg := Default()
	cfg.Store.Backend = "redis"
	cfg.Store.Redis.DB = 2

	opts := cfg.Store.StorageOptions()

	if opts.Backend != storage.BackendRedis {
		t.Errorf("backend = %q, want redis", opts.Backend)
	}
	if opts.Redis.Addr != "localhost:6379" || opts.Redis.DB != 2 || opts.Redis.Key != "axolotl:high_scores" {
		t.Errorf("redis options = %+v", opts.Redis)
	}
	if opts.Redis.Timeout != 3*time.Second {
		t.Errorf("redis timeout = %v, want 3s", opts.Redis.Timeout)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir on older toolchains).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
