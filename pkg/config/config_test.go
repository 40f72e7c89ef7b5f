package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.MaxLimit != 64 {
		t.Errorf("default max_limit = %d, want 64", cfg.Server.MaxLimit)
	}
	if !cfg.Server.EnableFilter {
		t.Error("input filtering should be on by default")
	}
	if cfg.Search.DefaultLimit != 10 {
		t.Errorf("default search limit = %d, want 10", cfg.Search.DefaultLimit)
	}
	if cfg.Search.CacheSize != 1024 {
		t.Errorf("default cache size = %d, want 1024", cfg.Search.CacheSize)
	}
	if cfg.CLI.DefaultMinLen > cfg.CLI.DefaultMaxLen {
		t.Error("cli length bounds inverted")
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if cfg.Server.MaxPrefix != 60 {
		t.Errorf("created config max_prefix = %d, want 60", cfg.Server.MaxPrefix)
	}

	// Second init reads the file back rather than recreating it.
	again, err := InitConfig(path)
	if err != nil {
		t.Fatalf("second InitConfig failed: %v", err)
	}
	if *again != *cfg {
		t.Errorf("reloaded config differs: %+v vs %+v", again, cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `[server]
max_limit = 16
enable_filter = false

[search]
default_limit = 5
max_pattern = 12
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.MaxLimit != 16 {
		t.Errorf("max_limit = %d, want 16", cfg.Server.MaxLimit)
	}
	if cfg.Server.EnableFilter {
		t.Error("enable_filter should be false")
	}
	if cfg.Search.DefaultLimit != 5 || cfg.Search.MaxPattern != 12 {
		t.Errorf("search overrides not applied: %+v", cfg.Search)
	}
	// Untouched keys keep their defaults.
	if cfg.Server.MinPrefix != 1 {
		t.Errorf("min_prefix = %d, want default 1", cfg.Server.MinPrefix)
	}
	if cfg.Search.MaxEditLen != 32 {
		t.Errorf("max_edit_len = %d, want default 32", cfg.Search.MaxEditLen)
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	// max_limit has the wrong type; the rest of the file is salvageable.
	content := `[server]
max_limit = "lots"
min_prefix = 2

[cli]
default_limit = 8
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig should recover, got: %v", err)
	}
	if cfg.Server.MaxLimit != 64 {
		t.Errorf("bad-typed max_limit should fall back to default 64, got %d", cfg.Server.MaxLimit)
	}
	if cfg.Server.MinPrefix != 2 {
		t.Errorf("min_prefix = %d, want salvaged 2", cfg.Server.MinPrefix)
	}
	if cfg.CLI.DefaultLimit != 8 {
		t.Errorf("cli default_limit = %d, want salvaged 8", cfg.CLI.DefaultLimit)
	}
}

func TestUpdatePersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	newLimit := 32
	noFilter := false
	if err := cfg.Update(path, &newLimit, nil, nil, &noFilter); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if cfg.Server.MaxLimit != 32 || cfg.Server.EnableFilter {
		t.Errorf("in-memory config not updated: %+v", cfg.Server)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Server.MaxLimit != 32 {
		t.Errorf("persisted max_limit = %d, want 32", reloaded.Server.MaxLimit)
	}
	if reloaded.Server.EnableFilter {
		t.Error("persisted enable_filter should be false")
	}
	// Fields passed as nil stay put.
	if reloaded.Server.MinPrefix != 1 || reloaded.Server.MaxPrefix != 60 {
		t.Errorf("untouched bounds changed: %+v", reloaded.Server)
	}
}

func TestGetActiveConfigPath(t *testing.T) {
	if got := GetActiveConfigPath("/etc/lexitrie/config.toml"); got != "/etc/lexitrie/config.toml" {
		t.Errorf("absolute path should pass through, got %s", got)
	}
	if got := GetActiveConfigPath("rel/config.toml"); !filepath.IsAbs(got) {
		t.Errorf("relative path should resolve to absolute, got %s", got)
	}
}
