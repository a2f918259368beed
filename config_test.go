package orrery

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConf(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "conf.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ORRERY_CONFIG", dir)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ORRERY_CONFIG", "")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("defaults not returned: %+v", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	writeConf(t, `
[clock]
min_speed = 1.0
max_speed = 500.0
initial_speed = 10.0

[scene]
scale = 50.0
`)
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MinSpeed != 1 || cfg.MaxSpeed != 500 || cfg.InitialSpeed != 10 {
		t.Fatalf("clock settings not read: %+v", cfg)
	}
	if cfg.SceneScale != 50 {
		t.Fatalf("scene scale not read: %+v", cfg)
	}
	if cfg.VSOP87 {
		t.Fatal("VSOP87 enabled without being configured")
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	writeConf(t, `
[scene]
scale = 25.0
`)
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultConfig()
	if cfg.MinSpeed != def.MinSpeed || cfg.MaxSpeed != def.MaxSpeed {
		t.Fatalf("unset clock keys lost their defaults: %+v", cfg)
	}
	if cfg.SceneScale != 25 {
		t.Fatalf("scene scale not read: %+v", cfg)
	}
}

func TestLoadConfigBadBounds(t *testing.T) {
	writeConf(t, `
[clock]
min_speed = 100.0
max_speed = 1.0
`)
	if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), "speed bounds") {
		t.Fatalf("expected speed-bounds error, got %v", err)
	}
}

func TestLoadConfigBadScale(t *testing.T) {
	writeConf(t, `
[scene]
scale = -3.0
`)
	if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), "scale") {
		t.Fatalf("expected scale error, got %v", err)
	}
}

func TestLoadConfigVSOP87NeedsDirectory(t *testing.T) {
	writeConf(t, `
[VSOP87]
enabled = true
`)
	if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), "VSOP87") {
		t.Fatalf("expected VSOP87 error, got %v", err)
	}
}

func TestLoadConfigIsTOMLOnly(t *testing.T) {
	// The config format is pinned to TOML; a YAML file in the config
	// directory must not silently load.
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "conf.yaml"), []byte("clock:\n  min_speed: 50.0\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("ORRERY_CONFIG", dir)
	cfg, err := LoadConfig()
	if err == nil && cfg.MinSpeed == 50 {
		t.Fatal("YAML config was parsed")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("ORRERY_CONFIG", t.TempDir())
	if _, err := LoadConfig(); err == nil {
		t.Fatal("missing conf.toml did not error")
	}
}
