package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "complyscan.yaml",
		"workers: 4\nmax_bytes: 123\ntimeout: 5s\nlevel: AA\nskip_categories:\n  - A10_SSRF\nstrict: true\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Workers == nil || *cfg.Workers != 4 {
		t.Fatalf("expected workers=4, got %#v", cfg.Workers)
	}
	if cfg.MaxBytes == nil || *cfg.MaxBytes != 123 {
		t.Fatalf("expected max_bytes=123, got %#v", cfg.MaxBytes)
	}
	if cfg.Timeout == nil || *cfg.Timeout != "5s" {
		t.Fatalf("expected timeout=5s, got %#v", cfg.Timeout)
	}
	if cfg.Level == nil || *cfg.Level != "AA" {
		t.Fatalf("expected level=AA, got %#v", cfg.Level)
	}
	if len(cfg.SkipCategories) != 1 || cfg.SkipCategories[0] != "A10_SSRF" {
		t.Fatalf("expected skip_categories=[A10_SSRF], got %#v", cfg.SkipCategories)
	}
	if cfg.Strict == nil || !*cfg.Strict {
		t.Fatal("expected strict=true")
	}
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	// place both, expect the dotfile to be picked first by search order
	writeTemp(t, dir, "complyscan.yaml", "workers: 1\n")
	writeTemp(t, dir, ".complyscan.yaml", "workers: 7\n")
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.Workers == nil || *cfg.Workers != 7 {
		t.Fatalf("expected workers=7 from .complyscan.yaml, got %#v", cfg.Workers)
	}
}

func TestLoadLocal_NoConfig(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadLocal(dir); err == nil {
		t.Fatal("expected error when no local config exists")
	}
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "complyscan")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	p := filepath.Join(cfgDir, "config.yml")
	if err := os.WriteFile(p, []byte("workers: 9\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if cfg.Workers == nil || *cfg.Workers != 9 {
		t.Fatalf("expected workers=9 from global config, got %#v", cfg.Workers)
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "complyscan.yaml", "workers: [not an int\n")
	if _, err := LoadFile(p); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
