package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg.Prompt != want.Prompt || cfg.Trace != want.Trace || len(cfg.LoadPaths) != len(want.LoadPaths) {
		t.Errorf("Load(missing) = %+v, want %+v", cfg, want)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "copperrc.yaml")
	contents := "load_paths:\n  - /usr/local/lib/copper\ntrace: true\nprompt: \"copper> \"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Trace {
		t.Error("expected Trace to be true")
	}
	if cfg.Prompt != "copper> " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "copper> ")
	}
	if len(cfg.LoadPaths) != 1 || cfg.LoadPaths[0] != "/usr/local/lib/copper" {
		t.Errorf("LoadPaths = %v", cfg.LoadPaths)
	}
}

func TestLoadDefaultsEmptyPrompt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "copperrc.yaml")
	if err := os.WriteFile(path, []byte("trace: true\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Prompt != "> " {
		t.Errorf("Prompt = %q, want default %q", cfg.Prompt, "> ")
	}
}

func TestResolveLoadPath(t *testing.T) {
	dir := t.TempDir()
	libDir := filepath.Join(dir, "lib")
	if err := os.Mkdir(libDir, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	target := filepath.Join(libDir, "prelude.scm")
	if err := os.WriteFile(target, []byte("(define x 1)"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := Config{LoadPaths: []string{libDir}}
	got := cfg.ResolveLoadPath("prelude.scm")
	if got != target {
		t.Errorf("ResolveLoadPath = %q, want %q", got, target)
	}

	fallback := cfg.ResolveLoadPath("nowhere.scm")
	if fallback != "nowhere.scm" {
		t.Errorf("ResolveLoadPath(missing) = %q, want unchanged input", fallback)
	}
}
