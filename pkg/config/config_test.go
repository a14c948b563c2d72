package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	data := []byte("compiler: ldc2\nbuild: release\narch: x86_64\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.Compiler != "ldc2" {
		t.Errorf("Compiler = %q, want ldc2", d.Compiler)
	}
	if d.Build != "release" {
		t.Errorf("Build = %q, want release", d.Build)
	}
	if d.Config != "" {
		t.Errorf("Config = %q, want empty", d.Config)
	}
	if d.Arch != "x86_64" {
		t.Errorf("Arch = %q, want x86_64", d.Arch)
	}
}

func TestLoadMissingFile(t *testing.T) {
	d, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("Load() error = %v, want zero defaults for a missing file", err)
	}
	if *d != (Defaults{}) {
		t.Errorf("Load() = %+v, want zero defaults", d)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("compiler: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() = nil error for malformed yaml, want error")
	}
}

func TestFindFileWalksParents(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, FileName)
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	if got := FindFile(nested); got != path {
		t.Errorf("FindFile(%q) = %q, want %q", nested, got, path)
	}
}

func TestFindFileNotFound(t *testing.T) {
	if got := FindFile(t.TempDir()); got != "" {
		t.Errorf("FindFile() = %q, want empty", got)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("DC", "gdc")
	t.Setenv("GODUB_DUB", "/opt/dub/bin/dub")
	t.Setenv("GODUB_CONFIG", "/etc/godub.yaml")

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if e.Compiler != "gdc" {
		t.Errorf("Compiler = %q, want gdc", e.Compiler)
	}
	if e.DubPath != "/opt/dub/bin/dub" {
		t.Errorf("DubPath = %q, want /opt/dub/bin/dub", e.DubPath)
	}
	if e.ConfigPath != "/etc/godub.yaml" {
		t.Errorf("ConfigPath = %q, want /etc/godub.yaml", e.ConfigPath)
	}
}

func TestLoadEnvUnset(t *testing.T) {
	t.Setenv("DC", "")
	t.Setenv("GODUB_DUB", "")
	t.Setenv("GODUB_CONFIG", "")

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if e != (Env{}) {
		t.Errorf("LoadEnv() = %+v, want zero value", e)
	}
}
