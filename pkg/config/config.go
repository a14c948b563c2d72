// Package config loads godub's own settings: the recognized
// environment variables and the optional .godub.yaml defaults file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// FileName is the defaults file looked up from the working directory
// and its parents.
const FileName = ".godub.yaml"

// Env holds the environment-driven settings the adapter recognizes.
type Env struct {
	// Compiler is the default D compiler, used when no --compiler
	// flag is given.
	Compiler string `env:"DC"`
	// DubPath names an executable to probe ahead of the platform
	// candidates.
	DubPath string `env:"GODUB_DUB"`
	// ConfigPath points at an explicit defaults file, skipping the
	// .godub.yaml lookup.
	ConfigPath string `env:"GODUB_CONFIG"`
}

// LoadEnv parses the recognized environment variables.
func LoadEnv() (Env, error) {
	return env.ParseAs[Env]()
}

// Defaults are scalar option defaults applied when the matching flag
// is not given. List options are never defaulted: element order
// carries user-specified precedence and a file must not reorder it.
type Defaults struct {
	Compiler string `yaml:"compiler"`
	Build    string `yaml:"build"`
	Config   string `yaml:"config"`
	Arch     string `yaml:"arch"`
}

// Load reads a defaults file from the given path. A missing file
// yields zero defaults.
func Load(path string) (*Defaults, error) {
	d := &Defaults{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return nil, fmt.Errorf("reading defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return d, nil
}

// FindFile looks for .godub.yaml in the given directory and its
// parents, returning the path if found, or "" if not.
func FindFile(dir string) string {
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
