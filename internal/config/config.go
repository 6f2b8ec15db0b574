// Package config loads copper's optional startup configuration: a YAML
// file naming load-path directories and REPL preferences, parsed with
// github.com/goccy/go-yaml the way the rest of the dependency pack favors
// a real parser over hand-rolled key=value scanning.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config is copper's optional startup configuration, read from
// .copperrc.yaml in the working directory or from a path named by
// --config. Every field is optional; a missing file is not an error.
type Config struct {
	// LoadPaths are directories searched, in order, by ResolveLoadPath for
	// the program file the CLI runs when that file is not found as given.
	// The `load` procedure does not search them: it reads its path as given.
	LoadPaths []string `yaml:"load_paths"`

	// Trace enables the evaluator's special-form/procedure trace log,
	// equivalent to passing --trace on the command line.
	Trace bool `yaml:"trace"`

	// Prompt overrides the REPL's default "> " prompt string.
	Prompt string `yaml:"prompt"`
}

// Default returns the configuration used when no file is present: the
// "> " prompt, tracing off, and no load paths.
func Default() Config {
	return Config{Prompt: "> "}
}

// Load reads and parses the YAML configuration at path. A non-existent
// path is not an error: Load returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "> "
	}
	return cfg, nil
}

// ResolveLoadPath returns the first existing candidate among path itself
// and path joined with each of cfg.LoadPaths, mirroring how a shell
// resolves a bare command name against $PATH.
func (c Config) ResolveLoadPath(path string) string {
	if _, err := os.Stat(path); err == nil {
		return path
	}
	for _, dir := range c.LoadPaths {
		candidate := dir + string(os.PathSeparator) + path
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return path
}
