// Package config holds the suite configuration: where the subject interpreter
// lives, where the tests are, and how fixture files are named.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete harness configuration. Values left empty in
// a config file keep their defaults; command line flags override both.
type Config struct {
	Subject  SubjectConfig `yaml:"subject"`
	TestsDir string        `yaml:"tests_dir"`
	Fixtures FixtureConfig `yaml:"fixtures"`
}

// SubjectConfig describes the program under test.
type SubjectConfig struct {
	// Command is the executable to run for each test case.
	Command string `yaml:"command"`
	// SearchPathFlag is the flag the subject takes for its module search
	// path, passed before SearchPath.
	SearchPathFlag string `yaml:"search_path_flag"`
	// SearchPath is passed through to the subject unexamined. When empty it
	// defaults to an "imports" directory sibling to the tests directory.
	SearchPath string `yaml:"search_path"`
}

// FixtureConfig describes how fixture files are named relative to each test
// file.
type FixtureConfig struct {
	OutSuffix string `yaml:"out_suffix"`
	ErrSuffix string `yaml:"err_suffix"`
}

// Default returns the configuration for the conventional repo layout: the
// smoked binary on PATH, tests in ./tests, fixtures as <test>.out/<test>.err.
func Default() Config {
	return Config{
		Subject: SubjectConfig{
			Command:        "smoked",
			SearchPathFlag: "-p",
		},
		TestsDir: "tests",
		Fixtures: FixtureConfig{
			OutSuffix: ".out",
			ErrSuffix: ".err",
		},
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("malformed config file %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return c, nil
}

// Validate checks that the fields the harness cannot default are present.
func (c Config) Validate() error {
	if c.Subject.Command == "" {
		return fmt.Errorf("subject command must not be empty")
	}
	if c.Subject.SearchPathFlag == "" {
		return fmt.Errorf("subject search path flag must not be empty")
	}
	if c.Fixtures.OutSuffix == "" || c.Fixtures.ErrSuffix == "" {
		return fmt.Errorf("fixture suffixes must not be empty")
	}
	if c.Fixtures.OutSuffix == c.Fixtures.ErrSuffix {
		return fmt.Errorf("fixture suffixes must differ")
	}
	return nil
}

// EffectiveSearchPath resolves the search path passed to the subject,
// deriving the conventional sibling imports directory when none is set.
func (c Config) EffectiveSearchPath() string {
	if c.Subject.SearchPath != "" {
		return c.Subject.SearchPath
	}
	return filepath.Join(filepath.Dir(filepath.Clean(c.TestsDir)), "imports")
}
