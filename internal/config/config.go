package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for complyscan.
// Fields are pointers so the CLI can tell "unset" from "explicit zero"
// when applying flag > local file > global file precedence.
type FileConfig struct {
	ApplicationName *string  `yaml:"application_name"`
	Include         *string  `yaml:"include"`
	Exclude         *string  `yaml:"exclude"`
	MaxFiles        *int     `yaml:"max_files"`
	MaxBytes        *int64   `yaml:"max_bytes"`
	Timeout         *string  `yaml:"timeout"`
	Workers         *int     `yaml:"workers"`
	SkipCategories  []string `yaml:"skip_categories"`
	Level           *string  `yaml:"level"`
	OutputDir       *string  `yaml:"output_dir"`
	NoReport        *bool    `yaml:"no_report"`
	NoColor         *bool    `yaml:"no_color"`
	Strict          *bool    `yaml:"strict"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .complyscan.yml/.yaml and complyscan.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".complyscan.yml", ".complyscan.yaml", "complyscan.yml", "complyscan.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "complyscan", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
