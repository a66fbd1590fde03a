package config

import "time"

// Config is the top-level heroes configuration, corresponding to .heroes.yml.
type Config struct {
	Port            int             `yaml:"port" koanf:"port"`
	AllowAllOrigins bool            `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	LogLevel        string          `yaml:"log_level" koanf:"log_level"`
	Filters         []string        `yaml:"filters" koanf:"filters"`
	Generator       GeneratorConfig `yaml:"generator" koanf:"generator"`
	Catalog         CatalogConfig   `yaml:"catalog" koanf:"catalog"`
}

// GeneratorConfig holds the simulated generation settings.
type GeneratorConfig struct {
	Delay time.Duration `yaml:"delay" koanf:"delay"`
}

// CatalogConfig points at optional YAML catalog files. With no files the
// built-in heroes are used.
type CatalogConfig struct {
	Root  string   `yaml:"root" koanf:"root"`
	Files []string `yaml:"files" koanf:"files"`
}
