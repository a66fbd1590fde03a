package config

import "time"

// DefaultFilters are the gallery category buttons.
var DefaultFilters = []string{"all", "human", "hybrid", "digital", "mythic"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:     8080,
		LogLevel: "info",
		Filters:  append([]string(nil), DefaultFilters...),
		Generator: GeneratorConfig{
			Delay: 3 * time.Second,
		},
		Catalog: CatalogConfig{
			Root: ".",
		},
	}
}
