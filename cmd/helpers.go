package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/ziadkadry99/ai-heroes/internal/catalog"
	"github.com/ziadkadry99/ai-heroes/internal/config"
	"github.com/ziadkadry99/ai-heroes/internal/generator"
	"github.com/ziadkadry99/ai-heroes/internal/logging"
	"github.com/ziadkadry99/ai-heroes/internal/views"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `heroes init` to create a config file", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger returns the stderr logger. Stdout stays free for command output
// and the MCP protocol.
func newLogger(cfg *config.Config) (*log.Logger, error) {
	return logging.New(os.Stderr, cfg.LogLevel)
}

// loadCatalog returns the configured catalog, or the built-in one when no
// catalog files are configured.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	cat, err := catalog.Load(cfg.Catalog.Root, cfg.Catalog.Files)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}

// newSimulator builds the generator with the configured delay.
func newSimulator(cfg *config.Config, cat *catalog.Catalog, logger *log.Logger) *generator.Simulator {
	return generator.New(cat,
		generator.WithDelay(cfg.Generator.Delay),
		generator.WithLogger(logging.ForComponent(logger, "generator")),
	)
}

// filterLabels converts the configured filter labels.
func filterLabels(cfg *config.Config) []views.Filter {
	out := make([]views.Filter, len(cfg.Filters))
	for i, f := range cfg.Filters {
		out[i] = views.ParseFilter(f)
	}
	return out
}

// setup loads everything the commands share.
func setup() (*config.Config, *catalog.Catalog, *log.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Debug("catalog loaded", "characters", cat.Len())
	return cfg, cat, logger, nil
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
