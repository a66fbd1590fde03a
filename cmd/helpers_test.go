package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/ai-heroes/internal/catalog"
	"github.com/ziadkadry99/ai-heroes/internal/config"
	"github.com/ziadkadry99/ai-heroes/internal/views"
)

func TestPrintFields(t *testing.T) {
	c, err := catalog.Default().ByID(2)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	printFields(&buf, views.CharacterFields(views.DetailPrefix, c), views.DetailPrefix)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "Name:") || !strings.Contains(lines[1], "Sayuki Mizuki") {
		t.Errorf("unexpected name line %q", lines[1])
	}
	if strings.Contains(buf.String(), "char") {
		t.Error("target prefix should be stripped")
	}
}

func TestFilterLabels(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Filters = []string{"all", " Elf "}
	got := filterLabels(cfg)
	if len(got) != 2 || got[0] != views.FilterAll || got[1] != "elf" {
		t.Errorf("unexpected labels %v", got)
	}
}

func TestLoadConfigVerbose(t *testing.T) {
	cfgFile = filepath.Join(t.TempDir(), "missing.yml")
	verbose = true
	t.Cleanup(func() { cfgFile, verbose = ".heroes.yml", false })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("verbose should force debug, got %q", cfg.LogLevel)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	cfgFile = filepath.Join(t.TempDir(), "missing.yml")
	t.Cleanup(func() { cfgFile = ".heroes.yml" })
	t.Setenv("HEROES_PORT", "0")

	if _, err := loadConfig(); err == nil {
		t.Error("expected validation error for port 0")
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"serve", "list", "show", "generate", "mcp", "init", "version"}
	for _, name := range want {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
			}
		}
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}
