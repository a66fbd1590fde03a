package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
)

// delayChoices are the generation delays offered by the wizard.
var delayChoices = []struct {
	Label string
	Delay time.Duration
}{
	{"3s  - demo", 3 * time.Second},
	{"20s - realistic, fast model", 20 * time.Second},
	{"30s - realistic, large model", 30 * time.Second},
}

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to 100 Times AI Heroes! Let's configure the gallery.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port for the web server",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	// 2. Generation delay.
	labels := make([]string, len(delayChoices))
	for i, c := range delayChoices {
		labels[i] = c.Label
	}
	delayPrompt := promptui.Select{
		Label: "Simulated generation time",
		Items: labels,
	}
	delayIdx, _, err := delayPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("delay selection: %w", err)
	}
	cfg.Generator.Delay = delayChoices[delayIdx].Delay

	// 3. Log level.
	levelPrompt := promptui.Select{
		Label: "Log level",
		Items: []string{"info", "debug", "warn", "error"},
	}
	_, level, err := levelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log level selection: %w", err)
	}
	cfg.LogLevel = level

	// 4. Extra filter labels.
	filterPrompt := promptui.Prompt{
		Label:   "Gallery filters (comma-separated, must include all)",
		Default: strings.Join(cfg.Filters, ","),
	}
	filterStr, err := filterPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("filters: %w", err)
	}
	cfg.Filters = splitAndTrim(filterStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if p <= 0 || p > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
