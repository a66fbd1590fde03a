package catalog

import "fmt"

// Character is a single hero record. Records are immutable once a Catalog
// has been built from them.
type Character struct {
	ID      int    `yaml:"id" json:"id"`
	Name    string `yaml:"name" json:"name"`
	Role    string `yaml:"role" json:"role"`
	Profile string `yaml:"profile" json:"profile"`
	Quote   string `yaml:"seriff" json:"quote"`
	Age     string `yaml:"age" json:"age"`
	Gender  string `yaml:"gender" json:"gender"`
	Species string `yaml:"species" json:"species"`
	Ability string `yaml:"ability" json:"ability"`
	Wants   string `yaml:"wants" json:"wants"`
	Icon    string `yaml:"icon" json:"icon"`
}

// Tags returns the three short descriptors shown on gallery cards.
func (c Character) Tags() []string {
	return []string{c.Age, c.Gender, c.Species}
}

// Validate checks that the record has a positive id and every text field set.
func (c Character) Validate() error {
	if c.ID <= 0 {
		return fmt.Errorf("character %q: id must be positive, got %d", c.Name, c.ID)
	}

	fields := []struct {
		name  string
		value string
	}{
		{"name", c.Name},
		{"role", c.Role},
		{"profile", c.Profile},
		{"seriff", c.Quote},
		{"age", c.Age},
		{"gender", c.Gender},
		{"species", c.Species},
		{"ability", c.Ability},
		{"wants", c.Wants},
		{"icon", c.Icon},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("character %d: %s is required", c.ID, f.name)
		}
	}
	return nil
}
