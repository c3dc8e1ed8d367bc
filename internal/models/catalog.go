// catalog.go
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TestDefinition describes one test variant offered to users, matching the
// YAML catalog structure.
type TestDefinition struct {
	ID          string  `yaml:"id"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Type        string  `yaml:"type"` // "nback" or "reaction"
	NBackLevel  int     `yaml:"n_back_level,omitempty"`
	TrialCount  int     `yaml:"trial_count,omitempty"`
	TargetRate  float64 `yaml:"target_rate,omitempty"`
	Rounds      int     `yaml:"rounds,omitempty"`
	MinDelayMs  int     `yaml:"min_delay_ms,omitempty"`
	MaxDelayMs  int     `yaml:"max_delay_ms,omitempty"`
}

// TestCatalog holds all configured test definitions.
type TestCatalog struct {
	Tests []TestDefinition `yaml:"tests"`
}

// LoadCatalog reads and parses the test catalog YAML file.
func LoadCatalog(path string) (*TestCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test catalog: %w", err)
	}

	var catalog TestCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal test catalog YAML: %w", err)
	}

	return &catalog, nil
}

// ByID returns the test definition with the given id.
func (c *TestCatalog) ByID(id string) (TestDefinition, bool) {
	for _, t := range c.Tests {
		if t.ID == id {
			return t, true
		}
	}
	return TestDefinition{}, false
}
