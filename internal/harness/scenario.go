package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Step operation names.
const (
	OpAdd    = "add"
	OpToggle = "toggle"
	OpSet    = "set"
	OpDelete = "delete"
)

// Scenario defines a conformance test scenario for the task store.
type Scenario struct {
	// Name uniquely identifies this scenario; it also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Steps are the store operations to execute, in order.
	Steps []Step `yaml:"steps"`
}

// Step is a single store operation.
//
// Add steps create tasks; every other op targets a task created earlier,
// referenced through Ref: the 1-based ordinal of the creating add step.
type Step struct {
	// Op is one of add, toggle, set, delete.
	Op string `yaml:"op"`

	// Title and Priority apply to add steps.
	Title    string `yaml:"title,omitempty"`
	Priority string `yaml:"priority,omitempty"`

	// Ref selects the target task for toggle, set, and delete steps.
	Ref int `yaml:"ref,omitempty"`

	// Set carries the patch fields for set steps. Absent fields are left
	// untouched, mirroring the store's shallow-merge semantics.
	Set *SetFields `yaml:"set,omitempty"`
}

// SetFields mirrors the optional fields of a store patch.
type SetFields struct {
	Title     *string `yaml:"title,omitempty"`
	Priority  *string `yaml:"priority,omitempty"`
	Completed *bool   `yaml:"completed,omitempty"`
}

// LoadScenario reads and validates a scenario from a YAML file.
// Unknown YAML keys are rejected so typos fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks scenario structure before execution: known ops, titles on
// adds, and refs that point at an earlier add step.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("at least one step is required")
	}

	adds := 0
	for i, step := range s.Steps {
		switch step.Op {
		case OpAdd:
			if step.Title == "" {
				return fmt.Errorf("step %d: add requires a title", i+1)
			}
			adds++
		case OpToggle, OpDelete:
			if step.Ref < 1 || step.Ref > adds {
				return fmt.Errorf("step %d: ref %d does not point at an earlier add", i+1, step.Ref)
			}
		case OpSet:
			if step.Ref < 1 || step.Ref > adds {
				return fmt.Errorf("step %d: ref %d does not point at an earlier add", i+1, step.Ref)
			}
			if step.Set == nil {
				return fmt.Errorf("step %d: set requires fields", i+1)
			}
		default:
			return fmt.Errorf("step %d: unknown op %q", i+1, step.Op)
		}
	}
	return nil
}
