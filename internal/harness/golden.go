package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// resultSnapshot is the serialized form compared against golden files.
type resultSnapshot struct {
	ScenarioName string  `json:"scenario_name"`
	Views        ViewSet `json:"views"`
}

// RunWithGolden executes a scenario and compares the final view set against
// a golden file at testdata/golden/{scenario.Name}.golden.
//
// Returns error if scenario execution fails; test failure (via goldie)
// occurs if the result doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	snapshot := resultSnapshot{
		ScenarioName: scenario.Name,
		Views:        result.Final,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return nil
}
