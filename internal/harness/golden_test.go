package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// TestScenarioGoldenFiles loads every scenario under testdata/scenarios and
// compares its deterministic result against the matching golden file.
func TestScenarioGoldenFiles(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths, "no scenario files found")

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			sc, err := LoadScenario(path)
			require.NoError(t, err)
			require.NoError(t, RunWithGolden(t, sc))
		})
	}
}

func TestLoadScenario_UnknownKeysRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	writeFile(t, path, "name: bad\nstepz:\n  - op: add\n    title: x\n")

	_, err := LoadScenario(path)
	require.Error(t, err)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read scenario")
}

func TestLoadScenario_ValidFile(t *testing.T) {
	sc, err := LoadScenario(filepath.Join("testdata", "scenarios", "basic_add_and_complete.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "basic_add_and_complete", sc.Name)
	assert.Len(t, sc.Steps, 3)
}
