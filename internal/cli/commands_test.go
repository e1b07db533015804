package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv is a throwaway config + data file for one test.
type testEnv struct {
	configPath string
	dataPath   string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()
	env := testEnv{
		configPath: filepath.Join(dir, "config.yaml"),
		dataPath:   filepath.Join(dir, "tasks.json"),
	}
	content := fmt.Sprintf("backend: file\ndata_path: %s\n", env.dataPath)
	require.NoError(t, os.WriteFile(env.configPath, []byte(content), 0o644))
	return env
}

// run executes the CLI against the test environment, capturing all output.
// Each call builds a fresh command tree, so state only survives through the
// durable slot - exactly like separate process invocations.
func (e testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append(args, "--config", e.configPath))
	err := cmd.Execute()
	return buf.String(), err
}

// addJSON adds a task and returns its generated id.
func (e testEnv) addJSON(t *testing.T, title, priority string) string {
	t.Helper()
	out, err := e.run(t, "add", title, "--priority", priority, "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "ok", resp.Status)
	require.NotEmpty(t, resp.Data.ID)
	return resp.Data.ID
}

func TestAdd_TextOutput(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "add", "Buy milk", "--priority", "high")
	require.NoError(t, err)
	assert.Contains(t, out, `Added "Buy milk" (high`)
}

func TestAdd_MultiWordTitleWithoutQuotes(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "add", "Walk", "the", "dog")
	require.NoError(t, err)

	out, err := env.run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Walk the dog")
}

func TestAdd_EmptyTitleRejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "add", "   ")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "title must not be empty")
}

func TestAdd_InvalidPriorityRejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "add", "x", "--priority", "urgent")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestAdd_DefaultPriorityFromConfig(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "add", "no flag given")
	require.NoError(t, err)
	assert.Contains(t, out, "medium", "config default_priority should apply")
}

func TestList_Empty(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks.")
}

func TestList_ShowsTasksInInsertionOrder(t *testing.T) {
	env := newTestEnv(t)
	env.addJSON(t, "first", "high")
	env.addJSON(t, "second", "low")

	out, err := env.run(t, "list")
	require.NoError(t, err)
	assert.Regexp(t, `(?s)first.*second`, out)
}

func TestList_FilterActiveAndCompleted(t *testing.T) {
	env := newTestEnv(t)
	env.addJSON(t, "stay open", "medium")
	done := env.addJSON(t, "finish me", "medium")

	_, err := env.run(t, "done", done)
	require.NoError(t, err)

	active, err := env.run(t, "list", "--filter", "active")
	require.NoError(t, err)
	assert.Contains(t, active, "stay open")
	assert.NotContains(t, active, "finish me")

	completed, err := env.run(t, "list", "--filter", "completed")
	require.NoError(t, err)
	assert.Contains(t, completed, "finish me")
	assert.NotContains(t, completed, "stay open")
}

func TestList_InvalidFilterRejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "list", "--filter", "done")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid --filter")
}

func TestList_JSONEnvelope(t *testing.T) {
	env := newTestEnv(t)
	env.addJSON(t, "only one", "low")

	out, err := env.run(t, "list", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   []struct {
			ID        string `json:"id"`
			Title     string `json:"title"`
			Priority  string `json:"priority"`
			Completed bool   `json:"completed"`
			CreatedAt string `json:"createdAt"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "only one", resp.Data[0].Title)
	assert.Equal(t, "low", resp.Data[0].Priority)
	assert.False(t, resp.Data[0].Completed)
	assert.NotEmpty(t, resp.Data[0].CreatedAt)
}

func TestDone_TogglesAndReports(t *testing.T) {
	env := newTestEnv(t)
	id := env.addJSON(t, "toggle me", "high")

	out, err := env.run(t, "done", id)
	require.NoError(t, err)
	assert.Contains(t, out, `Completed "toggle me"`)

	out, err = env.run(t, "done", id)
	require.NoError(t, err)
	assert.Contains(t, out, `Reopened "toggle me"`)
}

func TestDone_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "done", "no-such-id")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestDone_NotFoundJSONEnvelope(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "done", "no-such-id", "--format", "json")
	require.Error(t, err)

	var resp struct {
		Status string `json:"status"`
		Error  struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "no-such-id")
}

func TestSet_UpdatesFields(t *testing.T) {
	env := newTestEnv(t)
	id := env.addJSON(t, "old title", "low")

	out, err := env.run(t, "set", id, "--title", "new title", "--priority", "high")
	require.NoError(t, err)
	assert.Contains(t, out, `Updated "new title" (high, completed=false)`)
}

func TestSet_NothingToUpdate(t *testing.T) {
	env := newTestEnv(t)
	id := env.addJSON(t, "untouched", "low")

	_, err := env.run(t, "set", id)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "nothing to update")
}

func TestSet_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "set", "missing-id", "--title", "x")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestRm_RemovesThenReportsNotFound(t *testing.T) {
	env := newTestEnv(t)
	id := env.addJSON(t, "doomed", "medium")

	out, err := env.run(t, "rm", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed "+id)

	_, err = env.run(t, "rm", id)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestState_SurvivesSeparateInvocations(t *testing.T) {
	// Each run builds a fresh command tree; only the slot carries state.
	env := newTestEnv(t)
	env.addJSON(t, "durable", "high")

	out, err := env.run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "durable")

	// The slot file itself holds the documented wire format.
	data, err := os.ReadFile(env.dataPath)
	require.NoError(t, err)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "durable", raw[0]["title"])
}

func TestSQLiteBackendEndToEnd(t *testing.T) {
	dir := t.TempDir()
	env := testEnv{
		configPath: filepath.Join(dir, "config.yaml"),
		dataPath:   filepath.Join(dir, "tasks.db"),
	}
	content := fmt.Sprintf("backend: sqlite\ndata_path: %s\n", env.dataPath)
	require.NoError(t, os.WriteFile(env.configPath, []byte(content), 0o644))

	id := env.addJSON(t, "in sqlite", "high")

	out, err := env.run(t, "list", "--filter", "active")
	require.NoError(t, err)
	assert.Contains(t, out, "in sqlite")

	_, err = env.run(t, "done", id)
	require.NoError(t, err)

	out, err = env.run(t, "list", "--filter", "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "in sqlite")
}

func TestCorruptSlotSurfacesCli(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(env.dataPath, []byte("{definitely not json"), 0o644))

	_, err := env.run(t, "list")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "corrupt")
}
