package sink

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electric-power/algo-service/pkg/types"
)

func readEnvelope(t *testing.T, dir, taskID string) map[string]any {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(dir, taskID+".json"))
	require.NoError(t, err)
	var env map[string]any
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}

func TestDeliverWritesArtifact(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, "")

	s.Deliver("t1", types.TaskSuccess, "Completed", "", map[string]any{
		"checked_items": 120.0,
		"risk_level":    "low",
	})

	env := readEnvelope(t, dir, "t1")
	assert.Equal(t, "t1", env["task_id"])
	assert.Equal(t, "SUCCESS", env["status"])
	result := env["data"].(map[string]any)
	assert.Equal(t, 120.0, result["checked_items"])
	assert.Equal(t, "low", result["risk_level"])
}

func TestDeliverFailureKeepsError(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, "")

	s.Deliver("t2", types.TaskFailed, "Failed", "solver diverged", nil)

	env := readEnvelope(t, dir, "t2")
	assert.Equal(t, "FAILED", env["status"])
	assert.Equal(t, "solver diverged", env["error"])
	assert.Nil(t, env["data"])
}

func TestDeliverRaw(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, "")

	s.DeliverRaw("t3", types.TaskCancelled, "Cancelled", "", `{"partial":true}`)

	env := readEnvelope(t, dir, "t3")
	assert.Equal(t, "CANCELLED", env["status"])
	result := env["data"].(map[string]any)
	assert.Equal(t, true, result["partial"])
}

func TestTaskResultCarriesArtifactPath(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, "localhost:50052")

	req := s.buildTaskResult("t4", types.TaskSuccess, "Completed", "", `{"ok":true}`)
	assert.Equal(t, "t4", req.GetTaskId())
	assert.Equal(t, filepath.Join(dir, "t4.json"), req.GetLogPath())
	assert.Equal(t, `{"ok":true}`, req.GetResultJson())
}

func TestPushStatusMapping(t *testing.T) {
	assert.Equal(t, "SUCCESS", pushStatus(types.TaskSuccess).String())
	assert.Equal(t, "FAILED", pushStatus(types.TaskFailed).String())
	assert.Equal(t, "CANCELLED", pushStatus(types.TaskCancelled).String())
	assert.Equal(t, "UNKNOWN", pushStatus(types.TaskRunning).String())
}
