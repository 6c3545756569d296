package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electric-power/algo-service/pkg/types"
)

func newTestStore(t *testing.T) *TaskStore {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUpsertStartAndGet(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpsertStart("t1", "SCM-WF02", "data.csv"))

	rec, err := s.Get("t1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "t1", rec.TaskID)
	assert.Equal(t, "SCM-WF02", rec.SchemeCode)
	assert.Equal(t, types.TaskRunning, rec.Status)
	assert.Equal(t, 0, rec.Percentage)
	assert.Equal(t, "Initializing", rec.Message)
	assert.Equal(t, "data.csv", rec.DataRef)
	assert.Greater(t, rec.CreatedAt, int64(0))
}

func TestGetUnknownReturnsNil(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestUpdateProgress(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpsertStart("t1", "SCM-WF02", ""))
	require.NoError(t, s.UpdateProgress("t1", 40, "Running N-1 analysis...", types.TaskRunning))

	rec, err := s.Get("t1")
	require.NoError(t, err)
	assert.Equal(t, 40, rec.Percentage)
	assert.Equal(t, "Running N-1 analysis...", rec.Message)
}

func TestUpdateProgressCreatesMissingRow(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpdateProgress("ghost", 30, "somewhere", types.TaskRunning))

	rec, err := s.Get("ghost")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 30, rec.Percentage)
	assert.Equal(t, types.TaskRunning, rec.Status)
}

func TestFinishCreatesMissingRow(t *testing.T) {
	s := newTestStore(t)

	// finish(t) without upsert_start(t) behaves like create-then-finish
	require.NoError(t, s.Finish("t2", types.TaskFailed, "Failed", "scheme NOPE not found"))

	rec, err := s.Get("t2")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, types.TaskFailed, rec.Status)
	assert.Equal(t, 100, rec.Percentage)
	assert.Equal(t, "scheme NOPE not found", rec.ErrorMessage)
}

func TestTerminalStateIsFrozen(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpsertStart("t3", "SCM-WF01", ""))
	require.NoError(t, s.Finish("t3", types.TaskSuccess, "Completed", ""))

	// progress after terminal must not modify the row
	require.NoError(t, s.UpdateProgress("t3", 10, "late event", types.TaskRunning))
	rec, err := s.Get("t3")
	require.NoError(t, err)
	assert.Equal(t, types.TaskSuccess, rec.Status)
	assert.Equal(t, 100, rec.Percentage)
	assert.Equal(t, "Completed", rec.Message)

	// a second terminal write keeps the first outcome
	require.NoError(t, s.Finish("t3", types.TaskCancelled, "Cancelled", ""))
	rec, err = s.Get("t3")
	require.NoError(t, err)
	assert.Equal(t, types.TaskSuccess, rec.Status)
}

func TestListOrderedByUpdatedAt(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpsertStart("a", "SCM-WF01", ""))
	require.NoError(t, s.UpsertStart("b", "SCM-WF02", ""))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, s.UpdateProgress("a", 50, "halfway", types.TaskRunning))

	records, err := s.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	// "a" was touched last, so it sorts first
	assert.Equal(t, "a", records[0].TaskID)
	assert.GreaterOrEqual(t, records[0].UpdatedAt, records[1].UpdatedAt)
}

func TestReopenKeepsSchema(t *testing.T) {
	dir := t.TempDir()

	s1, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s1.UpsertStart("t1", "STM-WF01", ""))
	require.NoError(t, s1.Close())

	s2, err := Open(dir)
	require.NoError(t, err)
	defer s2.Close()

	rec, err := s2.Get("t1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "STM-WF01", rec.SchemeCode)
}
