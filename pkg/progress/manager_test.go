package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electric-power/algo-service/pkg/store"
	"github.com/electric-power/algo-service/pkg/types"
)

func newTestManager(t *testing.T) (*Manager, *store.TaskStore) {
	t.Helper()
	ts, err := store.Open(t.TempDir())
	require.NoError(t, err)
	m := NewManager(ts)
	t.Cleanup(func() {
		m.Close()
		ts.Close()
	})
	return m, ts
}

func TestRegisterAndRecordProgress(t *testing.T) {
	m, ts := newTestManager(t)

	m.RegisterTask("t1", "SCM-WF02", "grid.csv")
	m.RecordProgress("t1", 40, "Running N-1 analysis...")

	rec, err := m.GetTask("t1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, types.TaskRunning, rec.Status)
	assert.Equal(t, 40, rec.Percentage)
	assert.Equal(t, "Running N-1 analysis...", rec.Message)

	// the DB writer applies the same state asynchronously
	require.Eventually(t, func() bool {
		row, err := ts.Get("t1")
		return err == nil && row != nil && row.Percentage == 40
	}, 2*time.Second, 10*time.Millisecond)
}

func TestGetTaskFallsBackToStore(t *testing.T) {
	m, ts := newTestManager(t)

	require.NoError(t, ts.UpsertStart("cold", "STM-WF01", ""))

	rec, err := m.GetTask("cold")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "STM-WF01", rec.SchemeCode)
}

func TestCancelRequestedNotDowngraded(t *testing.T) {
	m, _ := newTestManager(t)

	m.RegisterTask("t1", "SCM-WF01", "")
	require.True(t, m.RequestCancel("t1"))
	require.True(t, m.CancelRequested("t1"))

	// a late progress event keeps the pending cancel visible
	m.RecordProgress("t1", 70, "still crunching")

	rec, err := m.GetTask("t1")
	require.NoError(t, err)
	assert.Equal(t, types.TaskCancelRequested, rec.Status)
	assert.Equal(t, 70, rec.Percentage)
}

func TestProgressNeverMovesBackwards(t *testing.T) {
	m, _ := newTestManager(t)

	m.RegisterTask("t1", "SCM-WF02", "")
	m.RecordProgress("t1", 50, "halfway")
	m.RecordProgress("t1", 30, "stale report")

	rec, err := m.GetTask("t1")
	require.NoError(t, err)
	assert.Equal(t, 50, rec.Percentage)
	assert.Equal(t, "stale report", rec.Message)

	m.RecordProgress("t1", 80, "almost done")
	rec, err = m.GetTask("t1")
	require.NoError(t, err)
	assert.Equal(t, 80, rec.Percentage)
}

func TestRecordAfterCloseIsSafe(t *testing.T) {
	m, _ := newTestManager(t)

	m.RegisterTask("t1", "SCM-WF01", "")
	m.Close()

	assert.NotPanics(t, func() {
		m.RecordProgress("t1", 10, "late write")
		m.MarkFinished("t1", types.TaskSuccess, "Completed", "")
	})
}

func TestCancelUnknownOrFinished(t *testing.T) {
	m, _ := newTestManager(t)

	assert.False(t, m.RequestCancel("missing"))

	m.RegisterTask("done", "SCM-WF01", "")
	require.True(t, m.MarkFinished("done", types.TaskSuccess, "Completed", ""))
	assert.False(t, m.RequestCancel("done"))
}

func TestFirstTerminalWriteWins(t *testing.T) {
	m, _ := newTestManager(t)

	m.RegisterTask("t1", "SCM-WF01", "")
	require.True(t, m.MarkFinished("t1", types.TaskSuccess, "Completed", ""))
	assert.False(t, m.MarkFinished("t1", types.TaskFailed, "Failed", "boom"))

	rec, err := m.GetTask("t1")
	require.NoError(t, err)
	assert.Equal(t, types.TaskSuccess, rec.Status)

	// progress after a terminal state is discarded
	m.RecordProgress("t1", 10, "late")
	rec, err = m.GetTask("t1")
	require.NoError(t, err)
	assert.Equal(t, 100, rec.Percentage)
}

func TestWatchReplaysSnapshot(t *testing.T) {
	m, _ := newTestManager(t)

	m.RegisterTask("t1", "SCM-WF01", "")
	m.RecordProgress("t1", 55, "halfway there")

	// drain events published before the watcher attached
	ch := m.Watch("t1")
	var last types.ProgressEvent
	for {
		select {
		case ev := <-ch:
			last = ev
			continue
		default:
		}
		break
	}
	assert.Equal(t, 55, last.Percentage)
	assert.Equal(t, "halfway there", last.Message)
}

func TestWatchReceivesEvents(t *testing.T) {
	m, _ := newTestManager(t)

	m.RegisterTask("t1", "STM-WF02", "")
	ch := m.Watch("t1")

	m.RecordProgress("t1", 20, "Fetching historical states...")
	m.MarkFinished("t1", types.TaskSuccess, "Completed", "")

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-ch:
			if ev.Status.IsTerminal() {
				assert.Equal(t, types.TaskSuccess, ev.Status)
				assert.Equal(t, 100, ev.Percentage)
				return
			}
		case <-deadline:
			t.Fatal("terminal event not observed")
		}
	}
}

func TestTerminalEventSurvivesFullChannel(t *testing.T) {
	m, _ := newTestManager(t)

	m.RegisterTask("t1", "SCM-WF03", "")
	ch := m.Watch("t1")

	for i := 0; i < watchBuffer+10; i++ {
		m.RecordProgress("t1", i, "flood")
	}
	m.MarkFinished("t1", types.TaskFailed, "Failed", "solver diverged")

	var sawTerminal bool
	for {
		select {
		case ev := <-ch:
			if ev.Status.IsTerminal() {
				sawTerminal = true
			}
			continue
		default:
		}
		break
	}
	assert.True(t, sawTerminal)
}

func TestListTasksMergesLiveState(t *testing.T) {
	m, ts := newTestManager(t)

	require.NoError(t, ts.UpsertStart("old", "SCM-WF01", ""))
	require.NoError(t, ts.Finish("old", types.TaskSuccess, "Completed", ""))

	m.RegisterTask("live", "STM-WF03", "")
	m.RecordProgress("live", 33, "Generating charts...")

	records, err := m.ListTasks()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "live", records[0].TaskID)
	assert.Equal(t, 33, records[0].Percentage)
}
