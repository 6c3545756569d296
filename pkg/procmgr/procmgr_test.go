package procmgr

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitDone(t *testing.T, p *Process, timeout time.Duration) {
	t.Helper()
	select {
	case <-p.Done():
	case <-time.After(timeout):
		t.Fatal("worker did not exit in time")
	}
}

func TestSubmitAndExit(t *testing.T) {
	m := New(2)

	p, err := m.Submit(context.Background(), "t1", exec.Command("sh", "-c", "exit 0"))
	require.NoError(t, err)
	require.NotNil(t, p)

	waitDone(t, p, 5*time.Second)
	assert.NoError(t, p.ExitErr())
	assert.False(t, p.WasKilled())
	assert.False(t, m.IsRunning("t1"))
}

func TestSlotLimitBlocksSubmit(t *testing.T) {
	m := New(1)

	p, err := m.Submit(context.Background(), "long", exec.Command("sleep", "30"))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, err = m.Submit(ctx, "blocked", exec.Command("sleep", "30"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	ok, err := m.Cancel("long", true)
	require.NoError(t, err)
	require.True(t, ok)
	waitDone(t, p, 5*time.Second)

	// the freed slot admits a new worker
	p2, err := m.Submit(context.Background(), "next", exec.Command("sh", "-c", "exit 0"))
	require.NoError(t, err)
	waitDone(t, p2, 5*time.Second)
}

func TestForceKill(t *testing.T) {
	m := New(1)

	p, err := m.Submit(context.Background(), "t1", exec.Command("sleep", "30"))
	require.NoError(t, err)

	ok, err := m.Cancel("t1", true)
	require.NoError(t, err)
	require.True(t, ok)

	waitDone(t, p, 5*time.Second)
	assert.True(t, p.WasKilled())
	assert.Error(t, p.ExitErr())
}

func TestGracefulCancel(t *testing.T) {
	m := New(1)

	p, err := m.Submit(context.Background(), "t1", exec.Command("sleep", "30"))
	require.NoError(t, err)

	ok, err := m.Cancel("t1", false)
	require.NoError(t, err)
	require.True(t, ok)

	// sleep exits on SIGTERM well inside the grace period
	waitDone(t, p, 3*time.Second)
	assert.False(t, p.WasKilled())
}

func TestGracefulCancelEscalates(t *testing.T) {
	if testing.Short() {
		t.Skip("waits out the termination grace period")
	}
	m := New(1)

	p, err := m.Submit(context.Background(), "stubborn",
		exec.Command("sh", "-c", `trap "" TERM; sleep 30`))
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond) // let the trap install

	ok, err := m.Cancel("stubborn", false)
	require.NoError(t, err)
	require.True(t, ok)

	waitDone(t, p, 8*time.Second)
	assert.True(t, p.WasKilled())
}

func TestCancelUnknownTask(t *testing.T) {
	m := New(1)
	ok, err := m.Cancel("nope", true)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestShutdownTerminatesWorkers(t *testing.T) {
	m := New(2)

	p1, err := m.Submit(context.Background(), "a", exec.Command("sleep", "30"))
	require.NoError(t, err)
	p2, err := m.Submit(context.Background(), "b", exec.Command("sleep", "30"))
	require.NoError(t, err)

	m.Shutdown()

	waitDone(t, p1, time.Second)
	waitDone(t, p2, time.Second)
	assert.Empty(t, m.RunningTasks())
}
