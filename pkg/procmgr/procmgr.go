// Package procmgr supervises CPU worker subprocesses. It bounds
// concurrency with a weighted semaphore sized to the physical cores,
// tracks live process handles by task ID, and implements the two
// cancellation modes: graceful (signal and wait) and force kill.
package procmgr

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/electric-power/algo-service/pkg/log"
	"github.com/electric-power/algo-service/pkg/metrics"
	"github.com/electric-power/algo-service/pkg/worker"
)

const (
	// termGrace is how long a signalled worker gets before SIGKILL.
	termGrace = 5 * time.Second

	// shutdownJoin bounds how long Shutdown waits for workers.
	shutdownJoin = 10 * time.Second
)

// Process is the handle for one running worker subprocess.
type Process struct {
	TaskID string

	cmd     *exec.Cmd
	stdin   chan []byte
	done    chan struct{}
	waitErr error

	killed  atomic.Bool
	release sync.Once
}

// Done returns a channel closed once the subprocess has exited.
func (p *Process) Done() <-chan struct{} {
	return p.done
}

// ExitErr returns the Wait error after Done is closed.
func (p *Process) ExitErr() error {
	return p.waitErr
}

// WasKilled reports whether the process was sent SIGKILL, either
// directly or after the graceful grace period expired.
func (p *Process) WasKilled() bool {
	return p.killed.Load()
}

// Manager owns the worker subprocess pool.
type Manager struct {
	sem   *semaphore.Weighted
	slots int

	mu    sync.Mutex
	procs map[string]*Process
}

// New creates a manager with the given number of worker slots.
func New(slots int) *Manager {
	if slots < 1 {
		slots = 1
	}
	return &Manager{
		sem:   semaphore.NewWeighted(int64(slots)),
		slots: slots,
		procs: make(map[string]*Process),
	}
}

// Slots returns the configured worker slot count.
func (m *Manager) Slots() int {
	return m.slots
}

// Submit blocks until a worker slot is free, then starts cmd and
// supervises it. The caller must have wired cmd's stdout before the
// call; stdin is owned by the manager for cancel delivery.
func (m *Manager) Submit(ctx context.Context, taskID string, cmd *exec.Cmd) (*Process, error) {
	if err := m.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("waiting for worker slot: %w", err)
	}

	stdinPipe, err := cmd.StdinPipe()
	if err != nil {
		m.sem.Release(1)
		return nil, fmt.Errorf("failed to open worker stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		m.sem.Release(1)
		return nil, fmt.Errorf("failed to start worker: %w", err)
	}

	p := &Process{
		TaskID: taskID,
		cmd:    cmd,
		stdin:  make(chan []byte, 4),
		done:   make(chan struct{}),
	}

	m.mu.Lock()
	m.procs[taskID] = p
	m.mu.Unlock()
	metrics.WorkersRunning.Inc()

	log.WithComponent("procmgr").Info().
		Str("task_id", taskID).Int("pid", cmd.Process.Pid).Msg("worker started")

	// stdin writer, detached so a wedged child cannot block Cancel
	go func() {
		defer stdinPipe.Close()
		for {
			select {
			case line := <-p.stdin:
				if _, err := stdinPipe.Write(line); err != nil {
					return
				}
			case <-p.done:
				return
			}
		}
	}()

	go m.monitor(p)
	return p, nil
}

// monitor joins the subprocess and releases its slot exactly once.
func (m *Manager) monitor(p *Process) {
	err := p.cmd.Wait()

	m.mu.Lock()
	delete(m.procs, p.TaskID)
	m.mu.Unlock()

	p.release.Do(func() {
		m.sem.Release(1)
		metrics.WorkersRunning.Dec()
	})

	p.waitErr = err
	close(p.done)

	ev := log.WithComponent("procmgr").Info().Str("task_id", p.TaskID)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Bool("killed", p.killed.Load()).Msg("worker exited")
}

// Get returns the live process handle for a task, or nil.
func (m *Manager) Get(taskID string) *Process {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.procs[taskID]
}

// IsRunning reports whether a worker subprocess exists for the task.
func (m *Manager) IsRunning(taskID string) bool {
	return m.Get(taskID) != nil
}

// RunningTasks returns the task IDs with live worker subprocesses.
func (m *Manager) RunningTasks() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.procs))
	for id := range m.procs {
		ids = append(ids, id)
	}
	return ids
}

// Cancel terminates the worker for a task. With force the process is
// killed immediately; otherwise it gets a cancel event on stdin plus
// SIGTERM, and SIGKILL after the grace period. The bool result is
// false when no worker is running for the task.
func (m *Manager) Cancel(taskID string, force bool) (bool, error) {
	p := m.Get(taskID)
	if p == nil {
		return false, nil
	}

	if force {
		p.killed.Store(true)
		metrics.WorkersKilled.Inc()
		if err := p.cmd.Process.Kill(); err != nil {
			return true, fmt.Errorf("failed to kill worker for %s: %w", taskID, err)
		}
		log.WithComponent("procmgr").Warn().Str("task_id", taskID).Msg("worker force killed")
		return true, nil
	}

	select {
	case p.stdin <- worker.CancelLine():
	default:
	}
	if err := p.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		return true, fmt.Errorf("failed to signal worker for %s: %w", taskID, err)
	}
	log.WithComponent("procmgr").Info().Str("task_id", taskID).Msg("worker signalled, waiting for exit")

	go func() {
		select {
		case <-p.done:
		case <-time.After(termGrace):
			p.killed.Store(true)
			metrics.WorkersKilled.Inc()
			if err := p.cmd.Process.Kill(); err == nil {
				log.WithComponent("procmgr").Warn().
					Str("task_id", taskID).Msg("worker ignored termination, force killed")
			}
		}
	}()
	return true, nil
}

// Shutdown signals every live worker and waits up to the join bound;
// stragglers are killed.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	live := make([]*Process, 0, len(m.procs))
	for _, p := range m.procs {
		live = append(live, p)
	}
	m.mu.Unlock()

	if len(live) == 0 {
		return
	}
	log.WithComponent("procmgr").Info().Int("workers", len(live)).Msg("terminating workers for shutdown")

	for _, p := range live {
		select {
		case p.stdin <- worker.CancelLine():
		default:
		}
		_ = p.cmd.Process.Signal(syscall.SIGTERM)
	}

	deadline := time.After(shutdownJoin)
	for _, p := range live {
		select {
		case <-p.done:
		case <-deadline:
			p.killed.Store(true)
			metrics.WorkersKilled.Inc()
			_ = p.cmd.Process.Kill()
			<-p.done
		}
	}
}
