// Package progress coordinates in-flight task state. It keeps the
// authoritative in-memory status map, fans events out to gRPC watch
// streams, and funnels every durable write through a single DB writer
// goroutine so the SQLite store never sees concurrent mutations.
package progress

import (
	"sort"
	"sync"

	"github.com/electric-power/algo-service/pkg/log"
	"github.com/electric-power/algo-service/pkg/metrics"
	"github.com/electric-power/algo-service/pkg/store"
	"github.com/electric-power/algo-service/pkg/types"
)

// watchBuffer bounds the per-task event channel. Watchers that fall
// behind lose intermediate events, never the terminal one.
const watchBuffer = 64

type dbOp int

const (
	opStart dbOp = iota
	opProgress
	opFinish
)

type dbEvent struct {
	op           dbOp
	taskID       string
	schemeCode   string
	dataRef      string
	percentage   int
	message      string
	status       types.TaskStatus
	errorMessage string
}

// Manager tracks live task state and serializes store writes.
type Manager struct {
	store *store.TaskStore

	mu       sync.RWMutex
	tasks    map[string]*types.TaskRecord
	watchers map[string]chan types.ProgressEvent
	closed   bool

	queue chan dbEvent
	wg    sync.WaitGroup
}

// NewManager creates a manager backed by ts and starts its DB writer.
func NewManager(ts *store.TaskStore) *Manager {
	m := &Manager{
		store:    ts,
		tasks:    make(map[string]*types.TaskRecord),
		watchers: make(map[string]chan types.ProgressEvent),
		queue:    make(chan dbEvent, 1024),
	}
	m.wg.Add(1)
	go m.writerLoop()
	return m
}

// Close drains the write queue and stops the writer goroutine. The
// dispatcher must be stopped first so no producer is left behind.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.mu.Unlock()

	close(m.queue)
	m.wg.Wait()
}

func (m *Manager) writerLoop() {
	defer m.wg.Done()
	logger := log.WithComponent("progress")
	for ev := range m.queue {
		var err error
		switch ev.op {
		case opStart:
			err = m.store.UpsertStart(ev.taskID, ev.schemeCode, ev.dataRef)
		case opProgress:
			err = m.store.UpdateProgress(ev.taskID, ev.percentage, ev.message, ev.status)
		case opFinish:
			err = m.store.Finish(ev.taskID, ev.status, ev.message, ev.errorMessage)
		}
		if err != nil {
			metrics.StoreWriteFailures.Inc()
			logger.Warn().Err(err).Str("task_id", ev.taskID).Msg("dropping task store write after retries")
			continue
		}
		metrics.StoreWritesTotal.Inc()
	}
}

// enqueue holds the read lock across the send so a concurrent Close
// cannot close the queue between the check and the send. The writer
// keeps draining until Close closes the queue, so the send never
// blocks long enough to stall Close.
func (m *Manager) enqueue(ev dbEvent) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return
	}
	m.queue <- ev
}

// RegisterTask records a new task as RUNNING in memory and queues the
// initial row write. Resubmitting an ID resets its state.
func (m *Manager) RegisterTask(taskID, schemeCode, dataRef string) {
	now := types.NowMillis()
	rec := &types.TaskRecord{
		TaskID:     taskID,
		SchemeCode: schemeCode,
		Status:     types.TaskRunning,
		Percentage: 0,
		Message:    "Initializing",
		DataRef:    dataRef,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	m.mu.Lock()
	m.tasks[taskID] = rec
	if _, ok := m.watchers[taskID]; !ok {
		m.watchers[taskID] = make(chan types.ProgressEvent, watchBuffer)
	}
	m.mu.Unlock()

	m.enqueue(dbEvent{op: opStart, taskID: taskID, schemeCode: schemeCode, dataRef: dataRef})
}

// RecordProgress applies a progress update. Updates to terminal tasks
// are discarded, and a pending cancel request is never downgraded back
// to RUNNING by a late progress event.
func (m *Manager) RecordProgress(taskID string, percentage int, message string) {
	now := types.NowMillis()

	m.mu.Lock()
	rec, ok := m.tasks[taskID]
	if ok && rec.Status.IsTerminal() {
		m.mu.Unlock()
		return
	}
	status := types.TaskRunning
	if ok && rec.Status == types.TaskCancelRequested {
		status = types.TaskCancelRequested
	}
	if !ok {
		rec = &types.TaskRecord{TaskID: taskID, CreatedAt: now}
		m.tasks[taskID] = rec
	}
	// progress never moves backwards; out-of-order reports keep the
	// highest percentage seen so far
	if percentage < rec.Percentage {
		percentage = rec.Percentage
	}
	rec.Status = status
	rec.Percentage = percentage
	rec.Message = message
	rec.UpdatedAt = now
	ch := m.watchers[taskID]
	m.mu.Unlock()

	publish(ch, types.ProgressEvent{
		TaskID:     taskID,
		Percentage: percentage,
		Message:    message,
		Status:     status,
		Timestamp:  now,
	})
	m.enqueue(dbEvent{op: opProgress, taskID: taskID, percentage: percentage, message: message, status: status})
}

// MarkFinished writes a terminal state. The first terminal write wins;
// it returns false when the task had already finished.
func (m *Manager) MarkFinished(taskID string, status types.TaskStatus, message, errorMessage string) bool {
	now := types.NowMillis()

	m.mu.Lock()
	rec, ok := m.tasks[taskID]
	if ok && rec.Status.IsTerminal() {
		m.mu.Unlock()
		return false
	}
	if !ok {
		rec = &types.TaskRecord{TaskID: taskID, CreatedAt: now}
		m.tasks[taskID] = rec
	}
	rec.Status = status
	rec.Percentage = 100
	rec.Message = message
	rec.ErrorMessage = errorMessage
	rec.UpdatedAt = now
	ch := m.watchers[taskID]
	m.mu.Unlock()

	forcePublish(ch, types.ProgressEvent{
		TaskID:     taskID,
		Percentage: 100,
		Message:    message,
		Status:     status,
		Timestamp:  now,
	})
	m.enqueue(dbEvent{op: opFinish, taskID: taskID, status: status, message: message, errorMessage: errorMessage})
	metrics.TasksFinished.WithLabelValues(string(status)).Inc()
	return true
}

// RequestCancel flips a live task to CANCEL_REQUESTED. It returns
// false when the task is unknown or already terminal.
func (m *Manager) RequestCancel(taskID string) bool {
	now := types.NowMillis()

	m.mu.Lock()
	rec, ok := m.tasks[taskID]
	if !ok || rec.Status.IsTerminal() {
		m.mu.Unlock()
		return false
	}
	rec.Status = types.TaskCancelRequested
	rec.UpdatedAt = now
	pct, msg := rec.Percentage, rec.Message
	ch := m.watchers[taskID]
	m.mu.Unlock()

	publish(ch, types.ProgressEvent{
		TaskID:     taskID,
		Percentage: pct,
		Message:    msg,
		Status:     types.TaskCancelRequested,
		Timestamp:  now,
	})
	m.enqueue(dbEvent{op: opProgress, taskID: taskID, percentage: pct, message: msg, status: types.TaskCancelRequested})
	return true
}

// CancelRequested reports whether a cooperative cancel is pending.
func (m *Manager) CancelRequested(taskID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.tasks[taskID]
	return ok && rec.Status == types.TaskCancelRequested
}

// GetTask returns the freshest view of a task: the in-memory record
// when the task is live, otherwise the durable row. Unknown tasks
// return nil.
func (m *Manager) GetTask(taskID string) (*types.TaskRecord, error) {
	m.mu.RLock()
	rec, ok := m.tasks[taskID]
	if ok {
		cp := *rec
		m.mu.RUnlock()
		return &cp, nil
	}
	m.mu.RUnlock()
	return m.store.Get(taskID)
}

// ListTasks merges the durable task list with live in-memory state,
// newest first.
func (m *Manager) ListTasks() ([]*types.TaskRecord, error) {
	stored, err := m.store.List()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*types.TaskRecord, len(stored))
	for _, rec := range stored {
		byID[rec.TaskID] = rec
	}

	m.mu.RLock()
	for id, rec := range m.tasks {
		cp := *rec
		byID[id] = &cp
	}
	m.mu.RUnlock()

	records := make([]*types.TaskRecord, 0, len(byID))
	for _, rec := range byID {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].UpdatedAt != records[j].UpdatedAt {
			return records[i].UpdatedAt > records[j].UpdatedAt
		}
		return records[i].TaskID < records[j].TaskID
	})
	return records, nil
}

// Watch returns the event channel for a task, creating it if needed.
// When the task already has state, a snapshot event is queued first so
// late subscribers see the current position immediately.
func (m *Manager) Watch(taskID string) <-chan types.ProgressEvent {
	m.mu.Lock()
	ch, ok := m.watchers[taskID]
	if !ok {
		ch = make(chan types.ProgressEvent, watchBuffer)
		m.watchers[taskID] = ch
	}
	var snapshot *types.ProgressEvent
	if rec, live := m.tasks[taskID]; live {
		snapshot = &types.ProgressEvent{
			TaskID:     taskID,
			Percentage: rec.Percentage,
			Message:    rec.Message,
			Status:     rec.Status,
			Timestamp:  rec.UpdatedAt,
		}
	}
	m.mu.Unlock()

	if snapshot != nil {
		publish(ch, *snapshot)
	}
	return ch
}

// CloseWatcher drops the event channel for a task. The channel is
// dropped rather than closed: publishers send outside the lock and may
// still hold a reference. Safe to call for tasks never watched.
func (m *Manager) CloseWatcher(taskID string) {
	m.mu.Lock()
	delete(m.watchers, taskID)
	m.mu.Unlock()
}

// publish delivers an event without blocking the execution path. A
// full channel drops the event.
func publish(ch chan types.ProgressEvent, ev types.ProgressEvent) {
	if ch == nil {
		return
	}
	select {
	case ch <- ev:
	default:
		log.WithComponent("progress").Debug().Str("task_id", ev.TaskID).Msg("watch channel full, dropping event")
	}
}

// forcePublish makes room for terminal events so a slow watcher still
// observes the final state.
func forcePublish(ch chan types.ProgressEvent, ev types.ProgressEvent) {
	if ch == nil {
		return
	}
	select {
	case ch <- ev:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- ev:
	default:
	}
}
