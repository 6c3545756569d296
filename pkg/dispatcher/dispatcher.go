// Package dispatcher routes submitted tasks to an executor and drives
// their lifecycle to a terminal state. CPU schemes run in worker
// subprocesses so they can be force-killed; GPU schemes share the
// in-process pool. Cancellation picks the strongest mechanism the
// executor supports.
package dispatcher

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/electric-power/algo-service/pkg/algorithm"
	"github.com/electric-power/algo-service/pkg/dataref"
	"github.com/electric-power/algo-service/pkg/hardware"
	"github.com/electric-power/algo-service/pkg/log"
	"github.com/electric-power/algo-service/pkg/metrics"
	"github.com/electric-power/algo-service/pkg/procmgr"
	"github.com/electric-power/algo-service/pkg/progress"
	"github.com/electric-power/algo-service/pkg/sink"
	"github.com/electric-power/algo-service/pkg/types"
	"github.com/electric-power/algo-service/pkg/worker"
)

const (
	// termWatch bounds how long a graceful cancel waits before the
	// worker is force-killed anyway.
	termWatch     = 10 * time.Second
	termWatchTick = 500 * time.Millisecond

	gpuPoolSize = 2
)

// Dispatcher owns both executors and the cancellation logic.
type Dispatcher struct {
	mgr   *progress.Manager
	procs *procmgr.Manager
	pool  *hardware.Pool
	hw    hardware.Info
	sink  *sink.Sink

	workerBin string

	mu      sync.Mutex
	futures map[string]*hardware.Future

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a dispatcher. The GPU pool is started even on CPU-only
// hosts; without a GPU it simply runs GPU schemes on the CPU.
func New(mgr *progress.Manager, snk *sink.Sink, hw hardware.Info) (*Dispatcher, error) {
	bin, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve worker binary: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		mgr:       mgr,
		procs:     procmgr.New(hardware.WorkerSlots(hw.PhysicalCores)),
		pool:      hardware.NewPool(gpuPoolSize),
		hw:        hw,
		sink:      snk,
		workerBin: bin,
		futures:   make(map[string]*hardware.Future),
		ctx:       ctx,
		cancel:    cancel,
	}, nil
}

// Workers returns the CPU worker slot count.
func (d *Dispatcher) Workers() int {
	return d.procs.Slots()
}

// Submit validates and launches a task. It returns immediately; the
// task may still wait for a free worker slot.
func (d *Dispatcher) Submit(taskID, schemeCode, paramsJSON, dataRef string) (bool, string) {
	logger := log.WithComponent("dispatcher").With().Str("task_id", taskID).Logger()

	algo := algorithm.Get(schemeCode)
	if algo == nil {
		msg := fmt.Sprintf("scheme %s not found", schemeCode)
		logger.Warn().Str("scheme", schemeCode).Msg("submission rejected")
		d.mgr.RegisterTask(taskID, schemeCode, dataRef)
		d.finish(taskID, types.TaskFailed, "Failed", msg, "")
		return false, msg
	}

	d.mgr.RegisterTask(taskID, schemeCode, dataRef)
	metrics.TasksSubmitted.Inc()

	// without a GPU the pool would just burn CPU outside the worker
	// semaphore, so GPU schemes fall back to the subprocess executor
	meta := algo.Meta()
	if meta.ResourceType == types.ResourceGPU && d.hw.HasGPU {
		logger.Info().Str("scheme", schemeCode).Msg("task routed to GPU pool")
		d.submitGPU(taskID, schemeCode, paramsJSON, dataRef)
	} else {
		logger.Info().Str("scheme", schemeCode).Msg("task routed to CPU workers")
		d.wg.Add(1)
		go d.runSubprocess(taskID, schemeCode, paramsJSON, dataRef)
	}
	return true, "task accepted"
}

// finish applies a terminal state and delivers the result exactly once.
func (d *Dispatcher) finish(taskID string, status types.TaskStatus, message, errMsg, resultJSON string) {
	if !d.mgr.MarkFinished(taskID, status, message, errMsg) {
		return
	}
	d.sink.DeliverRaw(taskID, status, message, errMsg, resultJSON)
}

// ---------------------------------------------------------------------
// CPU subprocess execution

func (d *Dispatcher) runSubprocess(taskID, schemeCode, paramsJSON, dataRef string) {
	defer d.wg.Done()
	logger := log.WithComponent("dispatcher").With().Str("task_id", taskID).Logger()

	cmd := exec.Command(d.workerBin, "worker",
		"--task-id", taskID,
		"--scheme", schemeCode,
		"--params", paramsJSON,
		"--data-ref", dataRef,
	)
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		d.finish(taskID, types.TaskFailed, "Failed", fmt.Sprintf("failed to open worker pipe: %v", err), "")
		return
	}

	proc, err := d.procs.Submit(d.ctx, taskID, cmd)
	if err != nil {
		stdout.Close()
		if d.ctx.Err() != nil {
			d.finish(taskID, types.TaskCancelled, "Cancelled", "service shutting down", "")
			return
		}
		d.finish(taskID, types.TaskFailed, "Failed", fmt.Sprintf("failed to start worker: %v", err), "")
		return
	}

	var final *worker.Event
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		var ev worker.Event
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			logger.Debug().Str("line", scanner.Text()).Msg("non-protocol output from worker")
			continue
		}
		switch ev.Op {
		case worker.OpProgress:
			d.mgr.RecordProgress(taskID, ev.Percentage, ev.Message)
		case worker.OpFinish:
			final = &ev
		}
	}

	<-proc.Done()

	if final != nil {
		status := types.TaskStatus(final.Status)
		msg := final.Message
		if msg == "" {
			msg = defaultMessage(status)
		}
		d.finish(taskID, status, msg, final.Error, final.ResultJSON)
		return
	}

	// the worker died without a finish event
	if proc.WasKilled() {
		d.finish(taskID, types.TaskCancelled, "Cancelled by user (forced)", "", "")
		return
	}
	errMsg := "worker exited unexpectedly"
	if err := proc.ExitErr(); err != nil {
		errMsg = fmt.Sprintf("worker exited unexpectedly: %v", err)
	}
	logger.Error().Str("error", errMsg).Msg("worker lost")
	d.finish(taskID, types.TaskFailed, "Failed", errMsg, "")
}

func defaultMessage(status types.TaskStatus) string {
	switch status {
	case types.TaskSuccess:
		return "Completed"
	case types.TaskCancelled:
		return "Cancelled by user"
	}
	return "Failed"
}

// ---------------------------------------------------------------------
// GPU in-process execution

func (d *Dispatcher) submitGPU(taskID, schemeCode, paramsJSON, dataRef string) {
	f := d.pool.Submit(func() {
		d.runInProcess(taskID, schemeCode, paramsJSON, dataRef)
	})
	if f == nil {
		d.finish(taskID, types.TaskFailed, "Failed", "executor is shut down", "")
		return
	}

	d.mu.Lock()
	d.futures[taskID] = f
	d.mu.Unlock()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		<-f.Done()
		if f.Cancelled() {
			d.finish(taskID, types.TaskCancelled, "Cancelled before start", "", "")
		}
		d.mu.Lock()
		delete(d.futures, taskID)
		d.mu.Unlock()
	}()
}

func (d *Dispatcher) future(taskID string) *hardware.Future {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.futures[taskID]
}

// cancelReporter feeds progress into the manager and turns a pending
// cancel request into the cancellation error algorithms bubble up.
type cancelReporter struct {
	taskID string
	mgr    *progress.Manager
}

func (r *cancelReporter) Update(percentage int, message string) error {
	if r.mgr.CancelRequested(r.taskID) {
		return algorithm.ErrCancelled
	}
	r.mgr.RecordProgress(r.taskID, percentage, message)
	return nil
}

func (d *Dispatcher) runInProcess(taskID, schemeCode, paramsJSON, dataRef string) {
	logger := log.WithComponent("executor").With().Str("task_id", taskID).Logger()

	algo := algorithm.Get(schemeCode)
	if algo == nil {
		d.finish(taskID, types.TaskFailed, "Failed", fmt.Sprintf("scheme %s not found", schemeCode), "")
		return
	}

	params := map[string]any{}
	if paramsJSON != "" {
		if err := json.Unmarshal([]byte(paramsJSON), &params); err != nil {
			logger.Warn().Err(err).Msg("invalid params, running with empty set")
			params = map[string]any{}
		}
	}

	data, err := dataref.Load(dataRef)
	if err != nil {
		d.finish(taskID, types.TaskFailed, "Failed", fmt.Sprintf("failed to load data: %v", err), "")
		return
	}

	result, err := runGuarded(algo, &algorithm.Context{
		TaskID:   taskID,
		Params:   params,
		Data:     data,
		Reporter: &cancelReporter{taskID: taskID, mgr: d.mgr},
		Logger:   logger,
	})

	switch {
	case err == nil:
		raw, mErr := json.Marshal(types.JSONSafe(result))
		if mErr != nil {
			raw = []byte("null")
		}
		d.finish(taskID, types.TaskSuccess, "Completed", "", string(raw))
	case err == algorithm.ErrCancelled:
		d.finish(taskID, types.TaskCancelled, "Cancelled by user", "", "")
	default:
		logger.Error().Err(err).Msg("task failed")
		d.finish(taskID, types.TaskFailed, "Failed", err.Error(), "")
	}
}

func runGuarded(algo algorithm.Algorithm, ctx *algorithm.Context) (result map[string]any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("algorithm panic: %v", r)
		}
	}()
	return algo.Execute(ctx)
}

// ---------------------------------------------------------------------
// Cancellation

// Cancel stops a task. Force kills a CPU worker outright; otherwise
// the worker is signalled and force-killed only if it outlives the
// watch window. Tasks without a killable process fall back to the
// cooperative cancel flag.
func (d *Dispatcher) Cancel(taskID string, force bool) types.CancelOutcome {
	logger := log.WithComponent("dispatcher").With().Str("task_id", taskID).Logger()

	rec, err := d.mgr.GetTask(taskID)
	if err != nil {
		return types.CancelOutcome{Accepted: false, Message: err.Error(), Status: types.CancelStatusError}
	}
	if rec == nil {
		return types.CancelOutcome{Accepted: false, Message: "task not found", Status: types.CancelStatusNotFound}
	}
	if rec.Status.IsTerminal() {
		return types.CancelOutcome{Accepted: false, Message: "task already finished", Status: types.CancelStatusFinished}
	}

	// a queued GPU job can be dropped before it ever starts
	if f := d.future(taskID); f != nil && f.Cancel() {
		logger.Info().Msg("queued task cancelled before start")
		return types.CancelOutcome{Accepted: true, Message: "cancelled before start", Status: types.CancelStatusCancelled}
	}

	if d.procs.IsRunning(taskID) {
		if force {
			if _, err := d.procs.Cancel(taskID, true); err != nil {
				return types.CancelOutcome{Accepted: false, Message: err.Error(), Status: types.CancelStatusError}
			}
			d.finish(taskID, types.TaskCancelled, "Cancelled by user (forced)", "", "")
			return types.CancelOutcome{Accepted: true, Message: "worker killed", Status: types.CancelStatusKilled}
		}

		if _, err := d.procs.Cancel(taskID, false); err != nil {
			return types.CancelOutcome{Accepted: false, Message: err.Error(), Status: types.CancelStatusError}
		}
		d.mgr.RequestCancel(taskID)
		d.wg.Add(1)
		go d.watchTermination(taskID)
		return types.CancelOutcome{Accepted: true, Message: "termination signalled", Status: types.CancelStatusTerminating}
	}

	// running in-process, or between queue and executor: cooperative
	if d.mgr.RequestCancel(taskID) {
		logger.Info().Msg("cooperative cancel requested")
		return types.CancelOutcome{Accepted: true, Message: "cancel requested", Status: types.CancelStatusRequested}
	}
	return types.CancelOutcome{Accepted: false, Message: "task already finished", Status: types.CancelStatusFinished}
}

// watchTermination polls a signalled worker and escalates to a kill
// when it does not reach a terminal state inside the watch window.
func (d *Dispatcher) watchTermination(taskID string) {
	defer d.wg.Done()
	deadline := time.After(termWatch)
	tick := time.NewTicker(termWatchTick)
	defer tick.Stop()

	for {
		select {
		case <-tick.C:
			rec, err := d.mgr.GetTask(taskID)
			if err == nil && rec != nil && rec.Status.IsTerminal() {
				return
			}
			if !d.procs.IsRunning(taskID) {
				return
			}
		case <-deadline:
			if !d.procs.IsRunning(taskID) {
				return
			}
			log.WithComponent("dispatcher").Warn().
				Str("task_id", taskID).Msg("worker outlived termination window, killing")
			_, _ = d.procs.Cancel(taskID, true)
			d.finish(taskID, types.TaskCancelled, "Cancelled by user (forced)", "", "")
			return
		}
	}
}

// Shutdown stops intake, drops queued GPU jobs, terminates live
// workers and waits for supervision goroutines.
func (d *Dispatcher) Shutdown() {
	d.cancel()

	d.mu.Lock()
	queued := make(map[string]*hardware.Future, len(d.futures))
	for id, f := range d.futures {
		queued[id] = f
	}
	d.mu.Unlock()
	for id, f := range queued {
		if f.Cancel() {
			log.WithComponent("dispatcher").Info().Str("task_id", id).Msg("queued task dropped for shutdown")
		}
	}

	d.procs.Shutdown()
	d.pool.Shutdown()
	d.wg.Wait()
}
