package worker

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/electric-power/algo-service/pkg/algorithm"
	"github.com/electric-power/algo-service/pkg/dataref"
	"github.com/electric-power/algo-service/pkg/log"
	"github.com/electric-power/algo-service/pkg/types"
)

// emitter serializes protocol events onto the pipe. Stdout carries
// only protocol lines; all logging goes to stderr and the log file.
type emitter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func newEmitter(w io.Writer) *emitter {
	return &emitter{enc: json.NewEncoder(w)}
}

func (e *emitter) emit(ev Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	_ = e.enc.Encode(ev)
}

// reporter implements algorithm.Reporter on top of the event pipe.
type reporter struct {
	taskID    string
	out       *emitter
	cancelled *atomic.Bool
}

func (r *reporter) Update(percentage int, message string) error {
	if r.cancelled.Load() {
		return algorithm.ErrCancelled
	}
	r.out.emit(Event{
		Op:         OpProgress,
		TaskID:     r.taskID,
		Percentage: percentage,
		Message:    message,
	})
	return nil
}

// Run executes one algorithm inside a worker subprocess and streams
// its lifecycle to stdout. It returns a non-nil error when the task
// did not succeed so the command layer can exit non-zero.
func Run(taskID, schemeCode, paramsJSON, dataRef string) error {
	out := newEmitter(os.Stdout)
	logger := log.WithComponent("worker").With().Str("task_id", taskID).Logger()

	var cancelled atomic.Bool

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		logger.Info().Msg("termination signal received")
		cancelled.Store(true)
	}()

	// cancel events arrive on stdin; EOF just ends the reader
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			var ev Event
			if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
				continue
			}
			if ev.Op == OpCancel {
				logger.Info().Msg("cancel event received")
				cancelled.Store(true)
			}
		}
	}()

	fail := func(errMsg string) error {
		out.emit(Event{
			Op:     OpFinish,
			TaskID: taskID,
			Status: string(types.TaskFailed),
			Error:  errMsg,
		})
		return fmt.Errorf("%s", errMsg)
	}

	algo := algorithm.Get(schemeCode)
	if algo == nil {
		return fail(fmt.Sprintf("scheme %s not found", schemeCode))
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
		logger.Error().Err(err).Str("data_ref", dataRef).Msg("data load failed")
		return fail(fmt.Sprintf("failed to load data: %v", err))
	}

	logger.Info().Str("scheme", schemeCode).Int("rows", data.Len()).Msg("task starting")

	result, err := execute(algo, &algorithm.Context{
		TaskID:   taskID,
		Params:   params,
		Data:     data,
		Reporter: &reporter{taskID: taskID, out: out, cancelled: &cancelled},
		Logger:   logger,
	})

	switch {
	case errors.Is(err, algorithm.ErrCancelled):
		logger.Info().Msg("task cancelled")
		out.emit(Event{
			Op:      OpFinish,
			TaskID:  taskID,
			Status:  string(types.TaskCancelled),
			Message: "Cancelled by user",
		})
		return nil
	case err != nil:
		logger.Error().Err(err).Msg("task failed")
		return fail(err.Error())
	}

	resultJSON, mErr := json.Marshal(types.JSONSafe(result))
	if mErr != nil {
		logger.Error().Err(mErr).Msg("result not encodable")
		resultJSON = []byte("null")
	}

	logger.Info().Msg("task completed")
	out.emit(Event{
		Op:         OpFinish,
		TaskID:     taskID,
		Status:     string(types.TaskSuccess),
		Message:    "Completed",
		ResultJSON: string(resultJSON),
	})
	return nil
}

// execute isolates algorithm panics so a buggy plugin reports FAILED
// instead of crashing the worker without a finish event.
func execute(algo algorithm.Algorithm, ctx *algorithm.Context) (result map[string]any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("algorithm panic: %v", r)
		}
	}()
	return algo.Execute(ctx)
}
