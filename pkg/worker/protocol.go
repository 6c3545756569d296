// Package worker implements the CPU worker subprocess: the hidden
// entry point that runs one algorithm to completion and streams its
// lifecycle back to the service over line-delimited JSON.
package worker

import "encoding/json"

// Event op values on the parent-child pipe
const (
	OpProgress = "progress"
	OpFinish   = "finish"
	OpCancel   = "cancel"
)

// Event is one JSON line exchanged between the service and a worker
// subprocess. Workers write progress and finish events on stdout; the
// service writes cancel events on the worker's stdin.
type Event struct {
	Op         string `json:"op"`
	TaskID     string `json:"task_id,omitempty"`
	Percentage int    `json:"percentage,omitempty"`
	Message    string `json:"message,omitempty"`
	Status     string `json:"status,omitempty"`
	Error      string `json:"error,omitempty"`
	ResultJSON string `json:"result_json,omitempty"`
}

// CancelLine returns the serialized cancel event, newline terminated,
// ready to write on a worker's stdin.
func CancelLine() []byte {
	b, _ := json.Marshal(Event{Op: OpCancel})
	return append(b, '\n')
}
