package types

import "time"

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

const (
	TaskQueued          TaskStatus = "QUEUED"
	TaskRunning         TaskStatus = "RUNNING"
	TaskCancelRequested TaskStatus = "CANCEL_REQUESTED"
	TaskCancelled       TaskStatus = "CANCELLED"
	TaskSuccess         TaskStatus = "SUCCESS"
	TaskFailed          TaskStatus = "FAILED"
)

// IsTerminal reports whether the status is one of the final states.
func (s TaskStatus) IsTerminal() bool {
	switch s {
	case TaskSuccess, TaskFailed, TaskCancelled:
		return true
	}
	return false
}

// ResourceType selects the executor for an algorithm
type ResourceType string

const (
	ResourceCPU ResourceType = "CPU"
	ResourceGPU ResourceType = "GPU"
)

// TaskRecord is the durable view of a task kept in the task store
type TaskRecord struct {
	TaskID       string     `json:"task_id"`
	SchemeCode   string     `json:"scheme_code"`
	Status       TaskStatus `json:"status"`
	Percentage   int        `json:"percentage"`
	Message      string     `json:"message"`
	ErrorMessage string     `json:"error_message"`
	DataRef      string     `json:"data_ref"`
	CreatedAt    int64      `json:"created_at"` // milliseconds since epoch
	UpdatedAt    int64      `json:"updated_at"`
}

// ProgressEvent is a single in-flight progress update for a task
type ProgressEvent struct {
	TaskID     string     `json:"task_id"`
	Percentage int        `json:"percentage"`
	Message    string     `json:"message"`
	Status     TaskStatus `json:"status"`
	Timestamp  int64      `json:"timestamp"`
}

// SchemeInfo describes a registered algorithm for service discovery
type SchemeInfo struct {
	Code         string       `json:"code"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	ResourceType ResourceType `json:"resource_type"`
	Model        string       `json:"model,omitempty"`
	ClassName    string       `json:"class,omitempty"`
}

// CancelOutcome reports the result of a cancellation attempt
type CancelOutcome struct {
	Accepted bool
	Message  string
	Status   string
}

// Cancel outcome status values
const (
	CancelStatusCancelled   = "CANCELLED"
	CancelStatusTerminating = "TERMINATING"
	CancelStatusRequested   = "CANCEL_REQUESTED"
	CancelStatusNotFound    = "NOT_FOUND"
	CancelStatusFinished    = "FINISHED"
	CancelStatusKilled      = "KILLED"
	CancelStatusError       = "ERROR"
)

// NowMillis returns the current wall clock in milliseconds since epoch.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
