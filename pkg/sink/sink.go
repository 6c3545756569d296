// Package sink delivers final task results: a JSON artifact on local
// disk for every task, plus an optional push to the backend's result
// receiver when a target address is configured. Delivery is best
// effort and never fails the task itself.
package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/electric-power/algo-service/api/proto"
	"github.com/electric-power/algo-service/pkg/log"
	"github.com/electric-power/algo-service/pkg/types"
)

const (
	pushTimeout = 10 * time.Second
	pushRetries = 3
)

// Sink writes result artifacts and pushes them to the backend.
type Sink struct {
	resultDir string
	target    string
}

// New creates a sink. An empty target disables the backend push.
func New(resultDir, target string) *Sink {
	return &Sink{resultDir: resultDir, target: target}
}

type envelope struct {
	TaskID       string `json:"task_id"`
	Status       string `json:"status"`
	Message      string `json:"message"`
	ErrorMessage string `json:"error,omitempty"`
	Result       any    `json:"data"`
	FinishedAt   int64  `json:"finished_at"`
}

// Deliver records the outcome of a task that finished in-process.
func (s *Sink) Deliver(taskID string, status types.TaskStatus, message, errorMessage string, result map[string]any) {
	raw, err := json.Marshal(types.JSONSafe(result))
	if err != nil {
		log.WithComponent("sink").Error().Err(err).Str("task_id", taskID).Msg("result not encodable")
		raw = []byte("null")
	}
	s.DeliverRaw(taskID, status, message, errorMessage, string(raw))
}

// DeliverRaw records an outcome whose result payload is already JSON,
// as received from a worker subprocess.
func (s *Sink) DeliverRaw(taskID string, status types.TaskStatus, message, errorMessage, resultJSON string) {
	if resultJSON == "" {
		resultJSON = "null"
	}
	s.writeArtifact(taskID, status, message, errorMessage, resultJSON)
	if s.target != "" {
		s.push(taskID, status, message, errorMessage, resultJSON)
	}
}

func (s *Sink) artifactPath(taskID string) string {
	return filepath.Join(s.resultDir, taskID+".json")
}

func (s *Sink) writeArtifact(taskID string, status types.TaskStatus, message, errorMessage, resultJSON string) {
	logger := log.WithComponent("sink")

	if err := os.MkdirAll(s.resultDir, 0o755); err != nil {
		logger.Error().Err(err).Msg("failed to create result dir")
		return
	}

	env := envelope{
		TaskID:       taskID,
		Status:       string(status),
		Message:      message,
		ErrorMessage: errorMessage,
		Result:       json.RawMessage(resultJSON),
		FinishedAt:   types.NowMillis(),
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		logger.Error().Err(err).Str("task_id", taskID).Msg("failed to encode result artifact")
		return
	}

	path := s.artifactPath(taskID)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Error().Err(err).Str("task_id", taskID).Msg("failed to write result artifact")
		return
	}
	logger.Debug().Str("task_id", taskID).Str("path", path).Msg("result artifact written")
}

func (s *Sink) push(taskID string, status types.TaskStatus, message, errorMessage, resultJSON string) {
	logger := log.WithComponent("sink")

	conn, err := grpc.NewClient(s.target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Warn().Err(err).Str("target", s.target).Msg("result push skipped, backend unreachable")
		return
	}
	defer conn.Close()
	client := pb.NewResultReceiverServiceClient(conn)

	req := s.buildTaskResult(taskID, status, message, errorMessage, resultJSON)

	op := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()
		ack, err := client.ReportResult(ctx, req)
		if err != nil {
			return err
		}
		if !ack.GetOk() {
			return fmt.Errorf("backend rejected result for %s", taskID)
		}
		return nil
	}

	bo := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), pushRetries)
	if err := backoff.Retry(op, bo); err != nil {
		logger.Warn().Err(err).Str("task_id", taskID).Msg("result push failed, artifact remains on disk")
		return
	}
	logger.Info().Str("task_id", taskID).Msg("result pushed to backend")
}

func (s *Sink) buildTaskResult(taskID string, status types.TaskStatus, message, errorMessage, resultJSON string) *pb.TaskResult {
	return &pb.TaskResult{
		TaskId:       taskID,
		Status:       pushStatus(status),
		Message:      message,
		ErrorMessage: errorMessage,
		ResultJson:   resultJSON,
		LogPath:      s.artifactPath(taskID),
	}
}

func pushStatus(status types.TaskStatus) pb.TaskResult_Status {
	switch status {
	case types.TaskSuccess:
		return pb.TaskResult_SUCCESS
	case types.TaskFailed:
		return pb.TaskResult_FAILED
	case types.TaskCancelled:
		return pb.TaskResult_CANCELLED
	}
	return pb.TaskResult_UNKNOWN
}
