package api

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/electric-power/algo-service/api/proto"
	"github.com/electric-power/algo-service/pkg/dispatcher"
	"github.com/electric-power/algo-service/pkg/hardware"
	"github.com/electric-power/algo-service/pkg/log"
	"github.com/electric-power/algo-service/pkg/plugins"
	"github.com/electric-power/algo-service/pkg/progress"
	"github.com/electric-power/algo-service/pkg/sink"
	"github.com/electric-power/algo-service/pkg/store"
	"github.com/electric-power/algo-service/pkg/types"
)

func TestMain(m *testing.M) {
	_ = log.Init(log.Config{Level: log.ErrorLevel, Console: true})
	plugins.RegisterAll()
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*Server, *progress.Manager) {
	t.Helper()

	ts, err := store.Open(t.TempDir())
	require.NoError(t, err)
	mgr := progress.NewManager(ts)
	hw := hardware.Info{PhysicalCores: 4, LogicalCores: 8}

	d, err := dispatcher.New(mgr, sink.New(t.TempDir(), ""), hw)
	require.NoError(t, err)

	t.Cleanup(func() {
		d.Shutdown()
		mgr.Close()
		ts.Close()
	})
	return NewServer(d, mgr, hw), mgr
}

func TestGetAvailableSchemes(t *testing.T) {
	s, _ := newTestServer(t)

	resp, err := s.GetAvailableSchemes(context.Background(), &pb.Empty{})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Schemes)

	byCode := make(map[string]*pb.Scheme)
	for _, sch := range resp.Schemes {
		byCode[sch.Code] = sch
	}
	require.Contains(t, byCode, "SCM-WF02")
	require.Contains(t, byCode, "M01_WF01")
	assert.Equal(t, "GPU", byCode["M01_WF01"].ResourceType)
	assert.Equal(t, "CPU", byCode["SCM-WF02"].ResourceType)
}

func TestSubmitTaskRequiresScheme(t *testing.T) {
	s, _ := newTestServer(t)

	resp, err := s.SubmitTask(context.Background(), &pb.TaskSubmission{})
	require.NoError(t, err)
	assert.False(t, resp.Accepted)
	assert.Contains(t, resp.Message, "scheme_code")
}

func TestSubmitTaskAssignsID(t *testing.T) {
	s, mgr := newTestServer(t)

	resp, err := s.SubmitTask(context.Background(), &pb.TaskSubmission{
		SchemeCode: "UNKNOWN-WF00",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.TaskId)
	assert.False(t, resp.Accepted)

	// even a rejected submission leaves a FAILED record behind
	require.Eventually(t, func() bool {
		rec, err := mgr.GetTask(resp.TaskId)
		return err == nil && rec != nil && rec.Status == types.TaskFailed
	}, 2*time.Second, 20*time.Millisecond)
}

func TestCancelTaskValidation(t *testing.T) {
	s, _ := newTestServer(t)

	_, err := s.CancelTask(context.Background(), &pb.CancelRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err := s.CancelTask(context.Background(), &pb.CancelRequest{TaskId: "ghost"})
	require.NoError(t, err)
	assert.False(t, resp.Accepted)
	assert.Equal(t, types.CancelStatusNotFound, resp.Status)
}

func TestCheckHealth(t *testing.T) {
	s, _ := newTestServer(t)

	resp, err := s.CheckHealth(context.Background(), &pb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, pb.HealthStatus_SERVING, resp.Status)
	assert.Equal(t, "cpu", resp.Device)
	assert.False(t, resp.Gpu)
	assert.Equal(t, "4", resp.Metrics["physical_cores"])
}

func TestGetTaskStatus(t *testing.T) {
	s, mgr := newTestServer(t)

	_, err := s.GetTaskStatus(context.Background(), &pb.TaskStatusRequest{TaskId: "ghost"})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))

	mgr.RegisterTask("t1", "SCM-WF01", "")
	mgr.RecordProgress("t1", 42, "Screening branches...")

	resp, err := s.GetTaskStatus(context.Background(), &pb.TaskStatusRequest{TaskId: "t1"})
	require.NoError(t, err)
	assert.Equal(t, "SCM-WF01", resp.SchemeCode)
	assert.Equal(t, int32(42), resp.Percentage)
	assert.Equal(t, string(types.TaskRunning), resp.Status)
}

func TestListTasks(t *testing.T) {
	s, mgr := newTestServer(t)

	mgr.RegisterTask("a", "SCM-WF01", "")
	mgr.RegisterTask("b", "STM-WF02", "")

	resp, err := s.ListTasks(context.Background(), &pb.TaskListRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Tasks, 2)
}

type fakeWatchStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent []*pb.ProgressUpdate
}

func (f *fakeWatchStream) Context() context.Context { return f.ctx }

func (f *fakeWatchStream) Send(u *pb.ProgressUpdate) error {
	f.sent = append(f.sent, u)
	return nil
}

func TestWatchTerminalReplay(t *testing.T) {
	s, mgr := newTestServer(t)

	mgr.RegisterTask("t1", "SCM-WF01", "")
	mgr.MarkFinished("t1", types.TaskSuccess, "Completed", "")

	stream := &fakeWatchStream{ctx: context.Background()}
	require.NoError(t, s.WatchTaskProgress(&pb.ProgressRequest{TaskId: "t1"}, stream))
	require.Len(t, stream.sent, 1)
	assert.Equal(t, string(types.TaskSuccess), stream.sent[0].Status)
	assert.Equal(t, int32(100), stream.sent[0].Percentage)
}

func TestWatchStreamsUntilTerminal(t *testing.T) {
	s, mgr := newTestServer(t)

	mgr.RegisterTask("t1", "SCM-WF01", "")

	go func() {
		time.Sleep(50 * time.Millisecond)
		mgr.RecordProgress("t1", 30, "Screening branches...")
		mgr.RecordProgress("t1", 80, "Summarizing...")
		mgr.MarkFinished("t1", types.TaskSuccess, "Completed", "")
	}()

	stream := &fakeWatchStream{ctx: context.Background()}
	require.NoError(t, s.WatchTaskProgress(&pb.ProgressRequest{TaskId: "t1"}, stream))

	require.NotEmpty(t, stream.sent)
	last := stream.sent[len(stream.sent)-1]
	assert.Equal(t, string(types.TaskSuccess), last.Status)
}

func TestWatchUnknownTask(t *testing.T) {
	s, _ := newTestServer(t)

	stream := &fakeWatchStream{ctx: context.Background()}
	err := s.WatchTaskProgress(&pb.ProgressRequest{TaskId: "ghost"}, stream)
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestWatchClientDisconnect(t *testing.T) {
	s, mgr := newTestServer(t)

	mgr.RegisterTask("t1", "SCM-WF01", "")

	ctx, cancel := context.WithCancel(context.Background())
	stream := &fakeWatchStream{ctx: ctx}

	done := make(chan error, 1)
	go func() { done <- s.WatchTaskProgress(&pb.ProgressRequest{TaskId: "t1"}, stream) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not end on disconnect")
	}
}
