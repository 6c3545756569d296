// Package api exposes the AlgoControlService gRPC surface.
package api

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/electric-power/algo-service/api/proto"
	"github.com/electric-power/algo-service/pkg/algorithm"
	"github.com/electric-power/algo-service/pkg/dispatcher"
	"github.com/electric-power/algo-service/pkg/hardware"
	"github.com/electric-power/algo-service/pkg/log"
	"github.com/electric-power/algo-service/pkg/progress"
	"github.com/electric-power/algo-service/pkg/types"
)

// watchIdleTimeout ends a progress stream that has seen no events.
const watchIdleTimeout = 60 * time.Second

// Server implements the AlgoControlService gRPC service
type Server struct {
	pb.UnimplementedAlgoControlServiceServer
	dispatcher *dispatcher.Dispatcher
	mgr        *progress.Manager
	hw         hardware.Info
	grpc       *grpc.Server
}

// NewServer creates a new API server
func NewServer(d *dispatcher.Dispatcher, mgr *progress.Manager, hw hardware.Info) *Server {
	return &Server{
		dispatcher: d,
		mgr:        mgr,
		hw:         hw,
		grpc:       grpc.NewServer(),
	}
}

// Start starts the gRPC server
func (s *Server) Start(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	pb.RegisterAlgoControlServiceServer(s.grpc, s)

	log.WithComponent("api").Info().Str("addr", addr).Msg("gRPC API listening")
	return s.grpc.Serve(lis)
}

// Stop gracefully stops the gRPC server
func (s *Server) Stop() {
	if s.grpc != nil {
		s.grpc.GracefulStop()
	}
}

// GetAvailableSchemes lists every registered algorithm
func (s *Server) GetAvailableSchemes(ctx context.Context, req *pb.Empty) (*pb.SchemeList, error) {
	schemes := algorithm.List()
	resp := &pb.SchemeList{Schemes: make([]*pb.Scheme, 0, len(schemes))}
	for _, sch := range schemes {
		resp.Schemes = append(resp.Schemes, &pb.Scheme{
			Code:         sch.Code,
			Name:         sch.Name,
			Description:  sch.Description,
			ResourceType: string(sch.ResourceType),
			Model:        sch.Model,
			ClassName:    sch.ClassName,
		})
	}
	return resp, nil
}

// SubmitTask accepts a task for execution. A missing task_id gets one
// assigned so callers can be fire-and-forget.
func (s *Server) SubmitTask(ctx context.Context, req *pb.TaskSubmission) (*pb.TaskSubmissionResponse, error) {
	if req.SchemeCode == "" {
		return &pb.TaskSubmissionResponse{
			TaskId:   req.TaskId,
			Accepted: false,
			Message:  "scheme_code is required",
		}, nil
	}

	taskID := req.TaskId
	if taskID == "" {
		taskID = uuid.New().String()
	}

	accepted, msg := s.dispatcher.Submit(taskID, req.SchemeCode, req.ParamsJson, req.DataRef)
	return &pb.TaskSubmissionResponse{
		TaskId:   taskID,
		Accepted: accepted,
		Message:  msg,
	}, nil
}

// CancelTask requests or forces cancellation of a task
func (s *Server) CancelTask(ctx context.Context, req *pb.CancelRequest) (*pb.CancelResponse, error) {
	if req.TaskId == "" {
		return nil, status.Error(codes.InvalidArgument, "task_id is required")
	}
	out := s.dispatcher.Cancel(req.TaskId, req.Force)
	return &pb.CancelResponse{
		Accepted: out.Accepted,
		Message:  out.Message,
		Status:   out.Status,
	}, nil
}

// CheckHealth reports service readiness and execution resources
func (s *Server) CheckHealth(ctx context.Context, req *pb.HealthCheckRequest) (*pb.HealthStatus, error) {
	return &pb.HealthStatus{
		Status: pb.HealthStatus_SERVING,
		Device: s.hw.Device(),
		Gpu:    s.hw.HasGPU,
		Metrics: map[string]string{
			"cpu_workers":    strconv.Itoa(s.dispatcher.Workers()),
			"physical_cores": strconv.Itoa(s.hw.PhysicalCores),
			"gpu_name":       s.hw.GPUName,
		},
	}, nil
}

// WatchTaskProgress streams progress updates until the task reaches a
// terminal state, the stream idles out, or the client goes away.
func (s *Server) WatchTaskProgress(req *pb.ProgressRequest, stream pb.AlgoControlService_WatchTaskProgressServer) error {
	if req.TaskId == "" {
		return status.Error(codes.InvalidArgument, "task_id is required")
	}

	rec, err := s.mgr.GetTask(req.TaskId)
	if err != nil {
		return status.Errorf(codes.Internal, "failed to load task: %v", err)
	}
	if rec == nil {
		return status.Errorf(codes.NotFound, "task %s not found", req.TaskId)
	}
	if rec.Status.IsTerminal() {
		// late attach: replay the final state and end the stream
		return stream.Send(&pb.ProgressUpdate{
			TaskId:     rec.TaskID,
			Percentage: int32(rec.Percentage),
			Message:    rec.Message,
			Status:     string(rec.Status),
			Timestamp:  rec.UpdatedAt,
		})
	}

	ch := s.mgr.Watch(req.TaskId)
	idle := time.NewTimer(watchIdleTimeout)
	defer idle.Stop()

	for {
		select {
		case ev := <-ch:
			if err := stream.Send(&pb.ProgressUpdate{
				TaskId:     ev.TaskID,
				Percentage: int32(ev.Percentage),
				Message:    ev.Message,
				Status:     string(ev.Status),
				Timestamp:  ev.Timestamp,
			}); err != nil {
				return err
			}
			if ev.Status.IsTerminal() {
				s.mgr.CloseWatcher(req.TaskId)
				return nil
			}
			if !idle.Stop() {
				<-idle.C
			}
			idle.Reset(watchIdleTimeout)
		case <-idle.C:
			return status.Errorf(codes.DeadlineExceeded, "no progress for %s", watchIdleTimeout)
		case <-stream.Context().Done():
			return stream.Context().Err()
		}
	}
}

// ListTasks returns every known task, newest first
func (s *Server) ListTasks(ctx context.Context, req *pb.TaskListRequest) (*pb.TaskList, error) {
	records, err := s.mgr.ListTasks()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list tasks: %v", err)
	}
	resp := &pb.TaskList{Tasks: make([]*pb.TaskStatusReply, 0, len(records))}
	for _, rec := range records {
		resp.Tasks = append(resp.Tasks, taskToProto(rec))
	}
	return resp, nil
}

// GetTaskStatus returns the current state of one task
func (s *Server) GetTaskStatus(ctx context.Context, req *pb.TaskStatusRequest) (*pb.TaskStatusReply, error) {
	if req.TaskId == "" {
		return nil, status.Error(codes.InvalidArgument, "task_id is required")
	}
	rec, err := s.mgr.GetTask(req.TaskId)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to load task: %v", err)
	}
	if rec == nil {
		return nil, status.Errorf(codes.NotFound, "task %s not found", req.TaskId)
	}
	return taskToProto(rec), nil
}

func taskToProto(rec *types.TaskRecord) *pb.TaskStatusReply {
	return &pb.TaskStatusReply{
		TaskId:       rec.TaskID,
		SchemeCode:   rec.SchemeCode,
		Status:       string(rec.Status),
		Percentage:   int32(rec.Percentage),
		Message:      rec.Message,
		ErrorMessage: rec.ErrorMessage,
		DataRef:      rec.DataRef,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}
