// internal/service/events_grpc.go
package service

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	eventsv1 "taskmanager/api/proto/events/v1/generated"
	ent "taskmanager/ent/generated"
)

// EventService exposes the notification core's entry points over gRPC so
// the web-facing process can invoke them after its writes commit.
type EventService struct {
	eventsv1.UnimplementedEventServiceServer
	triggers *EventTriggers
	sweep    *DueDateSweep
}

// NewEventService creates a new event service
func NewEventService(triggers *EventTriggers, sweep *DueDateSweep) *EventService {
	return &EventService{
		triggers: triggers,
		sweep:    sweep,
	}
}

// TaskCreated handles the task-created event
func (s *EventService) TaskCreated(ctx context.Context, req *eventsv1.TaskCreatedRequest) (*emptypb.Empty, error) {
	id, err := uuid.Parse(req.TaskId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid task ID format")
	}

	if err := s.triggers.TaskCreated(ctx, id); err != nil {
		return nil, toStatus(err, "task not found")
	}
	return &emptypb.Empty{}, nil
}

// CommentCreated handles the comment-created event
func (s *EventService) CommentCreated(ctx context.Context, req *eventsv1.CommentCreatedRequest) (*emptypb.Empty, error) {
	id, err := uuid.Parse(req.CommentId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid comment ID format")
	}

	if err := s.triggers.CommentCreated(ctx, id); err != nil {
		return nil, toStatus(err, "comment not found")
	}
	return &emptypb.Empty{}, nil
}

// CommentUpdated handles the comment-updated event
func (s *EventService) CommentUpdated(ctx context.Context, req *eventsv1.CommentUpdatedRequest) (*emptypb.Empty, error) {
	id, err := uuid.Parse(req.CommentId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid comment ID format")
	}

	if err := s.triggers.CommentUpdated(ctx, id); err != nil {
		return nil, toStatus(err, "comment not found")
	}
	return &emptypb.Empty{}, nil
}

// RunDueDateSweep triggers one due-date sweep
func (s *EventService) RunDueDateSweep(ctx context.Context, _ *eventsv1.RunDueDateSweepRequest) (*emptypb.Empty, error) {
	if err := s.sweep.Run(ctx); err != nil {
		return nil, status.Errorf(codes.Internal, "due date sweep failed: %v", err)
	}
	return &emptypb.Empty{}, nil
}

func toStatus(err error, notFoundMsg string) error {
	if ent.IsNotFound(err) {
		return status.Error(codes.NotFound, notFoundMsg)
	}
	return status.Errorf(codes.Internal, "%v", err)
}
