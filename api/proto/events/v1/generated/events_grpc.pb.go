// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: events/v1/events.proto

package eventsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.62.0 or later.
const _ = grpc.SupportPackageIsVersion8

const (
	EventService_TaskCreated_FullMethodName     = "/events.v1.EventService/TaskCreated"
	EventService_CommentCreated_FullMethodName  = "/events.v1.EventService/CommentCreated"
	EventService_CommentUpdated_FullMethodName  = "/events.v1.EventService/CommentUpdated"
	EventService_RunDueDateSweep_FullMethodName = "/events.v1.EventService/RunDueDateSweep"
)

// EventServiceClient is the client API for EventService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// EventService is how the web-facing process hands committed domain events
// to the notification core. All calls are fire-and-forget from the caller's
// perspective; delivery happens asynchronously behind the queue.
type EventServiceClient interface {
	// TaskCreated fans out "new task assigned" notifications.
	TaskCreated(ctx context.Context, in *TaskCreatedRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	// CommentCreated reconciles mentions and notifies new ones.
	CommentCreated(ctx context.Context, in *CommentCreatedRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	// CommentUpdated re-reconciles mentions after an edit.
	CommentUpdated(ctx context.Context, in *CommentUpdatedRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	// RunDueDateSweep triggers one due-tomorrow sweep, normally invoked by
	// the scheduler rather than a caller.
	RunDueDateSweep(ctx context.Context, in *RunDueDateSweepRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type eventServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEventServiceClient(cc grpc.ClientConnInterface) EventServiceClient {
	return &eventServiceClient{cc}
}

func (c *eventServiceClient) TaskCreated(ctx context.Context, in *TaskCreatedRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, EventService_TaskCreated_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *eventServiceClient) CommentCreated(ctx context.Context, in *CommentCreatedRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, EventService_CommentCreated_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *eventServiceClient) CommentUpdated(ctx context.Context, in *CommentUpdatedRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, EventService_CommentUpdated_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *eventServiceClient) RunDueDateSweep(ctx context.Context, in *RunDueDateSweepRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, EventService_RunDueDateSweep_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EventServiceServer is the server API for EventService service.
// All implementations must embed UnimplementedEventServiceServer
// for forward compatibility
//
// EventService is how the web-facing process hands committed domain events
// to the notification core. All calls are fire-and-forget from the caller's
// perspective; delivery happens asynchronously behind the queue.
type EventServiceServer interface {
	// TaskCreated fans out "new task assigned" notifications.
	TaskCreated(context.Context, *TaskCreatedRequest) (*emptypb.Empty, error)
	// CommentCreated reconciles mentions and notifies new ones.
	CommentCreated(context.Context, *CommentCreatedRequest) (*emptypb.Empty, error)
	// CommentUpdated re-reconciles mentions after an edit.
	CommentUpdated(context.Context, *CommentUpdatedRequest) (*emptypb.Empty, error)
	// RunDueDateSweep triggers one due-tomorrow sweep, normally invoked by
	// the scheduler rather than a caller.
	RunDueDateSweep(context.Context, *RunDueDateSweepRequest) (*emptypb.Empty, error)
	mustEmbedUnimplementedEventServiceServer()
}

// UnimplementedEventServiceServer must be embedded to have forward compatible implementations.
type UnimplementedEventServiceServer struct {
}

func (UnimplementedEventServiceServer) TaskCreated(context.Context, *TaskCreatedRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TaskCreated not implemented")
}
func (UnimplementedEventServiceServer) CommentCreated(context.Context, *CommentCreatedRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CommentCreated not implemented")
}
func (UnimplementedEventServiceServer) CommentUpdated(context.Context, *CommentUpdatedRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CommentUpdated not implemented")
}
func (UnimplementedEventServiceServer) RunDueDateSweep(context.Context, *RunDueDateSweepRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunDueDateSweep not implemented")
}
func (UnimplementedEventServiceServer) mustEmbedUnimplementedEventServiceServer() {}

// UnsafeEventServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to EventServiceServer will
// result in compilation errors.
type UnsafeEventServiceServer interface {
	mustEmbedUnimplementedEventServiceServer()
}

func RegisterEventServiceServer(s grpc.ServiceRegistrar, srv EventServiceServer) {
	s.RegisterService(&EventService_ServiceDesc, srv)
}

func _EventService_TaskCreated_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TaskCreatedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EventServiceServer).TaskCreated(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EventService_TaskCreated_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EventServiceServer).TaskCreated(ctx, req.(*TaskCreatedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EventService_CommentCreated_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommentCreatedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EventServiceServer).CommentCreated(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EventService_CommentCreated_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EventServiceServer).CommentCreated(ctx, req.(*CommentCreatedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EventService_CommentUpdated_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommentUpdatedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EventServiceServer).CommentUpdated(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EventService_CommentUpdated_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EventServiceServer).CommentUpdated(ctx, req.(*CommentUpdatedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EventService_RunDueDateSweep_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunDueDateSweepRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EventServiceServer).RunDueDateSweep(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EventService_RunDueDateSweep_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EventServiceServer).RunDueDateSweep(ctx, req.(*RunDueDateSweepRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// EventService_ServiceDesc is the grpc.ServiceDesc for EventService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var EventService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "events.v1.EventService",
	HandlerType: (*EventServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "TaskCreated",
			Handler:    _EventService_TaskCreated_Handler,
		},
		{
			MethodName: "CommentCreated",
			Handler:    _EventService_CommentCreated_Handler,
		},
		{
			MethodName: "CommentUpdated",
			Handler:    _EventService_CommentUpdated_Handler,
		},
		{
			MethodName: "RunDueDateSweep",
			Handler:    _EventService_RunDueDateSweep_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "events/v1/events.proto",
}
