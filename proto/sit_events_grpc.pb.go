// Realtime update frames. All fields are sparse deltas: presence means
// "changed to this value", absence means "unchanged". Wrapper messages with
// an unset inner field encode "changed to null".

// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: sit_events.proto

package sitv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	UpdateStream_SubscribeJourneyUpdates_FullMethodName      = "/sit.v1.UpdateStream/SubscribeJourneyUpdates"
	UpdateStream_SubscribeServerUpdates_FullMethodName       = "/sit.v1.UpdateStream/SubscribeServerUpdates"
	UpdateStream_SubscribeDispatchPostUpdates_FullMethodName = "/sit.v1.UpdateStream/SubscribeDispatchPostUpdates"
)

// UpdateStreamClient is the client API for UpdateStream service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// UpdateStream delivers sparse update frames to internal consumers (the
// REST read API and the WebSocket multiplexer). Delivery is at-most-once:
// frames for a slow subscriber are dropped in favour of liveness.
type UpdateStreamClient interface {
	SubscribeJourneyUpdates(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[JourneyUpdateFrame], error)
	SubscribeServerUpdates(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ServerUpdateFrame], error)
	SubscribeDispatchPostUpdates(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[DispatchPostUpdateFrame], error)
}

type updateStreamClient struct {
	cc grpc.ClientConnInterface
}

func NewUpdateStreamClient(cc grpc.ClientConnInterface) UpdateStreamClient {
	return &updateStreamClient{cc}
}

func (c *updateStreamClient) SubscribeJourneyUpdates(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[JourneyUpdateFrame], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &UpdateStream_ServiceDesc.Streams[0], UpdateStream_SubscribeJourneyUpdates_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[SubscribeRequest, JourneyUpdateFrame]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type UpdateStream_SubscribeJourneyUpdatesClient = grpc.ServerStreamingClient[JourneyUpdateFrame]

func (c *updateStreamClient) SubscribeServerUpdates(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ServerUpdateFrame], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &UpdateStream_ServiceDesc.Streams[1], UpdateStream_SubscribeServerUpdates_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[SubscribeRequest, ServerUpdateFrame]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type UpdateStream_SubscribeServerUpdatesClient = grpc.ServerStreamingClient[ServerUpdateFrame]

func (c *updateStreamClient) SubscribeDispatchPostUpdates(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[DispatchPostUpdateFrame], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &UpdateStream_ServiceDesc.Streams[2], UpdateStream_SubscribeDispatchPostUpdates_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[SubscribeRequest, DispatchPostUpdateFrame]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type UpdateStream_SubscribeDispatchPostUpdatesClient = grpc.ServerStreamingClient[DispatchPostUpdateFrame]

// UpdateStreamServer is the server API for UpdateStream service.
// All implementations must embed UnimplementedUpdateStreamServer
// for forward compatibility.
//
// UpdateStream delivers sparse update frames to internal consumers (the
// REST read API and the WebSocket multiplexer). Delivery is at-most-once:
// frames for a slow subscriber are dropped in favour of liveness.
type UpdateStreamServer interface {
	SubscribeJourneyUpdates(*SubscribeRequest, grpc.ServerStreamingServer[JourneyUpdateFrame]) error
	SubscribeServerUpdates(*SubscribeRequest, grpc.ServerStreamingServer[ServerUpdateFrame]) error
	SubscribeDispatchPostUpdates(*SubscribeRequest, grpc.ServerStreamingServer[DispatchPostUpdateFrame]) error
	mustEmbedUnimplementedUpdateStreamServer()
}

// UnimplementedUpdateStreamServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedUpdateStreamServer struct{}

func (UnimplementedUpdateStreamServer) SubscribeJourneyUpdates(*SubscribeRequest, grpc.ServerStreamingServer[JourneyUpdateFrame]) error {
	return status.Errorf(codes.Unimplemented, "method SubscribeJourneyUpdates not implemented")
}
func (UnimplementedUpdateStreamServer) SubscribeServerUpdates(*SubscribeRequest, grpc.ServerStreamingServer[ServerUpdateFrame]) error {
	return status.Errorf(codes.Unimplemented, "method SubscribeServerUpdates not implemented")
}
func (UnimplementedUpdateStreamServer) SubscribeDispatchPostUpdates(*SubscribeRequest, grpc.ServerStreamingServer[DispatchPostUpdateFrame]) error {
	return status.Errorf(codes.Unimplemented, "method SubscribeDispatchPostUpdates not implemented")
}
func (UnimplementedUpdateStreamServer) mustEmbedUnimplementedUpdateStreamServer() {}
func (UnimplementedUpdateStreamServer) testEmbeddedByValue()                      {}

// UnsafeUpdateStreamServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to UpdateStreamServer will
// result in compilation errors.
type UnsafeUpdateStreamServer interface {
	mustEmbedUnimplementedUpdateStreamServer()
}

func RegisterUpdateStreamServer(s grpc.ServiceRegistrar, srv UpdateStreamServer) {
	// If the following call pancis, it indicates UnimplementedUpdateStreamServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&UpdateStream_ServiceDesc, srv)
}

func _UpdateStream_SubscribeJourneyUpdates_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SubscribeRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(UpdateStreamServer).SubscribeJourneyUpdates(m, &grpc.GenericServerStream[SubscribeRequest, JourneyUpdateFrame]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type UpdateStream_SubscribeJourneyUpdatesServer = grpc.ServerStreamingServer[JourneyUpdateFrame]

func _UpdateStream_SubscribeServerUpdates_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SubscribeRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(UpdateStreamServer).SubscribeServerUpdates(m, &grpc.GenericServerStream[SubscribeRequest, ServerUpdateFrame]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type UpdateStream_SubscribeServerUpdatesServer = grpc.ServerStreamingServer[ServerUpdateFrame]

func _UpdateStream_SubscribeDispatchPostUpdates_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SubscribeRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(UpdateStreamServer).SubscribeDispatchPostUpdates(m, &grpc.GenericServerStream[SubscribeRequest, DispatchPostUpdateFrame]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type UpdateStream_SubscribeDispatchPostUpdatesServer = grpc.ServerStreamingServer[DispatchPostUpdateFrame]

// UpdateStream_ServiceDesc is the grpc.ServiceDesc for UpdateStream service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var UpdateStream_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "sit.v1.UpdateStream",
	HandlerType: (*UpdateStreamServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeJourneyUpdates",
			Handler:       _UpdateStream_SubscribeJourneyUpdates_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "SubscribeServerUpdates",
			Handler:       _UpdateStream_SubscribeServerUpdates_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "SubscribeDispatchPostUpdates",
			Handler:       _UpdateStream_SubscribeDispatchPostUpdates_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "sit_events.proto",
}
