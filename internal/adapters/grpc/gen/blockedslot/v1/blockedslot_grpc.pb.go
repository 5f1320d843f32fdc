// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: blockedslot/v1/blockedslot.proto

package blockedslotv1

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
	BlockedSlotService_CreateBlockedSlot_FullMethodName = "/blockedslot.v1.BlockedSlotService/CreateBlockedSlot"
	BlockedSlotService_DeleteBlockedSlot_FullMethodName = "/blockedslot.v1.BlockedSlotService/DeleteBlockedSlot"
	BlockedSlotService_ListBlockedSlots_FullMethodName  = "/blockedslot.v1.BlockedSlotService/ListBlockedSlots"
	BlockedSlotService_FindBlockedSlots_FullMethodName  = "/blockedslot.v1.BlockedSlotService/FindBlockedSlots"
)

// BlockedSlotServiceClient is the client API for BlockedSlotService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// BlockedSlotService は予約をブロックする時間帯の操作を提供します。
type BlockedSlotServiceClient interface {
	CreateBlockedSlot(ctx context.Context, in *CreateBlockedSlotRequest, opts ...grpc.CallOption) (*CreateBlockedSlotResponse, error)
	DeleteBlockedSlot(ctx context.Context, in *DeleteBlockedSlotRequest, opts ...grpc.CallOption) (*DeleteBlockedSlotResponse, error)
	ListBlockedSlots(ctx context.Context, in *ListBlockedSlotsRequest, opts ...grpc.CallOption) (*ListBlockedSlotsResponse, error)
	FindBlockedSlots(ctx context.Context, in *FindBlockedSlotsRequest, opts ...grpc.CallOption) (*FindBlockedSlotsResponse, error)
}

type blockedSlotServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBlockedSlotServiceClient(cc grpc.ClientConnInterface) BlockedSlotServiceClient {
	return &blockedSlotServiceClient{cc}
}

func (c *blockedSlotServiceClient) CreateBlockedSlot(ctx context.Context, in *CreateBlockedSlotRequest, opts ...grpc.CallOption) (*CreateBlockedSlotResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateBlockedSlotResponse)
	err := c.cc.Invoke(ctx, BlockedSlotService_CreateBlockedSlot_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *blockedSlotServiceClient) DeleteBlockedSlot(ctx context.Context, in *DeleteBlockedSlotRequest, opts ...grpc.CallOption) (*DeleteBlockedSlotResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteBlockedSlotResponse)
	err := c.cc.Invoke(ctx, BlockedSlotService_DeleteBlockedSlot_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *blockedSlotServiceClient) ListBlockedSlots(ctx context.Context, in *ListBlockedSlotsRequest, opts ...grpc.CallOption) (*ListBlockedSlotsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListBlockedSlotsResponse)
	err := c.cc.Invoke(ctx, BlockedSlotService_ListBlockedSlots_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *blockedSlotServiceClient) FindBlockedSlots(ctx context.Context, in *FindBlockedSlotsRequest, opts ...grpc.CallOption) (*FindBlockedSlotsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FindBlockedSlotsResponse)
	err := c.cc.Invoke(ctx, BlockedSlotService_FindBlockedSlots_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BlockedSlotServiceServer is the server API for BlockedSlotService service.
// All implementations must embed UnimplementedBlockedSlotServiceServer
// for forward compatibility.
//
// BlockedSlotService は予約をブロックする時間帯の操作を提供します。
type BlockedSlotServiceServer interface {
	CreateBlockedSlot(context.Context, *CreateBlockedSlotRequest) (*CreateBlockedSlotResponse, error)
	DeleteBlockedSlot(context.Context, *DeleteBlockedSlotRequest) (*DeleteBlockedSlotResponse, error)
	ListBlockedSlots(context.Context, *ListBlockedSlotsRequest) (*ListBlockedSlotsResponse, error)
	FindBlockedSlots(context.Context, *FindBlockedSlotsRequest) (*FindBlockedSlotsResponse, error)
	mustEmbedUnimplementedBlockedSlotServiceServer()
}

// UnimplementedBlockedSlotServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedBlockedSlotServiceServer struct{}

func (UnimplementedBlockedSlotServiceServer) CreateBlockedSlot(context.Context, *CreateBlockedSlotRequest) (*CreateBlockedSlotResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateBlockedSlot not implemented")
}
func (UnimplementedBlockedSlotServiceServer) DeleteBlockedSlot(context.Context, *DeleteBlockedSlotRequest) (*DeleteBlockedSlotResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteBlockedSlot not implemented")
}
func (UnimplementedBlockedSlotServiceServer) ListBlockedSlots(context.Context, *ListBlockedSlotsRequest) (*ListBlockedSlotsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListBlockedSlots not implemented")
}
func (UnimplementedBlockedSlotServiceServer) FindBlockedSlots(context.Context, *FindBlockedSlotsRequest) (*FindBlockedSlotsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FindBlockedSlots not implemented")
}
func (UnimplementedBlockedSlotServiceServer) mustEmbedUnimplementedBlockedSlotServiceServer() {}
func (UnimplementedBlockedSlotServiceServer) testEmbeddedByValue()                            {}

// UnsafeBlockedSlotServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BlockedSlotServiceServer will
// result in compilation errors.
type UnsafeBlockedSlotServiceServer interface {
	mustEmbedUnimplementedBlockedSlotServiceServer()
}

func RegisterBlockedSlotServiceServer(s grpc.ServiceRegistrar, srv BlockedSlotServiceServer) {
	// If the following call pancis, it indicates UnimplementedBlockedSlotServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&BlockedSlotService_ServiceDesc, srv)
}

func _BlockedSlotService_CreateBlockedSlot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateBlockedSlotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BlockedSlotServiceServer).CreateBlockedSlot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BlockedSlotService_CreateBlockedSlot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BlockedSlotServiceServer).CreateBlockedSlot(ctx, req.(*CreateBlockedSlotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BlockedSlotService_DeleteBlockedSlot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteBlockedSlotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BlockedSlotServiceServer).DeleteBlockedSlot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BlockedSlotService_DeleteBlockedSlot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BlockedSlotServiceServer).DeleteBlockedSlot(ctx, req.(*DeleteBlockedSlotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BlockedSlotService_ListBlockedSlots_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListBlockedSlotsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BlockedSlotServiceServer).ListBlockedSlots(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BlockedSlotService_ListBlockedSlots_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BlockedSlotServiceServer).ListBlockedSlots(ctx, req.(*ListBlockedSlotsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BlockedSlotService_FindBlockedSlots_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FindBlockedSlotsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BlockedSlotServiceServer).FindBlockedSlots(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BlockedSlotService_FindBlockedSlots_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BlockedSlotServiceServer).FindBlockedSlots(ctx, req.(*FindBlockedSlotsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BlockedSlotService_ServiceDesc is the grpc.ServiceDesc for BlockedSlotService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BlockedSlotService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "blockedslot.v1.BlockedSlotService",
	HandlerType: (*BlockedSlotServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateBlockedSlot",
			Handler:    _BlockedSlotService_CreateBlockedSlot_Handler,
		},
		{
			MethodName: "DeleteBlockedSlot",
			Handler:    _BlockedSlotService_DeleteBlockedSlot_Handler,
		},
		{
			MethodName: "ListBlockedSlots",
			Handler:    _BlockedSlotService_ListBlockedSlots_Handler,
		},
		{
			MethodName: "FindBlockedSlots",
			Handler:    _BlockedSlotService_FindBlockedSlots_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "blockedslot/v1/blockedslot.proto",
}
