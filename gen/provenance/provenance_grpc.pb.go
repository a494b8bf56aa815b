// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: provenance.proto

package provenance

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
	ProvenanceService_AppendRecords_FullMethodName = "/provenance.ProvenanceService/AppendRecords"
	ProvenanceService_HasRecord_FullMethodName     = "/provenance.ProvenanceService/HasRecord"
	ProvenanceService_GetRecord_FullMethodName     = "/provenance.ProvenanceService/GetRecord"
	ProvenanceService_Traverse_FullMethodName      = "/provenance.ProvenanceService/Traverse"
)

// ProvenanceServiceClient is the client API for ProvenanceService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ProvenanceService is the engine's wire surface: the instrumentation
// layer appends origin records, the UI reads and traverses them.
type ProvenanceServiceClient interface {
	AppendRecords(ctx context.Context, in *AppendRecordsRequest, opts ...grpc.CallOption) (*AppendRecordsResponse, error)
	HasRecord(ctx context.Context, in *HasRecordRequest, opts ...grpc.CallOption) (*HasRecordResponse, error)
	GetRecord(ctx context.Context, in *GetRecordRequest, opts ...grpc.CallOption) (*GetRecordResponse, error)
	Traverse(ctx context.Context, in *TraverseRequest, opts ...grpc.CallOption) (*TraverseResponse, error)
}

type provenanceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProvenanceServiceClient(cc grpc.ClientConnInterface) ProvenanceServiceClient {
	return &provenanceServiceClient{cc}
}

func (c *provenanceServiceClient) AppendRecords(ctx context.Context, in *AppendRecordsRequest, opts ...grpc.CallOption) (*AppendRecordsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AppendRecordsResponse)
	err := c.cc.Invoke(ctx, ProvenanceService_AppendRecords_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *provenanceServiceClient) HasRecord(ctx context.Context, in *HasRecordRequest, opts ...grpc.CallOption) (*HasRecordResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(HasRecordResponse)
	err := c.cc.Invoke(ctx, ProvenanceService_HasRecord_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *provenanceServiceClient) GetRecord(ctx context.Context, in *GetRecordRequest, opts ...grpc.CallOption) (*GetRecordResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetRecordResponse)
	err := c.cc.Invoke(ctx, ProvenanceService_GetRecord_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *provenanceServiceClient) Traverse(ctx context.Context, in *TraverseRequest, opts ...grpc.CallOption) (*TraverseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TraverseResponse)
	err := c.cc.Invoke(ctx, ProvenanceService_Traverse_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProvenanceServiceServer is the server API for ProvenanceService service.
// All implementations must embed UnimplementedProvenanceServiceServer
// for forward compatibility.
//
// ProvenanceService is the engine's wire surface: the instrumentation
// layer appends origin records, the UI reads and traverses them.
type ProvenanceServiceServer interface {
	AppendRecords(context.Context, *AppendRecordsRequest) (*AppendRecordsResponse, error)
	HasRecord(context.Context, *HasRecordRequest) (*HasRecordResponse, error)
	GetRecord(context.Context, *GetRecordRequest) (*GetRecordResponse, error)
	Traverse(context.Context, *TraverseRequest) (*TraverseResponse, error)
	mustEmbedUnimplementedProvenanceServiceServer()
}

// UnimplementedProvenanceServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedProvenanceServiceServer struct{}

func (UnimplementedProvenanceServiceServer) AppendRecords(context.Context, *AppendRecordsRequest) (*AppendRecordsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AppendRecords not implemented")
}
func (UnimplementedProvenanceServiceServer) HasRecord(context.Context, *HasRecordRequest) (*HasRecordResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method HasRecord not implemented")
}
func (UnimplementedProvenanceServiceServer) GetRecord(context.Context, *GetRecordRequest) (*GetRecordResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRecord not implemented")
}
func (UnimplementedProvenanceServiceServer) Traverse(context.Context, *TraverseRequest) (*TraverseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Traverse not implemented")
}
func (UnimplementedProvenanceServiceServer) mustEmbedUnimplementedProvenanceServiceServer() {}
func (UnimplementedProvenanceServiceServer) testEmbeddedByValue()                           {}

// UnsafeProvenanceServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ProvenanceServiceServer will
// result in compilation errors.
type UnsafeProvenanceServiceServer interface {
	mustEmbedUnimplementedProvenanceServiceServer()
}

func RegisterProvenanceServiceServer(s grpc.ServiceRegistrar, srv ProvenanceServiceServer) {
	// If the following call pancis, it indicates UnimplementedProvenanceServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ProvenanceService_ServiceDesc, srv)
}

func _ProvenanceService_AppendRecords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AppendRecordsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProvenanceServiceServer).AppendRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProvenanceService_AppendRecords_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProvenanceServiceServer).AppendRecords(ctx, req.(*AppendRecordsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProvenanceService_HasRecord_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HasRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProvenanceServiceServer).HasRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProvenanceService_HasRecord_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProvenanceServiceServer).HasRecord(ctx, req.(*HasRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProvenanceService_GetRecord_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProvenanceServiceServer).GetRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProvenanceService_GetRecord_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProvenanceServiceServer).GetRecord(ctx, req.(*GetRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProvenanceService_Traverse_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TraverseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProvenanceServiceServer).Traverse(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProvenanceService_Traverse_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProvenanceServiceServer).Traverse(ctx, req.(*TraverseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProvenanceService_ServiceDesc is the grpc.ServiceDesc for ProvenanceService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ProvenanceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "provenance.ProvenanceService",
	HandlerType: (*ProvenanceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AppendRecords",
			Handler:    _ProvenanceService_AppendRecords_Handler,
		},
		{
			MethodName: "HasRecord",
			Handler:    _ProvenanceService_HasRecord_Handler,
		},
		{
			MethodName: "GetRecord",
			Handler:    _ProvenanceService_GetRecord_Handler,
		},
		{
			MethodName: "Traverse",
			Handler:    _ProvenanceService_Traverse_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "provenance.proto",
}

const (
	ResolverService_Resolve_FullMethodName = "/provenance.ResolverService/Resolve"
)

// ResolverServiceClient is the client API for ResolverService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ResolverService is implemented by the Node sourcemap process; the
// engine is its client.
type ResolverServiceClient interface {
	Resolve(ctx context.Context, in *ResolveRequest, opts ...grpc.CallOption) (*ResolveResponse, error)
}

type resolverServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewResolverServiceClient(cc grpc.ClientConnInterface) ResolverServiceClient {
	return &resolverServiceClient{cc}
}

func (c *resolverServiceClient) Resolve(ctx context.Context, in *ResolveRequest, opts ...grpc.CallOption) (*ResolveResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResolveResponse)
	err := c.cc.Invoke(ctx, ResolverService_Resolve_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ResolverServiceServer is the server API for ResolverService service.
// All implementations must embed UnimplementedResolverServiceServer
// for forward compatibility.
//
// ResolverService is implemented by the Node sourcemap process; the
// engine is its client.
type ResolverServiceServer interface {
	Resolve(context.Context, *ResolveRequest) (*ResolveResponse, error)
	mustEmbedUnimplementedResolverServiceServer()
}

// UnimplementedResolverServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedResolverServiceServer struct{}

func (UnimplementedResolverServiceServer) Resolve(context.Context, *ResolveRequest) (*ResolveResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Resolve not implemented")
}
func (UnimplementedResolverServiceServer) mustEmbedUnimplementedResolverServiceServer() {}
func (UnimplementedResolverServiceServer) testEmbeddedByValue()                         {}

// UnsafeResolverServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ResolverServiceServer will
// result in compilation errors.
type UnsafeResolverServiceServer interface {
	mustEmbedUnimplementedResolverServiceServer()
}

func RegisterResolverServiceServer(s grpc.ServiceRegistrar, srv ResolverServiceServer) {
	// If the following call pancis, it indicates UnimplementedResolverServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ResolverService_ServiceDesc, srv)
}

func _ResolverService_Resolve_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ResolverServiceServer).Resolve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ResolverService_Resolve_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ResolverServiceServer).Resolve(ctx, req.(*ResolveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ResolverService_ServiceDesc is the grpc.ServiceDesc for ResolverService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ResolverService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "provenance.ResolverService",
	HandlerType: (*ResolverServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Resolve",
			Handler:    _ResolverService_Resolve_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "provenance.proto",
}
