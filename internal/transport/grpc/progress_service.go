package grpc_server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Запросы и ответы передаются как google.protobuf.Struct.
const (
	ProgressServiceName = "mindwell.progress.v1.ProgressService"

	RecordActionMethod      = "/" + ProgressServiceName + "/RecordAction"
	GetDashboardStatsMethod = "/" + ProgressServiceName + "/GetDashboardStats"
)

type ProgressServiceServer interface {
	RecordAction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetDashboardStats(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

func recordActionHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProgressServiceServer).RecordAction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RecordActionMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProgressServiceServer).RecordAction(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func getDashboardStatsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProgressServiceServer).GetDashboardStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetDashboardStatsMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProgressServiceServer).GetDashboardStats(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var ProgressServiceDesc = grpc.ServiceDesc{
	ServiceName: ProgressServiceName,
	HandlerType: (*ProgressServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RecordAction", Handler: recordActionHandler},
		{MethodName: "GetDashboardStats", Handler: getDashboardStatsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mindwell/progress/v1/progress.proto",
}

func RegisterProgressServiceServer(s grpc.ServiceRegistrar, srv ProgressServiceServer) {
	s.RegisterService(&ProgressServiceDesc, srv)
}

// ProgressClient is the caller side used by other internal services.
type ProgressClient struct {
	cc grpc.ClientConnInterface
}

func NewProgressClient(cc grpc.ClientConnInterface) *ProgressClient {
	return &ProgressClient{cc: cc}
}

func (c *ProgressClient) RecordAction(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, RecordActionMethod, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ProgressClient) GetDashboardStats(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetDashboardStatsMethod, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
