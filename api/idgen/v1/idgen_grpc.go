// Package idgenv1 IDService 的 gRPC 描述，和 api/proto/idgen/v1/idgen.proto 保持一致
// 请求和响应都使用 protobuf 的 well-known types，不需要额外生成消息代码
package idgenv1

import (
	"context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "idgen.v1.IDService"

const (
	IDService_Generate_FullMethodName      = "/idgen.v1.IDService/Generate"
	IDService_BatchGenerate_FullMethodName = "/idgen.v1.IDService/BatchGenerate"
	IDService_Parse_FullMethodName         = "/idgen.v1.IDService/Parse"
	IDService_NodeInfo_FullMethodName      = "/idgen.v1.IDService/NodeInfo"
)

// Parse 和 NodeInfo 返回的 Struct 里面的字段名
const (
	FieldValue     = "value"
	FieldTimestamp = "timestamp"
	FieldTime      = "time"
	FieldNodeID    = "nodeId"
	FieldSequence  = "sequence"
	FieldKind      = "kind"
	FieldEpoch     = "epoch"
	FieldBitsEpoch = "bitsEpoch"
	FieldBitsNode  = "bitsNode"
	FieldBitsSeq   = "bitsSeq"
)

type IDServiceClient interface {
	Generate(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error)
	BatchGenerate(ctx context.Context, in *wrapperspb.UInt32Value, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Parse(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*structpb.Struct, error)
	NodeInfo(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type idServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIDServiceClient(cc grpc.ClientConnInterface) IDServiceClient {
	return &idServiceClient{cc}
}

func (c *idServiceClient) Generate(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error) {
	out := new(wrapperspb.UInt64Value)
	if err := c.cc.Invoke(ctx, IDService_Generate_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *idServiceClient) BatchGenerate(ctx context.Context, in *wrapperspb.UInt32Value, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, IDService_BatchGenerate_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *idServiceClient) Parse(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, IDService_Parse_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *idServiceClient) NodeInfo(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, IDService_NodeInfo_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// IDServiceServer 服务端需要实现的接口，实现必须内嵌 UnimplementedIDServiceServer
type IDServiceServer interface {
	Generate(context.Context, *emptypb.Empty) (*wrapperspb.UInt64Value, error)
	BatchGenerate(context.Context, *wrapperspb.UInt32Value) (*structpb.ListValue, error)
	Parse(context.Context, *wrapperspb.UInt64Value) (*structpb.Struct, error)
	NodeInfo(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	mustEmbedUnimplementedIDServiceServer()
}

type UnimplementedIDServiceServer struct{}

func (UnimplementedIDServiceServer) Generate(context.Context, *emptypb.Empty) (*wrapperspb.UInt64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Generate not implemented")
}
func (UnimplementedIDServiceServer) BatchGenerate(context.Context, *wrapperspb.UInt32Value) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BatchGenerate not implemented")
}
func (UnimplementedIDServiceServer) Parse(context.Context, *wrapperspb.UInt64Value) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Parse not implemented")
}
func (UnimplementedIDServiceServer) NodeInfo(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method NodeInfo not implemented")
}
func (UnimplementedIDServiceServer) mustEmbedUnimplementedIDServiceServer() {}

func RegisterIDServiceServer(s grpc.ServiceRegistrar, srv IDServiceServer) {
	s.RegisterService(&IDService_ServiceDesc, srv)
}

func _IDService_Generate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IDServiceServer).Generate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: IDService_Generate_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IDServiceServer).Generate(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _IDService_BatchGenerate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.UInt32Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IDServiceServer).BatchGenerate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: IDService_BatchGenerate_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IDServiceServer).BatchGenerate(ctx, req.(*wrapperspb.UInt32Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _IDService_Parse_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.UInt64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IDServiceServer).Parse(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: IDService_Parse_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IDServiceServer).Parse(ctx, req.(*wrapperspb.UInt64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _IDService_NodeInfo_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IDServiceServer).NodeInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: IDService_NodeInfo_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IDServiceServer).NodeInfo(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var IDService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*IDServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Generate", Handler: _IDService_Generate_Handler},
		{MethodName: "BatchGenerate", Handler: _IDService_BatchGenerate_Handler},
		{MethodName: "Parse", Handler: _IDService_Parse_Handler},
		{MethodName: "NodeInfo", Handler: _IDService_NodeInfo_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/proto/idgen/v1/idgen.proto",
}
