package grpc

import (
	"context"
	"errors"
	"github.com/ecodeclub/ekit/slice"
	idgenv1 "go-hailstorm/api/idgen/v1"
	"go-hailstorm/internal/domain"
	"go-hailstorm/internal/errs"
	idsvc "go-hailstorm/internal/service/id"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"time"
)

var _ idgenv1.IDServiceServer = (*IDServer)(nil)

// IDServer ID 生成服务的 gRPC 入口，只负责协议转换和错误码映射
type IDServer struct {
	idgenv1.UnimplementedIDServiceServer

	svc idsvc.Service
}

func NewIDServer(svc idsvc.Service) *IDServer {
	return &IDServer{svc: svc}
}

func (s *IDServer) Register(server grpc.ServiceRegistrar) {
	idgenv1.RegisterIDServiceServer(server, s)
}

func (s *IDServer) Generate(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.UInt64Value, error) {
	id, err := s.svc.Generate(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.UInt64(id.Value), nil
}

func (s *IDServer) BatchGenerate(ctx context.Context, req *wrapperspb.UInt32Value) (*structpb.ListValue, error) {
	ids, err := s.svc.BatchGenerate(ctx, int(req.GetValue()))
	if err != nil {
		return nil, toStatus(err)
	}
	return idgenv1.NewIDList(slice.Map(ids, func(_ int, src domain.ID) uint64 {
		return src.Value
	})), nil
}

func (s *IDServer) Parse(ctx context.Context, req *wrapperspb.UInt64Value) (*structpb.Struct, error) {
	id, err := s.svc.Parse(ctx, req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	res, err := structpb.NewStruct(map[string]any{
		idgenv1.FieldValue:     id.String(),
		idgenv1.FieldTimestamp: id.Timestamp,
		idgenv1.FieldTime:      id.Time.Format(time.RFC3339Nano),
		idgenv1.FieldNodeID:    id.NodeID,
		idgenv1.FieldSequence:  id.Sequence,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return res, nil
}

func (s *IDServer) NodeInfo(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	node := s.svc.Node(ctx)
	res, err := structpb.NewStruct(map[string]any{
		idgenv1.FieldNodeID:    node.NodeID,
		idgenv1.FieldKind:      node.Kind.String(),
		idgenv1.FieldEpoch:     node.Epoch.Format(time.RFC3339),
		idgenv1.FieldBitsEpoch: node.BitsEpoch,
		idgenv1.FieldBitsNode:  node.BitsNode,
		idgenv1.FieldBitsSeq:   node.BitsSeq,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return res, nil
}

// toStatus 把业务错误转换成 gRPC 状态码，时钟回拨对调用方来说是可以重试的 Unavailable
func toStatus(err error) error {
	switch {
	case errors.Is(err, errs.ErrInvalidParameter):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, errs.ErrClockRegression):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, errs.ErrDuplicateRequest):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
