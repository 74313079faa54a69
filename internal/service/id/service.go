package id

import (
	"context"
	"errors"
	"fmt"
	"go-hailstorm/internal/domain"
	"go-hailstorm/internal/errs"
	"go-hailstorm/internal/pkg/id_generator"
	"go-hailstorm/internal/pkg/logger"
	"go-hailstorm/internal/pkg/retry"
	"go-hailstorm/internal/pkg/retry/strategy"
	"time"
)

const defaultMaxBatchSize = 1000

// Service ID 服务，生成器之上的一层：负责时钟回拨的重试、批量生成和解析
//
//go:generate mockgen -source=./service.go -destination=./mocks/service.mock.go -package=idsvcmocks Service
type Service interface {
	// Generate 生成一个ID
	Generate(ctx context.Context) (domain.ID, error)
	// BatchGenerate 一次生成 count 个ID，按生成顺序返回，要么全部成功要么返回错误
	BatchGenerate(ctx context.Context, count int) ([]domain.ID, error)
	// Parse 按照当前生成器的位布局拆解ID
	Parse(ctx context.Context, value uint64) (domain.ID, error)
	// Node 当前节点的生成器信息
	Node(ctx context.Context) domain.Node
}

type service struct {
	gen  id_generator.IDGenerator
	kind domain.GeneratorKind
	// 为 nil 表示时钟回拨时不重试
	newStrategy  retry.Factory
	maxBatchSize int
	logger       logger.Logger
}

// NewService 创建 ID 服务
// retryCfg 为 nil 时不重试，maxBatchSize <= 0 时使用默认值
func NewService(
	gen id_generator.IDGenerator,
	kind domain.GeneratorKind,
	retryCfg *retry.Config,
	maxBatchSize int,
	l logger.Logger,
) (Service, error) {
	var newStrategy retry.Factory
	if retryCfg != nil {
		f, err := retry.NewFactory(*retryCfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrInvalidConfiguration, err)
		}
		newStrategy = f
	}
	if maxBatchSize <= 0 {
		maxBatchSize = defaultMaxBatchSize
	}
	return &service{
		gen:          gen,
		kind:         kind,
		newStrategy:  newStrategy,
		maxBatchSize: maxBatchSize,
		logger:       l,
	}, nil
}

func (s *service) Generate(ctx context.Context) (domain.ID, error) {
	val, err := s.next(ctx)
	if err != nil {
		return domain.ID{}, err
	}
	return s.toDomain(val), nil
}

func (s *service) BatchGenerate(ctx context.Context, count int) ([]domain.ID, error) {
	if count <= 0 || count > s.maxBatchSize {
		return nil, fmt.Errorf("%w: 批量数量必须在 1 到 %d 之间, 当前为 %d", errs.ErrInvalidParameter, s.maxBatchSize, count)
	}
	ids := make([]domain.ID, 0, count)
	for i := 0; i < count; i++ {
		val, err := s.next(ctx)
		if err != nil {
			return nil, err
		}
		ids = append(ids, s.toDomain(val))
	}
	return ids, nil
}

func (s *service) Parse(_ context.Context, value uint64) (domain.ID, error) {
	if value == 0 {
		return domain.ID{}, fmt.Errorf("%w: ID不能为0", errs.ErrInvalidParameter)
	}
	return s.toDomain(value), nil
}

func (s *service) Node(_ context.Context) domain.Node {
	node := domain.Node{
		NodeID: s.gen.NodeID(),
		Kind:   s.kind,
		Epoch:  time.UnixMilli(id_generator.CustomEpoch).UTC(),
	}
	switch s.kind {
	case domain.GeneratorKindSonyflake:
		node.BitsEpoch, node.BitsNode, node.BitsSeq = 39, 16, 8
	default:
		node.BitsEpoch, node.BitsNode, node.BitsSeq = id_generator.BitsEpoch, id_generator.BitsNode, id_generator.BitsSeq
	}
	return node
}

// next 生成一个ID，只有时钟回拨才会按照重试策略重试
func (s *service) next(ctx context.Context) (uint64, error) {
	var st strategy.Strategy = strategy.Never{}
	if s.newStrategy != nil {
		st = strategy.Only(s.newStrategy(), isClockRegression)
	}
	for {
		val, err := s.gen.Generate()
		if err == nil {
			return val, nil
		}
		st = st.Report(err)
		interval, ok := st.Next()
		if !ok {
			if isClockRegression(err) && s.newStrategy != nil {
				s.logger.Error("时钟回拨，重试次数耗尽", logger.Error(err))
			}
			return 0, err
		}
		s.logger.Warn("时钟回拨，等待后重试", logger.Error(err), logger.Duration("interval", interval))

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return 0, ctx.Err()
		case <-timer.C:
		}
	}
}

func isClockRegression(err error) bool {
	return errors.Is(err, errs.ErrClockRegression)
}

func (s *service) toDomain(val uint64) domain.ID {
	parts := s.gen.Decompose(val)
	return domain.ID{
		Value:     val,
		Timestamp: parts.Timestamp,
		Time:      parts.Time,
		NodeID:    parts.NodeID,
		Sequence:  parts.Sequence,
	}
}
