package id

import (
	"context"
	"go-hailstorm/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"strconv"
)

const tracerName = "go-hailstorm/internal/service/id"

var _ Service = (*TracingService)(nil)

// TracingService 为 ID 服务添加链路追踪的装饰器
type TracingService struct {
	svc    Service
	tracer trace.Tracer
}

func NewTracingService(svc Service, tp trace.TracerProvider) *TracingService {
	return &TracingService{svc: svc, tracer: tp.Tracer(tracerName)}
}

func (t *TracingService) Generate(ctx context.Context) (domain.ID, error) {
	ctx, span := t.tracer.Start(ctx, "IDService.Generate")
	defer span.End()

	id, err := t.svc.Generate(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return id, err
	}
	span.SetAttributes(
		attribute.String("id.value", id.String()),
		attribute.Int64("id.node_id", id.NodeID),
		attribute.Int64("id.sequence", id.Sequence),
	)
	return id, nil
}

func (t *TracingService) BatchGenerate(ctx context.Context, count int) ([]domain.ID, error) {
	ctx, span := t.tracer.Start(ctx, "IDService.BatchGenerate",
		trace.WithAttributes(attribute.Int("id.count", count)))
	defer span.End()

	ids, err := t.svc.BatchGenerate(ctx, count)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return ids, err
	}
	if len(ids) > 0 {
		span.SetAttributes(
			attribute.String("id.first", ids[0].String()),
			attribute.String("id.last", ids[len(ids)-1].String()),
		)
	}
	return ids, nil
}

func (t *TracingService) Parse(ctx context.Context, value uint64) (domain.ID, error) {
	ctx, span := t.tracer.Start(ctx, "IDService.Parse",
		trace.WithAttributes(attribute.String("id.value", strconv.FormatUint(value, 10))))
	defer span.End()

	id, err := t.svc.Parse(ctx, value)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return id, err
}

func (t *TracingService) Node(ctx context.Context) domain.Node {
	return t.svc.Node(ctx)
}
