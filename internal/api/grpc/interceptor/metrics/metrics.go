package metrics

import (
	"context"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"time"
)

// 生成 ID 通常在微秒级，时钟回拨重试会拉长到毫秒甚至秒级
var defaultBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5}

type Builder struct {
	reg       prometheus.Registerer
	namespace string
	buckets   []float64

	// 以下在 Build 时创建
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
	errors   *prometheus.CounterVec
	inFlight *prometheus.GaugeVec
}

// NewBuilder 指标注册到 reg 上
func NewBuilder(reg prometheus.Registerer) *Builder {
	return &Builder{reg: reg, namespace: "hailstorm", buckets: defaultBuckets}
}

func (b *Builder) WithNamespace(namespace string) *Builder {
	b.namespace = namespace
	return b
}

func (b *Builder) WithBuckets(buckets ...float64) *Builder {
	b.buckets = buckets
	return b
}

func (b *Builder) Build() grpc.UnaryServerInterceptor {
	factory := promauto.With(b.reg)
	b.duration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: b.namespace,
		Name:      "grpc_server_handling_seconds",
		Help:      "gRPC请求的处理耗时（秒）",
		Buckets:   b.buckets,
	}, []string{"method", "code"})
	b.requests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: b.namespace,
		Name:      "grpc_server_requests_total",
		Help:      "收到的gRPC请求总数",
	}, []string{"method"})
	b.errors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: b.namespace,
		Name:      "grpc_server_errors_total",
		Help:      "失败的gRPC请求总数",
	}, []string{"method", "code"})
	b.inFlight = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: b.namespace,
		Name:      "grpc_server_in_flight",
		Help:      "正在处理的gRPC请求数",
	}, []string{"method"})

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		method := info.FullMethod
		start := time.Now()
		b.requests.WithLabelValues(method).Inc()
		inFlight := b.inFlight.WithLabelValues(method)
		inFlight.Inc()
		defer inFlight.Dec()

		resp, err := handler(ctx, req)

		code := status.Code(err)
		if code != codes.OK {
			b.errors.WithLabelValues(method, code.String()).Inc()
		}
		b.duration.WithLabelValues(method, code.String()).Observe(time.Since(start).Seconds())
		return resp, err
	}
}
