package id

import (
	"context"
	"errors"
	"github.com/prometheus/client_golang/prometheus"
	"go-hailstorm/internal/domain"
	"go-hailstorm/internal/errs"
	"time"
)

const (
	metricsMaxAge        = 5 * time.Minute
	metricsP50Percentile = 0.5
	metricsP50Error      = 0.05
	metricsP90Percentile = 0.9
	metricsP90Error      = 0.01
	metricsP99Percentile = 0.99
	metricsP99Error      = 0.001

	statusSuccess = "success"
	statusFailed  = "failed"
)

var _ Service = (*MetricsService)(nil)

// MetricsService 为 ID 服务统计调用次数、耗时和错误原因的装饰器
type MetricsService struct {
	svc             Service
	durationSummary *prometheus.SummaryVec
	requestCounter  *prometheus.CounterVec
	errorCounter    *prometheus.CounterVec
	idCounter       prometheus.Counter
}

func NewMetricsService(svc Service, reg prometheus.Registerer) *MetricsService {
	durationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "hailstorm_id_duration_seconds",
			Help: "ID 服务调用耗时统计（秒）",
			Objectives: map[float64]float64{
				metricsP50Percentile: metricsP50Error,
				metricsP90Percentile: metricsP90Error,
				metricsP99Percentile: metricsP99Error,
			},
			MaxAge: metricsMaxAge,
		}, []string{"method", "status"},
	)
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hailstorm_id_requests_total",
			Help: "ID 服务调用总数",
		}, []string{"method"},
	)
	errorCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hailstorm_id_errors_total",
			Help: "ID 服务失败次数，按原因区分",
		}, []string{"method", "reason"},
	)
	idCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hailstorm_ids_generated_total",
		Help: "已经生成的 ID 总数",
	})

	// 注册指标
	reg.MustRegister(durationSummary, requestCounter, errorCounter, idCounter)

	return &MetricsService{
		svc:             svc,
		durationSummary: durationSummary,
		requestCounter:  requestCounter,
		errorCounter:    errorCounter,
		idCounter:       idCounter,
	}
}

func (m *MetricsService) Generate(ctx context.Context) (domain.ID, error) {
	const method = "Generate"
	start := time.Now()
	m.requestCounter.WithLabelValues(method).Inc()

	id, err := m.svc.Generate(ctx)
	if err == nil {
		m.idCounter.Inc()
	}
	m.observe(method, start, err)
	return id, err
}

func (m *MetricsService) BatchGenerate(ctx context.Context, count int) ([]domain.ID, error) {
	const method = "BatchGenerate"
	start := time.Now()
	m.requestCounter.WithLabelValues(method).Inc()

	ids, err := m.svc.BatchGenerate(ctx, count)
	m.idCounter.Add(float64(len(ids)))
	m.observe(method, start, err)
	return ids, err
}

func (m *MetricsService) Parse(ctx context.Context, value uint64) (domain.ID, error) {
	const method = "Parse"
	start := time.Now()
	m.requestCounter.WithLabelValues(method).Inc()

	id, err := m.svc.Parse(ctx, value)
	m.observe(method, start, err)
	return id, err
}

func (m *MetricsService) Node(ctx context.Context) domain.Node {
	return m.svc.Node(ctx)
}

func (m *MetricsService) observe(method string, start time.Time, err error) {
	status := statusSuccess
	if err != nil {
		status = statusFailed
		m.errorCounter.WithLabelValues(method, errorReason(err)).Inc()
	}
	m.durationSummary.WithLabelValues(method, status).Observe(time.Since(start).Seconds())
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, errs.ErrClockRegression):
		return "clock_regression"
	case errors.Is(err, errs.ErrInvalidParameter):
		return "invalid_parameter"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "context"
	default:
		return "unknown"
	}
}
