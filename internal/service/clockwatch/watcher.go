package clockwatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"go-hailstorm/internal/pkg/bitring"
	"go-hailstorm/internal/pkg/logger"
	"go-hailstorm/internal/pkg/ringbuffer"
	"sync"
	"time"
)

const (
	defaultThreshold    = 100 * time.Millisecond
	defaultWindow       = 60
	defaultUnstableRate = 0.2
	defaultConsecutive  = 3
)

var _ cron.Job = (*Watcher)(nil)

type Config struct {
	// Threshold 漂移超过这个值算一次异常
	Threshold time.Duration `yaml:"threshold"`
	// Window 最近多少次采样参与判断
	Window int `yaml:"window"`
	// UnstableRate 窗口内异常比例超过这个值认为时钟不稳定
	UnstableRate float64 `yaml:"unstableRate"`
	// Consecutive 连续这么多次异常也认为时钟不稳定
	Consecutive int `yaml:"consecutive"`
}

func (c Config) withDefaults() Config {
	if c.Threshold <= 0 {
		c.Threshold = defaultThreshold
	}
	if c.Window <= 0 {
		c.Window = defaultWindow
	}
	if c.UnstableRate <= 0 {
		c.UnstableRate = defaultUnstableRate
	}
	if c.Consecutive <= 0 {
		c.Consecutive = defaultConsecutive
	}
	return c
}

// probe 返回当前的墙上时间，以及从启动开始经过的单调时间
type probe func() (wall time.Time, elapsed time.Duration)

// Watcher 定时比较墙上时钟和单调时钟，发现时钟回拨或者漂移过大时告警
// 只观察时钟，不读取生成器的任何状态
type Watcher struct {
	cfg   Config
	probe probe
	l     logger.Logger

	mu sync.Mutex

	// 上一次采样，漂移按照相邻两次采样计算
	prevWall    time.Time
	prevElapsed time.Duration
	unstable    bool
	anomalies   *bitring.BitRing
	drifts      *ringbuffer.TimeDurationRingBuffer

	driftGauge    prometheus.Gauge
	avgDriftGauge prometheus.Gauge
	unstableGauge prometheus.Gauge
	regressions   prometheus.Counter
}

func NewWatcher(cfg Config, reg prometheus.Registerer, l logger.Logger) *Watcher {
	start := time.Now()
	return newWatcher(cfg, reg, l, func() (time.Time, time.Duration) {
		now := time.Now()
		// Round(0) 去掉单调时钟读数，Sub 才会按照墙上时间计算
		return now.Round(0), now.Sub(start)
	}, start.Round(0))
}

func newWatcher(cfg Config, reg prometheus.Registerer, l logger.Logger, p probe, startWall time.Time) *Watcher {
	cfg = cfg.withDefaults()
	// 容量已经保证大于 0
	drifts, _ := ringbuffer.NewTimeDurationRingBuffer(cfg.Window)
	w := &Watcher{
		cfg:       cfg,
		probe:     p,
		l:         l,
		prevWall:  startWall,
		anomalies: bitring.NewBitRing(cfg.Window, cfg.UnstableRate, cfg.Consecutive),
		drifts:    drifts,
		driftGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hailstorm_clock_drift_seconds",
			Help: "最近一次采样间隔内墙上时钟相对单调时钟的漂移（秒），负数表示墙上时钟被往回拨了",
		}),
		avgDriftGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hailstorm_clock_drift_avg_seconds",
			Help: "最近一个窗口内的平均漂移（秒）",
		}),
		unstableGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hailstorm_clock_unstable",
			Help: "时钟是否不稳定，1 表示最近一个窗口内异常过多",
		}),
		regressions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hailstorm_clock_regressions_total",
			Help: "观察到的墙上时钟回拨次数",
		}),
	}
	reg.MustRegister(w.driftGauge, w.avgDriftGauge, w.unstableGauge, w.regressions)
	return w
}

// Run 实现 cron.Job
func (w *Watcher) Run() {
	w.Check()
}

// Check 采样一次，返回和上一次采样相比的漂移
func (w *Watcher) Check() time.Duration {
	wall, elapsed := w.probe()

	w.mu.Lock()
	defer w.mu.Unlock()

	drift := wall.Sub(w.prevWall) - (elapsed - w.prevElapsed)
	w.driftGauge.Set(drift.Seconds())
	w.drifts.Add(drift)
	w.avgDriftGauge.Set(w.drifts.Avg().Seconds())

	anomaly := false
	if wall.Before(w.prevWall) {
		anomaly = true
		w.regressions.Inc()
		w.l.Warn("墙上时钟发生回拨",
			logger.String("prev", w.prevWall.Format(time.RFC3339Nano)),
			logger.String("now", wall.Format(time.RFC3339Nano)),
			logger.Duration("back", w.prevWall.Sub(wall)))
	}
	if drift > w.cfg.Threshold || drift < -w.cfg.Threshold {
		anomaly = true
		w.l.Warn("时钟漂移超过阈值",
			logger.Duration("drift", drift),
			logger.Duration("threshold", w.cfg.Threshold))
	}
	w.prevWall = wall
	w.prevElapsed = elapsed
	w.anomalies.Add(anomaly)
	w.updateStability()
	return drift
}

// Unstable 最近一个窗口内时钟是否不稳定
func (w *Watcher) Unstable() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.unstable
}

func (w *Watcher) updateStability() {
	unstable := w.anomalies.IsConditionMet()
	if unstable == w.unstable {
		return
	}
	w.unstable = unstable
	if unstable {
		w.unstableGauge.Set(1)
		w.l.Error("时钟不稳定，生成 ID 可能频繁遇到时钟回拨",
			logger.Any("anomalyRate", w.anomalies.Rate()),
			logger.Duration("avgDrift", w.drifts.Avg()))
		return
	}
	w.unstableGauge.Set(0)
	w.l.Info("时钟恢复稳定")
}
