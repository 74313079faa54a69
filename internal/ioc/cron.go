package ioc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
	"go-hailstorm/internal/pkg/logger"
	"go-hailstorm/internal/service/clockwatch"
	"time"
)

type clockwatchConfig struct {
	Spec         string        `yaml:"spec"`
	Threshold    time.Duration `yaml:"threshold"`
	Window       int           `yaml:"window"`
	UnstableRate float64       `yaml:"unstableRate"`
	Consecutive  int           `yaml:"consecutive"`
}

func loadClockwatchConfig() clockwatchConfig {
	cfg := clockwatchConfig{
		Spec:      "@every 1s",
		Threshold: 100 * time.Millisecond,
	}
	err := viper.UnmarshalKey("clockwatch", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func InitClockWatcher(reg prometheus.Registerer, l logger.Logger) *clockwatch.Watcher {
	cfg := loadClockwatchConfig()
	return clockwatch.NewWatcher(clockwatch.Config{
		Threshold:    cfg.Threshold,
		Window:       cfg.Window,
		UnstableRate: cfg.UnstableRate,
		Consecutive:  cfg.Consecutive,
	}, reg, l)
}

func InitCron(w *clockwatch.Watcher, l logger.Logger) *cron.Cron {
	cfg := loadClockwatchConfig()
	c := cron.New(cron.WithSeconds())
	_, err := c.AddJob(cfg.Spec, cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(w))
	if err != nil {
		panic(err)
	}
	l.Info("时钟巡检任务已注册", logger.String("spec", cfg.Spec))
	return c
}
