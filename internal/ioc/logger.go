package ioc

import (
	"github.com/spf13/viper"
	"go-hailstorm/internal/pkg/ginx"
	"go-hailstorm/internal/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func InitLogger() logger.Logger {
	type Config struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	}
	var cfg Config
	err := viper.UnmarshalKey("log", &cfg)
	if err != nil {
		panic(err)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			panic(err)
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}
	l, err := zapCfg.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(l)

	res := logger.NewZapLogger(l)
	ginx.SetLogger(res)
	return res
}
