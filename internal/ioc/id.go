package ioc

import (
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go-hailstorm/internal/domain"
	"go-hailstorm/internal/pkg/id_generator"
	"go-hailstorm/internal/pkg/logger"
	"go-hailstorm/internal/pkg/retry"
	idsvc "go-hailstorm/internal/service/id"
	"go.opentelemetry.io/otel/sdk/trace"
	"sync/atomic"
)

// 一个进程只能有一个生成器，两个生成器用同一个节点ID会生成重复的ID
var generatorBuilt atomic.Bool

type idgenConfig struct {
	Kind         string        `yaml:"kind"`
	NodeID       *int64        `yaml:"nodeId"`
	Retry        *retry.Config `yaml:"retry"`
	MaxBatchSize int           `yaml:"maxBatchSize"`
}

func loadIDGenConfig() idgenConfig {
	var cfg idgenConfig
	err := viper.UnmarshalKey("idgen", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Kind == "" {
		cfg.Kind = domain.GeneratorKindHailstorm.String()
	}
	return cfg
}

func InitIDGenerator(l logger.Logger) id_generator.IDGenerator {
	if !generatorBuilt.CompareAndSwap(false, true) {
		panic("ID 生成器已经初始化过了，一个进程只能有一个")
	}
	cfg := loadIDGenConfig()
	// 没有配置节点ID时自动推导
	nodeID := int64(id_generator.AutoNodeID)
	if cfg.NodeID != nil {
		nodeID = *cfg.NodeID
	}

	var (
		gen id_generator.IDGenerator
		err error
	)
	switch domain.GeneratorKind(cfg.Kind) {
	case domain.GeneratorKindHailstorm:
		gen, err = id_generator.NewGenerator(nodeID)
	case domain.GeneratorKindSonyflake:
		gen, err = id_generator.NewSonyflakeGenerator(nodeID)
	default:
		err = fmt.Errorf("未知的生成器类型: %s", cfg.Kind)
	}
	if err != nil {
		panic(err)
	}
	l.Info("ID 生成器初始化完成",
		logger.String("kind", cfg.Kind),
		logger.Int64("configuredNodeId", nodeID),
		logger.Int64("nodeId", gen.NodeID()))
	return gen
}

func InitIDService(gen id_generator.IDGenerator, reg prometheus.Registerer,
	tp *trace.TracerProvider, l logger.Logger) idsvc.Service {
	cfg := loadIDGenConfig()
	svc, err := idsvc.NewService(gen, domain.GeneratorKind(cfg.Kind), cfg.Retry, cfg.MaxBatchSize, l)
	if err != nil {
		panic(err)
	}
	svc = idsvc.NewMetricsService(svc, reg)
	return idsvc.NewTracingService(svc, tp)
}
