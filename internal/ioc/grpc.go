package ioc

import (
	"github.com/go-kratos/aegis/circuitbreaker/sre"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	igrpc "go-hailstorm/internal/api/grpc"
	"go-hailstorm/internal/api/grpc/interceptor/circuitbreaker"
	"go-hailstorm/internal/api/grpc/interceptor/degrade"
	"go-hailstorm/internal/api/grpc/interceptor/idempotent"
	"go-hailstorm/internal/api/grpc/interceptor/jwt"
	"go-hailstorm/internal/api/grpc/interceptor/log"
	"go-hailstorm/internal/api/grpc/interceptor/metrics"
	"go-hailstorm/internal/api/grpc/interceptor/timeout"
	idempotentsvc "go-hailstorm/internal/pkg/idempotent"
	"go-hailstorm/internal/pkg/grpcx"
	"go-hailstorm/internal/pkg/logger"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"time"
)

func InitGRPCServer(idServer *igrpc.IDServer, idempotency idempotentsvc.IdempotencyService,
	reg prometheus.Registerer, l logger.Logger) *grpcx.Server {
	type Config struct {
		Name      string   `yaml:"name"`
		Port      int      `yaml:"port"`
		Addr      string   `yaml:"addr"`
		EtcdAddrs []string `yaml:"etcdAddrs"`
		EtcdTTL   int64    `yaml:"etcdTTL"`
		// JwtKey 为空时不校验调用方
		JwtKey string `yaml:"jwtKey"`
		// Degrade 开启后，过载时只服务高优先级调用方
		Degrade bool `yaml:"degrade"`
		// DefaultTimeout 调用方没有带截止时间时使用
		DefaultTimeout time.Duration `yaml:"defaultTimeout"`
		// MaxTimeout 时钟回拨重试最多等待这么久
		MaxTimeout time.Duration `yaml:"maxTimeout"`
	}
	cfg := Config{Name: "hailstorm", Port: 8090, DefaultTimeout: time.Second, MaxTimeout: 5 * time.Second}
	err := viper.UnmarshalKey("grpc.server", &cfg)
	if err != nil {
		panic(err)
	}

	interceptors := []grpc.UnaryServerInterceptor{
		timeout.NewBuilder().
			WithDefaultTimeout(cfg.DefaultTimeout).
			WithMaxTimeout(cfg.MaxTimeout).
			Build(),
		log.NewBuilder().WithLogger(l).Build(),
		metrics.NewBuilder(reg).Build(),
	}
	if cfg.JwtKey != "" {
		interceptors = append(interceptors, jwt.NewJwtAuth(cfg.JwtKey).JwtAuthInterceptor())
	}
	if cfg.Degrade {
		interceptors = append(interceptors, degrade.NewBuilder(sre.NewBreaker()).Build())
	} else {
		interceptors = append(interceptors, circuitbreaker.NewBuilder(sre.NewBreaker()).Build())
	}
	interceptors = append(interceptors, idempotent.NewBuilder(idempotency).WithLogger(l).Build())

	server := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(interceptors...),
	)
	idServer.Register(server)

	return &grpcx.Server{
		Server:    server,
		Port:      cfg.Port,
		Addr:      cfg.Addr,
		EtcdAddrs: cfg.EtcdAddrs,
		EtcdTTL:   cfg.EtcdTTL,
		Name:      cfg.Name,
		L:         l,
	}
}
