//go:build wireinject

package main

import (
	"github.com/google/wire"
	igrpc "go-hailstorm/internal/api/grpc"
	"go-hailstorm/internal/ioc"
	webid "go-hailstorm/internal/web/id"
)

var baseSet = wire.NewSet(
	ioc.InitLogger,
	ioc.InitRegisterer,
	ioc.InitZipkinTracer,
	ioc.InitRedisCmdable,
	ioc.InitGoCache,
)

var idSet = wire.NewSet(
	ioc.InitIDGenerator,
	ioc.InitIDService,
	ioc.InitClockWatcher,
	ioc.InitCron,
)

var apiSet = wire.NewSet(
	ioc.InitIdempotencyService,
	igrpc.NewIDServer,
	ioc.InitGRPCServer,
	webid.NewHandler,
	ioc.InitGinHandlers,
	ioc.InitWebServer,
)

func InitApp() *ioc.App {
	wire.Build(
		baseSet,
		idSet,
		apiSet,
		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
