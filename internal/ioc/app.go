package ioc

import (
	"context"
	"errors"
	"github.com/robfig/cron/v3"
	"go-hailstorm/internal/pkg/grpcx"
	"go-hailstorm/internal/pkg/logger"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	GrpcServer     *grpcx.Server
	WebServer      *http.Server
	Cron           *cron.Cron
	TracerProvider *trace.TracerProvider
	L              logger.Logger
}

// Run 启动定时任务和两个服务，ctx 取消后优雅退出，退出完成才返回
func (a *App) Run(ctx context.Context) error {
	a.Cron.Start()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return a.GrpcServer.Serve()
	})
	eg.Go(func() error {
		a.L.Info("HTTP 服务启动", logger.String("addr", a.WebServer.Addr))
		err := a.WebServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	eg.Go(func() error {
		// 收到退出信号，或者任意一个服务启动失败
		<-ctx.Done()
		a.L.Info("开始退出")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Close(shutdownCtx)
	})
	return eg.Wait()
}

// Close 依次关闭各个组件，错误会合并返回
func (a *App) Close(ctx context.Context) error {
	var err error
	<-a.Cron.Stop().Done()
	err = multierr.Append(err, a.WebServer.Shutdown(ctx))
	err = multierr.Append(err, a.GrpcServer.Close())
	err = multierr.Append(err, a.TracerProvider.Shutdown(ctx))
	return err
}
