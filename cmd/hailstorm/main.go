package main

import (
	"context"
	"fmt"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go-hailstorm/internal/pkg/logger"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

func main() {
	initViper()

	app := InitApp()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		app.L.Error("服务异常退出", logger.Error(err))
	}
	if zl, ok := app.L.(*logger.ZapLogger); ok {
		_ = zl.Sync()
	}
}

func initViper() {
	cfile := pflag.String("config", "config/config.yaml", "配置文件路径")
	pflag.Parse()

	viper.SetConfigFile(*cfile)
	viper.SetEnvPrefix("HAILSTORM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("读取配置文件失败: %w", err))
	}
}
