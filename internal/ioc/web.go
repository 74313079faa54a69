package ioc

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
	"go-hailstorm/internal/pkg/ginx"
	"go-hailstorm/internal/pkg/logger"
	webid "go-hailstorm/internal/web/id"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"net/http"
	"time"
)

func InitGinHandlers(h *webid.Handler) []ginx.Handler {
	return []ginx.Handler{h}
}

func InitWebServer(handlers []ginx.Handler, l logger.Logger) *http.Server {
	type Config struct {
		Addr         string        `yaml:"addr"`
		ReadTimeout  time.Duration `yaml:"readTimeout"`
		WriteTimeout time.Duration `yaml:"writeTimeout"`
		Debug        bool          `yaml:"debug"`
	}
	cfg := Config{
		Addr:         ":8080",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
	err := viper.UnmarshalKey("http", &cfg)
	if err != nil {
		panic(err)
	}
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	for _, h := range handlers {
		h.RegisterRoutes(engine)
	}
	l.Info("HTTP 服务初始化完成", logger.String("addr", cfg.Addr))

	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      otelhttp.NewHandler(engine, "hailstorm-http"),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}
