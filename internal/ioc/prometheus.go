package ioc

import "github.com/prometheus/client_golang/prometheus"

// InitRegisterer 使用默认的注册中心，/metrics 直接暴露
func InitRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}
