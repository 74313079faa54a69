package ioc

import (
	"github.com/patrickmn/go-cache"
	"github.com/spf13/viper"
	"time"
)

func InitGoCache() *cache.Cache {
	type Config struct {
		DefaultExpiration time.Duration `yaml:"defaultExpiration"`
		CleanupInterval   time.Duration `yaml:"cleanupInterval"`
	}
	cfg := Config{
		DefaultExpiration: 10 * time.Minute,
		CleanupInterval:   time.Minute,
	}
	err := viper.UnmarshalKey("cache.local", &cfg)
	if err != nil {
		panic(err)
	}
	return cache.New(cfg.DefaultExpiration, cfg.CleanupInterval)
}
