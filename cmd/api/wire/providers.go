package wire

import (
	"fmt"
	"log/slog"

	"cms-console/cmd/config"
	"cms-console/internal/content/gateway"
	"cms-console/internal/content/persistence"
	"cms-console/internal/infra/cache"
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideGatewayConfig(cfg config.AppConfig) gateway.Config {
	return gateway.Config{
		BaseURL: cfg.Remote.BaseURL,
		Timeout: cfg.Remote.Timeout,
	}
}

func provideCache(cfg config.AppConfig) (cache.Cache, error) {
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		redisConfig := cache.DefaultRedisConfig()
		redisConfig.Addr = cfg.Redis.Addr
		redisConfig.Password = cfg.Redis.Password
		redisConfig.DB = cfg.Redis.DB
		return cache.NewRedisCache(redisConfig)
	case config.SessionBackendMemory, "":
		slog.Info("keeping console sessions in memory")
		return cache.New(cache.DefaultConfig())
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

func provideStateStoreConfig(cfg config.AppConfig, c cache.Cache) *persistence.CacheStateStoreConfig {
	storeConfig := persistence.DefaultCacheStateStoreConfig()
	storeConfig.Cache = c
	if cfg.Session.TTL > 0 {
		storeConfig.TTL = cfg.Session.TTL
	}
	if cfg.Session.KeyPrefix != "" {
		storeConfig.KeyPrefix = cfg.Session.KeyPrefix
	}
	return storeConfig
}
