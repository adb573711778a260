package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("cms_console")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("console")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		config, err := readConfig(viper.GetViper())
		if err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = config
	})

	return configInstance
}

func readConfig(v *viper.Viper) (AppConfig, error) {
	setDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return AppConfig{}, err
	}

	return AppConfig{
		General: GeneralConfig{
			LogLevel: v.GetString("general.log_level"),
		},
		HTTP: HTTPConfig{
			Addr:           v.GetString("http.addr"),
			AllowedOrigins: v.GetStringSlice("http.allowed_origins"),
		},
		Remote: RemoteConfig{
			BaseURL: v.GetString("remote.base_url"),
			Timeout: v.GetDuration("remote.timeout"),
		},
		Session: SessionConfig{
			Backend:   v.GetString("session.backend"),
			TTL:       v.GetDuration("session.ttl"),
			KeyPrefix: v.GetString("session.key_prefix"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", "info")
	v.SetDefault("http.addr", ":3000")
	v.SetDefault("remote.base_url", "http://localhost:5000")
	v.SetDefault("remote.timeout", 10*time.Second)
	v.SetDefault("session.backend", SessionBackendMemory)
	v.SetDefault("session.ttl", 12*time.Hour)
	v.SetDefault("session.key_prefix", "console:state:")
	v.SetDefault("redis.addr", "localhost:6379")
}

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type AppConfig struct {
	General GeneralConfig
	HTTP    HTTPConfig
	Remote  RemoteConfig
	Session SessionConfig
	Redis   RedisConfig
}

type GeneralConfig struct {
	LogLevel string
}

type HTTPConfig struct {
	Addr           string
	AllowedOrigins []string
}

// RemoteConfig points at the content service the console manages.
type RemoteConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	Backend   string
	TTL       time.Duration
	KeyPrefix string
}

type RedisConfig struct {
	Addr     string
	Password string //pragma: allowlist secret
	DB       int
}
