package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Directory DirectoryConfig
	Redis     RedisConfig
	Lookup    LookupConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// DirectoryConfig - параметры HTTP клиента справочника. Endpoint и число повторов
// приходят вместе с каждым запросом, здесь только общие для сервиса настройки.
type DirectoryConfig struct {
	RequestTimeout time.Duration
	RetryBackoff   time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// LookupConfig - публикация событий поиска в Redis Stream
type LookupConfig struct {
	Enabled bool
	Stream  string
}

type LogConfig struct {
	Level string
}

// Load читает конфигурацию из файла .env (если он есть) и переменных окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Directory: DirectoryConfig{
			RequestTimeout: time.Duration(v.GetInt("DIRECTORY_REQUEST_TIMEOUT")) * time.Second,
			RetryBackoff:   time.Duration(v.GetInt("DIRECTORY_RETRY_BACKOFF")) * time.Millisecond,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Lookup: LookupConfig{
			Enabled: v.GetBool("LOOKUP_STREAM_ENABLED"),
			Stream:  v.GetString("LOOKUP_STREAM_NAME"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Directory.RequestTimeout == 0 {
		cfg.Directory.RequestTimeout = 10 * time.Second
	}
	if cfg.Directory.RetryBackoff == 0 {
		cfg.Directory.RetryBackoff = 200 * time.Millisecond
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Lookup.Stream == "" {
		cfg.Lookup.Stream = "stream:dispenser:lookups"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
