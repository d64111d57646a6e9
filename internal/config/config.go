package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Trivia    TriviaConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	Mode         string // debug, release, test
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	LogLevel     string `mapstructure:"log_level"` // silent, error, warn, info
}

// RedisConfig содержит унифицированные настройки подключения к Redis
// Поддерживает режимы: single, sentinel, cluster
type RedisConfig struct {
	// Mode: Режим работы Redis ("single", "sentinel", "cluster"). По умолчанию "single".
	Mode string `mapstructure:"mode"`

	// Addrs: Список адресов Redis (хост:порт).
	Addrs []string `mapstructure:"addrs"`

	// Addr: Альтернативный адрес для режима 'single'.
	// Используется, если Addrs пустой.
	Addr string `mapstructure:"addr"`

	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// MasterName: Имя мастер-сервера Redis (только для режима "sentinel")
	MasterName string `mapstructure:"master_name"`

	MaxRetries      int `mapstructure:"max_retries"`
	MinRetryBackoff int `mapstructure:"min_retry_backoff"` // мс
	MaxRetryBackoff int `mapstructure:"max_retry_backoff"` // мс
}

// RateLimitConfig содержит настройки ограничения запросов на изменяющие эндпоинты
type RateLimitConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	MaxRequests int  `mapstructure:"max_requests"`
	WindowSec   int  `mapstructure:"window_sec"`
}

// TriviaConfig содержит настройки предметной области
type TriviaConfig struct {
	// EnforceCategoryRef: проверять существование категории при создании вопроса.
	// По умолчанию выключено, ссылка questions.category не проверяется.
	EnforceCategoryRef bool `mapstructure:"enforce_category_ref"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// RedisConfigured сообщает, указан ли хотя бы один адрес Redis
func (r *RedisConfig) RedisConfigured() bool {
	return len(r.Addrs) > 0 || r.Addr != ""
}

func setDefaults(vip *viper.Viper) {
	vip.SetDefault("server.port", "5000")
	vip.SetDefault("server.read_timeout", 15)
	vip.SetDefault("server.write_timeout", 15)
	vip.SetDefault("server.mode", "debug")

	vip.SetDefault("database.host", "localhost")
	vip.SetDefault("database.port", "5432")
	vip.SetDefault("database.user", "postgres")
	vip.SetDefault("database.dbname", "trivia")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("database.max_open_conns", 25)
	vip.SetDefault("database.max_idle_conns", 10)
	vip.SetDefault("database.log_level", "warn")

	vip.SetDefault("redis.mode", "single")

	vip.SetDefault("rate_limit.enabled", false)
	vip.SetDefault("rate_limit.max_requests", 30)
	vip.SetDefault("rate_limit.window_sec", 60)

	vip.SetDefault("trivia.enforce_category_ref", false)
}

// Load загружает конфигурацию из файла и переменных окружения.
// Отсутствие файла не ошибка: используются переменные окружения и умолчания.
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Новый экземпляр Viper, без глобального состояния

	setDefaults(vip)

	// Привязка для секции Server
	vip.BindEnv("server.port", "SERVER_PORT")
	vip.BindEnv("server.mode", "GIN_MODE")

	// Привязка для секции Database
	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")
	vip.BindEnv("database.log_level", "DATABASE_LOG_LEVEL")

	// Привязка для секции Redis
	vip.BindEnv("redis.mode", "REDIS_MODE")
	vip.BindEnv("redis.addrs", "REDIS_ADDRS")
	vip.BindEnv("redis.addr", "REDIS_ADDR")
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")
	vip.BindEnv("redis.master_name", "REDIS_MASTER_NAME")

	// Привязка для RateLimit и Trivia
	vip.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	vip.BindEnv("rate_limit.max_requests", "RATE_LIMIT_MAX_REQUESTS")
	vip.BindEnv("rate_limit.window_sec", "RATE_LIMIT_WINDOW_SEC")
	vip.BindEnv("trivia.enforce_category_ref", "TRIVIA_ENFORCE_CATEGORY_REF")

	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
			}
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("database configuration (host, dbname, user) is incomplete (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
	}
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required (check SERVER_PORT env var)")
	}
	if c.RateLimit.Enabled {
		if !c.Redis.RedisConfigured() {
			return fmt.Errorf("rate limiting requires redis (check REDIS_ADDR or REDIS_ADDRS env vars)")
		}
		if c.RateLimit.MaxRequests <= 0 || c.RateLimit.WindowSec <= 0 {
			return fmt.Errorf("rate_limit.max_requests and rate_limit.window_sec must be positive")
		}
	}
	return nil
}
