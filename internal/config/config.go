package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	AI        AIConfig        `mapstructure:"ai"`
	Quiz      QuizConfig      `mapstructure:"quiz"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Tracing   TracingConfig   `mapstructure:"tracing"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	ForceMigrate bool `mapstructure:"-"` // 强制执行数据库迁移
	MigrateOnly  bool `mapstructure:"-"` // 仅迁移模式（迁移后退出）
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type AIConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	APIKey         string        `mapstructure:"api_key"`
	Model          string        `mapstructure:"model"`
	RequestTimeout time.Duration `mapstructure:"request_timeout_seconds"`
}

// QuizConfig 测验相关参数
type QuizConfig struct {
	RankingPageSize     int           `mapstructure:"ranking_page_size"`
	RankingCacheSeconds time.Duration `mapstructure:"ranking_cache_seconds"`
	AttemptStateTTL     time.Duration `mapstructure:"attempt_state_ttl_hours"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests      int `mapstructure:"max_requests"`
	WindowMinutes    int `mapstructure:"window_minutes"`
	GradeMaxRequests int `mapstructure:"grade_max_requests"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("GIT_QUIZ")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// AI
	viper.BindEnv("ai.base_url", "AI_BASE_URL")
	viper.BindEnv("ai.api_key", "AI_API_KEY")
	viper.BindEnv("ai.model", "AI_MODEL")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.AI.RequestTimeout = cfg.AI.RequestTimeout * time.Second
	cfg.Quiz.RankingCacheSeconds = cfg.Quiz.RankingCacheSeconds * time.Second
	cfg.Quiz.AttemptStateTTL = cfg.Quiz.AttemptStateTTL * time.Hour

	if cfg.AI.RequestTimeout <= 0 {
		cfg.AI.RequestTimeout = 30 * time.Second
	}
	if cfg.Quiz.RankingPageSize <= 0 {
		cfg.Quiz.RankingPageSize = 10
	}
	if cfg.Quiz.RankingCacheSeconds <= 0 {
		cfg.Quiz.RankingCacheSeconds = 30 * time.Second
	}
	if cfg.Quiz.AttemptStateTTL <= 0 {
		cfg.Quiz.AttemptStateTTL = 24 * time.Hour
	}

	// 生产环境必须配置评分模型密钥
	if cfg.Server.Mode == "release" && cfg.AI.APIKey == "" {
		return nil, fmt.Errorf("ai.api_key is required in release mode")
	}

	return &cfg, nil
}
