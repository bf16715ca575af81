package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	RedisAddr  string `mapstructure:"REDIS_ADDR"`

	AccessSecret  string `mapstructure:"ACCESS_SECRET"`
	RefreshSecret string `mapstructure:"REFRESH_SECRET"`

	HTTPPort       string `mapstructure:"HTTP_PORT"`
	GRPCPort       string `mapstructure:"GRPC_PORT"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Геймификация
	DefaultActionXP  int     `mapstructure:"DEFAULT_ACTION_XP"`
	MaxActionXP      int     `mapstructure:"MAX_ACTION_XP"`
	ActionRatePerSec float64 `mapstructure:"ACTION_RATE_PER_SEC"`
	ActionBurst      int     `mapstructure:"ACTION_BURST"`

	StatsCacheTTL        time.Duration `mapstructure:"STATS_CACHE_TTL"`
	SlowRequestThreshold time.Duration `mapstructure:"SLOW_REQUEST_THRESHOLD"`
}

var keys = []string{
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "REDIS_ADDR",
	"ACCESS_SECRET", "REFRESH_SECRET",
	"HTTP_PORT", "GRPC_PORT", "ALLOWED_ORIGINS",
	"LOG_LEVEL", "LOG_FORMAT",
	"DEFAULT_ACTION_XP", "MAX_ACTION_XP", "ACTION_RATE_PER_SEC", "ACTION_BURST",
	"STATS_CACHE_TTL", "SLOW_REQUEST_THRESHOLD",
}

func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "mindwell")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("HTTP_PORT", ":8080")
	v.SetDefault("GRPC_PORT", ":50051")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("DEFAULT_ACTION_XP", 10)
	v.SetDefault("MAX_ACTION_XP", 1000)
	v.SetDefault("ACTION_RATE_PER_SEC", 1.0)
	v.SetDefault("ACTION_BURST", 5)
	v.SetDefault("STATS_CACHE_TTL", "60s")
	v.SetDefault("SLOW_REQUEST_THRESHOLD", "500ms")

	v.AutomaticEnv()

	// Явно биндим, чтобы Unmarshal видел переменные без файла
	for _, key := range keys {
		if err = v.BindEnv(key); err != nil {
			return
		}
	}

	err = v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = v.Unmarshal(&config)
	return
}
