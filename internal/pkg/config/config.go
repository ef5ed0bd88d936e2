package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// TokenTTL is the lifetime of minted session tokens.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=24h"`
	// ReportCacheTTL bounds the staleness of the commenters report.
	ReportCacheTTL time.Duration `env:"REPORT_CACHE_TTL, default=5m"`

	Mongo MongoConfig
	Redis RedisConfig
}

// MongoConfig makes the timeout and write-concern knobs explicit instead of
// relying on silent driver defaults.
type MongoConfig struct {
	URI            string        `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database       string        `env:"MONGO_DB,  default=mflix"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT, default=30s"`
	WTimeout       time.Duration `env:"MONGO_WTIMEOUT,        default=2500ms"`
	OpTimeout      time.Duration `env:"MONGO_OP_TIMEOUT,      default=10s"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
