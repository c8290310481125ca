package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	APIBaseURL     string `env:"CREATORHUB_API_URL,  default=http://localhost:5000/api"`
	Env            string `env:"ENV,                 default=development"`
	LogLevel       string `env:"LOG_LEVEL,           default=info"`
	RequestTimeout int    `env:"REQUEST_TIMEOUT_SEC, default=15"`

	Token TokenConfig
	Redis RedisConfig
	Stub  StubConfig
}

// TokenConfig controls where the session token is persisted between runs.
// Backend "file" keeps a single token file on disk; "redis" shares the slot
// through Redis for daemon-style deployments.
type TokenConfig struct {
	Backend string `env:"TOKEN_BACKEND, default=file"`
	Path    string `env:"TOKEN_PATH"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// StubConfig configures the local API stub server (dev/e2e harness).
type StubConfig struct {
	Port      string `env:"STUB_PORT,       default=5000"`
	JWTSecret string `env:"STUB_JWT_SECRET, default=dev-only-secret"`
	TokenTTL  int    `env:"STUB_TOKEN_TTL_HOURS, default=24"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
