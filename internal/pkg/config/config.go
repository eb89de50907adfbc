package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	HTTP  HTTPConfig
	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type HTTPConfig struct {
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT,     default=10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT,    default=15s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT, default=10s"`
}

type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET, required"`
	JWTTTL     time.Duration `env:"JWT_TTL,          default=168h"`
	BcryptCost int           `env:"BCRYPT_COST,      default=10"`
	LoginRate  float64       `env:"LOGIN_RATE_LIMIT, default=5"`
	LoginBurst int           `env:"LOGIN_RATE_BURST, default=10"`
}

type MongoConfig struct {
	// CONNECTION_URI is the variable name the catalogue has always been deployed with.
	URI      string `env:"CONNECTION_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,       default=myFlixDB"`
}

// RedisConfig is optional: an empty Addr disables the movie cache.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	DB       int           `env:"REDIS_DB,   default=0"`
	CacheTTL time.Duration `env:"CACHE_TTL,  default=5m"`
}

// IsDevelopment reports whether human-friendly logs should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) validate() error {
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", c.Auth.BcryptCost)
	}
	if c.Auth.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	return nil
}

// LoadWith reads configuration through the given lookuper. Tests pass an
// envconfig.MapLookuper; production code uses Load.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}
