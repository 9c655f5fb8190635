package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL"`

	Server   ServerConfig   `envPrefix:"SERVER_"`
	Database DatabaseConfig `envPrefix:"DB_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	RabbitMQ RabbitMQConfig `envPrefix:"RABBITMQ_"`
	Auth     AuthConfig     `envPrefix:"AUTH_"`
	Authz    AuthzConfig    `envPrefix:"AUTHZ_"`
	Lease    LeaseConfig    `envPrefix:"LEASE_"`
	Cache    CacheConfig    `envPrefix:"CACHE_"`
	Internal InternalConfig `envPrefix:"INTERNAL_"`
	Metrics  MetricsConfig  `envPrefix:"METRICS_"`
}

type ServerConfig struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
}

type DatabaseConfig struct {
	Host            string        `env:"HOST" envDefault:"localhost"`
	Port            int           `env:"PORT" envDefault:"3306"`
	User            string        `env:"USER" envDefault:"root"`
	Password        string        `env:"PASSWORD"`
	Name            string        `env:"NAME" envDefault:"warehouse"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"5m"`
}

type RedisConfig struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

type RabbitMQConfig struct {
	Enabled  bool   `env:"ENABLED" envDefault:"true"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5672"`
	User     string `env:"USER" envDefault:"guest"`
	Password string `env:"PASSWORD" envDefault:"guest"`
}

type AuthConfig struct {
	JWTSecret      string        `env:"JWT_SECRET"`
	JWTExpiration  time.Duration `env:"JWT_EXPIRATION" envDefault:"8h"`
	SessionExpTime time.Duration `env:"SESSION_EXP_TIME" envDefault:"8h"`
}

type AuthzConfig struct {
	PolicyPath string `env:"POLICY_PATH" envDefault:"config/access/policy.csv"`
}

// LeaseConfig bounds how long a session may hold a location.
type LeaseConfig struct {
	TTL    time.Duration `env:"TTL" envDefault:"2m"`
	MaxTTL time.Duration `env:"MAX_TTL" envDefault:"15m"`
}

type CacheConfig struct {
	TreeTTL time.Duration `env:"TREE_TTL" envDefault:"5m"`
}

type InternalConfig struct {
	APIKey string `env:"API_KEY"`
	APIURL string `env:"API_URL" envDefault:"http://localhost:8080"`
}

type MetricsConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"true"`
	Path    string `env:"PATH" envDefault:"/metrics"`
}

// Load reads .env files if present and parses the environment. It panics on
// malformed values, matching the behaviour expected at process start.
func Load() *Config {
	cfg, err := Parse(".env", ".env.local")
	if err != nil {
		panic(err)
	}
	return cfg
}

// Parse loads the given env files (missing ones are skipped) and parses the
// environment into a Config.
func Parse(envFiles ...string) (*Config, error) {
	existing := make([]string, 0, len(envFiles))
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return nil, fmt.Errorf("load env files: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Lease.TTL > cfg.Lease.MaxTTL {
		return nil, fmt.Errorf("LEASE_TTL %s exceeds LEASE_MAX_TTL %s", cfg.Lease.TTL, cfg.Lease.MaxTTL)
	}
	return cfg, nil
}

// GetDSN builds the MySQL DSN.
func (c *Config) GetDSN() string {
	mc := mysql.NewConfig()
	mc.User = c.Database.User
	mc.Passwd = c.Database.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port)
	mc.DBName = c.Database.Name
	mc.ParseTime = true
	// RowsAffected counts matched rows, so idempotent updates are not mistaken for missing ones.
	mc.ClientFoundRows = true
	mc.Loc = time.UTC
	return mc.FormatDSN()
}
