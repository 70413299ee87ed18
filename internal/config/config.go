package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config captures all runtime configuration derived from the environment.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
	AllowedOrigins  []string

	StoreDriver string
	DBDSN       string
	DBTimeout   time.Duration
	DBMaxConns  int32
	DBMinConns  int32

	JWTSecret string
	TokenTTL  time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// LoadEnvFiles reads .env and .env.local without overriding variables the runtime
// already provides.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load reads configuration from environment variables, applying defaults and validation.
func Load() (Config, error) {
	LoadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		Addr:            v.GetString("APP_ADDR"),
		ReadTimeout:     v.GetDuration("READ_TIMEOUT"),
		WriteTimeout:    v.GetDuration("WRITE_TIMEOUT"),
		IdleTimeout:     v.GetDuration("IDLE_TIMEOUT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		MaxBodyBytes:    v.GetInt64("MAX_BODY_BYTES"),
		AllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),

		StoreDriver: strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		DBDSN:       v.GetString("DB_DSN"),
		DBTimeout:   v.GetDuration("DB_TIMEOUT"),
		DBMaxConns:  v.GetInt32("DB_MAX_CONNS"),
		DBMinConns:  v.GetInt32("DB_MIN_CONNS"),

		JWTSecret: v.GetString("JWT_SECRET"),
		TokenTTL:  v.GetDuration("TOKEN_TTL"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ADDR", ":8080")
	v.SetDefault("READ_TIMEOUT", "5s")
	v.SetDefault("WRITE_TIMEOUT", "10s")
	v.SetDefault("IDLE_TIMEOUT", "60s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("STORE_DRIVER", DriverPostgres)
	v.SetDefault("DB_DSN", "")
	v.SetDefault("DB_TIMEOUT", "3s")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 1)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
}

// Validate reports the first configuration problem found.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.StoreDriver {
	case DriverPostgres:
		if c.DBDSN == "" {
			return errors.New("DB_DSN is required when STORE_DRIVER=postgres")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMemory, c.StoreDriver)
	}
	if c.DBTimeout <= 0 {
		return errors.New("DB_TIMEOUT must be positive")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.IdleTimeout <= 0 || c.ShutdownTimeout <= 0 {
		return errors.New("server timeouts must be positive")
	}
	if c.MaxBodyBytes <= 0 {
		return errors.New("MAX_BODY_BYTES must be positive")
	}
	if c.DBMaxConns <= 0 {
		return errors.New("DB_MAX_CONNS must be positive")
	}
	if c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
		return errors.New("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
