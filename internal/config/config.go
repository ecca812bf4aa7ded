package config

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// Config is the runtime configuration read from the environment (and an optional .env file).
type Config struct {
	Port        string
	AppEnv      string
	TLSCertFile string
	TLSKeyFile  string

	RedisURL      string
	RedisAddr     string
	RedisUser     string
	RedisPassword string

	RateLimitRPS       float64
	RateLimitBurst     int
	RateLimitWindowMax int
	RateLimitWindow    time.Duration

	CORSAllowedOrigins []string
	MaxBodySize        int64
	StrictSecurity     bool
	ShutdownTimeout    time.Duration
}

// Load reads .env files (if any) and then the process environment.
// Malformed values are reported as errors so the server can fail fast.
func Load(envFiles ...string) (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load(envFiles...)

	var err error
	cfg := Config{
		Port:          envString("PORT", "3000"),
		AppEnv:        envString("APP_ENV", "development"),
		TLSCertFile:   os.Getenv("TLS_CERT_FILE"),
		TLSKeyFile:    os.Getenv("TLS_KEY_FILE"),
		RedisURL:      os.Getenv("UPSTASH_REDIS_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisUser:     os.Getenv("REDIS_USER"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}
	cfg.CORSAllowedOrigins = splitCSV(os.Getenv("CORS_ALLOWED_ORIGINS"))
	cfg.StrictSecurity = os.Getenv("STRICT_SECURITY") == "1"

	if cfg.RateLimitRPS, err = envFloat("RATE_LIMIT_RPS", 5); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = envInt("RATE_LIMIT_BURST", 20); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	if cfg.RateLimitWindowMax, err = envInt("RATE_LIMIT_WINDOW_MAX", 3000); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_WINDOW_MAX: %w", err)
	}
	if cfg.RateLimitWindow, err = envDuration("RATE_LIMIT_WINDOW", "60m"); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_WINDOW: %w", err)
	}
	maxBody, err := envInt("MAX_BODY_SIZE", 1<<20)
	if err != nil {
		return Config{}, fmt.Errorf("MAX_BODY_SIZE: %w", err)
	}
	cfg.MaxBodySize = int64(maxBody)
	if cfg.ShutdownTimeout, err = envDuration("SHUTDOWN_TIMEOUT", "20s"); err != nil {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if p, err := strconv.Atoi(c.Port); err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("PORT must be a TCP port, got %q", c.Port)
	}
	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		return errors.New("TLS_CERT_FILE and TLS_KEY_FILE must be set together")
	}
	if c.RateLimitRPS <= 0 {
		return errors.New("RATE_LIMIT_RPS must be > 0")
	}
	if c.RateLimitBurst < 1 {
		return errors.New("RATE_LIMIT_BURST must be >= 1")
	}
	if c.RateLimitWindowMax < 1 {
		return errors.New("RATE_LIMIT_WINDOW_MAX must be >= 1")
	}
	if c.MaxBodySize < 1 {
		return errors.New("MAX_BODY_SIZE must be > 0")
	}
	if c.RedisURL == "" && c.RedisAddr == "" && (c.RedisUser != "" || c.RedisPassword != "") {
		return errors.New("REDIS_USER/REDIS_PASSWORD set without REDIS_ADDR")
	}
	return nil
}

// Addr is the listen address for http.Server.
func (c Config) Addr() string { return ":" + c.Port }

func (c Config) TLSEnabled() bool { return c.TLSCertFile != "" && c.TLSKeyFile != "" }

// RedisEnabled reports whether any Redis connection settings were supplied.
func (c Config) RedisEnabled() bool { return c.RedisURL != "" || c.RedisAddr != "" }

// HardeningWarnings returns non-fatal warnings worth logging on startup.
func (c Config) HardeningWarnings() []string {
	var warns []string

	if !c.RedisEnabled() {
		warns = append(warns, "no Redis configured; rate limiting is per-process only")
	}
	if len(c.CORSAllowedOrigins) == 0 {
		warns = append(warns, "CORS_ALLOWED_ORIGINS is empty; browser requests with an Origin header will be rejected")
	}

	if strings.EqualFold(c.AppEnv, "production") {
		if !c.TLSEnabled() {
			warns = append(warns, "TLS_CERT_FILE/TLS_KEY_FILE not set; serving plain HTTP in production")
		}
		if strings.HasPrefix(c.RedisURL, "redis://") {
			warns = append(warns, "UPSTASH_REDIS_URL uses redis:// (no TLS). Prefer rediss:// for TLS")
		}
		if c.RedisURL == "" && c.RedisAddr != "" && (c.RedisUser == "" || c.RedisPassword == "") {
			warns = append(warns, "REDIS_ADDR provided without REDIS_USER/REDIS_PASSWORD; require auth in production")
		}
	}
	return warns
}

// RedisClient builds a client from either the full URL or the split fields.
// It returns nil, nil when Redis is not configured.
func (c Config) RedisClient() (*redis.Client, error) {
	if c.RedisURL != "" {
		opt, err := redis.ParseURL(c.RedisURL) // e.g. rediss://default:<token>@host:port
		if err != nil {
			return nil, fmt.Errorf("invalid UPSTASH_REDIS_URL: %w", err)
		}
		if opt.TLSConfig == nil && strings.HasPrefix(c.RedisURL, "rediss://") {
			opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		opt.DialTimeout = 5 * time.Second
		opt.ReadTimeout = 1 * time.Second
		opt.WriteTimeout = 1 * time.Second
		return redis.NewClient(opt), nil
	}
	if c.RedisAddr == "" {
		return nil, nil
	}
	opts := &redis.Options{
		Addr:         c.RedisAddr, // host:port (no scheme)
		Username:     c.RedisUser,
		Password:     c.RedisPassword,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	}
	if c.RedisPassword != "" {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return redis.NewClient(opts), nil
}

// PingRedis checks connectivity with a short timeout.
func PingRedis(rdb *redis.Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	_, err := rdb.Ping(ctx).Result()
	return err
}

// --- helpers ---

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return f, nil
}

func envDuration(key, def string) (time.Duration, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		s = def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}

func splitCSV(csv string) []string {
	var out []string
	for _, p := range strings.Split(csv, ",") {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
