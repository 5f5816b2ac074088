// Package config loads application configuration from command-line flags,
// environment variables, a .env file and defaults, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	Server    ServerConfig
	Storage   StorageConfig
	Render    RenderConfig
	RateLimit RateLimitConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string        // default: 8080
	ReadTimeout    time.Duration // default: 15s
	WriteTimeout   time.Duration // default: 30s
	IdleTimeout    time.Duration // default: 60s
	AllowedOrigins []string      // CORS origins (default: *)
}

// StorageConfig holds persistence configuration.
type StorageConfig struct {
	// DataPath is the Badger directory for saved flags and the render cache.
	DataPath string
}

// RenderConfig bounds image requests.
type RenderConfig struct {
	DefaultWidth  int
	DefaultHeight int
	MaxWidth      int
	MaxHeight     int
	// CacheTTL is how long rendered PNGs are kept. Zero disables the cache.
	CacheTTL time.Duration
}

// RateLimitConfig limits image rendering per client IP.
type RateLimitConfig struct {
	RenderPerMinute int // zero disables limiting
	Burst           int
}

// Load parses args (without the program name) and builds the configuration.
func Load(args []string) (*Config, error) {
	fset := flag.NewFlagSet("nameflags", flag.ContinueOnError)

	fset.String("env", "", "Environment (development, staging, production)")
	fset.String("log-level", "", "Log level (debug, info, warn, error)")
	fset.String("port", "", "Server port (default: 8080)")
	fset.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	fset.String("write-timeout", "", "HTTP write timeout (default: 30s)")
	fset.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")
	fset.String("allowed-origins", "", "Comma-separated CORS origins (default: *)")
	fset.String("data-path", "", "Badger data directory (default: ~/.nameflags/data)")
	fset.String("default-width", "", "Default image width (default: 600)")
	fset.String("default-height", "", "Default image height (default: 400)")
	fset.String("max-width", "", "Maximum image width (default: 4096)")
	fset.String("max-height", "", "Maximum image height (default: 4096)")
	fset.String("render-cache-ttl", "", "Render cache lifetime, 0 disables (default: 1h)")
	fset.String("render-rate", "", "Image renders per minute per client, 0 disables (default: 60)")
	fset.String("render-burst", "", "Image render burst per client (default: 10)")
	envFile := fset.String("env-file", ".env", "Path to .env file")

	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	l := &loader{flags: make(map[string]string)}
	fset.Visit(func(f *flag.Flag) {
		l.flags[f.Name] = f.Value.String()
	})

	dotenv, err := godotenv.Read(*envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", *envFile, err)
	}
	l.dotenv = dotenv

	cfg := &Config{
		App: AppConfig{
			Environment: l.str("env", "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: l.str("log-level", "LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port:           l.str("port", "SERVER_PORT", "8080"),
			ReadTimeout:    l.duration("read-timeout", "SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   l.duration("write-timeout", "SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:    l.duration("idle-timeout", "SERVER_IDLE_TIMEOUT", 60*time.Second),
			AllowedOrigins: l.list("allowed-origins", "CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Storage: StorageConfig{
			DataPath: l.str("data-path", "DATA_PATH", ""),
		},
		Render: RenderConfig{
			DefaultWidth:  l.int("default-width", "RENDER_DEFAULT_WIDTH", 600),
			DefaultHeight: l.int("default-height", "RENDER_DEFAULT_HEIGHT", 400),
			MaxWidth:      l.int("max-width", "RENDER_MAX_WIDTH", 4096),
			MaxHeight:     l.int("max-height", "RENDER_MAX_HEIGHT", 4096),
			CacheTTL:      l.duration("render-cache-ttl", "RENDER_CACHE_TTL", time.Hour),
		},
		RateLimit: RateLimitConfig{
			RenderPerMinute: l.int("render-rate", "RENDER_RATE_PER_MINUTE", 60),
			Burst:           l.int("render-burst", "RENDER_RATE_BURST", 10),
		},
	}
	if l.err != nil {
		return nil, l.err
	}

	if cfg.Storage.DataPath, err = expandPath(cfg.Storage.DataPath); err != nil {
		return nil, fmt.Errorf("invalid data path: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks enums and ranges.
func (c *Config) Validate() error {
	switch c.App.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("invalid environment: %q (must be development, staging, or production)", c.App.Environment)
	}

	switch strings.ToLower(c.Logger.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Server.Port == "" {
		return errors.New("server port cannot be empty")
	}
	if c.Storage.DataPath == "" {
		return errors.New("data path cannot be empty")
	}

	r := c.Render
	if r.MaxWidth <= 0 || r.MaxHeight <= 0 {
		return fmt.Errorf("max image size must be positive, got %dx%d", r.MaxWidth, r.MaxHeight)
	}
	if r.DefaultWidth <= 0 || r.DefaultWidth > r.MaxWidth || r.DefaultHeight <= 0 || r.DefaultHeight > r.MaxHeight {
		return fmt.Errorf("default image size %dx%d must be positive and within %dx%d",
			r.DefaultWidth, r.DefaultHeight, r.MaxWidth, r.MaxHeight)
	}
	if r.CacheTTL < 0 {
		return errors.New("render cache ttl cannot be negative")
	}

	if c.RateLimit.RenderPerMinute < 0 {
		return errors.New("render rate cannot be negative")
	}
	if c.RateLimit.RenderPerMinute > 0 && c.RateLimit.Burst <= 0 {
		return errors.New("render burst must be positive when rate limiting is enabled")
	}

	return nil
}

// expandPath expands ~ and makes the path absolute. Empty means the default
// ~/.nameflags/data.
func expandPath(path string) (string, error) {
	if path == "" {
		path = "~/.nameflags/data"
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, strings.TrimPrefix(path[1:], "/"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return abs, nil
}

// loader resolves one setting at a time and remembers the first parse error.
type loader struct {
	flags  map[string]string // only flags set on the command line
	dotenv map[string]string
	err    error
}

// str returns the first non-empty value from flag, env var, .env file, or default.
func (l *loader) str(flagName, envKey, def string) string {
	if v := l.flags[flagName]; v != "" {
		return v
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if v := l.dotenv[envKey]; v != "" {
		return v
	}
	return def
}

func (l *loader) int(flagName, envKey string, def int) int {
	s := l.str(flagName, envKey, "")
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		l.fail(fmt.Errorf("invalid %s %q: %w", envKey, s, err))
		return def
	}
	return v
}

func (l *loader) duration(flagName, envKey string, def time.Duration) time.Duration {
	s := l.str(flagName, envKey, "")
	if s == "" {
		return def
	}
	v, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		l.fail(fmt.Errorf("invalid %s %q: %w", envKey, s, err))
		return def
	}
	return v
}

func (l *loader) list(flagName, envKey string, def []string) []string {
	s := l.str(flagName, envKey, "")
	if s == "" {
		return def
	}
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func (l *loader) fail(err error) {
	if l.err == nil {
		l.err = err
	}
}
