package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	LogLevel        string
	SessionTTL      time.Duration
	JanitorInterval time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
	MaxUploadBytes  int64
}

// LoadDotEnv seeds the environment from files such as ".env". Variables
// already set win over file values, and missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:            getEnv("INTAKE_ADDR", ":8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		SessionTTL:      30 * time.Minute,
		JanitorInterval: time.Minute,
		ShutdownTimeout: 10 * time.Second,
		AllowedOrigins:  []string{"http://localhost:3000"},
		MaxUploadBytes:  10 << 20,
	}

	var err error
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", cfg.SessionTTL); err != nil {
		return Server{}, err
	}
	if cfg.JanitorInterval, err = durationEnv("SESSION_JANITOR_INTERVAL", cfg.JanitorInterval); err != nil {
		return Server{}, err
	}
	if cfg.ShutdownTimeout, err = durationEnv("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return Server{}, err
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Server{}, fmt.Errorf("MAX_UPLOAD_BYTES: invalid size %q", v)
		}
		cfg.MaxUploadBytes = n
	}
	if cfg.JanitorInterval <= 0 || cfg.SessionTTL <= 0 {
		return Server{}, errors.New("SESSION_TTL and SESSION_JANITOR_INTERVAL must be positive")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
