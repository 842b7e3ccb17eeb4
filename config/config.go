package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// DefaultAllowOrigins is used for CORS when ALLOW_ORIGINS is empty (dev setup).
const DefaultAllowOrigins = "http://127.0.0.1:5500,http://localhost:5500,http://localhost:3000"

const defaultJWTSecret = "idcard-dev-secret"

type Sheets struct {
	APIKey    string
	SheetID   string
	SheetName string
	// Workbook is a local .xlsx path read instead of the Sheets API when set.
	Workbook string
}

type Config struct {
	Port         int
	AllowOrigins string
	Sheets       Sheets
	JWTSecret    string
	SessionTTL   time.Duration
	LogLevel     zapcore.Level
}

// Load reads .env (if present) and then the process environment.
// Every invalid value is reported in a single error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := Config{
		Port:         8080,
		AllowOrigins: DefaultAllowOrigins,
		Sheets: Sheets{
			APIKey:    env("GOOGLE_SHEETS_API_KEY"),
			SheetID:   env("GOOGLE_SHEET_ID"),
			SheetName: "Employees",
			Workbook:  env("SHEETS_WORKBOOK"),
		},
		JWTSecret:  defaultJWTSecret,
		SessionTTL: 24 * time.Hour,
		LogLevel:   zapcore.InfoLevel,
	}

	invalid := make([]string, 0, 3)

	if v := env("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			invalid = append(invalid, "PORT")
		} else {
			cfg.Port = port
		}
	}

	if v := env("ALLOW_ORIGINS"); v != "" {
		cfg.AllowOrigins = v
	}
	if v := env("GOOGLE_SHEET_NAME"); v != "" {
		cfg.Sheets.SheetName = v
	}
	if v := env("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}

	if v := env("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			invalid = append(invalid, "SESSION_TTL")
		} else {
			cfg.SessionTTL = ttl
		}
	}

	if v := env("LOG_LEVEL"); v != "" {
		level, err := zapcore.ParseLevel(v)
		if err != nil {
			invalid = append(invalid, "LOG_LEVEL")
		} else {
			cfg.LogLevel = level
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("config: invalid environment values: %s", strings.Join(invalid, ", "))
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
