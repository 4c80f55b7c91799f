package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config se lee una sola vez en main, después de cargar .env.
type Config struct {
	Port    string
	AppEnv  string
	AppName string

	LogLevel  string
	LogFormat string

	// DBDSN (Postgres) gana sobre SQLitePath; sin ninguno se usa memoria.
	DBDSN      string
	SQLitePath string

	Timezone string

	JWTSecret string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RateLimitEnabled bool
	RateLimitMax     int
	RateLimitWindow  time.Duration

	RabbitMQURL   string
	PaymentsQueue string
}

func Load() Config {
	return Config{
		Port:    envStr("PORT", "8080"),
		AppEnv:  envStr("APP_ENV", "dev"),
		AppName: envStr("APP_NAME", "guarderia-felina"),

		LogLevel:  envStr("LOG_LEVEL", "info"),
		LogFormat: envStr("LOG_FORMAT", "text"),

		DBDSN:      envStr("DB_DSN", ""),
		SQLitePath: envStr("SQLITE_PATH", ""),

		Timezone: envStr("TIMEZONE", "America/Bogota"),

		JWTSecret: envStr("JWT_SECRET", ""),

		RedisAddr:     envStr("REDIS_ADDR", ""),
		RedisPassword: envStr("REDIS_PASSWORD", ""),
		RedisDB:       envInt("REDIS_DB", 0),

		RateLimitEnabled: envBool("RATE_LIMIT_ENABLED", true),
		RateLimitMax:     envInt("RATE_LIMIT_MAX", 60),
		RateLimitWindow:  envDur("RATE_LIMIT_WINDOW", time.Minute),

		RabbitMQURL:   envStr("RABBITMQ_URL", ""),
		PaymentsQueue: envStr("PAYMENTS_QUEUE", "guarderia.pagos"),
	}
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// Location resuelve TIMEZONE; si no existe en el sistema cae a time.Local.
func (c Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local, err
	}
	return loc, nil
}

func envStr(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(k)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(k))); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	if dur, err := time.ParseDuration(strings.TrimSpace(os.Getenv(k))); err == nil {
		return dur
	}
	return d
}
