package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"guarderia-felina/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

type RateLimitConfig struct {
	Enabled bool
	Max     int
	Window  time.Duration
	Prefix  string
}

// RateLimit es una ventana fija por usuario (o IP si no hay claims) en Redis.
// Sin cliente, deshabilitado o con Redis caído deja pasar el request.
func RateLimit(cfg RateLimitConfig, rdb *redis.Client, log logger.Logger) func(http.Handler) http.Handler {
	if !cfg.Enabled || rdb == nil || cfg.Max <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "rl"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()
			slot := now.UnixNano() / int64(cfg.Window)
			key := fmt.Sprintf("%s:%s:%d", cfg.Prefix, rateKey(r), slot)

			ctx := r.Context()
			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				log.Warn("rate limit redis error", map[string]any{"key": key, "error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}
			if n == 1 {
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}

			remaining := int64(cfg.Max) - n
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Max))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if n > int64(cfg.Max) {
				reset := time.Unix(0, (slot+1)*int64(cfg.Window))
				secs := int(reset.Sub(now).Seconds()) + 1
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func rateKey(r *http.Request) string {
	if c, ok := GetClaims(r.Context()); ok && strings.TrimSpace(c.UserID) != "" {
		return "user:" + c.UserID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		host = r.RemoteAddr
	}
	if host == "" {
		host = "unknown"
	}
	return "ip:" + host
}
