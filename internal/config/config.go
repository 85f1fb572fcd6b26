package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MrSnakeDoc/launchpad/internal/store"
	"github.com/joho/godotenv"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request timeout for non-streaming routes

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Persistence
	StoreBackend string        // "disk" | "redis" | "sqlite" | "memory"
	DataDir      string        // diskv base directory (disk backend)
	SQLitePath   string        // database file (sqlite backend)
	SaveTimeout  time.Duration // bound on each collection write

	// Built-in sites and navigation
	CatalogFile      string // optional .yaml/.yml/.toml file, empty = embedded default
	RedirectEndpoint string // ex: https://www.youtube.com/redirect
	RedirectParam    string // query parameter carrying the target url

	// Redis (redis backend only)
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisPrefix           string        // key prefix, ex: "launchpad:"
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict access to specific IP (e.g. "1.2.3.4, 10.0.0.0/8")
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
	CORSOrigins  []string // optional, origins allowed to call the API from a browser ("*" = any)

	RateLimitBurst  int // mutation requests allowed in a burst per client IP
	RateLimitPerMin int // refill rate per client IP
}

func Load() *Config {
	loadDotEnv()

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("LAUNCHPAD_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("LAUNCHPAD_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("LAUNCHPAD_REQUEST_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("LAUNCHPAD_LOG_LEVEL", "info"),
		PrettyLog: mustBool("LAUNCHPAD_PRETTY_LOG", true),

		// Persistence
		StoreBackend: mustBackend("LAUNCHPAD_STORE", store.BackendDisk),
		DataDir:      getenv("LAUNCHPAD_DATA_DIR", "./data"),
		SQLitePath:   getenv("LAUNCHPAD_SQLITE_PATH", "./data/launchpad.db"),
		SaveTimeout:  mustDuration("LAUNCHPAD_SAVE_TIMEOUT", 5*time.Second),

		// Catalog and navigation
		CatalogFile:      getenv("LAUNCHPAD_CATALOG_FILE", ""),
		RedirectEndpoint: getenv("LAUNCHPAD_REDIRECT_ENDPOINT", "https://www.youtube.com/redirect"),
		RedirectParam:    getenv("LAUNCHPAD_REDIRECT_PARAM", "q"),

		// Redis settings
		RedisUser:             getenv("LAUNCHPAD_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("LAUNCHPAD_REDIS_PASSWORD_REQUIRED", true),
		RedisPassword:         getenv("LAUNCHPAD_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("LAUNCHPAD_REDIS_DB", 0),
		RedisPrefix:           getenv("LAUNCHPAD_REDIS_PREFIX", "launchpad:"),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("LAUNCHPAD_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("LAUNCHPAD_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("LAUNCHPAD_TRUST_PROXY", false),
		CORSOrigins:  splitAndTrim(getenv("LAUNCHPAD_CORS_ORIGINS", "")),

		RateLimitBurst:  getenvInt("LAUNCHPAD_RATE_LIMIT_BURST", 30),
		RateLimitPerMin: getenvInt("LAUNCHPAD_RATE_LIMIT_PER_MIN", 120),
	}

	if cfg.StoreBackend == store.BackendRedis {
		cfg.RedisAddr = requireEnv("LAUNCHPAD_REDIS_ADDR")

		// Validate Redis password configuration
		if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
			panic("❌ FATAL: LAUNCHPAD_REDIS_PASSWORD is required when LAUNCHPAD_REDIS_PASSWORD_REQUIRED=true")
		}
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", cfg.Redacted())
	}

	return cfg
}

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	if c.RedisPassword != "" {
		c.RedisPassword = "***REDACTED***"
	}
	if c.RedisUser != "" {
		c.RedisUser = "***REDACTED***"
	}
	return c
}

// loadDotEnv seeds the environment from LAUNCHPAD_ENV_FILE (default .env).
// Variables already set win. A missing default file is fine; a missing
// explicit one is not.
func loadDotEnv() {
	path := os.Getenv("LAUNCHPAD_ENV_FILE")
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return
		}
		panic(fmt.Sprintf("❌ FATAL: cannot load env file %s: %v", path, err))
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func mustBackend(key, def string) string {
	b, err := store.ParseBackend(getenv(key, def))
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid value for %s: %v", key, err))
	}
	return b
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
