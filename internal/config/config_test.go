package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MrSnakeDoc/launchpad/internal/store"
)

func TestRequireEnv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		shouldSet bool
		wantPanic bool
	}{
		{
			name:      "variable set",
			key:       "TEST_VAR",
			value:     "test_value",
			shouldSet: true,
			wantPanic: false,
		},
		{
			name:      "variable not set",
			key:       "TEST_VAR_MISSING",
			shouldSet: false,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				t.Setenv(tt.key, tt.value)
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnv() should have panicked")
					}
				}()
			}

			result := requireEnv(tt.key)
			if !tt.wantPanic && result != tt.value {
				t.Errorf("requireEnv() = %v, want %v", result, tt.value)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{name: "empty", value: "", expected: nil},
		{name: "single value", value: "value1", expected: []string{"value1"}},
		{name: "multiple values", value: "value1, value2 ,value3", expected: []string{"value1", "value2", "value3"}},
		{name: "quoted and blank", value: `"a", ,'b'`, expected: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitAndTrim(tt.value)
			if len(result) != len(tt.expected) {
				t.Fatalf("splitAndTrim() = %v, want %v", result, tt.expected)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("splitAndTrim()[%d] = %v, want %v", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LAUNCHPAD_STORE", "")
	t.Setenv("LAUNCHPAD_LOG_LEVEL", "")

	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %q, want :8080", cfg.ListenPort)
	}
	if cfg.StoreBackend != store.BackendDisk {
		t.Errorf("StoreBackend = %q, want %q", cfg.StoreBackend, store.BackendDisk)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
	if cfg.RedirectEndpoint != "https://www.youtube.com/redirect" || cfg.RedirectParam != "q" {
		t.Errorf("redirect = %q ?%s=, want youtube redirect", cfg.RedirectEndpoint, cfg.RedirectParam)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %q, want empty outside the redis backend", cfg.RedisAddr)
	}
	if cfg.TrustProxy {
		t.Error("TrustProxy should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LAUNCHPAD_STORE", "SQLite")
	t.Setenv("LAUNCHPAD_SQLITE_PATH", "/tmp/x.db")
	t.Setenv("LAUNCHPAD_ALLOWED_HOSTS", "launch.local, *.example.com")
	t.Setenv("LAUNCHPAD_SAVE_TIMEOUT", "250ms")
	t.Setenv("LAUNCHPAD_RATE_LIMIT_BURST", "nope")

	cfg := Load()

	if cfg.StoreBackend != store.BackendSQLite {
		t.Errorf("StoreBackend = %q, want sqlite", cfg.StoreBackend)
	}
	if cfg.SQLitePath != "/tmp/x.db" {
		t.Errorf("SQLitePath = %q", cfg.SQLitePath)
	}
	if len(cfg.AllowedHosts) != 2 || cfg.AllowedHosts[1] != "*.example.com" {
		t.Errorf("AllowedHosts = %v", cfg.AllowedHosts)
	}
	if cfg.SaveTimeout != 250*time.Millisecond {
		t.Errorf("SaveTimeout = %v, want 250ms", cfg.SaveTimeout)
	}
	if cfg.RateLimitBurst != 30 {
		t.Errorf("RateLimitBurst = %d, want default 30 on invalid input", cfg.RateLimitBurst)
	}
}

func TestLoadPanics(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "unknown backend",
			env:  map[string]string{"LAUNCHPAD_STORE": "etcd"},
		},
		{
			name: "redis without addr",
			env:  map[string]string{"LAUNCHPAD_STORE": "redis", "LAUNCHPAD_REDIS_ADDR": ""},
		},
		{
			name: "redis without required password",
			env: map[string]string{
				"LAUNCHPAD_STORE":                   "redis",
				"LAUNCHPAD_REDIS_ADDR":              "localhost:6379",
				"LAUNCHPAD_REDIS_PASSWORD":          "",
				"LAUNCHPAD_REDIS_PASSWORD_REQUIRED": "true",
			},
		},
		{
			name: "explicit env file missing",
			env:  map[string]string{"LAUNCHPAD_ENV_FILE": "/nonexistent/launchpad.env"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Load() should have panicked")
				}
			}()
			Load()
		})
	}
}

func TestLoadRedisBackend(t *testing.T) {
	t.Setenv("LAUNCHPAD_STORE", "redis")
	t.Setenv("LAUNCHPAD_REDIS_ADDR", "localhost:6379")
	t.Setenv("LAUNCHPAD_REDIS_PASSWORD_REQUIRED", "false")

	cfg := Load()
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.RedisPrefix != "launchpad:" {
		t.Errorf("RedisPrefix = %q", cfg.RedisPrefix)
	}
}

func TestLoadEnvFile(t *testing.T) {
	const key = "LAUNCHPAD_CATALOG_FILE"
	path := filepath.Join(t.TempDir(), "launchpad.env")
	if err := os.WriteFile(path, []byte(key+"=/etc/launchpad/sites.toml\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LAUNCHPAD_ENV_FILE", path)
	t.Setenv(key, "")
	// godotenv writes with os.Setenv, outside t.Setenv bookkeeping
	t.Cleanup(func() { _ = os.Unsetenv(key) })
	if err := os.Unsetenv(key); err != nil {
		t.Fatal(err)
	}

	cfg := Load()
	if cfg.CatalogFile != "/etc/launchpad/sites.toml" {
		t.Errorf("CatalogFile = %q, want value from env file", cfg.CatalogFile)
	}
}

func TestRedacted(t *testing.T) {
	cfg := Config{RedisUser: "default", RedisPassword: "hunter2", RedisAddr: "r:6379"}
	red := cfg.Redacted()

	if red.RedisPassword == "hunter2" || red.RedisUser == "default" {
		t.Errorf("Redacted() leaked credentials: %+v", red)
	}
	if red.RedisAddr != "r:6379" {
		t.Errorf("Redacted() changed RedisAddr to %q", red.RedisAddr)
	}
	if cfg.RedisPassword != "hunter2" {
		t.Error("Redacted() must not modify the receiver")
	}
}
