package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MrSnakeDoc/launchpad/internal/config"
	"github.com/MrSnakeDoc/launchpad/internal/logger"
	"github.com/MrSnakeDoc/launchpad/internal/store"
	"github.com/MrSnakeDoc/launchpad/internal/store/disk"
	"github.com/MrSnakeDoc/launchpad/internal/store/memory"
	redisstore "github.com/MrSnakeDoc/launchpad/internal/store/redis"
	"github.com/MrSnakeDoc/launchpad/internal/store/sqlite"
)

// openStore builds the configured persistence backend.
func openStore(ctx context.Context, cfg *config.Config, log logger.Logger) (store.BlobStore, error) {
	switch cfg.StoreBackend {
	case store.BackendDisk:
		log.Info("using disk store", logger.String("dir", cfg.DataDir))
		return disk.NewStore(cfg.DataDir)

	case store.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
		log.Info("using sqlite store", logger.String("path", cfg.SQLitePath))
		return sqlite.NewStore(cfg.SQLitePath, log)

	case store.BackendRedis:
		client, err := redisstore.Connect(ctx, redisstore.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, log)
		if err != nil {
			return nil, err
		}
		return redisstore.NewStore(client, cfg.RedisPrefix), nil

	case store.BackendMemory:
		log.Warn("using memory store, changes are lost on restart")
		return memory.NewStore(), nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
