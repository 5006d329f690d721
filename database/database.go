package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wxwriter/config"
	"wxwriter/model"
)

// Open connects to the configured relational backend and migrates the schema.
// 驱动在启动时选择一次，服务层只见 *gorm.DB。
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Database.Driver, err)
	}

	// 自动迁移
	if err := db.AutoMigrate(
		&model.User{},
		&model.HotTopic{},
		&model.Article{},
		&model.GenerationLog{},
		&model.SyncLog{},
		&model.ArticleHistory{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// OpenRedis connects to redis. Redis only backs the rate limiter and the
// trending cache, so a failed ping is logged and tolerated.
func OpenRedis(cfg *config.Config) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err)
	}
	return rdb
}
