package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config selects and configures a storage backend.
type Config struct {
	Driver    string // memory, sqlite, postgres or redis
	DSN       string // sqlite file or postgres DSN
	RedisAddr string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the configured backend. The returned closer releases its connections.
func Open(ctx context.Context, cfg Config) (Store, io.Closer, error) {
	switch cfg.Driver {
	case "", "memory":
		return NewMemoryStore(), nopCloser{}, nil
	case "sqlite", "postgres":
		dialector := sqlite.Open(cfg.DSN)
		if cfg.Driver == "postgres" {
			dialector = postgres.Open(cfg.DSN)
		}
		db, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get database handle: %w", err)
		}
		store, err := NewGORMStore(db)
		if err != nil {
			sqlDB.Close()
			return nil, nil, err
		}
		return store, sqlDB, nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		return NewRedisStore(client), client, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
