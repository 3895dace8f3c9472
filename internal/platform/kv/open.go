package kv

import (
	"context"
	"fmt"

	"pushpal/internal/platform/clock"
	"pushpal/internal/platform/config"
	apperrors "pushpal/internal/platform/errors"
)

// Open returns the backend selected by cfg.Store.Backend.
func Open(ctx context.Context, cfg config.Config, clk clock.Clock) (Store, error) {
	switch cfg.Store.Backend {
	case config.BackendSQLite, "":
		return NewSQLiteStore(cfg.DBPath, clk)
	case config.BackendFile:
		return NewFileStore(cfg.Store.FilePath), nil
	case config.BackendRedis:
		r := cfg.Store.Redis
		return NewRedisStore(ctx, r.Addr, r.Password, r.DB, r.Key)
	case config.BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedBackend, cfg.Store.Backend)
	}
}
