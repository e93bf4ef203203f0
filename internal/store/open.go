package store

import (
	"context"

	"github.com/BruksfildServices01/barberflow/internal/config"
)

// Open picks the backend from config: redis when an address is set, the
// local sqlite file otherwise.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg.RedisAddr != "" {
		return OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, "barberflow:")
	}
	return OpenSQLite(cfg.StorePath)
}
