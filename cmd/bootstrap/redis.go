package bootstrap

import (
	"context"

	"donorhub/internal/infra/lock"
	"donorhub/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		NewLocker,
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, err := lock.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func NewLocker(client *redis.Client, cfg config.Config) lock.Locker {
	return lock.NewRedisLocker(client, cfg.Redis.LockTTL)
}
