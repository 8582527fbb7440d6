// Package cache opens the redis client used as read cache
package cache

import (
	"context"
	"fmt"
	"github.com/go-redis/redis/v8"
	"time"
)

// Open connects and pings redis
func Open(addr, user, pass string, pingTimeout time.Duration) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: user,
		Password: pass,
	})

	rdsCtx, rdsCancel := context.WithTimeout(context.Background(), pingTimeout)
	defer rdsCancel()
	if err := rdb.Ping(rdsCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}
	return rdb, nil
}
