// Package mock provides in-memory infrastructure for integration tests.
package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis returns a client bound to a shared in-process redis server.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic("failed to start test redis: " + err.Error())
		}
		redisConn = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return redisConn
}

// ClearRedis removes all keys between scenarios.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
