package utils

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// Shared redis client for the token blacklist, calendar cache and push rate
// limits. Stays nil when redis is unreachable; callers degrade gracefully.
var redisClient *redis.Client

func SetRedis(client *redis.Client) {
	redisClient = client
}

func GetRedis() *redis.Client {
	return redisClient
}

var ctx = context.Background()

func RedisCtx() context.Context {
	return ctx
}
