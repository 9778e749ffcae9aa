package redis

import (
	"github.com/redis/go-redis/v9"

	"github.com/kshiteeshhh/qkart-backend/pkg/global"
)

// RedisClient builds a client from the environment. Construct it once at
// startup and share it; the client pools connections internally.
func RedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     global.GetEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
		Password: global.GetEnvOrDefault("REDIS_PASSWORD", ""),
		DB:       0,
		Protocol: 2,
	})
}
