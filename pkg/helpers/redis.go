package helpers

import (
	"strconv"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes a redis client.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// SessionKey is the redis hash key holding a user's login session.
func SessionKey(userID int64) string {
	return "user:session:" + strconv.FormatInt(userID, 10)
}
