package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Push notification limits: 1 per minute, 20 per day per user
func CanSendPush(rdb *redis.Client, userID uint) (bool, string) {
	ctx := context.Background()
	minuteKey := fmt.Sprintf("push_minute_%d", userID)
	dayKey := fmt.Sprintf("push_day_%d", userID)
	if rdb.Exists(ctx, minuteKey).Val() > 0 {
		return false, "push notifications limited to 1 per minute"
	}
	cnt, _ := rdb.Get(ctx, dayKey).Int()
	if cnt >= 20 {
		return false, "push notifications limited to 20 per day"
	}
	return true, ""
}

func MarkPushSent(rdb *redis.Client, userID uint) {
	ctx := context.Background()
	minuteKey := fmt.Sprintf("push_minute_%d", userID)
	dayKey := fmt.Sprintf("push_day_%d", userID)
	rdb.Set(ctx, minuteKey, 1, 60*time.Second)
	rdb.Incr(ctx, dayKey)
	rdb.Expire(ctx, dayKey, 24*time.Hour)
}
