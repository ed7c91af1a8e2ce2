package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CountMiss キャッシュ未設定を示す番兵値
const CountMiss = int64(-1)

const unreadTTL = 24 * time.Hour

// UnreadStorage 未読通知数の Redis キャッシュ。
// DB の notifications テーブルが正で、ここはダッシュボード表示用の写し。
type UnreadStorage struct {
	redis *redis.Client
}

func NewUnreadStorage(redis *redis.Client) *UnreadStorage {
	return &UnreadStorage{redis: redis}
}

func (u *UnreadStorage) key(userID uint64) string {
	return fmt.Sprintf("notify:unread:%d", userID)
}

// Get 未読数を返す。キャッシュが無ければ CountMiss。
func (u *UnreadStorage) Get(ctx context.Context, userID uint64) int64 {
	val, err := u.redis.Get(ctx, u.key(userID)).Int64()
	if err != nil {
		return CountMiss
	}
	return val
}

// Set DB 集計値での上書き
func (u *UnreadStorage) Set(ctx context.Context, userID uint64, count int64) error {
	return u.redis.Set(ctx, u.key(userID), count, unreadTTL).Err()
}

// Incr 通知作成時の加算
func (u *UnreadStorage) Incr(ctx context.Context, userID uint64) {
	if u.Get(ctx, userID) == CountMiss {
		return // 未キャッシュなら次回 Get 時に DB から埋める
	}
	u.redis.Incr(ctx, u.key(userID))
}

// Reset 既読化などでカウントが変わったときはキャッシュを破棄する
func (u *UnreadStorage) Reset(ctx context.Context, userID uint64) {
	u.redis.Del(ctx, u.key(userID))
}
