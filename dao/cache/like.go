package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// LikeStorage 帖子点赞的 Redis 集合缓存层
// 结构: key--post:like:<postID>, member--userID
// 持久化点赞记录是权威数据，集合只做读加速
type LikeStorage struct {
	redis *redis.Client
}

func NewLikeStorage(redis *redis.Client) *LikeStorage {
	return &LikeStorage{redis: redis}
}

// IsMember 用户是否在点赞集合中
func (c *LikeStorage) IsMember(ctx context.Context, postID uint64, userID uint64) (bool, error) {
	return c.redis.SIsMember(ctx, c.key(postID), c.member(userID)).Result()
}

// Add 加入点赞集合
func (c *LikeStorage) Add(ctx context.Context, postID uint64, userID uint64) error {
	return c.redis.SAdd(ctx, c.key(postID), c.member(userID)).Err()
}

// Remove 移出点赞集合
func (c *LikeStorage) Remove(ctx context.Context, postID uint64, userID uint64) error {
	return c.redis.SRem(ctx, c.key(postID), c.member(userID)).Err()
}

func (c *LikeStorage) key(postID uint64) string {
	return fmt.Sprintf("post:like:%d", postID)
}

func (c *LikeStorage) member(userID uint64) string {
	return strconv.FormatUint(userID, 10)
}
