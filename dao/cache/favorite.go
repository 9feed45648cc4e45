package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// FavoriteStorage 菜谱收藏状态的 Redis 缓存层
// 结构: key--recipe:favorite:<userID>, field--recipeID, value--"1"/"0"
// 无记录表示未知，需回查数据库；"0" 是权威的否定记录，可直接短路
type FavoriteStorage struct {
	redis *redis.Client
}

func NewFavoriteStorage(redis *redis.Client) *FavoriteStorage {
	return &FavoriteStorage{redis: redis}
}

// Get 读取收藏记录
// ok 为 false 表示缓存中无该记录
func (c *FavoriteStorage) Get(ctx context.Context, userID uint64, recipeID uint64) (val bool, ok bool, err error) {
	result, err := c.redis.HGet(ctx, c.key(userID), c.field(recipeID)).Result()
	if err == redis.Nil {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return result == "1", true, nil
}

// Set 写入收藏记录
func (c *FavoriteStorage) Set(ctx context.Context, userID uint64, recipeID uint64, favorite bool) error {
	value := "0"
	if favorite {
		value = "1"
	}
	return c.redis.HSet(ctx, c.key(userID), c.field(recipeID), value).Err()
}

func (c *FavoriteStorage) key(userID uint64) string {
	return fmt.Sprintf("recipe:favorite:%d", userID)
}

func (c *FavoriteStorage) field(recipeID uint64) string {
	return strconv.FormatUint(recipeID, 10)
}
