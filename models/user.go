package models

import (
	"time"

	"gorm.io/datatypes"
)

// User 用户表
// favorite_recipes 为收藏菜谱ID列表，是收藏状态的持久化依据；
// Redis 中的收藏记录是其缓存加速层
type User struct {
	ID              uint64                      `gorm:"column:id;primary_key" json:"id"`
	Username        string                      `gorm:"column:username;type:varchar(64);not null;uniqueIndex:uk_username" json:"username"`
	Password        string                      `gorm:"column:password;type:varchar(128);not null" json:"-"`
	Avatar          string                      `gorm:"column:avatar;type:varchar(255);not null;default:''" json:"avatar"`
	Signature       string                      `gorm:"column:signature;type:varchar(255);not null;default:''" json:"signature"`
	Posts           datatypes.JSONSlice[uint64] `gorm:"column:posts" json:"posts"`
	PostRecipes     datatypes.JSONSlice[uint64] `gorm:"column:post_recipes" json:"post_recipes"`
	FavoriteRecipes datatypes.JSONSlice[uint64] `gorm:"column:favorite_recipes" json:"favorite_recipes"`
	CreatedAt       time.Time                   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time                   `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsFavorite 判断菜谱是否在持久化收藏列表中
func (u *User) IsFavorite(recipeID uint64) bool {
	for _, id := range u.FavoriteRecipes {
		if id == recipeID {
			return true
		}
	}
	return false
}
