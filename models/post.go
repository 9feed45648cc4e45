package models

import (
	"time"

	"gorm.io/datatypes"
)

// Post 社区帖子表
type Post struct {
	ID        uint64                      `gorm:"column:id;primary_key" json:"id"`
	AuthorID  uint64                      `gorm:"column:author_id;not null;index:idx_posts_author_id" json:"author_id"`
	Title     string                      `gorm:"column:title;type:varchar(100);not null" json:"title"`
	Content   string                      `gorm:"column:content;type:text" json:"content"`
	Images    datatypes.JSONSlice[string] `gorm:"column:images" json:"images"`
	LikeCount int64                       `gorm:"column:like_count;not null;default:0" json:"like_count"`
	CreatedAt time.Time                   `gorm:"column:created_at;index:idx_posts_created_at" json:"created_at"`
	UpdatedAt time.Time                   `gorm:"column:updated_at" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}

// PostLike 帖子点赞记录
// 唯一键: post_id + user_id
// status: 1=已点赞, 0=已取消
type PostLike struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	PostID    uint64    `gorm:"column:post_id;not null;index:uk_post_user,priority:1" json:"post_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:uk_post_user,priority:2" json:"user_id"`
	Status    uint8     `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (PostLike) TableName() string { return "post_likes" }

// Comment 帖子评论表
type Comment struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	PostID    uint64    `gorm:"column:post_id;not null;index:idx_post_id" json:"post_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
