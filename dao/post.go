package dao

import (
	"context"

	"seecooker/models"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// FindAllOrderByCreateTimeDesc 查询全部帖子，最新的在前
func (d *PostDAO) FindAllOrderByCreateTimeDesc(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// IncrLikeCount 调整帖子点赞数
func (d *PostDAO) IncrLikeCount(ctx context.Context, postID uint64, delta int) error {
	return d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", postID).
		Update("like_count", gorm.Expr("like_count + ?", delta)).Error
}

// DeleteById 删除帖子
func (d *PostDAO) DeleteById(ctx context.Context, postID uint64) error {
	return d.Db.WithContext(ctx).
		Where("id = ?", postID).
		Delete(&models.Post{}).Error
}
