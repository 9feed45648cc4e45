package dao

import (
	"context"
	"errors"

	"seecooker/models"

	"gorm.io/gorm"
)

type PostLikeDAO struct {
	Repo[models.PostLike]
}

func NewPostLikeDAO(db *gorm.DB) *PostLikeDAO {
	return &PostLikeDAO{Repo: NewRepo[models.PostLike](db)}
}

// SetStatus 设置点赞状态，如果不存在则创建
func (d *PostLikeDAO) SetStatus(ctx context.Context, postID uint64, userID uint64, status uint8) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.PostLike
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).Limit(1).Find(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = nil
		}
		if err != nil {
			return err
		}
		if item.ID == 0 { // create
			item = models.PostLike{PostID: postID, UserID: userID, Status: status}
			return tx.Create(&item).Error
		}
		// update
		return tx.Model(&models.PostLike{}).Where("id = ?", item.ID).Update("status", status).Error
	})
}

// IsLiked 是否点赞（status=1）
func (d *PostLikeDAO) IsLiked(ctx context.Context, postID uint64, userID uint64) (bool, error) {
	return d.IsExist(ctx, "post_id = ? AND user_id = ? AND status = 1", postID, userID)
}
