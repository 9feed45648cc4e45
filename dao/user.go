package dao

import (
	"context"

	"seecooker/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByUsername 用户名查询
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

// IsUsernameExist 判断用户名是否存在
func (u *Users) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := u.Repo.IsExist(ctx, "username = ?", username)
	return exist
}

// AppendPostRecipe 将菜谱ID追加到用户的发布菜谱列表
func (u *Users) AppendPostRecipe(ctx context.Context, userID uint64, recipeID uint64) error {
	return u.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		user.PostRecipes = append(user.PostRecipes, recipeID)
		return tx.Model(&models.User{}).Where("id = ?", userID).
			Update("post_recipes", user.PostRecipes).Error
	})
}

// AppendPost 将帖子ID追加到用户的发布帖子列表
func (u *Users) AppendPost(ctx context.Context, userID uint64, postID uint64) error {
	return u.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		user.Posts = append(user.Posts, postID)
		return tx.Model(&models.User{}).Where("id = ?", userID).
			Update("posts", user.Posts).Error
	})
}

// AppendFavoriteRecipe 将菜谱ID追加到用户的持久化收藏列表
// 收藏状态以该列表为准，Redis 中的记录只是它的缓存层
func (u *Users) AppendFavoriteRecipe(ctx context.Context, userID uint64, recipeID uint64) error {
	return u.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		if user.IsFavorite(recipeID) {
			return nil
		}
		user.FavoriteRecipes = append(user.FavoriteRecipes, recipeID)
		return tx.Model(&models.User{}).Where("id = ?", userID).
			Update("favorite_recipes", user.FavoriteRecipes).Error
	})
}

func (u *Users) Update(ctx context.Context, userID uint64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return u.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error
}
