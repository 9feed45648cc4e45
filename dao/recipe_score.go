package dao

import (
	"context"

	"seecooker/models"

	"gorm.io/gorm"
)

type RecipeScoreDAO struct {
	Repo[models.RecipeScore]
}

func NewRecipeScoreDAO(db *gorm.DB) *RecipeScoreDAO {
	return &RecipeScoreDAO{Repo: NewRepo[models.RecipeScore](db)}
}

// IsScored 判断用户是否已对菜谱评分
func (d *RecipeScoreDAO) IsScored(ctx context.Context, userID uint64, recipeID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND recipe_id = ?", userID, recipeID)
}

// FindByRecipeID 查询菜谱的全部评分记录
func (d *RecipeScoreDAO) FindByRecipeID(ctx context.Context, recipeID uint64) ([]*models.RecipeScore, error) {
	var scores []*models.RecipeScore
	err := d.Db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Find(&scores).Error
	return scores, err
}
