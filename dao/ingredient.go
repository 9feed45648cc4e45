package dao

import (
	"context"

	"seecooker/models"

	"gorm.io/gorm"
)

type IngredientDAO struct {
	Repo[models.Ingredient]
}

func NewIngredientDAO(db *gorm.DB) *IngredientDAO {
	return &IngredientDAO{Repo: NewRepo[models.Ingredient](db)}
}

type IngredientAmountDAO struct {
	Repo[models.IngredientAmount]
}

func NewIngredientAmountDAO(db *gorm.DB) *IngredientAmountDAO {
	return &IngredientAmountDAO{Repo: NewRepo[models.IngredientAmount](db)}
}

// FindByRecipeID 查询菜谱的配料用量记录，按插入顺序返回
func (d *IngredientAmountDAO) FindByRecipeID(ctx context.Context, recipeID uint64) ([]*models.IngredientAmount, error) {
	var items []*models.IngredientAmount
	err := d.Db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}
