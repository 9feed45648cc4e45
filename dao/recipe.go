package dao

import (
	"context"
	"strings"

	"seecooker/models"

	"gorm.io/gorm"
)

type RecipeDAO struct {
	Repo[models.Recipe]
}

func NewRecipeDAO(db *gorm.DB) *RecipeDAO {
	return &RecipeDAO{Repo: NewRepo[models.Recipe](db)}
}

// FindAllOrderByCreateTime 查询全部菜谱，按创建时间升序
func (d *RecipeDAO) FindAllOrderByCreateTime(ctx context.Context) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	err := d.Db.WithContext(ctx).
		Order("created_at ASC").
		Find(&recipes).Error
	return recipes, err
}

// FindByNameLike 按名称模糊查询，query 中每个字符之间插入通配符，
// 因此非连续字符也能命中（如 "铁鹅" 命中 "铁锅炖大鹅"）
func (d *RecipeDAO) FindByNameLike(ctx context.Context, query string) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	err := d.Db.WithContext(ctx).
		Where("name LIKE ?", nameLikePattern(query)).
		Order("created_at ASC").
		Find(&recipes).Error
	return recipes, err
}

// UpdateScore 更新菜谱均分
func (d *RecipeDAO) UpdateScore(ctx context.Context, recipeID uint64, score float64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", recipeID).
		Update("score", score).Error
}

func nameLikePattern(query string) string {
	var b strings.Builder
	b.WriteString("%")
	for _, r := range query {
		b.WriteRune(r)
		b.WriteString("%")
	}
	return b.String()
}
