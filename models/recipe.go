package models

import (
	"time"

	"gorm.io/datatypes"
)

// Recipe 菜谱表
// score 为当前均分，由评分服务在每次新评分后全量重算写入
type Recipe struct {
	ID           uint64                      `gorm:"column:id;primary_key" json:"id"`
	Name         string                      `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Introduction string                      `gorm:"column:introduction;type:text" json:"introduction"`
	Cover        string                      `gorm:"column:cover;type:varchar(255);not null;default:''" json:"cover"`
	AuthorID     uint64                      `gorm:"column:author_id;not null;index:idx_recipes_author_id" json:"author_id"`
	StepContents datatypes.JSONSlice[string] `gorm:"column:step_contents" json:"step_contents"`
	StepImages   datatypes.JSONSlice[string] `gorm:"column:step_images" json:"step_images"`
	Score        float64                     `gorm:"column:score;not null;default:0" json:"score"`
	CreatedAt    time.Time                   `gorm:"column:created_at;index:idx_recipes_created_at" json:"created_at"`
	UpdatedAt    time.Time                   `gorm:"column:updated_at" json:"updated_at"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// RecipeScore 评分记录
// 唯一键: recipe_id + user_id，一个用户对一个菜谱只能评分一次，评分后不可修改
type RecipeScore struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	RecipeID  uint64    `gorm:"column:recipe_id;not null;index:uk_recipe_user,priority:1" json:"recipe_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:uk_recipe_user,priority:2" json:"user_id"`
	Score     float64   `gorm:"column:score;not null" json:"score"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (RecipeScore) TableName() string { return "recipe_scores" }

// Ingredient 配料表，每次发布菜谱都会新建配料记录，不做跨菜谱去重
type Ingredient struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(64);not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Ingredient) TableName() string { return "ingredients" }

// IngredientAmount 菜谱-配料用量关联
type IngredientAmount struct {
	ID           uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	RecipeID     uint64    `gorm:"column:recipe_id;not null;index:idx_recipe_id" json:"recipe_id"`
	IngredientID uint64    `gorm:"column:ingredient_id;not null" json:"ingredient_id"`
	Amount       string    `gorm:"column:amount;type:varchar(64);not null" json:"amount"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (IngredientAmount) TableName() string { return "ingredient_amounts" }
