package types

// PublishRecipeRequest 发布菜谱请求，封面图与步骤图通过 multipart 文件上传
type PublishRecipeRequest struct {
	Name         string   `form:"name" binding:"required"`
	Introduction string   `form:"introduction"`
	StepContents []string `form:"step_contents"`
	Ingredients  []string `form:"ingredients"`
	Amounts      []string `form:"amounts"`
}

type PublishRecipeResponse struct {
	RecipeID uint64 `json:"recipe_id"`
}

// RecipeListItem 菜谱列表项
type RecipeListItem struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	Introduction string  `json:"introduction"`
	Cover        string  `json:"cover"`
	Score        float64 `json:"score"`
	AuthorName   string  `json:"author_name"`
	AuthorAvatar string  `json:"author_avatar"`
	IsFavorite   bool    `json:"is_favorite"`
}

// IngredientAmountItem 配料及其用量
type IngredientAmountItem struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// RecipeDetail 菜谱详情
type RecipeDetail struct {
	Name              string                 `json:"name"`
	Introduction      string                 `json:"introduction"`
	Cover             string                 `json:"cover"`
	StepContents      []string               `json:"step_contents"`
	StepImages        []string               `json:"step_images"`
	IngredientAmounts []IngredientAmountItem `json:"ingredient_amounts"`
	Score             float64                `json:"score"`
	IsFavorite        bool                   `json:"is_favorite"`
	AuthorName        string                 `json:"author_name"`
	AuthorAvatar      string                 `json:"author_avatar"`
}

// ScoreRecipeRequest 菜谱评分请求
type ScoreRecipeRequest struct {
	RecipeID uint64  `json:"recipe_id" binding:"required"`
	Score    float64 `json:"score" binding:"min=0,max=5"`
}

type ScoreRecipeResponse struct {
	AverageScore float64 `json:"average_score"`
}

type FavoriteRecipeResponse struct {
	IsFavorite bool `json:"is_favorite"`
}
