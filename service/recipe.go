package service

import (
	"context"
	"errors"
	"time"

	"seecooker/dao"
	"seecooker/models"
	"seecooker/pkg/log"
	"seecooker/pkg/response"
	"seecooker/pkg/snowflake"
	"seecooker/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IRecipeService = (*RecipeService)(nil)

// FavoriteCache 收藏状态缓存
// Get 的 ok 为 false 表示缓存无记录，需要回查数据库
type FavoriteCache interface {
	Get(ctx context.Context, userID uint64, recipeID uint64) (val bool, ok bool, err error)
	Set(ctx context.Context, userID uint64, recipeID uint64, favorite bool) error
}

type IRecipeService interface {
	PublishRecipe(ctx context.Context, authorID uint64, req *types.PublishRecipeRequest, cover string, stepImages []string) (uint64, error)
	ListRecipes(ctx context.Context, viewerID uint64) ([]*types.RecipeListItem, error)
	SearchRecipes(ctx context.Context, viewerID uint64, query string) ([]*types.RecipeListItem, error)
	GetRecipeDetail(ctx context.Context, viewerID uint64, recipeID uint64) (*types.RecipeDetail, error)
	IsFavorite(ctx context.Context, userID uint64, recipeID uint64) (bool, error)
	ToggleFavorite(ctx context.Context, userID uint64, recipeID uint64) (bool, error)
	ScoreRecipe(ctx context.Context, userID uint64, recipeID uint64, score float64) (float64, error)
}

type RecipeService struct {
	RecipeDAO           *dao.RecipeDAO
	RecipeScoreDAO      *dao.RecipeScoreDAO
	IngredientDAO       *dao.IngredientDAO
	IngredientAmountDAO *dao.IngredientAmountDAO
	UsersRepo           *dao.Users
	Favorite            FavoriteCache
}

// PublishRecipe 发布菜谱
// 封面图与步骤图已由上层上传完成，这里只保存 URL
func (s *RecipeService) PublishRecipe(ctx context.Context, authorID uint64, req *types.PublishRecipeRequest, cover string, stepImages []string) (uint64, error) {
	if len(req.Ingredients) != len(req.Amounts) {
		return 0, response.ErrIllegalArgument
	}

	exist, err := s.UsersRepo.IsExist(ctx, "id = ?", authorID)
	if err != nil {
		return 0, err
	}
	if !exist {
		return 0, response.ErrUserNotExist
	}

	now := time.Now()
	recipe := &models.Recipe{
		ID:           uint64(snowflake.GenID()),
		Name:         req.Name,
		Introduction: req.Introduction,
		Cover:        cover,
		AuthorID:     authorID,
		StepContents: req.StepContents,
		StepImages:   stepImages,
		Score:        0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.RecipeDAO.Create(ctx, recipe); err != nil {
		return 0, err
	}

	if err := s.UsersRepo.AppendPostRecipe(ctx, authorID, recipe.ID); err != nil {
		return 0, err
	}

	// 配料每次新建，不做跨菜谱去重
	for i := range req.Ingredients {
		ingredient := &models.Ingredient{
			Name:      req.Ingredients[i],
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.IngredientDAO.Create(ctx, ingredient); err != nil {
			return 0, err
		}
		amount := &models.IngredientAmount{
			RecipeID:     recipe.ID,
			IngredientID: ingredient.ID,
			Amount:       req.Amounts[i],
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.IngredientAmountDAO.Create(ctx, amount); err != nil {
			return 0, err
		}
	}

	return recipe.ID, nil
}

// IsFavorite 查询用户是否收藏菜谱
// 规则: 缓存为 false 直接返回 false；缓存为 true 或持久化列表包含该菜谱则为 true，
// 后者会把 true 回写缓存（自愈）；两处都无记录返回 false，不写缓存
func (s *RecipeService) IsFavorite(ctx context.Context, userID uint64, recipeID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}

	val, ok, err := s.Favorite.Get(ctx, userID, recipeID)
	if err != nil {
		// 缓存不可用时按未命中处理，回落数据库
		log.L.Warn("favorite cache get error", zap.Error(err), zap.Uint64("userId", userID))
		ok = false
	}
	if ok {
		return val, nil
	}

	user, err := s.UsersRepo.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if !user.IsFavorite(recipeID) {
		return false, nil
	}

	// 自愈：持久化已收藏但缓存无记录，回写缓存
	if err := s.Favorite.Set(ctx, userID, recipeID, true); err != nil {
		log.L.Warn("favorite cache set error", zap.Error(err), zap.Uint64("userId", userID))
	}
	return true, nil
}

// ToggleFavorite 收藏或取消收藏，返回交互后的收藏状态
// 只写缓存，不回写持久化列表；取消收藏通过缓存中的 false 记录屏蔽持久化状态
func (s *RecipeService) ToggleFavorite(ctx context.Context, userID uint64, recipeID uint64) (bool, error) {
	if userID == 0 {
		return false, response.ErrUnauthorized
	}

	val, ok, err := s.Favorite.Get(ctx, userID, recipeID)
	if err != nil {
		return false, err
	}
	if !ok {
		// 无缓存记录，读取持久化收藏列表
		user, err := s.UsersRepo.FindById(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, response.ErrUserNotExist
			}
			return false, err
		}
		val = user.IsFavorite(recipeID)
	}

	newVal := !val
	if err := s.Favorite.Set(ctx, userID, recipeID, newVal); err != nil {
		return false, err
	}
	return newVal, nil
}

// ScoreRecipe 菜谱评分，返回评分后的均分
// 每个用户对一个菜谱只能评分一次；均分每次全量重算，评分量级下无需增量维护
func (s *RecipeService) ScoreRecipe(ctx context.Context, userID uint64, recipeID uint64, score float64) (float64, error) {
	if userID == 0 {
		return 0, response.ErrUnauthorized
	}

	scored, err := s.RecipeScoreDAO.IsScored(ctx, userID, recipeID)
	if err != nil {
		return 0, err
	}
	if scored {
		return 0, response.ErrRecipeAlreadyScored
	}

	now := time.Now()
	record := &models.RecipeScore{
		RecipeID:  recipeID,
		UserID:    userID,
		Score:     score,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.RecipeScoreDAO.Create(ctx, record); err != nil {
		return 0, err
	}

	recipe, err := s.RecipeDAO.FindById(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, response.ErrRecipeNotExist
		}
		return 0, err
	}

	scores, err := s.RecipeScoreDAO.FindByRecipeID(ctx, recipeID)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, item := range scores {
		sum += item.Score
	}
	average := sum / float64(len(scores))

	if err := s.RecipeDAO.UpdateScore(ctx, recipe.ID, average); err != nil {
		return 0, err
	}
	return average, nil
}

// ListRecipes 获取菜谱列表，按创建时间升序
func (s *RecipeService) ListRecipes(ctx context.Context, viewerID uint64) ([]*types.RecipeListItem, error) {
	recipes, err := s.RecipeDAO.FindAllOrderByCreateTime(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapRecipes(ctx, viewerID, recipes)
}

// SearchRecipes 按名称搜索菜谱
func (s *RecipeService) SearchRecipes(ctx context.Context, viewerID uint64, query string) ([]*types.RecipeListItem, error) {
	recipes, err := s.RecipeDAO.FindByNameLike(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.mapRecipes(ctx, viewerID, recipes)
}

// GetRecipeDetail 获取菜谱详情
func (s *RecipeService) GetRecipeDetail(ctx context.Context, viewerID uint64, recipeID uint64) (*types.RecipeDetail, error) {
	recipe, err := s.RecipeDAO.FindById(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrRecipeNotExist
		}
		return nil, err
	}

	author, err := s.UsersRepo.FindById(ctx, recipe.AuthorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrUserNotExist
		}
		return nil, err
	}

	isFavorite, err := s.IsFavorite(ctx, viewerID, recipeID)
	if err != nil {
		return nil, err
	}

	items, err := s.IngredientAmountDAO.FindByRecipeID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	ingredientAmounts := make([]types.IngredientAmountItem, 0, len(items))
	for _, item := range items {
		ingredient, err := s.IngredientDAO.FindById(ctx, item.IngredientID)
		if err != nil {
			return nil, err
		}
		ingredientAmounts = append(ingredientAmounts, types.IngredientAmountItem{
			Name:   ingredient.Name,
			Amount: item.Amount,
		})
	}

	return &types.RecipeDetail{
		Name:              recipe.Name,
		Introduction:      recipe.Introduction,
		Cover:             recipe.Cover,
		StepContents:      recipe.StepContents,
		StepImages:        recipe.StepImages,
		IngredientAmounts: ingredientAmounts,
		Score:             recipe.Score,
		IsFavorite:        isFavorite,
		AuthorName:        author.Username,
		AuthorAvatar:      author.Avatar,
	}, nil
}

func (s *RecipeService) mapRecipes(ctx context.Context, viewerID uint64, recipes []*models.Recipe) ([]*types.RecipeListItem, error) {
	result := make([]*types.RecipeListItem, 0, len(recipes))
	for _, recipe := range recipes {
		author, err := s.UsersRepo.FindById(ctx, recipe.AuthorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.ErrUserNotExist
			}
			return nil, err
		}
		isFavorite, err := s.IsFavorite(ctx, viewerID, recipe.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, &types.RecipeListItem{
			ID:           recipe.ID,
			Name:         recipe.Name,
			Introduction: recipe.Introduction,
			Cover:        recipe.Cover,
			Score:        recipe.Score,
			AuthorName:   author.Username,
			AuthorAvatar: author.Avatar,
			IsFavorite:   isFavorite,
		})
	}
	return result, nil
}
