package handler

import (
	"net/http"
	"strconv"

	"seecooker/config"
	"seecooker/middleware"
	"seecooker/pkg/context"
	"seecooker/pkg/response"
	"seecooker/service"
	"seecooker/types"

	"github.com/gin-gonic/gin"
)

type Recipe struct {
	RecipeService service.IRecipeService
	OssService    service.IOssService
	Config        *config.Config
}

func (h *Recipe) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v1")
	g.POST("/recipe", authorize, context.Wrap(h.PublishRecipe))
	g.GET("/recipes", optional, context.Wrap(h.ListRecipes))
	g.GET("/recipes/search", optional, context.Wrap(h.SearchRecipes))
	g.GET("/recipe/:recipeId", optional, context.Wrap(h.GetRecipeDetail))
	g.PUT("/recipe/favorite/:recipeId", authorize, context.Wrap(h.FavoriteRecipe))
	g.POST("/recipe/score", authorize, context.Wrap(h.ScoreRecipe))
}

// PublishRecipe 发布菜谱
// 表单携带菜谱信息，封面图与步骤图为 multipart 文件；
// 步骤图数量须与步骤数一致，配料与用量数量须一致
func (h *Recipe) PublishRecipe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.PublishRecipeRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}
	stepImageHeaders := form.File["step_images"]
	if len(stepImageHeaders) != len(req.StepContents) {
		return response.ErrIllegalArgument
	}
	if len(req.Ingredients) != len(req.Amounts) {
		return response.ErrIllegalArgument
	}

	cover := ""
	if coverHeader, err := c.FormFile("cover"); err == nil {
		cover, err = h.OssService.UploadImage(c.Request.Context(), types.ImageCategoryRecipeCover, coverHeader)
		if err != nil {
			return response.NewError(http.StatusInternalServerError, err.Error())
		}
	}

	stepImages := make([]string, 0, len(stepImageHeaders))
	for _, header := range stepImageHeaders {
		url, err := h.OssService.UploadImage(c.Request.Context(), types.ImageCategoryRecipeStep, header)
		if err != nil {
			return response.NewError(http.StatusInternalServerError, err.Error())
		}
		stepImages = append(stepImages, url)
	}

	recipeID, err := h.RecipeService.PublishRecipe(c.Request.Context(), uint64(userID), &req, cover, stepImages)
	if err != nil {
		return err
	}
	response.Success(c, types.PublishRecipeResponse{RecipeID: recipeID})
	return nil
}

// ListRecipes 获取菜谱列表
func (h *Recipe) ListRecipes(c *gin.Context) error {
	viewerID := context.CurrentUserID(c)
	recipes, err := h.RecipeService.ListRecipes(c.Request.Context(), uint64(viewerID))
	if err != nil {
		return err
	}
	response.Success(c, recipes)
	return nil
}

// SearchRecipes 搜索菜谱
func (h *Recipe) SearchRecipes(c *gin.Context) error {
	query := c.Query("query")
	if query == "" {
		return response.ErrIllegalArgument
	}
	viewerID := context.CurrentUserID(c)
	recipes, err := h.RecipeService.SearchRecipes(c.Request.Context(), uint64(viewerID), query)
	if err != nil {
		return err
	}
	response.Success(c, recipes)
	return nil
}

// GetRecipeDetail 获取菜谱详情
func (h *Recipe) GetRecipeDetail(c *gin.Context) error {
	recipeID, err := parseID(c.Param("recipeId"))
	if err != nil {
		return response.ErrIllegalArgument
	}
	viewerID := context.CurrentUserID(c)
	detail, err := h.RecipeService.GetRecipeDetail(c.Request.Context(), uint64(viewerID), recipeID)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

// FavoriteRecipe 收藏或取消收藏菜谱，返回交互后的收藏状态
func (h *Recipe) FavoriteRecipe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	recipeID, err := parseID(c.Param("recipeId"))
	if err != nil {
		return response.ErrIllegalArgument
	}

	isFavorite, err := h.RecipeService.ToggleFavorite(c.Request.Context(), uint64(userID), recipeID)
	if err != nil {
		return err
	}
	response.Success(c, types.FavoriteRecipeResponse{IsFavorite: isFavorite})
	return nil
}

// ScoreRecipe 菜谱评分，返回评分后的均分
func (h *Recipe) ScoreRecipe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.ScoreRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	average, err := h.RecipeService.ScoreRecipe(c.Request.Context(), uint64(userID), req.RecipeID, req.Score)
	if err != nil {
		return err
	}
	response.Success(c, types.ScoreRecipeResponse{AverageScore: average})
	return nil
}

func parseID(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
