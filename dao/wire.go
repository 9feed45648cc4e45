package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewRecipeDAO,
	NewRecipeScoreDAO,
	NewIngredientDAO,
	NewIngredientAmountDAO,
	NewPostDAO,
	NewPostLikeDAO,
	NewCommentDAO,
)
