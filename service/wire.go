package service

import (
	"seecooker/dao/cache"
	"seecooker/pkg/rocketmq"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(RecipeService), "*"),
	wire.Bind(new(IRecipeService), new(*RecipeService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(SignatureConsumer), "*"),

	wire.Bind(new(FavoriteCache), new(*cache.FavoriteStorage)),
	wire.Bind(new(LikeCache), new(*cache.LikeStorage)),
	wire.Bind(new(Publisher), new(*rocketmq.Producer)),

	NewOssService,
)
