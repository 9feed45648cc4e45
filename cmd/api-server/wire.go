//go:build wireinject
// +build wireinject

package main

import (
	"seecooker/config"
	"seecooker/dao"
	"seecooker/dao/cache"
	"seecooker/handler"
	"seecooker/pkg/client"
	"seecooker/pkg/database"
	"seecooker/pkg/rocketmq"
	"seecooker/pkg/server"
	"seecooker/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideOssConfig,
		config.ProvideRocketMQConfig,
		rocketmq.InitProducer,
		rocketmq.InitConsumer,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Recipe), "*"),
		wire.Struct(new(handler.Post), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
