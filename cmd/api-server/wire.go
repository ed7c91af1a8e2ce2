//go:build wireinject
// +build wireinject

package main

import (
	"github.com/edaha-kurose/Buyer-matchingSystem/config"
	"github.com/edaha-kurose/Buyer-matchingSystem/dao"
	"github.com/edaha-kurose/Buyer-matchingSystem/dao/cache"
	"github.com/edaha-kurose/Buyer-matchingSystem/handler"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/client"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/database"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/server"
	"github.com/edaha-kurose/Buyer-matchingSystem/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Point), "*"),
		wire.Struct(new(handler.Proposal), "*"),
		wire.Struct(new(handler.Comment), "*"),
		wire.Struct(new(handler.Notification), "*"),
		wire.Struct(new(handler.Buyer), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
