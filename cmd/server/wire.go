// cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"principal-lookup/internal/config"
	"principal-lookup/internal/controller"
	"principal-lookup/internal/middleware"
	"principal-lookup/internal/repository"
	"principal-lookup/internal/router"
	"principal-lookup/internal/service"
	"principal-lookup/pkg/db"
	"principal-lookup/pkg/logger"
	"principal-lookup/pkg/redis"

	"github.com/google/wire"
)

var dbSet = wire.NewSet(
	db.NewMySQL,
)

var redisSet = wire.NewSet(
	redis.NewRedisClient,
)

var configSet = wire.NewSet(
	config.LoadConfig,
)

var repositorySet = wire.NewSet(
	repository.NewPrincipalRepository,
	wire.Bind(new(repository.PrincipalRepository), new(*repository.PrincipalRepositoryImpl)),
)

var serviceSet = wire.NewSet(
	service.NewLookupService,
	wire.Bind(new(service.LookupService), new(*service.LookupServiceImpl)),
)

var controllerSet = wire.NewSet(
	controller.NewPrincipalController,
)

var middlewareSet = wire.NewSet(
	middleware.NewAuthMiddleware,
	middleware.NewRateLimiterMiddleware,
)

var routerSet = wire.NewSet(
	router.NewRouter,
)

var loggerSet = wire.NewSet(
	logger.NewZapLogger,
	wire.Bind(new(logger.Logger), new(*logger.ZapLogger)),
)

func InitializeApp(configPath string) (*router.Router, func(), error) {
	wire.Build(
		configSet,
		dbSet,
		redisSet,
		loggerSet,
		repositorySet,
		serviceSet,
		controllerSet,
		middlewareSet,
		routerSet,
	)
	return nil, nil, nil
}
