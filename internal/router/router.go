// internal/router/router.go
package router

import (
	"strings"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"principal-lookup/internal/config"
	"principal-lookup/internal/controller"
	"principal-lookup/internal/middleware"
	"principal-lookup/pkg/logger"
)

type Router struct {
	Engine *gin.Engine
	Config *config.Config
	Logger logger.Logger
}

func NewRouter(
	principalController *controller.PrincipalController,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiterMiddleware,
	cfg *config.Config,
	logger logger.Logger,
) *Router {
	switch strings.ToLower(cfg.App.Mode) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	zapLogger, ok := logger.(interface {
		GetZapLogger() *zap.Logger
	})
	if ok {
		r.Use(ginzap.Ginzap(zapLogger.GetZapLogger(), time.RFC3339, true))
		r.Use(ginzap.RecoveryWithZap(zapLogger.GetZapLogger(), true))
	} else {
		logger.Warn("zap logger not available, using default gin logger")
		r.Use(gin.Logger(), gin.Recovery())
	}

	registerValidator()

	public := r.Group("/api")
	public.Use(rateLimiter.Handle(20, 5*time.Second))
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})
	}

	// Principals carry password hashes for the upstream auth framework, so
	// the lookup endpoints sit behind the token gate.
	lookup := r.Group("/api")
	lookup.Use(rateLimiter.Handle(20, 5*time.Second), authMiddleware.Handle())
	{
		lookup.GET("/principals/username/:username", principalController.GetByUsername)
		lookup.GET("/principals/email/:email", principalController.GetByEmail)
	}

	return &Router{
		Engine: r,
		Config: cfg,
		Logger: logger,
	}
}
