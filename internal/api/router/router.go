package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"user-vault/internal/api/handler"
	"user-vault/internal/api/middleware"
	"user-vault/internal/pkg/config"
	"user-vault/internal/service"
)

// Setup 设置路由
func Setup(cfg *config.Config, credentialService service.CredentialService, logger *zap.Logger) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger API 文档
	if cfg.Server.Mode != "release" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	readLimiter := middleware.RateLimitMiddleware(middleware.NewRateLimiter(cfg.RateLimit.ReadPerMinute))
	writeLimiter := middleware.RateLimitMiddleware(middleware.NewRateLimiter(cfg.RateLimit.WritePerMinute))

	credentialHandler := handler.NewCredentialHandler(credentialService)

	// API v1
	v1 := r.Group("/api/v1")
	{
		authed := v1.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			// 用户凭据
			credentials := authed.Group("/user-credentials")
			{
				credentials.GET("", readLimiter, credentialHandler.List)                    // 列表（分页）
				credentials.POST("", writeLimiter, credentialHandler.Create)                // 创建
				credentials.GET("/:credentialId", readLimiter, credentialHandler.Get)       // 详情
				credentials.PATCH("/:credentialId", writeLimiter, credentialHandler.Update) // 更新
				credentials.DELETE("/:credentialId", writeLimiter, credentialHandler.Delete) // 删除
			}
		}
	}

	logger.Info("路由初始化完成", zap.Int("routes", len(r.Routes())))

	return r
}
