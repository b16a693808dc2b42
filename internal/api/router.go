package api

import (
	"github.com/gin-gonic/gin"
	"github.com/wfunc/word-game/internal/middleware"
	"github.com/wfunc/word-game/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Router API路由器
type Router struct {
	engine         *gin.Engine
	db             *gorm.DB
	services       *service.Services
	authHandler    *AuthHandler
	gameHandler    *GameHandler
	adminHandler   *AdminHandler
	authMiddleware *middleware.AuthMiddleware
	log            *zap.Logger
}

// NewRouter 创建路由器
func NewRouter(db *gorm.DB, cfg *service.Config, log *zap.Logger) *Router {
	engine := gin.New()

	// 全局中间件
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger())

	services := service.NewServices(db, cfg, log)

	router := &Router{
		engine:         engine,
		db:             db,
		services:       services,
		authHandler:    NewAuthHandler(services.Auth),
		gameHandler:    NewGameHandler(services.Game),
		adminHandler:   NewAdminHandler(services.Stats),
		authMiddleware: middleware.NewAuthMiddleware(services.Auth),
		log:            log,
	}

	router.setupRoutes()
	return router
}

// setupRoutes 设置路由
func (r *Router) setupRoutes() {
	// 健康检查
	r.engine.GET("/health", r.healthCheck)

	// OpenAPI文档
	registerOpenAPIRoutes(r.engine)
	registerSwaggerRoutes(r.engine)

	// API v1路由组
	v1 := r.engine.Group("/api/v1")
	{
		// 认证相关路由（不需要认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
		}

		// 游戏相关路由（需要认证）
		game := v1.Group("/game")
		game.Use(r.authMiddleware.RequireAuth())
		{
			game.POST("/start", r.gameHandler.StartSession)
			game.POST("/guess", r.gameHandler.SubmitGuess)
			game.GET("/sessions/:id", r.gameHandler.GetSession)
			game.GET("/today", r.gameHandler.GetDailyStatus)
		}

		// 管理员路由（需要管理员权限）
		admin := v1.Group("/admin")
		admin.Use(r.authMiddleware.RequireRole("admin"))
		{
			admin.GET("/stats", r.adminHandler.GetDailyStats)
		}
	}

	// 404处理
	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"code":    "NOT_FOUND",
			"message": "接口不存在",
		})
	})
}

// healthCheck 健康检查
func (r *Router) healthCheck(c *gin.Context) {
	sqlDB, err := r.db.DB()
	if err != nil {
		c.JSON(500, gin.H{
			"status":  "unhealthy",
			"message": "数据库连接失败",
		})
		return
	}
	if err := sqlDB.Ping(); err != nil {
		c.JSON(500, gin.H{
			"status":  "unhealthy",
			"message": "数据库ping失败",
		})
		return
	}

	c.JSON(200, gin.H{
		"status":  "healthy",
		"message": "服务运行正常",
	})
}

// Run 运行服务器
func (r *Router) Run(addr string) error {
	r.log.Info("Starting API server", zap.String("address", addr))
	return r.engine.Run(addr)
}

// GetEngine 获取Gin引擎（用于测试）
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
