package service

import (
	"time"

	"github.com/wfunc/word-game/internal/config"
	"github.com/wfunc/word-game/internal/repository"
	"github.com/wfunc/word-game/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Config 服务配置
type Config struct {
	JWTSecret          string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	Game               *config.GameConfig
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		JWTSecret:          "your-secret-key-change-in-production",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		Game: &config.GameConfig{
			WordLength: 5,
			MaxGuesses: 5,
			DailyLimit: 3,
			Timezone:   "UTC",
		},
	}
}

// Services 服务集合
type Services struct {
	Game  GameService
	Stats StatsService
	Auth  AuthService
}

// NewServices 创建服务集合
func NewServices(db *gorm.DB, cfg *Config, log *zap.Logger) *Services {
	// 初始化仓储
	txManager := repository.NewTransactionManager(db)
	sessionRepo := repository.NewGameSessionRepository(db)
	guessRepo := repository.NewGameGuessRepository(db)
	userRepo := repository.NewUserRepository(db)
	authRepo := repository.NewUserAuthRepository(db)

	// 初始化JWT管理器
	jwtManager := utils.NewJWTManager(
		cfg.JWTSecret,
		cfg.AccessTokenExpiry,
		cfg.RefreshTokenExpiry,
	)

	return &Services{
		Game:  NewGameService(txManager, sessionRepo, guessRepo, cfg.Game, log),
		Stats: NewStatsService(sessionRepo, userRepo, cfg.Game, log),
		Auth:  NewAuthService(txManager, userRepo, authRepo, jwtManager, log),
	}
}
