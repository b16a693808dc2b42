package database

import (
	"fmt"
	"time"

	"github.com/wfunc/word-game/internal/logger"
	"github.com/wfunc/word-game/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AutoMigrate 自动迁移数据库表结构
func AutoMigrate() error {
	if DB == nil {
		return fmt.Errorf("数据库未初始化")
	}

	// 迁移顺序：先用户，再词库，最后会话与猜测记录（有外键依赖）
	migrationModels := []interface{}{
		// 用户相关
		&models.User{},
		&models.UserAuth{},

		// 游戏相关
		&models.GameWord{},
		&models.GameSession{},
		&models.GameGuess{},
	}

	for _, model := range migrationModels {
		start := time.Now()
		err := DB.AutoMigrate(model)
		logger.LogDatabaseOperation("auto_migrate", fmt.Sprintf("%T", model), time.Since(start), err)
		if err != nil {
			return fmt.Errorf("迁移 %T 失败: %w", model, err)
		}
	}

	if err := CreateGameIndexes(DB); err != nil {
		return fmt.Errorf("创建索引失败: %w", err)
	}

	logger.Info("数据库迁移完成", zap.Int("tables", len(migrationModels)))
	return nil
}

// CreateGameIndexes 创建AutoMigrate不覆盖的索引
//
// 部分唯一索引在数据库层保证每个用户同时最多一局未完成会话，
// 不依赖事务隔离级别。MySQL不支持部分索引，该规则仅由
// 事务内的单会话检查保证。
func CreateGameIndexes(db *gorm.DB) error {
	if db.Dialector.Name() == "mysql" {
		return nil
	}

	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_game_sessions_user_open
		 ON game_sessions (user_id) WHERE is_completed = false`,
	).Error
}
