package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wfunc/word-game/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupIndexTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.UserAuth{},
		&models.GameWord{},
		&models.GameSession{},
		&models.GameGuess{},
	)
	require.NoError(t, err)

	require.NoError(t, CreateGameIndexes(db))
	return db
}

// 部分唯一索引在数据库层兜底单会话规则：同一用户的第二局
// 未完成会话直接违反约束，不依赖业务层检查
func TestCreateGameIndexes_OneOpenSessionPerUser(t *testing.T) {
	db := setupIndexTestDB(t)

	user := &models.User{Username: "player", Nickname: "player", Role: models.RolePlayer, Status: "active"}
	require.NoError(t, db.Create(user).Error)
	other := &models.User{Username: "otherp", Nickname: "otherp", Role: models.RolePlayer, Status: "active"}
	require.NoError(t, db.Create(other).Error)
	word := &models.GameWord{Word: "CRANE"}
	require.NoError(t, db.Create(word).Error)

	first := &models.GameSession{
		UserID:    user.ID,
		WordID:    word.ID,
		SessionID: "open-1",
		Guesses:   models.StringArray{},
	}
	require.NoError(t, db.Create(first).Error)

	// 同一用户第二局未完成会话违反唯一约束
	second := &models.GameSession{
		UserID:    user.ID,
		WordID:    word.ID,
		SessionID: "open-2",
		Guesses:   models.StringArray{},
	}
	require.Error(t, db.Create(second).Error)

	// 其他用户不受影响
	theirs := &models.GameSession{
		UserID:    other.ID,
		WordID:    word.ID,
		SessionID: "open-3",
		Guesses:   models.StringArray{},
	}
	require.NoError(t, db.Create(theirs).Error)

	// 第一局完成后可以再开新局
	first.IsCompleted = true
	first.IsWon = true
	require.NoError(t, db.Save(first).Error)

	next := &models.GameSession{
		UserID:    user.ID,
		WordID:    word.ID,
		SessionID: "open-4",
		Guesses:   models.StringArray{},
	}
	require.NoError(t, db.Create(next).Error)
}

// 索引创建是幂等的
func TestCreateGameIndexes_Idempotent(t *testing.T) {
	db := setupIndexTestDB(t)
	require.NoError(t, CreateGameIndexes(db))
}
