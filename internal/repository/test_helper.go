package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/word-game/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB 为测试套件设置测试数据库
func SetupTestDB() *gorm.DB {
	// 使用内存数据库进行测试（更快，不需要文件系统，在所有环境中都能工作）
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}

	// 自动迁移所有模型
	err = db.AutoMigrate(
		// 用户系统
		&models.User{},
		&models.UserAuth{},

		// 游戏系统
		&models.GameWord{},
		&models.GameSession{},
		&models.GameGuess{},
	)
	if err != nil {
		panic(err)
	}

	return db
}

// CleanupTestDB 清理测试数据库
func CleanupTestDB(db *gorm.DB) {
	sqlDB, _ := db.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

// SeedTestWords 批量写入测试词库
func SeedTestWords(t *testing.T, db *gorm.DB, words ...string) []models.GameWord {
	entries := make([]models.GameWord, 0, len(words))
	for _, w := range words {
		entries = append(entries, models.GameWord{Word: w})
	}
	err := db.Create(&entries).Error
	require.NoError(t, err)
	return entries
}

// CreateTestUser 创建测试用户
func CreateTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	user := &models.User{
		Username: username,
		Nickname: username,
		Role:     models.RolePlayer,
		Status:   "active",
	}
	err := db.Create(user).Error
	require.NoError(t, err)
	return user
}

// CreateTestSession 创建测试游戏会话
func CreateTestSession(t *testing.T, db *gorm.DB, userID, wordID uint) *models.GameSession {
	session := &models.GameSession{
		UserID:    userID,
		WordID:    wordID,
		SessionID: fmt.Sprintf("test_session_%d_%d", userID, time.Now().UnixNano()),
		Guesses:   models.StringArray{},
	}
	err := db.Create(session).Error
	require.NoError(t, err)
	return session
}

// AssertGameSession 验证游戏会话
func AssertGameSession(t *testing.T, expected, actual *models.GameSession) {
	assert.Equal(t, expected.SessionID, actual.SessionID)
	assert.Equal(t, expected.UserID, actual.UserID)
	assert.Equal(t, expected.WordID, actual.WordID)
	assert.Equal(t, expected.IsCompleted, actual.IsCompleted)
	assert.Equal(t, expected.IsWon, actual.IsWon)
}
