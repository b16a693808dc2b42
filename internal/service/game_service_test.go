package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	apperrors "github.com/wfunc/word-game/internal/errors"
	"github.com/wfunc/word-game/internal/game"
	"github.com/wfunc/word-game/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 创建内存测试数据库
func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
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
	return db
}

// seedUser 创建测试用户
func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	user := &models.User{
		Username: username,
		Nickname: username,
		Role:     models.RolePlayer,
		Status:   "active",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedWords 写入测试词库
func seedWords(t *testing.T, db *gorm.DB, words ...string) {
	for _, w := range words {
		require.NoError(t, db.Create(&models.GameWord{Word: w}).Error)
	}
}

// GameServiceTestSuite 游戏服务测试套件
type GameServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	services *Services
	user     *models.User
}

func (suite *GameServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.services = NewServices(suite.db, DefaultConfig(), zap.NewNop())
	suite.user = seedUser(suite.T(), suite.db, "player")
}

func (suite *GameServiceTestSuite) TearDownTest() {
	sqlDB, _ := suite.db.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

// TestStartSession 测试开局
func (suite *GameServiceTestSuite) TestStartSession() {
	ctx := context.Background()
	seedWords(suite.T(), suite.db, "APPLE")

	resp, err := suite.services.Game.StartSession(ctx, suite.user.ID)
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), resp.SessionID)
	assert.Equal(suite.T(), 5, resp.WordLength)

	// 会话已持久化且未完成
	var session models.GameSession
	err = suite.db.Where("session_id = ?", resp.SessionID).First(&session).Error
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), session.IsCompleted)
	assert.Nil(suite.T(), session.CompletedAt)
}

// TestStartSession_EmptyWordPool 测试词库为空时开局
func (suite *GameServiceTestSuite) TestStartSession_EmptyWordPool() {
	ctx := context.Background()

	_, err := suite.services.Game.StartSession(ctx, suite.user.ID)
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrNoWordsAvailable))

	// 失败的开局不占用配额
	status, err := suite.services.Game.GetDailyStatus(ctx, suite.user.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, status.GamesPlayed)
}

// TestStartSession_ActiveSessionExists 测试存在未完成会话时开局
func (suite *GameServiceTestSuite) TestStartSession_ActiveSessionExists() {
	ctx := context.Background()
	seedWords(suite.T(), suite.db, "APPLE")

	_, err := suite.services.Game.StartSession(ctx, suite.user.ID)
	assert.NoError(suite.T(), err)

	_, err = suite.services.Game.StartSession(ctx, suite.user.ID)
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrActiveSessionExists))
}

// TestStartSession_DailyLimit 测试每日配额
func (suite *GameServiceTestSuite) TestStartSession_DailyLimit() {
	ctx := context.Background()
	seedWords(suite.T(), suite.db, "APPLE")

	// 完成3局（配额上限）
	for i := 0; i < 3; i++ {
		resp, err := suite.services.Game.StartSession(ctx, suite.user.ID)
		require.NoError(suite.T(), err)
		guess, err := suite.services.Game.SubmitGuess(ctx, suite.user.ID, resp.SessionID, "APPLE")
		require.NoError(suite.T(), err)
		require.True(suite.T(), guess.IsWon)
	}

	// 第4局被拒绝
	_, err := suite.services.Game.StartSession(ctx, suite.user.ID)
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrDailyLimitReached))

	status, err := suite.services.Game.GetDailyStatus(ctx, suite.user.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, status.GamesPlayed)
	assert.Equal(suite.T(), 3, status.DailyLimit)
	assert.False(suite.T(), status.CanPlay)
}

// TestSubmitGuess_WinOnFirstGuess 测试首猜即中
func (suite *GameServiceTestSuite) TestSubmitGuess_WinOnFirstGuess() {
	ctx := context.Background()
	seedWords(suite.T(), suite.db, "CRANE")

	resp, err := suite.services.Game.StartSession(ctx, suite.user.ID)
	require.NoError(suite.T(), err)

	guess, err := suite.services.Game.SubmitGuess(ctx, suite.user.ID, resp.SessionID, "CRANE")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), guess.IsCorrect)
	assert.True(suite.T(), guess.IsCompleted)
	assert.True(suite.T(), guess.IsWon)
	assert.Equal(suite.T(), 4, guess.RemainingGuesses)
	// 胜利时不透出目标单词
	assert.Empty(suite.T(), guess.CorrectWord)
	for _, fb := range guess.Feedback {
		assert.Equal(suite.T(), game.StatusCorrect, fb.Status)
	}

	// 完成时间已落盘
	var session models.GameSession
	require.NoError(suite.T(), suite.db.Where("session_id = ?", resp.SessionID).First(&session).Error)
	assert.NotNil(suite.T(), session.CompletedAt)
}

// TestSubmitGuess_LoseAfterMaxGuesses 测试5次未中失败
func (suite *GameServiceTestSuite) TestSubmitGuess_LoseAfterMaxGuesses() {
	ctx := context.Background()
	seedWords(suite.T(), suite.db, "CRANE")

	resp, err := suite.services.Game.StartSession(ctx, suite.user.ID)
	require.NoError(suite.T(), err)

	wrong := []string{"APPLE", "STONE", "BLIMP", "FUDGE", "WHISK"}
	for i, w := range wrong {
		guess, err := suite.services.Game.SubmitGuess(ctx, suite.user.ID, resp.SessionID, w)
		require.NoError(suite.T(), err)
		assert.False(suite.T(), guess.IsCorrect)
		assert.Equal(suite.T(), 4-i, guess.RemainingGuesses)

		if i < 4 {
			assert.False(suite.T(), guess.IsCompleted)
			assert.Empty(suite.T(), guess.CorrectWord)
		} else {
			// 第5次错误猜测导致失败结束，此时才透出目标单词
			assert.True(suite.T(), guess.IsCompleted)
			assert.False(suite.T(), guess.IsWon)
			assert.Equal(suite.T(), "CRANE", guess.CorrectWord)
		}
	}

	// 结束后继续猜测被拒绝
	_, err = suite.services.Game.SubmitGuess(ctx, suite.user.ID, resp.SessionID, "CRANE")
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrSessionCompleted))
}

// TestSubmitGuess_InvalidWord 测试单词格式校验
func (suite *GameServiceTestSuite) TestSubmitGuess_InvalidWord() {
	ctx := context.Background()
	seedWords(suite.T(), suite.db, "CRANE")

	resp, err := suite.services.Game.StartSession(ctx, suite.user.ID)
	require.NoError(suite.T(), err)

	for _, w := range []string{"", "AB", "ABCDEF", "AB1DE", "AB DE"} {
		_, err := suite.services.Game.SubmitGuess(ctx, suite.user.ID, resp.SessionID, w)
		assert.Error(suite.T(), err)
		assert.True(suite.T(), apperrors.Is(err, apperrors.ErrInvalidWordFormat))
	}

	// 小写输入被归一化为大写后接受
	guess, err := suite.services.Game.SubmitGuess(ctx, suite.user.ID, resp.SessionID, "crane")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), guess.IsWon)

	// 非法猜测没有产生任何记录
	var count int64
	suite.db.Model(&models.GameGuess{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

// TestSubmitGuess_SessionNotFound 测试会话不存在
func (suite *GameServiceTestSuite) TestSubmitGuess_SessionNotFound() {
	ctx := context.Background()

	_, err := suite.services.Game.SubmitGuess(ctx, suite.user.ID, "no-such-session", "APPLE")
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrSessionNotFound))
}

// TestSubmitGuess_NotAuthorized 测试跨用户访问会话
func (suite *GameServiceTestSuite) TestSubmitGuess_NotAuthorized() {
	ctx := context.Background()
	seedWords(suite.T(), suite.db, "CRANE")
	other := seedUser(suite.T(), suite.db, "intruder")

	resp, err := suite.services.Game.StartSession(ctx, suite.user.ID)
	require.NoError(suite.T(), err)

	_, err = suite.services.Game.SubmitGuess(ctx, other.ID, resp.SessionID, "APPLE")
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrSessionNotAuthorized))
}

// TestGetSessionSummary 测试会话摘要
func (suite *GameServiceTestSuite) TestGetSessionSummary() {
	ctx := context.Background()
	seedWords(suite.T(), suite.db, "SPEED")

	resp, err := suite.services.Game.StartSession(ctx, suite.user.ID)
	require.NoError(suite.T(), err)

	_, err = suite.services.Game.SubmitGuess(ctx, suite.user.ID, resp.SessionID, "ERASE")
	require.NoError(suite.T(), err)
	_, err = suite.services.Game.SubmitGuess(ctx, suite.user.ID, resp.SessionID, "SPEED")
	require.NoError(suite.T(), err)

	summary, err := suite.services.Game.GetSessionSummary(ctx, suite.user.ID, resp.SessionID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), resp.SessionID, summary.SessionID)
	assert.True(suite.T(), summary.IsCompleted)
	assert.True(suite.T(), summary.IsWon)
	assert.Equal(suite.T(), 3, summary.RemainingGuesses)
	require.Len(suite.T(), summary.Guesses, 2)
	assert.Equal(suite.T(), "ERASE", summary.Guesses[0].Word)
	assert.False(suite.T(), summary.Guesses[0].IsCorrect)
	assert.Equal(suite.T(), "SPEED", summary.Guesses[1].Word)
	assert.True(suite.T(), summary.Guesses[1].IsCorrect)
	assert.Len(suite.T(), summary.Guesses[0].Feedback, 5)

	// 非所有者不可见
	other := seedUser(suite.T(), suite.db, "intruder")
	_, err = suite.services.Game.GetSessionSummary(ctx, other.ID, resp.SessionID)
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrSessionNotAuthorized))
}

// TestGetDailyStatus 测试今日状态
func (suite *GameServiceTestSuite) TestGetDailyStatus() {
	ctx := context.Background()
	seedWords(suite.T(), suite.db, "APPLE")

	status, err := suite.services.Game.GetDailyStatus(ctx, suite.user.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, status.GamesPlayed)
	assert.True(suite.T(), status.CanPlay)

	resp, err := suite.services.Game.StartSession(ctx, suite.user.ID)
	require.NoError(suite.T(), err)
	_, err = suite.services.Game.SubmitGuess(ctx, suite.user.ID, resp.SessionID, "APPLE")
	require.NoError(suite.T(), err)

	status, err = suite.services.Game.GetDailyStatus(ctx, suite.user.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, status.GamesPlayed)
	assert.True(suite.T(), status.CanPlay)
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}
