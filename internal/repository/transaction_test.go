package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/word-game/internal/models"
)

func TestTransactionManager_Begin(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	manager := NewTransactionManager(db)
	ctx := context.Background()

	tx, err := manager.Begin(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tx)
	assert.NotNil(t, tx.GetDB())

	err = tx.Commit()
	require.NoError(t, err)

	// 重复提交报错
	assert.Error(t, tx.Commit())
	// 提交后回滚报错
	assert.Error(t, tx.Rollback())
}

func TestTransactionManager_WithTransaction(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	manager := NewTransactionManager(db)
	ctx := context.Background()

	user := CreateTestUser(t, db, "player")
	words := SeedTestWords(t, db, "APPLE")

	// 成功的事务：会话与猜测记录一起落盘
	var sessionID uint
	err := manager.WithTransaction(ctx, func(tx *Transaction) error {
		session := &models.GameSession{
			UserID:    user.ID,
			WordID:    words[0].ID,
			SessionID: "tx-session-001",
			Guesses:   models.StringArray{},
		}
		if err := tx.GameSession().Create(ctx, session); err != nil {
			return err
		}
		sessionID = session.ID

		return tx.GameGuess().Create(ctx, &models.GameGuess{
			SessionID: session.ID,
			Word:      "STONE",
		})
	})
	require.NoError(t, err)

	guesses, err := NewGameGuessRepository(db).FindBySessionID(ctx, sessionID)
	require.NoError(t, err)
	assert.Len(t, guesses, 1)
}

func TestTransactionManager_Rollback(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	manager := NewTransactionManager(db)
	ctx := context.Background()

	user := CreateTestUser(t, db, "player")
	words := SeedTestWords(t, db, "APPLE")

	// 失败的事务：里面的所有写入回滚
	boom := errors.New("boom")
	err := manager.WithTransaction(ctx, func(tx *Transaction) error {
		session := &models.GameSession{
			UserID:    user.ID,
			WordID:    words[0].ID,
			SessionID: "tx-session-002",
			Guesses:   models.StringArray{},
		}
		if err := tx.GameSession().Create(ctx, session); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int64
	db.Model(&models.GameSession{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestTransaction_RepositoryAccessors(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	manager := NewTransactionManager(db)
	ctx := context.Background()

	tx, err := manager.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback()

	// 访问器返回绑定在事务上的仓储，重复调用返回同一实例
	assert.NotNil(t, tx.Word())
	assert.NotNil(t, tx.GameSession())
	assert.NotNil(t, tx.GameGuess())
	assert.NotNil(t, tx.User())
	assert.NotNil(t, tx.UserAuth())
	assert.Equal(t, tx.Word(), tx.Word())
}
