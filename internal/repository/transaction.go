package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// TransactionManager 事务管理器接口
//
// 开局与提交猜测的"查-判-写"必须在同一事务内完成，
// 避免两个并发请求同时通过配额检查（见服务层）。
type TransactionManager interface {
	// Begin 开始事务
	Begin(ctx context.Context) (*Transaction, error)
	// WithTransaction 在事务中执行函数
	WithTransaction(ctx context.Context, fn func(tx *Transaction) error) error
}

// Transaction 事务包装器
type Transaction struct {
	tx         *gorm.DB
	ctx        context.Context
	committed  bool
	rolledback bool

	// 事务中的仓储实例
	word        WordRepository
	gameSession GameSessionRepository
	gameGuess   GameGuessRepository
	user        UserRepository
	userAuth    UserAuthRepository
}

// txManager 事务管理器实现
type txManager struct {
	db *gorm.DB
}

// NewTransactionManager 创建事务管理器
func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &txManager{db: db}
}

// Begin 开始事务
func (m *txManager) Begin(ctx context.Context) (*Transaction, error) {
	tx := m.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	return &Transaction{
		tx:  tx,
		ctx: ctx,
	}, nil
}

// WithTransaction 在事务中执行函数
func (m *txManager) WithTransaction(ctx context.Context, fn func(tx *Transaction) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}

	// 确保事务被处理
	defer func() {
		if !tx.committed && !tx.rolledback {
			tx.Rollback()
		}
	}()

	// 执行业务逻辑
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	// 提交事务
	return tx.Commit()
}

// Commit 提交事务
func (t *Transaction) Commit() error {
	if t.committed {
		return fmt.Errorf("事务已提交")
	}
	if t.rolledback {
		return fmt.Errorf("事务已回滚")
	}

	if err := t.tx.Commit().Error; err != nil {
		return err
	}

	t.committed = true
	return nil
}

// Rollback 回滚事务
func (t *Transaction) Rollback() error {
	if t.committed {
		return fmt.Errorf("事务已提交，无法回滚")
	}
	if t.rolledback {
		return fmt.Errorf("事务已回滚")
	}

	if err := t.tx.Rollback().Error; err != nil {
		return err
	}

	t.rolledback = true
	return nil
}

// GetDB 获取事务中的数据库实例
func (t *Transaction) GetDB() *gorm.DB {
	return t.tx
}

// Word 获取事务中的词库仓储
func (t *Transaction) Word() WordRepository {
	if t.word == nil {
		t.word = &wordRepo{
			BaseRepo: &BaseRepo{db: t.tx},
		}
	}
	return t.word
}

// GameSession 获取事务中的游戏会话仓储
func (t *Transaction) GameSession() GameSessionRepository {
	if t.gameSession == nil {
		t.gameSession = &gameSessionRepo{
			BaseRepo: &BaseRepo{db: t.tx},
		}
	}
	return t.gameSession
}

// GameGuess 获取事务中的猜测记录仓储
func (t *Transaction) GameGuess() GameGuessRepository {
	if t.gameGuess == nil {
		t.gameGuess = &gameGuessRepo{
			BaseRepo: &BaseRepo{db: t.tx},
		}
	}
	return t.gameGuess
}

// User 获取事务中的用户仓储
func (t *Transaction) User() UserRepository {
	if t.user == nil {
		t.user = &userRepo{
			BaseRepo: &BaseRepo{db: t.tx},
		}
	}
	return t.user
}

// UserAuth 获取事务中的用户认证仓储
func (t *Transaction) UserAuth() UserAuthRepository {
	if t.userAuth == nil {
		t.userAuth = &userAuthRepo{
			BaseRepo: &BaseRepo{db: t.tx},
		}
	}
	return t.userAuth
}
