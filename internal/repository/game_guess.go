package repository

import (
	"context"

	"github.com/wfunc/word-game/internal/models"
	"gorm.io/gorm"
)

// GameGuessRepository 猜测记录仓储接口
type GameGuessRepository interface {
	BaseRepository
	Create(ctx context.Context, guess *models.GameGuess) error
	FindBySessionID(ctx context.Context, sessionID uint) ([]*models.GameGuess, error)
	DeleteBySessionID(ctx context.Context, sessionID uint) error
}

// gameGuessRepo 猜测记录仓储实现
type gameGuessRepo struct {
	*BaseRepo
}

// NewGameGuessRepository 创建猜测记录仓储
func NewGameGuessRepository(db *gorm.DB) GameGuessRepository {
	return &gameGuessRepo{
		BaseRepo: NewBaseRepo(db),
	}
}

// Create 创建猜测记录
func (r *gameGuessRepo) Create(ctx context.Context, guess *models.GameGuess) error {
	return r.db.WithContext(ctx).Create(guess).Error
}

// FindBySessionID 查找会话的所有猜测记录，按提交顺序返回
func (r *gameGuessRepo) FindBySessionID(ctx context.Context, sessionID uint) ([]*models.GameGuess, error) {
	var guesses []*models.GameGuess
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id").
		Find(&guesses).Error
	return guesses, err
}

// DeleteBySessionID 删除会话的所有猜测记录（随会话删除级联）
func (r *gameGuessRepo) DeleteBySessionID(ctx context.Context, sessionID uint) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&models.GameGuess{}).Error
}
