package repository

import (
	"context"
	"errors"
	"time"

	"github.com/wfunc/word-game/internal/models"
	"gorm.io/gorm"
)

// GameSessionRepository 游戏会话仓储接口
type GameSessionRepository interface {
	BaseRepository
	Create(ctx context.Context, session *models.GameSession) error
	Update(ctx context.Context, session *models.GameSession) error
	FindByID(ctx context.Context, id uint) (*models.GameSession, error)
	FindBySessionID(ctx context.Context, sessionID string) (*models.GameSession, error)
	FindActiveByUserID(ctx context.Context, userID uint) (*models.GameSession, error)
	FindByUserID(ctx context.Context, userID uint, p *Pagination) ([]*models.GameSession, error)
	CountByUserInRange(ctx context.Context, userID uint, start, end time.Time) (int64, error)
	FindByCreatedRange(ctx context.Context, start, end time.Time) ([]*models.GameSession, error)
}

// gameSessionRepo 游戏会话仓储实现
type gameSessionRepo struct {
	*BaseRepo
}

// NewGameSessionRepository 创建游戏会话仓储
func NewGameSessionRepository(db *gorm.DB) GameSessionRepository {
	return &gameSessionRepo{
		BaseRepo: NewBaseRepo(db),
	}
}

// Create 创建游戏会话
func (r *gameSessionRepo) Create(ctx context.Context, session *models.GameSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// Update 更新游戏会话
func (r *gameSessionRepo) Update(ctx context.Context, session *models.GameSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

// FindByID 根据ID查找，预加载目标单词
func (r *gameSessionRepo) FindByID(ctx context.Context, id uint) (*models.GameSession, error) {
	var session models.GameSession
	err := r.db.WithContext(ctx).
		Preload("Word").
		First(&session, id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// FindBySessionID 根据会话ID查找，预加载目标单词
func (r *gameSessionRepo) FindBySessionID(ctx context.Context, sessionID string) (*models.GameSession, error) {
	var session models.GameSession
	err := r.db.WithContext(ctx).
		Preload("Word").
		Where("session_id = ?", sessionID).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// FindActiveByUserID 查找用户当前未完成的会话，没有则返回 (nil, nil)
func (r *gameSessionRepo) FindActiveByUserID(ctx context.Context, userID uint) (*models.GameSession, error) {
	var session models.GameSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_completed = ?", userID, false).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// FindByUserID 查找用户的历史会话（分页，最新在前）
func (r *gameSessionRepo) FindByUserID(ctx context.Context, userID uint, p *Pagination) ([]*models.GameSession, error) {
	var sessions []*models.GameSession
	query := r.db.WithContext(ctx).
		Model(&models.GameSession{}).
		Where("user_id = ?", userID)

	var total int64
	query.Count(&total)
	p.Total = total

	err := query.
		Scopes(Paginate(p)).
		Order("created_at DESC").
		Find(&sessions).Error
	return sessions, err
}

// CountByUserInRange 统计用户在[start, end)时间范围内创建的会话数
func (r *gameSessionRepo) CountByUserInRange(ctx context.Context, userID uint, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.GameSession{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Count(&count).Error
	return count, err
}

// FindByCreatedRange 查找[start, end)时间范围内创建的所有会话
func (r *gameSessionRepo) FindByCreatedRange(ctx context.Context, start, end time.Time) ([]*models.GameSession, error) {
	var sessions []*models.GameSession
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at").
		Find(&sessions).Error
	return sessions, err
}
