package repository

import (
	"context"
	"errors"
	"math/rand"

	"github.com/wfunc/word-game/internal/models"
	"gorm.io/gorm"
)

// WordRepository 词库仓储接口
type WordRepository interface {
	BaseRepository
	Create(ctx context.Context, word *models.GameWord) error
	FindByWord(ctx context.Context, word string) (*models.GameWord, error)
	FindRandom(ctx context.Context) (*models.GameWord, error)
	Count(ctx context.Context) (int64, error)
	GetAll(ctx context.Context, pagination *Pagination) ([]*models.GameWord, error)
	Delete(ctx context.Context, id uint) error
}

// wordRepo 词库仓储实现
type wordRepo struct {
	*BaseRepo
}

// NewWordRepository 创建词库仓储
func NewWordRepository(db *gorm.DB) WordRepository {
	return &wordRepo{
		BaseRepo: NewBaseRepo(db),
	}
}

// Create 创建词条
func (r *wordRepo) Create(ctx context.Context, word *models.GameWord) error {
	return r.db.WithContext(ctx).Create(word).Error
}

// FindByWord 根据单词查找
func (r *wordRepo) FindByWord(ctx context.Context, word string) (*models.GameWord, error) {
	var w models.GameWord
	err := r.db.WithContext(ctx).Where("word = ?", word).First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// FindRandom 从词库均匀随机取一个单词，词库为空时返回 gorm.ErrRecordNotFound
func (r *wordRepo) FindRandom(ctx context.Context) (*models.GameWord, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.GameWord{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	// count+offset 在三种数据库方言下行为一致
	var word models.GameWord
	err := r.db.WithContext(ctx).
		Offset(rand.Intn(int(count))).
		Order("id").
		First(&word).Error
	if err != nil {
		// 与Count之间可能有并发删除，按词库为空处理
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &word, nil
}

// Count 统计词条数量
func (r *wordRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.GameWord{}).Count(&count).Error
	return count, err
}

// GetAll 获取词条（分页）
func (r *wordRepo) GetAll(ctx context.Context, pagination *Pagination) ([]*models.GameWord, error) {
	var words []*models.GameWord
	query := r.db.WithContext(ctx).Model(&models.GameWord{})

	var total int64
	query.Count(&total)
	pagination.Total = total

	err := query.
		Scopes(Paginate(pagination)).
		Order("word").
		Find(&words).Error
	return words, err
}

// Delete 删除词条
func (r *wordRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&models.GameWord{}, id).Error
}
