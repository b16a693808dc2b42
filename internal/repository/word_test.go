package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/wfunc/word-game/internal/models"
	"gorm.io/gorm"
)

// WordRepositoryTestSuite 词库仓储测试套件
type WordRepositoryTestSuite struct {
	suite.Suite
	db       *gorm.DB
	wordRepo WordRepository
}

func (suite *WordRepositoryTestSuite) SetupTest() {
	suite.db = SetupTestDB()
	suite.wordRepo = NewWordRepository(suite.db)
}

func (suite *WordRepositoryTestSuite) TearDownTest() {
	CleanupTestDB(suite.db)
}

// TestWordRepository_CreateAndFind 测试创建和查找词条
func (suite *WordRepositoryTestSuite) TestWordRepository_CreateAndFind() {
	ctx := context.Background()

	word := &models.GameWord{Word: "APPLE"}
	err := suite.wordRepo.Create(ctx, word)
	assert.NoError(suite.T(), err)
	assert.NotZero(suite.T(), word.ID)

	found, err := suite.wordRepo.FindByWord(ctx, "APPLE")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), word.ID, found.ID)

	_, err = suite.wordRepo.FindByWord(ctx, "ZEBRA")
	assert.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
}

// TestWordRepository_UniqueConstraint 测试重复词条
func (suite *WordRepositoryTestSuite) TestWordRepository_UniqueConstraint() {
	ctx := context.Background()

	err := suite.wordRepo.Create(ctx, &models.GameWord{Word: "STONE"})
	assert.NoError(suite.T(), err)

	err = suite.wordRepo.Create(ctx, &models.GameWord{Word: "STONE"})
	assert.Error(suite.T(), err)
}

// TestWordRepository_FindRandom 测试随机取词
func (suite *WordRepositoryTestSuite) TestWordRepository_FindRandom() {
	ctx := context.Background()

	// 词库为空时返回 ErrRecordNotFound
	_, err := suite.wordRepo.FindRandom(ctx)
	assert.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)

	SeedTestWords(suite.T(), suite.db, "APPLE", "STONE", "CRANE")

	seen := make(map[string]bool)
	for i := 0; i < 30; i++ {
		word, err := suite.wordRepo.FindRandom(ctx)
		assert.NoError(suite.T(), err)
		seen[word.Word] = true
	}

	// 只会取到词库中的词
	for w := range seen {
		assert.Contains(suite.T(), []string{"APPLE", "STONE", "CRANE"}, w)
	}
}

// TestWordRepository_CountAndGetAll 测试计数和分页
func (suite *WordRepositoryTestSuite) TestWordRepository_CountAndGetAll() {
	ctx := context.Background()

	SeedTestWords(suite.T(), suite.db, "CRANE", "APPLE", "STONE")

	count, err := suite.wordRepo.Count(ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), count)

	p := NewPagination(1, 2)
	words, err := suite.wordRepo.GetAll(ctx, p)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), words, 2)
	assert.Equal(suite.T(), int64(3), p.Total)
	// 按单词字典序排列
	assert.Equal(suite.T(), "APPLE", words[0].Word)
	assert.Equal(suite.T(), "CRANE", words[1].Word)
}

// TestWordRepository_Delete 测试删除词条
func (suite *WordRepositoryTestSuite) TestWordRepository_Delete() {
	ctx := context.Background()

	words := SeedTestWords(suite.T(), suite.db, "APPLE")
	err := suite.wordRepo.Delete(ctx, words[0].ID)
	assert.NoError(suite.T(), err)

	count, err := suite.wordRepo.Count(ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), count)
}

func TestWordRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WordRepositoryTestSuite))
}
