package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	apperrors "github.com/wfunc/word-game/internal/errors"
	"github.com/wfunc/word-game/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthServiceTestSuite 认证服务测试套件
type AuthServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	services *Services
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.services = NewServices(suite.db, DefaultConfig(), zap.NewNop())
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	sqlDB, _ := suite.db.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

// TestRegister 测试注册
func (suite *AuthServiceTestSuite) TestRegister() {
	ctx := context.Background()

	resp, err := suite.services.Auth.Register(ctx, &RegisterRequest{
		Username: "player",
		Password: "abc1$",
	})
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), resp.AccessToken)
	assert.NotEmpty(suite.T(), resp.RefreshToken)
	assert.Equal(suite.T(), "Bearer", resp.TokenType)
	assert.Equal(suite.T(), "player", resp.User.Username)
	assert.Equal(suite.T(), models.RolePlayer, resp.User.Role)

	// 密码散列已落盘且不是明文
	var auth models.UserAuth
	require.NoError(suite.T(), suite.db.Where("user_id = ?", resp.User.ID).First(&auth).Error)
	assert.NotEqual(suite.T(), "abc1$", auth.Password)
	assert.NotEmpty(suite.T(), auth.Password)
}

// TestRegister_InvalidUsername 测试用户名规则
func (suite *AuthServiceTestSuite) TestRegister_InvalidUsername() {
	ctx := context.Background()

	// 太短、含数字、含下划线都不合法
	for _, name := range []string{"abcd", "play3r", "play_er", ""} {
		_, err := suite.services.Auth.Register(ctx, &RegisterRequest{
			Username: name,
			Password: "abc1$",
		})
		assert.Error(suite.T(), err)
		assert.True(suite.T(), apperrors.Is(err, apperrors.ErrInvalidParam))
	}
}

// TestRegister_InvalidPassword 测试密码规则
func (suite *AuthServiceTestSuite) TestRegister_InvalidPassword() {
	ctx := context.Background()

	// 太短、缺数字、缺字母、缺特殊字符
	for _, pw := range []string{"a1$", "abcde$", "12345$", "abc12"} {
		_, err := suite.services.Auth.Register(ctx, &RegisterRequest{
			Username: "player",
			Password: pw,
		})
		assert.Error(suite.T(), err)
		assert.True(suite.T(), apperrors.Is(err, apperrors.ErrInvalidParam))
	}
}

// TestRegister_DuplicateUsername 测试重复用户名
func (suite *AuthServiceTestSuite) TestRegister_DuplicateUsername() {
	ctx := context.Background()

	_, err := suite.services.Auth.Register(ctx, &RegisterRequest{
		Username: "player",
		Password: "abc1$",
	})
	require.NoError(suite.T(), err)

	_, err = suite.services.Auth.Register(ctx, &RegisterRequest{
		Username: "player",
		Password: "xyz9%",
	})
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrAlreadyExists))
}

// TestLogin 测试登录
func (suite *AuthServiceTestSuite) TestLogin() {
	ctx := context.Background()

	_, err := suite.services.Auth.Register(ctx, &RegisterRequest{
		Username: "player",
		Password: "abc1$",
	})
	require.NoError(suite.T(), err)

	resp, err := suite.services.Auth.Login(ctx, &LoginRequest{
		Username: "player",
		Password: "abc1$",
	})
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), resp.AccessToken)

	// 令牌可被验证且携带用户身份
	claims, err := suite.services.Auth.ValidateToken(ctx, resp.AccessToken)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), resp.User.ID, claims.UserID)
	assert.Equal(suite.T(), "player", claims.Username)
	assert.Equal(suite.T(), models.RolePlayer, claims.Role)
}

// TestLogin_WrongPassword 测试错误密码
func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()

	_, err := suite.services.Auth.Register(ctx, &RegisterRequest{
		Username: "player",
		Password: "abc1$",
	})
	require.NoError(suite.T(), err)

	_, err = suite.services.Auth.Login(ctx, &LoginRequest{
		Username: "player",
		Password: "wrong1$",
	})
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrAuthentication))

	// 不存在的用户同样返回认证失败
	_, err = suite.services.Auth.Login(ctx, &LoginRequest{
		Username: "nobody",
		Password: "abc1$",
	})
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrAuthentication))
}

// TestValidateToken_Invalid 测试非法令牌
func (suite *AuthServiceTestSuite) TestValidateToken_Invalid() {
	ctx := context.Background()

	_, err := suite.services.Auth.ValidateToken(ctx, "not-a-token")
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.Is(err, apperrors.ErrTokenInvalid))
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
