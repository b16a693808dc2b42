package service

import (
	"context"
	"regexp"
	"time"

	apperrors "github.com/wfunc/word-game/internal/errors"
	"github.com/wfunc/word-game/internal/models"
	"github.com/wfunc/word-game/internal/repository"
	"github.com/wfunc/word-game/internal/utils"
	"go.uber.org/zap"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z]+$`)
	hasAlpha        = regexp.MustCompile(`[a-zA-Z]`)
	hasNumeric      = regexp.MustCompile(`\d`)
	hasSpecial      = regexp.MustCompile(`[$%*@]`)
)

// authService 认证服务实现
type authService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	authRepo   repository.UserAuthRepository
	jwtManager *utils.JWTManager
	log        *zap.Logger
}

// NewAuthService 创建认证服务
func NewAuthService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	authRepo repository.UserAuthRepository,
	jwtManager *utils.JWTManager,
	log *zap.Logger,
) AuthService {
	return &authService{
		txManager:  txManager,
		userRepo:   userRepo,
		authRepo:   authRepo,
		jwtManager: jwtManager,
		log:        log,
	}
}

// Register 用户注册
func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	// 检查用户是否已存在
	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	if existing != nil {
		return nil, apperrors.New(apperrors.ErrAlreadyExists, "用户名已存在")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrUnknown, "密码加密失败")
	}

	user := &models.User{
		Username: req.Username,
		Nickname: req.Nickname,
		Role:     models.RolePlayer,
		Status:   "active",
	}
	if user.Nickname == "" {
		user.Nickname = req.Username
	}

	// 用户与认证信息在同一事务内创建
	err = s.txManager.WithTransaction(ctx, func(tx *repository.Transaction) error {
		if err := tx.User().Create(ctx, user); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseInsert, "创建用户失败")
		}
		auth := &models.UserAuth{
			UserID:   user.ID,
			Password: hashed,
		}
		if err := tx.UserAuth().Create(ctx, auth); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseInsert, "创建认证信息失败")
		}
		return nil
	})
	if err != nil {
		s.log.Error("Failed to register user", zap.Error(err), zap.String("username", req.Username))
		return nil, err
	}

	s.log.Info("User registered successfully",
		zap.Uint("userID", user.ID),
		zap.String("username", user.Username))

	return s.buildAuthResponse(user)
}

// Login 用户登录
func (s *authService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	if user == nil {
		s.log.Warn("Login failed: user not found", zap.String("username", req.Username))
		return nil, apperrors.New(apperrors.ErrAuthentication, "用户名或密码错误")
	}

	auth, err := s.authRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to get auth info", zap.Error(err), zap.Uint("userID", user.ID))
		return nil, apperrors.New(apperrors.ErrAuthentication, "用户名或密码错误")
	}

	valid, err := utils.VerifyPassword(req.Password, auth.Password)
	if err != nil || !valid {
		s.log.Warn("Login failed: invalid password", zap.Uint("userID", user.ID))
		return nil, apperrors.New(apperrors.ErrAuthentication, "用户名或密码错误")
	}

	now := time.Now()
	user.LastLoginAt = &now
	_ = s.userRepo.UpdateLastLogin(ctx, user.ID)

	s.log.Info("User logged in successfully",
		zap.Uint("userID", user.ID),
		zap.String("username", user.Username))

	return s.buildAuthResponse(user)
}

// ValidateToken 验证令牌
func (s *authService) ValidateToken(ctx context.Context, token string) (*utils.JWTClaims, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrTokenInvalid)
	}
	return claims, nil
}

// buildAuthResponse 组装令牌响应
func (s *authService) buildAuthResponse(user *models.User) (*AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrUnknown, "生成访问令牌失败")
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrUnknown, "生成刷新令牌失败")
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	}, nil
}

// validateRegisterRequest 验证注册请求
func validateRegisterRequest(req *RegisterRequest) error {
	// 用户名：至少5个字符，只能包含字母
	if len(req.Username) < 5 || !usernamePattern.MatchString(req.Username) {
		return apperrors.New(apperrors.ErrInvalidParam, "用户名至少5个字符，且只能包含字母")
	}

	// 密码：至少5个字符，必须同时包含字母、数字和特殊字符($%*@)
	if len(req.Password) < 5 ||
		!hasAlpha.MatchString(req.Password) ||
		!hasNumeric.MatchString(req.Password) ||
		!hasSpecial.MatchString(req.Password) {
		return apperrors.New(apperrors.ErrInvalidParam, "密码至少5个字符，且必须包含字母、数字和特殊字符($%*@)")
	}

	return nil
}
