package service

import (
	"context"
	"time"

	"github.com/wfunc/word-game/internal/game"
	"github.com/wfunc/word-game/internal/models"
	"github.com/wfunc/word-game/internal/utils"
)

// GameService 游戏服务接口
type GameService interface {
	// StartSession 开始新游戏会话（受每日配额和单会话规则约束）
	StartSession(ctx context.Context, userID uint) (*StartSessionResponse, error)
	// SubmitGuess 提交一次猜测
	SubmitGuess(ctx context.Context, userID uint, sessionID, word string) (*GuessResponse, error)
	// GetSessionSummary 获取会话摘要（仅限会话所有者）
	GetSessionSummary(ctx context.Context, userID uint, sessionID string) (*SessionSummary, error)
	// GetDailyStatus 获取用户今日游戏状态
	GetDailyStatus(ctx context.Context, userID uint) (*DailyStatusResponse, error)
}

// StatsService 统计服务接口（只读）
type StatsService interface {
	// DailyStats 某日的全局统计
	DailyStats(ctx context.Context, date time.Time) (*DailyStats, error)
	// PerUserReport 某日的按用户统计（仅含当日有游戏的用户）
	PerUserReport(ctx context.Context, date time.Time) ([]*UserDailyReport, error)
}

// AuthService 认证服务接口
type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	ValidateToken(ctx context.Context, token string) (*utils.JWTClaims, error)
}

// StartSessionResponse 开局响应
type StartSessionResponse struct {
	SessionID  string `json:"session_id"`
	WordLength int    `json:"word_length"`
}

// GuessResponse 猜测响应
//
// CorrectWord 仅在本次猜测导致会话失败结束时才返回。
type GuessResponse struct {
	Feedback         []game.LetterFeedback `json:"feedback"`
	IsCorrect        bool                  `json:"is_correct"`
	IsCompleted      bool                  `json:"is_completed"`
	IsWon            bool                  `json:"is_won"`
	RemainingGuesses int                   `json:"remaining_guesses"`
	CorrectWord      string                `json:"correct_word,omitempty"`
}

// GuessRecord 单次猜测记录
type GuessRecord struct {
	Word      string                `json:"word"`
	Feedback  []game.LetterFeedback `json:"feedback"`
	IsCorrect bool                  `json:"is_correct"`
}

// SessionSummary 会话摘要
type SessionSummary struct {
	SessionID        string        `json:"session_id"`
	Guesses          []GuessRecord `json:"guesses"`
	IsCompleted      bool          `json:"is_completed"`
	IsWon            bool          `json:"is_won"`
	RemainingGuesses int           `json:"remaining_guesses"`
}

// DailyStatusResponse 用户今日游戏状态
type DailyStatusResponse struct {
	GamesPlayed int  `json:"games_played"`
	DailyLimit  int  `json:"daily_limit"`
	CanPlay     bool `json:"can_play"`
}

// DailyStats 某日全局统计
type DailyStats struct {
	Date           string `json:"date"`
	TotalUsers     int    `json:"total_users"`
	CorrectGuesses int    `json:"correct_guesses"`
	TotalGames     int    `json:"total_games"`
}

// UserDailyReport 某日按用户统计
type UserDailyReport struct {
	UserID      uint    `json:"user_id"`
	Username    string  `json:"username"`
	GamesPlayed int     `json:"games_played"`
	GamesWon    int     `json:"games_won"`
	SuccessRate float64 `json:"success_rate"`
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Nickname string `json:"nickname"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse 认证响应
type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
}
