package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wfunc/word-game/internal/config"
	apperrors "github.com/wfunc/word-game/internal/errors"
	"github.com/wfunc/word-game/internal/game"
	"github.com/wfunc/word-game/internal/logger"
	"github.com/wfunc/word-game/internal/models"
	"github.com/wfunc/word-game/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// gameService 游戏服务实现
type gameService struct {
	txManager   repository.TransactionManager
	sessionRepo repository.GameSessionRepository
	guessRepo   repository.GameGuessRepository
	cfg         *config.GameConfig
	log         *zap.Logger
}

// NewGameService 创建游戏服务
func NewGameService(
	txManager repository.TransactionManager,
	sessionRepo repository.GameSessionRepository,
	guessRepo repository.GameGuessRepository,
	cfg *config.GameConfig,
	log *zap.Logger,
) GameService {
	return &gameService{
		txManager:   txManager,
		sessionRepo: sessionRepo,
		guessRepo:   guessRepo,
		cfg:         cfg,
		log:         log,
	}
}

// dayRange 计算t所在日期在配置时区下的[当日零点, 次日零点)区间
func (s *gameService) dayRange(t time.Time) (time.Time, time.Time) {
	loc := s.cfg.Location()
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.Add(24 * time.Hour)
}

// StartSession 开始新游戏会话
//
// 配额检查、单会话检查和会话创建在同一事务内完成，
// 两个并发开局请求不会同时通过检查。
func (s *gameService) StartSession(ctx context.Context, userID uint) (*StartSessionResponse, error) {
	var resp *StartSessionResponse

	err := s.txManager.WithTransaction(ctx, func(tx *repository.Transaction) error {
		// 每日配额检查
		start, end := s.dayRange(time.Now())
		count, err := tx.GameSession().CountByUserInRange(ctx, userID, start, end)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}
		if int(count) >= s.cfg.DailyLimit {
			return apperrors.New(apperrors.ErrDailyLimitReached)
		}

		// 单会话规则：同一用户同时只能有一局未完成
		active, err := tx.GameSession().FindActiveByUserID(ctx, userID)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}
		if active != nil {
			return apperrors.New(apperrors.ErrActiveSessionExists)
		}

		// 随机选择目标单词
		word, err := tx.Word().FindRandom(ctx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.New(apperrors.ErrNoWordsAvailable)
			}
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}

		session := &models.GameSession{
			UserID:    userID,
			WordID:    word.ID,
			SessionID: uuid.New().String(),
			Guesses:   models.StringArray{},
		}
		if err := tx.GameSession().Create(ctx, session); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseInsert)
		}

		resp = &StartSessionResponse{
			SessionID:  session.SessionID,
			WordLength: s.cfg.WordLength,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Game session started",
		zap.Uint("userID", userID),
		zap.String("sessionID", resp.SessionID))
	logger.LogGameEvent("session_started", resp.SessionID, map[string]interface{}{
		"user_id": userID,
	})
	return resp, nil
}

// SubmitGuess 提交一次猜测
//
// 前置检查顺序：单词格式、会话归属、会话未结束、未用完猜测次数。
// 任一检查失败都不产生任何写入。
func (s *gameService) SubmitGuess(ctx context.Context, userID uint, sessionID, word string) (*GuessResponse, error) {
	word = strings.ToUpper(strings.TrimSpace(word))
	if !game.ValidateWord(word) {
		return nil, apperrors.New(apperrors.ErrInvalidWordFormat)
	}

	var resp *GuessResponse

	err := s.txManager.WithTransaction(ctx, func(tx *repository.Transaction) error {
		session, err := tx.GameSession().FindBySessionID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.New(apperrors.ErrSessionNotFound)
			}
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}
		if session.UserID != userID {
			return apperrors.New(apperrors.ErrSessionNotAuthorized)
		}
		if session.IsCompleted {
			return apperrors.New(apperrors.ErrSessionCompleted)
		}
		if len(session.Guesses) >= s.cfg.MaxGuesses {
			return apperrors.New(apperrors.ErrMaxGuessesReached)
		}

		target := session.Word.Word
		feedback := game.Score(word, target)
		isCorrect := game.IsExactMatch(word, target)

		guess := &models.GameGuess{
			SessionID: session.ID,
			Word:      word,
			Feedback:  models.FeedbackArray(feedback),
			IsCorrect: isCorrect,
		}
		if err := tx.GameGuess().Create(ctx, guess); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseInsert)
		}

		session.Guesses = append(session.Guesses, word)

		justLost := false
		if isCorrect {
			now := time.Now()
			session.IsCompleted = true
			session.IsWon = true
			session.CompletedAt = &now
		} else if len(session.Guesses) >= s.cfg.MaxGuesses {
			now := time.Now()
			session.IsCompleted = true
			session.CompletedAt = &now
			justLost = true
		}

		if err := tx.GameSession().Update(ctx, session); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseUpdate)
		}

		resp = &GuessResponse{
			Feedback:         feedback,
			IsCorrect:        isCorrect,
			IsCompleted:      session.IsCompleted,
			IsWon:            session.IsWon,
			RemainingGuesses: s.cfg.MaxGuesses - len(session.Guesses),
		}
		// 目标单词只在本次猜测导致失败结束时才透出
		if justLost {
			resp.CorrectWord = target
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Guess submitted",
		zap.Uint("userID", userID),
		zap.String("sessionID", sessionID),
		zap.Bool("isCorrect", resp.IsCorrect),
		zap.Bool("isCompleted", resp.IsCompleted))
	if resp.IsCompleted {
		logger.LogGameEvent("session_completed", sessionID, map[string]interface{}{
			"user_id": userID,
			"is_won":  resp.IsWon,
		})
	}
	return resp, nil
}

// GetSessionSummary 获取会话摘要（仅限会话所有者）
func (s *gameService) GetSessionSummary(ctx context.Context, userID uint, sessionID string) (*SessionSummary, error) {
	session, err := s.sessionRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrSessionNotFound)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	if session.UserID != userID {
		return nil, apperrors.New(apperrors.ErrSessionNotAuthorized)
	}

	guesses, err := s.guessRepo.FindBySessionID(ctx, session.ID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}

	records := make([]GuessRecord, 0, len(guesses))
	for _, g := range guesses {
		records = append(records, GuessRecord{
			Word:      g.Word,
			Feedback:  []game.LetterFeedback(g.Feedback),
			IsCorrect: g.IsCorrect,
		})
	}

	return &SessionSummary{
		SessionID:        session.SessionID,
		Guesses:          records,
		IsCompleted:      session.IsCompleted,
		IsWon:            session.IsWon,
		RemainingGuesses: s.cfg.MaxGuesses - len(session.Guesses),
	}, nil
}

// GetDailyStatus 获取用户今日游戏状态
func (s *gameService) GetDailyStatus(ctx context.Context, userID uint) (*DailyStatusResponse, error) {
	start, end := s.dayRange(time.Now())
	count, err := s.sessionRepo.CountByUserInRange(ctx, userID, start, end)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}

	return &DailyStatusResponse{
		GamesPlayed: int(count),
		DailyLimit:  s.cfg.DailyLimit,
		CanPlay:     int(count) < s.cfg.DailyLimit,
	}, nil
}
