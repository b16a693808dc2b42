package service

import (
	"context"
	"sort"
	"time"

	"github.com/wfunc/word-game/internal/config"
	apperrors "github.com/wfunc/word-game/internal/errors"
	"github.com/wfunc/word-game/internal/repository"
	"go.uber.org/zap"
)

// statsService 统计服务实现（只读，不落盘）
type statsService struct {
	sessionRepo repository.GameSessionRepository
	userRepo    repository.UserRepository
	cfg         *config.GameConfig
	log         *zap.Logger
}

// NewStatsService 创建统计服务
func NewStatsService(
	sessionRepo repository.GameSessionRepository,
	userRepo repository.UserRepository,
	cfg *config.GameConfig,
	log *zap.Logger,
) StatsService {
	return &statsService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		cfg:         cfg,
		log:         log,
	}
}

// dayRange 计算date所在日期在配置时区下的[当日零点, 次日零点)区间
func (s *statsService) dayRange(date time.Time) (time.Time, time.Time) {
	loc := s.cfg.Location()
	local := date.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.Add(24 * time.Hour)
}

// DailyStats 某日的全局统计
func (s *statsService) DailyStats(ctx context.Context, date time.Time) (*DailyStats, error) {
	start, end := s.dayRange(date)

	sessions, err := s.sessionRepo.FindByCreatedRange(ctx, start, end)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}

	users := make(map[uint]struct{})
	correct := 0
	for _, session := range sessions {
		users[session.UserID] = struct{}{}
		if session.IsWon {
			correct++
		}
	}

	return &DailyStats{
		Date:           start.Format("2006-01-02"),
		TotalUsers:     len(users),
		CorrectGuesses: correct,
		TotalGames:     len(sessions),
	}, nil
}

// PerUserReport 某日的按用户统计，仅包含当日至少开过一局的用户
func (s *statsService) PerUserReport(ctx context.Context, date time.Time) ([]*UserDailyReport, error) {
	start, end := s.dayRange(date)

	sessions, err := s.sessionRepo.FindByCreatedRange(ctx, start, end)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}

	type tally struct {
		played int
		won    int
	}
	tallies := make(map[uint]*tally)
	for _, session := range sessions {
		t, ok := tallies[session.UserID]
		if !ok {
			t = &tally{}
			tallies[session.UserID] = t
		}
		t.played++
		if session.IsWon {
			t.won++
		}
	}

	ids := make([]uint, 0, len(tallies))
	for id := range tallies {
		ids = append(ids, id)
	}

	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	usernames := make(map[uint]string, len(users))
	for _, u := range users {
		usernames[u.ID] = u.Username
	}

	reports := make([]*UserDailyReport, 0, len(tallies))
	for id, t := range tallies {
		rate := float64(0)
		if t.played > 0 {
			rate = float64(t.won) / float64(t.played) * 100
		}
		reports = append(reports, &UserDailyReport{
			UserID:      id,
			Username:    usernames[id],
			GamesPlayed: t.played,
			GamesWon:    t.won,
			SuccessRate: rate,
		})
	}

	// map遍历顺序不稳定，按用户ID排序保证输出确定
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].UserID < reports[j].UserID
	})
	return reports, nil
}
