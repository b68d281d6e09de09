package service

import (
	"Encore/internal/api/dto"
	"Encore/internal/model"
	"Encore/internal/pkg/consts"
	"Encore/internal/pkg/redis"
	"Encore/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	json "github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// leaderboardCacheTTL 榜单缓存时间，榜单只在每日结算后变化，短缓存已足够
const leaderboardCacheTTL = 60 * time.Second

type LeaderboardService interface {
	GetWeekly(ctx context.Context, limit int) (*dto.LeaderboardDTO, error)
	GetSeason(ctx context.Context, limit int) (*dto.LeaderboardDTO, error)
}

type leaderboardServiceImpl struct {
	teamRepo    repository.TeamRepo
	userRepo    repository.UserRepo
	artisteRepo repository.ArtisteRepo
}

func NewLeaderboardService(teamRepo repository.TeamRepo, userRepo repository.UserRepo, artisteRepo repository.ArtisteRepo) LeaderboardService {
	return &leaderboardServiceImpl{
		teamRepo:    teamRepo,
		userRepo:    userRepo,
		artisteRepo: artisteRepo,
	}
}

func (s *leaderboardServiceImpl) GetWeekly(ctx context.Context, limit int) (*dto.LeaderboardDTO, error) {
	return s.getBoard(ctx, repository.MetricWeekly, consts.LeaderboardWeeklyKey, limit)
}

func (s *leaderboardServiceImpl) GetSeason(ctx context.Context, limit int) (*dto.LeaderboardDTO, error) {
	return s.getBoard(ctx, repository.MetricSeason, consts.LeaderboardSeasonKey, limit)
}

func (s *leaderboardServiceImpl) getBoard(ctx context.Context, metric repository.LeaderboardMetric, keyPrefix string, limit int) (*dto.LeaderboardDTO, error) {
	limit = normalizeLimit(limit)

	cacheKey := fmt.Sprintf("%s%d", keyPrefix, limit)
	if cached, err := redis.GetValue(ctx, cacheKey); err == nil && cached != "" {
		var board dto.LeaderboardDTO
		if err := json.Unmarshal([]byte(cached), &board); err == nil {
			return &board, nil
		}
	}

	teams, err := s.teamRepo.GetTopTeams(ctx, metric, limit)
	if err != nil {
		return nil, err
	}

	board, err := s.assemble(ctx, metric, teams)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(board); err == nil {
		if err := redis.SetWithExpiration(ctx, cacheKey, payload, leaderboardCacheTTL); err != nil {
			log.WarnContext(ctx, "cache leaderboard failed", "key", cacheKey, "err", err)
		}
	}
	return board, nil
}

// assemble 把队伍投影补全为榜单行：用户名、队长艺名、名次
func (s *leaderboardServiceImpl) assemble(ctx context.Context, metric repository.LeaderboardMetric, teams []*model.Team) (*dto.LeaderboardDTO, error) {
	board := &dto.LeaderboardDTO{
		Teams: make([]dto.LeaderboardEntryDTO, 0, len(teams)),
	}
	if len(teams) == 0 {
		return board, nil
	}

	// 周榜标注榜首队伍实际计分所属的周，而非当前日历周
	// 跨周后第一次结算前，展示的积分仍属于上一周
	if metric == repository.MetricWeekly {
		board.WeekKey = teams[0].CurrentWeekKey
	}

	userIDs := make([]primitive.ObjectID, 0, len(teams))
	captainIDs := make([]primitive.ObjectID, 0, len(teams))
	for _, t := range teams {
		userIDs = append(userIDs, t.UserID)
		captainIDs = append(captainIDs, t.CaptainID)
	}

	users, err := s.userRepo.GetUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	usernames := make(map[primitive.ObjectID]string, len(users))
	for _, u := range users {
		usernames[u.ID] = u.Username
	}

	// 下架艺人仍要能解析为队长名，这里不按活跃过滤
	captains, err := s.artisteRepo.GetByIDs(ctx, captainIDs)
	if err != nil {
		return nil, err
	}
	captainNames := make(map[primitive.ObjectID]string, len(captains))
	for _, a := range captains {
		captainNames[a.ID] = a.Name
	}

	for i, t := range teams {
		board.Teams = append(board.Teams, dto.LeaderboardEntryDTO{
			Rank:         i + 1,
			TeamID:       t.ID.Hex(),
			Username:     usernames[t.UserID],
			CaptainName:  captainNames[t.CaptainID],
			WeeklyPoints: t.WeeklyPoints,
			SeasonPoints: t.SeasonPoints,
		})
	}
	return board, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return consts.LeaderboardDefaultLimit
	}
	if limit > consts.LeaderboardMaxLimit {
		return consts.LeaderboardMaxLimit
	}
	return limit
}
