package service

import (
	"Encore/internal/model"
	"Encore/internal/pkg/util"
	"Encore/internal/repository"
	"context"
	log "log/slog"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const captainBonus = 1.5

// ScoringSummary 一次计分任务的汇总结果
type ScoringSummary struct {
	DayKey       string
	YesterdayKey string
	WeekKey      string
	Touched      int // 参与本轮的队伍数
	Updated      int // 加分并写回的队伍数
	Bootstrapped int // 无历史快照仅盖章的队伍数
	Failed       int // 读写失败被跳过的队伍数
}

type ScoringService interface {
	RunDailyScoring(ctx context.Context, now time.Time) (*ScoringSummary, error)
}

type scoringServiceImpl struct {
	teamRepo repository.TeamRepo
	statRepo repository.ArtisteStatRepo
}

func NewScoringService(teamRepo repository.TeamRepo, statRepo repository.ArtisteStatRepo) ScoringService {
	return &scoringServiceImpl{
		teamRepo: teamRepo,
		statRepo: statRepo,
	}
}

// RunDailyScoring 对全部队伍做一次每日结算
// 同一天重复执行会重复加分，调度方需用 LastCalculatedAt 或当日锁防重入
func (s *scoringServiceImpl) RunDailyScoring(ctx context.Context, now time.Time) (*ScoringSummary, error) {
	summary := &ScoringSummary{
		DayKey:       util.DayKey(now),
		YesterdayKey: util.YesterdayKey(now),
		WeekKey:      util.WeekKey(now),
	}

	teams, err := s.teamRepo.GetAllTeams(ctx)
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return summary, nil
	}

	for _, team := range teams {
		summary.Touched++
		// 单队失败只记录不中断
		if err := s.scoreTeam(ctx, team, summary, now); err != nil {
			summary.Failed++
			log.ErrorContext(ctx, "score team failed",
				"team_id", team.ID.Hex(), "err", err)
		}
	}

	return summary, nil
}

func (s *scoringServiceImpl) scoreTeam(ctx context.Context, team *model.Team, summary *ScoringSummary, now time.Time) error {
	if len(team.ArtisteIDs) == 0 {
		return nil
	}

	todayStats, err := s.statRepo.GetByArtisteIDsAndDay(ctx, team.ArtisteIDs, summary.DayKey)
	if err != nil {
		return err
	}
	yestStats, err := s.statRepo.GetByArtisteIDsAndDay(ctx, team.ArtisteIDs, summary.YesterdayKey)
	if err != nil {
		return err
	}

	todayMap := statsByArtiste(todayStats)
	yestMap := statsByArtiste(yestStats)

	// 首日无任何历史快照：盖章表示已处理，不加分，避免第一天出现虚高增量
	if len(yestMap) == 0 {
		if err := s.teamRepo.StampCalculated(ctx, team.ID, summary.WeekKey, now); err != nil {
			return err
		}
		summary.Bootstrapped++
		return nil
	}

	daily := dailyTeamPoints(team, todayMap, yestMap)

	weekly := team.WeeklyPoints
	if team.CurrentWeekKey != "" && team.CurrentWeekKey != summary.WeekKey {
		// 跨周重置周积分，赛季积分不受影响
		weekly = 0
	}
	weekly += daily
	season := team.SeasonPoints + daily

	if err := s.teamRepo.UpdateScores(ctx, team.ID, weekly, season, summary.WeekKey, now); err != nil {
		return err
	}
	summary.Updated++
	return nil
}

// dailyTeamPoints 五位艺人的当日积分合计，缺任一侧快照的艺人计 0 分
func dailyTeamPoints(team *model.Team, todayMap, yestMap map[primitive.ObjectID]*model.ArtisteDailyStat) int64 {
	var total int64
	for _, id := range team.ArtisteIDs {
		t, okT := todayMap[id]
		y, okY := yestMap[id]
		if !okT || !okY {
			continue
		}

		pts := calcArtistePoints(t.Followers-y.Followers, t.Popularity-y.Popularity)
		if id == team.CaptainID {
			pts = applyCaptainBonus(pts)
		}
		total += pts
	}
	return total
}

// calcArtistePoints 每千粉丝增量 1 分（向下取整），每点流行度增量 2 分
func calcArtistePoints(followerDelta int64, popularityDelta int) int64 {
	return floorDiv(followerDelta, 1000) + 2*int64(popularityDelta)
}

// applyCaptainBonus 队长积分 ×1.5，半数进位
func applyCaptainBonus(pts int64) int64 {
	return int64(math.Floor(float64(pts)*captainBonus + 0.5))
}

// floorDiv 向负无穷取整的整除，粉丝数下跌时会扣分
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func statsByArtiste(stats []*model.ArtisteDailyStat) map[primitive.ObjectID]*model.ArtisteDailyStat {
	m := make(map[primitive.ObjectID]*model.ArtisteDailyStat, len(stats))
	for _, st := range stats {
		m[st.ArtisteID] = st
	}
	return m
}
