package service

import (
	"Encore/internal/model"
	"Encore/internal/repository"
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeTeamRepo struct {
	repository.TeamRepo
	teams   []*model.Team
	updates map[primitive.ObjectID][2]int64 // teamID -> {weekly, season}
	stamped map[primitive.ObjectID]string   // teamID -> weekKey
}

func newFakeTeamRepo(teams ...*model.Team) *fakeTeamRepo {
	return &fakeTeamRepo{
		teams:   teams,
		updates: make(map[primitive.ObjectID][2]int64),
		stamped: make(map[primitive.ObjectID]string),
	}
}

func (f *fakeTeamRepo) GetAllTeams(ctx context.Context) ([]*model.Team, error) {
	return f.teams, nil
}

func (f *fakeTeamRepo) UpdateScores(ctx context.Context, teamID primitive.ObjectID, weekly, season int64, weekKey string, calculatedAt time.Time) error {
	f.updates[teamID] = [2]int64{weekly, season}
	return nil
}

func (f *fakeTeamRepo) StampCalculated(ctx context.Context, teamID primitive.ObjectID, weekKey string, calculatedAt time.Time) error {
	f.stamped[teamID] = weekKey
	return nil
}

type fakeStatRepo struct {
	repository.ArtisteStatRepo
	byDay map[string][]*model.ArtisteDailyStat
}

func (f *fakeStatRepo) GetByArtisteIDsAndDay(ctx context.Context, ids []primitive.ObjectID, day string) ([]*model.ArtisteDailyStat, error) {
	return f.byDay[day], nil
}

func stat(id primitive.ObjectID, day string, popularity int, followers int64) *model.ArtisteDailyStat {
	return &model.ArtisteDailyStat{ArtisteID: id, Day: day, Popularity: popularity, Followers: followers}
}

func TestCalcArtistePoints(t *testing.T) {
	tests := []struct {
		name            string
		followerDelta   int64
		popularityDelta int
		want            int64
	}{
		{"no movement", 0, 0, 0},
		{"followers only", 1200, 0, 1},
		{"sub-thousand followers", 999, 0, 0},
		{"popularity only", 0, 5, 10},
		{"combined", 100000, 3, 106},
		{"negative followers floor toward minus infinity", -1, 0, -1},
		{"negative followers full thousand", -2000, 0, -2},
		{"negative popularity", 0, -4, -8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calcArtistePoints(tt.followerDelta, tt.popularityDelta); got != tt.want {
				t.Errorf("calcArtistePoints(%d, %d) = %d, want %d", tt.followerDelta, tt.popularityDelta, got, tt.want)
			}
		})
	}
}

func TestApplyCaptainBonus(t *testing.T) {
	tests := []struct {
		pts  int64
		want int64
	}{
		{0, 0},
		{10, 15},
		{11, 17}, // 16.5 进位
		{1, 2},   // 1.5 进位
		{-3, -4}, // -4.5 向上取到 -4
	}
	for _, tt := range tests {
		if got := applyCaptainBonus(tt.pts); got != tt.want {
			t.Errorf("applyCaptainBonus(%d) = %d, want %d", tt.pts, got, tt.want)
		}
	}
}

func TestRunDailyScoring(t *testing.T) {
	// 2025-03-10 是 2025-W11 的周一，前一天属于 2025-W10
	now := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	today := "2025-03-10"
	yesterday := "2025-03-09"

	captain := primitive.NewObjectID()
	other := primitive.NewObjectID()

	team := &model.Team{
		ID:             primitive.NewObjectID(),
		UserID:         primitive.NewObjectID(),
		ArtisteIDs:     []primitive.ObjectID{captain, other},
		CaptainID:      captain,
		WeeklyPoints:   40,
		SeasonPoints:   300,
		CurrentWeekKey: "2025-W11",
	}

	t.Run("daily settlement with captain bonus", func(t *testing.T) {
		teamRepo := newFakeTeamRepo(team)
		statRepo := &fakeStatRepo{byDay: map[string][]*model.ArtisteDailyStat{
			yesterday: {
				stat(captain, yesterday, 50, 100000),
				stat(other, yesterday, 70, 2000000),
			},
			today: {
				// 队员：+1200 粉丝 +5 流行度 = 1 + 10 = 11 分
				stat(other, today, 75, 2001200),
				// 队长：无变化 0 分，加成后仍为 0
				stat(captain, today, 50, 100000),
			},
		}}

		svc := NewScoringService(teamRepo, statRepo)
		summary, err := svc.RunDailyScoring(context.Background(), now)
		if err != nil {
			t.Fatalf("RunDailyScoring() error = %v", err)
		}
		if summary.Updated != 1 || summary.Failed != 0 {
			t.Fatalf("summary = %+v, want 1 updated 0 failed", summary)
		}

		got, ok := teamRepo.updates[team.ID]
		if !ok {
			t.Fatal("team scores were not written")
		}
		if got[0] != 51 || got[1] != 311 {
			t.Errorf("scores = weekly %d season %d, want weekly 51 season 311", got[0], got[1])
		}
	})

	t.Run("weekly reset on week boundary", func(t *testing.T) {
		stale := &model.Team{
			ID:             primitive.NewObjectID(),
			ArtisteIDs:     []primitive.ObjectID{captain},
			CaptainID:      captain,
			WeeklyPoints:   99,
			SeasonPoints:   500,
			CurrentWeekKey: "2025-W10",
		}
		teamRepo := newFakeTeamRepo(stale)
		statRepo := &fakeStatRepo{byDay: map[string][]*model.ArtisteDailyStat{
			yesterday: {stat(captain, yesterday, 60, 500000)},
			// 队长 +2 流行度 = 4 分，加成后 6 分
			today: {stat(captain, today, 62, 500000)},
		}}

		svc := NewScoringService(teamRepo, statRepo)
		if _, err := svc.RunDailyScoring(context.Background(), now); err != nil {
			t.Fatalf("RunDailyScoring() error = %v", err)
		}

		got := teamRepo.updates[stale.ID]
		if got[0] != 6 {
			t.Errorf("weekly points = %d, want 6 (reset before adding)", got[0])
		}
		if got[1] != 506 {
			t.Errorf("season points = %d, want 506 (no reset)", got[1])
		}
	})

	t.Run("bootstrap without history stamps only", func(t *testing.T) {
		fresh := &model.Team{
			ID:         primitive.NewObjectID(),
			ArtisteIDs: []primitive.ObjectID{captain},
			CaptainID:  captain,
		}
		teamRepo := newFakeTeamRepo(fresh)
		statRepo := &fakeStatRepo{byDay: map[string][]*model.ArtisteDailyStat{
			today: {stat(captain, today, 62, 500000)},
		}}

		svc := NewScoringService(teamRepo, statRepo)
		summary, err := svc.RunDailyScoring(context.Background(), now)
		if err != nil {
			t.Fatalf("RunDailyScoring() error = %v", err)
		}
		if summary.Bootstrapped != 1 {
			t.Errorf("bootstrapped = %d, want 1", summary.Bootstrapped)
		}
		if _, updated := teamRepo.updates[fresh.ID]; updated {
			t.Error("bootstrap must not write scores")
		}
		if week := teamRepo.stamped[fresh.ID]; week != "2025-W11" {
			t.Errorf("stamped week = %q, want 2025-W11", week)
		}
	})

	t.Run("artiste missing one side scores zero", func(t *testing.T) {
		team2 := &model.Team{
			ID:             primitive.NewObjectID(),
			ArtisteIDs:     []primitive.ObjectID{captain, other},
			CaptainID:      captain,
			CurrentWeekKey: "2025-W11",
		}
		teamRepo := newFakeTeamRepo(team2)
		statRepo := &fakeStatRepo{byDay: map[string][]*model.ArtisteDailyStat{
			yesterday: {
				stat(captain, yesterday, 50, 100000),
				stat(other, yesterday, 70, 2000000),
			},
			// other 当天缺快照，只有 captain 计分
			today: {stat(captain, today, 51, 100000)},
		}}

		svc := NewScoringService(teamRepo, statRepo)
		if _, err := svc.RunDailyScoring(context.Background(), now); err != nil {
			t.Fatalf("RunDailyScoring() error = %v", err)
		}

		got := teamRepo.updates[team2.ID]
		// 队长 +1 流行度 = 2 分，加成后 3 分
		if got[0] != 3 || got[1] != 3 {
			t.Errorf("scores = %v, want weekly 3 season 3", got)
		}
	})
}
