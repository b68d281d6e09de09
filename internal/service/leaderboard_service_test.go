package service

import (
	"Encore/internal/model"
	"Encore/internal/repository"
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserDir struct {
	repository.UserRepo
	users map[primitive.ObjectID]string
}

func (f *fakeUserDir) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.User, error) {
	var out []*model.User
	for _, id := range ids {
		if name, ok := f.users[id]; ok {
			out = append(out, &model.User{ID: id, Username: name})
		}
	}
	return out, nil
}

type fakeCaptainDir struct {
	repository.ArtisteRepo
	names map[primitive.ObjectID]string
}

func (f *fakeCaptainDir) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Artiste, error) {
	var out []*model.Artiste
	for _, id := range ids {
		if name, ok := f.names[id]; ok {
			out = append(out, &model.Artiste{ID: id, Name: name})
		}
	}
	return out, nil
}

func TestAssembleLeaderboard(t *testing.T) {
	userID := primitive.NewObjectID()
	captainID := primitive.NewObjectID()

	teams := []*model.Team{
		{
			ID:             primitive.NewObjectID(),
			UserID:         userID,
			CaptainID:      captainID,
			WeeklyPoints:   42,
			SeasonPoints:   420,
			CurrentWeekKey: "2025-W10",
		},
		{
			ID:             primitive.NewObjectID(),
			UserID:         primitive.NewObjectID(),
			CaptainID:      primitive.NewObjectID(),
			WeeklyPoints:   7,
			SeasonPoints:   70,
			CurrentWeekKey: "2025-W10",
		},
	}

	svc := &leaderboardServiceImpl{
		userRepo:    &fakeUserDir{users: map[primitive.ObjectID]string{userID: "alice"}},
		artisteRepo: &fakeCaptainDir{names: map[primitive.ObjectID]string{captainID: "Ivy"}},
	}

	t.Run("weekly board carries the scored week of the leader", func(t *testing.T) {
		// 榜首上次计分在 2025-W10，即便当前日历周已翻页，展示的也是这个周键
		board, err := svc.assemble(context.Background(), repository.MetricWeekly, teams)
		if err != nil {
			t.Fatalf("assemble() error = %v", err)
		}
		if board.WeekKey != "2025-W10" {
			t.Errorf("WeekKey = %q, want 2025-W10 (leading team's scored week)", board.WeekKey)
		}
		if len(board.Teams) != 2 {
			t.Fatalf("entries = %d, want 2", len(board.Teams))
		}
		if board.Teams[0].Rank != 1 || board.Teams[1].Rank != 2 {
			t.Errorf("ranks = %d,%d, want 1,2", board.Teams[0].Rank, board.Teams[1].Rank)
		}
		if board.Teams[0].Username != "alice" || board.Teams[0].CaptainName != "Ivy" {
			t.Errorf("top entry = %+v, want username alice captain Ivy", board.Teams[0])
		}
	})

	t.Run("season board has no week key", func(t *testing.T) {
		board, err := svc.assemble(context.Background(), repository.MetricSeason, teams)
		if err != nil {
			t.Fatalf("assemble() error = %v", err)
		}
		if board.WeekKey != "" {
			t.Errorf("WeekKey = %q, want empty on the season board", board.WeekKey)
		}
	})

	t.Run("empty board", func(t *testing.T) {
		board, err := svc.assemble(context.Background(), repository.MetricWeekly, nil)
		if err != nil {
			t.Fatalf("assemble() error = %v", err)
		}
		if len(board.Teams) != 0 || board.WeekKey != "" {
			t.Errorf("board = %+v, want empty", board)
		}
	})
}
