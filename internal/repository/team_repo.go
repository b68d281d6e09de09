package repository

import (
	"Encore/internal/model"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LeaderboardMetric 排行榜排序依据
type LeaderboardMetric string

const (
	MetricWeekly LeaderboardMetric = "weekly_points"
	MetricSeason LeaderboardMetric = "season_points"
)

type TeamRepo interface {
	CreateTeam(ctx context.Context, team *model.Team) error
	GetTeamByUserID(ctx context.Context, userID primitive.ObjectID) (*model.Team, error)
	GetAllTeams(ctx context.Context) ([]*model.Team, error)
	UpdateCaptain(ctx context.Context, teamID, captainID primitive.ObjectID) error
	UpdateScores(ctx context.Context, teamID primitive.ObjectID, weekly, season int64, weekKey string, calculatedAt time.Time) error
	StampCalculated(ctx context.Context, teamID primitive.ObjectID, weekKey string, calculatedAt time.Time) error
	GetTopTeams(ctx context.Context, metric LeaderboardMetric, limit int) ([]*model.Team, error)
}

type teamRepoImpl struct {
	col *mongo.Collection
}

func NewTeamRepo(db *mongo.Database) TeamRepo {
	return &teamRepoImpl{
		col: db.Collection(model.Team{}.CollectionName()),
	}
}

func (s *teamRepoImpl) CreateTeam(ctx context.Context, team *model.Team) error {
	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	res, err := s.col.InsertOne(ctx, team)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		team.ID = oid
	}
	return nil
}

func (s *teamRepoImpl) GetTeamByUserID(ctx context.Context, userID primitive.ObjectID) (*model.Team, error) {
	var team model.Team
	err := s.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

// GetAllTeams 计分任务全量遍历使用
func (s *teamRepoImpl) GetAllTeams(ctx context.Context) ([]*model.Team, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var teams []*model.Team
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *teamRepoImpl) UpdateCaptain(ctx context.Context, teamID, captainID primitive.ObjectID) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": teamID}, bson.M{
		"$set": bson.M{
			"captain_id": captainID,
			"updated_at": time.Now(),
		},
	})
	return err
}

// UpdateScores 计分任务写回一次每日结算
func (s *teamRepoImpl) UpdateScores(ctx context.Context, teamID primitive.ObjectID, weekly, season int64, weekKey string, calculatedAt time.Time) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": teamID}, bson.M{
		"$set": bson.M{
			"weekly_points":      weekly,
			"season_points":      season,
			"current_week_key":   weekKey,
			"last_calculated_at": calculatedAt,
			"updated_at":         calculatedAt,
		},
	})
	return err
}

// StampCalculated 首日无历史快照时只盖章不加分
func (s *teamRepoImpl) StampCalculated(ctx context.Context, teamID primitive.ObjectID, weekKey string, calculatedAt time.Time) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": teamID}, bson.M{
		"$set": bson.M{
			"current_week_key":   weekKey,
			"last_calculated_at": calculatedAt,
			"updated_at":         calculatedAt,
		},
	})
	return err
}

// GetTopTeams 排行榜投影，按指标降序，更新时间降序并列
func (s *teamRepoImpl) GetTopTeams(ctx context.Context, metric LeaderboardMetric, limit int) ([]*model.Team, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: string(metric), Value: -1}, {Key: "updated_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.col.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var teams []*model.Team
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}
