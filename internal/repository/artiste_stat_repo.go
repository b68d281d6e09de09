package repository

import (
	"Encore/internal/model"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ArtisteStatRepo interface {
	BulkUpsert(ctx context.Context, stats []*model.ArtisteDailyStat) (int64, error)
	GetByArtisteIDsAndDay(ctx context.Context, ids []primitive.ObjectID, day string) ([]*model.ArtisteDailyStat, error)
}

type artisteStatRepoImpl struct {
	col *mongo.Collection
}

func NewArtisteStatRepo(db *mongo.Database) ArtisteStatRepo {
	return &artisteStatRepoImpl{
		col: db.Collection(model.ArtisteDailyStat{}.CollectionName()),
	}
}

// BulkUpsert 以 (artiste_id, day) 为键做幂等 upsert，无序执行
// 返回新增加修改的条数
func (s *artisteStatRepoImpl) BulkUpsert(ctx context.Context, stats []*model.ArtisteDailyStat) (int64, error) {
	if len(stats) == 0 {
		return 0, nil
	}

	now := time.Now()
	ops := make([]mongo.WriteModel, 0, len(stats))
	for _, st := range stats {
		ops = append(ops, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"artiste_id": st.ArtisteID, "day": st.Day}).
			SetUpdate(bson.M{
				"$set": bson.M{
					"popularity": st.Popularity,
					"followers":  st.Followers,
					"updated_at": now,
				},
				"$setOnInsert": bson.M{
					"artiste_id": st.ArtisteID,
					"day":        st.Day,
					"created_at": now,
				},
			}).
			SetUpsert(true))
	}

	res, err := s.col.BulkWrite(ctx, ops, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, err
	}
	return res.UpsertedCount + res.ModifiedCount, nil
}

// GetByArtisteIDsAndDay 取指定艺人集合在某一天的快照
func (s *artisteStatRepoImpl) GetByArtisteIDsAndDay(ctx context.Context, ids []primitive.ObjectID, day string) ([]*model.ArtisteDailyStat, error) {
	cursor, err := s.col.Find(ctx, bson.M{
		"artiste_id": bson.M{"$in": ids},
		"day":        day,
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var stats []*model.ArtisteDailyStat
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
