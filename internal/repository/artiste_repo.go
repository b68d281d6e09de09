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

type ArtisteRepo interface {
	GetActiveArtistes(ctx context.Context) ([]*model.Artiste, error)
	GetActiveByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Artiste, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Artiste, error)
	SearchActive(ctx context.Context, search string, limit int) ([]*model.Artiste, error)
	BulkUpdateCoinValues(ctx context.Context, values map[primitive.ObjectID]int) (int64, error)
	UpdateLiveMetrics(ctx context.Context, id primitive.ObjectID, popularity int, followers int64) error
}

type artisteRepoImpl struct {
	col *mongo.Collection
}

func NewArtisteRepo(db *mongo.Database) ArtisteRepo {
	return &artisteRepoImpl{
		col: db.Collection(model.Artiste{}.CollectionName()),
	}
}

// GetActiveArtistes 获取全部活跃艺人，供快照与估值批处理使用
func (s *artisteRepoImpl) GetActiveArtistes(ctx context.Context) ([]*model.Artiste, error) {
	return s.findMany(ctx, bson.M{"is_active": true}, nil)
}

func (s *artisteRepoImpl) GetActiveByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Artiste, error) {
	return s.findMany(ctx, bson.M{
		"_id":       bson.M{"$in": ids},
		"is_active": true,
	}, nil)
}

// GetByIDs 不过滤活跃状态，已下架艺人的历史引用仍可解析
func (s *artisteRepoImpl) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Artiste, error) {
	return s.findMany(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// SearchActive 艺人池查询，按流行度降序
func (s *artisteRepoImpl) SearchActive(ctx context.Context, search string, limit int) ([]*model.Artiste, error) {
	filter := bson.M{"is_active": true}
	if search != "" {
		filter["name"] = bson.M{"$regex": search, "$options": "i"}
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "popularity", Value: -1}}).
		SetLimit(int64(limit))

	return s.findMany(ctx, filter, findOptions)
}

// BulkUpdateCoinValues 批量回写金币估值，无序执行，返回实际修改条数
func (s *artisteRepoImpl) BulkUpdateCoinValues(ctx context.Context, values map[primitive.ObjectID]int) (int64, error) {
	if len(values) == 0 {
		return 0, nil
	}

	now := time.Now()
	ops := make([]mongo.WriteModel, 0, len(values))
	for id, coins := range values {
		ops = append(ops, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$set": bson.M{"coin_value": coins, "updated_at": now}}))
	}

	res, err := s.col.BulkWrite(ctx, ops, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// UpdateLiveMetrics 将最新指标镜像到艺人主记录，计分只读快照不读这里
func (s *artisteRepoImpl) UpdateLiveMetrics(ctx context.Context, id primitive.ObjectID, popularity int, followers int64) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"popularity": popularity,
			"followers":  followers,
			"updated_at": time.Now(),
		},
	})
	return err
}

func (s *artisteRepoImpl) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.Artiste, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = s.col.Find(ctx, filter, opts)
	} else {
		cursor, err = s.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var artistes []*model.Artiste
	if err := cursor.All(ctx, &artistes); err != nil {
		return nil, err
	}
	return artistes, nil
}
