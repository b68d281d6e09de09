package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ArtisteDailyStat 每日指标快照，(artiste_id, day) 唯一
type ArtisteDailyStat struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ArtisteID  primitive.ObjectID `bson:"artiste_id" json:"artiste_id"`
	Day        string             `bson:"day" json:"day"` // UTC 日期键 YYYY-MM-DD
	Popularity int                `bson:"popularity" json:"popularity"`
	Followers  int64              `bson:"followers" json:"followers"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

func (ArtisteDailyStat) CollectionName() string {
	return "artiste_daily_stats"
}
