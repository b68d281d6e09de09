package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Artiste 可选秀的艺人目录条目
type Artiste struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	SpotifyID  string             `bson:"spotify_id" json:"spotify_id"` // 外部供应商唯一 id
	CoinValue  int                `bson:"coin_value" json:"coin_value"` // 选秀成本
	Popularity int                `bson:"popularity" json:"popularity"` // 0..100
	Followers  int64              `bson:"followers" json:"followers"`
	ImageURL   string             `bson:"image_url,omitempty" json:"image_url"`
	IsActive   bool               `bson:"is_active" json:"is_active"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

func (Artiste) CollectionName() string {
	return "artistes"
}
