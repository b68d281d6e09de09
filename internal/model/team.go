package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team 用户的选秀队伍，每用户至多一支
type Team struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID   `bson:"user_id" json:"user_id"`
	ArtisteIDs []primitive.ObjectID `bson:"artiste_ids" json:"artiste_ids"` // 恒为 5 个互不相同的 id
	CaptainID  primitive.ObjectID   `bson:"captain_id" json:"captain_id"`   // 必须是 ArtisteIDs 之一
	CoinsUsed  int                  `bson:"coins_used" json:"coins_used"`

	// 积分字段仅由计分任务写入
	WeeklyPoints int64 `bson:"weekly_points" json:"weekly_points"` // 周界重置
	SeasonPoints int64 `bson:"season_points" json:"season_points"` // 单调累加，永不重置

	CurrentWeekKey   string     `bson:"current_week_key,omitempty" json:"current_week_key"` // 上次计分所属的周键
	LastCalculatedAt *time.Time `bson:"last_calculated_at,omitempty" json:"last_calculated_at"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (Team) CollectionName() string {
	return "teams"
}
