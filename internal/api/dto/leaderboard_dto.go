package dto

// LeaderboardEntryDTO 排行榜单行
type LeaderboardEntryDTO struct {
	Rank         int    `json:"rank"`
	TeamID       string `json:"team_id"`
	Username     string `json:"username"`
	CaptainName  string `json:"captain_name,omitempty"`
	WeeklyPoints int64  `json:"weekly_points"`
	SeasonPoints int64  `json:"season_points"`
}

// LeaderboardDTO 排行榜响应
type LeaderboardDTO struct {
	WeekKey string                `json:"week_key,omitempty"`
	Teams   []LeaderboardEntryDTO `json:"teams"`
}
