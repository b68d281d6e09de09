package dto

import "time"

type CreateTeamDTO struct {
	ArtisteIDs []string `json:"artiste_ids" validate:"required,len=5"`
	CaptainID  string   `json:"captain_id" validate:"required"`
}

type UpdateCaptainDTO struct {
	CaptainID string `json:"captain_id" validate:"required"`
}

type ArtisteDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SpotifyID  string `json:"spotify_id"`
	CoinValue  int    `json:"coin_value"`
	Popularity int    `json:"popularity"`
	Followers  int64  `json:"followers"`
	ImageURL   string `json:"image_url"`
}

type TeamDTO struct {
	ID               string       `json:"id"`
	UserID           string       `json:"user_id"`
	Artistes         []ArtisteDTO `json:"artistes"`
	Captain          *ArtisteDTO  `json:"captain"`
	CoinsUsed        int          `json:"coins_used"`
	WeeklyPoints     int64        `json:"weekly_points"`
	SeasonPoints     int64        `json:"season_points"`
	CurrentWeekKey   string       `json:"current_week_key,omitempty"`
	LastCalculatedAt *time.Time   `json:"last_calculated_at,omitempty"`
}

type CreateTeamResultDTO struct {
	TeamID    string `json:"team_id"`
	CoinsUsed int    `json:"coins_used"`
}
