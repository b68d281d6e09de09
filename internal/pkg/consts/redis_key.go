package consts

const (
	LeaderboardWeeklyKey = "leaderboard:weekly:"
	LeaderboardSeasonKey = "leaderboard:season:"
	ArtistePoolKey       = "artiste:pool:"
)

const (
	ScoringRunLock  = "scoring:run:lock:"
	SnapshotRunLock = "snapshot:run:lock:"
)
