package consts

const (
	// TeamSize 每支队伍固定的艺人数量
	TeamSize = 5

	// MaxCoins 组队时的金币预算上限
	MaxCoins = 100

	// CoinMin CoinMax 金币估值的闭区间边界
	CoinMin = 8
	CoinMax = 35

	// SpotifyBatchLimit Spotify 批量艺人接口单次最多 50 个 id
	SpotifyBatchLimit = 50

	// LeaderboardDefaultLimit LeaderboardMaxLimit 排行榜返回条数限制
	LeaderboardDefaultLimit = 50
	LeaderboardMaxLimit     = 200

	// ArtistePoolDefaultLimit ArtistePoolMaxLimit 艺人池查询条数限制
	ArtistePoolDefaultLimit = 50
	ArtistePoolMaxLimit     = 100
)
