package valuation

import (
	"errors"
	"math"
	"sort"

	"Encore/internal/pkg/consts"
)

// Policy 金币估值策略
type Policy string

const (
	// PolicyCurve 固定参照曲线：流行度线性归一 + 粉丝数对数归一（10k..10M）
	PolicyCurve Policy = "curve"
	// PolicyPercentile 池内相对估值：按活跃池排名的百分位走凹曲线
	PolicyPercentile Policy = "percentile"
	// PolicyTiered 仅按流行度分档的简化估值
	PolicyTiered Policy = "tiered"
)

var ErrUnknownPolicy = errors.New("unknown valuation policy")

// ParsePolicy 解析配置中的策略名
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyCurve, PolicyPercentile, PolicyTiered:
		return Policy(s), nil
	}
	return "", ErrUnknownPolicy
}

// Metrics 估值输入，来自艺人的实时指标
type Metrics struct {
	Popularity int
	Followers  int64
}

const (
	popWeight = 0.7
	folWeight = 0.3

	// 粉丝数对数归一参照：10^4 -> 0, 10^7 -> 1
	folLogLow  = 4.0
	folLogSpan = 3.0

	// 百分位凹曲线指数：1.0 线性，1.4 中段密集，2.0 更密集
	percentileExponent = 1.4
)

// CurveCoins 固定曲线估值，仅依赖单个艺人自身指标
func CurveCoins(m Metrics) int {
	popNorm := clampFloat(float64(m.Popularity)/100, 0, 1)

	logF := math.Log10(float64(m.Followers) + 1)
	folNorm := clampFloat((logF-folLogLow)/folLogSpan, 0, 1)

	score := popWeight*popNorm + folWeight*folNorm

	coins := consts.CoinMin + int(math.Round(score*float64(consts.CoinMax-consts.CoinMin)))
	return clampInt(coins, consts.CoinMin, consts.CoinMax)
}

// TieredCoins 仅按流行度分档
func TieredCoins(popularity int) int {
	switch {
	case popularity >= 76:
		return 26 + (popularity-76)/3
	case popularity >= 66:
		return 21 + (popularity-66)/2
	case popularity >= 50:
		return 15 + (popularity-50)/4
	default:
		return consts.CoinMin + popularity/10
	}
}

// PercentileCoins 池内相对估值，必须一次性对整个活跃池计算
// 返回的金币切片与输入下标一一对应
func PercentileCoins(pool []Metrics) []int {
	n := len(pool)
	if n == 0 {
		return nil
	}

	// 池内粉丝对数的最小/最大值决定归一范围
	fols := make([]float64, n)
	minFol, maxFol := math.Inf(1), math.Inf(-1)
	for i, m := range pool {
		fols[i] = math.Log10(float64(m.Followers) + 1)
		minFol = math.Min(minFol, fols[i])
		maxFol = math.Max(maxFol, fols[i])
	}
	folRange := math.Max(1e-9, maxFol-minFol)

	scores := make([]float64, n)
	for i, m := range pool {
		pop := clampFloat(float64(m.Popularity)/100, 0, 1)
		folNorm := (fols[i] - minFol) / folRange
		scores[i] = popWeight*pop + folWeight*folNorm
	}

	// 按得分升序排名，并列保持输入顺序
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] < scores[order[b]]
	})

	coins := make([]int, n)
	for rank, idx := range order {
		p := 1.0
		if n > 1 {
			p = float64(rank) / float64(n-1)
		}
		coins[idx] = percentileToCoins(p)
	}
	return coins
}

// percentileToCoins 百分位 0..1 映射到金币 8..35，凹曲线让中段更密集
func percentileToCoins(p float64) int {
	curved := math.Pow(p, percentileExponent)
	coins := consts.CoinMin + int(math.Round(curved*float64(consts.CoinMax-consts.CoinMin)))
	return clampInt(coins, consts.CoinMin, consts.CoinMax)
}

func clampFloat(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
