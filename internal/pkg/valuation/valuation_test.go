package valuation

import (
	"sort"
	"testing"

	"Encore/internal/pkg/consts"
)

func TestCurveCoinsWithinRange(t *testing.T) {
	pops := []int{0, 1, 25, 50, 75, 99, 100}
	followers := []int64{0, 1, 999, 10_000, 123_456, 5_000_000, 10_000_000, 90_000_000}

	for _, p := range pops {
		for _, f := range followers {
			coins := CurveCoins(Metrics{Popularity: p, Followers: f})
			if coins < consts.CoinMin || coins > consts.CoinMax {
				t.Errorf("CurveCoins(pop=%d, followers=%d) = %d, want within [%d,%d]",
					p, f, coins, consts.CoinMin, consts.CoinMax)
			}
		}
	}
}

func TestCurveCoinsBounds(t *testing.T) {
	if got := CurveCoins(Metrics{Popularity: 0, Followers: 0}); got != consts.CoinMin {
		t.Errorf("floor case = %d, want %d", got, consts.CoinMin)
	}
	if got := CurveCoins(Metrics{Popularity: 100, Followers: 10_000_000}); got != consts.CoinMax {
		t.Errorf("ceiling case = %d, want %d", got, consts.CoinMax)
	}
	// pop 50, 100k followers 落在中段
	if got := CurveCoins(Metrics{Popularity: 50, Followers: 100_000}); got != 20 {
		t.Errorf("mid case = %d, want 20", got)
	}
}

func TestCurveCoinsMonotonicInPopularity(t *testing.T) {
	for _, f := range []int64{0, 10_000, 1_000_000, 50_000_000} {
		prev := -1
		for p := 0; p <= 100; p++ {
			coins := CurveCoins(Metrics{Popularity: p, Followers: f})
			if coins < prev {
				t.Fatalf("coins decreased at pop=%d followers=%d: %d < %d", p, f, coins, prev)
			}
			prev = coins
		}
	}
}

func TestCurveCoinsMonotonicInFollowers(t *testing.T) {
	followers := []int64{0, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000}
	for _, p := range []int{0, 40, 80, 100} {
		prev := -1
		for _, f := range followers {
			coins := CurveCoins(Metrics{Popularity: p, Followers: f})
			if coins < prev {
				t.Fatalf("coins decreased at pop=%d followers=%d: %d < %d", p, f, coins, prev)
			}
			prev = coins
		}
	}
}

func TestTieredCoins(t *testing.T) {
	tests := []struct {
		pop  int
		want int
	}{
		{0, 8},
		{9, 8},
		{49, 12},
		{50, 15},
		{65, 18},
		{66, 21},
		{75, 25},
		{76, 26},
		{99, 33},
	}
	for _, tt := range tests {
		if got := TieredCoins(tt.pop); got != tt.want {
			t.Errorf("TieredCoins(%d) = %d, want %d", tt.pop, got, tt.want)
		}
	}
}

func TestPercentileCoinsRankOrder(t *testing.T) {
	pool := []Metrics{
		{Popularity: 90, Followers: 8_000_000},
		{Popularity: 20, Followers: 5_000},
		{Popularity: 55, Followers: 300_000},
		{Popularity: 70, Followers: 1_200_000},
		{Popularity: 35, Followers: 60_000},
	}

	coins := PercentileCoins(pool)
	if len(coins) != len(pool) {
		t.Fatalf("len(coins) = %d, want %d", len(coins), len(pool))
	}

	// 该池的得分顺序与流行度顺序一致，验证金币排序与之匹配
	type pair struct{ pop, coins int }
	pairs := make([]pair, len(pool))
	for i := range pool {
		pairs[i] = pair{pool[i].Popularity, coins[i]}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].pop < pairs[b].pop })
	for i := 1; i < len(pairs); i++ {
		if pairs[i].coins < pairs[i-1].coins {
			t.Errorf("coin order broken: pop=%d got %d coins, pop=%d got %d",
				pairs[i-1].pop, pairs[i-1].coins, pairs[i].pop, pairs[i].coins)
		}
	}

	for i, c := range coins {
		if c < consts.CoinMin || c > consts.CoinMax {
			t.Errorf("coins[%d] = %d out of range", i, c)
		}
	}

	// 最高分拿满 35，最低分拿 8
	if coins[0] != consts.CoinMax {
		t.Errorf("top artiste coins = %d, want %d", coins[0], consts.CoinMax)
	}
	if coins[1] != consts.CoinMin {
		t.Errorf("bottom artiste coins = %d, want %d", coins[1], consts.CoinMin)
	}
}

func TestPercentileCoinsSingleArtiste(t *testing.T) {
	coins := PercentileCoins([]Metrics{{Popularity: 50, Followers: 1000}})
	if len(coins) != 1 || coins[0] != consts.CoinMax {
		t.Errorf("single-artiste pool = %v, want [%d]", coins, consts.CoinMax)
	}
}

func TestPercentileCoinsEmptyPool(t *testing.T) {
	if coins := PercentileCoins(nil); coins != nil {
		t.Errorf("empty pool = %v, want nil", coins)
	}
}

func TestParsePolicy(t *testing.T) {
	for _, s := range []string{"curve", "percentile", "tiered"} {
		if _, err := ParsePolicy(s); err != nil {
			t.Errorf("ParsePolicy(%q) unexpected error: %v", s, err)
		}
	}
	if _, err := ParsePolicy("linear"); err == nil {
		t.Error("ParsePolicy(linear) expected error")
	}
}
