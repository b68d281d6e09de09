package service

import (
	"Encore/internal/pkg/valuation"
	"Encore/internal/repository"
	"context"
	log "log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RebalanceSummary 一次估值重算的汇总结果
type RebalanceSummary struct {
	Policy  valuation.Policy
	Total   int   // 活跃艺人总数
	Changed int   // 金币与当前值不同的艺人数
	Written int64 // 实际写回条数
}

type ValuationService interface {
	Rebalance(ctx context.Context, policy valuation.Policy) (*RebalanceSummary, error)
}

type valuationServiceImpl struct {
	artisteRepo repository.ArtisteRepo
}

func NewValuationService(artisteRepo repository.ArtisteRepo) ValuationService {
	return &valuationServiceImpl{
		artisteRepo: artisteRepo,
	}
}

// Rebalance 按策略重算活跃池金币，仅回写发生变化的艺人
// percentile 策略是池内相对估值，必须整池一次性计算
func (s *valuationServiceImpl) Rebalance(ctx context.Context, policy valuation.Policy) (*RebalanceSummary, error) {
	summary := &RebalanceSummary{Policy: policy}

	artistes, err := s.artisteRepo.GetActiveArtistes(ctx)
	if err != nil {
		return nil, err
	}
	summary.Total = len(artistes)
	if len(artistes) == 0 {
		return summary, nil
	}

	coins := make([]int, len(artistes))
	switch policy {
	case valuation.PolicyPercentile:
		pool := make([]valuation.Metrics, len(artistes))
		for i, a := range artistes {
			pool[i] = valuation.Metrics{Popularity: a.Popularity, Followers: a.Followers}
		}
		coins = valuation.PercentileCoins(pool)
	case valuation.PolicyTiered:
		for i, a := range artistes {
			coins[i] = valuation.TieredCoins(a.Popularity)
		}
	case valuation.PolicyCurve:
		for i, a := range artistes {
			coins[i] = valuation.CurveCoins(valuation.Metrics{Popularity: a.Popularity, Followers: a.Followers})
		}
	default:
		return nil, valuation.ErrUnknownPolicy
	}

	changes := make(map[primitive.ObjectID]int)
	for i, a := range artistes {
		if a.CoinValue != coins[i] {
			changes[a.ID] = coins[i]
		}
	}
	summary.Changed = len(changes)

	if len(changes) == 0 {
		log.InfoContext(ctx, "rebalance no-op", "policy", policy, "total", summary.Total)
		return summary, nil
	}

	written, err := s.artisteRepo.BulkUpdateCoinValues(ctx, changes)
	if err != nil {
		return nil, err
	}
	summary.Written = written

	log.InfoContext(ctx, "rebalance done",
		"policy", policy, "total", summary.Total,
		"changed", summary.Changed, "written", written)
	return summary, nil
}
