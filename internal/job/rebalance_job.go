package job

import (
	"Encore/internal/api/config"
	"Encore/internal/pkg/logger"
	"Encore/internal/pkg/valuation"
	"Encore/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

type RebalanceJob struct {
	valuationService service.ValuationService
}

func NewRebalanceJob(valuationService service.ValuationService) *RebalanceJob {
	return &RebalanceJob{
		valuationService: valuationService,
	}
}

func (s *RebalanceJob) Run() {
	traceID := "job-rebalance-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	policy, err := valuation.ParsePolicy(config.Cfg.Valuation.Policy)
	if err != nil {
		log.ErrorContext(ctx, "invalid valuation policy in config",
			"policy", config.Cfg.Valuation.Policy, "err", err)
		return
	}

	summary, err := s.valuationService.Rebalance(ctx, policy)
	if err != nil {
		log.ErrorContext(ctx, "RebalanceJob failed", "err", err)
		return
	}

	log.InfoContext(ctx, "RebalanceJob finished",
		"policy", summary.Policy,
		"total", summary.Total,
		"changed", summary.Changed,
		"written", summary.Written)
}
