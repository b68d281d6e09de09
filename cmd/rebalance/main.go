package main

import (
	"Encore/internal/api/config"
	"Encore/internal/pkg/logger"
	"Encore/internal/pkg/mongo"
	"Encore/internal/pkg/valuation"
	"Encore/internal/repository"
	"Encore/internal/service"
	"context"
	"flag"
	log "log/slog"
	"os"
	"time"
)

// 手动触发一次金币估值重算，-policy 覆盖配置里的策略
func main() {
	policyFlag := flag.String("policy", "", "valuation policy: curve / percentile / tiered (defaults to config)")
	flag.Parse()

	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		os.Exit(1)
	}
	logger.InitLogger()

	policyName := *policyFlag
	if policyName == "" {
		policyName = config.Cfg.Valuation.Policy
	}
	policy, err := valuation.ParsePolicy(policyName)
	if err != nil {
		log.Error("invalid valuation policy", "policy", policyName, "err", err)
		os.Exit(1)
	}

	db, err := mongo.InitMongo(config.Cfg.Mongo)
	if err != nil {
		log.Error("Fatal error: failed to create mongo connection", "err", err)
		os.Exit(1)
	}

	svc := service.NewValuationService(repository.NewArtisteRepo(db))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	summary, err := svc.Rebalance(ctx, policy)
	if err != nil {
		log.Error("rebalance run failed", "err", err)
		os.Exit(1)
	}

	log.Info("rebalance run finished",
		"policy", summary.Policy,
		"total", summary.Total,
		"changed", summary.Changed,
		"written", summary.Written)
}
