package main

import (
	"Encore/internal/api/config"
	"Encore/internal/pkg/logger"
	"Encore/internal/pkg/mongo"
	"Encore/internal/repository"
	"Encore/internal/service"
	"context"
	log "log/slog"
	"os"
	"time"
)

// 手动触发一次每日结算
// 结算不幂等，同一天重复执行会重复加分，补跑前先确认当天没有跑过
func main() {
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		os.Exit(1)
	}
	logger.InitLogger()

	db, err := mongo.InitMongo(config.Cfg.Mongo)
	if err != nil {
		log.Error("Fatal error: failed to create mongo connection", "err", err)
		os.Exit(1)
	}

	svc := service.NewScoringService(
		repository.NewTeamRepo(db),
		repository.NewArtisteStatRepo(db),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	summary, err := svc.RunDailyScoring(ctx, time.Now())
	if err != nil {
		log.Error("scoring run failed", "err", err)
		os.Exit(1)
	}

	// 单队失败已被隔离并计入 failed，整轮仍视为完成，不影响退出码
	log.Info("scoring run finished",
		"day", summary.DayKey,
		"week", summary.WeekKey,
		"touched", summary.Touched,
		"updated", summary.Updated,
		"bootstrapped", summary.Bootstrapped,
		"failed", summary.Failed)
}
