package main

import (
	"Encore/internal/api/config"
	"Encore/internal/pkg/logger"
	"Encore/internal/pkg/mongo"
	"Encore/internal/pkg/spotify"
	"Encore/internal/repository"
	"Encore/internal/service"
	"context"
	log "log/slog"
	"os"
	"time"
)

// 手动触发一次每日快照，供运维补采和首次初始化使用
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

	svc := service.NewSnapshotService(
		repository.NewArtisteRepo(db),
		repository.NewArtisteStatRepo(db),
		spotify.NewClient(config.Cfg.Spotify),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	summary, err := svc.RunDailySnapshot(ctx, time.Now())
	if err != nil {
		log.Error("snapshot run failed", "err", err)
		os.Exit(1)
	}

	// 单批失败已被隔离并计入 failed_batches，整轮仍视为完成，不影响退出码
	log.Info("snapshot run finished",
		"day", summary.DayKey,
		"artistes", summary.Artistes,
		"batches", summary.Batches,
		"failed_batches", summary.FailedBatches,
		"saved", summary.Saved,
		"skipped", summary.Skipped)
}
