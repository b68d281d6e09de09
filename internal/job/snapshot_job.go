package job

import (
	"Encore/internal/pkg/consts"
	"Encore/internal/pkg/logger"
	"Encore/internal/pkg/redis"
	"Encore/internal/pkg/util"
	"Encore/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

type SnapshotJob struct {
	snapshotService service.SnapshotService
}

func NewSnapshotJob(snapshotService service.SnapshotService) *SnapshotJob {
	return &SnapshotJob{
		snapshotService: snapshotService,
	}
}

func (s *SnapshotJob) Run() {
	traceID := "job-snapshot-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	now := time.Now()
	// 当日锁防重入，多实例部署只有一个实例执行
	lockKey := consts.SnapshotRunLock + util.DayKey(now)
	ok, err := redis.SetNX(ctx, lockKey, traceID, 23*time.Hour)
	if err != nil {
		log.ErrorContext(ctx, "acquire snapshot lock error", "err", err)
		return
	}
	if !ok {
		log.InfoContext(ctx, "snapshot already ran today", "day", util.DayKey(now))
		return
	}

	summary, err := s.snapshotService.RunDailySnapshot(ctx, now)
	if err != nil {
		log.ErrorContext(ctx, "SnapshotJob failed", "err", err)
		return
	}

	log.InfoContext(ctx, "SnapshotJob finished",
		"day", summary.DayKey,
		"artistes", summary.Artistes,
		"batches", summary.Batches,
		"failed_batches", summary.FailedBatches,
		"saved", summary.Saved,
		"skipped", summary.Skipped)
}
