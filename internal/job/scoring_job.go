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

type ScoringJob struct {
	scoringService service.ScoringService
}

func NewScoringJob(scoringService service.ScoringService) *ScoringJob {
	return &ScoringJob{
		scoringService: scoringService,
	}
}

func (s *ScoringJob) Run() {
	traceID := "job-scoring-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	now := time.Now()
	// 计分不幂等，同一天重复执行会重复加分，当日锁必须先拿到
	lockKey := consts.ScoringRunLock + util.DayKey(now)
	ok, err := redis.SetNX(ctx, lockKey, traceID, 23*time.Hour)
	if err != nil {
		log.ErrorContext(ctx, "acquire scoring lock error", "err", err)
		return
	}
	if !ok {
		log.InfoContext(ctx, "scoring already ran today", "day", util.DayKey(now))
		return
	}

	summary, err := s.scoringService.RunDailyScoring(ctx, now)
	if err != nil {
		log.ErrorContext(ctx, "ScoringJob failed", "err", err)
		return
	}

	log.InfoContext(ctx, "ScoringJob finished",
		"day", summary.DayKey,
		"week", summary.WeekKey,
		"touched", summary.Touched,
		"updated", summary.Updated,
		"bootstrapped", summary.Bootstrapped,
		"failed", summary.Failed)
}
