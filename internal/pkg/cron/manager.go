package cron

import (
	"Encore/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine       *cron.Cron
	snapshotJob  *job.SnapshotJob
	scoringJob   *job.ScoringJob
	rebalanceJob *job.RebalanceJob
}

func NewCronManager(snapshotJob *job.SnapshotJob, scoringJob *job.ScoringJob, rebalanceJob *job.RebalanceJob) *Manager {
	return &Manager{
		engine:       cron.New(cron.WithSeconds()),
		snapshotJob:  snapshotJob,
		scoringJob:   scoringJob,
		rebalanceJob: rebalanceJob,
	}
}

// RegisterJobs 注册定时任务
// 快照先行，计分依赖当日快照，估值跟在快照之后
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("0 0 0 * * *", s.snapshotJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("0 30 0 * * *", s.scoringJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("0 45 0 * * *", s.rebalanceJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
