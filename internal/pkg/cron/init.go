package cron

import log "log/slog"

// InitCron 注册快照、计分、估值三个每日任务并启动引擎
func InitCron(mgr *Manager) error {
	log.Info("Cron Jobs starting...")
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	return nil
}
