package service

import (
	"Encore/internal/model"
	"Encore/internal/pkg/consts"
	"Encore/internal/pkg/spotify"
	"Encore/internal/pkg/util"
	"Encore/internal/repository"
	"context"
	log "log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// snapshotParallelism 同时在途的 Spotify 批次数量
const snapshotParallelism = 4

// SnapshotSummary 一次快照任务的汇总结果
type SnapshotSummary struct {
	DayKey        string
	Artistes      int   // 活跃艺人总数
	Batches       int   // 划分的批次数
	FailedBatches int   // 拉取或落库失败的批次数
	Saved         int64 // 新增加更新的快照条数
	Skipped       int   // 本地目录没有对应映射的外部 id 数
}

type SnapshotService interface {
	RunDailySnapshot(ctx context.Context, now time.Time) (*SnapshotSummary, error)
}

type snapshotServiceImpl struct {
	artisteRepo repository.ArtisteRepo
	statRepo    repository.ArtisteStatRepo
	spotifyCli  *spotify.Client
}

func NewSnapshotService(artisteRepo repository.ArtisteRepo, statRepo repository.ArtisteStatRepo, spotifyCli *spotify.Client) SnapshotService {
	return &snapshotServiceImpl{
		artisteRepo: artisteRepo,
		statRepo:    statRepo,
		spotifyCli:  spotifyCli,
	}
}

// RunDailySnapshot 拉取全部活跃艺人的当前指标并按 (artiste, day) 幂等落库
// 单批失败不影响其余批次
func (s *snapshotServiceImpl) RunDailySnapshot(ctx context.Context, now time.Time) (*SnapshotSummary, error) {
	summary := &SnapshotSummary{DayKey: util.DayKey(now)}

	artistes, err := s.artisteRepo.GetActiveArtistes(ctx)
	if err != nil {
		return nil, err
	}
	summary.Artistes = len(artistes)
	if len(artistes) == 0 {
		return summary, nil
	}

	// spotifyId -> 本地艺人
	byExternalID := make(map[string]*model.Artiste, len(artistes))
	spotifyIDs := make([]string, 0, len(artistes))
	for _, a := range artistes {
		byExternalID[a.SpotifyID] = a
		spotifyIDs = append(spotifyIDs, a.SpotifyID)
	}

	batches := util.Chunk(spotifyIDs, consts.SpotifyBatchLimit)
	summary.Batches = len(batches)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(snapshotParallelism)

	for _, batch := range batches {
		batch := batch
		g.Go(func() error {
			saved, skipped, err := s.importBatch(gctx, batch, byExternalID, summary.DayKey)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				// 隔离批次失败，继续处理其余批次
				summary.FailedBatches++
				log.ErrorContext(gctx, "snapshot batch failed",
					"batch_size", len(batch), "err", err)
				return nil
			}
			summary.Saved += saved
			summary.Skipped += skipped
			return nil
		})
	}

	_ = g.Wait()
	return summary, nil
}

func (s *snapshotServiceImpl) importBatch(ctx context.Context, ids []string, byExternalID map[string]*model.Artiste, day string) (int64, int, error) {
	external, err := s.spotifyCli.GetSeveralArtists(ctx, ids)
	if err != nil {
		return 0, 0, err
	}

	skipped := 0
	stats := make([]*model.ArtisteDailyStat, 0, len(external))
	for _, sa := range external {
		artiste, ok := byExternalID[sa.ID]
		if !ok {
			// 外部 id 在本地目录没有映射，静默跳过
			skipped++
			continue
		}

		stats = append(stats, &model.ArtisteDailyStat{
			ArtisteID:  artiste.ID,
			Day:        day,
			Popularity: sa.Popularity,
			Followers:  sa.Followers.Total,
		})

		// 同步镜像到艺人主记录，估值批处理读这里；计分只读快照
		if err := s.artisteRepo.UpdateLiveMetrics(ctx, artiste.ID, sa.Popularity, sa.Followers.Total); err != nil {
			log.WarnContext(ctx, "mirror live metrics failed",
				"artiste_id", artiste.ID.Hex(), "err", err)
		}
	}

	saved, err := s.statRepo.BulkUpsert(ctx, stats)
	if err != nil {
		return 0, skipped, err
	}
	return saved, skipped, nil
}
