package service

import (
	"Encore/internal/api/dto"
	"Encore/internal/pkg/consts"
	"Encore/internal/pkg/redis"
	"Encore/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

// poolCacheTTL 默认列表的缓存时间，带搜索词的查询不走缓存
const poolCacheTTL = 5 * time.Minute

type ArtisteService interface {
	GetPool(ctx context.Context, search string, limit int) ([]dto.ArtisteDTO, error)
}

type artisteServiceImpl struct {
	artisteRepo repository.ArtisteRepo
}

func NewArtisteService(artisteRepo repository.ArtisteRepo) ArtisteService {
	return &artisteServiceImpl{
		artisteRepo: artisteRepo,
	}
}

// GetPool 可选秀艺人池，按流行度降序，可选名称模糊搜索
func (s *artisteServiceImpl) GetPool(ctx context.Context, search string, limit int) ([]dto.ArtisteDTO, error) {
	if limit <= 0 {
		limit = consts.ArtistePoolDefaultLimit
	}
	if limit > consts.ArtistePoolMaxLimit {
		limit = consts.ArtistePoolMaxLimit
	}

	cacheKey := ""
	if search == "" {
		cacheKey = fmt.Sprintf("%s%d", consts.ArtistePoolKey, limit)
		if cached, err := redis.GetValue(ctx, cacheKey); err == nil && cached != "" {
			var pool []dto.ArtisteDTO
			if err := json.Unmarshal([]byte(cached), &pool); err == nil {
				return pool, nil
			}
		}
	}

	artistes, err := s.artisteRepo.SearchActive(ctx, search, limit)
	if err != nil {
		return nil, err
	}

	pool := make([]dto.ArtisteDTO, 0, len(artistes))
	for _, a := range artistes {
		var artisteDTO dto.ArtisteDTO
		if err := copier.Copy(&artisteDTO, a); err != nil {
			return nil, err
		}
		artisteDTO.ID = a.ID.Hex()
		pool = append(pool, artisteDTO)
	}

	if cacheKey != "" {
		if payload, err := json.Marshal(pool); err == nil {
			if err := redis.SetWithExpiration(ctx, cacheKey, payload, poolCacheTTL); err != nil {
				log.WarnContext(ctx, "cache artiste pool failed", "key", cacheKey, "err", err)
			}
		}
	}
	return pool, nil
}
