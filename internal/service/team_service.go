package service

import (
	"Encore/internal/api/dto"
	"Encore/internal/model"
	"Encore/internal/pkg/consts"
	"Encore/internal/repository"
	"context"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TeamService interface {
	CreateTeam(ctx context.Context, userID string, createDTO *dto.CreateTeamDTO) (*dto.CreateTeamResultDTO, error)
	GetMyTeam(ctx context.Context, userID string) (*dto.TeamDTO, error)
	UpdateCaptain(ctx context.Context, userID string, captainID string) error
}

type teamServiceImpl struct {
	teamRepo    repository.TeamRepo
	artisteRepo repository.ArtisteRepo
}

func NewTeamService(teamRepo repository.TeamRepo, artisteRepo repository.ArtisteRepo) TeamService {
	return &teamServiceImpl{
		teamRepo:    teamRepo,
		artisteRepo: artisteRepo,
	}
}

func (s *teamServiceImpl) CreateTeam(ctx context.Context, userID string, createDTO *dto.CreateTeamDTO) (*dto.CreateTeamResultDTO, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrParamInvalid
	}

	if len(createDTO.ArtisteIDs) != consts.TeamSize {
		return nil, ErrTeamSize
	}

	artisteIDs := make([]primitive.ObjectID, 0, consts.TeamSize)
	seen := make(map[primitive.ObjectID]struct{}, consts.TeamSize)
	for _, raw := range createDTO.ArtisteIDs {
		oid, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, ErrArtisteInvalid
		}
		if _, dup := seen[oid]; dup {
			return nil, ErrTeamDuplicateArtiste
		}
		seen[oid] = struct{}{}
		artisteIDs = append(artisteIDs, oid)
	}

	captainID, err := primitive.ObjectIDFromHex(createDTO.CaptainID)
	if err != nil {
		return nil, ErrArtisteInvalid
	}
	if _, ok := seen[captainID]; !ok {
		return nil, ErrCaptainNotInTeam
	}

	existing, err := s.teamRepo.GetTeamByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTeamExists
	}

	// 校验艺人存在且活跃，同时结算金币
	artistes, err := s.artisteRepo.GetActiveByIDs(ctx, artisteIDs)
	if err != nil {
		return nil, err
	}
	if len(artistes) != consts.TeamSize {
		return nil, ErrArtisteInvalid
	}

	coinsUsed := 0
	for _, a := range artistes {
		coinsUsed += a.CoinValue
	}
	if coinsUsed > consts.MaxCoins {
		return nil, ErrCoinLimitExceeded
	}

	team := &model.Team{
		UserID:     uid,
		ArtisteIDs: artisteIDs,
		CaptainID:  captainID,
		CoinsUsed:  coinsUsed,
	}

	if err = s.teamRepo.CreateTeam(ctx, team); err != nil {
		// user_id 唯一索引兜底并发建队
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrTeamExists
		}
		return nil, err
	}

	return &dto.CreateTeamResultDTO{
		TeamID:    team.ID.Hex(),
		CoinsUsed: coinsUsed,
	}, nil
}

func (s *teamServiceImpl) GetMyTeam(ctx context.Context, userID string) (*dto.TeamDTO, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrParamInvalid
	}

	team, err := s.teamRepo.GetTeamByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	// 不按活跃状态过滤，已下架的艺人仍要留在阵容里展示
	artistes, err := s.artisteRepo.GetByIDs(ctx, team.ArtisteIDs)
	if err != nil {
		return nil, err
	}

	teamDTO := &dto.TeamDTO{
		ID:               team.ID.Hex(),
		UserID:           team.UserID.Hex(),
		CoinsUsed:        team.CoinsUsed,
		WeeklyPoints:     team.WeeklyPoints,
		SeasonPoints:     team.SeasonPoints,
		CurrentWeekKey:   team.CurrentWeekKey,
		LastCalculatedAt: team.LastCalculatedAt,
		Artistes:         make([]dto.ArtisteDTO, 0, len(artistes)),
	}

	for _, a := range artistes {
		var artisteDTO dto.ArtisteDTO
		if err := copier.Copy(&artisteDTO, a); err != nil {
			return nil, err
		}
		artisteDTO.ID = a.ID.Hex()
		teamDTO.Artistes = append(teamDTO.Artistes, artisteDTO)

		if a.ID == team.CaptainID {
			captain := artisteDTO
			teamDTO.Captain = &captain
		}
	}

	return teamDTO, nil
}

func (s *teamServiceImpl) UpdateCaptain(ctx context.Context, userID string, captainID string) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrParamInvalid
	}
	cid, err := primitive.ObjectIDFromHex(captainID)
	if err != nil {
		return ErrCaptainNotInTeam
	}

	team, err := s.teamRepo.GetTeamByUserID(ctx, uid)
	if err != nil {
		return err
	}
	if team == nil {
		return ErrTeamNotFound
	}

	inTeam := false
	for _, id := range team.ArtisteIDs {
		if id == cid {
			inTeam = true
			break
		}
	}
	if !inTeam {
		return ErrCaptainNotInTeam
	}

	return s.teamRepo.UpdateCaptain(ctx, team.ID, cid)
}
