package service

import (
	"Encore/internal/api/dto"
	"Encore/internal/model"
	"Encore/internal/repository"
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeTeamStore struct {
	repository.TeamRepo
	existing *model.Team
	created  *model.Team
}

func (f *fakeTeamStore) GetTeamByUserID(ctx context.Context, userID primitive.ObjectID) (*model.Team, error) {
	return f.existing, nil
}

func (f *fakeTeamStore) CreateTeam(ctx context.Context, team *model.Team) error {
	team.ID = primitive.NewObjectID()
	f.created = team
	return nil
}

func (f *fakeTeamStore) UpdateCaptain(ctx context.Context, teamID, captainID primitive.ObjectID) error {
	f.existing.CaptainID = captainID
	return nil
}

type fakeArtisteStore struct {
	repository.ArtisteRepo
	artistes map[primitive.ObjectID]*model.Artiste
}

func (f *fakeArtisteStore) GetActiveByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Artiste, error) {
	var out []*model.Artiste
	for _, id := range ids {
		if a, ok := f.artistes[id]; ok && a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeArtisteStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Artiste, error) {
	var out []*model.Artiste
	for _, id := range ids {
		if a, ok := f.artistes[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func newRoster(coins ...int) (*fakeArtisteStore, []string) {
	store := &fakeArtisteStore{artistes: make(map[primitive.ObjectID]*model.Artiste)}
	ids := make([]string, 0, len(coins))
	for i, c := range coins {
		id := primitive.NewObjectID()
		store.artistes[id] = &model.Artiste{ID: id, Name: string(rune('A' + i)), CoinValue: c, IsActive: true}
		ids = append(ids, id.Hex())
	}
	return store, ids
}

func TestCreateTeam(t *testing.T) {
	userID := primitive.NewObjectID().Hex()

	t.Run("valid team within budget", func(t *testing.T) {
		artisteStore, ids := newRoster(30, 25, 20, 15, 10)
		teamStore := &fakeTeamStore{}
		svc := NewTeamService(teamStore, artisteStore)

		result, err := svc.CreateTeam(context.Background(), userID, &dto.CreateTeamDTO{
			ArtisteIDs: ids,
			CaptainID:  ids[0],
		})
		if err != nil {
			t.Fatalf("CreateTeam() error = %v", err)
		}
		if result.CoinsUsed != 100 {
			t.Errorf("CoinsUsed = %d, want 100", result.CoinsUsed)
		}
		if teamStore.created == nil {
			t.Fatal("team was not persisted")
		}
		if teamStore.created.CaptainID.Hex() != ids[0] {
			t.Errorf("captain = %s, want %s", teamStore.created.CaptainID.Hex(), ids[0])
		}
	})

	tests := []struct {
		name    string
		setup   func() (*fakeArtisteStore, *dto.CreateTeamDTO)
		wantErr error
	}{
		{
			name: "over budget",
			setup: func() (*fakeArtisteStore, *dto.CreateTeamDTO) {
				store, ids := newRoster(30, 25, 20, 15, 11)
				return store, &dto.CreateTeamDTO{ArtisteIDs: ids, CaptainID: ids[0]}
			},
			wantErr: ErrCoinLimitExceeded,
		},
		{
			name: "wrong size",
			setup: func() (*fakeArtisteStore, *dto.CreateTeamDTO) {
				store, ids := newRoster(10, 10, 10)
				return store, &dto.CreateTeamDTO{ArtisteIDs: ids, CaptainID: ids[0]}
			},
			wantErr: ErrTeamSize,
		},
		{
			name: "duplicate artiste",
			setup: func() (*fakeArtisteStore, *dto.CreateTeamDTO) {
				store, ids := newRoster(10, 10, 10, 10)
				dup := append(ids, ids[0])
				return store, &dto.CreateTeamDTO{ArtisteIDs: dup, CaptainID: ids[0]}
			},
			wantErr: ErrTeamDuplicateArtiste,
		},
		{
			name: "captain outside team",
			setup: func() (*fakeArtisteStore, *dto.CreateTeamDTO) {
				store, ids := newRoster(10, 10, 10, 10, 10)
				return store, &dto.CreateTeamDTO{ArtisteIDs: ids, CaptainID: primitive.NewObjectID().Hex()}
			},
			wantErr: ErrCaptainNotInTeam,
		},
		{
			name: "unknown artiste id",
			setup: func() (*fakeArtisteStore, *dto.CreateTeamDTO) {
				store, ids := newRoster(10, 10, 10, 10)
				ghost := primitive.NewObjectID().Hex()
				return store, &dto.CreateTeamDTO{ArtisteIDs: append(ids, ghost), CaptainID: ids[0]}
			},
			wantErr: ErrArtisteInvalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artisteStore, createDTO := tt.setup()
			svc := NewTeamService(&fakeTeamStore{}, artisteStore)
			_, err := svc.CreateTeam(context.Background(), userID, createDTO)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateTeam() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("second team rejected", func(t *testing.T) {
		artisteStore, ids := newRoster(10, 10, 10, 10, 10)
		teamStore := &fakeTeamStore{existing: &model.Team{ID: primitive.NewObjectID()}}
		svc := NewTeamService(teamStore, artisteStore)

		_, err := svc.CreateTeam(context.Background(), userID, &dto.CreateTeamDTO{
			ArtisteIDs: ids,
			CaptainID:  ids[0],
		})
		if !errors.Is(err, ErrTeamExists) {
			t.Errorf("CreateTeam() error = %v, want %v", err, ErrTeamExists)
		}
	})
}

func TestGetMyTeam(t *testing.T) {
	userID := primitive.NewObjectID()
	artisteStore, ids := newRoster(30, 25, 20, 15, 10)

	// 队长赛后被下架，阵容展示不能丢人
	captainID, _ := primitive.ObjectIDFromHex(ids[0])
	artisteStore.artistes[captainID].IsActive = false

	roster := make([]primitive.ObjectID, 0, len(ids))
	for _, raw := range ids {
		oid, _ := primitive.ObjectIDFromHex(raw)
		roster = append(roster, oid)
	}

	teamStore := &fakeTeamStore{existing: &model.Team{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		ArtisteIDs: roster,
		CaptainID:  captainID,
		CoinsUsed:  100,
	}}

	svc := NewTeamService(teamStore, artisteStore)
	teamDTO, err := svc.GetMyTeam(context.Background(), userID.Hex())
	if err != nil {
		t.Fatalf("GetMyTeam() error = %v", err)
	}
	if len(teamDTO.Artistes) != 5 {
		t.Errorf("roster size = %d, want 5 (deactivated artiste must stay)", len(teamDTO.Artistes))
	}
	if teamDTO.Captain == nil {
		t.Fatal("captain missing from response")
	}
	if teamDTO.Captain.ID != ids[0] {
		t.Errorf("captain id = %s, want %s", teamDTO.Captain.ID, ids[0])
	}
}

func TestUpdateCaptain(t *testing.T) {
	userID := primitive.NewObjectID()
	inTeam := primitive.NewObjectID()
	outside := primitive.NewObjectID()

	team := &model.Team{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		ArtisteIDs: []primitive.ObjectID{inTeam},
		CaptainID:  inTeam,
	}
	teamStore := &fakeTeamStore{existing: team}
	svc := NewTeamService(teamStore, &fakeArtisteStore{})

	if err := svc.UpdateCaptain(context.Background(), userID.Hex(), outside.Hex()); !errors.Is(err, ErrCaptainNotInTeam) {
		t.Errorf("UpdateCaptain(outside) error = %v, want %v", err, ErrCaptainNotInTeam)
	}

	if err := svc.UpdateCaptain(context.Background(), userID.Hex(), inTeam.Hex()); err != nil {
		t.Errorf("UpdateCaptain(member) error = %v", err)
	}
}
