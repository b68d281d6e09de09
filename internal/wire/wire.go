package wire

import (
	"Encore/internal/api"
	"Encore/internal/api/config"
	"Encore/internal/api/handler"
	"Encore/internal/job"
	cronmgr "Encore/internal/pkg/cron"
	"Encore/internal/pkg/email"
	"Encore/internal/pkg/spotify"
	"Encore/internal/repository"
	"Encore/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *mongo.Database
	CronMgr *cronmgr.Manager
}

func BuildApplication(db *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	artisteRepo := repository.NewArtisteRepo(db)
	teamRepo := repository.NewTeamRepo(db)
	statRepo := repository.NewArtisteStatRepo(db)

	spotifyCli := spotify.NewClient(cfg.Spotify)
	sender := email.NewSender(cfg.SendGrid)

	userService := service.NewUserService(userRepo, sender)
	artisteService := service.NewArtisteService(artisteRepo)
	teamService := service.NewTeamService(teamRepo, artisteRepo)
	leaderboardService := service.NewLeaderboardService(teamRepo, userRepo, artisteRepo)
	snapshotService := service.NewSnapshotService(artisteRepo, statRepo, spotifyCli)
	scoringService := service.NewScoringService(teamRepo, statRepo)
	valuationService := service.NewValuationService(artisteRepo)

	handlers := &api.HandlersGroup{
		UserHandler:        handler.NewUserHandler(userService),
		TeamHandler:        handler.NewTeamHandler(teamService),
		ArtisteHandler:     handler.NewArtisteHandler(artisteService),
		LeaderboardHandler: handler.NewLeaderboardHandler(leaderboardService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cronmgr.NewCronManager(
		job.NewSnapshotJob(snapshotService),
		job.NewScoringJob(scoringService),
		job.NewRebalanceJob(valuationService),
	)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
