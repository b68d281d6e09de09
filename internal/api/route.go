package api

import (
	"Encore/internal/api/middleware"
	"Encore/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.POST("/verify-email", group.UserHandler.VerifyEmail)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/me", group.UserHandler.GetMe)
			}
		}

		artisteGroup := apiGroup.Group("/artistes")
		{
			artisteGroup.GET("", group.ArtisteHandler.GetPool)
		}

		teamGroup := apiGroup.Group("/team")
		teamGroup.Use(middleware.AuthMiddleware())
		{
			teamGroup.POST("", group.TeamHandler.CreateTeam)
			teamGroup.GET("/me", group.TeamHandler.GetMyTeam)
			teamGroup.PUT("/captain", group.TeamHandler.UpdateCaptain)
		}

		leaderboardGroup := apiGroup.Group("/leaderboard")
		{
			leaderboardGroup.GET("/weekly", group.LeaderboardHandler.GetWeekly)
			leaderboardGroup.GET("/season", group.LeaderboardHandler.GetSeason)
		}
	}

	return r
}
