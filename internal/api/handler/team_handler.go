package handler

import (
	"Encore/internal/api/dto"
	"Encore/internal/pkg/response"
	"Encore/internal/pkg/util"
	"Encore/internal/service"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamSvc service.TeamService
}

func NewTeamHandler(teamSvc service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamSvc: teamSvc,
	}
}

func (s *TeamHandler) CreateTeam(c *gin.Context) {
	userID := c.GetString("user_id")
	var createDTO dto.CreateTeamDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.teamSvc.CreateTeam(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *TeamHandler) GetMyTeam(c *gin.Context) {
	userID := c.GetString("user_id")
	teamDTO, err := s.teamSvc.GetMyTeam(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, teamDTO)
}

func (s *TeamHandler) UpdateCaptain(c *gin.Context) {
	userID := c.GetString("user_id")
	var captainDTO dto.UpdateCaptainDTO
	err := c.ShouldBind(&captainDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&captainDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.teamSvc.UpdateCaptain(c.Request.Context(), userID, captainDTO.CaptainID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
