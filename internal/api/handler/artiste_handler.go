package handler

import (
	"Encore/internal/pkg/response"
	"Encore/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ArtisteHandler struct {
	artisteSvc service.ArtisteService
}

func NewArtisteHandler(artisteSvc service.ArtisteService) *ArtisteHandler {
	return &ArtisteHandler{
		artisteSvc: artisteSvc,
	}
}

// GetPool 可选秀艺人池，支持 search 与 limit 查询参数
func (s *ArtisteHandler) GetPool(c *gin.Context) {
	search := c.Query("search")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	pool, err := s.artisteSvc.GetPool(c.Request.Context(), search, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pool)
}
