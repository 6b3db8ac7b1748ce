package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) adminStats(c *gin.Context) {
	stats, err := s.repo.Visitors.Stats(c.Request.Context(), time.Now().UTC())
	if err != nil {
		s.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
