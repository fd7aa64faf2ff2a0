package site

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// health handles GET /api/health
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// listProjects handles GET /api/projects and returns the resolved cards.
func (s *Server) listProjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"site":     s.catalog.Site,
		"projects": s.catalog.Cards(),
	})
}
