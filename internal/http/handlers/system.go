package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"stations": len(a.Catalog.ListStations()),
		"trains":   len(a.Catalog.ListTrains()),
	})
}
