package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zvrva/flightlog/internal/service/stats"
)

type StatsHandler struct {
	service stats.UseCase
}

func NewStatsHandler(service stats.UseCase) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) Register(router *gin.RouterGroup) {
	router.GET("/stats", h.get)
}

func (h *StatsHandler) get(c *gin.Context) {
	ownerID := c.GetHeader("X-Owner-ID")
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing owner"})
		return
	}

	view, err := h.service.Compute(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}
