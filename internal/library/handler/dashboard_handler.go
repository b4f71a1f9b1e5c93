package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"libraryhub/internal/library/service"
)

type DashboardHandler struct {
	svc service.StatsService
}

func NewDashboardHandler(svc service.StatsService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.Stats)
}

// Stats serves every figure the dashboard shows in one payload.
func (h *DashboardHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Summary())
}
