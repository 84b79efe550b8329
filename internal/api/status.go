package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态
type StatusResponse struct {
	TotalRuns   int    `json:"totalRuns"`
	LastRunTime string `json:"lastRunTime"`
	DataDir     string `json:"dataDir"`
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	total, err := h.store.CountRuns()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	lastRun := ""
	if runs, err := h.store.ListRuns(1); err == nil && len(runs) > 0 {
		lastRun = runs[0].CreatedAt.Format("2006-01-02 15:04:05")
	}

	c.JSON(http.StatusOK, StatusResponse{
		TotalRuns:   total,
		LastRunTime: lastRun,
		DataDir:     h.dataDir,
	})
}
