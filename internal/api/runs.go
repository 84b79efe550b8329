package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/erichartline/fantrax-scripts/internal/matcher"
	"github.com/erichartline/fantrax-scripts/internal/store"
)

// ListRuns 按时间倒序列出最近的运行
// GET /api/runs?limit=50
func (h *Handler) ListRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	runs, err := h.store.ListRuns(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if runs == nil {
		runs = []store.RunSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"items": runs})
}

type runDetailResponse struct {
	Run  store.RunSummary    `json:"run"`
	Rows []matcher.OutputRow `json:"rows"`
}

// GetRun 取回单次运行及其报表行
// GET /api/runs/:id
func (h *Handler) GetRun(c *gin.Context) {
	id := c.Param("id")

	run, rows, err := h.store.GetRun(id)
	if errors.Is(err, store.ErrRunNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "运行记录不存在"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rows == nil {
		rows = []matcher.OutputRow{}
	}
	c.JSON(http.StatusOK, runDetailResponse{Run: *run, Rows: rows})
}
