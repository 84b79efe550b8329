package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erichartline/fantrax-scripts/internal/config"
)

// GetConfig 获取当前配置
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"server":  h.cfg.Server,
		"mapping": h.cfg.Mapping,
	})
}

type updateConfigRequest struct {
	Mapping *config.MappingConfig `json:"mapping"`
}

// UpdateConfig 更新角色映射配置并写回 config.toml
// PATCH /api/config
func (h *Handler) UpdateConfig(c *gin.Context) {
	var req updateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if req.Mapping == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 mapping 字段"})
		return
	}

	h.cfg.Mapping = *req.Mapping
	if err := config.SaveConfig(h.cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mapping": h.cfg.Mapping})
}
