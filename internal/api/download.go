package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// Download 按令牌下载匹配报表
// GET /api/download/:token
func (h *Handler) Download(c *gin.Context) {
	token := c.Param("token")

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载链接不存在或已过期"})
		return
	}
	if _, err := os.Stat(item.filePath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "报表文件已被清理"})
		return
	}

	c.FileAttachment(item.filePath, filepath.Base(item.filePath))
}
