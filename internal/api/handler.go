package api

import (
	"github.com/gin-gonic/gin"

	"github.com/erichartline/fantrax-scripts/internal/config"
	"github.com/erichartline/fantrax-scripts/internal/store"
)

// Handler API 处理器
type Handler struct {
	store     *store.Store
	cfg       *config.AppConfig
	dataDir   string
	downloads *downloadStore
}

// NewHandler 创建 API 处理器
func NewHandler(store *store.Store, cfg *config.AppConfig, dataDir string) *Handler {
	return &Handler{
		store:     store,
		cfg:       cfg,
		dataDir:   dataDir,
		downloads: newDownloadStore(),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 匹配
	router.POST("/reconcile", h.Reconcile)

	// 运行日志
	router.GET("/runs", h.ListRuns)
	router.GET("/runs/:id", h.GetRun)

	// 报表下载
	router.GET("/download/:token", h.Download)

	// 配置管理
	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)
}
