package api

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/erichartline/fantrax-scripts/internal/exporter"
	"github.com/erichartline/fantrax-scripts/internal/matcher"
	"github.com/erichartline/fantrax-scripts/internal/model"
	"github.com/erichartline/fantrax-scripts/internal/parser"
)

const downloadTTL = 10 * time.Minute

// ReconcileResponse 匹配接口的响应
type ReconcileResponse struct {
	Report        model.RunReport     `json:"report"`
	Rows          []matcher.OutputRow `json:"rows"`
	DownloadToken string              `json:"downloadToken"`
}

// Reconcile 上传 IBW 榜单与 Fantrax 名单并执行匹配
// POST /api/reconcile (multipart: ibw, fantrax[, noHeader])
func (h *Handler) Reconcile(c *gin.Context) {
	started := time.Now()

	ibwFile, err := c.FormFile("ibw")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 IBW 榜单文件"})
		return
	}
	fantraxFile, err := c.FormFile("fantrax")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 Fantrax 名单文件"})
		return
	}
	noHeader := c.DefaultPostForm("noHeader", "false") == "true"

	tempDir := os.TempDir()
	ibwPath := filepath.Join(tempDir, fmt.Sprintf("fantrax_ibw_%d_%s", time.Now().UnixNano(), ibwFile.Filename))
	fantraxPath := filepath.Join(tempDir, fmt.Sprintf("fantrax_roster_%d_%s", time.Now().UnixNano(), fantraxFile.Filename))

	if err := c.SaveUploadedFile(ibwFile, ibwPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存上传文件失败"})
		return
	}
	defer os.Remove(ibwPath)
	if err := c.SaveUploadedFile(fantraxFile, fantraxPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存上传文件失败"})
		return
	}
	defer os.Remove(fantraxPath)

	ibwRecords, warnings, err := parser.ParseIBWFile(ibwPath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fantraxRecords, err := parser.LoadRecords(fantraxPath, !noHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := matcher.Reconcile(fantraxRecords, ibwRecords, h.cfg.Mapping.Overrides())
	if err != nil {
		var vErr *matcher.ValidationError
		var sErr *matcher.SchemaError
		if errors.As(err, &vErr) || errors.As(err, &sErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rows := matcher.FormatRows(result.Matches, result.Mapping)

	report := model.RunReport{
		IBWFile:     ibwFile.Filename,
		FantraxFile: fantraxFile.Filename,
		Stats:       result.Stats,
		Warnings:    warnings,
		Duration:    time.Since(started),
		CreatedAt:   started,
	}

	runID, err := h.store.SaveRun(&report, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	report.ID = runID

	exportPath := filepath.Join(h.dataDir, "exports", runID+".csv")
	if err := exporter.WriteCSVFile(exportPath, rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ReconcileResponse{
		Report:        report,
		Rows:          rows,
		DownloadToken: h.downloads.put(exportPath, runID, downloadTTL),
	})
}
