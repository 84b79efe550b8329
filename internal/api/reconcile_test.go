package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/erichartline/fantrax-scripts/internal/config"
	"github.com/erichartline/fantrax-scripts/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dataDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dataDir, "exports"), 0755); err != nil {
		t.Fatalf("mkdir exports: %v", err)
	}

	runStore, err := store.New(filepath.Join(dataDir, "fantrax.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = runStore.Close() })

	h := NewHandler(runStore, config.DefaultConfig(), dataDir)
	router := gin.New()
	h.RegisterRoutes(router.Group("/api"))
	return router, h
}

func multipartBody(t *testing.T, ibw, fantrax string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fw, err := w.CreateFormFile("ibw", "ibw.txt")
	if err != nil {
		t.Fatalf("create ibw part: %v", err)
	}
	if _, err := fw.Write([]byte(ibw)); err != nil {
		t.Fatalf("write ibw part: %v", err)
	}

	fw, err = w.CreateFormFile("fantrax", "roster.csv")
	if err != nil {
		t.Fatalf("create fantrax part: %v", err)
	}
	if _, err := fw.Write([]byte(fantrax)); err != nil {
		t.Fatalf("write fantrax part: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestReconcileEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	ibw := "1. Ronald Acuna Jr. (ATL) OF\n2. Mike Trout (LAA) OF\n"
	roster := "Number,Player,Team,Position,Age\n13,Ronald Acuna Jr.,ATL,OF,27\n27,Mike Trout,LAA,OF,33\n"

	body, contentType := multipartBody(t, ibw, roster)
	req := httptest.NewRequest(http.MethodPost, "/api/reconcile", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var resp ReconcileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Report.Stats.ExactMatches != 2 || resp.Report.Stats.TotalMatches != 2 {
		t.Fatalf("unexpected stats: %+v", resp.Report.Stats)
	}
	if len(resp.Rows) != 2 || resp.Rows[0].IBWPlayer != "Ronald Acuna Jr." {
		t.Fatalf("unexpected rows: %+v", resp.Rows)
	}
	if resp.DownloadToken == "" || resp.Report.ID == "" {
		t.Fatalf("missing token or run id: %+v", resp)
	}

	// 报表可按令牌下载
	req = httptest.NewRequest(http.MethodGet, "/api/download/"+resp.DownloadToken, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("download status %d", rec.Code)
	}

	// 运行已写入日志
	req = httptest.NewRequest(http.MethodGet, "/api/runs/"+resp.Report.ID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get run status %d: %s", rec.Code, rec.Body.String())
	}
}

func TestReconcileEndpoint_MissingFile(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/reconcile", bytes.NewBufferString(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}

func TestGetRun_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/runs/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", rec.Code)
	}
}
