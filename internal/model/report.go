package model

import (
	"time"

	"github.com/erichartline/fantrax-scripts/internal/matcher"
)

// RunReport 一次匹配运行的汇总报告
type RunReport struct {
	ID          string        `json:"id"`
	IBWFile     string        `json:"ibwFile"`
	FantraxFile string        `json:"fantraxFile"`
	Stats       matcher.Stats `json:"stats"`
	Warnings    []string      `json:"warnings,omitempty"`
	Duration    time.Duration `json:"duration"`
	CreatedAt   time.Time     `json:"createdAt"`
}
