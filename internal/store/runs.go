package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/erichartline/fantrax-scripts/internal/matcher"
	"github.com/erichartline/fantrax-scripts/internal/model"
)

// ErrRunNotFound 指定的运行不存在
var ErrRunNotFound = errors.New("run not found")

// RunSummary 运行日志摘要
type RunSummary struct {
	ID          string        `json:"id"`
	CreatedAt   time.Time     `json:"createdAt"`
	IBWFile     string        `json:"ibwFile"`
	FantraxFile string        `json:"fantraxFile"`
	Stats       matcher.Stats `json:"stats"`
	DurationMS  int64         `json:"durationMs"`
}

// SaveRun 保存一次运行及其报表行，返回运行 ID。
// 报告未带 ID 时自动生成。
func (s *Store) SaveRun(report *model.RunReport, rows []matcher.OutputRow) (string, error) {
	id := report.ID
	if id == "" {
		id = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs (id, ibw_file, fantrax_file, exact_matches, name_only_matches,
			total_matches, total_ibw_players, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, report.IBWFile, report.FantraxFile,
		report.Stats.ExactMatches, report.Stats.NameOnlyMatches,
		report.Stats.TotalMatches, report.Stats.TotalIBWPlayers,
		report.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO run_matches (run_id, position, ibw_rank, ibw_player, ibw_team,
			fantrax_number, fantrax_player, fantrax_team, fantrax_position, fantrax_age, match_type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare match insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		_, err = stmt.Exec(id, i,
			row.IBWRank, row.IBWPlayer, row.IBWTeam,
			row.FantraxNumber, row.FantraxPlayer, row.FantraxTeam,
			row.FantraxPosition, row.FantraxAge, row.MatchType,
		)
		if err != nil {
			return "", fmt.Errorf("insert match row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}
	return id, nil
}

// ListRuns 按时间倒序列出最近的运行，limit <= 0 时取默认 50 条
func (s *Store) ListRuns(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
		SELECT id, created_at, ibw_file, fantrax_file,
			exact_matches, name_only_matches, total_matches, total_ibw_players, duration_ms
		FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var result []RunSummary
	for rows.Next() {
		var r RunSummary
		err := rows.Scan(&r.ID, &r.CreatedAt, &r.IBWFile, &r.FantraxFile,
			&r.Stats.ExactMatches, &r.Stats.NameOnlyMatches,
			&r.Stats.TotalMatches, &r.Stats.TotalIBWPlayers, &r.DurationMS)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// CountRuns 运行总数
func (s *Store) CountRuns() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return n, nil
}

// GetRun 取回单次运行及其报表行
func (s *Store) GetRun(id string) (*RunSummary, []matcher.OutputRow, error) {
	var r RunSummary
	err := s.db.QueryRow(`
		SELECT id, created_at, ibw_file, fantrax_file,
			exact_matches, name_only_matches, total_matches, total_ibw_players, duration_ms
		FROM runs WHERE id = ?`, id).
		Scan(&r.ID, &r.CreatedAt, &r.IBWFile, &r.FantraxFile,
			&r.Stats.ExactMatches, &r.Stats.NameOnlyMatches,
			&r.Stats.TotalMatches, &r.Stats.TotalIBWPlayers, &r.DurationMS)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrRunNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("query run: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT ibw_rank, ibw_player, ibw_team,
			fantrax_number, fantrax_player, fantrax_team,
			fantrax_position, fantrax_age, match_type
		FROM run_matches WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("query run matches: %w", err)
	}
	defer rows.Close()

	var matches []matcher.OutputRow
	for rows.Next() {
		var m matcher.OutputRow
		err := rows.Scan(&m.IBWRank, &m.IBWPlayer, &m.IBWTeam,
			&m.FantraxNumber, &m.FantraxPlayer, &m.FantraxTeam,
			&m.FantraxPosition, &m.FantraxAge, &m.MatchType)
		if err != nil {
			return nil, nil, fmt.Errorf("scan match row: %w", err)
		}
		matches = append(matches, m)
	}
	return &r, matches, rows.Err()
}
