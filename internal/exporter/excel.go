package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/erichartline/fantrax-scripts/internal/matcher"
)

const (
	matchSheet   = "Matches"
	summarySheet = "Summary"
)

// WriteExcel 把匹配报表写为 xlsx：Matches 放逐行明细，Summary 放统计
func WriteExcel(path string, rows []matcher.OutputRow, stats matcher.Stats) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", matchSheet)

	header := make([]interface{}, 0, len(matcher.OutputHeader()))
	for _, h := range matcher.OutputHeader() {
		header = append(header, h)
	}
	if err := f.SetSheetRow(matchSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	for i, row := range rows {
		cells := make([]interface{}, 0, len(row.Columns()))
		for _, c := range row.Columns() {
			cells = append(cells, c)
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(matchSheet, cell, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	// 表头加粗，列宽给足球员姓名
	styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(matchSheet, "A1", "I1", styleID)
	}
	_ = f.SetColWidth(matchSheet, "A", "I", 18)

	if err := writeSummarySheet(f, stats); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, stats matcher.Stats) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	lines := []struct {
		label string
		value int
	}{
		{"IBW Players", stats.TotalIBWPlayers},
		{"Exact Matches", stats.ExactMatches},
		{"Name-Only Matches", stats.NameOnlyMatches},
		{"Total Matches", stats.TotalMatches},
	}
	for i, line := range lines {
		rowNo := i + 1
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", rowNo), line.label)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", rowNo), line.value)
	}
	_ = f.SetColWidth(summarySheet, "A", "A", 20)
	return nil
}
