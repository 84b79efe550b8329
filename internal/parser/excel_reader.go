package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/erichartline/fantrax-scripts/internal/matcher"
)

// ReadExcel 读取 XLSX 第一个工作表，首行视为表头
func ReadExcel(path string) ([]matcher.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
	}

	records := make([]matcher.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, keyedRecord(header, row))
	}
	return records, nil
}

// LoadRecords 按扩展名选择读取方式。xlsx/xlsm 走 Excel 读取（忽略 hasHeader，
// 恒按首行表头处理），其余按 CSV 处理。
func LoadRecords(path string, hasHeader bool) ([]matcher.Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadExcel(path)
	default:
		return ReadCSVFile(path, hasHeader)
	}
}
