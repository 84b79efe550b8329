package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erichartline/fantrax-scripts/internal/matcher"
)

// ReadCSV 读取 CSV 数据源。带表头时每行转为按字段名取值的记录，
// 无表头时每行转为按列下标取值的记录。行字段数不要求一致，
// 短行缺失的列视为字段不存在。
func ReadCSV(r io.Reader, hasHeader bool) ([]matcher.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	if !hasHeader {
		records := make([]matcher.Record, 0, len(rows))
		for _, row := range rows {
			records = append(records, matcher.RowRecord(row))
		}
		return records, nil
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

// keyedRecord 按表头生成记录。重名表头第一列生效，空表头列忽略
func keyedRecord(header, row []string) matcher.MapRecord {
	rec := make(matcher.MapRecord, len(header))
	for i, name := range header {
		if name == "" || i >= len(row) {
			continue
		}
		if _, dup := rec[name]; dup {
			continue
		}
		rec[name] = row[i]
	}
	return rec
}

// ReadCSVFile 从文件读取 CSV 数据源
func ReadCSVFile(path string, hasHeader bool) ([]matcher.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	return ReadCSV(f, hasHeader)
}
