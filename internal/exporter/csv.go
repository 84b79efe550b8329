package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/erichartline/fantrax-scripts/internal/matcher"
)

// WriteCSV 把匹配报表写为 CSV，首行为固定表头
func WriteCSV(w io.Writer, rows []matcher.OutputRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(matcher.OutputHeader()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.Columns()); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile 把匹配报表写入文件
func WriteCSVFile(path string, rows []matcher.OutputRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	return WriteCSV(f, rows)
}
