package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/erichartline/fantrax-scripts/internal/matcher"
)

// ibwLineRe 匹配 IBW 榜单行。支持的写法：
//
//	1. Ronald Acuna Jr. (ATL) OF
//	12) Juan Soto (NYY)
//	3. Shohei Ohtani
//
// 球队括号与位置标记均可省略；位置仅在球队括号之后识别。
var ibwLineRe = regexp.MustCompile(`^\s*(\d+)[.)]\s+([^(]+?)(?:\s*\(([^)]*)\)(?:\s+([A-Za-z0-9/]{1,6}))?)?\s*$`)

// ParseIBW 逐行解析 IBW 榜单文本。空行与 # 开头的注释行直接跳过；
// 无法识别的行跳过并记入警告，不中断解析。
func ParseIBW(r io.Reader) ([]matcher.Record, []string, error) {
	var (
		records  []matcher.Record
		warnings []string
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		m := ibwLineRe.FindStringSubmatch(line)
		if m == nil {
			warnings = append(warnings, fmt.Sprintf("第 %d 行无法识别，已跳过: %q", lineNo, trimmed))
			continue
		}

		records = append(records, matcher.MapRecord{
			"Rank":     m[1],
			"Player":   strings.TrimSpace(m[2]),
			"Team":     strings.TrimSpace(m[3]),
			"Position": strings.TrimSpace(m[4]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, fmt.Errorf("read ibw list: %w", err)
	}

	return records, warnings, nil
}

// ParseIBWFile 从文件解析 IBW 榜单
func ParseIBWFile(path string) ([]matcher.Record, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open ibw list: %w", err)
	}
	defer f.Close()

	return ParseIBW(f)
}
