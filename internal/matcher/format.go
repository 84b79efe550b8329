package matcher

// 角色未配置（显式置 nil）时，格式化阶段按常见别名回退解析
var (
	numberAliases   = FieldSpec{"Number", "Rank", "#", "No", "ID"}
	positionAliases = FieldSpec{"Position", "Pos"}
	rankAliases     = FieldSpec{"Rank", "Number", "#"}
)

// OutputRow 匹配报表的固定输出行。字段集合恒定，缺失的值为空字符串
type OutputRow struct {
	IBWRank         string `json:"ibwRank"`
	IBWPlayer       string `json:"ibwPlayer"`
	IBWTeam         string `json:"ibwTeam"`
	FantraxNumber   string `json:"fantraxNumber"`
	FantraxPlayer   string `json:"fantraxPlayer"`
	FantraxTeam     string `json:"fantraxTeam"`
	FantraxPosition string `json:"fantraxPosition"`
	FantraxAge      string `json:"fantraxAge"`
	MatchType       string `json:"matchType"`
}

// OutputHeader 报表表头，与 OutputRow 的字段一一对应
func OutputHeader() []string {
	return []string{
		"IBW Rank", "IBW Player", "IBW Team",
		"Fantrax Number", "Fantrax Player", "Fantrax Team",
		"Fantrax Position", "Fantrax Age",
		"Match Type",
	}
}

// Columns 按 OutputHeader 的顺序返回各列的值
func (r OutputRow) Columns() []string {
	return []string{
		r.IBWRank, r.IBWPlayer, r.IBWTeam,
		r.FantraxNumber, r.FantraxPlayer, r.FantraxTeam,
		r.FantraxPosition, r.FantraxAge,
		r.MatchType,
	}
}

// FormatRows 把匹配结果投影为固定形状的报表行
func FormatRows(matches []Match, m Mapping) []OutputRow {
	rankSpec := orAliases(m.IBW.Number, rankAliases)
	numberSpec := orAliases(m.Fantrax.Number, numberAliases)
	positionSpec := orAliases(m.Fantrax.Position, positionAliases)

	rows := make([]OutputRow, 0, len(matches))
	for _, match := range matches {
		rows = append(rows, OutputRow{
			IBWRank:         Value(match.IBW, rankSpec),
			IBWPlayer:       Value(match.IBW, m.IBW.Player),
			IBWTeam:         Value(match.IBW, m.IBW.Team),
			FantraxNumber:   Value(match.Fantrax, numberSpec),
			FantraxPlayer:   Value(match.Fantrax, m.Fantrax.Player),
			FantraxTeam:     Value(match.Fantrax, m.Fantrax.Team),
			FantraxPosition: Value(match.Fantrax, positionSpec),
			FantraxAge:      Value(match.Fantrax, m.Fantrax.Age),
			MatchType:       string(match.Type),
		})
	}
	return rows
}

func orAliases(primary, aliases FieldSpec) FieldSpec {
	if primary == nil {
		return aliases
	}
	return primary
}
