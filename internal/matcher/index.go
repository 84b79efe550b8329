package matcher

// Index Fantrax 数据集上的两级查找索引
type Index struct {
	// Exact 姓名+球队 → 记录。重复键后写覆盖先写
	Exact map[string]Record
	// NameOnly 仅姓名 → 记录。重复键先写生效，后写忽略
	NameOnly map[string]Record
}

// BuildIndex 对一个数据集建立索引。姓名为空白的记录跳过，不参与匹配。
func BuildIndex(records []Record, roles RoleSet) *Index {
	idx := &Index{
		Exact:    make(map[string]Record, len(records)),
		NameOnly: make(map[string]Record, len(records)),
	}

	for _, r := range records {
		name := Value(r, roles.Player)
		if name == "" {
			continue
		}
		team := Value(r, roles.Team)

		idx.Exact[FullKey(name, team)] = r

		nameKey := NameKey(name)
		if _, ok := idx.NameOnly[nameKey]; !ok {
			idx.NameOnly[nameKey] = r
		}
	}

	return idx
}
