package matcher

import "strings"

// FieldSpec 一个语义角色对应的候选字段标识，按顺序尝试，第一个存在的字段生效。
// nil 表示该数据源没有这个角色。
type FieldSpec []string

// Value 按候选字段标识从记录取值，返回去除首尾空白后的字符串。
// 角色不可用或所有候选字段都不存在时返回空字符串，永不报错。
func Value(r Record, spec FieldSpec) string {
	if r == nil {
		return ""
	}
	for _, id := range spec {
		if v, ok := r.Field(id); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
