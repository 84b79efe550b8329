package matcher

import "strings"

// NameKey 仅由球员姓名构成的匹配键：去首尾空白并转小写。幂等。
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FullKey 姓名+球队的精确匹配键。球队为空串时仍带 "_" 后缀，
// 保证“球队字段为空白”与“根本没有球队字段”不会撞键。
func FullKey(name, team string) string {
	return NameKey(name) + "_" + strings.ToLower(strings.TrimSpace(team))
}
