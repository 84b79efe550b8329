package matcher

import (
	"sort"
	"strconv"
)

// Record 统一的记录访问接口。带表头的 CSV/XLSX 行和 IBW 榜单行按字段名取值，
// 无表头的 CSV 行按列下标（十进制字符串）取值，匹配引擎不感知具体形状。
type Record interface {
	// Field 按字段标识取原始值，第二个返回值表示字段是否存在
	Field(id string) (string, bool)
	// Keys 返回记录全部可用的字段标识（用于 Schema 错误诊断）
	Keys() []string
}

// MapRecord 按字段名取值的记录（带表头的数据源）
type MapRecord map[string]string

// Field 按字段名取值
func (r MapRecord) Field(id string) (string, bool) {
	v, ok := r[id]
	return v, ok
}

// Keys 返回全部字段名，排序保证诊断输出稳定
func (r MapRecord) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RowRecord 按位置取值的记录（无表头的数据源）
type RowRecord []string

// Field 按列下标取值，下标非数字或越界视为字段不存在
func (r RowRecord) Field(id string) (string, bool) {
	idx, err := strconv.Atoi(id)
	if err != nil || idx < 0 || idx >= len(r) {
		return "", false
	}
	return r[idx], true
}

// Keys 返回全部列下标
func (r RowRecord) Keys() []string {
	keys := make([]string, len(r))
	for i := range r {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}
