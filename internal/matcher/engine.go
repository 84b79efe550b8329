package matcher

import (
	"fmt"
	"strings"
)

// MatchType 匹配方式
type MatchType string

const (
	// MatchExact 姓名+球队完全一致
	MatchExact MatchType = "exact"
	// MatchNameOnly 仅姓名一致，球队缺失或不一致时的回退
	MatchNameOnly MatchType = "name-only"
)

// Match 一条匹配结果：IBW 榜单记录与命中的 Fantrax 名单记录的配对。
// 生成后不再修改。
type Match struct {
	IBW      Record
	Fantrax  Record
	Type     MatchType
	Position int // IBW 记录在输入中的原始下标
}

// Stats 单次匹配的汇总统计。TotalMatches 恒等于 Exact + NameOnly 之和
type Stats struct {
	ExactMatches    int `json:"exactMatches"`
	NameOnlyMatches int `json:"nameOnlyMatches"`
	TotalMatches    int `json:"totalMatches"`
	TotalIBWPlayers int `json:"totalIBWPlayers"`
}

// Result 匹配结果：按 IBW 输入顺序排列的配对、统计与本次生效的映射
type Result struct {
	Matches []Match
	Stats   Stats
	Mapping Mapping
}

// ValidationError 输入数据集非法（缺失或为空），错误信息指明是哪一侧
type ValidationError struct {
	Dataset string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s dataset is empty, nothing to reconcile", e.Dataset)
}

// SchemaError 必需角色配置的字段标识在数据集的代表性记录上无法解析
type SchemaError struct {
	Dataset   string
	Role      string
	Missing   []string
	Available []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s dataset: no %s column among [%s], record has [%s]",
		e.Dataset, e.Role,
		strings.Join(e.Missing, ", "), strings.Join(e.Available, ", "))
}

// Reconcile 核心匹配流程：校验两侧数据集，合并角色映射，对 Fantrax 名单建索引，
// 再按原始顺序遍历 IBW 榜单，先查精确键、失败后回退仅姓名键。
// 同一条 IBW 记录至多产生一条匹配；姓名为空的记录静默跳过，不计入匹配统计。
// 遍历严格按输入顺序单线程执行，保证结果确定。
func Reconcile(fantrax, ibw []Record, over *Overrides) (*Result, error) {
	if len(fantrax) == 0 {
		return nil, &ValidationError{Dataset: "fantrax"}
	}
	if len(ibw) == 0 {
		return nil, &ValidationError{Dataset: "ibw"}
	}

	mapping := ResolveMapping(over)

	if err := checkRequiredRoles("fantrax", fantrax[0], mapping.Fantrax); err != nil {
		return nil, err
	}
	if err := checkRequiredRoles("ibw", ibw[0], mapping.IBW); err != nil {
		return nil, err
	}

	idx := BuildIndex(fantrax, mapping.Fantrax)

	result := &Result{
		Mapping: mapping,
		Stats:   Stats{TotalIBWPlayers: len(ibw)},
	}

	for i, r := range ibw {
		name := Value(r, mapping.IBW.Player)
		if name == "" {
			continue
		}
		team := Value(r, mapping.IBW.Team)

		if hit, ok := idx.Exact[FullKey(name, team)]; ok {
			result.Matches = append(result.Matches, Match{
				IBW: r, Fantrax: hit, Type: MatchExact, Position: i,
			})
			result.Stats.ExactMatches++
			continue
		}
		if hit, ok := idx.NameOnly[NameKey(name)]; ok {
			result.Matches = append(result.Matches, Match{
				IBW: r, Fantrax: hit, Type: MatchNameOnly, Position: i,
			})
			result.Stats.NameOnlyMatches++
		}
	}

	result.Stats.TotalMatches = result.Stats.ExactMatches + result.Stats.NameOnlyMatches
	return result, nil
}

// checkRequiredRoles 校验必需角色（目前仅 player）在首条记录上可解析。
// 其余角色缺失时降级为空值输出，不算错误。
func checkRequiredRoles(dataset string, first Record, roles RoleSet) error {
	if resolvable(first, roles.Player) {
		return nil
	}
	return &SchemaError{
		Dataset:   dataset,
		Role:      RolePlayer,
		Missing:   roles.Player,
		Available: first.Keys(),
	}
}

// resolvable 任一候选字段在记录上存在即视为可解析
func resolvable(r Record, spec FieldSpec) bool {
	for _, id := range spec {
		if _, ok := r.Field(id); ok {
			return true
		}
	}
	return false
}
