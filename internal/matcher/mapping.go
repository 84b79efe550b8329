package matcher

// 角色名：语义列含义，映射到每个数据源的具体字段标识
const (
	RolePlayer   = "player"
	RoleTeam     = "team"
	RoleNumber   = "number"
	RolePosition = "position"
	RoleAge      = "age"
)

// RoleSet 一个数据源上各语义角色到候选字段标识的映射
type RoleSet struct {
	Player   FieldSpec
	Team     FieldSpec
	Number   FieldSpec
	Position FieldSpec
	Age      FieldSpec
}

// Mapping 两个数据源本次生效的完整角色映射
type Mapping struct {
	Fantrax RoleSet
	IBW     RoleSet
}

// Overrides 调用方对默认角色映射的覆盖，逐数据源浅合并：
// map 中出现的角色整体替换默认值（显式置 nil 表示该角色不可用），
// 未出现的角色沿用默认值。
type Overrides struct {
	Fantrax map[string]FieldSpec
	IBW     map[string]FieldSpec
}

// DefaultFantraxRoles Fantrax 导出名单的默认角色映射
func DefaultFantraxRoles() RoleSet {
	return RoleSet{
		Player:   FieldSpec{"Player"},
		Team:     FieldSpec{"Team"},
		Number:   FieldSpec{"Number"},
		Position: FieldSpec{"Position"},
		Age:      FieldSpec{"Age"},
	}
}

// DefaultIBWRoles IBW 榜单的默认角色映射。榜单没有位置/年龄列
func DefaultIBWRoles() RoleSet {
	return RoleSet{
		Player: FieldSpec{"Player"},
		Team:   FieldSpec{"Team"},
		Number: FieldSpec{"Rank"},
	}
}

// ResolveMapping 把调用方覆盖合并到默认映射上，返回本次调用实际生效的映射。
// 合并结果是新值，默认映射本身永不被修改。
func ResolveMapping(over *Overrides) Mapping {
	m := Mapping{
		Fantrax: DefaultFantraxRoles(),
		IBW:     DefaultIBWRoles(),
	}
	if over == nil {
		return m
	}
	m.Fantrax = mergeRoles(m.Fantrax, over.Fantrax)
	m.IBW = mergeRoles(m.IBW, over.IBW)
	return m
}

// mergeRoles 单数据源的浅合并，未知角色名忽略
func mergeRoles(base RoleSet, over map[string]FieldSpec) RoleSet {
	for role, spec := range over {
		switch role {
		case RolePlayer:
			base.Player = spec
		case RoleTeam:
			base.Team = spec
		case RoleNumber:
			base.Number = spec
		case RolePosition:
			base.Position = spec
		case RoleAge:
			base.Age = spec
		}
	}
	return base
}
