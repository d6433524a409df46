package components

// Group 实体所属的分组，碰撞检测按分组配对
type Group int

const (
	GroupPlayer Group = iota
	GroupBullet
	GroupEnemy
	GroupEffect
	GroupBackground
)

// String 返回分组名称（用于日志）
func (g Group) String() string {
	switch g {
	case GroupPlayer:
		return "player"
	case GroupBullet:
		return "bullet"
	case GroupEnemy:
		return "enemy"
	case GroupEffect:
		return "effect"
	case GroupBackground:
		return "background"
	default:
		return "unknown"
	}
}

// GroupComponent 标识实体所属分组
type GroupComponent struct {
	Group Group
}

// OutOfBoundsKillComponent 标记实体离开可见区域后自动删除
// Entered 记录实体是否曾进入过可见区域，从屏幕外生成的实体（如陨石）
// 在进入之前不会被删除
type OutOfBoundsKillComponent struct {
	Entered bool
}
