package systems

import (
	"github.com/gonewx/astroshooter/pkg/components"
	"github.com/gonewx/astroshooter/pkg/ecs"
)

// CollisionSystem 检测两个分组之间的碰撞
type CollisionSystem struct {
	entityManager *ecs.EntityManager
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager) *CollisionSystem {
	return &CollisionSystem{entityManager: em}
}

// CheckAABB 检查两个中心对齐的碰撞盒是否重叠
func CheckAABB(
	pos1 *components.PositionComponent, body1 *components.BodyComponent,
	pos2 *components.PositionComponent, body2 *components.BodyComponent) bool {

	left1 := pos1.X - body1.Width/2
	right1 := pos1.X + body1.Width/2
	top1 := pos1.Y - body1.Height/2
	bottom1 := pos1.Y + body1.Height/2

	left2 := pos2.X - body2.Width/2
	right2 := pos2.X + body2.Width/2
	top2 := pos2.Y - body2.Height/2
	bottom2 := pos2.Y + body2.Height/2

	// 任一轴上没有重叠则没有碰撞
	return right1 >= left2 &&
		left1 <= right2 &&
		bottom1 >= top2 &&
		top1 <= bottom2
}

// Collide 对分组 a 和分组 b 中每一对重叠的实体调用 fn(a, b)
//
// 回调中删除的实体（DestroyEntity 标记）不会再参与后续配对，
// 因此一颗子弹在同一帧只能击中一颗陨石。
// 返回调用 fn 的次数。
func (cs *CollisionSystem) Collide(a, b components.Group, fn func(first, second ecs.EntityID)) int {
	firsts := EntitiesInGroup(cs.entityManager, a)
	seconds := EntitiesInGroup(cs.entityManager, b)

	hits := 0
	for _, first := range firsts {
		for _, second := range seconds {
			if cs.entityManager.IsMarkedForDestroy(first) {
				break
			}
			if first == second || cs.entityManager.IsMarkedForDestroy(second) {
				continue
			}
			if !cs.overlaps(first, second) {
				continue
			}
			fn(first, second)
			hits++
		}
	}
	return hits
}

// overlaps 两个实体的物理体是否重叠
func (cs *CollisionSystem) overlaps(first, second ecs.EntityID) bool {
	pos1, ok1 := ecs.GetComponent[*components.PositionComponent](cs.entityManager, first)
	body1, ok2 := ecs.GetComponent[*components.BodyComponent](cs.entityManager, first)
	pos2, ok3 := ecs.GetComponent[*components.PositionComponent](cs.entityManager, second)
	body2, ok4 := ecs.GetComponent[*components.BodyComponent](cs.entityManager, second)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}
	return CheckAABB(pos1, body1, pos2, body2)
}
