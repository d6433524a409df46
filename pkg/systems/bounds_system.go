package systems

import (
	"github.com/gonewx/astroshooter/pkg/components"
	"github.com/gonewx/astroshooter/pkg/ecs"
)

// BoundsSystem 删除离开可见区域的实体
//
// 实体在第一次与屏幕相交时被标记为已进入，之后完全离开屏幕才会被删除，
// 因此在屏幕上方生成的陨石不会在出现之前就被删除。
type BoundsSystem struct {
	entityManager *ecs.EntityManager
	width         float64
	height        float64
}

// NewBoundsSystem 创建边界系统
func NewBoundsSystem(em *ecs.EntityManager, width, height float64) *BoundsSystem {
	return &BoundsSystem{
		entityManager: em,
		width:         width,
		height:        height,
	}
}

// SetWorldSize 更新可见区域尺寸
func (bs *BoundsSystem) SetWorldSize(width, height float64) {
	bs.width = width
	bs.height = height
}

// Update 检查所有带 OutOfBoundsKillComponent 的实体
func (bs *BoundsSystem) Update() {
	entities := ecs.GetEntitiesWith3[
		*components.OutOfBoundsKillComponent,
		*components.PositionComponent,
		*components.BodyComponent,
	](bs.entityManager)

	for _, id := range entities {
		if bs.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		kill, _ := ecs.GetComponent[*components.OutOfBoundsKillComponent](bs.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](bs.entityManager, id)
		body, _ := ecs.GetComponent[*components.BodyComponent](bs.entityManager, id)

		inside := pos.X+body.Width/2 > 0 &&
			pos.X-body.Width/2 < bs.width &&
			pos.Y+body.Height/2 > 0 &&
			pos.Y-body.Height/2 < bs.height

		if inside {
			kill.Entered = true
			continue
		}
		if kill.Entered {
			bs.entityManager.DestroyEntity(id)
		}
	}
}
