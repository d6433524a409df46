package systems

import (
	"github.com/gonewx/astroshooter/pkg/components"
	"github.com/gonewx/astroshooter/pkg/ecs"
)

// PhysicsSystem 处理实体运动
// 每帧将速度积分到位置上，并把 CollideWorldBounds 的物理体限制在世界边界内
type PhysicsSystem struct {
	entityManager *ecs.EntityManager
	worldWidth    float64
	worldHeight   float64
	paused        bool
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - width, height: 世界尺寸（像素）
func NewPhysicsSystem(em *ecs.EntityManager, width, height float64) *PhysicsSystem {
	return &PhysicsSystem{
		entityManager: em,
		worldWidth:    width,
		worldHeight:   height,
	}
}

// SetWorldSize 更新世界尺寸（窗口大小变化时调用）
func (ps *PhysicsSystem) SetWorldSize(width, height float64) {
	ps.worldWidth = width
	ps.worldHeight = height
}

// Pause 暂停物理模拟，所有实体保持当前位置
func (ps *PhysicsSystem) Pause() {
	ps.paused = true
}

// Resume 恢复物理模拟
func (ps *PhysicsSystem) Resume() {
	ps.paused = false
}

// IsPaused 物理模拟是否暂停
func (ps *PhysicsSystem) IsPaused() bool {
	return ps.paused
}

// Update 积分速度并处理世界边界
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (ps *PhysicsSystem) Update(deltaTime float64) {
	if ps.paused {
		return
	}

	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](ps.entityManager)
	for _, id := range entities {
		if ps.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](ps.entityManager, id)

		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		body, ok := ecs.GetComponent[*components.BodyComponent](ps.entityManager, id)
		if ok && body.CollideWorldBounds {
			ps.clampToWorld(pos, vel, body)
		}
	}
}

// clampToWorld 将物理体限制在世界边界内，碰到边界的轴速度清零
func (ps *PhysicsSystem) clampToWorld(pos *components.PositionComponent, vel *components.VelocityComponent, body *components.BodyComponent) {
	halfW := body.Width / 2
	halfH := body.Height / 2

	if pos.X < halfW {
		pos.X = halfW
		vel.VX = 0
	} else if pos.X > ps.worldWidth-halfW {
		pos.X = ps.worldWidth - halfW
		vel.VX = 0
	}

	if pos.Y < halfH {
		pos.Y = halfH
		vel.VY = 0
	} else if pos.Y > ps.worldHeight-halfH {
		pos.Y = ps.worldHeight - halfH
		vel.VY = 0
	}
}
