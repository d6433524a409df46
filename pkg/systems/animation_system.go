package systems

import (
	"github.com/charmbracelet/log"

	"github.com/gonewx/astroshooter/pkg/components"
	"github.com/gonewx/astroshooter/pkg/ecs"
)

// AnimationSystem 管理所有实体的帧动画
type AnimationSystem struct {
	entityManager *ecs.EntityManager
	logger        *log.Logger
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
		logger:        log.WithPrefix("AnimationSystem"),
	}
}

// Update 更新所有动画实体的帧
func (s *AnimationSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.AnimationComponent, *components.SpriteComponent](s.entityManager)

	for _, id := range entities {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		// 如果动画已完成且非循环,跳过
		if anim.IsFinished || len(anim.Frames) == 0 || anim.FrameSpeed <= 0 {
			continue
		}

		anim.FrameCounter += deltaTime

		// 一帧的时间可能跨越多个动画帧，保留余量避免累积误差
		for anim.FrameCounter >= anim.FrameSpeed && !anim.IsFinished {
			anim.FrameCounter -= anim.FrameSpeed
			anim.CurrentFrame++

			if anim.CurrentFrame >= len(anim.Frames) {
				if anim.IsLooping {
					anim.CurrentFrame = 0
				} else {
					// 非循环动画: 停在最后一帧并标记完成
					anim.CurrentFrame = len(anim.Frames) - 1
					anim.IsFinished = true
				}
			}
		}

		sprite.Image = anim.Frames[anim.CurrentFrame]

		if anim.IsFinished && anim.HideOnComplete {
			sprite.Visible = false
			s.entityManager.DestroyEntity(id)
			s.logger.Debug("animation complete", "entity", id, "anim", anim.Key)
		}
	}
}
