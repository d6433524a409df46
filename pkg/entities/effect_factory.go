package entities

import (
	"fmt"

	"github.com/gonewx/astroshooter/pkg/components"
	"github.com/gonewx/astroshooter/pkg/config"
	"github.com/gonewx/astroshooter/pkg/ecs"
)

// NewExplosion 在指定位置播放一次爆炸动画
// 动画播放完毕后实体被隐藏并删除
func NewExplosion(em *ecs.EntityManager, rm ResourceLoader, x, y float64) (ecs.EntityID, error) {
	frames, err := rm.LoadAnimation(config.AnimExplode)
	if err != nil {
		return 0, fmt.Errorf("failed to load explosion animation: %w", err)
	}
	if len(frames) == 0 {
		return 0, fmt.Errorf("explosion animation has no frames")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, newCenteredSprite(frames[0], components.LayerEffect))
	em.AddComponent(id, &components.AnimationComponent{
		Key:            config.AnimExplode,
		Frames:         frames,
		FrameSpeed:     1.0 / config.ExplosionFrameRate,
		HideOnComplete: true,
	})
	em.AddComponent(id, &components.GroupComponent{Group: components.GroupEffect})
	return id, nil
}
