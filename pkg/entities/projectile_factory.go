package entities

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/astroshooter/pkg/components"
	"github.com/gonewx/astroshooter/pkg/config"
	"github.com/gonewx/astroshooter/pkg/ecs"
)

// newCenteredSprite 原点居中的可见精灵
func newCenteredSprite(img *ebiten.Image, layer components.RenderLayer) *components.SpriteComponent {
	return &components.SpriteComponent{
		Image:   img,
		OriginX: 0.5,
		OriginY: 0.5,
		Layer:   layer,
		Visible: true,
	}
}

// newMover 创建带速度、碰撞体和出界删除标记的精灵实体
func newMover(em *ecs.EntityManager, img *ebiten.Image, layer components.RenderLayer, group components.Group, x, y, vx, vy float64) ecs.EntityID {
	sprite := newCenteredSprite(img, layer)
	w, h := sprite.Size()

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: vx, VY: vy})
	em.AddComponent(id, sprite)
	em.AddComponent(id, &components.BodyComponent{Width: w, Height: h})
	em.AddComponent(id, &components.GroupComponent{Group: group})
	em.AddComponent(id, &components.OutOfBoundsKillComponent{})
	return id
}

// NewBullet 创建子弹实体
//
// 参数:
//   - x, y: 生成位置（子弹中心）
//   - vy: 纵向速度，向上为负
func NewBullet(em *ecs.EntityManager, rm ResourceLoader, x, y, vy float64) (ecs.EntityID, error) {
	img, err := rm.LoadImage(config.AssetBullet)
	if err != nil {
		return 0, fmt.Errorf("failed to load bullet image: %w", err)
	}
	return newMover(em, img, components.LayerBullet, components.GroupBullet, x, y, 0, vy), nil
}

// NewEnemy 创建陨石实体
// 陨石在屏幕上方生成，进入屏幕后离开时自动删除
func NewEnemy(em *ecs.EntityManager, rm ResourceLoader, x, y, vy float64) (ecs.EntityID, error) {
	img, err := rm.LoadImage(config.AssetAsteroid)
	if err != nil {
		return 0, fmt.Errorf("failed to load asteroid image: %w", err)
	}
	return newMover(em, img, components.LayerEnemy, components.GroupEnemy, x, y, 0, vy), nil
}
