package entities

import (
	"fmt"

	"github.com/gonewx/astroshooter/pkg/components"
	"github.com/gonewx/astroshooter/pkg/config"
	"github.com/gonewx/astroshooter/pkg/ecs"
)

// NewBackground 创建铺满屏幕的背景实体
// 背景原点在左上角，显示尺寸拉伸到 width x height
func NewBackground(em *ecs.EntityManager, rm ResourceLoader, width, height float64) (ecs.EntityID, error) {
	img, err := rm.LoadImage(config.AssetBackground)
	if err != nil {
		return 0, fmt.Errorf("failed to load background image: %w", err)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{})
	em.AddComponent(id, &components.SpriteComponent{
		Image:         img,
		DisplayWidth:  width,
		DisplayHeight: height,
		Layer:         components.LayerBackground,
		Visible:       true,
	})
	em.AddComponent(id, &components.GroupComponent{Group: components.GroupBackground})
	return id, nil
}

// NewPlayer 创建玩家飞船
// 飞船的物理体与图像等大，并且不能离开世界边界
func NewPlayer(em *ecs.EntityManager, rm ResourceLoader, x, y float64) (ecs.EntityID, error) {
	img, err := rm.LoadImage(config.AssetShip)
	if err != nil {
		return 0, fmt.Errorf("failed to load ship image: %w", err)
	}

	sprite := newCenteredSprite(img, components.LayerPlayer)
	w, h := sprite.Size()

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, sprite)
	em.AddComponent(id, &components.BodyComponent{
		Width:              w,
		Height:             h,
		CollideWorldBounds: true,
	})
	em.AddComponent(id, &components.GroupComponent{Group: components.GroupPlayer})
	return id, nil
}
