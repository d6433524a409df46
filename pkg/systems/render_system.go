package systems

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/astroshooter/pkg/components"
	"github.com/gonewx/astroshooter/pkg/ecs"
)

// RenderSystem 绘制所有可见精灵
//
// 按 RenderLayer 从低到高绘制，同层按实体 ID（创建顺序）绘制。
// 精灵的原点和显示尺寸决定绘制变换。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	drawList      []ecs.EntityID // 复用，避免每帧分配
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// DrawOrder 返回本帧需要绘制的实体，按绘制顺序排列
func (s *RenderSystem) DrawOrder() []ecs.EntityID {
	s.drawList = s.drawList[:0]
	for _, id := range ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](s.entityManager) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !sprite.Visible || sprite.Image == nil || s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		s.drawList = append(s.drawList, id)
	}

	// GetEntitiesWith 已按 ID 排序，稳定排序保持同层的创建顺序
	sort.SliceStable(s.drawList, func(i, j int) bool {
		a, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.drawList[i])
		b, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.drawList[j])
		return a.Layer < b.Layer
	})
	return s.drawList
}

// Draw 绘制所有可见精灵
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.DrawOrder() {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		screen.DrawImage(sprite.Image, SpriteDrawOptions(sprite, pos))
	}
}

// SpriteDrawOptions 计算精灵的绘制变换
// 先缩放到显示尺寸，再按原点平移到实体位置
func SpriteDrawOptions(sprite *components.SpriteComponent, pos *components.PositionComponent) *ebiten.DrawImageOptions {
	b := sprite.Image.Bounds()
	srcW, srcH := float64(b.Dx()), float64(b.Dy())
	w, h := sprite.Size()

	op := &ebiten.DrawImageOptions{}
	if srcW > 0 && srcH > 0 && (w != srcW || h != srcH) {
		op.GeoM.Scale(w/srcW, h/srcH)
	}
	op.GeoM.Translate(pos.X-w*sprite.OriginX, pos.Y-h*sprite.OriginY)
	op.Filter = ebiten.FilterLinear
	return op
}
