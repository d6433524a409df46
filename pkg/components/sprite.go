package components

import "github.com/hajimehoshi/ebiten/v2"

// RenderLayer 渲染层级，数值小的先绘制
type RenderLayer int

const (
	LayerBackground RenderLayer = iota
	LayerEnemy
	LayerBullet
	LayerPlayer
	LayerEffect
)

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
type SpriteComponent struct {
	Image *ebiten.Image

	// OriginX/OriginY 图像原点（0~1），0.5 表示中心对齐
	OriginX float64
	OriginY float64

	// DisplayWidth/DisplayHeight 非零时将图像拉伸到该尺寸
	DisplayWidth  float64
	DisplayHeight float64

	Layer   RenderLayer
	Visible bool
}

// Size 返回精灵的显示尺寸
func (s *SpriteComponent) Size() (float64, float64) {
	if s.DisplayWidth > 0 && s.DisplayHeight > 0 {
		return s.DisplayWidth, s.DisplayHeight
	}
	if s.Image == nil {
		return 0, 0
	}
	b := s.Image.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}
