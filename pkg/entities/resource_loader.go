package entities

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/astroshooter/pkg/config"
)

// ResourceLoader 实体工厂需要的资源接口
// *game.ResourceManager 实现了该接口
type ResourceLoader interface {
	LoadImage(key config.AssetKey) (*ebiten.Image, error)
	LoadAnimation(anim string) ([]*ebiten.Image, error)
}
