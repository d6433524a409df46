package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/astroshooter/pkg/components"
	"github.com/gonewx/astroshooter/pkg/ecs"
)

func newSpriteEntity(em *ecs.EntityManager, layer components.RenderLayer, visible bool) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: 10, Y: 10})
	em.AddComponent(id, &components.SpriteComponent{
		Image:   ebiten.NewImage(8, 8),
		OriginX: 0.5,
		OriginY: 0.5,
		Layer:   layer,
		Visible: visible,
	})
	return id
}

func TestRenderDrawOrder(t *testing.T) {
	em := ecs.NewEntityManager()
	rs := NewRenderSystem(em)

	effect := newSpriteEntity(em, components.LayerEffect, true)
	enemy1 := newSpriteEntity(em, components.LayerEnemy, true)
	background := newSpriteEntity(em, components.LayerBackground, true)
	newSpriteEntity(em, components.LayerPlayer, false)
	enemy2 := newSpriteEntity(em, components.LayerEnemy, true)
	destroyed := newSpriteEntity(em, components.LayerBullet, true)
	em.DestroyEntity(destroyed)

	got := rs.DrawOrder()
	want := []ecs.EntityID{background, enemy1, enemy2, effect}

	if len(got) != len(want) {
		t.Fatalf("DrawOrder() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DrawOrder()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSpriteDrawOptions(t *testing.T) {
	tests := []struct {
		name         string
		sprite       components.SpriteComponent
		pos          components.PositionComponent
		wantX, wantY float64 // 图像左上角的屏幕坐标
		wantW, wantH float64
	}{
		{
			name:   "居中原点",
			sprite: components.SpriteComponent{Image: ebiten.NewImage(40, 20), OriginX: 0.5, OriginY: 0.5},
			pos:    components.PositionComponent{X: 100, Y: 100},
			wantX:  80, wantY: 90, wantW: 40, wantH: 20,
		},
		{
			name:   "左上原点并拉伸",
			sprite: components.SpriteComponent{Image: ebiten.NewImage(480, 800), DisplayWidth: 960, DisplayHeight: 400},
			pos:    components.PositionComponent{},
			wantX:  0, wantY: 0, wantW: 960, wantH: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := SpriteDrawOptions(&tt.sprite, &tt.pos)
			b := tt.sprite.Image.Bounds()

			x0, y0 := op.GeoM.Apply(0, 0)
			x1, y1 := op.GeoM.Apply(float64(b.Dx()), float64(b.Dy()))
			if x0 != tt.wantX || y0 != tt.wantY {
				t.Errorf("top-left = (%v, %v), want (%v, %v)", x0, y0, tt.wantX, tt.wantY)
			}
			if x1-x0 != tt.wantW || y1-y0 != tt.wantH {
				t.Errorf("size = (%v, %v), want (%v, %v)", x1-x0, y1-y0, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderDraw(t *testing.T) {
	em := ecs.NewEntityManager()
	rs := NewRenderSystem(em)
	newSpriteEntity(em, components.LayerPlayer, true)

	rs.Draw(ebiten.NewImage(100, 100))
}
