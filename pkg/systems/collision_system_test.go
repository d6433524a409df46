package systems

import (
	"testing"

	"github.com/gonewx/astroshooter/pkg/components"
	"github.com/gonewx/astroshooter/pkg/ecs"
)

func newGroupEntity(em *ecs.EntityManager, group components.Group, x, y, w, h float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.BodyComponent{Width: w, Height: h})
	em.AddComponent(id, &components.GroupComponent{Group: group})
	return id
}

func TestCheckAABB(t *testing.T) {
	tests := []struct {
		name   string
		x2, y2 float64
		want   bool
	}{
		{"重叠", 10, 10, true},
		{"边缘相接", 20, 0, true},
		{"水平分离", 21, 0, false},
		{"垂直分离", 0, 21, false},
		{"完全重合", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckAABB(
				&components.PositionComponent{X: 0, Y: 0}, &components.BodyComponent{Width: 20, Height: 20},
				&components.PositionComponent{X: tt.x2, Y: tt.y2}, &components.BodyComponent{Width: 20, Height: 20},
			)
			if got != tt.want {
				t.Errorf("CheckAABB() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollideDispatchesPairs(t *testing.T) {
	em := ecs.NewEntityManager()
	cs := NewCollisionSystem(em)

	bullet := newGroupEntity(em, components.GroupBullet, 100, 100, 6, 16)
	enemy := newGroupEntity(em, components.GroupEnemy, 100, 110, 48, 48)
	newGroupEntity(em, components.GroupEnemy, 400, 400, 48, 48)

	var pairs [][2]ecs.EntityID
	hits := cs.Collide(components.GroupBullet, components.GroupEnemy, func(a, b ecs.EntityID) {
		pairs = append(pairs, [2]ecs.EntityID{a, b})
	})

	if hits != 1 || len(pairs) != 1 {
		t.Fatalf("expected one collision, got %d", hits)
	}
	if pairs[0][0] != bullet || pairs[0][1] != enemy {
		t.Errorf("pair = %v, want [bullet enemy] = [%d %d]", pairs[0], bullet, enemy)
	}
}

// TestCollideSkipsDestroyed 回调中删除的实体不再参与后续配对
func TestCollideSkipsDestroyed(t *testing.T) {
	em := ecs.NewEntityManager()
	cs := NewCollisionSystem(em)

	// 一颗子弹同时与两颗陨石重叠
	newGroupEntity(em, components.GroupBullet, 100, 100, 6, 16)
	newGroupEntity(em, components.GroupEnemy, 100, 100, 48, 48)
	newGroupEntity(em, components.GroupEnemy, 105, 100, 48, 48)

	hits := cs.Collide(components.GroupBullet, components.GroupEnemy, func(a, b ecs.EntityID) {
		em.DestroyEntity(a)
		em.DestroyEntity(b)
	})

	if hits != 1 {
		t.Errorf("a destroyed bullet should hit only once, got %d hits", hits)
	}
	if CountGroup(em, components.GroupEnemy) != 1 {
		t.Errorf("one enemy should survive, got %d", CountGroup(em, components.GroupEnemy))
	}
}

func TestCollideIgnoresEntitiesWithoutBody(t *testing.T) {
	em := ecs.NewEntityManager()
	cs := NewCollisionSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: 0, Y: 0})
	em.AddComponent(id, &components.GroupComponent{Group: components.GroupPlayer})
	newGroupEntity(em, components.GroupEnemy, 0, 0, 48, 48)

	hits := cs.Collide(components.GroupPlayer, components.GroupEnemy, func(a, b ecs.EntityID) {})
	if hits != 0 {
		t.Errorf("entities without a body should not collide, got %d hits", hits)
	}
}

func TestClearGroup(t *testing.T) {
	em := ecs.NewEntityManager()
	for i := 0; i < 3; i++ {
		newGroupEntity(em, components.GroupEnemy, 0, 0, 1, 1)
	}
	newGroupEntity(em, components.GroupBullet, 0, 0, 1, 1)
	player := newGroupEntity(em, components.GroupPlayer, 0, 0, 1, 1)

	if n := ClearGroup(em, components.GroupEnemy); n != 3 {
		t.Errorf("ClearGroup(enemy) = %d, want 3", n)
	}
	if CountGroup(em, components.GroupEnemy) != 0 {
		t.Error("enemy group should be empty")
	}
	if CountGroup(em, components.GroupBullet) != 1 || em.IsMarkedForDestroy(player) {
		t.Error("other groups should be untouched")
	}
}
