package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/astroshooter/pkg/components"
	"github.com/gonewx/astroshooter/pkg/ecs"
)

func newAnimatedEntity(em *ecs.EntityManager, frameCount int, looping, hide bool) (ecs.EntityID, []*ebiten.Image) {
	frames := make([]*ebiten.Image, frameCount)
	for i := range frames {
		frames[i] = ebiten.NewImage(4, 4)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.SpriteComponent{Image: frames[0], Visible: true})
	em.AddComponent(id, &components.AnimationComponent{
		Frames:         frames,
		FrameSpeed:     0.1,
		IsLooping:      looping,
		HideOnComplete: hide,
	})
	return id, frames
}

func TestAnimationAdvancesFrames(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewAnimationSystem(em)
	id, frames := newAnimatedEntity(em, 4, false, false)

	s.Update(0.05)
	anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
	if anim.CurrentFrame != 0 {
		t.Fatalf("CurrentFrame = %d, want 0", anim.CurrentFrame)
	}

	// 一次跨越两帧
	s.Update(0.2)
	if anim.CurrentFrame != 2 {
		t.Errorf("CurrentFrame = %d, want 2", anim.CurrentFrame)
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.Image != frames[2] {
		t.Error("sprite image should follow the current frame")
	}
}

func TestAnimationFinishesAndHides(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewAnimationSystem(em)
	id, frames := newAnimatedEntity(em, 16, false, true)

	// 16 帧 @ 0.1s：1.6s 后播放完毕
	for i := 0; i < 15; i++ {
		s.Update(0.1)
	}
	anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
	if anim.IsFinished || em.IsMarkedForDestroy(id) {
		t.Fatal("animation should still be playing on the last frame")
	}

	s.Update(0.1)
	if !anim.IsFinished {
		t.Fatal("animation should be finished")
	}
	if anim.CurrentFrame != len(frames)-1 {
		t.Errorf("finished animation should stay on the last frame, got %d", anim.CurrentFrame)
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.Visible {
		t.Error("sprite should be hidden on complete")
	}
	if !em.IsMarkedForDestroy(id) {
		t.Error("entity should be removed on complete")
	}
}

func TestAnimationLoops(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewAnimationSystem(em)
	id, _ := newAnimatedEntity(em, 3, true, true)

	s.Update(0.35)

	anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
	if anim.CurrentFrame != 0 {
		t.Errorf("looping animation CurrentFrame = %d, want 0", anim.CurrentFrame)
	}
	if anim.IsFinished || em.IsMarkedForDestroy(id) {
		t.Error("looping animation should never finish")
	}
}
