package scenes

import (
	"math"
	"testing"

	"github.com/gonewx/astroshooter/pkg/config"
)

func TestLogoLayout(t *testing.T) {
	tests := []struct {
		name           string
		imgW, imgH     int
		screenW        int
		screenH        int
		wantScale      float64
		wantCX, wantCY float64
	}{
		{"竖屏受宽度限制", 320, 220, 480, 800, 1.2, 240, 320},
		{"横屏受高度限制", 320, 220, 1920, 500, 500 * 0.6 / 220, 960, 200},
		{"空图片", 0, 0, 480, 800, 0, 240, 320},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scale, cx, cy := LogoLayout(tt.imgW, tt.imgH, tt.screenW, tt.screenH)
			if math.Abs(scale-tt.wantScale) > 1e-9 {
				t.Errorf("scale = %v, want %v", scale, tt.wantScale)
			}
			if cx != tt.wantCX || cy != tt.wantCY {
				t.Errorf("center = (%v, %v), want (%v, %v)", cx, cy, tt.wantCX, tt.wantCY)
			}
		})
	}
}

func TestInitialSceneShowsHighScore(t *testing.T) {
	deps, sm, _, _, _ := newTestDeps()

	scene, err := NewInitialScene(deps, sm)
	if err != nil {
		t.Fatalf("NewInitialScene() error = %v", err)
	}

	if scene.highScoreLabel.Text != "High Score: 50" {
		t.Errorf("high score text = %q", scene.highScoreLabel.Text)
	}
	h := float64(config.DefaultWindowHeight)
	if scene.highScoreLabel.Y != h*highScoreLabelY {
		t.Errorf("high score label y = %v, want %v", scene.highScoreLabel.Y, h*highScoreLabelY)
	}
	if scene.promptLabel.Text != "Toque para começar" || scene.promptLabel.Y != h*promptLabelY {
		t.Errorf("prompt = %q at %v", scene.promptLabel.Text, scene.promptLabel.Y)
	}
}

func TestInitialSceneStartsGame(t *testing.T) {
	_, sm, _, audio, _ := newTestDeps()
	if err := sm.Start(config.SceneInitial); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	scene := sm.GetCurrentScene().(*InitialScene)

	scene.handlePress(false)
	if sm.CurrentKey() != config.SceneInitial {
		t.Fatal("scene should not change without a pointer press")
	}

	scene.handlePress(true)
	if sm.CurrentKey() != config.SceneGame {
		t.Fatalf("current scene = %q, want %q", sm.CurrentKey(), config.SceneGame)
	}
	if _, ok := sm.GetCurrentScene().(*GameScene); !ok {
		t.Fatalf("current scene is %T", sm.GetCurrentScene())
	}
	if len(audio.music) != 1 || audio.music[0] != config.AssetBackgroundMusic {
		t.Errorf("music = %v, want background music started once", audio.music)
	}
}

func TestInitialSceneFollowsResize(t *testing.T) {
	deps, sm, _, _, _ := newTestDeps()
	scene, err := NewInitialScene(deps, sm)
	if err != nil {
		t.Fatalf("NewInitialScene() error = %v", err)
	}

	sm.SetSize(1000, 500)
	scene.Update(1.0 / 60)

	if scene.highScoreLabel.X != 500 || scene.highScoreLabel.Y != 350 {
		t.Errorf("high score label at (%v, %v), want (500, 350)", scene.highScoreLabel.X, scene.highScoreLabel.Y)
	}
}
