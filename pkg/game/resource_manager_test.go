package game

import (
	"bytes"
	"os"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	synth "github.com/gonewx/astroshooter/internal/audio"
	"github.com/gonewx/astroshooter/pkg/config"
)

// Global audio context shared by all tests
// Ebitengine only allows one audio context to be created
var testAudioContext *audio.Context

// TestMain sets up the shared audio context before running tests
func TestMain(m *testing.M) {
	testAudioContext = audio.NewContext(DefaultSampleRate)
	os.Exit(m.Run())
}

func TestNewResourceManager(t *testing.T) {
	rm := NewResourceManager(testAudioContext)

	if rm.imageCache == nil || rm.animCache == nil || rm.soundCache == nil {
		t.Fatal("caches should be initialized")
	}
	if rm.SampleRate() != DefaultSampleRate {
		t.Errorf("SampleRate() = %d, want %d", rm.SampleRate(), DefaultSampleRate)
	}
	if NewResourceManager(nil).SampleRate() != DefaultSampleRate {
		t.Error("nil context should fall back to the default sample rate")
	}
}

func TestLoadAll(t *testing.T) {
	rm := NewResourceManager(testAudioContext)
	if err := rm.LoadAll(); err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}

	for _, key := range config.ImageKeys() {
		if rm.imageCache[key] == nil {
			t.Errorf("image %s was not generated", key)
		}
	}
	for _, key := range append(config.SoundKeys(), config.AssetBackgroundMusic) {
		if len(rm.soundCache[key]) == 0 {
			t.Errorf("sound %s was not generated", key)
		}
	}
	if n := len(rm.animCache[config.AnimExplode]); n != config.ExplosionFrameCount {
		t.Errorf("explode animation has %d frames, want %d", n, config.ExplosionFrameCount)
	}
}

func TestImageSizes(t *testing.T) {
	tests := []struct {
		key  config.AssetKey
		w, h int
	}{
		{config.AssetShip, shipSize, shipSize},
		{config.AssetAsteroid, asteroidSize, asteroidSize},
		{config.AssetBullet, bulletWidth, bulletHeight},
		{config.AssetShuttle, shuttleWidth, shuttleHeight},
		{config.AssetStartImage, startImageWidth, startImageHeight},
		{config.AssetBackground, backgroundWidth, backgroundHeight},
		{config.AssetExplosion, config.ExplosionFrameWidth * config.ExplosionFrameCount, config.ExplosionFrameHeight},
	}

	rm := NewResourceManager(nil)
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			img, err := rm.LoadImage(tt.key)
			if err != nil {
				t.Fatalf("LoadImage() error: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.w || b.Dy() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.w, tt.h)
			}
		})
	}
}

func TestLoadImage_Caching(t *testing.T) {
	rm := NewResourceManager(nil)
	first, _ := rm.LoadImage(config.AssetShip)
	second, _ := rm.LoadImage(config.AssetShip)
	if first != second {
		t.Error("LoadImage should return the cached image")
	}
}

func TestLoadImage_Unknown(t *testing.T) {
	rm := NewResourceManager(nil)
	if _, err := rm.LoadImage("nope"); err == nil {
		t.Error("expected an error for an unknown image")
	}
	if rm.imageCache["nope"] != nil {
		t.Error("an unknown image should not be cached")
	}
	if _, err := rm.LoadAnimation("spin"); err == nil {
		t.Error("expected an error for an unknown animation")
	}
	if _, err := rm.LoadSound("nope"); err == nil {
		t.Error("expected an error for an unknown sound")
	}
}

func TestSliceFrames(t *testing.T) {
	tests := []struct {
		name       string
		sheetW     int
		sheetH     int
		count      int
		wantFrames int
	}{
		{"单行", 64 * 16, 64, 16, 16},
		{"多行", 64 * 4, 64 * 4, 16, 16},
		{"帧数超出精灵表", 64 * 4, 64, 16, 4},
		{"精灵表过窄", 32, 64, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := ebiten.NewImage(tt.sheetW, tt.sheetH)
			frames := SliceFrames(sheet, 64, 64, tt.count)
			if len(frames) != tt.wantFrames {
				t.Fatalf("got %d frames, want %d", len(frames), tt.wantFrames)
			}
			for i, f := range frames {
				if f.Bounds().Dx() != 64 || f.Bounds().Dy() != 64 {
					t.Errorf("frame %d has size %v", i, f.Bounds())
				}
			}
		})
	}
}

func TestLoadSoundMatchesSynth(t *testing.T) {
	rm := NewResourceManager(nil)
	data, err := rm.LoadSound(config.AssetFireSound)
	if err != nil {
		t.Fatalf("LoadSound() error: %v", err)
	}
	if !bytes.Equal(data, synth.Laser(DefaultSampleRate)) {
		t.Error("fire sound should be the synthesized laser")
	}
}

func TestPlayersRequireAudioContext(t *testing.T) {
	rm := NewResourceManager(nil)
	if _, err := rm.NewSoundPlayer(config.AssetFireSound); err == nil {
		t.Error("NewSoundPlayer without audio context should fail")
	}
	if _, err := rm.NewLoopPlayer(config.AssetBackgroundMusic); err == nil {
		t.Error("NewLoopPlayer without audio context should fail")
	}
}

func TestNewLoopPlayer(t *testing.T) {
	rm := NewResourceManager(testAudioContext)
	player, err := rm.NewLoopPlayer(config.AssetBackgroundMusic)
	if err != nil {
		t.Fatalf("NewLoopPlayer() error: %v", err)
	}
	if player == nil {
		t.Fatal("NewLoopPlayer() returned nil")
	}
	player.Close()
}
