package game

import (
	"testing"

	"github.com/gonewx/astroshooter/pkg/config"
)

func TestAudioManagerVolumes(t *testing.T) {
	sound := config.DefaultTuning().Sound
	sm := NewSettingsManager(nil)
	am := NewAudioManager(NewResourceManager(nil), sm, sound)

	tests := []struct {
		key  config.AssetKey
		want float64
	}{
		{config.AssetFireSound, config.FireVolume},
		{config.AssetAsteroidExplosionSound, config.AsteroidExplosionVolume},
		{config.AssetShipExplosionSound, config.ShipExplosionVolume},
	}
	for _, tt := range tests {
		if got := am.SoundVolume(tt.key); got != tt.want {
			t.Errorf("SoundVolume(%s) = %v, want %v", tt.key, got, tt.want)
		}
	}
	if got := am.MusicVolume(config.AssetBackgroundMusic); got != config.BGMVolume {
		t.Errorf("MusicVolume(bgm) = %v, want %v", got, config.BGMVolume)
	}

	// 总音量倍率
	sm.GetSettings().SoundVolume = 0.5
	if got := am.SoundVolume(config.AssetFireSound); got != config.FireVolume*0.5 {
		t.Errorf("scaled SoundVolume = %v, want %v", got, config.FireVolume*0.5)
	}
}

func TestAudioManagerSilentWithoutContext(t *testing.T) {
	am := NewAudioManager(NewResourceManager(nil), nil, config.DefaultTuning().Sound)

	if am.PlaySound(config.AssetFireSound) {
		t.Error("PlaySound should fail without an audio context")
	}
	if am.PlayMusic(config.AssetBackgroundMusic) {
		t.Error("PlayMusic should fail without an audio context")
	}

	// 没有音乐时这些调用不应 panic
	am.StopMusic()
	am.PauseMusic()
	am.ResumeMusic()
	am.ApplySettings()
	if am.IsMusicPlaying() {
		t.Error("no music should be playing")
	}
}

func TestAudioManagerSoundDisabled(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetSoundEnabled(false)
	am := NewAudioManager(NewResourceManager(testAudioContext), sm, config.DefaultTuning().Sound)

	if am.PlaySound(config.AssetFireSound) {
		t.Error("PlaySound should be skipped when sound is disabled")
	}
}

func TestAudioManagerMusicDisabled(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetMusicEnabled(false)
	am := NewAudioManager(NewResourceManager(testAudioContext), sm, config.DefaultTuning().Sound)

	if am.PlayMusic(config.AssetBackgroundMusic) {
		t.Error("PlayMusic should not start when music is disabled")
	}
	if am.currentMusicID != config.AssetBackgroundMusic {
		t.Error("the selected track should be remembered for later")
	}
	if am.IsMusicPlaying() {
		t.Error("music should not be playing")
	}
}

func TestAudioManagerPlayMusic(t *testing.T) {
	am := NewAudioManager(NewResourceManager(testAudioContext), nil, config.DefaultTuning().Sound)

	if !am.PlayMusic(config.AssetBackgroundMusic) {
		t.Fatal("PlayMusic() failed")
	}
	player := am.currentMusic

	// 再次播放同一首音乐复用同一个播放器
	am.PlayMusic(config.AssetBackgroundMusic)
	if am.currentMusic != player {
		t.Error("PlayMusic should reuse the cached player")
	}

	am.StopMusic()
	if am.IsMusicPlaying() {
		t.Error("music should be stopped")
	}
	if am.currentMusicID != config.AssetBackgroundMusic {
		t.Error("StopMusic should keep the selected track")
	}
}
