package game

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/gonewx/astroshooter/pkg/config"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效和背景音乐的播放
//   - 每个资源键的基础音量来自调优参数，再乘以设置中的总音量倍率
//   - 背景音乐同一时间只有一首，停止后可以从头恢复
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager // 可为 nil
	volumes         map[config.AssetKey]float64

	// 正在播放的音效，结束后在下一次播放时回收
	activeSounds []*audio.Player

	musicPlayers   map[config.AssetKey]*audio.Player
	currentMusic   *audio.Player
	currentMusicID config.AssetKey

	logger *log.Logger
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于创建播放器）
//   - sm: SettingsManager 实例（可为 nil）
//   - sound: 各声道基础音量
func NewAudioManager(rm *ResourceManager, sm *SettingsManager, sound config.SoundTuning) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		volumes: map[config.AssetKey]float64{
			config.AssetBackgroundMusic:        sound.BGMVolume,
			config.AssetFireSound:              sound.FireVolume,
			config.AssetAsteroidExplosionSound: sound.AsteroidExplosionVolume,
			config.AssetShipExplosionSound:     sound.ShipExplosionVolume,
		},
		musicPlayers: make(map[config.AssetKey]*audio.Player),
		logger:       log.WithPrefix("AudioManager"),
	}
}

// SoundVolume 返回音效的实际播放音量
func (am *AudioManager) SoundVolume(key config.AssetKey) float64 {
	base, ok := am.volumes[key]
	if !ok {
		base = 1.0
	}
	if am.settingsManager != nil {
		base *= am.settingsManager.GetSettings().SoundVolume
	}
	return base
}

// MusicVolume 返回背景音乐的实际播放音量
func (am *AudioManager) MusicVolume(key config.AssetKey) float64 {
	base, ok := am.volumes[key]
	if !ok {
		base = 1.0
	}
	if am.settingsManager != nil {
		base *= am.settingsManager.GetSettings().MusicVolume
	}
	return base
}

func (am *AudioManager) soundEnabled() bool {
	return am.settingsManager == nil || am.settingsManager.GetSettings().SoundEnabled
}

func (am *AudioManager) musicEnabled() bool {
	return am.settingsManager == nil || am.settingsManager.GetSettings().MusicEnabled
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(key config.AssetKey) bool {
	if !am.soundEnabled() {
		return false
	}

	am.reapSounds()

	player, err := am.resourceManager.NewSoundPlayer(key)
	if err != nil {
		am.logger.Debug("sound unavailable", "key", key, "err", err)
		return false
	}

	player.SetVolume(am.SoundVolume(key))
	player.Play()
	am.activeSounds = append(am.activeSounds, player)
	return true
}

// reapSounds 关闭已播放完毕的音效播放器
func (am *AudioManager) reapSounds() {
	kept := am.activeSounds[:0]
	for _, p := range am.activeSounds {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		p.Close()
	}
	for i := len(kept); i < len(am.activeSounds); i++ {
		am.activeSounds[i] = nil
	}
	am.activeSounds = kept
}

// PlayMusic 从头循环播放背景音乐
// 已经在播放同一首音乐时不重复播放
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayMusic(key config.AssetKey) bool {
	if am.currentMusicID == key && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	player := am.getMusicPlayer(key)
	if player == nil {
		return false
	}

	am.currentMusic = player
	am.currentMusicID = key

	// 音乐关闭时只记录当前曲目，开启后由 ResumeMusic 继续
	if !am.musicEnabled() {
		return false
	}

	volume := am.MusicVolume(key)
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		am.logger.Warn("failed to rewind music", "key", key, "err", err)
	}
	player.Play()

	am.logger.Debug("playing music", "key", key, "volume", volume)
	return true
}

// StopMusic 停止当前背景音乐并回到开头
// 曲目保持选中，ResumeMusic 可以重新开始播放
func (am *AudioManager) StopMusic() {
	if am.currentMusic == nil {
		return
	}
	am.currentMusic.Pause()
	if err := am.currentMusic.Rewind(); err != nil {
		am.logger.Warn("failed to rewind music", "key", am.currentMusicID, "err", err)
	}
}

// PauseMusic 暂停当前背景音乐
func (am *AudioManager) PauseMusic() {
	if am.IsMusicPlaying() {
		am.currentMusic.Pause()
	}
}

// ResumeMusic 继续播放当前背景音乐
func (am *AudioManager) ResumeMusic() {
	if am.currentMusic == nil || !am.musicEnabled() {
		return
	}
	am.currentMusic.SetVolume(am.MusicVolume(am.currentMusicID))
	am.currentMusic.Play()
}

// IsMusicPlaying 当前是否有背景音乐在播放
func (am *AudioManager) IsMusicPlaying() bool {
	return am.currentMusic != nil && am.currentMusic.IsPlaying()
}

// ApplySettings 在设置变更后立即生效
func (am *AudioManager) ApplySettings() {
	if am.musicEnabled() {
		am.ResumeMusic()
	} else {
		am.PauseMusic()
	}

	if !am.soundEnabled() {
		for _, p := range am.activeSounds {
			p.Pause()
		}
	}
}

// getMusicPlayer 获取或创建音乐播放器
func (am *AudioManager) getMusicPlayer(key config.AssetKey) *audio.Player {
	if player, ok := am.musicPlayers[key]; ok {
		return player
	}

	player, err := am.resourceManager.NewLoopPlayer(key)
	if err != nil {
		am.logger.Debug("music unavailable", "key", key, "err", err)
		return nil
	}

	am.musicPlayers[key] = player
	return player
}
