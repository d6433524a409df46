package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// GameSettings 全局游戏设置
type GameSettings struct {
	// 音频设置
	MusicVolume  float64 `yaml:"musicVolume"`  // 音乐总音量倍率 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效总音量倍率 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"` // 音乐开关
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关
}

// DefaultSettings 返回默认设置
// 倍率为 1.0，各声道的实际音量由调优参数决定
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicVolume:  1.0,
		SoundVolume:  1.0,
		MusicEnabled: true,
		SoundEnabled: true,
	}
}

// settingsKey 设置在键值存储中的键名
const settingsKey = "settings"

// SettingsManager 设置管理器
// 负责游戏设置的加载、保存和内存管理
type SettingsManager struct {
	store    KeyValueStore // 可为 nil（降级模式，仅内存设置）
	settings *GameSettings
	logger   *log.Logger
}

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - store: 键值存储，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，记录日志后使用默认设置。
func NewSettingsManager(store KeyValueStore) *SettingsManager {
	sm := &SettingsManager{
		store:    store,
		settings: DefaultSettings(),
		logger:   log.WithPrefix("SettingsManager"),
	}

	if err := sm.Load(); err != nil {
		sm.logger.Warn("failed to load settings, using defaults", "err", err)
	}

	return sm
}

// Load 从存储加载设置
//
// 如果 store 为 nil 或键不存在，使用默认设置
//
// 返回：
//   - error: 如果读取或反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()

	if sm.store == nil {
		return nil
	}

	data, ok, err := sm.store.Get(settingsKey)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if !ok {
		return nil
	}

	// 缺省字段保留默认值
	loaded := DefaultSettings()
	if err := yaml.Unmarshal([]byte(data), loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	sm.settings = loaded
	sm.logger.Debug("settings loaded")
	return nil
}

// Save 保存设置
//
// 如果 store 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.store.Set(settingsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	sm.logger.Debug("settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetMusicEnabled 设置音乐开关
func (sm *SettingsManager) SetMusicEnabled(enabled bool) {
	sm.settings.MusicEnabled = enabled
}

// SetSoundEnabled 设置音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// ToggleMute 同时切换音乐和音效
// 任一声道开启时全部关闭，否则全部开启。返回切换后是否静音。
func (sm *SettingsManager) ToggleMute() bool {
	muted := sm.settings.MusicEnabled || sm.settings.SoundEnabled
	sm.SetMusicEnabled(!muted)
	sm.SetSoundEnabled(!muted)
	return muted
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
