package scenes

import (
	"time"

	"github.com/gonewx/astroshooter/pkg/config"
	"github.com/gonewx/astroshooter/pkg/game"
	"github.com/gonewx/astroshooter/pkg/gameplay"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// HighScoreStore 场景使用的最高分服务
// *game.HighScore 实现了该接口
type HighScoreStore interface {
	Load() int
	Submit(score int) (bool, error)
}

// SoundPlayer 场景使用的音频能力
// *game.AudioManager 实现了该接口
type SoundPlayer interface {
	PlaySound(key config.AssetKey) bool
	PlayMusic(key config.AssetKey) bool
	StopMusic()
	ResumeMusic()
}

// RunRecorder 记录每一局的结果（桌面端的 sqlite 历史记录）
type RunRecorder interface {
	Record(score int, duration time.Duration) error
}

// Deps 场景共享的依赖
type Deps struct {
	Resources *game.ResourceManager
	HighScore HighScoreStore
	Tuning    config.Tuning
	Random    gameplay.Random

	// 以下可为 nil
	Audio    SoundPlayer
	Recorder RunRecorder
}

// Register 向场景管理器注册全部场景
func Register(sm *game.SceneManager, deps Deps) {
	sm.Register(config.SceneInitial, func(sm *game.SceneManager) (game.Scene, error) {
		return NewInitialScene(deps, sm)
	})
	sm.Register(config.SceneGame, func(sm *game.SceneManager) (game.Scene, error) {
		return NewGameScene(deps, sm)
	})
}
