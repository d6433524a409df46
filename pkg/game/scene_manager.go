package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/astroshooter/pkg/config"
)

// SceneFactory 场景工厂函数类型
// 每次 Start/Restart 都会调用工厂创建全新的场景实例，避免上一局的状态残留
type SceneFactory func(sm *SceneManager) (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	factories    map[config.SceneKey]SceneFactory
	currentScene Scene
	currentKey   config.SceneKey

	// 世界尺寸，跟随窗口/画布大小
	width  int
	height int

	logger *log.Logger
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use Start to activate a registered scene.
func NewSceneManager(width, height int) *SceneManager {
	return &SceneManager{
		factories: make(map[config.SceneKey]SceneFactory),
		width:     width,
		height:    height,
		logger:    log.WithPrefix("SceneManager"),
	}
}

// Register 注册场景工厂，重复注册会覆盖旧的工厂
func (sm *SceneManager) Register(key config.SceneKey, factory SceneFactory) {
	sm.factories[key] = factory
}

// Start 创建并切换到指定场景
// 新场景创建失败时保留当前场景
func (sm *SceneManager) Start(key config.SceneKey) error {
	factory, ok := sm.factories[key]
	if !ok {
		return fmt.Errorf("scene %q is not registered", key)
	}

	scene, err := factory(sm)
	if err != nil {
		return fmt.Errorf("failed to create scene %q: %w", key, err)
	}

	sm.SwitchTo(key, scene)
	sm.logger.Debug("scene started", "scene", key)
	return nil
}

// Restart 以全新实例重新启动当前场景
func (sm *SceneManager) Restart() error {
	if sm.GetCurrentScene() == nil {
		return fmt.Errorf("no active scene to restart")
	}
	return sm.Start(sm.CurrentKey())
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is shut down if it implements Shutdowner.
func (sm *SceneManager) SwitchTo(key config.SceneKey, scene Scene) {
	sm.Shutdown()
	sm.currentScene = scene
	sm.currentKey = key
}

// Shutdown 关闭当前场景（程序退出时调用）
func (sm *SceneManager) Shutdown() {
	if s, ok := sm.currentScene.(Shutdowner); ok {
		s.Shutdown()
	}
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentKey 返回当前场景键
func (sm *SceneManager) CurrentKey() config.SceneKey {
	return sm.currentKey
}

// SetSize 更新世界尺寸
func (sm *SceneManager) SetSize(width, height int) {
	sm.width = width
	sm.height = height
}

// Size 返回世界尺寸
func (sm *SceneManager) Size() (int, int) {
	return sm.width, sm.height
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
