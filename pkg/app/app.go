// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端、浏览器和移动端共用。
// 桌面端和浏览器通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/astroshooter/pkg/config"
	"github.com/gonewx/astroshooter/pkg/game"
	"github.com/gonewx/astroshooter/pkg/gameplay"
	"github.com/gonewx/astroshooter/pkg/scenes"
	"github.com/gonewx/astroshooter/pkg/utils"
)

// AppName gdata 存储使用的应用名
const AppName = "astroshooter"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机数种子，0 表示随机
	Seed uint64
	// TuningPath 调优文件路径，为空时使用嵌入的 data/tuning.yaml
	TuningPath string
	// Recorder 对局记录（可为 nil）
	Recorder scenes.RunRecorder
	// Store 键值存储，为 nil 时打开 gdata 存储
	Store game.KeyValueStore
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	audioManager *game.AudioManager

	logger *log.Logger
}

// SetupLogging 配置全局日志级别
// 必须在创建任何子 logger 之前调用，WithPrefix 创建的 logger 会复制当时的级别
func SetupLogging(verbose bool) {
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	SetupLogging(cfg.Verbose)
	logger := log.WithPrefix("App")

	tuning, err := config.LoadTuning(cfg.TuningPath)
	if err != nil {
		return nil, fmt.Errorf("调优参数加载失败: %w", err)
	}

	store := cfg.Store
	if store == nil {
		gdataStore, err := game.OpenGdataStore(AppName)
		if err != nil {
			// 存储不可用时降级为内存存储，最高分在本次运行中仍然有效
			logger.Warn("persistent storage unavailable, high score will not be saved", "err", err)
			store = game.NewMemoryStore()
		} else {
			store = gdataStore
		}
	}

	// 初始化音频上下文（移动端可能已经创建过）
	audioContext := audio.CurrentContext()
	if audioContext == nil {
		audioContext = audio.NewContext(game.DefaultSampleRate)
	}

	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadAll(); err != nil {
		return nil, fmt.Errorf("资源生成失败: %w", err)
	}

	settings := game.NewSettingsManager(store)
	audioManager := game.NewAudioManager(resourceManager, settings, tuning.Sound)
	highScore := game.NewHighScore(store)

	sceneManager := game.NewSceneManager(config.DefaultWindowWidth, config.DefaultWindowHeight)
	scenes.Register(sceneManager, scenes.Deps{
		Resources: resourceManager,
		HighScore: highScore,
		Tuning:    tuning,
		Random:    gameplay.NewRandom(cfg.Seed),
		Audio:     audioManager,
		Recorder:  cfg.Recorder,
	})

	if err := sceneManager.Start(config.SceneInitial); err != nil {
		return nil, fmt.Errorf("初始场景创建失败: %w", err)
	}

	logger.Info("app initialized", "highScore", highScore.Load(), "seed", cfg.Seed)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		audioManager: audioManager,
		logger:       logger,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 移动端没有键盘
	if !utils.IsMobile() {
		// F11 切换全屏
		if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
		}

		// M 切换静音
		if inpututil.IsKeyJustPressed(ebiten.KeyM) {
			a.ToggleMute()
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// ToggleMute 切换静音并保存设置
func (a *App) ToggleMute() {
	muted := a.settings.ToggleMute()
	a.audioManager.ApplySettings()
	if err := a.settings.Save(); err != nil {
		a.logger.Warn("failed to save settings", "err", err)
	}
	a.logger.Debug("mute toggled", "muted", muted)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 世界尺寸跟随窗口/画布大小
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.sceneManager.Size()
	}
	a.sceneManager.SetSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Shutdown 关闭当前场景（窗口关闭时调用）
func (a *App) Shutdown() {
	a.sceneManager.Shutdown()
}
