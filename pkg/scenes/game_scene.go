package scenes

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/astroshooter/pkg/components"
	"github.com/gonewx/astroshooter/pkg/config"
	"github.com/gonewx/astroshooter/pkg/ecs"
	"github.com/gonewx/astroshooter/pkg/entities"
	"github.com/gonewx/astroshooter/pkg/game"
	"github.com/gonewx/astroshooter/pkg/gameplay"
	"github.com/gonewx/astroshooter/pkg/systems"
	"github.com/gonewx/astroshooter/pkg/utils"
)

const (
	// UI Layout Constants
	ScoreLabelOffsetY     = 50 // 分数文字距底部
	HighScoreLabelOffsetY = 90 // 最高分文字距底部
	ScoreFontSize         = 32
	GameOverFontSize      = 64
)

var (
	// GameOverColor 游戏结束文字颜色
	GameOverColor = color.RGBA{R: 0xFF, A: 0xFF}
)

// GameScene 游戏主场景
//
// 场景持有一局游戏的全部状态。每次重开都由场景管理器创建新的实例，
// 上一局的实体、计时器和延迟调用随旧实例一起丢弃。
type GameScene struct {
	deps         Deps
	sceneManager *game.SceneManager

	// ECS Framework and Systems
	entityManager   *ecs.EntityManager
	physicsSystem   *systems.PhysicsSystem
	boundsSystem    *systems.BoundsSystem
	collisionSystem *systems.CollisionSystem
	animationSystem *systems.AnimationSystem
	renderSystem    *systems.RenderSystem

	backgroundID ecs.EntityID
	playerID     ecs.EntityID
	playerAlive  bool

	// 规则层
	clock     *game.Clock
	state     *gameplay.RunState
	loop      *gameplay.Loop
	handler   *gameplay.Handler
	scheduler *gameplay.Scheduler

	pointer *utils.PointerTracker

	// UI
	scoreLabel     *utils.Label
	highScoreLabel *utils.Label
	gameOverLabel  *utils.Label

	width, height int

	// stopped 场景已被替换，残留的回调不再生效
	stopped bool

	logger *log.Logger
}

// NewGameScene 创建游戏场景并开始一局新游戏
func NewGameScene(deps Deps, sm *game.SceneManager) (*GameScene, error) {
	if deps.Resources == nil {
		return nil, fmt.Errorf("game scene requires a resource manager")
	}
	if deps.Random == nil {
		deps.Random = gameplay.NewRandom(0)
	}

	w, h := sm.Size()
	em := ecs.NewEntityManager()

	s := &GameScene{
		deps:            deps,
		sceneManager:    sm,
		entityManager:   em,
		physicsSystem:   systems.NewPhysicsSystem(em, float64(w), float64(h)),
		boundsSystem:    systems.NewBoundsSystem(em, float64(w), float64(h)),
		collisionSystem: systems.NewCollisionSystem(em),
		animationSystem: systems.NewAnimationSystem(em),
		renderSystem:    systems.NewRenderSystem(em),
		clock:           game.NewClock(),
		scheduler:       gameplay.NewScheduler(),
		pointer:         utils.NewPointerTracker(),
		width:           w,
		height:          h,
		logger:          log.WithPrefix("GameScene"),
	}

	var err error
	s.backgroundID, err = entities.NewBackground(em, deps.Resources, float64(w), float64(h))
	if err != nil {
		return nil, err
	}

	cx, cy := float64(w)/2, float64(h)/2
	s.playerID, err = entities.NewPlayer(em, deps.Resources, cx, cy)
	if err != nil {
		return nil, err
	}
	s.playerAlive = true

	// 预热爆炸动画，避免第一次爆炸时生成
	if _, err := deps.Resources.LoadAnimation(config.AnimExplode); err != nil {
		return nil, fmt.Errorf("failed to load explosion animation: %w", err)
	}

	s.state = gameplay.NewRunState(deps.Tuning, cx, cy)
	s.loop = gameplay.NewLoop(deps.Tuning, s, deps.Random)
	s.handler = gameplay.NewHandler(deps.Tuning, s.state, s, deps.HighScore, s.scheduler)
	s.handler.OnGameOver(s.recordRun)

	s.initUI()

	if deps.Audio != nil {
		deps.Audio.PlayMusic(config.AssetBackgroundMusic)
	}

	s.logger.Debug("game scene created", "width", w, "height", h)
	return s, nil
}

// initUI 创建分数、最高分和游戏结束文字
func (s *GameScene) initUI() {
	highScore := 0
	if s.deps.HighScore != nil {
		highScore = s.deps.HighScore.Load()
	}

	s.scoreLabel = utils.NewLabel(gameplay.ScoreText(0), 0, 0, ScoreFontSize, color.White)
	s.highScoreLabel = utils.NewLabel(gameplay.HighScoreText(highScore), 0, 0, ScoreFontSize, GoldColor)

	s.gameOverLabel = utils.NewLabel("Game Over", 0, 0, GameOverFontSize, GameOverColor)
	s.gameOverLabel.Bold = true
	s.gameOverLabel.Background = color.Black
	s.gameOverLabel.PaddingX = 20
	s.gameOverLabel.PaddingY = 10
	s.gameOverLabel.Visible = false

	s.layoutUI()
}

// layoutUI 按当前屏幕尺寸摆放文字
func (s *GameScene) layoutUI() {
	cx := float64(s.width) / 2
	s.scoreLabel.X, s.scoreLabel.Y = cx, float64(s.height-ScoreLabelOffsetY)
	s.highScoreLabel.X, s.highScoreLabel.Y = cx, float64(s.height-HighScoreLabelOffsetY)
	s.gameOverLabel.X, s.gameOverLabel.Y = cx, float64(s.height)/2
	s.gameOverLabel.MaxWidth = float64(s.width) * 0.9
}

// syncSize 窗口尺寸变化时更新世界边界、背景和文字位置
func (s *GameScene) syncSize() {
	w, h := s.sceneManager.Size()
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h

	s.physicsSystem.SetWorldSize(float64(w), float64(h))
	s.boundsSystem.SetWorldSize(float64(w), float64(h))
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.backgroundID); ok {
		sprite.DisplayWidth = float64(w)
		sprite.DisplayHeight = float64(h)
	}
	s.layoutUI()
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	s.step(deltaTime, s.pointer.Poll())
}

// step 用给定的指针状态推进一帧
func (s *GameScene) step(deltaTime float64, p utils.PointerState) {
	if s.stopped {
		return
	}

	s.clock.Advance(deltaTime)
	now := s.clock.Now()

	s.syncSize()
	s.handlePointer(p)

	s.loop.Update(now, s.state)

	s.physicsSystem.Update(deltaTime)
	s.boundsSystem.Update()
	s.detectCollisions(now)
	s.animationSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()

	// 最后执行延迟调用，重开场景后本实例不再做任何事
	s.scheduler.Update(now)
}

// handlePointer 指针移动更新目标点；可选按住暂停
func (s *GameScene) handlePointer(p utils.PointerState) {
	if p.Moved || p.JustPressed {
		s.state.SetTarget(float64(p.X), float64(p.Y))
	}

	if !s.deps.Tuning.PointerHoldPauses || s.state.GameOver {
		return
	}
	if p.JustPressed {
		s.state.Paused = true
		s.physicsSystem.Pause()
	} else if p.JustReleased {
		s.state.Paused = false
		s.physicsSystem.Resume()
	}
}

// detectCollisions 将碰撞转换为事件交给规则层处理
// 物理暂停时不检测碰撞
func (s *GameScene) detectCollisions(now float64) {
	if s.physicsSystem.IsPaused() {
		return
	}

	s.collisionSystem.Collide(components.GroupBullet, components.GroupEnemy, func(bullet, enemy ecs.EntityID) {
		x, y := s.entityPosition(enemy)
		s.handler.Handle(now, gameplay.Event{
			Kind:   gameplay.BulletHitEnemy,
			Bullet: bullet,
			Enemy:  enemy,
			X:      x,
			Y:      y,
		})
	})

	s.collisionSystem.Collide(components.GroupPlayer, components.GroupEnemy, func(player, enemy ecs.EntityID) {
		x, y := s.entityPosition(enemy)
		s.handler.Handle(now, gameplay.Event{
			Kind:   gameplay.PlayerHitEnemy,
			Player: player,
			Enemy:  enemy,
			X:      x,
			Y:      y,
		})
	})
}

func (s *GameScene) entityPosition(id ecs.EntityID) (float64, float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return 0, 0
	}
	return pos.X, pos.Y
}

// recordRun 游戏结束时记录本局结果
func (s *GameScene) recordRun(score int, duration float64) {
	if s.deps.Recorder == nil {
		return
	}
	d := time.Duration(duration * float64(time.Millisecond))
	if err := s.deps.Recorder.Record(score, d); err != nil {
		s.logger.Warn("failed to record run", "score", score, "err", err)
	}
}

// Draw 绘制实体和文字
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.renderSystem.Draw(screen)

	s.highScoreLabel.Draw(screen)
	s.scoreLabel.Draw(screen)
	s.gameOverLabel.Draw(screen)
}

// Shutdown 场景被替换时调用
func (s *GameScene) Shutdown() {
	s.stopped = true
	s.logger.Debug("game scene shut down",
		"score", s.state.Score,
		"entities", s.entityManager.Count(),
		"enemies", systems.CountGroup(s.entityManager, components.GroupEnemy),
		"pendingCalls", s.scheduler.Pending())
	s.scheduler.Clear()
	s.entityManager.Clear()
}
