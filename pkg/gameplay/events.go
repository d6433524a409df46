package gameplay

import (
	"github.com/charmbracelet/log"

	"github.com/gonewx/astroshooter/pkg/config"
	"github.com/gonewx/astroshooter/pkg/ecs"
)

// EventKind 碰撞事件类型
type EventKind int

const (
	// BulletHitEnemy 子弹击中陨石
	BulletHitEnemy EventKind = iota
	// PlayerHitEnemy 陨石撞上飞船
	PlayerHitEnemy
)

// String 返回事件名称（用于日志）
func (k EventKind) String() string {
	switch k {
	case BulletHitEnemy:
		return "BulletHitEnemy"
	case PlayerHitEnemy:
		return "PlayerHitEnemy"
	default:
		return "Unknown"
	}
}

// Event 碰撞事件
// X/Y 为陨石位置，爆炸动画在此处播放
type Event struct {
	Kind   EventKind
	Bullet ecs.EntityID
	Enemy  ecs.EntityID
	Player ecs.EntityID
	X, Y   float64
}

// Effects 事件处理需要的场景能力
type Effects interface {
	DestroyEntity(id ecs.EntityID)
	SpawnExplosion(x, y float64)
	PlaySound(key config.AssetKey)
	SetScoreText(text string)
	// ClearProjectiles 删除所有陨石和子弹
	ClearProjectiles()
	StopMusic()
	ResumeMusic()
	ShowGameOver()
	PausePhysics()
	ResumePhysics()
	// Restart 以全新状态重新开始游戏场景
	Restart()
}

// HighScoreSubmitter 最高分存储
// *game.HighScore 实现了该接口
type HighScoreSubmitter interface {
	Submit(score int) (updated bool, err error)
}

// GameOverFunc 游戏结束时调用，参数为最终分数和本局时长（毫秒）
type GameOverFunc func(score int, duration float64)

// Handler 处理碰撞事件
type Handler struct {
	tuning     config.Tuning
	state      *RunState
	effects    Effects
	highScore  HighScoreSubmitter
	scheduler  *Scheduler
	onGameOver GameOverFunc
	logger     *log.Logger
}

// NewHandler 创建事件处理器
func NewHandler(tuning config.Tuning, state *RunState, effects Effects, highScore HighScoreSubmitter, scheduler *Scheduler) *Handler {
	return &Handler{
		tuning:    tuning,
		state:     state,
		effects:   effects,
		highScore: highScore,
		scheduler: scheduler,
		logger:    log.WithPrefix("Gameplay"),
	}
}

// OnGameOver 设置游戏结束回调
func (h *Handler) OnGameOver(fn GameOverFunc) {
	h.onGameOver = fn
}

// Handle 处理一个碰撞事件
func (h *Handler) Handle(now float64, ev Event) {
	switch ev.Kind {
	case BulletHitEnemy:
		h.bulletHitEnemy(ev)
	case PlayerHitEnemy:
		h.playerHitEnemy(now, ev)
	default:
		h.logger.Warn("unknown collision event", "kind", ev.Kind)
	}
}

// bulletHitEnemy 击毁陨石并加分
func (h *Handler) bulletHitEnemy(ev Event) {
	h.effects.SpawnExplosion(ev.X, ev.Y)
	h.effects.DestroyEntity(ev.Bullet)
	h.effects.DestroyEntity(ev.Enemy)
	h.effects.PlaySound(config.AssetAsteroidExplosionSound)

	h.state.AddScore(h.tuning.Score.EnemyKill)
	h.effects.SetScoreText(ScoreText(h.state.Score))
}

// playerHitEnemy 结束本局，延迟后重新开始
// 一局只处理一次
func (h *Handler) playerHitEnemy(now float64, ev Event) {
	if h.state.GameOver {
		return
	}
	h.state.GameOver = true

	h.effects.StopMusic()
	h.effects.ClearProjectiles()
	h.effects.DestroyEntity(ev.Player)
	h.effects.DestroyEntity(ev.Enemy)
	h.effects.PlaySound(config.AssetShipExplosionSound)

	// 先比较最高分，再重置分数
	finalScore := h.state.Score
	if h.highScore != nil {
		updated, err := h.highScore.Submit(finalScore)
		if err != nil {
			h.logger.Warn("failed to persist high score", "score", finalScore, "err", err)
		} else if updated {
			h.logger.Info("new high score", "score", finalScore)
		}
	}
	if h.onGameOver != nil {
		h.onGameOver(finalScore, now)
	}

	h.effects.ShowGameOver()
	h.effects.PausePhysics()

	h.scheduler.After(now, h.tuning.RestartDelay, func() {
		h.effects.ResumePhysics()
		h.state.ResetScore()
		h.effects.Restart()
		h.effects.ResumeMusic()
	})

	h.logger.Debug("game over", "score", finalScore, "at", now)
}
