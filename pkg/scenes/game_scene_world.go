package scenes

import (
	"github.com/gonewx/astroshooter/pkg/components"
	"github.com/gonewx/astroshooter/pkg/config"
	"github.com/gonewx/astroshooter/pkg/ecs"
	"github.com/gonewx/astroshooter/pkg/entities"
	"github.com/gonewx/astroshooter/pkg/systems"
)

// GameScene 同时实现 gameplay.World 和 gameplay.Effects

// Player 返回飞船位置和高度
func (s *GameScene) Player() (x, y, height float64, ok bool) {
	if !s.playerAlive || s.entityManager.IsMarkedForDestroy(s.playerID) {
		return 0, 0, 0, false
	}
	pos, ok1 := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.playerID)
	sprite, ok2 := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.playerID)
	if !ok1 || !ok2 {
		return 0, 0, 0, false
	}
	_, h := sprite.Size()
	return pos.X, pos.Y, h, true
}

// SetPlayerVelocity 设置飞船速度
func (s *GameScene) SetPlayerVelocity(vx, vy float64) {
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, s.playerID); ok {
		vel.Set(vx, vy)
	}
}

// SpawnBullet 生成子弹
func (s *GameScene) SpawnBullet(x, y, vy float64) {
	if _, err := entities.NewBullet(s.entityManager, s.deps.Resources, x, y, vy); err != nil {
		s.logger.Error("failed to spawn bullet", "err", err)
	}
}

// SpawnEnemy 生成陨石
func (s *GameScene) SpawnEnemy(x, y, vy float64) {
	if _, err := entities.NewEnemy(s.entityManager, s.deps.Resources, x, y, vy); err != nil {
		s.logger.Error("failed to spawn enemy", "err", err)
	}
}

// PlaySound 播放音效
func (s *GameScene) PlaySound(key config.AssetKey) {
	if s.deps.Audio != nil {
		s.deps.Audio.PlaySound(key)
	}
}

// SetScoreText 刷新分数文字
func (s *GameScene) SetScoreText(text string) {
	s.scoreLabel.SetText(text)
}

// Width 返回世界宽度
func (s *GameScene) Width() float64 {
	return float64(s.width)
}

// DestroyEntity 删除实体
func (s *GameScene) DestroyEntity(id ecs.EntityID) {
	s.entityManager.DestroyEntity(id)
	if id == s.playerID {
		s.playerAlive = false
	}
}

// SpawnExplosion 在指定位置播放爆炸动画
func (s *GameScene) SpawnExplosion(x, y float64) {
	if _, err := entities.NewExplosion(s.entityManager, s.deps.Resources, x, y); err != nil {
		s.logger.Error("failed to spawn explosion", "err", err)
	}
}

// ClearProjectiles 删除所有陨石和子弹
func (s *GameScene) ClearProjectiles() {
	enemies := systems.ClearGroup(s.entityManager, components.GroupEnemy)
	bullets := systems.ClearGroup(s.entityManager, components.GroupBullet)
	s.logger.Debug("projectiles cleared", "enemies", enemies, "bullets", bullets)
}

// StopMusic 停止背景音乐
func (s *GameScene) StopMusic() {
	if s.deps.Audio != nil {
		s.deps.Audio.StopMusic()
	}
}

// ResumeMusic 恢复背景音乐
func (s *GameScene) ResumeMusic() {
	if s.deps.Audio != nil {
		s.deps.Audio.ResumeMusic()
	}
}

// ShowGameOver 显示游戏结束文字
func (s *GameScene) ShowGameOver() {
	s.gameOverLabel.Visible = true
}

// PausePhysics 暂停物理
func (s *GameScene) PausePhysics() {
	s.physicsSystem.Pause()
}

// ResumePhysics 恢复物理
func (s *GameScene) ResumePhysics() {
	s.physicsSystem.Resume()
}

// Restart 以全新实例重新开始游戏场景
func (s *GameScene) Restart() {
	if s.stopped {
		return
	}
	if err := s.sceneManager.Restart(); err != nil {
		s.logger.Error("failed to restart game scene", "err", err)
	}
}
