package gameplay

import (
	"strconv"

	"github.com/gonewx/astroshooter/pkg/config"
)

// RunState 一局游戏的可变状态
// 由游戏场景持有，每次重开场景都会创建新的实例
type RunState struct {
	Score    int
	Paused   bool
	GameOver bool

	// FireRate 当前自动射击间隔（毫秒）
	FireRate float64

	// TargetX/TargetY 最后一次指针位置，飞船持续向该点移动
	TargetX float64
	TargetY float64

	Timers *Timers

	// pausedAt 本次暂停开始时的时钟时间
	pausedAt   float64
	pauseTaken bool
}

// NewRunState 创建一局新游戏的状态
// 目标点初始化为飞船所在位置，飞船在玩家移动指针之前保持静止
func NewRunState(tuning config.Tuning, targetX, targetY float64) *RunState {
	return &RunState{
		FireRate: tuning.FireRate.Initial,
		TargetX:  targetX,
		TargetY:  targetY,
		Timers:   NewTimers(),
	}
}

// SetTarget 更新指针目标
func (s *RunState) SetTarget(x, y float64) {
	s.TargetX = x
	s.TargetY = y
}

// AddScore 增加分数，负数被忽略，保证分数不为负
func (s *RunState) AddScore(points int) {
	if points <= 0 {
		return
	}
	s.Score += points
}

// ResetScore 将分数归零
func (s *RunState) ResetScore() {
	s.Score = 0
}

// holdTimers 记录暂停开始的时间，同一次暂停只记录一次
func (s *RunState) holdTimers(now float64) {
	if s.pauseTaken {
		return
	}
	s.pausedAt = now
	s.pauseTaken = true
}

// releaseTimers 恢复时将计时器平移暂停的时长
// 暂停期间不算存活时间，也不推进射速衰减
func (s *RunState) releaseTimers(now float64) {
	if !s.pauseTaken {
		return
	}
	s.Timers.Shift(now - s.pausedAt)
	s.pauseTaken = false
}

// ScoreText 分数显示文本
func ScoreText(score int) string {
	return "Score: " + strconv.Itoa(score)
}

// HighScoreText 最高分显示文本
func HighScoreText(highScore int) string {
	return "High Score: " + strconv.Itoa(highScore)
}
