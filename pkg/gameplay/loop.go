package gameplay

import (
	"math"

	"github.com/gonewx/astroshooter/pkg/config"
)

// World 更新循环需要的引擎能力，由游戏场景实现
type World interface {
	// Player 返回飞船的位置和高度，飞船不存在时 ok 为 false
	Player() (x, y, height float64, ok bool)
	// SetPlayerVelocity 设置飞船速度
	SetPlayerVelocity(vx, vy float64)
	// SpawnBullet 生成一颗出界自动删除的子弹
	SpawnBullet(x, y, vy float64)
	// SpawnEnemy 生成一颗出界自动删除的陨石
	SpawnEnemy(x, y, vy float64)
	// PlaySound 播放音效
	PlaySound(key config.AssetKey)
	// SetScoreText 刷新分数显示
	SetScoreText(text string)
	// Width 返回世界宽度
	Width() float64
}

// Loop 每帧执行一次的游戏规则
type Loop struct {
	tuning config.Tuning
	world  World
	random Random
}

// NewLoop 创建更新循环
func NewLoop(tuning config.Tuning, world World, random Random) *Loop {
	return &Loop{
		tuning: tuning,
		world:  world,
		random: random,
	}
}

// Update 按固定顺序执行一帧的规则
//
// 顺序：暂停检查 → 存活奖励 → 射速衰减 → 自动射击 → 追踪移动 → 生成陨石。
// 暂停期间的时长不计入任何计时器，恢复后从暂停前的进度继续。
// 游戏结束后循环照常运行：飞船已销毁所以不再射击和移动，
// 存活奖励和陨石生成持续到场景重开。
// now 为场景时钟的当前时间（毫秒）。
func (l *Loop) Update(now float64, state *RunState) {
	if state.Paused {
		state.holdTimers(now)
		return
	}
	state.releaseTimers(now)

	l.applyTimeBonus(now, state)
	l.decayFireRate(now, state)
	l.autofire(now, state)
	l.homePlayer(state)
	l.spawnEnemy(now, state)
}

// applyTimeBonus 每经过一个奖励周期加一次分
// 一帧跨越多个周期时每个周期都计分，周期起点保持对齐
func (l *Loop) applyTimeBonus(now float64, state *RunState) {
	interval := l.tuning.Score.TimeBonusInterval
	if interval <= 0 {
		return
	}
	awarded := false
	for state.Timers.Due(TimerBonus, now, interval) {
		state.AddScore(l.tuning.Score.TimeBonus)
		state.Timers.Mark(TimerBonus, state.Timers.Last(TimerBonus)+interval)
		awarded = true
	}
	if awarded {
		l.world.SetScoreText(ScoreText(state.Score))
	}
}

// decayFireRate 每个衰减周期将射击间隔减少一次，不低于下限
func (l *Loop) decayFireRate(now float64, state *RunState) {
	fr := l.tuning.FireRate
	if fr.UpdateInterval <= 0 {
		return
	}
	for state.Timers.Due(TimerFireRate, now, fr.UpdateInterval) {
		state.FireRate = l.tuning.ClampFireRate(state.FireRate - fr.Decrease)
		state.Timers.Mark(TimerFireRate, state.Timers.Last(TimerFireRate)+fr.UpdateInterval)
	}
}

// autofire 射击间隔到期且飞船存在时发射一颗子弹
func (l *Loop) autofire(now float64, state *RunState) {
	if !state.Timers.Due(TimerAutoShot, now, state.FireRate) {
		return
	}

	x, y, height, ok := l.world.Player()
	if !ok {
		return
	}

	l.world.SpawnBullet(x, y-height/2, -l.tuning.BulletSpeed)
	l.world.PlaySound(config.AssetFireSound)
	state.Timers.Mark(TimerAutoShot, now)
}

// homePlayer 让飞船以固定速度朝指针目标移动，进入死区后静止
func (l *Loop) homePlayer(state *RunState) {
	x, y, _, ok := l.world.Player()
	if !ok {
		return
	}

	l.world.SetPlayerVelocity(HomingVelocity(x, y, state.TargetX, state.TargetY,
		l.tuning.Player.Speed, l.tuning.Player.Deadband))
}

// HomingVelocity 计算从 (x, y) 朝 (tx, ty) 的速度
// 距离不超过 deadband 时返回零速度
func HomingVelocity(x, y, tx, ty, speed, deadband float64) (float64, float64) {
	dx := tx - x
	dy := ty - y
	if math.Hypot(dx, dy) <= deadband {
		return 0, 0
	}

	angle := math.Atan2(dy, dx)
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// spawnEnemy 每个生成周期在屏幕上方随机位置生成一颗陨石
func (l *Loop) spawnEnemy(now float64, state *RunState) {
	e := l.tuning.Enemy
	if !state.Timers.Due(TimerEnemySpawn, now, e.SpawnInterval) {
		return
	}

	minX, maxX := SpawnRange(l.world.Width(), e.SpawnMargin)
	x := l.random.Between(minX, maxX)
	speed := l.random.Between(e.SpeedMin, e.SpeedMax)

	l.world.SpawnEnemy(float64(x), e.SpawnY, float64(speed))
	state.Timers.Mark(TimerEnemySpawn, now)
}

// SpawnRange 返回陨石生成的横坐标范围 [margin, width - margin]
// 屏幕过窄时退化为屏幕中心
func SpawnRange(width float64, margin int) (int, int) {
	maxX := int(width) - margin
	if maxX < margin {
		mid := int(width) / 2
		return mid, mid
	}
	return margin, maxX
}
