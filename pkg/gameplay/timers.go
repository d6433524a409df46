package gameplay

// TimerName 计时器名称
type TimerName string

// 一局游戏使用的计时器
const (
	TimerBonus      TimerName = "bonus"      // 上一次存活奖励
	TimerFireRate   TimerName = "fireRate"   // 上一次射速衰减
	TimerAutoShot   TimerName = "autoShot"   // 上一次自动射击
	TimerEnemySpawn TimerName = "enemySpawn" // 上一次生成陨石
)

// TimerNames 返回全部计时器名称
func TimerNames() []TimerName {
	return []TimerName{TimerBonus, TimerFireRate, TimerAutoShot, TimerEnemySpawn}
}

// Timers 命名时间戳表
//
// 每个计时器只保存"上一次触发"的时间（毫秒），
// 是否到期由调用方比较 now 与间隔决定。
type Timers struct {
	last map[TimerName]float64
}

// NewTimers 创建所有计时器都为 0 的表
func NewTimers() *Timers {
	t := &Timers{last: make(map[TimerName]float64, 4)}
	t.Reset()
	return t
}

// Reset 将所有计时器归零
func (t *Timers) Reset() {
	for _, name := range TimerNames() {
		t.last[name] = 0
	}
}

// Last 返回计时器上一次触发的时间
func (t *Timers) Last(name TimerName) float64 {
	return t.last[name]
}

// Elapsed 返回自上一次触发以来经过的时间
func (t *Timers) Elapsed(name TimerName, now float64) float64 {
	return now - t.last[name]
}

// Due 经过的时间是否达到 interval
func (t *Timers) Due(name TimerName, now, interval float64) bool {
	return t.Elapsed(name, now) >= interval
}

// Mark 记录计时器在 at 时刻触发
func (t *Timers) Mark(name TimerName, at float64) {
	t.last[name] = at
}

// Shift 将所有计时器向后平移 delta，用于扣除暂停的时长
func (t *Timers) Shift(delta float64) {
	if delta <= 0 {
		return
	}
	for name := range t.last {
		t.last[name] += delta
	}
}
