package game

// Clock 场景时钟，单调递增，单位为毫秒
//
// 由场景在每个 tick 推进，所有计时效果（射击、生成、奖励、延迟调用）
// 都通过比较 Now() 与保存的时间戳实现，不阻塞也不休眠。
type Clock struct {
	now float64
}

// NewClock 创建从 0 开始的时钟
func NewClock() *Clock {
	return &Clock{}
}

// Advance 按 deltaTime（秒）推进时钟
// 负值被忽略，保证单调性
func (c *Clock) Advance(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	c.now += deltaTime * 1000
}

// Now 返回当前时间（毫秒）
func (c *Clock) Now() float64 {
	return c.now
}
