package gameplay

import "sort"

// delayedCall 一次延迟调用
type delayedCall struct {
	due float64
	seq int
	fn  func()
}

// Scheduler 轮询式延迟调用
//
// 调用方每帧以当前时间调用 Update，到期的回调按到期时间（相同时按登记顺序）执行。
// 不使用 goroutine 或定时器，所有回调都在游戏循环中同步执行。
type Scheduler struct {
	calls []delayedCall
	seq   int
}

// NewScheduler 创建空的调度器
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After 登记一个在 now+delay 时刻执行的回调
func (s *Scheduler) After(now, delay float64, fn func()) {
	if fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	s.calls = append(s.calls, delayedCall{due: now + delay, seq: s.seq, fn: fn})
	s.seq++
}

// Update 执行所有到期的回调，返回执行的数量
// 回调中登记的新回调最早在下一次 Update 执行
func (s *Scheduler) Update(now float64) int {
	if len(s.calls) == 0 {
		return 0
	}

	var due, pending []delayedCall
	for _, c := range s.calls {
		if c.due <= now {
			due = append(due, c)
		} else {
			pending = append(pending, c)
		}
	}
	if len(due) == 0 {
		return 0
	}

	s.calls = pending
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})

	for _, c := range due {
		c.fn()
	}
	return len(due)
}

// Pending 返回尚未执行的回调数量
func (s *Scheduler) Pending() int {
	return len(s.calls)
}

// Clear 丢弃所有尚未执行的回调
func (s *Scheduler) Clear() {
	s.calls = nil
}
