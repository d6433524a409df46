// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSample 一帧内读取到的原始指针数据
// 同时支持鼠标和触摸输入，触摸优先
type PointerSample struct {
	X, Y    int
	Pressed bool
	// Touch 表示数据来自触摸
	Touch bool
}

// ReadPointer 读取当前帧的指针数据
func ReadPointer() PointerSample {
	// 首先检查触摸输入（移动设备）
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerSample{X: x, Y: y, Pressed: true, Touch: true}
	}

	// 其次检查鼠标输入（桌面设备）
	x, y := ebiten.CursorPosition()
	return PointerSample{
		X:       x,
		Y:       y,
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// PointerState 指针在本帧的状态
type PointerState struct {
	X, Y         int
	Pressed      bool
	JustPressed  bool
	JustReleased bool
	// Moved 位置相对上一帧发生变化
	Moved bool
}

// PointerTracker 逐帧比较指针数据，得到按下/释放/移动事件
//
// 触摸释放后没有位置信息，此时沿用最后一次触摸的位置，
// 避免飞船在手指离开屏幕时跳到 (0, 0)。
type PointerTracker struct {
	last        PointerSample
	initialized bool
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Poll 读取当前帧输入并更新状态（每帧调用一次）
func (p *PointerTracker) Poll() PointerState {
	return p.Update(ReadPointer())
}

// Update 用给定的采样更新状态
func (p *PointerTracker) Update(s PointerSample) PointerState {
	// 触摸结束后保持最后的触摸位置，直到鼠标再次按下
	if p.last.Touch && !s.Touch && !s.Pressed {
		s.X, s.Y, s.Touch = p.last.X, p.last.Y, true
	}

	state := PointerState{
		X:       s.X,
		Y:       s.Y,
		Pressed: s.Pressed,
	}

	if p.initialized {
		state.JustPressed = s.Pressed && !p.last.Pressed
		state.JustReleased = !s.Pressed && p.last.Pressed
		state.Moved = s.X != p.last.X || s.Y != p.last.Y
	} else {
		state.JustPressed = s.Pressed
	}

	p.last = s
	p.initialized = true
	return state
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
