package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., the start screen or the gameplay screen).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Shutdowner 是一个可选接口，场景被替换或程序退出时调用
//
// 实现此接口的场景在以下时机被调用 Shutdown()：
//   - 切换到其他场景（包括重启自身）
//   - 游戏窗口关闭
//
// Shutdown 之后场景不会再收到 Update/Draw，
// 但正在执行的 Update 需要自行检查并尽快返回。
type Shutdowner interface {
	Shutdown()
}
