//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	cp -r data mobile/data && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.astroshooter -o build/android/astroshooter.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	cp -r data mobile/data && ebitenmobile bind -target ios -tags mobile -o build/ios/AstroShooter.xcframework -v ./mobile
package mobile

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/astroshooter/pkg/app"
	"github.com/gonewx/astroshooter/pkg/embedded"
)

func init() {
	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	// 移动端没有命令行参数，使用默认配置
	gameApp, err := app.NewApp(app.Config{})
	if err != nil {
		log.Fatal("游戏初始化失败", "err", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
