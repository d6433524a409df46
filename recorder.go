//go:build !js

package main

import (
	"github.com/charmbracelet/log"

	"github.com/gonewx/astroshooter/pkg/scenes"
	"github.com/gonewx/astroshooter/pkg/scoreboard"
)

const defaultDBPath = scoreboard.DefaultPath

// openRecorder 打开对局记录数据库
// 打开失败时只记录日志，游戏照常运行
func openRecorder(path string) (scenes.RunRecorder, func()) {
	if path == "" {
		return nil, func() {}
	}

	store, err := scoreboard.Open(path)
	if err != nil {
		log.WithPrefix("Main").Warn("could not open run history", "path", path, "err", err)
		return nil, func() {}
	}
	return store, func() { store.Close() }
}
