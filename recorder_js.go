//go:build js

package main

import "github.com/gonewx/astroshooter/pkg/scenes"

// 浏览器没有文件系统，不记录对局历史
const defaultDBPath = ""

func openRecorder(string) (scenes.RunRecorder, func()) {
	return nil, func() {}
}
