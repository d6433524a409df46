//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 1 时桌面端按移动端行为运行（用于本地调试触摸流程）
const MobileEmulateEnv = "ASTRO_MOBILE_EMULATE"

// IsMobile 当前是否按移动端运行
// 移动端没有键盘快捷键，也不能切换全屏
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
