//go:build !mobile

// stub.go - 普通构建使用的占位文件
//
// 绑定入口在 mobile.go 和 embed.go 中，只在 -tags mobile 时编译，
// 这样 go build ./... 和 go test ./... 在桌面端也能通过。
package mobile

// Dummy 与移动端构建保持相同的导出符号
func Dummy() {}
