//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 确保 Android 应用数据目录存在并可写
// gdata 在 Android 上把数据写到 /data/data/{package}/ 下，但不会预先创建目录，
// 需要在打开 gdata 之前调用。
func EnsureStorageDir() error {
	dir := GetStoragePath()
	if dir == "" {
		return fmt.Errorf("cannot detect Android package name")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return fmt.Errorf("storage directory %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// GetStoragePath 返回 gdata 使用的 Android 数据目录
func GetStoragePath() string {
	pkg, err := androidPackage()
	if err != nil {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}

// androidPackage 从 /proc/self/cmdline 读取应用包名
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}

	// cmdline 以 NUL 分隔参数，包名是第一个参数
	name := strings.TrimSpace(strings.SplitN(string(data), "\x00", 2)[0])
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}
