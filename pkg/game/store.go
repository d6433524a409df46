package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/astroshooter/pkg/utils"
)

// KeyValueStore 字符串键值存储
//
// 浏览器端由 localStorage 承载，桌面和移动端由应用数据目录承载。
// 测试中使用 MemoryStore 替代。
type KeyValueStore interface {
	// Get 读取键值，键不存在时 ok 为 false
	Get(key string) (value string, ok bool, err error)
	// Set 写入键值
	Set(key, value string) error
}

// MemoryStore 内存键值存储，用于测试和 gdata 不可用时的降级模式
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore 创建空的内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get 实现 KeyValueStore
func (s *MemoryStore) Get(key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

// Set 实现 KeyValueStore
func (s *MemoryStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

// gdataObject 所有键共享的 gdata 对象名
const gdataObject = "local"

// GdataStore 基于 gdata 的跨平台键值存储
//
// gdata 在 wasm 上使用 localStorage，在桌面端使用用户数据目录，
// 每个键对应对象 "local" 下的一个属性。
type GdataStore struct {
	manager *gdata.Manager
}

// NewGdataStore 包装已打开的 gdata Manager
func NewGdataStore(manager *gdata.Manager) *GdataStore {
	return &GdataStore{manager: manager}
}

// OpenGdataStore 打开指定应用名的 gdata 存储
// Android 上需要先准备数据目录
func OpenGdataStore(appName string) (*GdataStore, error) {
	if err := utils.EnsureStorageDir(); err != nil {
		return nil, fmt.Errorf("failed to prepare storage directory: %w", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage %q: %w", appName, err)
	}
	return NewGdataStore(manager), nil
}

// Get 实现 KeyValueStore
func (s *GdataStore) Get(key string) (string, bool, error) {
	if !s.manager.ObjectPropExists(gdataObject, key) {
		return "", false, nil
	}

	data, err := s.manager.LoadObjectProp(gdataObject, key)
	if err != nil {
		return "", false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set 实现 KeyValueStore
func (s *GdataStore) Set(key, value string) error {
	if err := s.manager.SaveObjectProp(gdataObject, key, []byte(value)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
