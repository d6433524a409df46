package game

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/gonewx/astroshooter/pkg/config"
)

// HighScore 最高分服务
//
// 持久化内容是一个键值项，值为十进制整数字符串。
// 只有当存储为空或新分数严格更高时才写入，因此存储值单调不减。
type HighScore struct {
	store  KeyValueStore
	key    string
	logger *log.Logger
}

// NewHighScore 创建最高分服务
// store 为 nil 时使用内存存储（降级模式，重启后丢失）
func NewHighScore(store KeyValueStore) *HighScore {
	if store == nil {
		store = NewMemoryStore()
	}
	return &HighScore{
		store:  store,
		key:    config.HighScoreStorageKey,
		logger: log.WithPrefix("HighScore"),
	}
}

// stored 读取已保存的最高分
// 键不存在、读取失败或无法解析时 ok 为 false
func (h *HighScore) stored() (int, bool) {
	raw, ok, err := h.store.Get(h.key)
	if err != nil {
		h.logger.Warn("failed to read high score", "err", err)
		return 0, false
	}
	if !ok {
		return 0, false
	}

	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		h.logger.Warn("ignoring unparsable high score", "value", raw)
		return 0, false
	}
	return value, true
}

// Load 返回已保存的最高分，没有记录时返回 0
func (h *HighScore) Load() int {
	value, _ := h.stored()
	return value
}

// Submit 提交一局的最终分数
//
// 返回：
//   - updated: 是否写入了新的最高分
//   - err: 写入失败时返回错误（内存中的判断结果仍然有效）
func (h *HighScore) Submit(score int) (bool, error) {
	current, ok := h.stored()
	if ok && score <= current {
		return false, nil
	}

	if err := h.store.Set(h.key, strconv.Itoa(score)); err != nil {
		return false, err
	}

	h.logger.Debug("new high score", "score", score, "previous", current)
	return true, nil
}
