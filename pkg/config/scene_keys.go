package config

// SceneKey 场景键
type SceneKey string

const (
	// SceneInitial 标题/开始界面
	SceneInitial SceneKey = "InitialScene"
	// SceneGame 游戏主场景
	SceneGame SceneKey = "GameScene"
)
