package components

// BodyComponent 物理体，定义实体的碰撞检测边界框
// 碰撞盒中心对齐实体位置
type BodyComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）

	// CollideWorldBounds 为 true 时位置被限制在世界边界内
	CollideWorldBounds bool
}
