package components

// PositionComponent 存储实体在屏幕坐标系中的位置（像素）
// 坐标对应精灵的原点（默认中心）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 存储实体的速度（像素/秒）
// 物理系统每帧按 deltaTime 积分到位置上
type VelocityComponent struct {
	VX float64
	VY float64
}

// Set 同时设置两个分量
func (v *VelocityComponent) Set(vx, vy float64) {
	v.VX = vx
	v.VY = vy
}
