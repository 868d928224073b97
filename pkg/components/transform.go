package components

// TransformComponent 存储实体的世界坐标与缩放
// 坐标系原点位于视口中心，X 向右、Y 向上；Z 仅用于绘制排序
//
// 位置只由移动系统（积分）和生成逻辑（初始值）修改
type TransformComponent struct {
	X, Y, Z float64

	// ScaleX/ScaleY 缩放因子（1.0 = 原始大小）
	ScaleX, ScaleY float64
}

// NewTransform 创建统一缩放的变换组件
func NewTransform(x, y, z, scale float64) *TransformComponent {
	return &TransformComponent{X: x, Y: y, Z: z, ScaleX: scale, ScaleY: scale}
}
