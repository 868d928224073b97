package systems

import "github.com/gonewx/invaders/pkg/components"

// CheckAABBCollision 检查两个实体的AABB（轴对齐边界框）是否发生碰撞
// 碰撞盒以实体位置为中心，半尺寸 = SpriteSize × Scale / 2
// 使用闭区间：边界刚好接触也算碰撞
//
// 参数:
//   - tf1, size1: 第一个实体的变换与贴图尺寸
//   - tf2, size2: 第二个实体的变换与贴图尺寸
//
// 返回:
//   - bool: 如果两个碰撞盒重叠返回 true，否则返回 false
func CheckAABBCollision(
	tf1 *components.TransformComponent, size1 *components.SpriteSizeComponent,
	tf2 *components.TransformComponent, size2 *components.SpriteSizeComponent) bool {

	hw1, hh1 := size1.HalfExtents(tf1)
	hw2, hh2 := size2.HalfExtents(tf2)

	left1, right1 := tf1.X-hw1, tf1.X+hw1
	bottom1, top1 := tf1.Y-hh1, tf1.Y+hh1
	left2, right2 := tf2.X-hw2, tf2.X+hw2
	bottom2, top2 := tf2.Y-hh2, tf2.Y+hh2

	// 任一轴上没有重叠，则没有碰撞
	return right1 >= left2 &&
		left1 <= right2 &&
		top1 >= bottom2 &&
		bottom1 <= top2
}
