// Package utils 提供渲染层使用的坐标换算工具
package utils

// 坐标系统说明
//
// 世界坐标：原点在视口中心，X 轴向右，Y 轴向上（模拟核心使用）
// 屏幕坐标：原点在视口左上角，X 轴向右，Y 轴向下（ebiten 绘制使用）
//
// 两者只差一次平移与 Y 轴翻转，视口尺寸在会话内固定。

// WorldToScreen 将世界坐标转换为屏幕坐标
//
// # 参数
//
//   - worldX, worldY: 世界坐标
//   - viewW, viewH: 视口尺寸
//
// # 计算公式
//
//	screenX = viewW/2 + worldX
//	screenY = viewH/2 - worldY
func WorldToScreen(worldX, worldY, viewW, viewH float64) (screenX, screenY float64) {
	return viewW/2 + worldX, viewH/2 - worldY
}
