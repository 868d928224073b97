package components

// FormationComponent 敌机的编队飞行轨迹
// 敌机先从屏幕外的起点飞向椭圆轨道，贴近轨道后开始绕枢轴旋转
type FormationComponent struct {
	StartX, StartY   float64 // 起点（屏幕外）
	RadiusX, RadiusY float64 // 椭圆半径
	PivotX, PivotY   float64 // 椭圆中心
	Speed            float64 // 线速度（单位/秒）
	Angle            float64 // 当前轨道角（弧度）
}
