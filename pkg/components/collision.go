package components

// SpriteSizeComponent 记录未缩放的贴图尺寸（像素）
// 仅用于碰撞盒计算：半宽 = Width * ScaleX / 2，半高 = Height * ScaleY / 2
type SpriteSizeComponent struct {
	Width  float64
	Height float64
}

// HalfExtents 返回结合缩放后的碰撞盒半宽、半高
func (s *SpriteSizeComponent) HalfExtents(t *TransformComponent) (float64, float64) {
	return s.Width * t.ScaleX / 2, s.Height * t.ScaleY / 2
}
