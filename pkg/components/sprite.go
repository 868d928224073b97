package components

// SpriteComponent 存储实体的视觉表现
// ImageID 是资源配置中的资源ID（如 "IMAGE_PLAYER"），模拟核心从不解析它，
// 只有渲染端据此取图。FrameIndex 用于精灵表（爆炸动画）。
type SpriteComponent struct {
	ImageID    string
	FrameIndex int
}
