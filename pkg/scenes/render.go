package scenes

import (
	"image"
	"image/color"
	"log"
	"sort"

	"github.com/gonewx/invaders/pkg/assets"
	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/game"
	"github.com/gonewx/invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// placeholderColors 缺失贴图时的占位颜色
var placeholderColors = map[string]color.RGBA{
	config.ImagePlayer:       {R: 80, G: 200, B: 255, A: 255},
	config.ImagePlayerDimmed: {R: 40, G: 100, B: 128, A: 255},
	config.ImagePlayerLaser:  {R: 120, G: 255, B: 120, A: 255},
	config.ImageEnemy:        {R: 255, G: 90, B: 90, A: 255},
	config.ImageEnemyLaser:   {R: 255, G: 200, B: 60, A: 255},
	config.ImageExplosion:    {R: 255, G: 160, B: 40, A: 255},
}

// SpriteRenderer 绘制所有带 Transform + Sprite 的实体
//
// 坐标系：世界原点在视口中心，Y 轴向上；绘制时转换为屏幕坐标。
// 按 Z 升序绘制，Z 相同时保持 ID 顺序。
type SpriteRenderer struct {
	rm           *assets.ResourceManager // 可为 nil（全部使用占位图）
	cfg          *config.GameConfig
	placeholders map[string]*ebiten.Image
	warned       map[string]bool
}

// NewSpriteRenderer 创建渲染器
func NewSpriteRenderer(rm *assets.ResourceManager, cfg *config.GameConfig) *SpriteRenderer {
	return &SpriteRenderer{
		rm:           rm,
		cfg:          cfg,
		placeholders: make(map[string]*ebiten.Image),
		warned:       make(map[string]bool),
	}
}

// drawItem 一次绘制所需的数据
type drawItem struct {
	id        ecs.EntityID
	transform *components.TransformComponent
	sprite    *components.SpriteComponent
}

// Draw 绘制世界中的所有精灵
func (r *SpriteRenderer) Draw(screen *ebiten.Image, em *ecs.EntityManager, gs *game.GameState) {
	ids := ecs.GetEntitiesWith2[*components.TransformComponent, *components.SpriteComponent](em)

	items := make([]drawItem, 0, len(ids))
	for _, id := range ids {
		tf, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		items = append(items, drawItem{id: id, transform: tf, sprite: sprite})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].transform.Z < items[j].transform.Z
	})

	for _, item := range items {
		r.drawSprite(screen, em, gs, item)
	}
}

func (r *SpriteRenderer) drawSprite(screen *ebiten.Image, em *ecs.EntityManager, gs *game.GameState, item drawItem) {
	imageID := item.sprite.ImageID
	// 无敌期间使用暗色贴图
	if imageID == config.ImagePlayer && ecs.HasComponent[*components.InvincibleComponent](em, item.id) {
		imageID = config.ImagePlayerDimmed
	}

	img, alpha := r.frameImage(em, item.id, imageID, item.sprite.FrameIndex)
	if img == nil {
		return
	}

	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	op.GeoM.Scale(item.transform.ScaleX, item.transform.ScaleY)
	op.GeoM.Translate(utils.WorldToScreen(item.transform.X, item.transform.Y, gs.WinSize.W, gs.WinSize.H))
	op.ColorScale.ScaleAlpha(alpha)

	screen.DrawImage(img, op)
}

// frameImage 返回精灵当前帧的图像
// 精灵表按帧索引切出单元格；缺失贴图时使用占位图，并以透明度表现动画进度
func (r *SpriteRenderer) frameImage(em *ecs.EntityManager, id ecs.EntityID, imageID string, frame int) (*ebiten.Image, float32) {
	if img := r.loadImage(imageID); img != nil {
		layout, ok := r.sheetLayout(imageID)
		if !ok {
			return img, 1
		}
		return cutFrame(img, layout, frame), 1
	}

	placeholder := r.placeholder(em, id, imageID)
	if imageID == config.ImageExplosion && r.cfg.Explosion.FrameCount > 0 {
		return placeholder, 1 - float32(frame)/float32(r.cfg.Explosion.FrameCount)
	}
	return placeholder, 1
}

func (r *SpriteRenderer) loadImage(imageID string) *ebiten.Image {
	if r.rm == nil {
		return nil
	}
	if img := r.rm.GetImageByID(imageID); img != nil {
		return img
	}
	if r.warned[imageID] {
		return nil
	}
	img, err := r.rm.LoadImageByID(imageID)
	if err != nil {
		log.Printf("[SpriteRenderer] Warning: %s unavailable, using placeholder: %v", imageID, err)
		r.warned[imageID] = true
		return nil
	}
	return img
}

// sheetLayout 精灵表布局：优先使用资源清单，爆炸动画回退到玩法配置
func (r *SpriteRenderer) sheetLayout(imageID string) (assets.SheetLayout, bool) {
	if r.rm != nil {
		if layout, ok := r.rm.SheetLayout(imageID); ok {
			return layout, true
		}
	}
	if imageID == config.ImageExplosion && r.cfg.Explosion.Columns > 0 {
		cols := r.cfg.Explosion.Columns
		rows := (r.cfg.Explosion.FrameCount + cols - 1) / cols
		return assets.SheetLayout{Cols: cols, Rows: rows}, true
	}
	return assets.SheetLayout{}, false
}

// cutFrame 从精灵表中切出第 frame 个单元格（行优先）
func cutFrame(sheet *ebiten.Image, layout assets.SheetLayout, frame int) *ebiten.Image {
	rect := frameRect(sheet.Bounds(), layout, frame)
	return sheet.SubImage(rect).(*ebiten.Image)
}

// frameRect 计算第 frame 个单元格的矩形，越界时钳制到最后一格
func frameRect(bounds image.Rectangle, layout assets.SheetLayout, frame int) image.Rectangle {
	cols, rows := max(layout.Cols, 1), max(layout.Rows, 1)
	frame = min(max(frame, 0), cols*rows-1)

	cellW := bounds.Dx() / cols
	cellH := bounds.Dy() / rows
	x := bounds.Min.X + (frame%cols)*cellW
	y := bounds.Min.Y + (frame/cols)*cellH
	return image.Rect(x, y, x+cellW, y+cellH)
}

// placeholder 生成与实体未缩放尺寸一致的纯色占位图
func (r *SpriteRenderer) placeholder(em *ecs.EntityManager, id ecs.EntityID, imageID string) *ebiten.Image {
	if img, ok := r.placeholders[imageID]; ok {
		return img
	}

	w, h := r.cfg.Explosion.CellSize, r.cfg.Explosion.CellSize
	if size, ok := ecs.GetComponent[*components.SpriteSizeComponent](em, id); ok {
		w, h = int(size.Width), int(size.Height)
	}
	w, h = max(w, 1), max(h, 1)

	c, ok := placeholderColors[imageID]
	if !ok {
		c = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}

	img := ebiten.NewImage(w, h)
	img.Fill(c)
	r.placeholders[imageID] = img
	return img
}
