package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gonewx/invaders/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"gopkg.in/yaml.v3"
)

// ResourceManager loads the sprites, sprite sheets and sound files listed in
// assets/config/resources.yaml and caches them by path.
//
// Files come from the embedded filesystem once pkg/embedded is initialized,
// and from the working directory otherwise (cmd tools and tests). Only the
// game loop goroutine touches it.
//
//	rm := NewResourceManager(audio.NewContext(48000))
//	if err := rm.LoadResourceConfig(config.ResourceConfigPath); err != nil {
//	    return err
//	}
//	ship, err := rm.LoadImageByID(config.ImagePlayer)
type ResourceManager struct {
	imageCache   map[string]*ebiten.Image // path -> decoded image
	audioCache   map[string]*audio.Player // path -> player
	audioContext *audio.Context           // nil in headless tools

	config      *ResourceConfig
	resourceMap map[string]string      // resource ID -> path
	sheets      map[string]SheetLayout // resource ID -> sheet grid
	loopingIDs  map[string]bool        // sound IDs played as music
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// The audioContext parameter is required for audio playback; it may be nil
// for headless tools that only need images or the resource map.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		audioContext: audioContext,
		resourceMap:  make(map[string]string),
		sheets:       make(map[string]SheetLayout),
		loopingIDs:   make(map[string]bool),
	}
}

// readResource 读取资源文件内容
// 优先从嵌入资源读取，未初始化时回退到本地文件系统
func readResource(path string) ([]byte, error) {
	if embedded.IsInitialized() {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// LoadResourceConfig loads and parses the YAML resource configuration file.
//
// Parameters:
//   - configPath: Path to the YAML configuration file (e.g., "assets/config/resources.yaml")
//
// Returns:
//   - An error if the file cannot be opened or parsed
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := readResource(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}
	if err := rm.ParseResourceConfig(data); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}
	return nil
}

// ParseResourceConfig parses YAML resource configuration data and rebuilds the ID lookup tables.
func (rm *ResourceManager) ParseResourceConfig(data []byte) error {
	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return err
	}

	rm.config = &config
	rm.buildResourceMap()

	log.Printf("[ResourceManager] Loaded resource config v%s: %d groups, %d resources",
		config.Version, len(config.Groups), len(rm.resourceMap))
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	IMAGE_PLAYER -> assets/images/player_a_01.png
//	SOUND_PEW -> assets/sounds/pew.ogg
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)
	rm.sheets = make(map[string]SheetLayout)
	rm.loopingIDs = make(map[string]bool)

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png" // Default to PNG for images
			}
			rm.resourceMap[img.ID] = fullPath

			if img.Cols > 0 || img.Rows > 0 {
				rm.sheets[img.ID] = SheetLayout{Cols: max(img.Cols, 1), Rows: max(img.Rows, 1)}
			}
		}

		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".ogg" // Default to OGG for sounds
			}
			rm.resourceMap[sound.ID] = fullPath
			if sound.Loop {
				rm.loopingIDs[sound.ID] = true
			}
		}
	}
}

// ResolvePath returns the file path mapped to a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	path, ok := rm.resourceMap[resourceID]
	return path, ok
}

// SheetLayout returns the sprite sheet layout of an image resource.
// Plain images report false.
func (rm *ResourceManager) SheetLayout(resourceID string) (SheetLayout, bool) {
	layout, ok := rm.sheets[resourceID]
	return layout, ok
}

// IsLooping reports whether a sound resource is declared as looping music.
func (rm *ResourceManager) IsLooping(resourceID string) bool {
	return rm.loopingIDs[resourceID]
}

// LoadImage decodes a PNG/JPEG file once and serves later calls from the cache.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage returns a cached image, or nil when it was never loaded.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadImageByID loads the image mapped to resourceID in resources.yaml.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return rm.LoadImage(filePath)
}

// GetImageByID is GetImage keyed by resource ID.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}
	return rm.GetImage(filePath)
}

// decodeAudio decodes an in-memory MP3 or OGG file chosen by extension.
func decodeAudio(path string, data []byte) (interface {
	io.ReadSeeker
	Length() int64
}, error) {
	reader := bytes.NewReader(data)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		stream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}
}

// loadPlayer reads, decodes and wraps an audio file in a player.
func (rm *ResourceManager) loadPlayer(path string, loop bool) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	// Read the entire file into memory so the stream can seek freely
	data, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for %s", path)
	}

	stream, err := decodeAudio(path, data)
	if err != nil {
		return nil, err
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadAudio loads an audio file and wraps it in an infinite loop, for background music.
// Supported formats: MP3 (.mp3) and OGG Vorbis (.ogg).
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	return rm.loadPlayer(path, true)
}

// LoadSoundEffect loads a one-shot sound effect (no loop).
// Supported formats: MP3 (.mp3) and OGG Vorbis (.ogg).
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	return rm.loadPlayer(path, false)
}

// LoadResourceGroup loads all resources in a specified group.
//
// A missing or broken file does not abort the group: every failure is
// logged and collected, and the remaining resources are still loaded.
// Callers decide whether the returned error is fatal; the game treats it
// as a warning and falls back to placeholders.
//
// Returns:
//   - The number of resources loaded successfully
//   - An error describing every resource that failed to load, or nil
func (rm *ResourceManager) LoadResourceGroup(groupName string) (int, error) {
	if rm.config == nil {
		return 0, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return 0, fmt.Errorf("resource group not found: %s", groupName)
	}

	loaded := 0
	var failed []string

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			log.Printf("[ResourceManager] Warning: failed to load image %s: %v", img.ID, err)
			failed = append(failed, img.ID)
			continue
		}
		loaded++
	}

	for _, sound := range group.Sounds {
		filePath := rm.resourceMap[sound.ID]
		var err error
		if rm.IsLooping(sound.ID) {
			_, err = rm.LoadAudio(filePath)
		} else {
			_, err = rm.LoadSoundEffect(filePath)
		}
		if err != nil {
			log.Printf("[ResourceManager] Warning: failed to load sound %s: %v", sound.ID, err)
			failed = append(failed, sound.ID)
			continue
		}
		loaded++
	}

	if len(failed) > 0 {
		return loaded, fmt.Errorf("group %s: %d resources failed to load: %s",
			groupName, len(failed), strings.Join(failed, ", "))
	}
	return loaded, nil
}
