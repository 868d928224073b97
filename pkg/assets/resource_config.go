package assets

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	    sounds: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related resources that can be loaded together.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
}

// ImageResource represents a single image resource definition.
// It can be a simple image or a sprite sheet with rows/cols.
//
// Examples:
//
//	Simple image:
//	  - id: IMAGE_PLAYER
//	    path: images/player_a_01
//
//	Sprite sheet:
//	  - id: IMAGE_EXPLOSION
//	    path: images/explo_a_sheet.png
//	    cols: 4
//	    rows: 4
type ImageResource struct {
	ID   string `yaml:"id"`             // Resource ID (unique identifier)
	Path string `yaml:"path"`           // Relative file path from base_path
	Cols int    `yaml:"cols,omitempty"` // Sprite sheet columns (0 if not a sprite sheet)
	Rows int    `yaml:"rows,omitempty"` // Sprite sheet rows (0 if not a sprite sheet)
}

// SoundResource represents a single sound/audio resource definition.
//
// Example:
//   - id: SOUND_PEW
//     path: sounds/pew.ogg
//     loop: false
type SoundResource struct {
	ID   string `yaml:"id"`             // Resource ID (unique identifier)
	Path string `yaml:"path"`           // Relative file path from base_path
	Loop bool   `yaml:"loop,omitempty"` // Background music tracks loop forever
}

// SheetLayout describes how a sprite sheet is divided into cells.
type SheetLayout struct {
	Cols int
	Rows int
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
//
// Parameters:
//   - basePath: The base path from ResourceConfig (e.g., "assets")
//   - relativePath: The resource's relative path (e.g., "images/player_a_01.png")
//
// Returns:
//   - The full file path (e.g., "assets/images/player_a_01.png")
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
