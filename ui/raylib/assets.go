package raylib

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"facet/ui"
)

// AssetSet is the shared registry of named sprites and palette colors.
// Lookups for names that have not been loaded yet return live placeholder
// entries, so references captured at interface-load time stay valid and get
// filled in when the asset arrives.
type AssetSet struct {
	sprites map[string]*ui.Sprite
	colors  map[string]*rl.Color
}

// NewAssetSet returns an empty registry.
func NewAssetSet() *AssetSet {
	return &AssetSet{
		sprites: make(map[string]*ui.Sprite),
		colors:  make(map[string]*rl.Color),
	}
}

// Sprite returns the sprite registered under name, creating an empty
// placeholder if there is none yet.
func (a *AssetSet) Sprite(name string) *ui.Sprite {
	s, ok := a.sprites[name]
	if !ok {
		s = &ui.Sprite{Name: name}
		a.sprites[name] = s
	}
	return s
}

// Color returns the palette color registered under name, creating a
// transparent placeholder if there is none yet.
func (a *AssetSet) Color(name string) *rl.Color {
	c, ok := a.colors[name]
	if !ok {
		c = &rl.Color{}
		a.colors[name] = c
	}
	return c
}

// LoadSprite loads the texture at path into the sprite registered under
// name. frames is the number of animation frames stacked vertically; pass 1
// for static images. Must run after rl.InitWindow.
func (a *AssetSet) LoadSprite(name, path string, frames int) error {
	texture := rl.LoadTexture(path)
	if texture.ID == 0 {
		return fmt.Errorf("raylib assets: failed to load sprite %q from %q", name, path)
	}
	s := a.Sprite(name)
	s.Texture = texture
	s.Frames = frames
	return nil
}

// SetColor registers a palette color under name, updating the shared entry
// in place if it was already referenced.
func (a *AssetSet) SetColor(name string, col rl.Color) {
	*a.Color(name) = col
}

// Unload releases every loaded texture. Sprite entries become empty
// placeholders again.
func (a *AssetSet) Unload() {
	for _, s := range a.sprites {
		if s.Texture.ID != 0 {
			rl.UnloadTexture(s.Texture)
			s.Texture = rl.Texture2D{}
		}
	}
}
