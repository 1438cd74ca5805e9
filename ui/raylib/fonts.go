package raylib

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FontSet holds fonts rasterized per point-size bucket. Sizes that were
// never loaded fall back to the nearest loaded bucket, or to raylib's
// default font when nothing was loaded at all.
type FontSet struct {
	fonts map[int]rl.Font
}

// Load rasterizes the font file at path for each of the given sizes. It must
// run after rl.InitWindow.
func (f *FontSet) Load(path string, sizes ...int) error {
	for _, size := range sizes {
		font := rl.LoadFontEx(path, int32(size), nil)
		if font.Texture.ID == 0 {
			return fmt.Errorf("raylib fonts: failed to load %q at size %d", path, size)
		}
		rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
		if f.fonts == nil {
			f.fonts = make(map[int]rl.Font)
		}
		f.fonts[size] = font
	}
	return nil
}

// Get returns the font bucket for the given size, falling back to the
// nearest loaded bucket. Ties go to the smaller size so the choice is stable
// across frames.
func (f *FontSet) Get(size int) rl.Font {
	if font, ok := f.fonts[size]; ok {
		return font
	}
	best, bestSize, bestDiff, found := rl.Font{}, 0, 0, false
	for s, font := range f.fonts {
		diff := s - size
		if diff < 0 {
			diff = -diff
		}
		if !found || diff < bestDiff || (diff == bestDiff && s < bestSize) {
			best, bestSize, bestDiff, found = font, s, diff, true
		}
	}
	if found {
		return best
	}
	return rl.GetFontDefault()
}

// Unload releases every loaded font.
func (f *FontSet) Unload() {
	for _, font := range f.fonts {
		rl.UnloadFont(font)
	}
	f.fonts = nil
}
