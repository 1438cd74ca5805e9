package ui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"facet/geom"
)

// testAssets is an Assets registry with deterministic lookups.
type testAssets struct {
	sprites map[string]*Sprite
	colors  map[string]*rl.Color
}

func newTestAssets() *testAssets {
	return &testAssets{
		sprites: make(map[string]*Sprite),
		colors:  make(map[string]*rl.Color),
	}
}

func (a *testAssets) Sprite(name string) *Sprite {
	s, ok := a.sprites[name]
	if !ok {
		s = &Sprite{Name: name}
		a.sprites[name] = s
	}
	return s
}

func (a *testAssets) Color(name string) *rl.Color {
	c, ok := a.colors[name]
	if !ok {
		c = &rl.Color{}
		a.colors[name] = c
	}
	return c
}

func (a *testAssets) addSprite(name string, w, h int) *Sprite {
	s := a.Sprite(name)
	s.Texture = rl.Texture2D{ID: 1, Width: int32(w), Height: int32(h)}
	return s
}

func (a *testAssets) setColor(name string, col rl.Color) *rl.Color {
	c := a.Color(name)
	*c = col
	return c
}

// drawOp records a single primitive call made against the fake driver.
type drawOp struct {
	kind     string // "sprite", "outline", "line", "ring", "text"
	sprite   *Sprite
	center   geom.Point
	dims     geom.Point
	from, to geom.Point
	topLeft  geom.Point
	unit     geom.Point
	scale    float64
	width    float64
	radius   float64
	fraction float64
	segments float64
	col      rl.Color
	text     string
	size     int
	frame    int
}

// fakeDriver records draw calls and measures text as one size unit per rune.
type fakeDriver struct {
	screen geom.Point
	mouse  geom.Point
	ops    []drawOp
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{screen: geom.Pt(800, 600), mouse: geom.Pt(-10000, -10000)}
}

func (d *fakeDriver) ScreenDimensions() geom.Point { return d.screen }
func (d *fakeDriver) MousePosition() geom.Point    { return d.mouse }

func (d *fakeDriver) TextSize(text string, size int) geom.Point {
	return geom.Pt(float64(len([]rune(text))*size), float64(size))
}

func (d *fakeDriver) DrawSprite(sprite *Sprite, center geom.Point, scale float64) {
	d.ops = append(d.ops, drawOp{kind: "sprite", sprite: sprite, center: center, scale: scale})
}

func (d *fakeDriver) DrawOutline(sprite *Sprite, center, dims geom.Point, col rl.Color, unit geom.Point, frame int) {
	d.ops = append(d.ops, drawOp{kind: "outline", sprite: sprite, center: center, dims: dims, col: col, unit: unit, frame: frame})
}

func (d *fakeDriver) DrawLine(from, to geom.Point, width float64, col rl.Color) {
	d.ops = append(d.ops, drawOp{kind: "line", from: from, to: to, width: width, col: col})
}

func (d *fakeDriver) DrawRing(center geom.Point, radius, width, fraction float64, col rl.Color, segments float64) {
	d.ops = append(d.ops, drawOp{kind: "ring", center: center, radius: radius, width: width, fraction: fraction, col: col, segments: segments})
}

func (d *fakeDriver) DrawText(text string, size int, topLeft geom.Point, col rl.Color) {
	d.ops = append(d.ops, drawOp{kind: "text", text: text, size: size, topLeft: topLeft, col: col})
}

// zoneHost records clickable-zone registrations.
type zoneHost struct {
	boxes []geom.Rect
	keys  []rune
}

func (h *zoneHost) AddZone(box geom.Rect, key rune) {
	h.boxes = append(h.boxes, box)
	h.keys = append(h.keys, key)
}

func rlColor(r, g, b uint8) rl.Color {
	return rl.NewColor(r, g, b, 255)
}

func texture(w, h int) rl.Texture2D {
	return rl.Texture2D{ID: 1, Width: int32(w), Height: int32(h)}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func pointNear(a, b geom.Point) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func rectNear(a, b geom.Rect) bool {
	return pointNear(a.Center, b.Center) && pointNear(a.Dimensions, b.Dimensions)
}
