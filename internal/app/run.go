// Package app is the shared runner behind the facet viewer binary: it parses
// the command line, loads interface definition files, and drives the render
// loop.
package app

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"facet/datanode"
	"facet/geom"
	"facet/ui"
	"facet/ui/raylib"
)

// Run parses flags, loads the requested interface and renders it until the
// window closes. It exits the process on unusable input.
func Run() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	file := flag.String("file", "", "Path to the interface definition file to render")
	name := flag.String("interface", "", "Name of the interface to display (default: first in the file)")
	width := flag.Int("width", 800, "Window width")
	height := flag.Int("height", 600, "Window height")
	font := flag.String("font", "", "Optional TTF font file for text elements")

	info := &ui.Values{}
	flag.Func("condition", "Set a named condition to true (repeatable)", func(s string) error {
		info.SetCondition(s, true)
		return nil
	})
	flag.Func("string", "Set a dynamic string as key=text (repeatable)", func(s string) error {
		key, text, ok := strings.Cut(s, "=")
		if !ok {
			return fmt.Errorf("want key=text, got %q", s)
		}
		info.SetString(key, text)
		return nil
	})
	flag.Func("bar", "Set a bar value as name=value[:segments] (repeatable)", func(s string) error {
		key, spec, ok := strings.Cut(s, "=")
		if !ok {
			return fmt.Errorf("want name=value[:segments], got %q", s)
		}
		valueStr, segmentsStr, _ := strings.Cut(spec, ":")
		value, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			return fmt.Errorf("bad bar value %q: %w", valueStr, err)
		}
		segments := 0.
		if segmentsStr != "" {
			if segments, err = strconv.ParseFloat(segmentsStr, 64); err != nil {
				return fmt.Errorf("bad segment count %q: %w", segmentsStr, err)
			}
		}
		info.SetBar(key, value, segments)
		return nil
	})
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: facet-raylib -file <interface definition file>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	nodes, err := datanode.ReadFile(*file)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	assets := raylib.NewAssetSet()
	DefaultPalette(assets)

	set := &ui.Set{}
	set.Load(nodes, assets)

	if *name == "" {
		for _, node := range nodes {
			if node.Token(0) == "interface" && node.Size() >= 2 {
				*name = node.Token(1)
				break
			}
		}
	}
	if *name == "" || !set.Has(*name) {
		log.Fatalf("ERROR: no interface named %q in %s", *name, *file)
	}
	iface := set.Get(*name)

	rl.InitWindow(int32(*width), int32(*height), "facet - "+*name)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	driver := raylib.NewDriver()
	if *font != "" {
		if err := driver.Fonts.Load(*font, 14, 18); err != nil {
			log.Printf("WARN: %v; falling back to the default font", err)
		}
	}
	defer driver.Fonts.Unload()
	defer assets.Unload()

	log.Printf("Rendering interface %q", *name)

	var zones Panel
	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		zones.Reset()
		iface.Draw(driver, info, &zones)

		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			if key, ok := zones.Click(driver.MousePosition()); ok {
				log.Printf("Button %q clicked", key)
			}
		}

		rl.EndDrawing()
	}
}

// Panel is a minimal clickable-zone host: it collects the zones registered
// during a frame and answers which trigger key a click lands on.
type Panel struct {
	zones []zone
}

type zone struct {
	box geom.Rect
	key rune
}

func (p *Panel) AddZone(box geom.Rect, key rune) {
	p.zones = append(p.zones, zone{box: box, key: key})
}

// Reset clears the zones collected last frame.
func (p *Panel) Reset() {
	p.zones = p.zones[:0]
}

// Click returns the trigger key of the topmost zone containing pos. Zones
// registered later sit on top.
func (p *Panel) Click(pos geom.Point) (rune, bool) {
	for i := len(p.zones) - 1; i >= 0; i-- {
		if p.zones[i].box.Contains(pos) {
			return p.zones[i].key, true
		}
	}
	return 0, false
}

// DefaultPalette fills in the palette names the engine falls back to when a
// text or bar element declares no color of its own.
func DefaultPalette(assets *raylib.AssetSet) {
	assets.SetColor("active", rl.NewColor(222, 222, 222, 255))
	assets.SetColor("inactive", rl.NewColor(102, 102, 102, 255))
	assets.SetColor("hover", rl.NewColor(255, 255, 255, 255))
	assets.SetColor("bright", rl.NewColor(230, 230, 230, 255))
	assets.SetColor("medium", rl.NewColor(128, 128, 128, 255))
}
