// Package icon renders and selects the tray icons.
// This file contains the programmatic PNG generation.
package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/yllada/power-profiles-tray/common"
	"github.com/yllada/power-profiles-tray/power"
	"github.com/yllada/power-profiles-tray/theme"
)

// Glyph identifies the symbol drawn in the middle of an icon.
type Glyph int

const (
	// GlyphBolt is the lightning bolt used for performance.
	GlyphBolt Glyph = iota
	// GlyphDial is the half-filled gauge used for balanced.
	GlyphDial
	// GlyphLeaf is the leaf used for power-saver.
	GlyphLeaf
	// GlyphQuestion marks the generic icon.
	GlyphQuestion
)

// IconConfig defines the configuration for icon generation.
type IconConfig struct {
	Size        int
	FillColor   color.RGBA
	BorderColor color.RGBA
	SymbolColor color.RGBA
	Glyph       Glyph
}

// profilePalette returns the badge colors for a profile.
func profilePalette(p power.Profile) (fill, border color.RGBA) {
	switch p {
	case power.Performance:
		return color.RGBA{230, 81, 0, 255}, color.RGBA{255, 138, 60, 255} // Orange
	case power.PowerSaver:
		return color.RGBA{46, 125, 50, 255}, color.RGBA{102, 187, 106, 255} // Green
	default:
		return color.RGBA{21, 101, 192, 255}, color.RGBA{100, 181, 246, 255} // Blue
	}
}

// symbolColor picks the glyph color for an appearance mode.
func symbolColor(mode theme.Mode) color.RGBA {
	if mode == theme.Dark {
		return color.RGBA{245, 245, 245, 255} // Near-white on dark panels
	}
	return color.RGBA{255, 255, 255, 255}
}

// ConfigFor returns the icon configuration for a profile and mode.
func ConfigFor(p power.Profile, mode theme.Mode) IconConfig {
	fill, border := profilePalette(p)
	glyph := GlyphDial
	switch p {
	case power.Performance:
		glyph = GlyphBolt
	case power.PowerSaver:
		glyph = GlyphLeaf
	}
	return IconConfig{
		Size:        common.TrayIconSize,
		FillColor:   fill,
		BorderColor: border,
		SymbolColor: symbolColor(mode),
		Glyph:       glyph,
	}
}

// GenericConfig returns the configuration for the generic fallback icon.
func GenericConfig(mode theme.Mode) IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		FillColor:   color.RGBA{97, 97, 97, 255},   // Dark gray
		BorderColor: color.RGBA{158, 158, 158, 255}, // Gray
		SymbolColor: symbolColor(mode),
		Glyph:       GlyphQuestion,
	}
}

// IconGenerator generates PNG icons for the system tray.
type IconGenerator struct {
	config IconConfig
}

// NewIconGenerator creates a new icon generator with the given config.
func NewIconGenerator(config IconConfig) *IconGenerator {
	return &IconGenerator{config: config}
}

// Generate creates a PNG icon and returns the bytes.
func (g *IconGenerator) Generate() []byte {
	size := g.config.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	g.drawBadge(img)

	switch g.config.Glyph {
	case GlyphBolt:
		g.drawBolt(img)
	case GlyphLeaf:
		g.drawLeaf(img)
	case GlyphQuestion:
		g.drawQuestion(img)
	default:
		g.drawDial(img)
	}

	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

// drawBadge draws the circular badge background.
func (g *IconGenerator) drawBadge(img *image.RGBA) {
	size := g.config.Size
	center := float64(size) / 2
	radius := float64(size)/2 - 1

	inCircle := func(x, y float64) bool {
		dx, dy := x-center, y-center
		return dx*dx+dy*dy <= radius*radius
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			if !inCircle(fx, fy) {
				continue
			}
			isBorder := !inCircle(fx-1, fy) || !inCircle(fx+1, fy) ||
				!inCircle(fx, fy-1) || !inCircle(fx, fy+1)
			if isBorder {
				img.Set(x, y, g.config.BorderColor)
			} else {
				img.Set(x, y, g.config.FillColor)
			}
		}
	}
}

// drawBolt draws a lightning bolt glyph.
func (g *IconGenerator) drawBolt(img *image.RGBA) {
	points := []struct{ x, y int }{
		{12, 4}, {12, 5}, {11, 5}, {11, 6}, {11, 7}, {10, 7},
		{10, 8}, {10, 9}, {9, 9}, {9, 10}, {10, 10}, {11, 10},
		{12, 10}, {12, 11}, {11, 11}, {11, 12}, {11, 13}, {10, 13},
		{10, 14}, {10, 15}, {9, 15}, {9, 16}, {9, 17},
		{10, 12}, {12, 9}, {13, 4}, {13, 5},
	}
	g.plot(img, points)
}

// drawDial draws a half-filled gauge glyph.
func (g *IconGenerator) drawDial(img *image.RGBA) {
	c := g.config.SymbolColor
	size := g.config.Size
	mid := size / 2

	// Horizontal needle plus a centered tick
	for x := mid - 5; x <= mid+5; x++ {
		img.Set(x, mid, c)
		img.Set(x, mid+1, c)
	}
	for y := mid - 5; y <= mid-2; y++ {
		img.Set(mid, y, c)
	}
}

// drawLeaf draws a leaf glyph.
func (g *IconGenerator) drawLeaf(img *image.RGBA) {
	points := []struct{ x, y int }{
		{11, 5}, {12, 5}, {13, 6}, {14, 6}, {14, 7}, {15, 7},
		{15, 8}, {15, 9}, {15, 10}, {14, 10}, {14, 11}, {13, 11},
		{13, 12}, {12, 12}, {11, 12}, {10, 12}, {10, 11}, {9, 11},
		{9, 10}, {8, 10}, {8, 9}, {8, 8}, {9, 8}, {9, 7},
		{10, 7}, {10, 6}, {11, 6},
		// Stem
		{9, 13}, {8, 14}, {7, 15}, {7, 16},
	}
	g.plot(img, points)
}

// drawQuestion draws the generic placeholder glyph.
func (g *IconGenerator) drawQuestion(img *image.RGBA) {
	points := []struct{ x, y int }{
		{9, 7}, {10, 6}, {11, 6}, {12, 6}, {13, 7}, {13, 8},
		{13, 9}, {12, 10}, {11, 11}, {11, 12}, {11, 13},
		{11, 15}, {11, 16},
	}
	g.plot(img, points)
}

// plot sets a list of points in the symbol color, clipping to bounds.
func (g *IconGenerator) plot(img *image.RGBA, points []struct{ x, y int }) {
	for _, p := range points {
		if p.x >= 0 && p.x < g.config.Size && p.y >= 0 && p.y < g.config.Size {
			img.Set(p.x, p.y, g.config.SymbolColor)
		}
	}
}

// Generate renders the icon for a profile in the given appearance mode.
func Generate(p power.Profile, mode theme.Mode) []byte {
	return NewIconGenerator(ConfigFor(p, mode)).Generate()
}

// GenerateGeneric renders the generic fallback icon.
func GenerateGeneric(mode theme.Mode) []byte {
	return NewIconGenerator(GenericConfig(mode)).Generate()
}

// MaterializeBundled writes the complete bundled icon set under dir,
// one subdirectory per appearance mode plus the generic icon:
//
//	dir/light/performance.png ... dir/dark/power-saver.png
//	dir/generic.png
//
// Existing files are overwritten so the set tracks the current renderer.
func MaterializeBundled(dir string) error {
	for _, mode := range []theme.Mode{theme.Light, theme.Dark} {
		modeDir := filepath.Join(dir, mode.String())
		if err := common.EnsureDir(modeDir); err != nil {
			return fmt.Errorf("create icon directory: %w", err)
		}
		for _, p := range []power.Profile{power.Performance, power.Balanced, power.PowerSaver} {
			path := filepath.Join(modeDir, p.String()+".png")
			if err := os.WriteFile(path, Generate(p, mode), 0644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
		}
	}

	generic := filepath.Join(dir, "generic.png")
	if err := os.WriteFile(generic, GenerateGeneric(theme.Light), 0644); err != nil {
		return fmt.Errorf("write %s: %w", generic, err)
	}
	return nil
}
