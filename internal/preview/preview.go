// Package preview renders a still frame of the rain simulation to a PNG
// file. It exists so the look of a settings change can be checked without
// attaching a terminal.
package preview

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/termrain/termrain/internal/render"
	"github.com/termrain/termrain/internal/theme"
)

// warmupSteps advances the simulation before the snapshot so drops have
// fallen far enough to show full trails.
const warmupSteps = 240

// WritePNG simulates a rain field of the given cell dimensions and writes a
// single frame to path. Pixel size follows the configured font size.
func WritePNG(path string, params render.Params, cols, rows int) error {
	if cols < 1 || rows < 1 {
		return fmt.Errorf("preview dimensions must be positive, got %dx%d", cols, rows)
	}

	field := render.NewField(params, cols, rows)
	fps := params.FPS
	if fps < 1 {
		fps = render.FallbackFPS
	}
	dt := 1 / float64(fps)
	for i := 0; i < warmupSteps; i++ {
		field.Step(dt)
	}

	fontSize := float64(params.FontSize)
	if fontSize < 1 {
		fontSize = 14
	}
	cellW := fontSize * 0.62
	cellH := fontSize * params.LineSpacing
	if cellH < fontSize {
		cellH = fontSize
	}
	imageWidth := int(float64(cols) * cellW)
	imageHeight := int(float64(rows) * cellH)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(argbColor(params.Colors.Background))
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell := field.Cell(x, y)
			if cell.Zone == render.ZoneEmpty {
				continue
			}
			dc.SetColor(zoneColor(params.Colors, cell.Zone))
			px := float64(x)*cellW + cellW/2
			py := float64(y)*cellH + cellH/2
			dc.DrawStringAnchored(string(cell.Glyph), px, py, 0.5, 0.5)
		}
	}

	drawGrain(dc, params, imageWidth, imageHeight)

	return dc.SavePNG(path)
}

// drawGrain scatters translucent specks over the frame, matching the film
// grain pass of the live renderer.
func drawGrain(dc *gg.Context, params render.Params, w, h int) {
	if params.GrainDensity <= 0 || params.GrainOpacity <= 0 {
		return
	}
	rng := rand.New(rand.NewSource(1))
	alpha := uint8(params.GrainOpacity * 255)
	dc.SetColor(color.NRGBA{R: 255, G: 255, B: 255, A: alpha})
	for i := 0; i < params.GrainDensity; i++ {
		x := rng.Float64() * float64(w)
		y := rng.Float64() * float64(h)
		dc.DrawRectangle(x, y, 1, 1)
		dc.Fill()
	}
}

func zoneColor(c theme.Colors, zone render.CellZone) color.Color {
	switch zone {
	case render.ZoneHead:
		return argbColor(c.Head)
	case render.ZoneBrightTrail:
		return argbColor(c.BrightTrail)
	case render.ZoneDim:
		return argbColor(c.Dim)
	default:
		return argbColor(c.Trail)
	}
}

func argbColor(argb uint32) color.Color {
	return color.NRGBA{
		R: theme.Red(argb),
		G: theme.Green(argb),
		B: theme.Blue(argb),
		A: theme.Alpha(argb),
	}
}
