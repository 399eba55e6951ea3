package panels

import (
	"math"

	"github.com/cicchiello/pi-nas/internal/canvas"
	"github.com/cicchiello/pi-nas/internal/geom"
)

// Engraved logo lettering. Each glyph is a list of strokes in a 1x1 unit
// cell, x-height between 0.25 and 0.75, descenders below. Italic slant is a
// shear applied at render time; weight comes from repeating each stroke at
// small perpendicular offsets.
const logoSlant = 0.18

var logoBoldOffsets = []float64{-0.6, 0, 0.6}

var logoGlyphs = map[rune][][2]geom.Point2D{
	'p': {
		{{X: 0.25, Y: 0.25}, {X: 0.10, Y: 0.95}}, // stem, down past the baseline
		{{X: 0.25, Y: 0.25}, {X: 0.55, Y: 0.25}},
		{{X: 0.55, Y: 0.25}, {X: 0.78, Y: 0.30}},
		{{X: 0.78, Y: 0.30}, {X: 0.82, Y: 0.42}},
		{{X: 0.82, Y: 0.42}, {X: 0.78, Y: 0.55}},
		{{X: 0.78, Y: 0.55}, {X: 0.55, Y: 0.60}},
		{{X: 0.55, Y: 0.60}, {X: 0.20, Y: 0.60}},
	},
	'i': {
		{{X: 0.35, Y: 0.25}, {X: 0.25, Y: 0.75}},
		{{X: 0.42, Y: 0.08}, {X: 0.40, Y: 0.15}}, // dot
	},
	'-': {
		{{X: 0.15, Y: 0.45}, {X: 0.75, Y: 0.45}},
	},
	'n': {
		{{X: 0.25, Y: 0.25}, {X: 0.15, Y: 0.75}},
		{{X: 0.25, Y: 0.40}, {X: 0.45, Y: 0.25}},
		{{X: 0.45, Y: 0.25}, {X: 0.65, Y: 0.25}},
		{{X: 0.65, Y: 0.25}, {X: 0.75, Y: 0.40}},
		{{X: 0.75, Y: 0.40}, {X: 0.65, Y: 0.75}},
	},
	'a': {
		{{X: 0.70, Y: 0.25}, {X: 0.50, Y: 0.25}},
		{{X: 0.50, Y: 0.25}, {X: 0.25, Y: 0.35}},
		{{X: 0.25, Y: 0.35}, {X: 0.20, Y: 0.50}},
		{{X: 0.20, Y: 0.50}, {X: 0.25, Y: 0.65}},
		{{X: 0.25, Y: 0.65}, {X: 0.50, Y: 0.75}},
		{{X: 0.50, Y: 0.75}, {X: 0.65, Y: 0.70}},
		{{X: 0.78, Y: 0.25}, {X: 0.62, Y: 0.75}},
	},
	's': {
		{{X: 0.75, Y: 0.30}, {X: 0.55, Y: 0.25}},
		{{X: 0.55, Y: 0.25}, {X: 0.30, Y: 0.28}},
		{{X: 0.30, Y: 0.28}, {X: 0.22, Y: 0.38}},
		{{X: 0.22, Y: 0.38}, {X: 0.35, Y: 0.48}},
		{{X: 0.35, Y: 0.48}, {X: 0.60, Y: 0.55}},
		{{X: 0.60, Y: 0.55}, {X: 0.68, Y: 0.65}},
		{{X: 0.68, Y: 0.65}, {X: 0.55, Y: 0.75}},
		{{X: 0.55, Y: 0.75}, {X: 0.30, Y: 0.72}},
		{{X: 0.30, Y: 0.72}, {X: 0.15, Y: 0.65}},
	},
}

// engraveLogo draws text as engraved strokes, centered horizontally and
// vertically centered at a quarter of the panel height. Glyphs without an
// entry in the table are skipped.
func engraveLogo(c *canvas.Canvas, text string, panelW, panelH float64) {
	const charH = 30.0
	const charW = 18.0
	const charGap = 3.0

	n := float64(len([]rune(text)))
	logoW := n*charW + (n-1)*charGap
	x0 := (panelW - logoW) / 2
	y0 := panelH*0.25 - charH/2

	for ci, ch := range []rune(text) {
		strokes, ok := logoGlyphs[ch]
		if !ok {
			continue
		}
		cx := x0 + float64(ci)*(charW+charGap)
		for _, stroke := range strokes {
			base := make(geom.Outline, len(stroke))
			for i, u := range stroke {
				base[i] = geom.Point2D{
					X: cx + u.X*charW + logoSlant*(1-u.Y)*charH,
					Y: y0 + u.Y*charH,
				}
			}
			// Perpendicular unit vector of the stroke, for the bold offsets.
			dx := base[len(base)-1].X - base[0].X
			dy := base[len(base)-1].Y - base[0].Y
			var nx, ny float64
			if l := math.Hypot(dx, dy); l > 0 {
				nx, ny = -dy/l, dx/l
			}
			for _, off := range logoBoldOffsets {
				pts := make(geom.Outline, len(base))
				for i, p := range base {
					pts[i] = geom.Point2D{X: p.X + nx*off, Y: p.Y + ny*off}
				}
				c.AddPolyline(pts, false, canvas.Engrave)
			}
		}
	}
}
