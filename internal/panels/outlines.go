package panels

import (
	"github.com/cicchiello/pi-nas/internal/geom"
	"github.com/cicchiello/pi-nas/internal/outline"
)

// horizontalOutline is the outline preset for the top and bottom panels
// (w = ExtX, h = InteriorY): finger protrusions on the front/back edges
// that mate with the front/back panel notch pattern, straight left/right
// edges (the side panels engage through face slots instead).
func (g *Generator) horizontalOutline(w, h float64) geom.Outline {
	depth := g.cfg.WallThickness // protrusions seat into the front/back panels
	n, fw := outline.Segments(w, g.cfg.FingerWidth)

	var pts geom.Outline

	// Front edge: left to right along y=0, protrusions upward.
	for i := 0; i < n; i++ {
		x0 := float64(i) * fw
		x1 := float64(i+1) * fw
		if i == n-1 {
			x1 = w
		}
		if i%2 == 0 {
			pts = append(pts,
				geom.Point2D{X: x0, Y: 0},
				geom.Point2D{X: x0, Y: -depth},
				geom.Point2D{X: x1, Y: -depth},
				geom.Point2D{X: x1, Y: 0})
		} else {
			pts = append(pts, geom.Point2D{X: x0, Y: 0}, geom.Point2D{X: x1, Y: 0})
		}
	}

	// Right edge: straight.
	pts = append(pts, geom.Point2D{X: w, Y: 0}, geom.Point2D{X: w, Y: h})

	// Back edge: right to left along y=h, protrusions downward.
	for i := n - 1; i >= 0; i-- {
		x0 := float64(i) * fw
		x1 := float64(i+1) * fw
		if i == n-1 {
			x1 = w
		}
		if i%2 == 0 {
			pts = append(pts,
				geom.Point2D{X: x1, Y: h},
				geom.Point2D{X: x1, Y: h + depth},
				geom.Point2D{X: x0, Y: h + depth},
				geom.Point2D{X: x0, Y: h})
		} else {
			pts = append(pts, geom.Point2D{X: x1, Y: h}, geom.Point2D{X: x0, Y: h})
		}
	}

	// Left edge: straight.
	pts = append(pts, geom.Point2D{X: 0, Y: h}, geom.Point2D{X: 0, Y: 0})

	return pts.Dedupe()
}

// frontBackOutline is the outline preset for the front and back panels.
// The body spans the distance between the side panel slot inner edges;
// the left/right edges carry outer tabs (ends skipped) that pass through
// the side panel face slots, and the top/bottom edges carry notches that
// mirror the horizontal panels' protrusion pattern. That pattern is laid
// out over the full exterior width and clipped to the body, so the notch
// positions line up across panels regardless of the body offset.
func (g *Generator) frontBackOutline(h, topDepth, botDepth float64) geom.Outline {
	bodyW := g.dims.ExtX - 2*(g.cfg.MinOverhang+g.cfg.SideThickness)
	tabW := g.cfg.SideThickness

	nTB, fwTB := outline.Segments(g.dims.ExtX, g.cfg.FingerWidth)

	// The left/right finger pattern spans the side panel height; the flat
	// extensions past each end reach into the top and bottom panels.
	topExt := g.cfg.WallThickness
	botExt := g.cfg.SideThickness
	lrSpan := h - topExt - botExt
	nLR, fwLR := outline.Segments(lrSpan, g.cfg.FingerWidth)

	notchOffset := g.cfg.MinOverhang + g.cfg.SideThickness

	var pts geom.Outline

	// Top edge: left to right along y=0, notches inward (+y), clipped to
	// the body width.
	for i := 0; i < nTB; i++ {
		px0 := float64(i)*fwTB - notchOffset
		px1 := float64(i+1)*fwTB - notchOffset
		cp0 := clamp(px0, 0, bodyW)
		cp1 := clamp(px1, 0, bodyW)
		if cp1 <= cp0 {
			continue
		}
		if i%2 == 0 {
			d := topDepth
			switch i {
			case 0:
				pts = append(pts,
					geom.Point2D{X: cp0, Y: d},
					geom.Point2D{X: cp1, Y: d},
					geom.Point2D{X: cp1, Y: 0})
			case nTB - 1:
				pts = append(pts,
					geom.Point2D{X: cp0, Y: 0},
					geom.Point2D{X: cp0, Y: d},
					geom.Point2D{X: cp1, Y: d})
			default:
				pts = append(pts,
					geom.Point2D{X: cp0, Y: 0},
					geom.Point2D{X: cp0, Y: d},
					geom.Point2D{X: cp1, Y: d},
					geom.Point2D{X: cp1, Y: 0})
			}
		} else {
			pts = append(pts, geom.Point2D{X: cp0, Y: 0}, geom.Point2D{X: cp1, Y: 0})
		}
	}

	// Right edge: flat run down to the finger zone, outer tabs with the
	// end fingers suppressed, flat run down to the bottom notch depth.
	pts = append(pts, geom.Point2D{X: bodyW, Y: topExt})
	for i := 0; i < nLR; i++ {
		y0 := topExt + float64(i)*fwLR
		y1 := topExt + float64(i+1)*fwLR
		if i%2 == 0 && i != 0 && i != nLR-1 {
			pts = append(pts,
				geom.Point2D{X: bodyW, Y: y0},
				geom.Point2D{X: bodyW + tabW, Y: y0},
				geom.Point2D{X: bodyW + tabW, Y: y1},
				geom.Point2D{X: bodyW, Y: y1})
		} else {
			pts = append(pts, geom.Point2D{X: bodyW, Y: y0}, geom.Point2D{X: bodyW, Y: y1})
		}
	}
	pts = append(pts, geom.Point2D{X: bodyW, Y: h - botDepth})

	// Bottom edge: right to left along y=h, notches inward (-y).
	for i := nTB - 1; i >= 0; i-- {
		px0 := float64(i)*fwTB - notchOffset
		px1 := float64(i+1)*fwTB - notchOffset
		cp0 := clamp(px0, 0, bodyW)
		cp1 := clamp(px1, 0, bodyW)
		if cp1 <= cp0 {
			continue
		}
		if i%2 == 0 {
			d := botDepth
			switch i {
			case nTB - 1:
				pts = append(pts,
					geom.Point2D{X: cp0, Y: h - d},
					geom.Point2D{X: cp0, Y: h})
			case 0:
				pts = append(pts,
					geom.Point2D{X: cp1, Y: h},
					geom.Point2D{X: cp1, Y: h - d},
					geom.Point2D{X: cp0, Y: h - d})
			default:
				pts = append(pts,
					geom.Point2D{X: cp1, Y: h},
					geom.Point2D{X: cp1, Y: h - d},
					geom.Point2D{X: cp0, Y: h - d},
					geom.Point2D{X: cp0, Y: h})
			}
		} else {
			pts = append(pts, geom.Point2D{X: cp1, Y: h}, geom.Point2D{X: cp0, Y: h})
		}
	}

	// Left edge: flat run up to the finger zone, outer tabs (ends
	// suppressed), flat run up to the top notch depth to close the path.
	pts = append(pts, geom.Point2D{X: 0, Y: topExt + lrSpan})
	for i := nLR - 1; i >= 0; i-- {
		y0 := topExt + float64(i)*fwLR
		y1 := topExt + float64(i+1)*fwLR
		if i%2 == 0 && i != 0 && i != nLR-1 {
			pts = append(pts,
				geom.Point2D{X: 0, Y: y1},
				geom.Point2D{X: -tabW, Y: y1},
				geom.Point2D{X: -tabW, Y: y0},
				geom.Point2D{X: 0, Y: y0})
		} else {
			pts = append(pts, geom.Point2D{X: 0, Y: y1}, geom.Point2D{X: 0, Y: y0})
		}
	}
	pts = append(pts, geom.Point2D{X: 0, Y: topDepth})

	return pts.Dedupe()
}

// sideOutline is the outline preset for the left/right side panels:
// tabs on the top/bottom edges over the central interior span, with flat
// overlap wings on each end that wrap around the front/back panels. The
// vertical edges are flat; front/back interlocking is via face slots.
func (g *Generator) sideOutline() geom.Outline {
	w := g.dims.InteriorY + 2*g.dims.SideOverlap
	h := g.dims.SideH
	n, fw := outline.Segments(g.dims.InteriorY, g.cfg.FingerWidth)
	topDepth := g.cfg.WallThickness // tabs into the top panel
	botDepth := g.cfg.SideThickness // tabs into the bottom panel

	var pts geom.Outline

	// Top edge: left wing, central tabs (protruding upward), right wing.
	pts = append(pts, geom.Point2D{X: 0, Y: 0}, geom.Point2D{X: g.dims.SideOverlap, Y: 0})
	for i := 0; i < n; i++ {
		x0 := g.dims.SideOverlap + float64(i)*fw
		x1 := g.dims.SideOverlap + float64(i+1)*fw
		if i%2 == 0 {
			pts = append(pts,
				geom.Point2D{X: x0, Y: 0},
				geom.Point2D{X: x0, Y: -topDepth},
				geom.Point2D{X: x1, Y: -topDepth},
				geom.Point2D{X: x1, Y: 0})
		} else {
			pts = append(pts, geom.Point2D{X: x0, Y: 0}, geom.Point2D{X: x1, Y: 0})
		}
	}
	pts = append(pts, geom.Point2D{X: g.dims.SideOverlap + g.dims.InteriorY, Y: 0}, geom.Point2D{X: w, Y: 0})

	// Right edge: flat.
	pts = append(pts, geom.Point2D{X: w, Y: h})

	// Bottom edge: right wing, central tabs (protruding downward), left wing.
	pts = append(pts, geom.Point2D{X: g.dims.SideOverlap + g.dims.InteriorY, Y: h})
	for i := n - 1; i >= 0; i-- {
		x0 := g.dims.SideOverlap + float64(i)*fw
		x1 := g.dims.SideOverlap + float64(i+1)*fw
		if i%2 == 0 {
			pts = append(pts,
				geom.Point2D{X: x1, Y: h},
				geom.Point2D{X: x1, Y: h + botDepth},
				geom.Point2D{X: x0, Y: h + botDepth},
				geom.Point2D{X: x0, Y: h})
		} else {
			pts = append(pts, geom.Point2D{X: x1, Y: h}, geom.Point2D{X: x0, Y: h})
		}
	}
	pts = append(pts, geom.Point2D{X: g.dims.SideOverlap, Y: h}, geom.Point2D{X: 0, Y: h})

	// Left edge: flat, back to the start.
	pts = append(pts, geom.Point2D{X: 0, Y: 0})

	return pts.Dedupe()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
