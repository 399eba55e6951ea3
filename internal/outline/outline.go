// Package outline synthesizes closed finger-joint polygons for rectangular
// panels. Given a rectangle and a per-edge joint mode it produces a single
// clockwise outline whose corners hand off finger depth to the adjacent
// edge, so mating panels interlock without gaps or overlaps.
package outline

import (
	"fmt"
	"math"

	"github.com/cicchiello/pi-nas/internal/geom"
)

// Mode selects the joint treatment of one rectangle edge.
type Mode int

const (
	Flat     Mode = iota // straight edge
	Tab                  // fingers recede into the panel body
	OuterTab             // fingers protrude outward, through a mating slot
	Slot                 // synonym for OuterTab on the mating side
)

func (m Mode) String() string {
	switch m {
	case Tab:
		return "tab"
	case OuterTab:
		return "outer_tab"
	case Slot:
		return "slot"
	default:
		return "flat"
	}
}

// Spec describes one panel outline. Depths are magnitudes; the sign is
// implied by the mode (Tab inward, OuterTab/Slot outward).
type Spec struct {
	Width       float64
	Height      float64
	FingerWidth float64

	Top    Mode
	Bottom Mode
	Left   Mode
	Right  Mode

	TopDepth    float64
	BottomDepth float64
	SideDepth   float64 // left and right edges share one depth

	// SkipSideEnds suppresses the first and last fingers on the left/right
	// edges, for panels whose ends must stay flush with a perpendicular
	// panel that has no matching slot there.
	SkipSideEnds bool
}

// SegmentCount returns the number of finger segments for an edge: an odd
// count of at least 3, so the two end segments are always the same kind and
// the corners stay symmetric.
func SegmentCount(length, fingerWidth float64) int {
	n := int(math.Round(length / fingerWidth))
	if n < 3 {
		n = 3
	}
	if n%2 == 0 {
		n++
	}
	return n
}

// Segments returns the segment count and segment width for an edge.
func Segments(length, fingerWidth float64) (n int, w float64) {
	n = SegmentCount(length, fingerWidth)
	return n, length / float64(n)
}

// Boundaries returns the positions of the segment boundaries along an edge,
// including both ends. Two mating panels sharing an edge length see the
// identical sequence.
func Boundaries(length, fingerWidth float64) []float64 {
	n, w := Segments(length, fingerWidth)
	bounds := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		bounds[i] = float64(i) * w
	}
	bounds[n] = length
	return bounds
}

// signedDepth maps a mode and magnitude to the builder's sign convention:
// negative recedes inward (Tab), positive protrudes outward.
func signedDepth(m Mode, d float64) float64 {
	switch m {
	case Tab:
		return -d
	case OuterTab, Slot:
		return d
	default:
		return 0
	}
}

// isFinger reports whether segment i of an n-segment edge is a finger.
// Even indices are fingers; odd indices are always flat.
func isFinger(i, n int, m Mode, skipEnds bool) bool {
	if m == Flat {
		return false
	}
	if i%2 != 0 {
		return false
	}
	if skipEnds && (i == 0 || i == n-1) {
		return false
	}
	return true
}

// Build generates the closed outline for spec. The polygon is traversed
// clockwise from the top-left corner: top left-to-right, right
// top-to-bottom, bottom right-to-left, left bottom-to-top. Consecutive
// duplicate points are collapsed and the closing point is dropped.
func Build(s Spec) (geom.Outline, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("outline: dimensions must be positive, got %gx%g", s.Width, s.Height)
	}
	if s.FingerWidth <= 0 {
		return nil, fmt.Errorf("outline: finger width must be positive, got %g", s.FingerWidth)
	}
	if s.TopDepth < 0 || s.BottomDepth < 0 || s.SideDepth < 0 {
		return nil, fmt.Errorf("outline: depths must be non-negative")
	}

	w, h := s.Width, s.Height
	nW, fwW := Segments(w, s.FingerWidth)
	nH, fwH := Segments(h, s.FingerWidth)

	// Corner seeds: where an edge ends on a finger, the corner point is
	// already offset by that finger's signed depth and the next edge starts
	// from the same offset point. Top-edge offsets are negated because
	// "inward" for the top edge is +y, the opposite of the sign convention.
	var topDStart, topDEnd, botDStart, botDEnd float64
	if isFinger(0, nW, s.Top, false) {
		topDStart = -signedDepth(s.Top, s.TopDepth)
	}
	if isFinger(nW-1, nW, s.Top, false) {
		topDEnd = -signedDepth(s.Top, s.TopDepth)
	}
	if isFinger(0, nW, s.Bottom, false) {
		botDStart = signedDepth(s.Bottom, s.BottomDepth)
	}
	if isFinger(nW-1, nW, s.Bottom, false) {
		botDEnd = signedDepth(s.Bottom, s.BottomDepth)
	}

	var pts geom.Outline

	// Top edge: left to right along y=0. Tab notches go to +y, outer tabs
	// to -y.
	for i := 0; i < nW; i++ {
		x0 := float64(i) * fwW
		x1 := float64(i+1) * fwW
		if i == nW-1 {
			x1 = w
		}
		if isFinger(i, nW, s.Top, false) {
			d := -signedDepth(s.Top, s.TopDepth)
			if i == 0 {
				// The left edge will connect at notch depth.
				pts = append(pts, geom.Point2D{X: x0, Y: d})
			} else {
				pts = append(pts, geom.Point2D{X: x0, Y: 0}, geom.Point2D{X: x0, Y: d})
			}
			pts = append(pts, geom.Point2D{X: x1, Y: d})
			if i != nW-1 {
				pts = append(pts, geom.Point2D{X: x1, Y: 0})
			}
		} else {
			pts = append(pts, geom.Point2D{X: x0, Y: 0}, geom.Point2D{X: x1, Y: 0})
		}
	}

	// Right edge: top to bottom along x=w, seeded from the top edge's final
	// depth, stopping at the bottom edge's starting depth.
	rightStartY := topDEnd
	rightEndY := h + botDStart
	for i := 0; i < nH; i++ {
		y0 := float64(i) * fwH
		y1 := float64(i+1) * fwH
		if i == 0 {
			y0 = rightStartY
		}
		if i == nH-1 {
			y1 = rightEndY
		}
		if isFinger(i, nH, s.Right, s.SkipSideEnds) {
			d := signedDepth(s.Right, s.SideDepth)
			pts = append(pts,
				geom.Point2D{X: w, Y: y0},
				geom.Point2D{X: w + d, Y: y0},
				geom.Point2D{X: w + d, Y: y1},
				geom.Point2D{X: w, Y: y1})
		} else {
			pts = append(pts, geom.Point2D{X: w, Y: y0}, geom.Point2D{X: w, Y: y1})
		}
	}

	// Bottom edge: right to left along y=h. Segment i=0 is at the right end.
	for i := 0; i < nW; i++ {
		x1 := w - float64(i)*fwW
		x0 := w - float64(i+1)*fwW
		if i == nW-1 {
			x0 = 0
		}
		if isFinger(i, nW, s.Bottom, false) {
			d := signedDepth(s.Bottom, s.BottomDepth)
			if i == 0 {
				// The right edge already ended at notch depth.
				pts = append(pts, geom.Point2D{X: x1, Y: h + d})
			} else {
				pts = append(pts, geom.Point2D{X: x1, Y: h}, geom.Point2D{X: x1, Y: h + d})
			}
			pts = append(pts, geom.Point2D{X: x0, Y: h + d})
			if i != nW-1 {
				pts = append(pts, geom.Point2D{X: x0, Y: h})
			}
		} else {
			pts = append(pts, geom.Point2D{X: x1, Y: h}, geom.Point2D{X: x0, Y: h})
		}
	}

	// Left edge: bottom to top along x=0, seeded from the bottom edge's
	// final depth, ending at the top edge's starting depth.
	leftStartY := h + botDEnd
	leftEndY := topDStart
	for i := 0; i < nH; i++ {
		y1 := h - float64(i)*fwH
		y0 := h - float64(i+1)*fwH
		if i == 0 {
			y1 = leftStartY
		}
		if i == nH-1 {
			y0 = leftEndY
		}
		if isFinger(i, nH, s.Left, s.SkipSideEnds) {
			d := signedDepth(s.Left, s.SideDepth)
			pts = append(pts,
				geom.Point2D{X: 0, Y: y1},
				geom.Point2D{X: -d, Y: y1},
				geom.Point2D{X: -d, Y: y0},
				geom.Point2D{X: 0, Y: y0})
		} else {
			pts = append(pts, geom.Point2D{X: 0, Y: y1}, geom.Point2D{X: 0, Y: y0})
		}
	}

	return pts.Dedupe(), nil
}
