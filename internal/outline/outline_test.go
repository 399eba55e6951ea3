package outline

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cicchiello/pi-nas/internal/geom"
)

func TestSegmentCount(t *testing.T) {
	tests := []struct {
		length float64
		fw     float64
		want   int
	}{
		{120, 12, 11}, // round(10)=10, forced odd
		{60, 12, 5},
		{36, 12, 3},
		{30, 12, 3}, // round(2.5)
		{6, 12, 3},  // minimum
		{191, 12, 17},
		{100, 12, 9}, // round(8.33)=8, forced odd
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SegmentCount(tt.length, tt.fw), "length %g", tt.length)
	}
}

func TestBoundaries_MatingPanelsSeeIdenticalPositions(t *testing.T) {
	// Panel A declares tab, panel B declares slot on the same nominal edge.
	// The segment boundaries must be the identical sequence for both.
	const length, fw = 171.0, 12.0
	a := Boundaries(length, fw)
	b := Boundaries(length, fw)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i], b[i], "boundary %d", i)
	}
	assert.Equal(t, 0.0, a[0])
	assert.Equal(t, length, a[len(a)-1])
}

func TestBuild_InvalidInput(t *testing.T) {
	base := Spec{Width: 100, Height: 50, FingerWidth: 12}

	s := base
	s.Width = 0
	_, err := Build(s)
	assert.Error(t, err)

	s = base
	s.Height = -5
	_, err = Build(s)
	assert.Error(t, err)

	s = base
	s.FingerWidth = 0
	_, err = Build(s)
	assert.Error(t, err)

	s = base
	s.TopDepth = -1
	_, err = Build(s)
	assert.Error(t, err)
}

// signedArea is positive for a clockwise traversal in the Y-down panel
// coordinate system.
func signedArea(o geom.Outline) float64 {
	var sum float64
	n := len(o)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += o[i].X*o[j].Y - o[j].X*o[i].Y
	}
	return sum / 2
}

func TestBuild_AllModeCombinations(t *testing.T) {
	modes := []Mode{Flat, Tab, OuterTab, Slot}
	for _, top := range modes {
		for _, bottom := range modes {
			for _, left := range modes {
				for _, right := range modes {
					name := fmt.Sprintf("t=%v_b=%v_l=%v_r=%v", top, bottom, left, right)
					t.Run(name, func(t *testing.T) {
						o, err := Build(Spec{
							Width: 120, Height: 60, FingerWidth: 12,
							Top: top, Bottom: bottom, Left: left, Right: right,
							TopDepth: 3, BottomDepth: 3, SideDepth: 5,
						})
						require.NoError(t, err)
						require.GreaterOrEqual(t, len(o), 4)

						// No two consecutive points within epsilon, including
						// the implicit closing segment.
						for i := range o {
							j := (i + 1) % len(o)
							dx := math.Abs(o[i].X - o[j].X)
							dy := math.Abs(o[i].Y - o[j].Y)
							assert.True(t, dx > geom.Epsilon || dy > geom.Epsilon,
								"points %d and %d coincide: %+v", i, j, o[i])
						}

						// Clockwise single loop.
						assert.Greater(t, signedArea(o), 0.0)

						// Geometry stays within the rectangle plus depths.
						min, max := o.BoundingBox()
						assert.GreaterOrEqual(t, min.X, -5.0-1e-9)
						assert.GreaterOrEqual(t, min.Y, -3.0-1e-9)
						assert.LessOrEqual(t, max.X, 125.0+1e-9)
						assert.LessOrEqual(t, max.Y, 63.0+1e-9)
					})
				}
			}
		}
	}
}

// countPlateaus counts horizontal runs at the given y with both endpoints
// inside [0, maxX] — i.e. finger floors along a horizontal edge, excluding
// runs contributed by the vertical edges' fingers.
func countPlateaus(o geom.Outline, y, maxX float64) int {
	count := 0
	for i := 0; i < len(o); i++ {
		j := (i + 1) % len(o)
		if o[i].Y == y && o[j].Y == y && o[i].X != o[j].X &&
			o[i].X >= 0 && o[i].X <= maxX && o[j].X >= 0 && o[j].X <= maxX {
			count++
		}
	}
	return count
}

// countVerticalPlateaus counts vertical runs at the given x with both
// endpoints inside the edge span — finger walls along a vertical edge.
func countVerticalPlateaus(o geom.Outline, x float64) int {
	count := 0
	for i := 0; i < len(o); i++ {
		j := (i + 1) % len(o)
		if o[i].X == x && o[j].X == x && o[i].Y != o[j].Y {
			count++
		}
	}
	return count
}

func TestBuild_ReferenceScenario(t *testing.T) {
	// 120x60, finger width 12: top/bottom tab depth 3, sides outer_tab
	// depth 5. Top/bottom edges segment into round(120/12)=10, forced odd
	// -> 11 segments with fingers at the 6 even indices. Sides segment
	// into 5 with fingers at the 3 even indices.
	require.Equal(t, 11, SegmentCount(120, 12))
	require.Equal(t, 5, SegmentCount(60, 12))

	o, err := Build(Spec{
		Width: 120, Height: 60, FingerWidth: 12,
		Top: Tab, Bottom: Tab, Left: OuterTab, Right: OuterTab,
		TopDepth: 3, BottomDepth: 3, SideDepth: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 6, countPlateaus(o, 3, 120), "top notch floors at y=3")
	assert.Equal(t, 6, countPlateaus(o, 57, 120), "bottom notch floors at y=57")
	assert.Equal(t, 3, countVerticalPlateaus(o, 125), "right finger walls at x=125")
	assert.Equal(t, 3, countVerticalPlateaus(o, -5), "left finger walls at x=-5")
}

func TestBuild_CornerHandoffIsExact(t *testing.T) {
	// With every edge a tab, each corner lies at notch depth and the two
	// adjacent edges must meet there bit-identically. The builder seeds
	// the outgoing edge from the incoming edge's literal end point, so
	// after dedupe the corner appears exactly once.
	o, err := Build(Spec{
		Width: 120, Height: 60, FingerWidth: 12,
		Top: Tab, Bottom: Tab, Left: Tab, Right: Tab,
		TopDepth: 3, BottomDepth: 3, SideDepth: 5,
	})
	require.NoError(t, err)

	// Top-left corner: the outline starts on the top edge at notch depth.
	assert.Equal(t, geom.Point2D{X: 0, Y: 3}, o[0])
	// The left edge's final emitted point closed onto the same coordinate
	// and was collapsed — (0,3) must appear exactly once.
	occurrences := 0
	for _, p := range o {
		if p == (geom.Point2D{X: 0, Y: 3}) {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences)

	// Exact (bit-identical, not merely close) corner points on the other
	// three corners: top-right, bottom-right, bottom-left.
	assert.Contains(t, o, geom.Point2D{X: 120, Y: 3})
	assert.Contains(t, o, geom.Point2D{X: 120, Y: 57})
	assert.Contains(t, o, geom.Point2D{X: 0, Y: 57})
}

func TestBuild_SkipSideEnds(t *testing.T) {
	full, err := Build(Spec{
		Width: 120, Height: 60, FingerWidth: 12,
		Left: OuterTab, Right: OuterTab, SideDepth: 5,
	})
	require.NoError(t, err)
	skipped, err := Build(Spec{
		Width: 120, Height: 60, FingerWidth: 12,
		Left: OuterTab, Right: OuterTab, SideDepth: 5,
		SkipSideEnds: true,
	})
	require.NoError(t, err)

	// 5 segments per side: fingers at 0,2,4 normally, only at 2 when the
	// ends are skipped.
	assert.Equal(t, 3, countVerticalPlateaus(full, 125))
	assert.Equal(t, 1, countVerticalPlateaus(skipped, 125))
	assert.Equal(t, 3, countVerticalPlateaus(full, -5))
	assert.Equal(t, 1, countVerticalPlateaus(skipped, -5))
}

func TestBuild_FlatRectangle(t *testing.T) {
	o, err := Build(Spec{Width: 100, Height: 40, FingerWidth: 12})
	require.NoError(t, err)
	assert.Equal(t, geom.Outline{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 40}, {X: 0, Y: 40},
	}, o)
}

func TestBuild_FirstAndLastDiffer(t *testing.T) {
	o, err := Build(Spec{
		Width: 120, Height: 60, FingerWidth: 12,
		Top: OuterTab, Bottom: Tab, Left: Slot, Right: Tab,
		TopDepth: 3, BottomDepth: 3, SideDepth: 5,
	})
	require.NoError(t, err)
	assert.NotEqual(t, o[0], o[len(o)-1])
}
