package panels

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cicchiello/pi-nas/internal/canvas"
	"github.com/cicchiello/pi-nas/internal/config"
	"github.com/cicchiello/pi-nas/internal/geom"
	"github.com/cicchiello/pi-nas/internal/outline"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := New(config.Default())
	require.NoError(t, err)
	return g
}

// outlineOf returns the first cut polyline on the panel, which by
// convention is its boundary.
func outlineOf(t *testing.T, p *Panel) geom.Outline {
	t.Helper()
	for _, s := range p.Canvas.Shapes() {
		if pl, ok := s.(canvas.Polyline); ok && pl.Tag == canvas.Cut {
			return pl.Points
		}
	}
	t.Fatalf("panel %s has no cut polyline", p.Name)
	return nil
}

func cutRects(p *Panel) []canvas.Rect {
	var out []canvas.Rect
	for _, s := range p.Canvas.Shapes() {
		if r, ok := s.(canvas.Rect); ok && r.Tag == canvas.Cut {
			out = append(out, r)
		}
	}
	return out
}

func circles(p *Panel, role canvas.Role, r float64) []canvas.Circle {
	var out []canvas.Circle
	for _, s := range p.Canvas.Shapes() {
		if c, ok := s.(canvas.Circle); ok && c.Tag == role && c.R == r {
			out = append(out, c)
		}
	}
	return out
}

// horizontalRuns counts straight horizontal segments of the outline at the
// given y.
func horizontalRuns(o geom.Outline, y float64) int {
	count := 0
	for i := range o {
		j := (i + 1) % len(o)
		if o[i].Y == y && o[j].Y == y && o[i].X != o[j].X {
			count++
		}
	}
	return count
}

// verticalRuns counts straight vertical segments of the outline at the
// given x, returning their top y positions.
func verticalRuns(o geom.Outline, x float64) []float64 {
	var tops []float64
	for i := range o {
		j := (i + 1) % len(o)
		if o[i].X == x && o[j].X == x && o[i].Y != o[j].Y {
			top := o[i].Y
			if o[j].Y < top {
				top = o[j].Y
			}
			tops = append(tops, top)
		}
	}
	return tops
}

func signedArea(o geom.Outline) float64 {
	var sum float64
	for i := range o {
		j := (i + 1) % len(o)
		sum += o[i].X*o[j].Y - o[j].X*o[i].Y
	}
	return sum / 2
}

func TestGenerateAll(t *testing.T) {
	g := newTestGenerator(t)
	all := g.GenerateAll()
	require.Len(t, all, 8)

	wantFiles := []string{
		"01_bottom_panel.svg", "02_top_panel.svg",
		"03_front_panel.svg", "04_back_panel.svg",
		"05_left_side_panel.svg", "06_right_side_panel.svg",
		"07_drive_comb_rail.svg", "08_fan_bracket.svg",
	}
	ids := map[string]bool{}
	for i, p := range all {
		assert.Equal(t, wantFiles[i], p.Filename)
		assert.Len(t, p.ID, 8)
		assert.False(t, ids[p.ID], "duplicate panel ID %s", p.ID)
		ids[p.ID] = true
		assert.NotEmpty(t, p.Canvas.Shapes())
		assert.Greater(t, p.Thickness, 0.0)
	}
	assert.Equal(t, 2, all[6].Quantity, "two comb rails per enclosure")
}

func TestDefaultDerivedDimensions(t *testing.T) {
	g := newTestGenerator(t)
	d := g.Dims()

	// 4 drives at 26.11mm pitch plus 3 gaps of 19mm plus 11.5mm margins,
	// rounded up to 5mm.
	assert.Equal(t, 185.0, d.InteriorX)
	assert.Equal(t, 120.0, d.InteriorY)
	assert.Equal(t, 195.0, d.ExtX)
	assert.Equal(t, 126.0, d.ExtY)
	assert.InDelta(t, 315.24, d.SideH, 1e-9)
	assert.InDelta(t, 323.24, d.TotalH, 1e-9)
}

func TestOutlines_CloseClockwise(t *testing.T) {
	g := newTestGenerator(t)
	for _, p := range g.GenerateAll() {
		if p.Name == "fan bracket" {
			continue // plain rectangle, no boundary polyline
		}
		o := outlineOf(t, p)
		assert.Greater(t, signedArea(o), 0.0, "%s outline not clockwise", p.Name)
		assert.NotEqual(t, o[0], o[len(o)-1], "%s outline keeps closing duplicate", p.Name)
		for i := range o {
			j := (i + 1) % len(o)
			assert.False(t, o[i].Close(o[j], geom.Epsilon), "%s has coincident points at %d", p.Name, i)
		}
	}
}

func TestMating_SideTabsMatchHorizontalSlots(t *testing.T) {
	g := newTestGenerator(t)
	d := g.Dims()
	cfg := g.Config()

	n, fw := outline.Segments(d.InteriorY, cfg.FingerWidth)
	wantTabs := (n + 1) / 2 // even indices

	// Side panel: tabs protrude above y=0, floors at y=-WallThickness.
	side := g.Side(SideLeft)
	assert.Equal(t, wantTabs, horizontalRuns(outlineOf(t, side), -cfg.WallThickness))

	// Bottom panel: one slot column per edge, one slot per tab, slot width
	// equal to the side panel thickness.
	bottom := g.Bottom()
	var left, right []canvas.Rect
	for _, r := range cutRects(bottom) {
		switch {
		case r.X == cfg.MinOverhang && r.W == cfg.SideThickness:
			left = append(left, r)
		case r.X == d.ExtX-cfg.MinOverhang-cfg.SideThickness && r.W == cfg.SideThickness:
			right = append(right, r)
		}
	}
	require.Len(t, left, wantTabs)
	require.Len(t, right, wantTabs)

	// Slot positions equal the tab positions: slot i covers [i*fw, (i+1)*fw]
	// on the interior span, exactly where tab i sits on the side panel.
	for i, r := range left {
		assert.InDelta(t, float64(2*i)*fw, r.Y, 1e-9)
		assert.InDelta(t, fw, r.H, 1e-9)
	}
}

func TestMating_FrontTabsMatchSideSlots(t *testing.T) {
	g := newTestGenerator(t)
	d := g.Dims()
	cfg := g.Config()

	n, fw := outline.Segments(d.SideH, cfg.FingerWidth)
	wantTabs := (n+1)/2 - 2 // even indices minus the suppressed ends

	front := g.Front()
	o := outlineOf(t, front)
	bodyW := d.ExtX - 2*(cfg.MinOverhang+cfg.SideThickness)
	rightTabs := verticalRuns(o, bodyW+cfg.SideThickness)
	leftTabs := verticalRuns(o, -cfg.SideThickness)
	require.Len(t, rightTabs, wantTabs)
	require.Len(t, leftTabs, wantTabs)

	side := g.Side(SideLeft)
	var slots []canvas.Rect
	for _, r := range cutRects(side) {
		if r.X == cfg.MinOverhang && r.W == cfg.WallThickness {
			slots = append(slots, r)
		}
	}
	require.Len(t, slots, wantTabs)

	// The front panel's finger zone starts one top-panel thickness below its
	// top edge; the side panel spans the finger zone exactly. Shifting the
	// tab tops by that extension must land on the slot positions.
	for i, top := range rightTabs {
		assert.InDelta(t, slots[i].Y, top-cfg.WallThickness, 1e-9)
		assert.InDelta(t, fw, slots[i].H, 1e-9)
	}
}

func TestMating_FrontNotchesAlignWithHorizontalProtrusions(t *testing.T) {
	g := newTestGenerator(t)
	d := g.Dims()
	cfg := g.Config()

	// Both patterns segment the full exterior width. The horizontal panels
	// emit protrusions at even indices; the front panel notches are the same
	// pattern shifted by the slot inner edge offset and clipped to its body.
	n, fw := outline.Segments(d.ExtX, cfg.FingerWidth)
	bottom := outlineOf(t, g.Bottom())
	assert.Equal(t, (n+1)/2, horizontalRuns(bottom, -cfg.WallThickness),
		"bottom panel front-edge protrusion floors")

	front := outlineOf(t, g.Front())
	notchFloors := horizontalRuns(front, cfg.WallThickness)
	// The clip can only trim end fingers, never interior ones.
	assert.GreaterOrEqual(t, notchFloors, (n+1)/2-2)
	assert.LessOrEqual(t, notchFloors, (n+1)/2)

	// Interior notch walls sit on the shifted segment grid.
	offset := cfg.MinOverhang + cfg.SideThickness
	for i := range front {
		j := (i + 1) % len(front)
		p, q := front[i], front[j]
		if p.X == q.X && p.Y == 0 && q.Y == cfg.WallThickness {
			// Wall descending into a notch: x must be a segment boundary
			// minus the offset.
			k := (p.X + offset) / fw
			assert.InDelta(t, k, float64(int(k+0.5)), 1e-6, "notch wall off-grid at x=%g", p.X)
		}
	}
}

func TestBottom_FeatureInventory(t *testing.T) {
	g := newTestGenerator(t)
	cfg := g.Config()
	p := g.Bottom()

	assert.Len(t, circles(p, canvas.Cut, cfg.RodHole/2), 4, "rod holes")
	assert.Len(t, circles(p, canvas.Engrave, cfg.GrommetOD/2), 4, "grommet rings")
	piHoles := circles(p, canvas.Cut, cfg.PiHoleDia/2)
	assert.Len(t, piHoles, 4, "board mounting holes")

	// Vent slots keep clear of the board holes.
	for _, s := range p.Canvas.Shapes() {
		r, ok := s.(canvas.Rect)
		if !ok || r.Tag != canvas.Cut || r.Corner == 0 || r.H != 3.0 {
			continue
		}
		for _, hole := range piHoles {
			clear := r.X >= hole.CX+4 || r.X+r.W <= hole.CX-4 ||
				r.Y >= hole.CY+4 || r.Y+r.H <= hole.CY-4
			assert.True(t, clear, "vent at (%g,%g) overlaps board hole", r.X, r.Y)
		}
	}
}

func TestTop_GrilleOpeningsAreFingerSafe(t *testing.T) {
	g := newTestGenerator(t)
	p := g.Top()

	d := g.Dims()
	cx, cy := d.ExtX/2, d.InteriorY/2
	fanR := g.Config().FanSize / 2

	grille := 0
	for _, s := range p.Canvas.Shapes() {
		pl, ok := s.(canvas.Polyline)
		if !ok {
			continue
		}
		min, max := pl.Points.BoundingBox()
		if min.X < cx-fanR || max.X > cx+fanR || min.Y < cy-fanR || max.Y > cy+fanR {
			continue // panel boundary, not a grille slot
		}
		grille++
		// Each arc slot is a thin closed band: its radial width is the
		// distance between the matching outer and inner arc endpoints.
		o0 := pl.Points[0]
		i0 := pl.Points[len(pl.Points)-1]
		assert.InDelta(t, 3.0, math.Hypot(o0.X-i0.X, o0.Y-i0.Y), 1e-6)
	}
	assert.Greater(t, grille, 10, "expected several grille slots")
}

func TestCombRail_OneToothPerDrive(t *testing.T) {
	g := newTestGenerator(t)
	cfg := g.Config()
	d := g.Dims()
	p := g.CombRail()

	o := outlineOf(t, p)
	assert.Equal(t, cfg.NumDrives, horizontalRuns(o, d.CombTotalH), "tooth bottoms")

	// Three screw holes per tooth, on the drive side-hole heights.
	assert.Len(t, circles(p, canvas.Cut, 1.7), cfg.NumDrives*len(cfg.DriveSideHoleZ))
	assert.Len(t, circles(p, canvas.Engrave, 3.5), cfg.NumDrives*len(cfg.DriveSideHoleZ))

	// End tabs protrude by the side panel thickness.
	min, max := o.BoundingBox()
	railW := d.ExtX - 2*(cfg.MinOverhang+cfg.SideThickness)
	assert.InDelta(t, -cfg.SideThickness, min.X, 1e-9)
	assert.InDelta(t, railW+cfg.SideThickness, max.X, 1e-9)
}

func TestFanBracket_RodHolesAlignWithHorizontalPanels(t *testing.T) {
	g := newTestGenerator(t)
	cfg := g.Config()
	d := g.Dims()
	p := g.FanBracket()

	holes := circles(p, canvas.Cut, cfg.RodHole/2)
	require.Len(t, holes, 4)

	// Shifting a bracket hole by the bracket origin must land on a
	// horizontal panel rod position.
	bracketOX := cfg.MinOverhang + cfg.SideThickness + 1
	const bracketOY = 1.0
	want := map[geom.Point2D]bool{
		{X: d.RodInset, Y: d.RodInset}:                        true,
		{X: d.ExtX - d.RodInset, Y: d.RodInset}:               true,
		{X: d.RodInset, Y: d.InteriorY - d.RodInset}:          true,
		{X: d.ExtX - d.RodInset, Y: d.InteriorY - d.RodInset}: true,
	}
	for _, h := range holes {
		pos := geom.Point2D{X: h.CX + bracketOX, Y: h.CY + bracketOY}
		assert.True(t, want[pos], "unexpected rod hole at %+v", pos)
	}
}

func TestBack_LogoIsEngraveOnly(t *testing.T) {
	g := newTestGenerator(t)
	p := g.Back()

	engraves := 0
	for _, s := range p.Canvas.Shapes() {
		pl, ok := s.(canvas.Polyline)
		if !ok {
			continue
		}
		if pl.Tag == canvas.Engrave {
			engraves++
			assert.False(t, pl.Closed, "logo strokes are open paths")
		}
	}
	// 6 glyphs, several strokes each, tripled for weight.
	assert.Greater(t, engraves, 50)
}

func TestWriteAll(t *testing.T) {
	g := newTestGenerator(t)
	paths, err := g.WriteAll(t.TempDir())
	require.NoError(t, err)
	assert.Len(t, paths, 8)
}
