package nest

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cicchiello/pi-nas/internal/canvas"
	"github.com/cicchiello/pi-nas/internal/geom"
)

func parseCanvas(t *testing.T, c *canvas.Canvas, keepEngrave bool) *Part {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.WriteSVG(&buf))
	p, err := Parse(&buf, "test", keepEngrave)
	require.NoError(t, err)
	return p
}

func TestParse_NormalizesToCutBoundingBox(t *testing.T) {
	c := canvas.New(40, 30, 5)
	c.AddRect(0, 0, 40, 30, canvas.Cut)
	c.AddCircle(20, 15, 4, canvas.Cut)
	c.AddAnnotation(0, -3, "ignored", 3)

	p := parseCanvas(t, c, false)
	assert.InDelta(t, 40, p.Width, 1e-6)
	assert.InDelta(t, 30, p.Height, 1e-6)
	require.Len(t, p.Shapes, 2)

	// The document margin is stripped: the boundary rect is back at (0,0).
	r := p.Shapes[0].(canvas.Rect)
	assert.InDelta(t, 0, r.X, 1e-6)
	assert.InDelta(t, 0, r.Y, 1e-6)
}

func TestParse_EngraveNeverAffectsSize(t *testing.T) {
	c := canvas.New(40, 30, 5)
	c.AddRect(0, 0, 40, 30, canvas.Cut)
	// Engrave circle poking far outside the cut extent.
	c.AddCircle(60, 15, 10, canvas.Engrave)

	bare := parseCanvas(t, c, false)
	kept := parseCanvas(t, c, true)

	assert.InDelta(t, bare.Width, kept.Width, 1e-9)
	assert.InDelta(t, bare.Height, kept.Height, 1e-9)
	assert.Len(t, bare.Shapes, 1)
	assert.Len(t, kept.Shapes, 2)
}

func TestParse_NoCutGeometryIsError(t *testing.T) {
	c := canvas.New(40, 30, 5)
	c.AddCircle(10, 10, 4, canvas.Engrave)

	var buf bytes.Buffer
	require.NoError(t, c.WriteSVG(&buf))
	_, err := Parse(&buf, "empty", true)
	assert.ErrorContains(t, err, "no cut geometry")
}

func TestParse_PathClosedFlag(t *testing.T) {
	c := canvas.New(20, 20, 0)
	c.AddPolyline(geom.Outline{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, true, canvas.Cut)
	c.AddPolyline(geom.Outline{{X: 0, Y: 15}, {X: 10, Y: 15}}, false, canvas.Cut)

	p := parseCanvas(t, c, false)
	require.Len(t, p.Shapes, 2)
	assert.True(t, p.Shapes[0].(canvas.Polyline).Closed)
	assert.False(t, p.Shapes[1].(canvas.Polyline).Closed)
}

func TestParsePathData(t *testing.T) {
	pts, closed, err := parsePathData("M 1,2 L 3,4 L 5.5,6 Z")
	require.NoError(t, err)
	assert.True(t, closed)
	assert.Equal(t, geom.Outline{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5.5, Y: 6}}, pts)

	_, _, err = parsePathData("M 1,banana")
	assert.Error(t, err)
}

func samplePart() *Part {
	return &Part{
		Name: "sample", Width: 40, Height: 30,
		Shapes: []canvas.Shape{
			canvas.Rect{X: 2, Y: 3, W: 10, H: 5, Corner: 1, Tag: canvas.Cut},
			canvas.Circle{CX: 20, CY: 15, R: 4, Tag: canvas.Engrave},
			canvas.Polyline{Points: geom.Outline{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 30}}, Closed: true, Tag: canvas.Cut},
		},
	}
}

func shapesEqual(t *testing.T, want, got []canvas.Shape) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	for i := range want {
		switch w := want[i].(type) {
		case canvas.Rect:
			g := got[i].(canvas.Rect)
			assert.InDelta(t, w.X, g.X, 1e-9)
			assert.InDelta(t, w.Y, g.Y, 1e-9)
			assert.InDelta(t, w.W, g.W, 1e-9)
			assert.InDelta(t, w.H, g.H, 1e-9)
			assert.Equal(t, w.Corner, g.Corner)
		case canvas.Circle:
			g := got[i].(canvas.Circle)
			assert.InDelta(t, w.CX, g.CX, 1e-9)
			assert.InDelta(t, w.CY, g.CY, 1e-9)
			assert.Equal(t, w.R, g.R)
		case canvas.Polyline:
			g := got[i].(canvas.Polyline)
			require.Equal(t, len(w.Points), len(g.Points))
			for j := range w.Points {
				assert.InDelta(t, w.Points[j].X, g.Points[j].X, 1e-9)
				assert.InDelta(t, w.Points[j].Y, g.Points[j].Y, 1e-9)
			}
		}
	}
}

func TestRotate90CW_FourTimesIsIdentity(t *testing.T) {
	p := samplePart()
	r := p.Rotate90CW()
	assert.Equal(t, p.Height, r.Width)
	assert.Equal(t, p.Width, r.Height)

	r = r.Rotate90CW().Rotate90CW().Rotate90CW()
	shapesEqual(t, p.Shapes, r.Shapes)
}

func TestRotate180_TwiceIsIdentity(t *testing.T) {
	p := samplePart()
	r := p.Rotate180()
	assert.Equal(t, p.Width, r.Width)
	assert.Equal(t, p.Height, r.Height)
	shapesEqual(t, p.Shapes, r.Rotate180().Shapes)
}

func TestSheet_OverflowWarnsButStillWrites(t *testing.T) {
	s := NewSheet("test", 100, 50, 3)
	big := &Part{Name: "big", Width: 80, Height: 40,
		Shapes: []canvas.Shape{canvas.Rect{W: 80, H: 40, Tag: canvas.Cut}}}
	s.Place("A", big, 0, 0)
	s.Place("B", big, 83, 0)
	s.CheckFit()

	require.Len(t, s.Warnings, 1)
	assert.Contains(t, s.Warnings[0], "163.0x40.0mm")

	var buf bytes.Buffer
	require.NoError(t, s.WriteSVG(&buf))
	assert.Contains(t, buf.String(), `stroke-width="0.01"`)
}

func TestSheet_FitRecordsNoWarning(t *testing.T) {
	s := NewSheet("test", 100, 50, 3)
	s.Place("A", &Part{Width: 40, Height: 40}, 0, 0)
	s.CheckFit()
	assert.Empty(t, s.Warnings)

	w, h := s.Used()
	assert.Equal(t, 40.0, w)
	assert.Equal(t, 40.0, h)
}

func TestSheet_SaveAndReparse(t *testing.T) {
	s := NewSheet("test", 200, 100, 3)
	s.Place("A", samplePart(), 10, 5)

	path := filepath.Join(t.TempDir(), "sheet.svg")
	require.NoError(t, s.Save(path))

	// The sheet document is itself a valid interchange document.
	p, err := ParseFile(path, true)
	require.NoError(t, err)
	assert.Len(t, p.Shapes, 3)
}
