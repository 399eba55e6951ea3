// Package export writes the fabrication deliverables: the DXF the laser
// service consumes, plus the review PDF, part labels, and cut list.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cicchiello/pi-nas/internal/canvas"
	"github.com/cicchiello/pi-nas/internal/geom"
	"github.com/cicchiello/pi-nas/internal/nest"
)

// DXF layer names, colors per the AutoCAD index (1=red, 5=blue).
const (
	layerCut     = "CUT"
	layerEngrave = "ENGRAVE"
)

func dxfLayer(role canvas.Role) string {
	if role == canvas.Engrave {
		return layerEngrave
	}
	return layerCut
}

type dxfWriter struct {
	w   *bufio.Writer
	err error
}

func (d *dxfWriter) pair(code int, value any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, "  %d\n%v\n", code, value)
}

func (d *dxfWriter) coord(code int, v float64) {
	d.pair(code, fmt.Sprintf("%.4f", v))
}

// polyline emits one LWPOLYLINE. For closed paths the closing duplicate
// point, if present, is dropped and the closed flag set instead; the vertex
// count reflects the vertices actually written.
func (d *dxfWriter) polyline(layer string, pts geom.Outline, closed bool) {
	if len(pts) >= 2 && pts[0].Close(pts[len(pts)-1], 0.01) {
		closed = true
		pts = pts[:len(pts)-1]
	}
	d.pair(0, "LWPOLYLINE")
	d.pair(8, layer)
	d.pair(90, len(pts))
	if closed {
		d.pair(70, 1)
	} else {
		d.pair(70, 0)
	}
	for _, p := range pts {
		d.coord(10, p.X)
		d.coord(20, p.Y)
	}
}

func (d *dxfWriter) circle(layer string, cx, cy, r float64) {
	d.pair(0, "CIRCLE")
	d.pair(8, layer)
	d.coord(10, cx)
	d.coord(20, cy)
	d.coord(40, r)
}

// rectPoints returns a rectangle's corner loop; a rounded rectangle gets
// its corners cut at the radius, which is accurate enough for the small
// radii the panels use.
func rectPoints(r canvas.Rect) geom.Outline {
	if r.Corner > 0 {
		c := r.Corner
		return geom.Outline{
			{X: r.X + c, Y: r.Y}, {X: r.X + r.W - c, Y: r.Y},
			{X: r.X + r.W, Y: r.Y + c}, {X: r.X + r.W, Y: r.Y + r.H - c},
			{X: r.X + r.W - c, Y: r.Y + r.H}, {X: r.X + c, Y: r.Y + r.H},
			{X: r.X, Y: r.Y + r.H - c}, {X: r.X, Y: r.Y + c},
		}
	}
	return geom.Outline{
		{X: r.X, Y: r.Y}, {X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H}, {X: r.X, Y: r.Y + r.H},
	}
}

// WriteDXF serializes shapes as a minimal R12 document with CUT and
// ENGRAVE layers. sheetHeight flips the Y axis: the interchange documents
// are Y-down, DXF is Y-up.
func WriteDXF(w io.Writer, shapes []canvas.Shape, sheetHeight float64) error {
	d := &dxfWriter{w: bufio.NewWriter(w)}
	flip := func(y float64) float64 { return sheetHeight - y }

	d.pair(0, "SECTION")
	d.pair(2, "HEADER")
	d.pair(9, "$INSUNITS")
	d.pair(70, 4) // millimetres
	d.pair(0, "ENDSEC")

	d.pair(0, "SECTION")
	d.pair(2, "TABLES")
	d.pair(0, "TABLE")
	d.pair(2, "LAYER")
	d.pair(70, 2)
	for _, l := range []struct {
		name  string
		color int
	}{{layerCut, 1}, {layerEngrave, 5}} {
		d.pair(0, "LAYER")
		d.pair(2, l.name)
		d.pair(70, 0)
		d.pair(62, l.color)
		d.pair(6, "CONTINUOUS")
	}
	d.pair(0, "ENDTAB")
	d.pair(0, "ENDSEC")

	d.pair(0, "SECTION")
	d.pair(2, "ENTITIES")
	for _, s := range shapes {
		layer := dxfLayer(s.Role())
		switch e := s.(type) {
		case canvas.Rect:
			pts := rectPoints(e)
			for i := range pts {
				pts[i].Y = flip(pts[i].Y)
			}
			d.polyline(layer, pts, true)
		case canvas.Circle:
			d.circle(layer, e.CX, flip(e.CY), e.R)
		case canvas.Polyline:
			if len(e.Points) < 2 {
				continue
			}
			pts := make(geom.Outline, len(e.Points))
			for i, p := range e.Points {
				pts[i] = geom.Point2D{X: p.X, Y: flip(p.Y)}
			}
			d.polyline(layer, pts, e.Closed)
		default:
			return fmt.Errorf("export: unknown shape type %T", s)
		}
	}
	d.pair(0, "ENDSEC")
	d.pair(0, "EOF")

	if d.err != nil {
		return d.err
	}
	return d.w.Flush()
}

// ExportDXF writes a nested sheet as a DXF file. The Y flip uses the
// emitted document height, which is the placed content extent.
func ExportDXF(path string, s *nest.Sheet) error {
	_, docH := s.Used()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteDXF(f, s.Shapes(), docH); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
