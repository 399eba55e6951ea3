// Package verify reads exported DXF files back and checks them against the
// sheet layout they were generated from. It is a guard against exporter
// regressions: entity counts and overall extents must survive the round trip.
package verify

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/cicchiello/pi-nas/internal/canvas"
	"github.com/cicchiello/pi-nas/internal/nest"
)

// Report summarizes the entities found in a DXF file.
type Report struct {
	Polylines       int
	ClosedPolylines int
	Circles         int
	Vertices        int

	// Extents of all entity geometry.
	Width  float64
	Height float64

	Warnings []string
}

// ReadDXF opens a DXF file and tallies its entities.
func ReadDXF(path string) (*Report, error) {
	drawing, err := dxf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		return nil, fmt.Errorf("%s contains no entities", path)
	}

	r := &Report{}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			r.Polylines++
			if e.Closed {
				r.ClosedPolylines++
			}
			if len(e.Vertices) < 2 {
				r.Warnings = append(r.Warnings,
					fmt.Sprintf("LWPOLYLINE with %d vertices", len(e.Vertices)))
			}
			r.Vertices += len(e.Vertices)
			for _, v := range e.Vertices {
				grow(v[0], v[1])
			}

		case *entity.Circle:
			r.Circles++
			cx, cy := e.Center[0], e.Center[1]
			grow(cx-e.Radius, cy-e.Radius)
			grow(cx+e.Radius, cy+e.Radius)

		default:
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("unexpected entity type %T", ent))
		}
	}

	if r.Polylines+r.Circles > 0 {
		r.Width = maxX - minX
		r.Height = maxY - minY
	}
	return r, nil
}

// CheckSheet reads the DXF at path and compares it against the sheet it was
// exported from. Returned problems are human-readable mismatch descriptions;
// an empty slice means the file matches.
func CheckSheet(path string, s *nest.Sheet) ([]string, error) {
	report, err := ReadDXF(path)
	if err != nil {
		return nil, err
	}

	wantPolys, wantCircles := 0, 0
	for _, shape := range s.Shapes() {
		switch shape.(type) {
		case canvas.Rect, canvas.Polyline:
			wantPolys++
		case canvas.Circle:
			wantCircles++
		}
	}

	var problems []string
	if report.Polylines != wantPolys {
		problems = append(problems,
			fmt.Sprintf("expected %d polylines, found %d", wantPolys, report.Polylines))
	}
	if report.Circles != wantCircles {
		problems = append(problems,
			fmt.Sprintf("expected %d circles, found %d", wantCircles, report.Circles))
	}

	usedW, usedH := s.Used()
	if math.Abs(report.Width-usedW) > 0.1 {
		problems = append(problems,
			fmt.Sprintf("expected width %.2fmm, found %.2fmm", usedW, report.Width))
	}
	if math.Abs(report.Height-usedH) > 0.1 {
		problems = append(problems,
			fmt.Sprintf("expected height %.2fmm, found %.2fmm", usedH, report.Height))
	}

	problems = append(problems, report.Warnings...)
	return problems, nil
}
