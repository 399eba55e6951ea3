// Package nest re-reads emitted panel documents as opaque geometry and
// packs them onto fixed-size fabrication sheets. A parsed part is just a
// primitive list with a measured size; which panel it was no longer
// matters here.
package nest

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cicchiello/pi-nas/internal/canvas"
	"github.com/cicchiello/pi-nas/internal/geom"
)

// Part is one parsed panel: its primitives shifted so the cut geometry's
// bounding box starts at (0,0), plus the measured content size. Engrave
// shapes may extend outside the content box; they never influence sizing.
type Part struct {
	Name   string
	Width  float64
	Height float64
	Shapes []canvas.Shape
}

type svgRect struct {
	X      float64 `xml:"x,attr"`
	Y      float64 `xml:"y,attr"`
	W      float64 `xml:"width,attr"`
	H      float64 `xml:"height,attr"`
	RX     float64 `xml:"rx,attr"`
	Stroke string  `xml:"stroke,attr"`
}

type svgCircle struct {
	CX     float64 `xml:"cx,attr"`
	CY     float64 `xml:"cy,attr"`
	R      float64 `xml:"r,attr"`
	Stroke string  `xml:"stroke,attr"`
}

type svgPath struct {
	D      string `xml:"d,attr"`
	Stroke string `xml:"stroke,attr"`
}

type svgDoc struct {
	ViewBox string      `xml:"viewBox,attr"`
	Rects   []svgRect   `xml:"rect"`
	Circles []svgCircle `xml:"circle"`
	Paths   []svgPath   `xml:"path"`
}

func strokeRole(stroke string) canvas.Role {
	if strings.EqualFold(stroke, canvas.EngraveColor) {
		return canvas.Engrave
	}
	return canvas.Cut
}

// parsePathData reads an absolute M/L path d-string into a point list,
// reporting whether the path carried a closing Z.
func parsePathData(d string) (geom.Outline, bool, error) {
	fields := strings.Fields(strings.ReplaceAll(d, ",", " "))
	var pts geom.Outline
	closed := false
	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "M", "L":
			// coordinate pair follows
		case "Z", "z":
			closed = true
		default:
			x, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, false, fmt.Errorf("bad path token %q", fields[i])
			}
			if i+1 >= len(fields) {
				return nil, false, fmt.Errorf("dangling coordinate in path %q", d)
			}
			y, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return nil, false, fmt.Errorf("bad path token %q", fields[i+1])
			}
			pts = append(pts, geom.Point2D{X: x, Y: y})
			i++
		}
	}
	return pts, closed, nil
}

// Parse reads a panel document. Engrave shapes are dropped unless
// keepEngrave is set; text is always dropped. The part's size is the
// bounding box of the cut shapes alone, and all shapes are shifted so
// that box starts at (0,0). A document with no cut geometry is an error.
func Parse(r io.Reader, name string, keepEngrave bool) (*Part, error) {
	var doc svgDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	var shapes []canvas.Shape
	for _, e := range doc.Rects {
		shapes = append(shapes, canvas.Rect{
			X: e.X, Y: e.Y, W: e.W, H: e.H, Corner: e.RX, Tag: strokeRole(e.Stroke)})
	}
	for _, e := range doc.Circles {
		shapes = append(shapes, canvas.Circle{CX: e.CX, CY: e.CY, R: e.R, Tag: strokeRole(e.Stroke)})
	}
	for _, e := range doc.Paths {
		pts, closed, err := parsePathData(e.D)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		if len(pts) == 0 {
			continue
		}
		shapes = append(shapes, canvas.Polyline{Points: pts, Closed: closed, Tag: strokeRole(e.Stroke)})
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	kept := shapes[:0]
	for _, s := range shapes {
		if s.Role() == canvas.Engrave {
			if keepEngrave {
				kept = append(kept, s)
			}
			continue
		}
		kept = append(kept, s)
		min, max := s.BoundingBox()
		minX = math.Min(minX, min.X)
		minY = math.Min(minY, min.Y)
		maxX = math.Max(maxX, max.X)
		maxY = math.Max(maxY, max.Y)
	}
	if math.IsInf(minX, 1) {
		return nil, fmt.Errorf("no cut geometry in %s", name)
	}

	p := &Part{Name: name, Width: maxX - minX, Height: maxY - minY}
	for _, s := range kept {
		p.Shapes = append(p.Shapes, s.Translate(-minX, -minY))
	}
	return p, nil
}

// ParseFile reads a panel document from disk.
func ParseFile(path string, keepEngrave bool) (*Part, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(f, name, keepEngrave)
}
