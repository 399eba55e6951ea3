// Package canvas accumulates tagged 2D primitives for one laser-cut part
// and serializes them to an SVG interchange document. Shapes are tagged as
// structural ("cut") or decorative ("engrave"); the canvas is append-only
// and a shape is never mutated after being added.
package canvas

import (
	"fmt"
	"io"
	"os"
	"strings"

	svg "zappem.net/pub/graphics/svgof"

	"github.com/cicchiello/pi-nas/internal/geom"
)

// Stroke colors and widths of the interchange format. Red cuts, blue
// engraves; the fabrication service expects hairline strokes on nested
// sheets.
const (
	CutColor        = "#ff0000"
	EngraveColor    = "#0000ff"
	AnnotationColor = "#999999"
	StrokeWidth     = "0.1"
	FabStrokeWidth  = "0.01"
)

// Role tags a shape as structural or decorative.
type Role int

const (
	Cut     Role = iota // fabricated through-cut, contributes to part boundary
	Engrave             // surface marking, never load-bearing
)

func (r Role) String() string {
	if r == Engrave {
		return "engrave"
	}
	return "cut"
}

// Color returns the interchange stroke color for the role.
func (r Role) Color() string {
	if r == Engrave {
		return EngraveColor
	}
	return CutColor
}

// Shape is a placed 2D primitive. Implementations are immutable values;
// the transform methods return new shapes.
type Shape interface {
	Role() Role
	BoundingBox() (min, max geom.Point2D)
	Translate(dx, dy float64) Shape
	// Rotate90CW maps (x, y) -> (origH - y, x) where origW x origH is the
	// bounding box being rotated.
	Rotate90CW(origW, origH float64) Shape
	// Rotate180 maps (x, y) -> (origW - x, origH - y).
	Rotate180(origW, origH float64) Shape
}

// Rect is an axis-aligned rectangle, optionally with rounded corners.
// Corner is the corner radius; zero means square corners. The radius is
// invariant under rotation.
type Rect struct {
	X, Y, W, H float64
	Corner     float64
	Tag        Role
}

func (r Rect) Role() Role { return r.Tag }

func (r Rect) BoundingBox() (min, max geom.Point2D) {
	return geom.Point2D{X: r.X, Y: r.Y}, geom.Point2D{X: r.X + r.W, Y: r.Y + r.H}
}

func (r Rect) Translate(dx, dy float64) Shape {
	r.X += dx
	r.Y += dy
	return r
}

func (r Rect) Rotate90CW(origW, origH float64) Shape {
	r.X, r.Y = origH-r.Y-r.H, r.X
	r.W, r.H = r.H, r.W
	return r
}

func (r Rect) Rotate180(origW, origH float64) Shape {
	r.X = origW - r.X - r.W
	r.Y = origH - r.Y - r.H
	return r
}

// Circle is a full circle. The radius is invariant under rotation.
type Circle struct {
	CX, CY, R float64
	Tag       Role
}

func (c Circle) Role() Role { return c.Tag }

func (c Circle) BoundingBox() (min, max geom.Point2D) {
	return geom.Point2D{X: c.CX - c.R, Y: c.CY - c.R}, geom.Point2D{X: c.CX + c.R, Y: c.CY + c.R}
}

func (c Circle) Translate(dx, dy float64) Shape {
	c.CX += dx
	c.CY += dy
	return c
}

func (c Circle) Rotate90CW(origW, origH float64) Shape {
	c.CX, c.CY = origH-c.CY, c.CX
	return c
}

func (c Circle) Rotate180(origW, origH float64) Shape {
	c.CX = origW - c.CX
	c.CY = origH - c.CY
	return c
}

// Polyline is an open or closed point path.
type Polyline struct {
	Points geom.Outline
	Closed bool
	Tag    Role
}

func (p Polyline) Role() Role { return p.Tag }

func (p Polyline) BoundingBox() (min, max geom.Point2D) {
	return p.Points.BoundingBox()
}

func (p Polyline) Translate(dx, dy float64) Shape {
	p.Points = p.Points.Translate(dx, dy)
	return p
}

func (p Polyline) Rotate90CW(origW, origH float64) Shape {
	pts := make(geom.Outline, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = geom.Point2D{X: origH - pt.Y, Y: pt.X}
	}
	p.Points = pts
	return p
}

func (p Polyline) Rotate180(origW, origH float64) Shape {
	pts := make(geom.Outline, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = geom.Point2D{X: origW - pt.X, Y: origH - pt.Y}
	}
	p.Points = pts
	return p
}

// Annotation is advisory text. It is never structural, never cut, and must
// be ignored by every downstream geometry consumer.
type Annotation struct {
	X, Y float64
	Text string
	Size float64
}

// Canvas accumulates shapes for one part. Width and Height declare the
// design intent; the saved document's viewport is the declared size plus
// the margin on all sides, with all geometry shifted by the margin so it
// never touches the document origin.
type Canvas struct {
	Width  float64
	Height float64
	Margin float64

	shapes []Shape
	notes  []Annotation
}

// New returns an empty canvas with the given declared content size and
// document margin.
func New(width, height, margin float64) *Canvas {
	return &Canvas{Width: width, Height: height, Margin: margin}
}

// Add appends a shape.
func (c *Canvas) Add(s Shape) { c.shapes = append(c.shapes, s) }

// Shapes returns the accumulated shapes in insertion order.
func (c *Canvas) Shapes() []Shape { return c.shapes }

// AddRect appends an axis-aligned rectangle.
func (c *Canvas) AddRect(x, y, w, h float64, role Role) {
	c.Add(Rect{X: x, Y: y, W: w, H: h, Tag: role})
}

// AddRoundedRect appends a rectangle with rounded corners.
func (c *Canvas) AddRoundedRect(x, y, w, h, r float64, role Role) {
	c.Add(Rect{X: x, Y: y, W: w, H: h, Corner: r, Tag: role})
}

// AddSlot appends a stadium-shaped slot: a rounded rect whose corner
// radius is half the smaller dimension.
func (c *Canvas) AddSlot(x, y, w, h float64, role Role) {
	r := w
	if h < w {
		r = h
	}
	c.AddRoundedRect(x, y, w, h, r/2, role)
}

// AddCircle appends a circle.
func (c *Canvas) AddCircle(cx, cy, r float64, role Role) {
	c.Add(Circle{CX: cx, CY: cy, R: r, Tag: role})
}

// AddPolyline appends a point path.
func (c *Canvas) AddPolyline(pts geom.Outline, closed bool, role Role) {
	c.Add(Polyline{Points: pts, Closed: closed, Tag: role})
}

// AddAnnotation appends advisory text.
func (c *Canvas) AddAnnotation(x, y float64, text string, size float64) {
	c.notes = append(c.notes, Annotation{X: x, Y: y, Text: text, Size: size})
}

func strokeAttrs(role Role) string {
	return fmt.Sprintf(`fill="none" stroke="%s" stroke-width="%s"`, role.Color(), StrokeWidth)
}

// fmtCoord renders a coordinate with up to 3 decimals, trailing zeros
// trimmed, matching the interchange documents' number style.
func fmtCoord(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// PathData builds an SVG path d-string from a point list using only
// absolute M/L commands, with a trailing Z when closed.
func PathData(pts geom.Outline, closed bool) string {
	if len(pts) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M %s,%s", fmtCoord(pts[0].X), fmtCoord(pts[0].Y))
	for _, p := range pts[1:] {
		fmt.Fprintf(&b, " L %s,%s", fmtCoord(p.X), fmtCoord(p.Y))
	}
	if closed {
		b.WriteString(" Z")
	}
	return b.String()
}

// WriteSVG serializes the canvas as an mm-unit SVG document.
func (c *Canvas) WriteSVG(w io.Writer) error {
	tw := c.Width + 2*c.Margin
	th := c.Height + 2*c.Margin

	doc := svg.New(w)
	doc.Decimals = 3
	doc.StartviewUnit(tw, th, "mm", 0, 0, tw, th)

	for _, n := range c.notes {
		doc.Text(n.X+c.Margin, n.Y+c.Margin, n.Text,
			fmt.Sprintf(`font-size="%s" fill="%s" font-family="monospace"`, fmtCoord(n.Size), AnnotationColor))
	}

	for _, s := range c.shapes {
		switch sh := s.(type) {
		case Rect:
			if sh.Corner > 0 {
				doc.Roundrect(sh.X+c.Margin, sh.Y+c.Margin, sh.W, sh.H, sh.Corner, sh.Corner, strokeAttrs(sh.Tag))
			} else {
				doc.Rect(sh.X+c.Margin, sh.Y+c.Margin, sh.W, sh.H, strokeAttrs(sh.Tag))
			}
		case Circle:
			doc.Circle(sh.CX+c.Margin, sh.CY+c.Margin, sh.R, strokeAttrs(sh.Tag))
		case Polyline:
			doc.Path(PathData(sh.Points.Translate(c.Margin, c.Margin), sh.Closed), strokeAttrs(sh.Tag))
		default:
			return fmt.Errorf("canvas: unknown shape type %T", s)
		}
	}

	doc.End()
	return nil
}

// Save writes the canvas to an SVG file.
func (c *Canvas) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.WriteSVG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
