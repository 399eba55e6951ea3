// Package geom holds the 2D value types shared by the outline builder,
// the shape canvas and the nesting stage. All coordinates are millimetres.
package geom

import "math"

// Epsilon is the merge tolerance for coordinates: points closer than this
// are considered coincident.
const Epsilon = 1e-3

// Point2D represents a 2D coordinate in mm.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Close reports whether p and q are within tol of each other.
func (p Point2D) Close(q Point2D, tol float64) bool {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx+dy*dy) <= tol
}

// Outline represents a closed polygon as a sequence of 2D points.
// The outline is implicitly closed: the last point connects back to the first.
type Outline []Point2D

// BoundingBox returns the min and max corners of the outline.
func (o Outline) BoundingBox() (min, max Point2D) {
	if len(o) == 0 {
		return Point2D{}, Point2D{}
	}
	min = Point2D{X: o[0].X, Y: o[0].Y}
	max = Point2D{X: o[0].X, Y: o[0].Y}
	for _, p := range o[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// Translate shifts all points by dx, dy.
func (o Outline) Translate(dx, dy float64) Outline {
	result := make(Outline, len(o))
	for i, p := range o {
		result[i] = Point2D{X: p.X + dx, Y: p.Y + dy}
	}
	return result
}

// Area computes the absolute area of the polygon using the shoelace formula.
func (o Outline) Area() float64 {
	n := len(o)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += o[i].X * o[j].Y
		area -= o[j].X * o[i].Y
	}
	return math.Abs(area) / 2
}

// Dedupe removes consecutive points closer than Epsilon and a trailing
// point that coincides with the first. Closure is structural, not a
// repeated point.
func (o Outline) Dedupe() Outline {
	if len(o) == 0 {
		return o
	}
	clean := Outline{o[0]}
	for _, p := range o[1:] {
		last := clean[len(clean)-1]
		if math.Abs(p.X-last.X) > Epsilon || math.Abs(p.Y-last.Y) > Epsilon {
			clean = append(clean, p)
		}
	}
	if len(clean) > 1 {
		first, last := clean[0], clean[len(clean)-1]
		if math.Abs(first.X-last.X) < Epsilon && math.Abs(first.Y-last.Y) < Epsilon {
			clean = clean[:len(clean)-1]
		}
	}
	return clean
}
