package nest

import "github.com/cicchiello/pi-nas/internal/canvas"

// Rotate90CW returns the part rotated a quarter turn clockwise about its
// content box. Width and height swap.
func (p *Part) Rotate90CW() *Part {
	out := &Part{Name: p.Name, Width: p.Height, Height: p.Width}
	for _, s := range p.Shapes {
		out.Shapes = append(out.Shapes, s.Rotate90CW(p.Width, p.Height))
	}
	return out
}

// Rotate180 returns the part rotated a half turn about its content box.
func (p *Part) Rotate180() *Part {
	out := &Part{Name: p.Name, Width: p.Width, Height: p.Height}
	for _, s := range p.Shapes {
		out.Shapes = append(out.Shapes, s.Rotate180(p.Width, p.Height))
	}
	return out
}

// Translate returns the part with every shape shifted by (dx, dy). The
// declared size is unchanged; the content box no longer starts at (0,0).
func (p *Part) Translate(dx, dy float64) *Part {
	out := &Part{Name: p.Name, Width: p.Width, Height: p.Height}
	for _, s := range p.Shapes {
		out.Shapes = append(out.Shapes, s.Translate(dx, dy))
	}
	return out
}

// Merge combines parts that have already been shifted into a shared local
// frame into one composite part with the declared size. Used to interleave
// the comb rails before rotating them as a unit.
func Merge(name string, width, height float64, parts ...*Part) *Part {
	out := &Part{Name: name, Width: width, Height: height}
	for _, p := range parts {
		out.Shapes = append(out.Shapes, p.Shapes...)
	}
	return out
}

// placed returns the part's shapes offset to a sheet position.
func (p *Part) placed(dx, dy float64) []canvas.Shape {
	shifted := make([]canvas.Shape, len(p.Shapes))
	for i, s := range p.Shapes {
		shifted[i] = s.Translate(dx, dy)
	}
	return shifted
}
