package nest

import (
	"fmt"
	"io"
	"os"

	svg "zappem.net/pub/graphics/svgof"

	"github.com/cicchiello/pi-nas/internal/canvas"
)

// Placement is one part at a sheet position, with the label printed next
// to it on the proof.
type Placement struct {
	Label string
	Part  *Part
	X, Y  float64
}

// Sheet is one fabrication sheet. Width and Height are the material
// bounds; the emitted document is sized to the placed content, the bounds
// only gate the overflow warning. Overflow is a warning, not an error —
// the proof is still written so the layout can be inspected.
type Sheet struct {
	Name          string
	Width, Height float64
	Thickness     float64

	Placements []Placement
	Warnings   []string
}

// NewSheet returns an empty sheet with the given material bounds.
func NewSheet(name string, width, height, thickness float64) *Sheet {
	return &Sheet{Name: name, Width: width, Height: height, Thickness: thickness}
}

// Place puts a part at (x, y), top-left corner of its content box.
func (s *Sheet) Place(label string, p *Part, x, y float64) {
	s.Placements = append(s.Placements, Placement{Label: label, Part: p, X: x, Y: y})
}

// Used returns the extent of the placed content from the sheet origin,
// by declared part sizes.
func (s *Sheet) Used() (w, h float64) {
	for _, pl := range s.Placements {
		if e := pl.X + pl.Part.Width; e > w {
			w = e
		}
		if e := pl.Y + pl.Part.Height; e > h {
			h = e
		}
	}
	return w, h
}

// CheckFit records an overflow warning when the placed content exceeds the
// material bounds.
func (s *Sheet) CheckFit() {
	w, h := s.Used()
	if w > s.Width || h > s.Height {
		s.Warnings = append(s.Warnings,
			fmt.Sprintf("parts need %.1fx%.1fmm, sheet is %.0fx%.0fmm", w, h, s.Width, s.Height))
	}
}

// Shapes returns every placed shape in sheet coordinates.
func (s *Sheet) Shapes() []canvas.Shape {
	var out []canvas.Shape
	for _, pl := range s.Placements {
		out = append(out, pl.Part.placed(pl.X, pl.Y)...)
	}
	return out
}

func fabStrokeAttrs(role canvas.Role) string {
	return fmt.Sprintf(`fill="none" stroke="%s" stroke-width="%s"`,
		role.Color(), canvas.FabStrokeWidth)
}

// WriteSVG emits the sheet as an mm-unit document sized to the placed
// content, with hairline strokes and a reference label per part.
func (s *Sheet) WriteSVG(w io.Writer) error {
	docW, docH := s.Used()

	doc := svg.New(w)
	doc.Decimals = 3
	doc.StartviewUnit(docW, docH, "mm", 0, 0, docW, docH)

	for _, pl := range s.Placements {
		doc.Text(pl.X, pl.Y-2, pl.Label, `font-size="4" fill="#cccccc" font-family="monospace"`)
	}

	for _, sh := range s.Shapes() {
		switch e := sh.(type) {
		case canvas.Rect:
			if e.Corner > 0 {
				doc.Roundrect(e.X, e.Y, e.W, e.H, e.Corner, e.Corner, fabStrokeAttrs(e.Tag))
			} else {
				doc.Rect(e.X, e.Y, e.W, e.H, fabStrokeAttrs(e.Tag))
			}
		case canvas.Circle:
			doc.Circle(e.CX, e.CY, e.R, fabStrokeAttrs(e.Tag))
		case canvas.Polyline:
			doc.Path(canvas.PathData(e.Points, e.Closed), fabStrokeAttrs(e.Tag))
		default:
			return fmt.Errorf("nest: unknown shape type %T", sh)
		}
	}

	doc.End()
	return nil
}

// Save writes the sheet SVG to a file.
func (s *Sheet) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.WriteSVG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
