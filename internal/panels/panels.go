// Package panels assembles the enclosure's laser-cut parts. Each assembler
// builds one part as a canvas of cut and engrave shapes from the derived
// dimensions; the set as a whole encodes the joint policy that makes the
// parts interlock.
package panels

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/cicchiello/pi-nas/internal/canvas"
	"github.com/cicchiello/pi-nas/internal/config"
)

// Panel is one fabricated part: its canvas plus the metadata the cut list
// and labels need.
type Panel struct {
	ID        string
	Name      string
	Filename  string
	Thickness float64 // material thickness, mm
	Quantity  int     // pieces to cut
	Canvas    *canvas.Canvas
}

func newPanel(name, filename string, thickness float64, qty int, c *canvas.Canvas) *Panel {
	return &Panel{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Filename:  filename,
		Thickness: thickness,
		Quantity:  qty,
		Canvas:    c,
	}
}

// Generator builds the panel set for one parameter set.
type Generator struct {
	cfg  config.Config
	dims config.Dims
}

// New validates the config, derives the dimensions, and returns a generator.
func New(cfg config.Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, dims: cfg.Derive()}, nil
}

// Config returns the parameter set the generator was built from.
func (g *Generator) Config() config.Config { return g.cfg }

// Dims returns the derived dimensions.
func (g *Generator) Dims() config.Dims { return g.dims }

// GenerateAll builds every panel in fabrication order.
func (g *Generator) GenerateAll() []*Panel {
	return []*Panel{
		g.Bottom(),
		g.Top(),
		g.Front(),
		g.Back(),
		g.Side(SideLeft),
		g.Side(SideRight),
		g.CombRail(),
		g.FanBracket(),
	}
}

// WriteAll generates every panel and saves its SVG under dir, returning the
// written paths.
func (g *Generator) WriteAll(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	var paths []string
	for _, p := range g.GenerateAll() {
		path := filepath.Join(dir, p.Filename)
		if err := p.Canvas.Save(path); err != nil {
			return paths, fmt.Errorf("write %s: %w", p.Name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
