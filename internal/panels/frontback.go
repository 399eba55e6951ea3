package panels

import (
	"fmt"

	"github.com/cicchiello/pi-nas/internal/canvas"
)

// portCutout is one connector opening on the front panel, positioned
// relative to the board's left edge and PCB underside.
type portCutout struct {
	name string
	x    float64 // from board left edge
	z    float64 // from PCB underside, upward
	w, h float64
}

// Pi 5 connector envelope, measured off the vendor STEP model.
var piPorts = []portCutout{
	{"GbE", 1.25, 0.45, 17.9, 16.5},
	{"USB3", 21.30, 1.45, 15.6, 17.6},
	{"USB2", 39.10, 1.45, 15.8, 17.6},
	{"HAT", 34.60, 21.55, 20.8, 8.1},
}

// zToY converts an enclosure height (measured from the floor) to a vertical
// panel's Y coordinate, where Y=0 is the panel top.
func (g *Generator) zToY(z float64) float64 {
	return g.dims.ZTopPanel - z + g.cfg.SideThickness
}

// frontBackBody returns the shared body size of the front and back panels.
// Height extends one top-panel thickness above the side panels and one
// bottom-panel thickness below.
func (g *Generator) frontBackBody() (w, h float64) {
	w = g.dims.ExtX - 2*(g.cfg.MinOverhang+g.cfg.SideThickness)
	h = g.dims.SideH + g.cfg.WallThickness + g.cfg.SideThickness
	return w, h
}

// Front builds the front panel: board port cutouts, DC jack, and two vent
// banks over the cable and drive zones. No rod holes — the rods pass
// through the horizontal panels only.
func (g *Generator) Front() *Panel {
	w, h := g.frontBackBody()
	c := canvas.New(w, h, g.cfg.SideThickness+3)
	c.AddAnnotation(0, -3, fmt.Sprintf("FRONT PANEL %.0fx%.1fmm (%.0fmm)", w, h, g.cfg.WallThickness), 3)

	c.AddPolyline(g.frontBackOutline(h, g.cfg.WallThickness, g.cfg.SideThickness), true, canvas.Cut)

	// The board is centered left-to-right; its short edge faces this panel.
	piX := (w - g.cfg.PiWidth) / 2
	pcbY := g.zToY(g.dims.ZPiPCB)
	for _, p := range piPorts {
		x := piX + p.x
		y := pcbY - p.z - p.h - 1 // lifted 1mm for fit
		c.AddRoundedRect(x, y, p.w, p.h, 1.5, canvas.Cut)
		c.AddAnnotation(x, y-1.5, p.name, 2)
	}

	// DC barrel jack, left of the board ports.
	dcX := piX - 17
	dcY := g.zToY(g.cfg.SideThickness + 15)
	c.AddCircle(dcX, dcY, 4.0, canvas.Cut)
	c.AddAnnotation(dcX+6, dcY+1, "DC 12V", 2)

	g.addFrontVents(c, w)

	return newPanel("front", "03_front_panel.svg", g.cfg.WallThickness, 1, c)
}

// addFrontVents lays out the cable-zone and drive-zone vent banks, three
// columns wide.
func (g *Generator) addFrontVents(c *canvas.Canvas, w float64) {
	const slotW, slotH = 22.0, 2.5
	vx0, vx1 := 20.0, w-20

	cable0 := g.dims.ZHatTop + 15
	cable1 := g.dims.ZDriveBot - 10
	if cable1 > cable0 {
		for i := 0; i < 5; i++ {
			vz := cable0 + float64(i)*(cable1-cable0)/4
			for j := 0; j < 3; j++ {
				vx := vx0 + float64(j)*(vx1-vx0-slotW)/2
				c.AddSlot(vx, g.zToY(vz), slotW, slotH, canvas.Cut)
			}
		}
	}

	drive0 := g.dims.ZDriveBot + 15
	drive1 := g.dims.ZDriveTop - 10
	for i := 0; i < 8; i++ {
		vz := drive0 + float64(i)*(drive1-drive0)/7
		for j := 0; j < 3; j++ {
			vx := vx0 + float64(j)*(vx1-vx0-slotW)/2
			c.AddSlot(vx, g.zToY(vz), slotW, slotH, canvas.Cut)
		}
	}
}

// Back builds the back panel: same outline as the front, with the engraved
// logo in place of port cutouts.
func (g *Generator) Back() *Panel {
	w, h := g.frontBackBody()
	c := canvas.New(w, h, g.cfg.SideThickness+3)
	c.AddAnnotation(0, -3, fmt.Sprintf("BACK PANEL %.0fx%.1fmm (%.0fmm)", w, h, g.cfg.WallThickness), 3)

	c.AddPolyline(g.frontBackOutline(h, g.cfg.WallThickness, g.cfg.SideThickness), true, canvas.Cut)
	engraveLogo(c, "pi-nas", w, h)

	return newPanel("back", "04_back_panel.svg", g.cfg.WallThickness, 1, c)
}
