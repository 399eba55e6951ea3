package panels

import (
	"fmt"
	"math"

	"github.com/cicchiello/pi-nas/internal/canvas"
	"github.com/cicchiello/pi-nas/internal/geom"
	"github.com/cicchiello/pi-nas/internal/outline"
)

// addRodHoles places the four vertical rod clearance holes on a horizontal
// panel, each with an engraved grommet ring.
func (g *Generator) addRodHoles(c *canvas.Canvas, pw, ph float64) {
	inset := g.dims.RodInset
	for _, p := range []geom.Point2D{
		{X: inset, Y: inset},
		{X: pw - inset, Y: inset},
		{X: inset, Y: ph - inset},
		{X: pw - inset, Y: ph - inset},
	} {
		c.AddCircle(p.X, p.Y, g.cfg.RodHole/2, canvas.Cut)
		c.AddCircle(p.X, p.Y, g.cfg.GrommetOD/2, canvas.Engrave)
	}
}

// addSideSlots cuts the through-slots near the left/right edges of a
// horizontal panel that receive the side panel tabs. Slot positions follow
// the side panels' tab segmentation over the interior depth.
func (g *Generator) addSideSlots(c *canvas.Canvas, w float64) {
	n, fw := outline.Segments(g.dims.InteriorY, g.cfg.FingerWidth)
	slotW := g.cfg.SideThickness
	for _, slotX := range []float64{g.cfg.MinOverhang, w - g.cfg.MinOverhang - slotW} {
		for i := 0; i < n; i++ {
			if i%2 == 0 { // side panel tabs sit at even indices
				c.AddRect(slotX, float64(i)*fw, slotW, fw, canvas.Cut)
			}
		}
	}
}

// piHoles returns the Pi mounting hole centers in panel coordinates. The
// board is centered left-to-right with its port edge toward the front; board
// coordinates have the origin at the GPIO corner, so the long axis maps to
// panel Y reversed and the short axis to panel X.
func (g *Generator) piHoles(panelW float64) []geom.Point2D {
	ox := (panelW - g.cfg.PiWidth) / 2
	const oy = 2 // clearance off the front panel inner face

	var holes []geom.Point2D
	for _, n := range []geom.Point2D{
		{X: g.cfg.PiHoleOffsetX, Y: g.cfg.PiHoleOffsetY},
		{X: g.cfg.PiHoleOffsetX + g.cfg.PiHoleSpacingX, Y: g.cfg.PiHoleOffsetY},
		{X: g.cfg.PiHoleOffsetX, Y: g.cfg.PiHoleOffsetY + g.cfg.PiHoleSpacingY},
		{X: g.cfg.PiHoleOffsetX + g.cfg.PiHoleSpacingX, Y: g.cfg.PiHoleOffsetY + g.cfg.PiHoleSpacingY},
	} {
		holes = append(holes, geom.Point2D{X: ox + n.Y, Y: oy + g.cfg.PiLength - n.X})
	}
	return holes
}

// Bottom builds the bottom panel: board mounting holes, SD card access,
// side panel slots, rod holes, and a ventilation grid over the remaining
// area.
func (g *Generator) Bottom() *Panel {
	w, h := g.dims.ExtX, g.dims.InteriorY
	c := canvas.New(w, h, g.cfg.SideThickness+3)
	c.AddAnnotation(0, -3, fmt.Sprintf("BOTTOM PANEL %.0fx%.0fmm (%.0fmm)", w, h, g.cfg.SideThickness), 3)

	c.AddPolyline(g.horizontalOutline(w, h), true, canvas.Cut)
	g.addSideSlots(c, w)
	g.addRodHoles(c, w, h)

	piHoles := g.piHoles(w)
	for _, p := range piHoles {
		c.AddCircle(p.X, p.Y, g.cfg.PiHoleDia/2, canvas.Cut)
	}

	// SD card access: the card sits on the board's far end, its slot running
	// along the short edge. The cutout reaches past the PCB edge so a finger
	// can get under the card.
	piOX := (w - g.cfg.PiWidth) / 2
	const piOY = 2
	const sdSlot0, sdSlot1 = 22.05, 34.0
	const sdW, sdH = 14.0, 20.0
	sdX := piOX + sdSlot0 + (sdSlot1-sdSlot0-sdW)/2
	sdY := piOY + g.cfg.PiLength - sdH/4

	// Ventilation grid, skipping anything that would break into the board
	// holes or the SD cutout.
	const ventW, ventH = 22.0, 3.0
	marginX := g.cfg.MinOverhang + g.cfg.SideThickness + 5
	const marginY = 8.0
	x0, x1 := marginX, w-marginX
	y0, y1 := marginY, h-marginY
	pitchX, pitchY := ventW+5, ventH+5
	nCols := int((x1 - x0) / pitchX)
	nRows := int((y1 - y0) / pitchY)
	gridW := float64(nCols)*pitchX - 5
	gridH := float64(nRows)*pitchY - 5
	vxStart := x0 + (x1-x0-gridW)/2
	vyStart := y0 + (y1-y0-gridH)/2

	excluded := func(vx, vy float64) bool {
		for _, p := range piHoles {
			if vx < p.X+4 && vx+ventW > p.X-4 && vy < p.Y+4 && vy+ventH > p.Y-4 {
				return true
			}
		}
		return vx < sdX+sdW+2 && vx+ventW > sdX-2 && vy < sdY+sdH+2 && vy+ventH > sdY-2
	}
	for col := 0; col < nCols; col++ {
		vx := vxStart + float64(col)*pitchX
		for row := 0; row < nRows; row++ {
			vy := vyStart + float64(row)*pitchY
			if !excluded(vx, vy) {
				c.AddSlot(vx, vy, ventW, ventH, canvas.Cut)
			}
		}
	}

	c.AddRoundedRect(sdX, sdY, sdW, sdH, 3, canvas.Cut)
	c.AddAnnotation(sdX, sdY-1.5, "SD card", 2)

	// Score the board footprint as an assembly aid.
	c.AddRect(piOX, piOY, g.cfg.PiWidth, g.cfg.PiLength, canvas.Engrave)
	c.AddAnnotation(piOX+2, piOY+10, "Pi5 (ports at front)", 3)

	return newPanel("bottom", "01_bottom_panel.svg", g.cfg.SideThickness, 1, c)
}

// Top builds the top panel: same outline and slots as the bottom, with a
// concentric-ring fan grille instead of board features. Every grille opening
// stays under 8mm so fingers cannot reach the fan.
func (g *Generator) Top() *Panel {
	w, h := g.dims.ExtX, g.dims.InteriorY
	c := canvas.New(w, h, g.cfg.WallThickness+3)
	c.AddAnnotation(0, -3, fmt.Sprintf("TOP PANEL %.0fx%.0fmm (%.0fmm)", w, h, g.cfg.WallThickness), 3)

	c.AddPolyline(g.horizontalOutline(w, h), true, canvas.Cut)
	g.addSideSlots(c, w)
	g.addRodHoles(c, w, h)
	g.addFanGrille(c, w/2, h/2)

	return newPanel("top", "02_top_panel.svg", g.cfg.WallThickness, 1, c)
}

// addFanGrille cuts concentric rings of arc slots centered on (cx, cy).
// Arcs are approximated with short line segments; each ring is a set of
// closed slots separated by radial spokes.
func (g *Generator) addFanGrille(c *canvas.Canvas, cx, cy float64) {
	fanR := g.cfg.FanSize/2 - 3 // grille stays inside the fan frame
	const slotW = 3.0
	const ringGap = 4.0
	const spokeGap = 3.0
	ringPitch := slotW + ringGap

	var rings []float64
	for r := 6.0; r+slotW <= fanR; r += ringPitch {
		rings = append(rings, r)
	}
	for _, rInner := range rings {
		rMid := rInner + slotW/2
		circ := 2 * math.Pi * rMid
		nSlots := int(circ / (slotW*3 + spokeGap))
		if nSlots < 4 {
			nSlots = 4
		}
		arcAngle := (2*math.Pi - float64(nSlots)*(spokeGap/rMid)) / float64(nSlots)
		for i := 0; i < nSlots; i++ {
			aStart := 2*math.Pi*float64(i)/float64(nSlots) + (spokeGap/rMid)/2
			nSeg := int(arcAngle * rMid / 2)
			if nSeg < 4 {
				nSeg = 4
			}
			var outer, inner geom.Outline
			for seg := 0; seg <= nSeg; seg++ {
				a := aStart + arcAngle*float64(seg)/float64(nSeg)
				outer = append(outer, geom.Point2D{
					X: cx + (rInner+slotW)*math.Cos(a),
					Y: cy + (rInner+slotW)*math.Sin(a)})
				inner = append(inner, geom.Point2D{
					X: cx + rInner*math.Cos(a),
					Y: cy + rInner*math.Sin(a)})
			}
			pts := make(geom.Outline, 0, 2*len(outer))
			pts = append(pts, outer...)
			for j := len(inner) - 1; j >= 0; j-- {
				pts = append(pts, inner[j])
			}
			c.AddPolyline(pts, true, canvas.Cut)
		}
	}
}
