package panels

import (
	"fmt"
	"strings"

	"github.com/cicchiello/pi-nas/internal/canvas"
	"github.com/cicchiello/pi-nas/internal/outline"
)

// SideKind picks which mirror-image side panel to build.
type SideKind int

const (
	SideLeft SideKind = iota
	SideRight
)

func (s SideKind) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Side builds a left or right side panel: the winged tab outline, face
// through-slots for the front/back panel tabs, comb rail mounting slots,
// and vent banks. The two sides are cut from the same drawing.
func (g *Generator) Side(kind SideKind) *Panel {
	w := g.dims.InteriorY + 2*g.dims.SideOverlap
	h := g.dims.SideH
	idx := "05"
	if kind == SideRight {
		idx = "06"
	}
	c := canvas.New(w, h, g.cfg.SideThickness+3)
	c.AddAnnotation(0, -3, fmt.Sprintf("%s SIDE %.1fx%.1fmm (%.0fmm)",
		strings.ToUpper(kind.String()), w, h, g.cfg.SideThickness), 3)

	c.AddPolyline(g.sideOutline(), true, canvas.Cut)

	// Face through-slots for the front/back panel tabs. Their positions
	// follow the front/back panels' vertical finger pattern; the first and
	// last fingers are suppressed there, so no slots either.
	n, fw := outline.Segments(h, g.cfg.FingerWidth)
	slotW := g.cfg.WallThickness
	for _, slotX := range []float64{g.cfg.MinOverhang, w - g.cfg.MinOverhang - slotW} {
		for i := 0; i < n; i++ {
			if i%2 == 0 && i != 0 && i != n-1 {
				c.AddRect(slotX, float64(i)*fw, slotW, fw, canvas.Cut)
			}
		}
	}

	// Comb rail mounting slots, one pair per rail. The rails sit just
	// inside the front/back panels, offset by the screw head clearance.
	railFrontY := g.cfg.WallThickness + g.cfg.ScrewHeadClr + g.cfg.BracketThickness/2
	railBackY := g.dims.ExtY - g.cfg.WallThickness - g.cfg.ScrewHeadClr - g.cfg.BracketThickness/2
	tabSlotW := g.cfg.BracketThickness
	const tabSlotH = 10.3 // rail tab height plus clearance
	barCenterY := g.zToSideY(g.dims.CombBarZ + g.cfg.CombBarH/2)
	for _, railY := range []float64{railFrontY, railBackY} {
		slotX := g.dims.SideOverlap + (railY - g.cfg.WallThickness) - tabSlotW/2
		c.AddRect(slotX, barCenterY-tabSlotH/2, tabSlotW, tabSlotH, canvas.Cut)
	}

	// Vent columns between the rail slots.
	const slotWV, slotHV = 18.0, 2.5
	front := g.dims.SideOverlap + (railFrontY - g.cfg.WallThickness) + tabSlotW/2 + 2
	back := g.dims.SideOverlap + (railBackY - g.cfg.WallThickness) - tabSlotW/2 - 2
	zoneW := back - front - slotWV
	cols := []float64{front, front + zoneW/2, front + zoneW}

	cable0 := g.dims.ZHatTop + 15
	cable1 := g.dims.ZDriveBot - 10
	if cable1 > cable0 {
		for i := 0; i < 4; i++ {
			vz := cable0 + float64(i)*(cable1-cable0)/3
			for _, vx := range cols {
				c.AddSlot(vx, g.zToSideY(vz), slotWV, slotHV, canvas.Cut)
			}
		}
	}
	drive0 := g.dims.ZDriveBot + 20
	drive1 := g.dims.ZDriveTop - 10
	for i := 0; i < 6; i++ {
		vz := drive0 + float64(i)*(drive1-drive0)/5
		for _, vx := range cols {
			c.AddSlot(vx, g.zToSideY(vz), slotWV, slotHV, canvas.Cut)
		}
	}

	return newPanel(kind.String()+" side", idx+"_"+kind.String()+"_side_panel.svg",
		g.cfg.SideThickness, 1, c)
}

// zToSideY converts an enclosure height to a side panel Y coordinate. Side
// panels span the side panel height exactly, so there is no end extension.
func (g *Generator) zToSideY(z float64) float64 {
	return g.dims.ZTopPanel - z
}
