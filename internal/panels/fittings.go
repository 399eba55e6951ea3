package panels

import (
	"fmt"

	"github.com/cicchiello/pi-nas/internal/canvas"
	"github.com/cicchiello/pi-nas/internal/geom"
)

// CombRail builds the drive comb rail: a horizontal bar with one tooth per
// drive hanging downward, plus a mounting tab on each end that seats in a
// side panel slot. The drives screw to the tooth faces; two identical rails
// are cut, one for each drive face.
func (g *Generator) CombRail() *Panel {
	railW := g.dims.ExtX - 2*(g.cfg.MinOverhang+g.cfg.SideThickness)
	toothW := g.cfg.CombToothW
	toothPitch := g.cfg.DriveThickness + g.cfg.DriveGap
	barH := g.cfg.CombBarH
	totalH := g.dims.CombTotalH
	edgeMargin := (railW - g.dims.DriveGroupW) / 2

	// Tooth left edge for drive i. The rail is asymmetric: teeth sit 7mm
	// left of the drive centers so the screw holes land mid-face.
	toothX := func(i int) float64 {
		driveCX := edgeMargin + g.cfg.DriveThickness/2 + float64(i)*toothPitch
		return driveCX - toothW/2 - 7
	}

	c := canvas.New(railW+20, totalH+20, 5)
	c.AddAnnotation(0, -3, fmt.Sprintf("DRIVE COMB RAIL (x2) %.1fx%.1fmm (%.0fmm acrylic)",
		railW, totalH, g.cfg.BracketThickness), 3)

	tabLen := g.cfg.SideThickness
	const tabH = 10.0
	tabY0 := barH/2 - tabH/2
	tabY1 := tabY0 + tabH

	pts := geom.Outline{
		{X: 0, Y: 0},
		{X: railW, Y: 0},
		{X: railW, Y: tabY0},
		{X: railW + tabLen, Y: tabY0},
		{X: railW + tabLen, Y: tabY1},
		{X: railW, Y: tabY1},
		{X: railW, Y: barH},
	}
	// Bar underside right to left, dipping down around each tooth.
	for i := g.cfg.NumDrives - 1; i >= 0; i-- {
		tx := toothX(i)
		pts = append(pts,
			geom.Point2D{X: tx + toothW, Y: barH},
			geom.Point2D{X: tx + toothW, Y: totalH},
			geom.Point2D{X: tx, Y: totalH},
			geom.Point2D{X: tx, Y: barH})
	}
	pts = append(pts,
		geom.Point2D{X: 0, Y: barH},
		geom.Point2D{X: 0, Y: tabY1},
		geom.Point2D{X: -tabLen, Y: tabY1},
		geom.Point2D{X: -tabLen, Y: tabY0},
		geom.Point2D{X: 0, Y: tabY0})
	c.AddPolyline(pts, true, canvas.Cut)

	// Drive screw holes in each tooth, with engraved washer rings. Drives
	// hang 11mm below the tooth tips once seated.
	driveYBottom := totalH - 2 + 11
	for i := 0; i < g.cfg.NumDrives; i++ {
		toothCX := toothX(i) + toothW/2
		for _, hz := range g.cfg.DriveSideHoleZ {
			hy := driveYBottom - hz
			c.AddCircle(toothCX, hy, 1.7, canvas.Cut) // M3 clearance
			c.AddCircle(toothCX, hy, 3.5, canvas.Engrave)
		}
	}

	// Score the drive envelopes.
	for i := 0; i < g.cfg.NumDrives; i++ {
		driveCX := toothX(i) + toothW/2
		c.AddRect(driveCX-g.cfg.DriveThickness/2, driveYBottom-g.cfg.DriveLength,
			g.cfg.DriveThickness, g.cfg.DriveLength, canvas.Engrave)
		c.AddAnnotation(toothX(i)+1, driveYBottom-g.cfg.DriveLength/2, fmt.Sprintf("HDD%d", i+1), 3)
	}

	return newPanel("comb rail", "07_drive_comb_rail.svg", g.cfg.BracketThickness, 2, c)
}

// FanBracket builds the internal fan shelf: a plain rectangle threaded onto
// the corner rods, with the fan opening and its screw holes in the middle.
func (g *Generator) FanBracket() *Panel {
	bw := g.dims.ExtX - 2*(g.cfg.MinOverhang+g.cfg.SideThickness) - 2
	bh := g.dims.InteriorY - 2
	c := canvas.New(bw+10, bh+10, 5)
	c.AddAnnotation(0, -3, fmt.Sprintf("FAN BRACKET %.0fx%.0fmm (%.0fmm acrylic)",
		bw, bh, g.cfg.BracketThickness), 3)

	c.AddRect(0, 0, bw, bh, canvas.Cut)

	// Rod holes must land on the horizontal panels' rod positions. The
	// bracket floats 1mm inside the interior on each axis.
	bracketOX := g.cfg.MinOverhang + g.cfg.SideThickness + 1
	const bracketOY = 1.0
	inset := g.dims.RodInset
	for _, p := range []geom.Point2D{
		{X: inset, Y: inset},
		{X: g.dims.ExtX - inset, Y: inset},
		{X: inset, Y: g.dims.InteriorY - inset},
		{X: g.dims.ExtX - inset, Y: g.dims.InteriorY - inset},
	} {
		c.AddCircle(p.X-bracketOX, p.Y-bracketOY, g.cfg.RodHole/2, canvas.Cut)
	}

	cx, cy := bw/2, bh/2
	c.AddCircle(cx, cy, g.cfg.FanSize/2-3, canvas.Cut)

	fhs := g.cfg.FanHoleSpacing / 2
	for _, d := range []geom.Point2D{{X: -fhs, Y: -fhs}, {X: fhs, Y: -fhs}, {X: -fhs, Y: fhs}, {X: fhs, Y: fhs}} {
		c.AddCircle(cx+d.X, cy+d.Y, g.cfg.FanMountHole/2, canvas.Cut)
	}

	return newPanel("fan bracket", "08_fan_bracket.svg", g.cfg.BracketThickness, 1, c)
}
