package nest

import (
	"path/filepath"

	"github.com/cicchiello/pi-nas/internal/config"
)

// The sheet recipes are hand-authored: part positions were chosen by eye
// against the material bounds, not solved. They only need revisiting when
// a panel's size changes materially.

// Nest3mm lays out the thin-stock parts: front and back side by side,
// the top panel rotated a quarter turn to fit beside them. The back keeps
// its engraving.
func Nest3mm(dir string, cfg config.Config) (*Sheet, error) {
	front, err := ParseFile(filepath.Join(dir, "03_front_panel.svg"), false)
	if err != nil {
		return nil, err
	}
	back, err := ParseFile(filepath.Join(dir, "04_back_panel.svg"), true)
	if err != nil {
		return nil, err
	}
	top, err := ParseFile(filepath.Join(dir, "02_top_panel.svg"), false)
	if err != nil {
		return nil, err
	}
	top = top.Rotate90CW()

	gap := cfg.PartGap
	s := NewSheet("sheet_3mm", cfg.SheetWidth, cfg.SheetHeight, cfg.WallThickness)
	xBack := front.Width + gap
	xTop := xBack + back.Width + gap
	s.Place("FRONT (3mm)", front, 0, 0)
	s.Place("BACK (3mm)", back, xBack, 0)
	s.Place("TOP (3mm, rotated)", top, xTop, 0)
	s.CheckFit()
	return s, nil
}

// Nest5mm lays out the thick-stock parts: the two side panels in the
// first column, then the comb rails interleaved tooth-to-gap and rotated
// as a unit, the fan bracket tucked under them, and the bottom panel
// rotated into the remaining corner.
func Nest5mm(dir string, cfg config.Config) (*Sheet, error) {
	bottom, err := ParseFile(filepath.Join(dir, "01_bottom_panel.svg"), false)
	if err != nil {
		return nil, err
	}
	left, err := ParseFile(filepath.Join(dir, "05_left_side_panel.svg"), false)
	if err != nil {
		return nil, err
	}
	right, err := ParseFile(filepath.Join(dir, "06_right_side_panel.svg"), false)
	if err != nil {
		return nil, err
	}
	comb, err := ParseFile(filepath.Join(dir, "07_drive_comb_rail.svg"), false)
	if err != nil {
		return nil, err
	}
	fan, err := ParseFile(filepath.Join(dir, "08_fan_bracket.svg"), false)
	if err != nil {
		return nil, err
	}

	gap := cfg.PartGap
	s := NewSheet("sheet_5mm", cfg.SheetWidth, cfg.SheetHeight, cfg.SideThickness)

	// Column 1: the two sides.
	s.Place("LEFT SIDE (5mm)", left, 0, 0)
	s.Place("RIGHT SIDE (5mm)", right, left.Width+gap, 0)
	col1W := left.Width + gap + right.Width
	col1H := left.Height

	// Interleave the second rail upside down so its teeth nest into the
	// first rail's gaps, then rotate the pair as one unit.
	offsetY2 := cfg.CombBarH + gap
	const comb2DX = 4.0
	rail2 := comb.Rotate180().Translate(comb2DX+4.5, offsetY2)
	assy := Merge("comb rails", comb.Width+comb2DX, offsetY2+comb.Height, comb, rail2)
	assy = assy.Rotate90CW()

	xCol2 := col1W + gap
	s.Place("COMB RAILS (5mm, interleaved+90°)", assy, xCol2, 0)
	s.Place("FAN BRACKET (5mm)", fan, xCol2, col1H-fan.Height)

	bottom = bottom.Rotate90CW()
	s.Place("BOTTOM (5mm, 90°)", bottom, xCol2+fan.Width+gap-23, 0)

	s.CheckFit()
	return s, nil
}
