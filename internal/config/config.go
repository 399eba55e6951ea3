// Package config holds the physical parameter set for the enclosure and the
// dimensions derived from it. A Config is built once from a preset (or a
// JSON file), derived once, and passed by reference into every generator —
// there is no global mutable state.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Config is the base parameter set. All lengths are millimetres.
type Config struct {
	Name string `json:"name"`

	// Material
	WallThickness    float64 `json:"wall_thickness"`    // front/back/top acrylic
	SideThickness    float64 `json:"side_thickness"`    // left/right/bottom acrylic
	BracketThickness float64 `json:"bracket_thickness"` // comb rail / fan bracket acrylic
	Kerf             float64 `json:"kerf"`              // laser kerf half-width

	// Corner threaded rods (vertical, through top+bottom panels)
	RodDiameter float64 `json:"rod_diameter"`
	RodHole     float64 `json:"rod_hole"`   // clearance hole
	GrommetOD   float64 `json:"grommet_od"` // rubber grommet outer diameter

	// Raspberry Pi 5 board
	PiLength       float64 `json:"pi_length"` // long edge
	PiWidth        float64 `json:"pi_width"`  // short edge
	PiHoleSpacingX float64 `json:"pi_hole_spacing_x"`
	PiHoleSpacingY float64 `json:"pi_hole_spacing_y"`
	PiHoleDia      float64 `json:"pi_hole_dia"`
	PiHoleOffsetX  float64 `json:"pi_hole_offset_x"`
	PiHoleOffsetY  float64 `json:"pi_hole_offset_y"`

	// SATA HAT
	HatLength float64 `json:"hat_length"`
	HatWidth  float64 `json:"hat_width"`

	// 3.5" drive
	DriveLength    float64   `json:"drive_length"`    // becomes vertical height
	DriveWidth     float64   `json:"drive_width"`     // becomes depth
	DriveThickness float64   `json:"drive_thickness"` // becomes horizontal pitch
	DriveSideHoleZ []float64 `json:"drive_side_hole_z"`

	// Fan
	FanSize        float64 `json:"fan_size"`
	FanDepth       float64 `json:"fan_depth"`
	FanHoleSpacing float64 `json:"fan_hole_spacing"`
	FanMountHole   float64 `json:"fan_mount_hole"`
	FanGap         float64 `json:"fan_gap"` // airflow gap between drive tops and bracket

	// Layout
	NumDrives       int     `json:"num_drives"`
	DriveGap        float64 `json:"drive_gap"`         // face-to-face between adjacent drives
	DriveEdgeMargin float64 `json:"drive_edge_margin"` // outer drive face to side wall
	CableZoneH      float64 `json:"cable_zone_h"`
	PiStandoffH     float64 `json:"pi_standoff_h"`
	PiEnvelopeH     float64 `json:"pi_envelope_h"`
	PiToHatGap      float64 `json:"pi_to_hat_gap"`
	HatEnvelopeH    float64 `json:"hat_envelope_h"`
	TopClearance    float64 `json:"top_clearance"` // above fan to top panel

	// Comb rail
	CombBarH     float64 `json:"comb_bar_h"`
	CombToothW   float64 `json:"comb_tooth_w"`
	ScrewHeadClr float64 `json:"screw_head_clr"`

	// Joints
	FingerWidth float64 `json:"finger_width"`
	MinOverhang float64 `json:"min_overhang"` // material between slot and panel edge

	// Fabrication sheet (authoring-tool constraint)
	SheetWidth  float64 `json:"sheet_width"`
	SheetHeight float64 `json:"sheet_height"`
	PartGap     float64 `json:"part_gap"` // spacing between nested parts
}

// Dims holds the dimensions derived from a Config. Derived once, read-only.
type Dims struct {
	SideOverlap float64 // side panel overhang past front/back on each end

	DriveGroupW float64
	DriveZoneW  float64
	InteriorX   float64
	InteriorY   float64
	ExtX        float64
	ExtY        float64

	// Z stack from the enclosure floor
	ZBottomTop  float64 // top of bottom panel
	ZPiPCB      float64
	ZPiTop      float64
	ZHatPCB     float64
	ZHatTop     float64
	ZDriveBot   float64
	ZDriveTop   float64
	ZFanBracket float64
	ZFanTop     float64
	ZTopPanel   float64
	TotalH      float64

	SideH float64 // front/back/side panel height

	CombBarZ     float64
	CombToothLen float64
	CombTotalH   float64

	RodInset float64 // rod hole inset from horizontal panel edges
}

// Derive computes the dependent dimensions. It is the single source of truth
// for every stacked or summed size.
func (c Config) Derive() Dims {
	var d Dims
	d.SideOverlap = c.MinOverhang + c.WallThickness

	n := float64(c.NumDrives)
	d.DriveGroupW = n*c.DriveThickness + (n-1)*c.DriveGap
	d.DriveZoneW = d.DriveGroupW + 2*c.DriveEdgeMargin

	d.InteriorX = math.Max(d.DriveZoneW, math.Max(c.HatLength+20, c.PiLength+20))
	d.InteriorY = math.Max(2*c.ScrewHeadClr+2*c.BracketThickness+c.DriveWidth, c.PiWidth+20)
	d.InteriorX = math.Ceil(d.InteriorX/5) * 5
	d.InteriorY = math.Ceil(d.InteriorY/5) * 5

	d.ExtX = d.InteriorX + 2*c.SideThickness
	d.ExtY = d.InteriorY + 2*c.WallThickness

	d.ZBottomTop = c.SideThickness
	d.ZPiPCB = d.ZBottomTop + c.PiStandoffH
	d.ZPiTop = d.ZPiPCB + c.PiEnvelopeH
	d.ZHatPCB = d.ZPiTop + c.PiToHatGap
	d.ZHatTop = d.ZHatPCB + c.HatEnvelopeH
	d.ZDriveBot = d.ZHatTop + c.CableZoneH
	d.ZDriveTop = d.ZDriveBot + c.DriveLength
	d.ZFanBracket = d.ZDriveTop + c.FanGap
	d.ZFanTop = d.ZFanBracket + c.WallThickness + c.FanDepth
	d.ZTopPanel = d.ZFanTop + c.TopClearance
	d.TotalH = d.ZTopPanel + c.WallThickness

	d.SideH = d.ZTopPanel - c.SideThickness

	d.CombBarZ = d.ZDriveTop - c.CombBarH
	d.CombToothLen = c.DriveLength - c.CombBarH - 10
	d.CombTotalH = c.CombBarH + d.CombToothLen

	d.RodInset = c.SideThickness + 2*c.RodDiameter
	return d
}

// Validate rejects parameter sets the generators cannot work with.
func (c Config) Validate() error {
	switch {
	case c.WallThickness <= 0 || c.SideThickness <= 0 || c.BracketThickness <= 0:
		return fmt.Errorf("config %q: material thickness must be positive", c.Name)
	case c.FingerWidth <= 0:
		return fmt.Errorf("config %q: finger width must be positive", c.Name)
	case c.NumDrives < 1:
		return fmt.Errorf("config %q: need at least one drive", c.Name)
	case c.SheetWidth <= 0 || c.SheetHeight <= 0:
		return fmt.Errorf("config %q: sheet size must be positive", c.Name)
	case c.Kerf < 0:
		return fmt.Errorf("config %q: kerf cannot be negative", c.Name)
	}
	return nil
}

// Default returns the four-drive parameter set the enclosure ships with.
func Default() Config {
	return Config{
		Name:             "default",
		WallThickness:    3.0,
		SideThickness:    5.0,
		BracketThickness: 5.0,
		Kerf:             0.1,

		RodDiameter: 4.0,
		RodHole:     4.5,
		GrommetOD:   10.0,

		PiLength:       85.0,
		PiWidth:        56.0,
		PiHoleSpacingX: 58.0,
		PiHoleSpacingY: 49.0,
		PiHoleDia:      2.7,
		PiHoleOffsetX:  3.5,
		PiHoleOffsetY:  3.5,

		HatLength: 100.0,
		HatWidth:  56.0,

		DriveLength:    146.99,
		DriveWidth:     101.6,
		DriveThickness: 26.11,
		DriveSideHoleZ: []float64{28.50, 70.50, 130.50},

		FanSize:        80.0,
		FanDepth:       25.0,
		FanHoleSpacing: 71.5,
		FanMountHole:   4.3,
		FanGap:         10.0,

		NumDrives:       4,
		DriveGap:        19.0,
		DriveEdgeMargin: 11.5,
		CableZoneH:      82.0,
		PiStandoffH:     10.0,
		PiEnvelopeH:     18.0,
		PiToHatGap:      3.0,
		HatEnvelopeH:    12.25,
		TopClearance:    5.0,

		CombBarH:     12.0,
		CombToothW:   20.0,
		ScrewHeadClr: 4.0,

		FingerWidth: 12.0,
		MinOverhang: 3.0,

		SheetWidth:  790.0,
		SheetHeight: 384.0,
		PartGap:     3.0,
	}
}

// Compact returns the two-drive variant. Same design, smaller constants —
// the two presets exist so one generator serves both builds.
func Compact() Config {
	c := Default()
	c.Name = "compact"
	c.NumDrives = 2
	c.DriveGap = 15.0
	c.DriveEdgeMargin = 10.0
	c.CableZoneH = 60.0
	c.FanSize = 60.0
	c.FanDepth = 15.0
	c.FanHoleSpacing = 50.0
	c.TopClearance = 4.0
	return c
}

// Presets lists the named parameter sets.
func Presets() []Config {
	return []Config{Default(), Compact()}
}

// ByName returns the preset with the given name.
func ByName(name string) (Config, error) {
	for _, c := range Presets() {
		if c.Name == name {
			return c, nil
		}
	}
	return Config{}, fmt.Errorf("unknown preset %q", name)
}

// SaveFile persists a Config as JSON, creating parent directories as needed.
func SaveFile(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadFile reads a Config from a JSON file and validates it.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
