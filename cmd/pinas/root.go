package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cicchiello/pi-nas/internal/config"
)

var (
	presetName string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "pinas",
	Short: "NAS enclosure panel generator for laser cutting",
	Long: `pinas - parametric NAS enclosure generator

Generates laser-cut acrylic panels for a NAS enclosure housing a
Raspberry Pi 5 and four 3.5" drives, then nests them onto fixed-size
fabrication sheets and exports laser-ready DXF files.

Geometry is fully parametric: material thicknesses, drive count, fan
size, and joint finger width all come from a config preset or a JSON
config file, and every derived dimension follows.

Workflow:
  panels  - generate per-panel SVGs, an HTML review page, and a cut list
  nest    - pack the panels onto 3mm and 5mm sheets, export SVG/DXF/PDF
  check   - read the exported DXFs back and verify them against the layout`,
}

// Execute runs the root command, exiting non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "default",
		"config preset ("+strings.Join(presetNames(), ", ")+")")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"JSON config file (overrides --preset)")
}

func presetNames() []string {
	var names []string
	for _, p := range config.Presets() {
		names = append(names, p.Name)
	}
	return names
}

// loadConfig resolves the active configuration from --config or --preset.
func loadConfig() (config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.ByName(presetName)
}
