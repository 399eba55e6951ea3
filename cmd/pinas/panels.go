package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cicchiello/pi-nas/internal/config"
	"github.com/cicchiello/pi-nas/internal/export"
	"github.com/cicchiello/pi-nas/internal/panels"
	"github.com/cicchiello/pi-nas/internal/preview"
)

var (
	panelsOutDir     string
	panelsSaveConfig string
)

var panelsCmd = &cobra.Command{
	Use:   "panels",
	Short: "Generate the per-panel SVG files",
	Long: `Generate one SVG per enclosure panel, plus an HTML review page
(panel_review.html) and an XLSX cut list.

The review page embeds every panel at true scale with a printable
100mm ruler, so a paper test print can be checked before cutting.

Examples:
  pinas panels -o out
  pinas panels -o out --preset compact
  pinas panels -o out --config my-enclosure.json`,
	RunE: runPanels,
}

func init() {
	rootCmd.AddCommand(panelsCmd)
	panelsCmd.Flags().StringVarP(&panelsOutDir, "out", "o", "out", "output directory")
	panelsCmd.Flags().StringVar(&panelsSaveConfig, "save-config", "",
		"also write the resolved config as JSON to this path")
}

func runPanels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(panelsOutDir, 0o755); err != nil {
		return err
	}

	gen, err := panels.New(cfg)
	if err != nil {
		return err
	}

	dims := gen.Dims()
	fmt.Printf("Enclosure: %.0f x %.0f x %.1f mm exterior (%s)\n",
		dims.ExtX, dims.ExtY, dims.TotalH, cfg.Name)

	set := gen.GenerateAll()
	for _, p := range set {
		path := filepath.Join(panelsOutDir, p.Filename)
		if err := p.Canvas.Save(path); err != nil {
			return fmt.Errorf("write %s: %w", p.Name, err)
		}
		fmt.Println(" ", path)
	}

	if _, err := preview.Save(panelsOutDir, cfg); err != nil {
		return err
	}
	fmt.Println(" ", filepath.Join(panelsOutDir, "panel_review.html"))

	cutlist := filepath.Join(panelsOutDir, "cut_list.xlsx")
	if err := export.ExportCutList(cutlist, set); err != nil {
		return err
	}
	fmt.Println(" ", cutlist)

	if panelsSaveConfig != "" {
		if err := config.SaveFile(panelsSaveConfig, cfg); err != nil {
			return err
		}
		fmt.Println(" ", panelsSaveConfig)
	}
	return nil
}
