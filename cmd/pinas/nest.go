package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cicchiello/pi-nas/internal/export"
	"github.com/cicchiello/pi-nas/internal/nest"
)

var (
	nestInDir  string
	nestOutDir string
	nestLabels bool
)

var nestCmd = &cobra.Command{
	Use:   "nest",
	Short: "Pack the panels onto fabrication sheets",
	Long: `Reparse the generated panel SVGs and pack them onto two fixed-size
fabrication sheets, one per material thickness (3mm and 5mm).

For each sheet this writes a combined SVG and a laser-ready DXF
(CUT and ENGRAVE layers), plus a review PDF covering both sheets.
Parts that do not fit the sheet produce a warning, not an error.

Examples:
  pinas nest -i out -o out/fab
  pinas nest -i out -o out/fab --labels`,
	RunE: runNest,
}

func init() {
	rootCmd.AddCommand(nestCmd)
	nestCmd.Flags().StringVarP(&nestInDir, "in", "i", "out", "directory with the panel SVGs")
	nestCmd.Flags().StringVarP(&nestOutDir, "out", "o", "out/fab", "output directory")
	nestCmd.Flags().BoolVar(&nestLabels, "labels", false, "also write Avery 5160 part labels (labels.pdf)")
}

// layoutSheets builds both material sheets from the panel SVGs in dir.
func layoutSheets(dir string) ([]*nest.Sheet, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	s3, err := nest.Nest3mm(dir, cfg)
	if err != nil {
		return nil, err
	}
	s5, err := nest.Nest5mm(dir, cfg)
	if err != nil {
		return nil, err
	}
	return []*nest.Sheet{s3, s5}, nil
}

func runNest(cmd *cobra.Command, args []string) error {
	sheets, err := layoutSheets(nestInDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(nestOutDir, 0o755); err != nil {
		return err
	}

	for _, s := range sheets {
		w, h := s.Used()
		fmt.Printf("%s: %d parts, %.0f x %.0f mm used of %.0f x %.0f\n",
			s.Name, len(s.Placements), w, h, s.Width, s.Height)
		for _, warn := range s.Warnings {
			fmt.Println("  WARNING:", warn)
		}

		svgPath := filepath.Join(nestOutDir, s.Name+".svg")
		if err := s.Save(svgPath); err != nil {
			return err
		}
		fmt.Println(" ", svgPath)

		dxfPath := filepath.Join(nestOutDir, s.Name+".dxf")
		if err := export.ExportDXF(dxfPath, s); err != nil {
			return err
		}
		fmt.Println(" ", dxfPath)
	}

	pdfPath := filepath.Join(nestOutDir, "layout_review.pdf")
	if err := export.ExportPDF(pdfPath, sheets); err != nil {
		return err
	}
	fmt.Println(" ", pdfPath)

	if nestLabels {
		labelPath := filepath.Join(nestOutDir, "labels.pdf")
		if err := export.ExportLabels(labelPath, sheets); err != nil {
			return err
		}
		fmt.Println(" ", labelPath)
	}
	return nil
}
