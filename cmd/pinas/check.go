package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cicchiello/pi-nas/internal/verify"
)

var (
	checkInDir  string
	checkFabDir string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify exported DXF files against the sheet layout",
	Long: `Rebuild the sheet layouts from the panel SVGs, read the exported
DXF files back, and compare entity counts and overall extents.

This catches exporter regressions before a file goes to the laser
service: a mismatch means the DXF no longer reflects the layout.

Example:
  pinas check -i out -o out/fab`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkInDir, "in", "i", "out", "directory with the panel SVGs")
	checkCmd.Flags().StringVarP(&checkFabDir, "out", "o", "out/fab", "directory with the exported DXFs")
}

func runCheck(cmd *cobra.Command, args []string) error {
	sheets, err := layoutSheets(checkInDir)
	if err != nil {
		return err
	}

	failed := 0
	for _, s := range sheets {
		path := filepath.Join(checkFabDir, s.Name+".dxf")
		problems, err := verify.CheckSheet(path, s)
		if err != nil {
			return err
		}
		if len(problems) == 0 {
			fmt.Printf("%s: OK\n", path)
			continue
		}
		failed++
		fmt.Printf("%s: MISMATCH\n", path)
		for _, p := range problems {
			fmt.Println("  -", p)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d sheet(s) failed verification", failed)
	}
	return nil
}
