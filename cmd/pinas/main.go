// pinas — parametric panel generator for a laser-cut acrylic NAS enclosure
// (Raspberry Pi 5 + 4x 3.5" drives).
//
// Build:
//
//	go build -o pinas ./cmd/pinas
//
// Typical workflow:
//
//	pinas panels -o out            # per-panel SVGs + review page + cut list
//	pinas nest -i out -o out/fab   # fabrication sheets: SVG, DXF, PDF, labels
//	pinas check -i out -o out/fab  # verify the DXFs against the layout
package main

func main() {
	Execute()
}
