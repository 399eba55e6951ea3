package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/cicchiello/pi-nas/internal/nest"
)

// partColor represents an RGB color for a placed part.
type partColor struct {
	R, G, B int
}

var partColors = []partColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF renders the nested sheets as a review document: one page per
// sheet with the placed parts drawn to scale, then a summary page.
func ExportPDF(path string, sheets []*nest.Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, s := range sheets {
		pdf.AddPage()
		renderSheetPage(pdf, s, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, sheets)

	return pdf.OutputFileAndClose(path)
}

// usedFraction is the placed parts' area over the material area, by
// declared part sizes.
func usedFraction(s *nest.Sheet) float64 {
	var used float64
	for _, pl := range s.Placements {
		used += pl.Part.Width * pl.Part.Height
	}
	return used / (s.Width * s.Height)
}

// renderSheetPage draws a single sheet layout on the current PDF page.
func renderSheetPage(pdf *fpdf.Fpdf, s *nest.Sheet, sheetNum int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Sheet %d: %s (%.0f x %.0f mm, %.0fmm stock)",
		sheetNum, s.Name, s.Width, s.Height, s.Thickness)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	usedW, usedH := s.Used()
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Parts: %d | Content: %.0f x %.0f mm | Material used: %.1f%%",
		len(s.Placements), usedW, usedH, usedFraction(s)*100)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight
	scale := math.Min(drawWidth/s.Width, drawHeight/s.Height)

	sheetW := s.Width * scale
	sheetH := s.Height * scale
	offsetX := marginLeft + (drawWidth-sheetW)/2
	offsetY := drawAreaTop

	// Material background.
	pdf.SetFillColor(235, 235, 240)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, sheetW, sheetH, "FD")

	for i, pl := range s.Placements {
		col := partColors[i%len(partColors)]
		px := offsetX + pl.X*scale
		py := offsetY + pl.Y*scale
		pw := pl.Part.Width * scale
		ph := pl.Part.Height * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := pl.Label
			dims := fmt.Sprintf("%.0fx%.0f", pl.Part.Width, pl.Part.Height)
			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, s, scale, offsetX, offsetY, sheetW, sheetH)
	drawPartsLegend(pdf, s, offsetY+sheetH+5)
}

// drawDimensionAnnotations adds width and height labels outside the sheet
// rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, s *nest.Sheet, scale, offsetX, offsetY, sheetW, sheetH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.0f mm", s.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(sheetW-wLabelW)/2, offsetY+sheetH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.0f mm", s.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+sheetH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+sheetH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawPartsLegend renders a compact legend of placed parts under the sheet.
func drawPartsLegend(pdf *fpdf.Fpdf, s *nest.Sheet, startY float64) {
	if len(s.Placements) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Parts placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, pl := range s.Placements {
		col := partColors[i%len(partColors)]
		label := fmt.Sprintf("%s (%.0fx%.0f)", pl.Label, pl.Part.Width, pl.Part.Height)
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final page with per-sheet statistics and any
// layout warnings.
func renderSummaryPage(pdf *fpdf.Fpdf, sheets []*nest.Sheet) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Fabrication Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	colWidths := []float64{50, 45, 35, 25, 45, 35}
	headers := []string{"Sheet", "Material", "Thickness", "Parts", "Content", "Used"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, s := range sheets {
		usedW, usedH := s.Used()
		row := []string{
			s.Name,
			fmt.Sprintf("%.0f x %.0f mm", s.Width, s.Height),
			fmt.Sprintf("%.0f mm", s.Thickness),
			fmt.Sprintf("%d", len(s.Placements)),
			fmt.Sprintf("%.0f x %.0f mm", usedW, usedH),
			fmt.Sprintf("%.1f%%", usedFraction(s)*100),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		xPos = marginLeft
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	var warnings []string
	for _, s := range sheets {
		for _, w := range s.Warnings {
			warnings = append(warnings, fmt.Sprintf("%s: %s", s.Name, w))
		}
	}
	if len(warnings) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Layout Issues", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, w := range warnings {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(200, 5, "- "+w, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by pi-nas - NAS Enclosure Generator", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size for a part rectangle.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
