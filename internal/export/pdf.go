package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// cargoColor represents an RGB color for a placed item.
type cargoColor struct {
	R, G, B int
}

// cargoColors cycles across placed items so adjacent boxes read apart.
var cargoColors = []cargoColor{
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
	drawAreaTop  = marginTop + headerHeight + 8.0
)

// ExportPDF generates the stowage plan document: one top-down layout
// page per bin that holds cargo, then a summary page with bin
// utilization and the stability figures.
func ExportPDF(path string, report Report) error {
	if len(report.Cargo) == 0 {
		return fmt.Errorf("no cargo to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for _, bin := range report.Bins {
		if bin.Items == 0 {
			continue
		}
		pdf.AddPage()
		renderBinPage(pdf, report, bin.Name)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, report)

	return pdf.OutputFileAndClose(path)
}

// renderBinPage draws the top-down footprint of every item stowed in
// one bin, scaled to the ship outline.
func renderBinPage(pdf *fpdf.Fpdf, report Report, binName string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s  (ship %.0f x %.0f m)", binName, report.Length, report.Width)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Scale the ship footprint into the drawing area.
	availW := pageWidth - marginLeft - marginRight
	availH := pageHeight - drawAreaTop - marginBottom
	scale := availW / report.Length
	if s := availH / report.Width; s < scale {
		scale = s
	}

	originX := marginLeft
	originY := drawAreaTop

	pdf.SetDrawColor(40, 40, 40)
	pdf.SetLineWidth(0.5)
	pdf.Rect(originX, originY, report.Length*scale, report.Width*scale, "D")

	pdf.SetLineWidth(0.2)
	pdf.SetFont("Helvetica", "", 7)
	colorIdx := 0
	for _, p := range report.Placements {
		if p.Bin != binName {
			continue
		}
		c := cargoColors[colorIdx%len(cargoColors)]
		colorIdx++
		pdf.SetFillColor(c.R, c.G, c.B)

		x := originX + p.Position.X*scale
		y := originY + p.Position.Y*scale
		w := p.Width * scale
		d := p.Depth * scale
		pdf.Rect(x, y, w, d, "FD")

		if w > 12 && d > 5 {
			pdf.SetXY(x, y+d/2-1.5)
			pdf.CellFormat(w, 3, p.ItemID, "", 0, "C", false, 0, "")
		}
	}
}

// renderSummaryPage prints bin utilization and the stability analysis.
func renderSummaryPage(pdf *fpdf.Fpdf, report Report) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Stowage Summary", "", 0, "L", false, 0, "")

	y := drawAreaTop
	line := func(format string, args ...any) {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, fmt.Sprintf(format, args...), "", 0, "L", false, 0, "")
		y += 7
	}

	pdf.SetFont("Helvetica", "", 11)
	for _, b := range report.Bins {
		line("%s: %d items, %.1f / %.1f t (%.1f%%)",
			b.Name, b.Items, b.Weight/1000.0, b.MaxWeight/1000.0, b.Utilization())
	}
	y += 4

	a := report.Analysis
	if a.Overweight() {
		pdf.SetFont("Helvetica", "B", 12)
		line("PLAN REJECTED: total weight exceeds the ship's maximum capacity.")
		pdf.SetFont("Helvetica", "", 11)
		line("Placed items: %d, cargo weight %.1f t", a.PlacedItems, a.TotalCargoWeight/1000.0)
		return
	}
	line("Placed items: %d", a.PlacedItems)
	line("Cargo weight: %.1f t", a.TotalCargoWeight/1000.0)
	line("CG longitudinal / transverse: %.1f%% / %.1f%%", a.CGLongitudinalPct, a.CGTransversePct)
	line("Draft: %.2f m", a.Draft)
	line("Metacentric height (GM): %.2f m (%s)", a.GM, a.Band())
}
