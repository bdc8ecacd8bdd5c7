package export

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// WriteTable renders the classic fixed-width placement summary table.
func WriteTable(w io.Writer, report Report) error {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Cargo Placement Summary ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-15s | %-10s | %9s | %-18s | %-14s | %-10s\n",
		"Cargo ID", "Category", "Weight", "Position", "Dims", "Status")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	placed := 0
	for _, c := range report.Cargo {
		pos := "-"
		status := "UNPLACED"
		if c.Placed {
			pos = fmt.Sprintf("%.1f,%.1f,%.1f", c.Position.X, c.Position.Y, c.Position.Z)
			status = "Placed"
			placed++
		}
		fmt.Fprintf(w, "%-15s | %-10s | %8.1ft | %-18s | %.1fx%.1fx%.1f | %-10s\n",
			c.ID, c.Category, c.WeightKg/1000.0, pos, c.Length, c.Width, c.Height, status)
	}

	fmt.Fprintln(w)
	if len(report.Cargo) > 0 {
		fmt.Fprintf(w, "Placement rate: %d/%d items (%.1f%%)\n",
			placed, len(report.Cargo), float64(placed)/float64(len(report.Cargo))*100.0)
	}
	for _, b := range report.Bins {
		fmt.Fprintf(w, "  %s: %.1f / %.1f t (%.1f%% capacity)\n",
			b.Name, b.Weight/1000.0, b.MaxWeight/1000.0, b.Utilization())
	}
	return nil
}

// Layout grid dimensions for the ASCII deck plan.
const (
	gridWidth  = 80
	gridHeight = 20
)

// RenderLayoutASCII draws a top-down view of the placed cargo scaled
// onto a character grid. Returns the empty string when nothing can be
// drawn.
func RenderLayoutASCII(report Report) string {
	if len(report.Cargo) == 0 || report.Length <= 0 || report.Width <= 0 {
		return ""
	}

	var grid [gridHeight][gridWidth]byte
	for y := 0; y < gridHeight; y++ {
		for x := 0; x < gridWidth; x++ {
			grid[y][x] = '.'
		}
	}

	scaleX := gridWidth / report.Length
	scaleY := gridHeight / report.Width

	for _, c := range report.Cargo {
		if !c.Placed {
			continue
		}
		gx := int(c.Position.X * scaleX)
		gy := int(c.Position.Y * scaleY)
		gw := int(math.Ceil(c.Length * scaleX))
		gh := int(math.Ceil(c.Width * scaleY))
		if gw < 1 {
			gw = 1
		}
		if gh < 1 {
			gh = 1
		}
		for dy := 0; dy < gh && gy+dy < gridHeight; dy++ {
			for dx := 0; dx < gw && gx+dx < gridWidth; dx++ {
				if gy+dy >= 0 && gx+dx >= 0 {
					grid[gy+dy][gx+dx] = '#'
				}
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("\n=== Top-Down Cargo Layout ===\n")
	fmt.Fprintf(&sb, "Ship: %.1fm (L) x %.1fm (W)   # = cargo, . = empty\n\n", report.Length, report.Width)

	border := "   +" + strings.Repeat("-", gridWidth) + "+\n"
	sb.WriteString(border)
	for y := 0; y < gridHeight; y++ {
		fmt.Fprintf(&sb, "%2d |%s|\n", y, string(grid[y][:]))
	}
	sb.WriteString(border)
	return sb.String()
}
