package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

// ExportDXF writes a top-down deck drawing: the hull outline on one
// layer and each placed item's footprint rectangle, labelled by bin, on
// a layer per bin. Units are metres, matching the manifest.
func ExportDXF(path string, report Report) error {
	if report.Length <= 0 || report.Width <= 0 {
		return fmt.Errorf("ship dimensions required for DXF export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("HULL", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("creating hull layer: %w", err)
	}
	if err := drawRect(d, 0, 0, report.Length, report.Width); err != nil {
		return fmt.Errorf("drawing hull outline: %w", err)
	}

	layers := make(map[string]bool)
	for _, p := range report.Placements {
		layer := layerName(p.Bin)
		if !layers[layer] {
			if _, err := d.AddLayer(layer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
				return fmt.Errorf("creating layer %q: %w", layer, err)
			}
			layers[layer] = true
		}
		if err := d.ChangeLayer(layer); err != nil {
			return fmt.Errorf("switching to layer %q: %w", layer, err)
		}
		if err := drawRect(d, p.Position.X, p.Position.Y, p.Width, p.Depth); err != nil {
			return fmt.Errorf("drawing item %q: %w", p.ItemID, err)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("saving DXF: %w", err)
	}
	return nil
}

// drawRect draws an axis-aligned rectangle at z=0 as four LINE entities.
func drawRect(d *drawing.Drawing, x, y, w, h float64) error {
	lines := [][4]float64{
		{x, y, x + w, y},
		{x + w, y, x + w, y + h},
		{x + w, y + h, x, y + h},
		{x, y + h, x, y},
	}
	for _, l := range lines {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return err
		}
	}
	return nil
}

// layerName maps a bin name to a DXF-safe layer name.
func layerName(bin string) string {
	out := make([]byte, 0, len(bin))
	for i := 0; i < len(bin); i++ {
		c := bin[i]
		switch {
		case c >= 'a' && c <= 'z':
			out = append(out, c-'a'+'A')
		case (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'):
			out = append(out, c)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
