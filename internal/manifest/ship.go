// Package manifest parses ship configuration and cargo list files and
// persists complete stowage plans. The core engine never reads files;
// this package is the boundary between disk formats and the model.
package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/cargoforge/internal/model"
)

// parseFloatInRange parses a strictly bounded positive float, the way
// every numeric field in the text formats is validated.
func parseFloatInRange(s string, min, max float64, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", field, s)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%s value %v out of range [%v, %v]", field, v, min, max)
	}
	return v, nil
}

// ParseShip reads a ship configuration in key=value form. Lines starting
// with '#' and blank lines are ignored. Weights are given in tonnes and
// stored in kilograms.
//
// Recognized keys: length_m, width_m, max_weight_tonnes,
// lightship_weight_tonnes, lightship_kg_m.
func ParseShip(r io.Reader) (*model.Ship, error) {
	ship := &model.Ship{}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)

		v, err := parseFloatInRange(value, 0.1, 1e9, key)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		switch key {
		case "length_m":
			ship.Length = v
		case "width_m":
			ship.Width = v
		case "max_weight_tonnes":
			ship.MaxWeight = v * 1000.0
		case "lightship_weight_tonnes":
			ship.LightshipWeight = v * 1000.0
		case "lightship_kg_m":
			ship.LightshipKG = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ship config: %w", err)
	}

	if err := ship.Validate(); err != nil {
		return nil, fmt.Errorf("ship config incomplete: %w", err)
	}
	return ship, nil
}

// LoadShip reads a ship configuration from a file, or stdin when the
// path is "-".
func LoadShip(path string) (*model.Ship, error) {
	if path == "-" {
		return ParseShip(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ship config: %w", err)
	}
	defer f.Close()
	ship, err := ParseShip(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ship, nil
}
