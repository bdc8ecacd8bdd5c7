package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/piwi3910/cargoforge/internal/model"
)

// CargoList is the result of parsing a cargo manifest. Malformed lines
// are skipped with a warning rather than aborting the whole file;
// invalid numeric values abort, since they usually mean a unit mistake
// rather than a stray line.
type CargoList struct {
	Items    []model.CargoItem
	Warnings []string
}

// ParseCargoList reads the whitespace-separated cargo format, one item
// per line:
//
//	ID  weight_tonnes  LENxWIDxHEI  category
//
// Dimensions are metres joined by 'x' (e.g. 12.2x2.4x2.6). Weight is
// converted to kilograms. '#' comments and blank lines are ignored.
func ParseCargoList(r io.Reader) (CargoList, error) {
	var out CargoList

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 {
			out.Warnings = append(out.Warnings, fmt.Sprintf("line %d: skipping malformed cargo entry", lineNum))
			continue
		}
		id, weightStr, dimStr, typeStr := fields[0], fields[1], fields[2], fields[3]

		weightT, err := parseFloatInRange(weightStr, 0.1, 1e6, "weight")
		if err != nil {
			return out, fmt.Errorf("line %d: %w", lineNum, err)
		}

		dims := strings.Split(dimStr, "x")
		if len(dims) != 3 {
			return out, fmt.Errorf("line %d: cargo %s: dimensions must be LxWxH, got %q", lineNum, id, dimStr)
		}
		var parsed [3]float64
		for i, d := range dims {
			v, err := parseFloatInRange(d, 0.1, 1e4, "dimension")
			if err != nil {
				return out, fmt.Errorf("line %d: cargo %s: %w", lineNum, id, err)
			}
			parsed[i] = v
		}

		category, err := model.ParseCategory(typeStr)
		if err != nil {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("line %d: cargo %s: %v, treating as standard", lineNum, id, err))
			category = model.CategoryStandard
		}

		out.Items = append(out.Items, model.NewCargoItem(id, weightT*1000.0, parsed[0], parsed[1], parsed[2], category))
	}
	if err := scanner.Err(); err != nil {
		return out, fmt.Errorf("reading cargo list: %w", err)
	}
	return out, nil
}

// LoadCargoList reads a cargo manifest from a file, or stdin when the
// path is "-".
func LoadCargoList(path string) (CargoList, error) {
	if path == "-" {
		return ParseCargoList(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return CargoList{}, fmt.Errorf("opening cargo list: %w", err)
	}
	defer f.Close()
	list, err := ParseCargoList(f)
	if err != nil {
		return list, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}
