package manifest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/cargoforge/internal/model"
	"github.com/xuri/excelize/v2"
)

// columnMapping maps semantic column roles to indices in a row.
type columnMapping struct {
	ID       int
	Weight   int
	Length   int
	Width    int
	Height   int
	Category int
}

// headerAliases maps canonical column names to accepted spellings
// (all lowercase). Weight columns are tonnes, dimensions metres.
var headerAliases = map[string][]string{
	"id":       {"id", "cargo", "cargo id", "item", "name", "label"},
	"weight":   {"weight", "weight_t", "tonnes", "mass", "wt"},
	"length":   {"length", "len", "l", "length_m"},
	"width":    {"width", "w", "width_m", "breadth"},
	"height":   {"height", "h", "height_m"},
	"category": {"category", "type", "class", "cargo type"},
}

// DetectCSVDelimiter determines the most likely delimiter by trying
// comma, semicolon, tab and pipe and scoring column-count consistency.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	best := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}
		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			best = delim
		}
	}
	return best
}

// detectColumns matches a header row case-insensitively against the
// alias table. Without a header it falls back to positional order:
// ID, weight, length, width, height, category.
func detectColumns(row []string) (columnMapping, bool) {
	mapping := columnMapping{ID: -1, Weight: -1, Length: -1, Width: -1, Height: -1, Category: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "id":
					if mapping.ID == -1 {
						mapping.ID = i
					}
				case "weight":
					if mapping.Weight == -1 {
						mapping.Weight = i
					}
				case "length":
					if mapping.Length == -1 {
						mapping.Length = i
					}
				case "width":
					if mapping.Width == -1 {
						mapping.Width = i
					}
				case "height":
					if mapping.Height == -1 {
						mapping.Height = i
					}
				case "category":
					if mapping.Category == -1 {
						mapping.Category = i
					}
				}
			}
		}
	}

	if !isHeader {
		return columnMapping{ID: 0, Weight: 1, Length: 2, Width: 3, Height: 4, Category: 5}, false
	}
	return mapping, true
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a cargo item from a row. Returns the item, an error
// message for rejected rows, and a warning for recovered ones.
func parseRow(row []string, mapping columnMapping, rowLabel string, count int) (model.CargoItem, string, string) {
	id := getCell(row, mapping.ID)
	if id == "" {
		id = fmt.Sprintf("CARGO-%03d", count+1)
	}

	parse := func(idx int, name string) (float64, string) {
		s := getCell(row, idx)
		if s == "" {
			return 0, fmt.Sprintf("%s: missing %s value", rowLabel, name)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Sprintf("%s: invalid %s %q", rowLabel, name, s)
		}
		return v, ""
	}

	weightT, errMsg := parse(mapping.Weight, "weight")
	if errMsg != "" {
		return model.CargoItem{}, errMsg, ""
	}
	length, errMsg := parse(mapping.Length, "length")
	if errMsg != "" {
		return model.CargoItem{}, errMsg, ""
	}
	width, errMsg := parse(mapping.Width, "width")
	if errMsg != "" {
		return model.CargoItem{}, errMsg, ""
	}
	height, errMsg := parse(mapping.Height, "height")
	if errMsg != "" {
		return model.CargoItem{}, errMsg, ""
	}

	if weightT <= 0 || length <= 0 || width <= 0 || height <= 0 {
		return model.CargoItem{}, fmt.Sprintf("%s: weight and dimensions must be positive", rowLabel), ""
	}

	var warning string
	category := model.CategoryStandard
	if s := getCell(row, mapping.Category); s != "" {
		parsed, err := model.ParseCategory(strings.ToLower(s))
		if err != nil {
			warning = fmt.Sprintf("%s: unknown category %q, defaulting to standard", rowLabel, s)
		} else {
			category = parsed
		}
	}

	return model.NewCargoItem(id, weightT*1000.0, length, width, height, category), "", warning
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func importFromRows(rows [][]string, rowWord string, warnings []string) CargoList {
	out := CargoList{Warnings: warnings}

	mapping, hasHeader := detectColumns(rows[0])
	start := 0
	if hasHeader {
		start = 1
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("%s %d", rowWord, i+1)
		item, errMsg, warning := parseRow(row, mapping, rowLabel, len(out.Items))
		if errMsg != "" {
			out.Warnings = append(out.Warnings, errMsg)
			continue
		}
		if warning != "" {
			out.Warnings = append(out.Warnings, warning)
		}
		out.Items = append(out.Items, item)
	}
	return out
}

// ImportCargoCSV imports cargo items from a CSV file with automatic
// delimiter detection and header-alias column mapping.
func ImportCargoCSV(path string) (CargoList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CargoList{}, fmt.Errorf("opening cargo CSV: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return CargoList{}, fmt.Errorf("%s: file is empty", path)
	}

	var warnings []string
	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		name := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("detected %s delimiter", name))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return CargoList{}, fmt.Errorf("reading cargo CSV: %w", err)
	}
	if len(records) == 0 {
		return CargoList{}, fmt.Errorf("%s: file is empty", path)
	}
	return importFromRows(records, "line", warnings), nil
}

// ImportCargoXLSX imports cargo items from the first sheet of an Excel
// workbook, using the same column mapping as the CSV importer.
func ImportCargoXLSX(path string) (CargoList, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return CargoList{}, fmt.Errorf("opening cargo workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return CargoList{}, fmt.Errorf("%s: workbook has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return CargoList{}, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return CargoList{}, fmt.Errorf("%s: sheet %s is empty", path, sheets[0])
	}
	return importFromRows(rows, "row", nil), nil
}
