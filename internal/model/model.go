// Package model defines the core data types shared across CargoForge:
// cargo items, the ship aggregate, and analysis inputs.
package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Category classifies a cargo item for constraint handling.
type Category string

const (
	CategoryStandard  Category = "standard"
	CategoryHazardous Category = "hazardous"
	CategoryReefer    Category = "reefer"
	CategoryFragile   Category = "fragile"
	CategoryHeavy     Category = "heavy"
)

// ParseCategory converts a manifest category string to a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryStandard, CategoryHazardous, CategoryReefer, CategoryFragile, CategoryHeavy:
		return Category(s), nil
	default:
		return "", fmt.Errorf("unknown cargo category %q", s)
	}
}

func (c Category) String() string {
	return string(c)
}

// Position is a committed placement coordinate: the bottom-left-back
// corner of the item's box in ship coordinates (metres).
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// CargoItem represents a single piece of cargo on the manifest.
// Dimensions are metres, weight is kilograms. Position is nil until the
// placement engine commits the item; it is written at most once per run.
type CargoItem struct {
	ID       string    `json:"id"`
	Weight   float64   `json:"weight_kg"`
	Length   float64   `json:"length_m"`
	Width    float64   `json:"width_m"`
	Height   float64   `json:"height_m"`
	Category Category  `json:"category"`
	Position *Position `json:"position,omitempty"`
}

// NewCargoItem builds a cargo item. An empty id gets a short generated one.
func NewCargoItem(id string, weightKg, length, width, height float64, category Category) CargoItem {
	if id == "" {
		id = uuid.New().String()[:8]
	}
	return CargoItem{
		ID:       id,
		Weight:   weightKg,
		Length:   length,
		Width:    width,
		Height:   height,
		Category: category,
	}
}

// Placed reports whether the item has a committed position.
func (c *CargoItem) Placed() bool {
	return c.Position != nil
}

// Volume returns the item volume in cubic metres.
func (c CargoItem) Volume() float64 {
	return c.Length * c.Width * c.Height
}

// FootprintArea returns the base area (length x width) in square metres.
func (c CargoItem) FootprintArea() float64 {
	return c.Length * c.Width
}

// Ship is the manifest aggregate: hull particulars plus the cargo list.
// The placement engine only writes item positions; everything else is
// read-only to the core.
type Ship struct {
	Name            string      `json:"name,omitempty"`
	Length          float64     `json:"length_m"`
	Width           float64     `json:"width_m"`
	MaxWeight       float64     `json:"max_weight_kg"`
	LightshipWeight float64     `json:"lightship_weight_kg"`
	LightshipKG     float64     `json:"lightship_kg_m"` // vertical centre of the lightship mass, metres above keel
	Cargo           []CargoItem `json:"cargo"`
}

// Validate checks that the ship particulars are usable.
func (s *Ship) Validate() error {
	if s.Length <= 0 {
		return fmt.Errorf("ship length must be positive, got %.2f", s.Length)
	}
	if s.Width <= 0 {
		return fmt.Errorf("ship width must be positive, got %.2f", s.Width)
	}
	if s.MaxWeight <= 0 {
		return fmt.Errorf("ship max weight must be positive, got %.2f", s.MaxWeight)
	}
	if s.LightshipWeight < 0 {
		return fmt.Errorf("lightship weight must not be negative, got %.2f", s.LightshipWeight)
	}
	for i := range s.Cargo {
		c := &s.Cargo[i]
		if c.Length <= 0 || c.Width <= 0 || c.Height <= 0 {
			return fmt.Errorf("cargo %s: dimensions must be positive", c.ID)
		}
		if c.Weight <= 0 {
			return fmt.Errorf("cargo %s: weight must be positive", c.ID)
		}
	}
	return nil
}

// TotalCargoWeight sums the weight of every manifest item, placed or not.
func (s *Ship) TotalCargoWeight() float64 {
	var total float64
	for i := range s.Cargo {
		total += s.Cargo[i].Weight
	}
	return total
}

// ResetPositions clears all committed positions, allowing a fresh run.
func (s *Ship) ResetPositions() {
	for i := range s.Cargo {
		s.Cargo[i].Position = nil
	}
}

// Clone returns a deep copy of the ship and its cargo list. Placement
// runs on a clone never disturb the original manifest.
func (s *Ship) Clone() *Ship {
	cp := *s
	cp.Cargo = make([]CargoItem, len(s.Cargo))
	copy(cp.Cargo, s.Cargo)
	for i := range cp.Cargo {
		if cp.Cargo[i].Position != nil {
			pos := *cp.Cargo[i].Position
			cp.Cargo[i].Position = &pos
		}
	}
	return &cp
}
