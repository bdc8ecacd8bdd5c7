package model

// Algorithm selects the placement strategy.
type Algorithm string

const (
	AlgorithmGuillotine3D Algorithm = "3d"   // 3-D guillotine best-fit (default)
	AlgorithmShelf2D      Algorithm = "2d"   // 2-D shelf packing, weight-descending
	AlgorithmAuto         Algorithm = "auto" // run both, keep the better plan
)

// StowSettings holds placement policy and constraint limits.
//
// The three-bin layout (forward hold, aft hold, deck) is fixed; the
// ratios below control its proportions and weight shares.
type StowSettings struct {
	Algorithm Algorithm `json:"algorithm"`

	// Bin geometry as a proportion of ship dimensions
	HoldLengthRatio float64 `json:"hold_length_ratio"` // each hold's share of ship length
	HoldDepthRatio  float64 `json:"hold_depth_ratio"`  // hold breadth share, leaves room for side tanks
	HoldHeight      float64 `json:"hold_height_m"`
	DeckHeight      float64 `json:"deck_height_m"` // lower stacking on deck

	// Bin weight capacities as a share of ship max weight
	HoldWeightShare float64 `json:"hold_weight_share"`
	DeckWeightShare float64 `json:"deck_weight_share"`

	// Free-space bookkeeping soft cap per bin
	MaxFreeSpaces int `json:"max_free_spaces"`

	// Hard constraint limits
	MaxPointLoad        float64 `json:"max_point_load"`        // tonnes per square metre
	MinHazmatSeparation float64 `json:"min_hazmat_separation"` // metres between hazardous items
	MaxDeckLoadRatio    float64 `json:"max_deck_load_ratio"`   // deck weight as share of ship max

	// Advisory thresholds
	FragileDepthLimit float64 `json:"fragile_depth_limit"` // metres below waterline before warning
}

// DefaultSettings returns the stock CargoForge policy.
func DefaultSettings() StowSettings {
	return StowSettings{
		Algorithm:           AlgorithmGuillotine3D,
		HoldLengthRatio:     0.3,
		HoldDepthRatio:      0.8,
		HoldHeight:          8.0,
		DeckHeight:          4.0,
		HoldWeightShare:     0.3,
		DeckWeightShare:     0.4,
		MaxFreeSpaces:       1000,
		MaxPointLoad:        1000.0,
		MinHazmatSeparation: 3.0,
		MaxDeckLoadRatio:    0.3,
		FragileDepthLimit:   -5.0,
	}
}

// ParseAlgorithm converts a CLI algorithm string.
func ParseAlgorithm(s string) (Algorithm, bool) {
	switch Algorithm(s) {
	case AlgorithmGuillotine3D, AlgorithmShelf2D, AlgorithmAuto:
		return Algorithm(s), true
	default:
		return "", false
	}
}
