package geometry

// Orientation is one of the six axis permutations of an item's
// (length, width, height) onto a space's (width, depth, height).
type Orientation int

const (
	OrientLWH Orientation = iota
	OrientLHW
	OrientWLH
	OrientWHL
	OrientHLW
	OrientHWL
)

// Orientations lists all six permutations in enumeration order. The
// placement search tries them in this order and ties between equal-volume
// candidates resolve by first match, so the order is part of the contract.
var Orientations = [6]Orientation{
	OrientLWH, OrientLHW, OrientWLH, OrientWHL, OrientHLW, OrientHWL,
}

// Apply maps item dimensions (l, w, h) to the oriented footprint
// (width, depth, height).
func (o Orientation) Apply(l, w, h float64) (float64, float64, float64) {
	switch o {
	case OrientLWH:
		return l, w, h
	case OrientLHW:
		return l, h, w
	case OrientWLH:
		return w, l, h
	case OrientWHL:
		return w, h, l
	case OrientHLW:
		return h, l, w
	case OrientHWL:
		return h, w, l
	default:
		return l, w, h
	}
}

func (o Orientation) String() string {
	switch o {
	case OrientLWH:
		return "LWH"
	case OrientLHW:
		return "LHW"
	case OrientWLH:
		return "WLH"
	case OrientWHL:
		return "WHL"
	case OrientHLW:
		return "HLW"
	case OrientHWL:
		return "HWL"
	default:
		return "LWH"
	}
}
