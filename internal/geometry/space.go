// Package geometry provides the axis-aligned box model and the guillotine
// split operation used by the placement engine.
package geometry

// Space is a free axis-aligned box inside a bin. X/Y/Z is the
// bottom-left-back corner; Width, Depth and Height extend along the
// ship's length, breadth and vertical axes respectively.
type Space struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

// Volume returns the box volume.
func (s Space) Volume() float64 {
	return s.Width * s.Depth * s.Height
}

// Fits reports whether a footprint of w x d x h fits inside the space.
func (s Space) Fits(w, d, h float64) bool {
	return w <= s.Width && d <= s.Depth && h <= s.Height
}

// Split partitions the space around an item of w x d x h placed at the
// space's origin and returns the residual free spaces, in fixed order:
//
//   - right: leftover width, full depth and height of the original
//   - back:  leftover depth, item's width, full height
//   - top:   leftover height, item's width and depth only
//
// The split order determines which residuals stay largest and must not
// change, or placement outcomes drift. The original space is consumed;
// zero residuals are produced when the item fills an axis exactly.
func (s Space) Split(w, d, h float64) []Space {
	var out []Space
	if s.Width > w {
		out = append(out, Space{
			X:      s.X + w,
			Y:      s.Y,
			Z:      s.Z,
			Width:  s.Width - w,
			Depth:  s.Depth,
			Height: s.Height,
		})
	}
	if s.Depth > d {
		out = append(out, Space{
			X:      s.X,
			Y:      s.Y + d,
			Z:      s.Z,
			Width:  w,
			Depth:  s.Depth - d,
			Height: s.Height,
		})
	}
	if s.Height > h {
		out = append(out, Space{
			X:      s.X,
			Y:      s.Y,
			Z:      s.Z + h,
			Width:  w,
			Depth:  d,
			Height: s.Height - h,
		})
	}
	return out
}
