package geometry

// Box is an axis-aligned bounding box anchored at its top-left corner.
// It is the cheap pre-filter the store runs before exact containment.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether the point (x, y) lies within the box,
// boundary included.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

// Intersects reports whether two boxes overlap. Boxes that merely touch
// along an edge still intersect; only strict separation on an axis
// rules overlap out.
func (b Box) Intersects(o Box) bool {
	return !(b.X+b.Width < o.X || o.X+o.Width < b.X ||
		b.Y+b.Height < o.Y || o.Y+o.Height < b.Y)
}
