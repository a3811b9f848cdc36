// Package geometry provides the shape model for realm regions: polygons,
// rotatable rectangles, and circles, with pure containment tests and
// axis-aligned bounding boxes.
//
// Geometry is a closed tagged union. The Type field selects which of the
// remaining fields are meaningful; the constructors are the supported way
// to build values. A malformed or unknown geometry never panics: it
// contains no points and has zero bounds, so callers can hold partial
// shapes without special-casing.
package geometry

import "math"

// Type discriminates the geometry union.
type Type string

const (
	TypePolygon   Type = "polygon"
	TypeRectangle Type = "rectangle"
	TypeCircle    Type = "circle"
)

// Geometry is one shape on the plane. Exactly one kind is active,
// selected by Type:
//
//   - polygon: Points holds flat (x, y) vertex pairs
//   - rectangle: X/Y center, Width/Height extents, Rotation in radians
//   - circle: X/Y center, Radius
type Geometry struct {
	Type Type

	// Points holds flat coordinate pairs for polygons. Fewer than three
	// vertices is an empty shape. A trailing odd coordinate is ignored.
	Points []float64

	X        float64
	Y        float64
	Width    float64
	Height   float64
	Rotation float64
	Radius   float64
}

// Polygon builds a polygon from flat (x, y) coordinate pairs.
func Polygon(points ...float64) Geometry {
	return Geometry{Type: TypePolygon, Points: points}
}

// Rectangle builds a rectangle centered at (x, y). Rotation is in radians;
// pass 0 for an axis-aligned rectangle.
func Rectangle(x, y, width, height, rotation float64) Geometry {
	return Geometry{Type: TypeRectangle, X: x, Y: y, Width: width, Height: height, Rotation: rotation}
}

// Circle builds a circle centered at (x, y).
func Circle(x, y, radius float64) Geometry {
	return Geometry{Type: TypeCircle, X: x, Y: y, Radius: radius}
}

// Contains reports whether the point (x, y) lies inside the shape.
func (g Geometry) Contains(x, y float64) bool {
	switch g.Type {
	case TypePolygon:
		return polygonContains(g.Points, x, y)
	case TypeRectangle:
		return g.rectangleContains(x, y)
	case TypeCircle:
		dx := x - g.X
		dy := y - g.Y
		return dx*dx+dy*dy <= g.Radius*g.Radius
	default:
		return false
	}
}

// polygonContains ray-casts a horizontal ray from (x, y): each edge whose
// y-span the ray crosses toggles the inside flag when the crossing lies to
// the right of the test point.
func polygonContains(points []float64, x, y float64) bool {
	n := len(points) / 2
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := points[2*i], points[2*i+1]
		xj, yj := points[2*j], points[2*j+1]

		if (yi > y) != (yj > y) {
			crossX := (xj-xi)*(y-yi)/(yj-yi) + xi
			if x < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// rectangleContains rotates the test point into the rectangle's local frame
// by the inverse rotation, then applies a half-extent check.
func (g Geometry) rectangleContains(x, y float64) bool {
	dx := x - g.X
	dy := y - g.Y

	if g.Rotation != 0 {
		cos := math.Cos(-g.Rotation)
		sin := math.Sin(-g.Rotation)
		dx, dy = dx*cos-dy*sin, dx*sin+dy*cos
	}

	return math.Abs(dx) <= g.Width/2 && math.Abs(dy) <= g.Height/2
}

// Bounds returns the axis-aligned bounding box of the shape. Rectangle
// bounds deliberately ignore rotation; the box is the unrotated extent
// around the center. An empty polygon yields a zero box at the origin.
func (g Geometry) Bounds() Box {
	switch g.Type {
	case TypePolygon:
		return polygonBounds(g.Points)
	case TypeRectangle:
		w := math.Abs(g.Width)
		h := math.Abs(g.Height)
		return Box{X: g.X - w/2, Y: g.Y - h/2, Width: w, Height: h}
	case TypeCircle:
		r := math.Abs(g.Radius)
		return Box{X: g.X - r, Y: g.Y - r, Width: 2 * r, Height: 2 * r}
	default:
		return Box{}
	}
}

func polygonBounds(points []float64) Box {
	n := len(points) / 2
	if n == 0 {
		return Box{}
	}

	minX, minY := points[0], points[1]
	maxX, maxY := minX, minY
	for i := 1; i < n; i++ {
		x, y := points[2*i], points[2*i+1]
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return Box{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
