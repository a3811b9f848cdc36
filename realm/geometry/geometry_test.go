package geometry

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygonContains(t *testing.T) {
	square := Polygon(0, 0, 50, 0, 50, 50, 0, 50)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 25, 25, true},
		{"near corner inside", 1, 1, true},
		{"outside right", 60, 25, false},
		{"outside above", 25, -10, false},
		{"far away", 250, 250, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, square.Contains(tt.x, tt.y))
		})
	}
}

func TestPolygonContainsConcave(t *testing.T) {
	// L-shape: the notch at the top right is outside the polygon.
	l := Polygon(0, 0, 40, 0, 40, 20, 20, 20, 20, 40, 0, 40)

	assert.True(t, l.Contains(10, 10), "lower arm")
	assert.True(t, l.Contains(10, 30), "upper arm")
	assert.True(t, l.Contains(30, 10), "right arm")
	assert.False(t, l.Contains(30, 30), "notch")
}

func TestPolygonCentroidContained(t *testing.T) {
	shapes := []struct {
		name string
		g    Geometry
	}{
		{"triangle", Polygon(0, 0, 10, 0, 5, 8)},
		{"square", Polygon(0, 0, 50, 0, 50, 50, 0, 50)},
		{"pentagon", Polygon(0, -10, 9.5, -3, 5.9, 8, -5.9, 8, -9.5, -3)},
	}

	for _, tt := range shapes {
		t.Run(tt.name, func(t *testing.T) {
			n := len(tt.g.Points) / 2
			var cx, cy float64
			for i := 0; i < n; i++ {
				cx += tt.g.Points[2*i]
				cy += tt.g.Points[2*i+1]
			}
			cx /= float64(n)
			cy /= float64(n)

			assert.True(t, tt.g.Contains(cx, cy), "vertex centroid must be inside a convex polygon")
		})
	}
}

func TestPolygonDegenerate(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
	}{
		{"empty", Polygon()},
		{"one vertex", Polygon(5, 5)},
		{"two vertices", Polygon(0, 0, 10, 10)},
		{"odd trailing coordinate", Polygon(0, 0, 10, 10, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.g.Contains(5, 5))
			b := tt.g.Bounds()
			assert.GreaterOrEqual(t, b.Width, 0.0)
			assert.GreaterOrEqual(t, b.Height, 0.0)
		})
	}
}

func TestRectangleContains(t *testing.T) {
	r := Rectangle(50, 50, 20, 10, 0)

	assert.True(t, r.Contains(50, 50), "center")
	assert.True(t, r.Contains(59, 54), "inside near corner")
	assert.True(t, r.Contains(60, 55), "boundary corner included")
	assert.False(t, r.Contains(61, 50), "outside width")
	assert.False(t, r.Contains(50, 56), "outside height")
}

func TestRectangleContainsRotated(t *testing.T) {
	// Long thin rectangle rotated 45 degrees around the origin.
	r := Rectangle(0, 0, 10, 2, math.Pi/4)

	d := 3 * math.Sqrt2 / 2 // point 3 units along the rotated long axis
	assert.True(t, r.Contains(d, d), "point along rotated long axis")
	assert.False(t, r.Contains(3, 0), "point on unrotated axis falls outside the thin extent")
	assert.True(t, r.Contains(0, 0), "center unaffected by rotation")
}

func TestRectangleFullRotationMatchesUnrotated(t *testing.T) {
	aligned := Rectangle(10, 10, 8, 4, 0)
	spun := Rectangle(10, 10, 8, 4, 2*math.Pi)

	for _, p := range [][2]float64{{10, 10}, {13.9, 11.9}, {14.5, 10}, {10, 12.5}} {
		assert.Equal(t, aligned.Contains(p[0], p[1]), spun.Contains(p[0], p[1]),
			"full turn must behave like no rotation at (%v, %v)", p[0], p[1])
	}
}

func TestCircleContains(t *testing.T) {
	c := Circle(75, 75, 25)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 75, 75, true},
		{"inside", 80, 80, true},
		{"on boundary", 100, 75, true},
		{"just outside", 100.001, 75, false},
		{"far away", 250, 250, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Contains(tt.x, tt.y))
		})
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		want Box
	}{
		{
			name: "polygon min max",
			g:    Polygon(10, 20, 50, 5, 30, 60),
			want: Box{X: 10, Y: 5, Width: 40, Height: 55},
		},
		{
			name: "empty polygon zero box at origin",
			g:    Polygon(),
			want: Box{},
		},
		{
			name: "single vertex zero size at vertex",
			g:    Polygon(7, 9),
			want: Box{X: 7, Y: 9, Width: 0, Height: 0},
		},
		{
			name: "rectangle center and extents",
			g:    Rectangle(50, 50, 20, 10, 0),
			want: Box{X: 40, Y: 45, Width: 20, Height: 10},
		},
		{
			name: "rectangle bounds ignore rotation",
			g:    Rectangle(50, 50, 20, 10, math.Pi / 4),
			want: Box{X: 40, Y: 45, Width: 20, Height: 10},
		},
		{
			name: "circle center and radius",
			g:    Circle(75, 75, 25),
			want: Box{X: 50, Y: 50, Width: 50, Height: 50},
		},
		{
			name: "unknown type zero box",
			g:    Geometry{Type: "hexagon"},
			want: Box{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.g.Bounds())
		})
	}
}

func TestBoundsNeverNegative(t *testing.T) {
	shapes := []Geometry{
		Polygon(0, 0, 50, 0, 50, 50, 0, 50),
		Polygon(),
		Rectangle(0, 0, -20, -10, 0),
		Circle(0, 0, -5),
		{Type: "unknown"},
	}

	for _, g := range shapes {
		b := g.Bounds()
		assert.GreaterOrEqual(t, b.Width, 0.0, "geometry %v", g.Type)
		assert.GreaterOrEqual(t, b.Height, 0.0, "geometry %v", g.Type)
	}
}

func TestUnknownGeometryInert(t *testing.T) {
	g := Geometry{Type: "hexagon", X: 10, Y: 10, Radius: 100}

	assert.False(t, g.Contains(10, 10))
	assert.Equal(t, Box{}, g.Bounds())
}

func TestBoxContains(t *testing.T) {
	b := Box{X: 0, Y: 0, Width: 10, Height: 10}

	assert.True(t, b.Contains(5, 5))
	assert.True(t, b.Contains(0, 0), "top-left boundary")
	assert.True(t, b.Contains(10, 10), "bottom-right boundary")
	assert.False(t, b.Contains(10.1, 5))
	assert.False(t, b.Contains(-0.1, 5))
}

func TestBoxIntersects(t *testing.T) {
	base := Box{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name  string
		other Box
		want  bool
	}{
		{"overlapping", Box{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Box{X: 2, Y: 2, Width: 3, Height: 3}, true},
		{"touching right edge", Box{X: 10, Y: 0, Width: 5, Height: 5}, true},
		{"touching corner", Box{X: 10, Y: 10, Width: 5, Height: 5}, true},
		{"fully right", Box{X: 10.5, Y: 0, Width: 5, Height: 5}, false},
		{"fully below", Box{X: 0, Y: 11, Width: 5, Height: 5}, false},
		{"fully left", Box{X: -6, Y: 0, Width: 5, Height: 5}, false},
		{"fully above", Box{X: 0, Y: -6, Width: 5, Height: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base), "intersection must be symmetric")
		})
	}
}

func TestGeometryJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
	}{
		{"polygon", Polygon(0, 0, 50, 0, 50, 50, 0, 50)},
		{"rectangle", Rectangle(50, 50, 20, 10, 0.5)},
		{"circle", Circle(75, 75, 25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.g)
			require.NoError(t, err)

			var back Geometry
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tt.g, back)

			again, err := json.Marshal(back)
			require.NoError(t, err)
			assert.JSONEq(t, string(data), string(again))
		})
	}
}

func TestGeometryJSONShapes(t *testing.T) {
	data, err := json.Marshal(Circle(1, 2, 3))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"circle","x":1,"y":2,"radius":3}`, string(data))

	data, err = json.Marshal(Rectangle(1, 2, 3, 4, 0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"rectangle","x":1,"y":2,"width":3,"height":4,"rotation":0}`, string(data))

	data, err = json.Marshal(Polygon())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"polygon","points":[]}`, string(data))
}

func TestGeometryJSONDiscardsForeignFields(t *testing.T) {
	var g Geometry
	require.NoError(t, json.Unmarshal(
		[]byte(`{"type":"circle","x":5,"y":6,"radius":7,"width":99,"points":[1,2,3,4,5,6]}`), &g))

	assert.Equal(t, Circle(5, 6, 7), g)
	assert.Nil(t, g.Points)
	assert.Zero(t, g.Width)
}
