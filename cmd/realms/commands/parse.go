package commands

import (
	"math"
	"strconv"
	"strings"

	"github.com/rayners/fvtt-realms-and-reaches/errors"
	"github.com/rayners/fvtt-realms-and-reaches/realm/geometry"
)

// parseFloats splits a comma-separated coordinate list into floats.
func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.Newf("invalid coordinate %q in %q", part, s)
		}
		out = append(out, f)
	}
	return out, nil
}

// parsePoint parses "X,Y".
func parsePoint(s string) (x, y float64, err error) {
	coords, err := parseFloats(s)
	if err != nil {
		return 0, 0, err
	}
	if len(coords) != 2 {
		return 0, 0, errors.Newf("point must be X,Y, got %q", s)
	}
	return coords[0], coords[1], nil
}

// parseBounds parses "X,Y,W,H" into a bounding box anchored at its
// top-left corner.
func parseBounds(s string) (geometry.Box, error) {
	coords, err := parseFloats(s)
	if err != nil {
		return geometry.Box{}, err
	}
	if len(coords) != 4 {
		return geometry.Box{}, errors.Newf("bounds must be X,Y,W,H, got %q", s)
	}
	return geometry.Box{X: coords[0], Y: coords[1], Width: coords[2], Height: coords[3]}, nil
}

// parseCircle parses "X,Y,R" into a circle centered at (X, Y).
func parseCircle(s string) (geometry.Geometry, error) {
	coords, err := parseFloats(s)
	if err != nil {
		return geometry.Geometry{}, err
	}
	if len(coords) != 3 {
		return geometry.Geometry{}, errors.Newf("circle must be X,Y,R, got %q", s)
	}
	return geometry.Circle(coords[0], coords[1], coords[2]), nil
}

// parseRect parses "X,Y,W,H" or "X,Y,W,H,ROT" into a rectangle centered at
// (X, Y). ROT is in degrees.
func parseRect(s string) (geometry.Geometry, error) {
	coords, err := parseFloats(s)
	if err != nil {
		return geometry.Geometry{}, err
	}
	if len(coords) != 4 && len(coords) != 5 {
		return geometry.Geometry{}, errors.Newf("rectangle must be X,Y,W,H or X,Y,W,H,ROT, got %q", s)
	}
	rotation := 0.0
	if len(coords) == 5 {
		rotation = coords[4] * math.Pi / 180
	}
	return geometry.Rectangle(coords[0], coords[1], coords[2], coords[3], rotation), nil
}

// parsePolygon parses "X1,Y1,X2,Y2,..." into a polygon. At least three
// vertices are required.
func parsePolygon(s string) (geometry.Geometry, error) {
	coords, err := parseFloats(s)
	if err != nil {
		return geometry.Geometry{}, err
	}
	if len(coords)%2 != 0 {
		return geometry.Geometry{}, errors.Newf("polygon needs X,Y pairs, got %d coordinates", len(coords))
	}
	if len(coords) < 6 {
		return geometry.Geometry{}, errors.Newf("polygon needs at least 3 vertices, got %d", len(coords)/2)
	}
	return geometry.Polygon(coords...), nil
}
