package geometry

import "encoding/json"

// Each kind serializes only its own fields, so documents stay free of
// meaningless zero values from the union's inactive arms.

type polygonJSON struct {
	Type   Type      `json:"type"`
	Points []float64 `json:"points"`
}

type rectangleJSON struct {
	Type     Type    `json:"type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
}

type circleJSON struct {
	Type   Type    `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// geometryJSON is the union of all fields, used for decoding.
type geometryJSON struct {
	Type     Type      `json:"type"`
	Points   []float64 `json:"points"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	Rotation float64   `json:"rotation"`
	Radius   float64   `json:"radius"`
}

// MarshalJSON implements json.Marshaler.
func (g Geometry) MarshalJSON() ([]byte, error) {
	switch g.Type {
	case TypePolygon:
		pts := g.Points
		if pts == nil {
			pts = []float64{}
		}
		return json.Marshal(polygonJSON{Type: g.Type, Points: pts})
	case TypeRectangle:
		return json.Marshal(rectangleJSON{
			Type: g.Type, X: g.X, Y: g.Y,
			Width: g.Width, Height: g.Height, Rotation: g.Rotation,
		})
	case TypeCircle:
		return json.Marshal(circleJSON{Type: g.Type, X: g.X, Y: g.Y, Radius: g.Radius})
	default:
		// Unknown kinds round-trip their type tag and nothing else.
		return json.Marshal(struct {
			Type Type `json:"type"`
		}{g.Type})
	}
}

// UnmarshalJSON implements json.Unmarshaler. Fields that do not belong to
// the decoded kind are discarded.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	var raw geometryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw.Type {
	case TypePolygon:
		*g = Geometry{Type: raw.Type, Points: raw.Points}
	case TypeRectangle:
		*g = Geometry{
			Type: raw.Type, X: raw.X, Y: raw.Y,
			Width: raw.Width, Height: raw.Height, Rotation: raw.Rotation,
		}
	case TypeCircle:
		*g = Geometry{Type: raw.Type, X: raw.X, Y: raw.Y, Radius: raw.Radius}
	default:
		*g = Geometry{Type: raw.Type}
	}
	return nil
}
