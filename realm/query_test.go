package realm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayners/fvtt-realms-and-reaches/realm/geometry"
)

func TestQueryPointScenario(t *testing.T) {
	s := newTestStore(t)

	forest, err := s.Create("Forest", geometry.Polygon(0, 0, 50, 0, 50, 50, 0, 50), []string{"biome:forest"})
	require.NoError(t, err)
	desert, err := s.Create("Desert", geometry.Circle(75, 75, 25), []string{"biome:desert"})
	require.NoError(t, err)

	hits := s.QueryPoint(25, 25)
	require.Len(t, hits, 1)
	assert.Equal(t, forest.ID, hits[0].ID)

	assert.Empty(t, s.QueryPoint(250, 250))

	hits = s.QueryTags([]string{"biome:desert"})
	require.Len(t, hits, 1)
	assert.Equal(t, desert.ID, hits[0].ID)
}

func TestQueryPointBoundsPrefilter(t *testing.T) {
	s := newTestStore(t)

	// Thin rectangle rotated 45 degrees. Rectangle bounds ignore rotation,
	// so the box spans x in [-5,5], y in [-1,1]; the rotated shape itself
	// reaches out to (2.12, 2.12) but the box check culls that point before
	// exact containment ever runs.
	_, err := s.Create("Spinner", geometry.Rectangle(0, 0, 10, 2, math.Pi/4), nil)
	require.NoError(t, err)

	d := 3 * math.Sqrt2 / 2
	assert.Empty(t, s.QueryPoint(d, d))
	assert.Len(t, s.QueryPoint(0.5, 0.5), 1, "inside both box and shape")
}

func TestQueryPointOverlapping(t *testing.T) {
	s := newTestStore(t)
	a, _ := s.Create("A", geometry.Circle(0, 0, 10), nil)
	b, _ := s.Create("B", geometry.Rectangle(0, 0, 10, 10, 0), nil)

	hits := s.QueryPoint(1, 1)
	require.Len(t, hits, 2)
	assert.Equal(t, a.ID, hits[0].ID, "results come back in insertion order")
	assert.Equal(t, b.ID, hits[1].ID)
}

func TestQueryBounds(t *testing.T) {
	s := newTestStore(t)
	sq, _ := s.Create("Square", geometry.Polygon(0, 0, 50, 0, 50, 50, 0, 50), nil)
	_, _ = s.Create("Far", geometry.Circle(500, 500, 10), nil)

	got := s.QueryBounds(geometry.Box{X: 40, Y: 40, Width: 20, Height: 20})
	require.Len(t, got, 1)
	assert.Equal(t, sq.ID, got[0].ID)

	got = s.QueryBounds(geometry.Box{X: 50, Y: 0, Width: 10, Height: 10})
	assert.Len(t, got, 1, "touching boxes intersect")

	assert.Empty(t, s.QueryBounds(geometry.Box{X: 200, Y: 200, Width: 5, Height: 5}))
}

func TestQueryTags(t *testing.T) {
	s := newTestStore(t)
	both, _ := s.Create("Both", geometry.Circle(0, 0, 1), []string{"biome:forest", "terrain:dense"})
	_, _ = s.Create("One", geometry.Circle(5, 5, 1), []string{"biome:forest"})

	assert.Len(t, s.QueryTags([]string{"biome:forest"}), 2)

	got := s.QueryTags([]string{"biome:forest", "terrain:dense"})
	require.Len(t, got, 1)
	assert.Equal(t, both.ID, got[0].ID, "required tags AND together")

	assert.Len(t, s.QueryTags(nil), 2, "empty requirement matches everything")
	assert.Empty(t, s.QueryTags([]string{"biome:fore"}), "matching is exact, not prefix")
}

func TestFindByTagKey(t *testing.T) {
	s := newTestStore(t)
	slow, _ := s.Create("Slow", geometry.Circle(0, 0, 1), []string{"travel_speed:0.5"})
	_, _ = s.Create("Plain", geometry.Circle(5, 5, 1), []string{"biome:forest"})

	got := s.FindByTagKey("travel_speed")
	require.Len(t, got, 1)
	assert.Equal(t, slow.ID, got[0].ID)

	assert.Empty(t, s.FindByTagKey("resources"))
}

func TestCompoundQuery(t *testing.T) {
	s := newTestStore(t)
	a, _ := s.Create("A", geometry.Circle(10, 10, 5), []string{"biome:forest"})
	b, _ := s.Create("B", geometry.Circle(20, 10, 5), []string{"biome:forest"})
	_, _ = s.Create("C", geometry.Circle(500, 500, 5), []string{"biome:forest"})
	_, _ = s.Create("D", geometry.Circle(15, 10, 5), []string{"biome:desert"})

	box := geometry.Box{X: 0, Y: 0, Width: 100, Height: 100}
	got := s.Query(Query{Tags: []string{"biome:forest"}, Bounds: &box})
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)

	got = s.Query(Query{Tags: []string{"biome:forest"}, Bounds: &box, Limit: 1})
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID, "limit truncates after filtering, preserving order")

	assert.Len(t, s.Query(Query{}), 4, "empty query matches everything")
}
