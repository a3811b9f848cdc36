package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayners/fvtt-realms-and-reaches/internal/util"
	"github.com/rayners/fvtt-realms-and-reaches/realm"
	"github.com/rayners/fvtt-realms-and-reaches/realm/geometry"
	"github.com/rayners/fvtt-realms-and-reaches/realm/tags"
)

func TestMetricsFollowStoreLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	s := realm.NewStore("scene-1", tags.NewRegistry())
	m.Watch(s)

	r, err := s.Create("A", geometry.Circle(0, 0, 1), nil)
	require.NoError(t, err)
	_, err = s.Create("B", geometry.Circle(5, 5, 1), nil)
	require.NoError(t, err)
	require.NoError(t, s.Update(r.ID, realm.Patch{Name: util.Ptr("A2")}))
	s.Delete(r.ID)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RegionsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RegionsUpdated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RegionsDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Regions.WithLabelValues("scene-1")))
}

func TestMetricsGaugeTracksBulkChanges(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	s := realm.NewStore("scene-2", tags.NewRegistry())
	m.Watch(s)

	s.Create("A", geometry.Circle(0, 0, 1), nil)
	s.Create("B", geometry.Circle(0, 0, 1), nil)
	s.Clear()

	assert.Equal(t, 0.0, testutil.ToFloat64(m.Regions.WithLabelValues("scene-2")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RegionsDeleted), "clear deletes per region")
}

func TestMetricsWatchPrimesGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	s := realm.NewStore("scene-3", tags.NewRegistry())
	s.Create("existing", geometry.Circle(0, 0, 1), nil)

	m.Watch(s)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Regions.WithLabelValues("scene-3")))
}

func TestMetricsUnwatch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	s := realm.NewStore("scene-4", tags.NewRegistry())
	obs := m.Watch(s)
	s.Create("A", geometry.Circle(0, 0, 1), nil)

	s.Unsubscribe(obs)
	s.Create("B", geometry.Circle(0, 0, 1), nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RegionsCreated))
}

func TestMetricsRegisterWithCustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	s := realm.NewStore("scene-5", tags.NewRegistry())
	m.Watch(s)
	s.Create("A", geometry.Circle(0, 0, 1), nil)

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "realms_regions")
	assert.Contains(t, names, "realms_regions_created_total")
	assert.Contains(t, names, "realms_regions_updated_total")
	assert.Contains(t, names, "realms_regions_deleted_total")
}
