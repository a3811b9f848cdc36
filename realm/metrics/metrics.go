// Package metrics exposes store activity as Prometheus metrics. Watch a
// store and the counters move with every committed mutation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rayners/fvtt-realms-and-reaches/realm"
)

// Metrics holds the realm metric family. One Metrics instance can watch any
// number of stores; the Regions gauge is labeled by store scope.
type Metrics struct {
	RegionsCreated prometheus.Counter
	RegionsUpdated prometheus.Counter
	RegionsDeleted prometheus.Counter
	Regions        *prometheus.GaugeVec
}

// New registers the realm metric family with reg and returns the holder.
// Hosts typically pass prometheus.DefaultRegisterer; tests pass their own
// registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RegionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "realms_regions_created_total",
			Help: "Total number of regions created or inserted",
		}),
		RegionsUpdated: factory.NewCounter(prometheus.CounterOpts{
			Name: "realms_regions_updated_total",
			Help: "Total number of region updates",
		}),
		RegionsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "realms_regions_deleted_total",
			Help: "Total number of regions deleted",
		}),
		Regions: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "realms_regions",
			Help: "Regions currently stored, by scope",
		}, []string{"scope"}),
	}
}

// Watch subscribes m to s and primes the gauge with the store's current
// size. The returned observer can be handed to s.Unsubscribe to stop
// tracking.
func (m *Metrics) Watch(s *realm.Store) realm.Observer {
	obs := &storeObserver{metrics: m, store: s}
	s.Subscribe(obs)
	obs.sync()
	return obs
}

type storeObserver struct {
	metrics *Metrics
	store   *realm.Store
}

func (o *storeObserver) OnChange(c realm.Change) {
	switch c.Action {
	case realm.ActionCreate:
		o.metrics.RegionsCreated.Inc()
	case realm.ActionUpdate:
		o.metrics.RegionsUpdated.Inc()
	case realm.ActionDelete:
		o.metrics.RegionsDeleted.Inc()
	}
	o.sync()
}

// sync aligns the gauge with the store's real size, covering bulk paths
// like Clear and import-replace without per-action bookkeeping.
func (o *storeObserver) sync() {
	o.metrics.Regions.WithLabelValues(o.store.Scope()).Set(float64(o.store.Len()))
}
