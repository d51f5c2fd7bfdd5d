// Package metrics provides observability consumers of the gating model's
// observer contracts: a Prometheus collector and an expvar snapshot
// recorder. Both attach to gates and forests through SetState and count
// mutations as they are observed; neither blocks or transforms a change.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"cytogate/pkg/gating"
)

// Collector exports gating model mutation activity to Prometheus. It
// implements gating.GateState, gating.GateTreesState, and
// prometheus.Collector. One collector may watch any number of gates and
// forests; counters aggregate across all of them.
//
// Counter increments are safe for concurrent use, but the model itself is
// not; the usual single-thread-or-external-sync contract applies to the
// mutations that drive the collector.
type Collector struct {
	mutations *prometheus.CounterVec
	roots     prometheus.Gauge

	mu         sync.Mutex
	rootCounts map[*gating.GateTrees]int
}

var (
	_ gating.GateState      = (*Collector)(nil)
	_ gating.GateTreesState = (*Collector)(nil)
	_ prometheus.Collector  = (*Collector)(nil)
)

// NewCollector constructs a collector. namespace prefixes the metric names
// and may be empty.
func NewCollector(namespace string) *Collector {
	return &Collector{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gating",
			Name:      "mutations_total",
			Help:      "Observed gating model mutations by operation.",
		}, []string{"operation"}),
		roots: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "gating",
			Name:      "forest_roots",
			Help:      "Root gates currently attached to observed forests.",
		}),
		rootCounts: make(map[*gating.GateTrees]int),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.mutations.Describe(ch)
	c.roots.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mutations.Collect(ch)
	c.roots.Collect(ch)
}

func (c *Collector) observe(operation string) {
	c.mutations.WithLabelValues(operation).Inc()
}

func (c *Collector) GateOriginalIDSet(gating.Gate, string) { c.observe(gating.OpGateOriginalIDSet) }
func (c *Collector) GateNameSet(gating.Gate, string)       { c.observe(gating.OpGateNameSet) }
func (c *Collector) GateDescriptionSet(gating.Gate, string) {
	c.observe(gating.OpGateDescriptionSet)
}
func (c *Collector) GateNotesSet(gating.Gate, string) { c.observe(gating.OpGateNotesSet) }
func (c *Collector) GateGatingMethodSet(gating.Gate, gating.GatingMethod) {
	c.observe(gating.OpGateGatingMethodSet)
}
func (c *Collector) GateReportPrioritySet(gating.Gate, uint32) {
	c.observe(gating.OpGateReportPrioritySet)
}
func (c *Collector) GateDimensionParameterNameSet(gating.Gate, int, string) {
	c.observe(gating.OpGateDimensionParameterNameSet)
}
func (c *Collector) GateDimensionTransformSet(gating.Gate, int, gating.Transform) {
	c.observe(gating.OpGateDimensionTransformSet)
}
func (c *Collector) GateClusteringParameterAppended(gating.Gate, string, gating.Transform) {
	c.observe(gating.OpGateClusteringParameterAppended)
}
func (c *Collector) GateClusteringParameterRemoved(gating.Gate, string) {
	c.observe(gating.OpGateClusteringParameterRemoved)
}
func (c *Collector) GateClusteringParametersCleared(gating.Gate) {
	c.observe(gating.OpGateClusteringParametersCleared)
}
func (c *Collector) GateClusteringParameterTransformSet(gating.Gate, string, gating.Transform) {
	c.observe(gating.OpGateClusteringParamTransformSet)
}
func (c *Collector) GateChildAppended(gating.Gate, gating.Gate) {
	c.observe(gating.OpGateChildAppended)
}
func (c *Collector) GateChildRemoved(gating.Gate, int, gating.Gate) {
	c.observe(gating.OpGateChildRemoved)
}
func (c *Collector) GateChildrenCleared(gating.Gate) { c.observe(gating.OpGateChildrenCleared) }
func (c *Collector) GateChildNegatedSet(gating.Gate, int, bool) {
	c.observe(gating.OpGateChildNegatedSet)
}
func (c *Collector) GateQuadrantAppended(gating.Gate, string) {
	c.observe(gating.OpGateQuadrantAppended)
}

func (c *Collector) GateTreesNameSet(*gating.GateTrees, string) {
	c.observe(gating.OpGateTreesNameSet)
}
func (c *Collector) GateTreesDescriptionSet(*gating.GateTrees, string) {
	c.observe(gating.OpGateTreesDescriptionSet)
}
func (c *Collector) GateTreesNotesSet(*gating.GateTrees, string) {
	c.observe(gating.OpGateTreesNotesSet)
}
func (c *Collector) GateTreesFileNameSet(*gating.GateTrees, string) {
	c.observe(gating.OpGateTreesFileNameSet)
}
func (c *Collector) GateTreesFCSFileNameSet(*gating.GateTrees, string) {
	c.observe(gating.OpGateTreesFCSFileNameSet)
}
func (c *Collector) GateTreesCreatorSoftwareNameSet(*gating.GateTrees, string) {
	c.observe(gating.OpGateTreesCreatorSoftwareNameSet)
}

func (c *Collector) GateTreesRootAppended(trees *gating.GateTrees, _ gating.Gate) {
	c.observe(gating.OpGateTreesRootAppended)
	c.mu.Lock()
	c.rootCounts[trees]++
	c.mu.Unlock()
	c.roots.Inc()
}

func (c *Collector) GateTreesRootRemoved(trees *gating.GateTrees, _ int, _ gating.Gate) {
	c.observe(gating.OpGateTreesRootRemoved)
	c.mu.Lock()
	c.rootCounts[trees]--
	c.mu.Unlock()
	c.roots.Dec()
}

func (c *Collector) GateTreesRootsCleared(trees *gating.GateTrees) {
	c.observe(gating.OpGateTreesRootsCleared)
	// The forest has already applied the clear, so the removed count comes
	// from the per-forest tally, not the forest itself.
	c.mu.Lock()
	removed := c.rootCounts[trees]
	delete(c.rootCounts, trees)
	c.mu.Unlock()
	c.roots.Sub(float64(removed))
}
