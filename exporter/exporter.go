// Package exporter adapts a tuio.Metrics snapshot into a
// prometheus.Collector, following the Describe/Collect shape used
// throughout the pack's Prometheus integrations: a fixed set of
// *prometheus.Desc built once, and Collect reading a live snapshot on
// every scrape rather than registering individual counters up front.
//
// Since this package imports tuio for the Metrics/Kind types, tuio
// cannot import exporter back; register the collector yourself once a
// Server exists:
//
//	srv, _ := tuio.NewServer(tuio.DefaultConfig(), nil)
//	prometheus.MustRegister(exporter.New(srv.Metrics()))
package exporter

import (
	"github.com/halvarsson/go-tuio"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tuio"

// Collector exposes a *tuio.Metrics instance as Prometheus metrics, one
// series per profile variant plus process-wide error counters.
type Collector struct {
	metrics *tuio.Metrics

	framesDispatched *prometheus.Desc
	entitiesAdded    *prometheus.Desc
	entitiesUpdated  *prometheus.Desc
	entitiesRemoved  *prometheus.Desc
	liveEntities     *prometheus.Desc

	decodeErrors   *prometheus.Desc
	setErrors      *prometheus.Desc
	listenerErrors *prometheus.Desc
}

// New builds a Collector reading from metrics. Register it with a
// prometheus.Registry (or prometheus.MustRegister) to expose it.
func New(metrics *tuio.Metrics) *Collector {
	variantLabels := []string{"variant"}
	return &Collector{
		metrics: metrics,

		framesDispatched: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "frames_dispatched_total"),
			"Number of frames dispatched to listeners, per profile variant.",
			variantLabels, nil),
		entitiesAdded: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "entities_added_total"),
			"Number of add events dispatched, per profile variant.",
			variantLabels, nil),
		entitiesUpdated: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "entities_updated_total"),
			"Number of update events dispatched, per profile variant.",
			variantLabels, nil),
		entitiesRemoved: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "entities_removed_total"),
			"Number of remove events dispatched, per profile variant.",
			variantLabels, nil),
		liveEntities: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "live_entities"),
			"Current number of live entities, per profile variant.",
			variantLabels, nil),

		decodeErrors: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "decode_errors_total"),
			"Number of OSC packets that failed to decode.",
			nil, nil),
		setErrors: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "set_errors_total"),
			"Number of malformed TUIO set messages encountered.",
			nil, nil),
		listenerErrors: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "listener_errors_total"),
			"Number of listener callbacks that panicked or errored.",
			nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.framesDispatched
	descs <- c.entitiesAdded
	descs <- c.entitiesUpdated
	descs <- c.entitiesRemoved
	descs <- c.liveEntities
	descs <- c.decodeErrors
	descs <- c.setErrors
	descs <- c.listenerErrors
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	snap := c.metrics.Snapshot()

	for _, v := range snap.Variants {
		label := v.Kind.String()
		metrics <- prometheus.MustNewConstMetric(c.framesDispatched, prometheus.CounterValue, float64(v.FramesDispatched), label)
		metrics <- prometheus.MustNewConstMetric(c.entitiesAdded, prometheus.CounterValue, float64(v.EntitiesAdded), label)
		metrics <- prometheus.MustNewConstMetric(c.entitiesUpdated, prometheus.CounterValue, float64(v.EntitiesUpdated), label)
		metrics <- prometheus.MustNewConstMetric(c.entitiesRemoved, prometheus.CounterValue, float64(v.EntitiesRemoved), label)
		metrics <- prometheus.MustNewConstMetric(c.liveEntities, prometheus.GaugeValue, float64(v.LiveEntities), label)
	}

	metrics <- prometheus.MustNewConstMetric(c.decodeErrors, prometheus.CounterValue, float64(snap.DecodeErrors))
	metrics <- prometheus.MustNewConstMetric(c.setErrors, prometheus.CounterValue, float64(snap.SetErrors))
	metrics <- prometheus.MustNewConstMetric(c.listenerErrors, prometheus.CounterValue, float64(snap.ListenerErrors))
}

var _ prometheus.Collector = (*Collector)(nil)
