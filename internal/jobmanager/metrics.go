// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package jobmanager

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "flink"
	metricsSubsystem = "jobmanager_persistence"

	componentLabel = "component"
	resultLabel    = "result"

	resultSuccess = "success"
	resultFailure = "failure"
)

// Collector is a prometheus.Collector for persistence component creation.
type Collector struct {
	creations *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewCollector returns a new Collector.
func NewCollector() *Collector {
	return &Collector{
		creations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "creations_total",
			Help:      "Total number of persistence component creations, by component and result.",
		}, []string{componentLabel, resultLabel}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "creation_duration_seconds",
			Help:      "Time taken to obtain a persistence component from the high availability services.",
			Buckets:   prometheus.DefBuckets,
		}, []string{componentLabel}),
	}
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.creations.Describe(ch)
	c.duration.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.creations.Collect(ch)
	c.duration.Collect(ch)
}

func (c *Collector) observe(component string, seconds float64, err error) {
	result := resultSuccess
	if err != nil {
		result = resultFailure
	}
	c.creations.WithLabelValues(component, result).Inc()
	c.duration.WithLabelValues(component).Observe(seconds)
}
