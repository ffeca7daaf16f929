// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package jobpersistence

import (
	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/worker/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/tomb.v2"

	"github.com/wzorgdrager/flink/core/highavailability"
	corejobmanager "github.com/wzorgdrager/flink/core/jobmanager"
	"github.com/wzorgdrager/flink/internal/jobmanager"
)

// Logger represents the methods used by the worker to log details.
type Logger interface {
	Debugf(string, ...interface{})
	Infof(string, ...interface{})
	Warningf(string, ...interface{})
}

// Config holds the dependencies of a Worker.
type Config struct {
	HAServices                     highavailability.Services
	NewPersistenceComponentFactory func(highavailability.Services) corejobmanager.PersistenceComponentFactory
	PrometheusRegisterer           prometheus.Registerer
	Tracer                         trace.Tracer
	Clock                          clock.Clock
	Logger                         Logger
}

// Validate returns an error if the config cannot be used to start a Worker.
func (config Config) Validate() error {
	if config.HAServices == nil {
		return errors.NotValidf("nil HAServices")
	}
	if config.NewPersistenceComponentFactory == nil {
		return errors.NotValidf("nil NewPersistenceComponentFactory")
	}
	if config.PrometheusRegisterer == nil {
		return errors.NotValidf("nil PrometheusRegisterer")
	}
	if config.Tracer == nil {
		return errors.NotValidf("nil Tracer")
	}
	if config.Clock == nil {
		return errors.NotValidf("nil Clock")
	}
	if config.Logger == nil {
		return errors.NotValidf("nil Logger")
	}
	return nil
}

// Worker exposes a PersistenceComponentFactory backed by the high
// availability services it was started with.
type Worker struct {
	tomb tomb.Tomb

	config    Config
	collector *jobmanager.Collector
	factory   *jobmanager.InstrumentedFactory
}

// NewWorker returns a Worker serving a factory built from config.HAServices.
func NewWorker(config Config) (worker.Worker, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}

	collector := jobmanager.NewCollector()
	w := &Worker{
		config:    config,
		collector: collector,
		factory: jobmanager.NewInstrumentedFactory(
			config.NewPersistenceComponentFactory(config.HAServices),
			collector,
			config.Tracer,
			config.Clock,
		),
	}
	w.tomb.Go(w.loop)
	return w, nil
}

// Factory returns the PersistenceComponentFactory served by the worker.
func (w *Worker) Factory() corejobmanager.PersistenceComponentFactory {
	return w.factory
}

// Kill is part of the worker.Worker interface.
func (w *Worker) Kill() {
	w.tomb.Kill(nil)
}

// Wait is part of the worker.Worker interface.
func (w *Worker) Wait() error {
	return w.tomb.Wait()
}

func (w *Worker) loop() error {
	if err := w.config.PrometheusRegisterer.Register(w.collector); err != nil {
		w.config.Logger.Warningf("unable to register job persistence metrics: %v", err)
	} else {
		defer w.config.PrometheusRegisterer.Unregister(w.collector)
	}

	w.config.Logger.Debugf("job persistence components available from %T", w.config.HAServices)

	<-w.tomb.Dying()
	return tomb.ErrDying
}
