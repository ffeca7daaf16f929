// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package jobpersistence

import (
	"context"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/worker/v4"
	"github.com/juju/worker/v4/dependency"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/wzorgdrager/flink/core/highavailability"
	corejobmanager "github.com/wzorgdrager/flink/core/jobmanager"
	"github.com/wzorgdrager/flink/internal/jobmanager"
)

// ManifoldConfig holds the dependencies and configuration for a
// Worker manifold.
type ManifoldConfig struct {
	// HAServicesName is the name of the manifold providing the
	// highavailability.Services the factory delegates to.
	HAServicesName string

	Clock                clock.Clock
	Logger               Logger
	PrometheusRegisterer prometheus.Registerer
	Tracer               trace.Tracer

	NewPersistenceComponentFactory func(highavailability.Services) corejobmanager.PersistenceComponentFactory
	NewWorker                      func(Config) (worker.Worker, error)
}

// Validate is called by start to check for bad configuration.
func (config ManifoldConfig) Validate() error {
	if config.HAServicesName == "" {
		return errors.NotValidf("empty HAServicesName")
	}
	if config.Clock == nil {
		return errors.NotValidf("nil Clock")
	}
	if config.Logger == nil {
		return errors.NotValidf("nil Logger")
	}
	if config.PrometheusRegisterer == nil {
		return errors.NotValidf("nil PrometheusRegisterer")
	}
	if config.Tracer == nil {
		return errors.NotValidf("nil Tracer")
	}
	if config.NewPersistenceComponentFactory == nil {
		return errors.NotValidf("nil NewPersistenceComponentFactory")
	}
	if config.NewWorker == nil {
		return errors.NotValidf("nil NewWorker")
	}
	return nil
}

// Manifold packages a Worker for use in a dependency.Engine.
func Manifold(config ManifoldConfig) dependency.Manifold {
	return dependency.Manifold{
		Inputs: []string{
			config.HAServicesName,
		},
		Start:  config.start,
		Output: config.output,
	}
}

// start is a StartFunc for a Worker manifold.
func (config ManifoldConfig) start(_ context.Context, getter dependency.Getter) (worker.Worker, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}

	var services highavailability.Services
	if err := getter.Get(config.HAServicesName, &services); err != nil {
		return nil, errors.Trace(err)
	}

	w, err := config.NewWorker(Config{
		HAServices:                     services,
		NewPersistenceComponentFactory: config.NewPersistenceComponentFactory,
		PrometheusRegisterer:           config.PrometheusRegisterer,
		Tracer:                         config.Tracer,
		Clock:                          config.Clock,
		Logger:                         config.Logger,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	return w, nil
}

func (config ManifoldConfig) output(in worker.Worker, out any) error {
	w, ok := in.(*Worker)
	if !ok {
		return errors.Errorf("expected input of Worker, got %T", in)
	}

	switch out := out.(type) {
	case *corejobmanager.PersistenceComponentFactory:
		*out = w.Factory()
	default:
		return errors.Errorf("expected output of PersistenceComponentFactory, got %T", out)
	}
	return nil
}

// NewPersistenceComponentFactory returns a factory obtaining its components
// from services.
func NewPersistenceComponentFactory(services highavailability.Services) corejobmanager.PersistenceComponentFactory {
	return jobmanager.NewHAServicesFactory(services)
}
