// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package jobmanager

import (
	"context"
	"reflect"

	"github.com/juju/clock"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	corejobmanager "github.com/wzorgdrager/flink/core/jobmanager"
)

// InstrumentedFactory records metrics and a trace span for every call made
// to the PersistenceComponentFactory it wraps. Values and errors are passed
// through untouched.
type InstrumentedFactory struct {
	factory   corejobmanager.PersistenceComponentFactory
	collector *Collector
	tracer    trace.Tracer
	clock     clock.Clock
}

// NewInstrumentedFactory wraps factory.
func NewInstrumentedFactory(
	factory corejobmanager.PersistenceComponentFactory,
	collector *Collector,
	tracer trace.Tracer,
	clock clock.Clock,
) *InstrumentedFactory {
	return &InstrumentedFactory{
		factory:   factory,
		collector: collector,
		tracer:    tracer,
		clock:     clock,
	}
}

// CreateExecutionPlanStore is part of the PersistenceComponentFactory
// interface.
func (f *InstrumentedFactory) CreateExecutionPlanStore(ctx context.Context) (corejobmanager.ExecutionPlanStore, error) {
	return instrument(ctx, f, f.factory.CreateExecutionPlanStore)
}

// CreateJobResultStore is part of the PersistenceComponentFactory interface.
func (f *InstrumentedFactory) CreateJobResultStore(ctx context.Context) (corejobmanager.JobResultStore, error) {
	return instrument(ctx, f, f.factory.CreateJobResultStore)
}

func instrument[T any](
	ctx context.Context,
	f *InstrumentedFactory,
	create func(context.Context) (T, error),
) (T, error) {
	component := typeName(reflect.TypeOf((*T)(nil)).Elem())

	ctx, span := f.tracer.Start(ctx, "jobmanager.Create"+component,
		trace.WithAttributes(attribute.String(componentLabel, component)),
	)
	defer span.End()

	start := f.clock.Now()
	value, err := create(ctx)
	f.collector.observe(component, f.clock.Now().Sub(start).Seconds(), err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return value, err
}
