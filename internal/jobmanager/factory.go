// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package jobmanager

import (
	"context"
	"reflect"

	"github.com/wzorgdrager/flink/core/highavailability"
	corejobmanager "github.com/wzorgdrager/flink/core/jobmanager"
)

// HAServicesFactory is a PersistenceComponentFactory that obtains its
// components from high availability services.
type HAServicesFactory struct {
	services highavailability.Services
}

// NewHAServicesFactory returns a factory delegating to services. The factory
// does not own services and must not outlive them.
func NewHAServicesFactory(services highavailability.Services) *HAServicesFactory {
	return &HAServicesFactory{
		services: services,
	}
}

// CreateExecutionPlanStore is part of the PersistenceComponentFactory
// interface.
func (f *HAServicesFactory) CreateExecutionPlanStore(ctx context.Context) (corejobmanager.ExecutionPlanStore, error) {
	return create(ctx, f.services, f.services.ExecutionPlanStore)
}

// CreateJobResultStore is part of the PersistenceComponentFactory interface.
func (f *HAServicesFactory) CreateJobResultStore(ctx context.Context) (corejobmanager.JobResultStore, error) {
	return create(ctx, f.services, f.services.JobResultStore)
}

// create returns whatever get returns, replacing any error with a
// CreationError naming T and the concrete type of services.
func create[T any](
	ctx context.Context,
	services highavailability.Services,
	get func(context.Context) (T, error),
) (T, error) {
	component, err := get(ctx)
	if err != nil {
		var zero T
		return zero, corejobmanager.NewCreationError(
			typeName(reflect.TypeOf((*T)(nil)).Elem()),
			typeName(reflect.TypeOf(services)),
			err,
		)
	}
	return component, nil
}

// typeName returns the unqualified name of t, looking through pointers.
// Unnamed types fall back to their string form.
func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
