// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package jobmanager

import (
	"fmt"

	"github.com/juju/errors"
)

const (
	// ErrCreationFailed is matched, using errors.Is, by every error returned
	// when a persistence component could not be obtained from its backend.
	ErrCreationFailed = errors.ConstError("persistence component creation failed")
)

// CreationError is returned when a persistence component could not be
// obtained from the high availability services that provide it. The original
// failure is available through errors.Unwrap.
type CreationError struct {
	// Component is the simple name of the component type being created,
	// e.g. "ExecutionPlanStore".
	Component string

	// Provider is the simple name of the concrete type of the services that
	// failed to provide the component.
	Provider string

	cause error
}

// NewCreationError returns a CreationError for the given component and
// provider names, wrapping cause.
func NewCreationError(component, provider string, cause error) *CreationError {
	return &CreationError{
		Component: component,
		Provider:  provider,
		cause:     cause,
	}
}

// Error implements error.
func (e *CreationError) Error() string {
	return fmt.Sprintf("Could not create %s from %s.", e.Component, e.Provider)
}

// Unwrap returns the failure reported by the provider.
func (e *CreationError) Unwrap() error {
	return e.cause
}

// Is reports whether target is ErrCreationFailed.
func (e *CreationError) Is(target error) bool {
	return target == ErrCreationFailed
}
