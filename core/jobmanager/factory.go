// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package jobmanager

import (
	"context"
)

// PersistenceComponentFactory creates the persistence components used by the
// job coordination subsystem.
//
// Each call delegates to the underlying backend again; whether repeated calls
// return the same store is up to that backend. Failures are returned as a
// *CreationError.
type PersistenceComponentFactory interface {
	// CreateExecutionPlanStore returns the store of submitted execution plans.
	CreateExecutionPlanStore(context.Context) (ExecutionPlanStore, error)

	// CreateJobResultStore returns the store of terminal job results.
	CreateJobResultStore(context.Context) (JobResultStore, error)
}
