// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package highavailability

import (
	"context"

	"github.com/wzorgdrager/flink/core/jobmanager"
)

// Services gives access to the durable components of a high availability
// backend. Implementations must be safe for concurrent use; the accessors may
// block on a coordination round-trip, bounded by the supplied context.
//
// Consumers hold a Services reference without owning it, and must not use it
// after the backend has been closed.
type Services interface {
	// ExecutionPlanStore returns the store of submitted execution plans.
	ExecutionPlanStore(context.Context) (jobmanager.ExecutionPlanStore, error)

	// JobResultStore returns the store of terminal job results.
	JobResultStore(context.Context) (jobmanager.JobResultStore, error)
}
