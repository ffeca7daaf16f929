// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package jobmanager

import (
	"context"
)

// JobID uniquely identifies a submitted job.
type JobID string

// String returns the job id as a string.
func (id JobID) String() string {
	return string(id)
}

// ExecutionPlan is a submitted job's plan. Its encoding is owned by the
// ExecutionPlanStore that persists it.
type ExecutionPlan interface {
	// JobID returns the id of the job the plan belongs to.
	JobID() JobID
}

// ExecutionPlanStore persists submitted execution plans, keyed by JobID, so
// that they can be recovered after a leader change.
type ExecutionPlanStore interface {
	// PutExecutionPlan adds or replaces the plan for its job.
	PutExecutionPlan(ctx context.Context, plan ExecutionPlan) error

	// RecoverExecutionPlan returns the plan persisted for the given job.
	RecoverExecutionPlan(ctx context.Context, id JobID) (ExecutionPlan, error)

	// RemoveExecutionPlan removes the plan persisted for the given job.
	RemoveExecutionPlan(ctx context.Context, id JobID) error

	// JobIDs returns the ids of all jobs with a persisted plan.
	JobIDs(ctx context.Context) ([]JobID, error)
}

// JobResult is the terminal outcome of a job.
type JobResult struct {
	// JobID is the id of the job the result belongs to.
	JobID JobID

	// Status is the terminal status the job finished in.
	Status string
}

// JobResultStore persists the results of jobs that reached a terminal state.
// A result is dirty until the resources of its job have been cleaned up.
type JobResultStore interface {
	// CreateDirtyResult persists a result that still requires cleanup.
	CreateDirtyResult(ctx context.Context, result JobResult) error

	// MarkResultAsClean records that the job's cleanup has finished.
	MarkResultAsClean(ctx context.Context, id JobID) error

	// HasJobResultEntry reports whether any result, dirty or clean, exists
	// for the given job.
	HasJobResultEntry(ctx context.Context, id JobID) (bool, error)

	// DirtyResults returns all results that still require cleanup.
	DirtyResults(ctx context.Context) ([]JobResult, error)
}
