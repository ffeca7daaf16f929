// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package jobmanager_test

import (
	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/wzorgdrager/flink/core/jobmanager"
)

type errorsSuite struct {
	testing.IsolationSuite
}

var _ = gc.Suite(&errorsSuite{})

func (s *errorsSuite) TestCreationErrorMessage(c *gc.C) {
	err := jobmanager.NewCreationError("ExecutionPlanStore", "KubernetesServices", errors.New("boom"))
	c.Check(err.Error(), gc.Equals, "Could not create ExecutionPlanStore from KubernetesServices.")
}

func (s *errorsSuite) TestCreationErrorUnwrap(c *gc.C) {
	cause := errors.New("boom")
	err := jobmanager.NewCreationError("JobResultStore", "KubernetesServices", cause)

	c.Check(errors.Unwrap(err), gc.Equals, cause)
	c.Check(err, jc.ErrorIs, cause)
}

func (s *errorsSuite) TestCreationErrorIsCreationFailed(c *gc.C) {
	var err error = jobmanager.NewCreationError("JobResultStore", "KubernetesServices", errors.New("boom"))

	c.Check(err, jc.ErrorIs, jobmanager.ErrCreationFailed)
	c.Check(errors.Is(err, errors.NotFound), jc.IsFalse)
	c.Check(errors.Is(errors.New("boom"), jobmanager.ErrCreationFailed), jc.IsFalse)
}

func (s *errorsSuite) TestCreationErrorAs(c *gc.C) {
	var err error = jobmanager.NewCreationError("JobResultStore", "KubernetesServices", errors.New("boom"))

	var creationErr *jobmanager.CreationError
	c.Assert(errors.As(err, &creationErr), jc.IsTrue)
	c.Check(creationErr.Component, gc.Equals, "JobResultStore")
	c.Check(creationErr.Provider, gc.Equals, "KubernetesServices")
}

func (s *errorsSuite) TestJobIDString(c *gc.C) {
	c.Check(jobmanager.JobID("8d2c").String(), gc.Equals, "8d2c")
}
