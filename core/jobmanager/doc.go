// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package jobmanager defines the persistence components the job coordination
// subsystem needs at startup and recovery time, and the factory contract used
// to acquire them.
//
// The stores themselves are provided by a high availability backend. Nothing
// in this package knows which backend that is; callers only see a
// PersistenceComponentFactory and, when acquisition fails, a *CreationError.
package jobmanager
