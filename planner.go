// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package wingman

import "context"

// Planner decides the next step of a run.
//
// Plan and PlanContext must return identical decisions for identical input
// whenever the planner performs no I/O. PlanContext exists so that planners
// backed by a model or a remote service can honor cancellation; purely local
// planners implement it as a plain call to Plan.
type Planner interface {
	// Plan returns the next Decision given the steps taken so far and the
	// named inputs of the run.
	Plan(steps []Step, values Values) (Decision, error)
	// PlanContext is the suspend-capable form of Plan.
	PlanContext(ctx context.Context, steps []Step, values Values) (Decision, error)
	// InputKeys returns the named inputs the planner expects.
	InputKeys() []string
}
