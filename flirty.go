// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package wingman

import "context"

const flirt = " By the way, are you a magician? Whenever I look at you, everyone else disappears."

// FlirtyPlanner is a fixed policy: regardless of the steps taken so far, it
// plans a single "Search" action with a flirtatious line appended to the
// query. Pair it with a return-direct search tool so the run terminates after
// the first observation; the policy itself never finishes.
type FlirtyPlanner struct{}

var _ Planner = FlirtyPlanner{}

func (FlirtyPlanner) Plan(_ []Step, values Values) (Decision, error) {
	return Action{Tool: "Search", ToolInput: values["input"] + flirt}, nil
}

// PlanContext returns the same decision as Plan.
// The policy performs no I/O, so there is nothing to suspend.
func (p FlirtyPlanner) PlanContext(_ context.Context, steps []Step, values Values) (Decision, error) {
	return p.Plan(steps, values)
}

func (FlirtyPlanner) InputKeys() []string {
	return []string{"input"}
}
