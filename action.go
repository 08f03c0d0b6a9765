// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package wingman is a small agent toolkit: a Planner decides which Tool to
// invoke for the given inputs, and an Executor drives the plan/act loop until
// the planner finishes or a return-direct tool produces the final answer.
package wingman

import "github.com/gr8monk3ys/wingman/embedded"

type (
	// Decision is the outcome of a planning call: either an Action naming the
	// next tool to invoke, or a Finish carrying the final answer.
	Decision interface {
		embedded.Decision
	}

	// Action designates the tool to invoke next.
	Action struct {
		embedded.Decision

		// Tool is the name of the tool to invoke.
		// It must name a tool registered with the executor.
		Tool string
		// ToolInput is passed verbatim to the tool.
		ToolInput string
		// Log is an optional trace of the reasoning behind the action.
		Log string
	}

	// Finish carries the final answer and terminates the run.
	Finish struct {
		embedded.Decision

		Output string
		Log    string
	}

	// Step is one action taken by the executor together with the observation
	// the tool returned for it.
	Step struct {
		Action      Action
		Observation string
	}

	// Values holds the named inputs of a run.
	Values map[string]string
)
