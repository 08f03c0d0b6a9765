// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package wingman

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Executor drives the plan/act loop: it repeatedly asks the planner for the
// next Decision and invokes the planned tool, until the planner finishes, a
// return-direct tool is invoked, or the iteration bound is hit.
//
// An Executor is immutable after construction and can run on multiple
// goroutines simultaneously as long as its planner and tools can.
type Executor struct {
	planner       Planner
	tools         map[string]Tool
	maxIterations int
	logger        *zap.Logger
}

// NewExecutor creates an Executor from the given planner and tools
// with the given ExecutorOption(s).
func NewExecutor(planner Planner, tools []Tool, opts ...ExecutorOption) Executor {
	options := &executorOptions{
		maxIterations: defaultMaxIterations,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	executor := Executor{
		planner:       planner,
		tools:         make(map[string]Tool, len(tools)),
		maxIterations: options.maxIterations,
		logger:        options.logger,
	}
	for _, tool := range tools {
		executor.tools[tool.Name] = tool
		if declaration, err := json.Marshal(tool); err == nil {
			executor.logger.Debug("registered tool",
				zap.String("tool", tool.Name),
				zap.Bool("returnDirect", tool.ReturnDirect),
				zap.Any("declaration", json.RawMessage(declaration)),
			)
		}
	}

	return executor
}

// Run runs the plan/act loop with the planner's single named input set to
// input. It is a shorthand of RunValues for planners expecting exactly one
// input.
func (e Executor) Run(ctx context.Context, input string) (string, error) {
	keys := e.planner.InputKeys()
	if len(keys) != 1 {
		return "", fmt.Errorf("planner expects %d inputs, Run supports exactly one: use RunValues", len(keys)) //nolint:err113
	}

	return e.RunValues(ctx, Values{keys[0]: input})
}

// RunValues runs the plan/act loop with the given named inputs and returns
// the final answer.
func (e Executor) RunValues(ctx context.Context, values Values) (string, error) {
	for _, key := range e.planner.InputKeys() {
		if _, ok := values[key]; !ok {
			return "", fmt.Errorf("missing input %q", key) //nolint:err113
		}
	}

	logger := e.logger.With(zap.String("run", uuid.NewString()))
	logger.Info("run started", zap.Any("values", values))

	var steps []Step
	for iteration := 0; iteration < e.maxIterations; iteration++ {
		decision, err := e.planner.PlanContext(ctx, steps, values)
		if err != nil {
			return "", fmt.Errorf("plan next step: %w", err)
		}

		switch decision := decision.(type) {
		case Finish:
			logger.Info("run finished", zap.Int("iterations", iteration), zap.String("output", decision.Output))

			return decision.Output, nil
		case Action:
			tool, ok := e.tools[decision.Tool]
			if !ok {
				return "", fmt.Errorf("unknown tool %q", decision.Tool) //nolint:err113
			}
			logger.Info("invoking tool",
				zap.Int("iteration", iteration),
				zap.String("tool", decision.Tool),
				zap.String("toolInput", decision.ToolInput),
			)
			observation, err := tool.Function(ctx, decision.ToolInput)
			if err != nil {
				return "", fmt.Errorf("invoke tool %q: %w", decision.Tool, err)
			}
			logger.Info("observed", zap.Int("iteration", iteration), zap.String("observation", observation))
			if tool.ReturnDirect {
				logger.Info("run finished", zap.Int("iterations", iteration+1), zap.String("output", observation))

				return observation, nil
			}
			steps = append(steps, Step{Action: decision, Observation: observation})
		default:
			return "", fmt.Errorf("unexpected decision type %T", decision) //nolint:err113
		}
	}

	return "", fmt.Errorf("no final answer after %d iterations", e.maxIterations) //nolint:err113
}
