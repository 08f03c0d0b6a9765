// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package wingman

import "go.uber.org/zap"

// WithMaxIterations bounds the number of planning calls in a single run.
// The default is 15.
func WithMaxIterations(maxIterations int) ExecutorOption {
	return func(options *executorOptions) {
		options.maxIterations = maxIterations
	}
}

// WithLogger provides a logger for run tracing.
// By default the executor is silent.
func WithLogger(logger *zap.Logger) ExecutorOption {
	return func(options *executorOptions) {
		options.logger = logger
	}
}

const defaultMaxIterations = 15

type (
	// ExecutorOption configures an Executor.
	ExecutorOption  func(*executorOptions)
	executorOptions struct {
		maxIterations int
		logger        *zap.Logger
	}
)
