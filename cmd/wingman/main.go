// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Command wingman runs the flirty search agent against a single query.
//
// It expects the environment variable SERPAPI_API_KEY to be set.
package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gr8monk3ys/wingman"
	"github.com/gr8monk3ys/wingman/serpapi"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	executor := wingman.NewExecutor(
		wingman.FlirtyPlanner{},
		[]wingman.Tool{serpapi.New().Tool()},
		wingman.WithLogger(logger),
	)

	answer, err := executor.Run(context.Background(), "What's the weather like?")
	if err != nil {
		logger.Fatal("run agent", zap.Error(err))
	}

	fmt.Println(answer)
}
