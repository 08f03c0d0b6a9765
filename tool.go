// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package wingman

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Tool is a named unit of external functionality the executor can invoke on
// behalf of a planner. Tools are immutable after construction and live for
// the process lifetime.
type Tool struct {
	// Name is the identifier planners use to select the tool.
	Name string
	// Description tells a planner when the tool is useful.
	Description string
	// Function performs the tool's work.
	Function func(ctx context.Context, input string) (string, error)
	// ReturnDirect terminates the run with the tool's observation as the
	// final answer, without a further planning call.
	ReturnDirect bool
}

type argument struct {
	Input string `json:"input" jsonschema:"description=Input to pass to the tool"`
}

// MarshalJSON renders the tool as a [function calling] style declaration.
//
// [function calling]: https://platform.openai.com/docs/guides/function-calling
func (t Tool) MarshalJSON() ([]byte, error) {
	reflector := jsonschema.Reflector{Anonymous: true, ExpandedStruct: true, DoNotReference: true}

	declaration := struct {
		Type     string `json:"type"`
		Function struct {
			Name        string             `json:"name"`
			Description string             `json:"description,omitempty"`
			Parameters  *jsonschema.Schema `json:"parameters"`
		} `json:"function"`
	}{Type: "function"}
	declaration.Function.Name = t.Name
	declaration.Function.Description = t.Description
	declaration.Function.Parameters = reflector.Reflect(&argument{})

	data, err := json.Marshal(declaration)
	if err != nil {
		return nil, fmt.Errorf("marshal tool declaration: %w", err)
	}

	return data, nil
}
