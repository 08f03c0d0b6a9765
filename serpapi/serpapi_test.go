// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package serpapi_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/gr8monk3ys/wingman/internal/assert"
	"github.com/gr8monk3ys/wingman/serpapi"
)

func TestClient_Run(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		body        string
		expected    string
		error       string
	}{
		{
			description: "answer box answer",
			body:        `{"answer_box":{"answer":"64°F"}}`,
			expected:    "64°F",
		},
		{
			description: "answer box snippet",
			body:        `{"answer_box":{"snippet":"Mostly sunny with a high of 64."}}`,
			expected:    "Mostly sunny with a high of 64.",
		},
		{
			description: "answer box highlighted words",
			body:        `{"answer_box":{"snippet_highlighted_words":["64°F","sunny"]}}`,
			expected:    "64°F",
		},
		{
			description: "sports results",
			body:        `{"sports_results":{"game_spotlight":"Warriors 112 - 108 Lakers"}}`,
			expected:    "Warriors 112 - 108 Lakers",
		},
		{
			description: "knowledge graph",
			body:        `{"knowledge_graph":{"description":"San Francisco is a city in California."}}`,
			expected:    "San Francisco is a city in California.",
		},
		{
			description: "first organic result",
			body:        `{"organic_results":[{"snippet":"Weather forecast for today."},{"snippet":"Ignored."}]}`,
			expected:    "Weather forecast for today.",
		},
		{
			description: "no result",
			body:        `{}`,
			expected:    "No good search result found",
		},
		{
			description: "answer box wins over organic results",
			body:        `{"answer_box":{"answer":"64°F"},"organic_results":[{"snippet":"Ignored."}]}`,
			expected:    "64°F",
		},
	}

	for _, testcase := range testcases {
		testcase := testcase
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			client := serpapi.New(
				serpapi.WithAPIKey("test-key"),
				serpapi.WithHTTPClient(&http.Client{
					Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
						assert.Equal(t, "/search", req.URL.Path)
						assert.Equal(t, "weather", req.URL.Query().Get("q"))
						assert.Equal(t, "google", req.URL.Query().Get("engine"))
						assert.Equal(t, "test-key", req.URL.Query().Get("api_key"))

						return &http.Response{
							StatusCode: http.StatusOK,
							Body:       io.NopCloser(bytes.NewBufferString(testcase.body)),
						}, nil
					}),
				}),
			)

			observation, err := client.Run(context.Background(), "weather")
			assert.NoError(t, err)
			assert.Equal(t, testcase.expected, observation)
		})
	}
}

func TestClient_Run_error(t *testing.T) {
	t.Parallel()

	client := serpapi.New(
		serpapi.WithAPIKey("test-key"),
		serpapi.WithHTTPClient(&http.Client{
			Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusTooManyRequests,
					Body:       io.NopCloser(bytes.NewBufferString(`You are exceeding your plan`)),
				}, nil
			}),
		}),
	)

	_, err := client.Run(context.Background(), "weather")
	assert.EqualError(t, err, `search "weather": [429] You are exceeding your plan`)
}

func TestClient_Tool(t *testing.T) {
	t.Parallel()

	tool := serpapi.New().Tool()
	assert.Equal(t, "Search", tool.Name)
	assert.Equal(t, "useful for when you need to answer questions about current events", tool.Description)
	assert.True(t, tool.ReturnDirect)
	assert.True(t, tool.Function != nil)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
