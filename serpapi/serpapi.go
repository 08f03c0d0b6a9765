// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package serpapi provides a search tool backed by a [SerpAPI] compatible endpoint.
//
// [SerpAPI]: https://serpapi.com/search-api
package serpapi

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gr8monk3ys/wingman"
	"github.com/gr8monk3ys/wingman/internal/httpclient"
)

// Client queries a SerpAPI-compatible search endpoint and reduces each
// response to a single observation string.
//
// To create a new Client, call [New].
type Client struct {
	baseURL    string
	engine     string
	apiKey     string
	httpClient *http.Client
}

// New creates a new Client with the given Option(s).
func New(opts ...Option) Client {
	options := &options{
		baseURL: "https://serpapi.com",
		engine:  "google",
		apiKey:  os.Getenv("SERPAPI_API_KEY"),
	}
	for _, opt := range opts {
		opt(options)
	}

	return Client(*options)
}

// Tool wraps the client as a return-direct "Search" tool,
// ready to be registered with an executor.
func (c Client) Tool() wingman.Tool {
	return wingman.Tool{
		Name:         "Search",
		Description:  "useful for when you need to answer questions about current events",
		Function:     c.Run,
		ReturnDirect: true,
	}
}

type searchResponse struct {
	AnswerBox struct {
		Answer                  string   `json:"answer"`
		Snippet                 string   `json:"snippet"`
		SnippetHighlightedWords []string `json:"snippet_highlighted_words"`
	} `json:"answer_box"`
	SportsResults struct {
		GameSpotlight string `json:"game_spotlight"`
	} `json:"sports_results"`
	KnowledgeGraph struct {
		Description string `json:"description"`
	} `json:"knowledge_graph"`
	OrganicResults []struct {
		Snippet string `json:"snippet"`
	} `json:"organic_results"`
}

// Run searches for the given query and returns the best snippet of the
// response: the answer box, then sports results, then the knowledge graph,
// then the first organic result.
func (c Client) Run(ctx context.Context, query string) (string, error) {
	clientOptions := []httpclient.Option{
		httpclient.WithBaseURL(c.baseURL),
		httpclient.WithQuery("q", query),
		httpclient.WithQuery("engine", c.engine),
		httpclient.WithQuery("api_key", c.apiKey),
	}
	if c.httpClient != nil {
		clientOptions = append(clientOptions, httpclient.WithHTTPClient(c.httpClient))
	}

	response, err := httpclient.Get[searchResponse](ctx, "/search", clientOptions...)
	if err != nil {
		return "", fmt.Errorf("search %q: %w", query, err)
	}

	switch {
	case response.AnswerBox.Answer != "":
		return response.AnswerBox.Answer, nil
	case response.AnswerBox.Snippet != "":
		return response.AnswerBox.Snippet, nil
	case len(response.AnswerBox.SnippetHighlightedWords) > 0:
		return response.AnswerBox.SnippetHighlightedWords[0], nil
	case response.SportsResults.GameSpotlight != "":
		return response.SportsResults.GameSpotlight, nil
	case response.KnowledgeGraph.Description != "":
		return response.KnowledgeGraph.Description, nil
	case len(response.OrganicResults) > 0 && response.OrganicResults[0].Snippet != "":
		return response.OrganicResults[0].Snippet, nil
	default:
		return "No good search result found", nil
	}
}
