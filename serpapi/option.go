// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package serpapi

import "net/http"

// WithAPIKey provides the [SerpAPI key].
//
// By default, the key is read from environment variable SERPAPI_API_KEY.
//
// [SerpAPI key]: https://serpapi.com/manage-api-key
func WithAPIKey(apiKey string) Option {
	return func(options *options) {
		options.apiKey = apiKey
	}
}

// WithBaseURL points the client at a different SerpAPI-compatible host.
func WithBaseURL(baseURL string) Option {
	return func(options *options) {
		options.baseURL = baseURL
	}
}

// WithEngine selects the search engine backend. The default is "google".
func WithEngine(engine string) Option {
	return func(options *options) {
		options.engine = engine
	}
}

// WithHTTPClient provides a http.Client for the search requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(options *options) {
		options.httpClient = httpClient
	}
}

type (
	// Option configures a Client.
	Option  func(*options)
	options Client
)
