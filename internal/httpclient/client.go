// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

//nolint:ireturn,wrapcheck
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

func Get[R any](ctx context.Context, path string, opts ...Option) (R, error) {
	var response R
	options := apply(opts)
	path, err := url.JoinPath(options.baseURL, path)
	if err != nil {
		return response, err
	}
	if len(options.query) > 0 {
		path += "?" + options.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return response, err
	}
	for k, v := range options.headers {
		req.Header.Set(k, v)
	}

	resp, err := options.client.Do(req)
	if err != nil {
		return response, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if err = checkStatus(resp); err != nil {
		return response, err
	}
	if err = unmarshalResponse(resp, &response); err != nil {
		return response, err
	}

	return response, nil
}

func unmarshalResponse(resp *http.Response, response any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	switch value := response.(type) {
	case *[]byte:
		*value = body
	case *string:
		*value = string(body)
	default:
		if err := json.Unmarshal(body, value); err != nil {
			return err
		}
	}

	return nil
}

type StatusError struct {
	Code    int
	Message string
}

func (s *StatusError) Error() string {
	if s.Message == "" {
		s.Message = http.StatusText(s.Code)
	}

	return fmt.Sprintf("[%d] %s", s.Code, s.Message)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusBadRequest {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)

	return &StatusError{Code: resp.StatusCode, Message: string(body)}
}
