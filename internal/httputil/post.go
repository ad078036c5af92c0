// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the API client.
package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Header names set on every JSON call.
const (
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	HeaderUserAgent   = "User-Agent"
	HeaderRequestID   = "X-Request-ID"

	contentTypeJSON = "application/json"
)

// PostJSON encodes body as JSON and sends it as a single POST to url with
// Content-Type and Accept set to application/json. Entries in header are
// added on top. The request is sent exactly once: a transport error is
// returned as-is and any HTTP status, including 4xx and 5xx, is handed back
// to the caller with the body open.
func PostJSON(ctx context.Context, client *http.Client, url string, body any, header http.Header) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set(HeaderContentType, contentTypeJSON)
	req.Header.Set(HeaderAccept, contentTypeJSON)

	return client.Do(req)
}

// DecodeJSON decodes the response body into v, then drains and closes it.
func DecodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()
	defer io.Copy(io.Discard, resp.Body)

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}
