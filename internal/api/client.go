// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api calls the analysis backend's query and compare endpoints.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/report-insight/internal/httputil"
	"github.com/pdiddy/report-insight/internal/logger"
	"github.com/pdiddy/report-insight/pkg/types"
)

const (
	DefaultBaseURL     = "http://127.0.0.1:5000"
	DefaultQueryPath   = "/api/query"
	DefaultComparePath = "/api/compare"
	DefaultUserAgent   = "report-insight/0.1"
)

// Result is a decoded response together with the HTTP status it came with.
// The status is informational: any decodable body counts as a response.
type Result struct {
	StatusCode int
	Response   types.Response
}

// Client talks to the analysis backend.
type Client struct {
	http *http.Client
	cfg  types.APIConfig
}

// New returns a Client for cfg, filling in defaults for empty fields. A nil
// httpClient gets a fresh client honouring cfg.Timeout (zero means none).
func New(httpClient *http.Client, cfg types.APIConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.QueryPath == "" {
		cfg.QueryPath = DefaultQueryPath
	}
	if cfg.ComparePath == "" {
		cfg.ComparePath = DefaultComparePath
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{http: httpClient, cfg: cfg}
}

// QueryURL returns the full query endpoint URL.
func (c *Client) QueryURL() string { return joinURL(c.cfg.BaseURL, c.cfg.QueryPath) }

// CompareURL returns the full compare endpoint URL.
func (c *Client) CompareURL() string { return joinURL(c.cfg.BaseURL, c.cfg.ComparePath) }

// Query posts {"query": query} to the query endpoint. The query is sent
// as-is, including the empty string.
func (c *Client) Query(ctx context.Context, query string) (*Result, error) {
	return c.post(ctx, c.QueryURL(), types.QueryRequest{Query: query})
}

// Compare posts {"report1": report1, "report2": report2} to the compare endpoint.
func (c *Client) Compare(ctx context.Context, report1, report2 string) (*Result, error) {
	return c.post(ctx, c.CompareURL(), types.CompareRequest{Report1: report1, Report2: report2})
}

func (c *Client) post(ctx context.Context, url string, body any) (*Result, error) {
	header := http.Header{}
	header.Set(httputil.HeaderUserAgent, c.cfg.UserAgent)
	if id := logger.RequestID(ctx); id != "" {
		header.Set(httputil.HeaderRequestID, id)
	}

	resp, err := httputil.PostJSON(ctx, c.http, url, body, header)
	if err != nil {
		return nil, fmt.Errorf("analysis API request: %w", err)
	}

	result := &Result{StatusCode: resp.StatusCode}
	if err := httputil.DecodeJSON(resp, &result.Response); err != nil {
		return nil, fmt.Errorf("parsing analysis API response (HTTP %d): %w", resp.StatusCode, err)
	}
	return result, nil
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
