// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the wire payloads exchanged with the analysis API,
// the page snapshot produced by the controller, and configuration structs.
package types

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// QueryRequest is the body of a POST to the query endpoint.
type QueryRequest struct {
	Query string `json:"query" yaml:"query"`
}

// CompareRequest is the body of a POST to the compare endpoint.
type CompareRequest struct {
	Report1 string `json:"report1" yaml:"report1"`
	Report2 string `json:"report2" yaml:"report2"`
}

// Response is the decoded body returned by either endpoint. Fields are read
// optimistically: anything the backend leaves out stays absent.
type Response struct {
	// Insight is the free-text answer to a query.
	Insight Value `json:"insight" yaml:"insight,omitempty"`

	// Comparison is the free-text result of a compare request.
	Comparison Value `json:"comparison" yaml:"comparison,omitempty"`

	// Answer is what the reference backend actually returns for a query.
	Answer Value `json:"answer" yaml:"answer,omitempty"`

	// Error is an application-level failure reported by the backend.
	Error Value `json:"error" yaml:"error,omitempty"`

	// Sentiment and Topics are opaque backend structures shown verbatim.
	Sentiment json.RawMessage `json:"sentiment,omitempty" yaml:"-"`
	Topics    json.RawMessage `json:"topics,omitempty" yaml:"-"`

	// Sources lists supporting sentences; may be absent or empty.
	Sources []string `json:"sources,omitempty" yaml:"sources,omitempty"`

	Status Value `json:"status" yaml:"status,omitempty"`
	Source Value `json:"source" yaml:"source,omitempty"`
}

// Value holds one loosely typed JSON field. It remembers whether the field
// was present at all and renders the way a page would display it.
type Value struct {
	raw json.RawMessage
}

// StringValue returns a present Value holding s.
func StringValue(s string) Value {
	b, _ := json.Marshal(s)
	return Value{raw: b}
}

// UnmarshalJSON keeps the raw field bytes, including a literal null.
func (v *Value) UnmarshalJSON(b []byte) error {
	v.raw = append(v.raw[:0], b...)
	return nil
}

// MarshalJSON writes the raw bytes back, or null when absent.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Present() {
		return []byte("null"), nil
	}
	return v.raw, nil
}

// IsZero lets yaml omitempty drop absent values.
func (v Value) IsZero() bool { return !v.Present() }

// MarshalYAML emits the decoded JSON value.
func (v Value) MarshalYAML() (any, error) {
	if !v.Present() {
		return nil, nil
	}
	var out any
	if err := json.Unmarshal(v.raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Present reports whether the field appeared in the response.
func (v Value) Present() bool { return len(v.raw) > 0 }

// Truthy reports whether the value would select itself in an
// "a or else b" choice: absent, null, "", 0 and false are falsy.
func (v Value) Truthy() bool {
	if !v.Present() {
		return false
	}
	trimmed := bytes.TrimSpace(v.raw)
	if len(trimmed) == 0 {
		return false
	}
	switch trimmed[0] {
	case 'n':
		return false
	case 't':
		return true
	case 'f':
		return false
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return false
		}
		return s != ""
	case '{', '[':
		return true
	default:
		f, err := strconv.ParseFloat(string(trimmed), 64)
		return err == nil && f != 0
	}
}

// String renders the value for display. Absent values render as
// "undefined", null as the empty string, strings verbatim, and everything
// else as compact JSON.
func (v Value) String() string {
	if !v.Present() {
		return "undefined"
	}
	trimmed := bytes.TrimSpace(v.raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return string(trimmed)
	}
	return buf.String()
}

// Or returns v when it is truthy and other otherwise.
func (v Value) Or(other Value) Value {
	if v.Truthy() {
		return v
	}
	return other
}
