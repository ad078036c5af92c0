// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueTruthyAndString(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantTruthy bool
		wantString string
	}{
		{"absent", `{}`, false, "undefined"},
		{"null", `{"insight":null}`, false, ""},
		{"empty string", `{"insight":""}`, false, ""},
		{"string", `{"insight":"X"}`, true, "X"},
		{"markup string", `{"insight":"<b>bold</b>"}`, true, "<b>bold</b>"},
		{"zero", `{"insight":0}`, false, "0"},
		{"number", `{"insight":2.5}`, true, "2.5"},
		{"false", `{"insight":false}`, false, "false"},
		{"true", `{"insight":true}`, true, "true"},
		{"object", `{"insight":{"a": 1}}`, true, `{"a":1}`},
		{"empty array", `{"insight":[]}`, true, `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp Response
			require.NoError(t, json.Unmarshal([]byte(tt.body), &resp))
			assert.Equal(t, tt.wantTruthy, resp.Insight.Truthy())
			assert.Equal(t, tt.wantString, resp.Insight.String())
		})
	}
}

func TestValueOr(t *testing.T) {
	var resp Response
	require.NoError(t, json.Unmarshal([]byte(`{"insight":"","error":"bad"}`), &resp))

	assert.Equal(t, "bad", resp.Insight.Or(resp.Error).String())
	assert.Equal(t, "undefined", resp.Comparison.Or(resp.Answer).String())
	assert.Equal(t, "X", StringValue("X").Or(resp.Error).String())
}

func TestResponseDecodesReferenceBackendShape(t *testing.T) {
	body := `{
		"status": "success",
		"answer": "Outlook is stable.",
		"sources": ["Revenue grew 4%.", "Margins held."],
		"sentiment": [{"label": "POSITIVE", "score": 0.98}],
		"topics": {"labels": ["finance"], "scores": [0.9]},
		"source": "ChatGPT"
	}`

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.False(t, resp.Insight.Present())
	assert.Equal(t, "Outlook is stable.", resp.Answer.String())
	assert.Equal(t, []string{"Revenue grew 4%.", "Margins held."}, resp.Sources)
	assert.JSONEq(t, `[{"label": "POSITIVE", "score": 0.98}]`, string(resp.Sentiment))
	assert.Equal(t, "success", resp.Status.String())
}

func TestResponseRejectsNonStringSources(t *testing.T) {
	var resp Response
	err := json.Unmarshal([]byte(`{"sources":[1,2]}`), &resp)
	assert.Error(t, err)
}

func TestValueMarshalRoundTripsRawBytes(t *testing.T) {
	var resp Response
	require.NoError(t, json.Unmarshal([]byte(`{"error":{"code":7}}`), &resp))

	out, err := json.Marshal(resp.Error)
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":7}`, string(out))

	out, err = json.Marshal(resp.Insight)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
