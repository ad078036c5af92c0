// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package page

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPageBindsAllElements(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	els, err := p.Bind()
	require.NoError(t, err)

	assert.Equal(t, IDSubmitButton, els.SubmitButton.ID())
	assert.Equal(t, IDCompareButton, els.CompareButton.ID())
	assert.False(t, els.Loading.Visible())
	assert.False(t, els.Result.Visible())
	assert.False(t, els.SourceList.Visible())
	assert.True(t, els.Sentiment.Visible())
	assert.Equal(t, "", els.Query.Value())
	assert.Same(t, p, els.Page())
}

func TestBindReportsMissingElement(t *testing.T) {
	p, err := Load(strings.NewReader(`<html><body><div id="result"></div></body></html>`))
	require.NoError(t, err)

	_, err = p.Bind()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"submitBtn"`)
}

func TestShowHide(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)
	el, err := p.Lookup(IDLoading)
	require.NoError(t, err)

	el.Show()
	assert.True(t, el.Visible())
	el.Hide()
	assert.False(t, el.Visible())
}

func TestSetHTMLParsesMarkupAndSetTextDoesNot(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)
	el, err := p.Lookup(IDResult)
	require.NoError(t, err)

	el.SetHTML(`<b>bold</b> text`)
	assert.Equal(t, 1, el.Find("b").Length())
	assert.Equal(t, "bold text", el.Text())

	el.SetText(`<b>bold</b> text`)
	assert.Equal(t, 0, el.Find("b").Length())
	assert.Equal(t, "<b>bold</b> text", el.Text())
	assert.Contains(t, el.HTML(), "&lt;b&gt;")
}

func TestValueRoundTrip(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)
	el, err := p.Lookup(IDQuery)
	require.NoError(t, err)

	el.SetValue(`revenue "2024"`)
	assert.Equal(t, `revenue "2024"`, el.Value())
}

func TestRenderAndSnapshot(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)
	els, err := p.Bind()
	require.NoError(t, err)

	p.Update(func() {
		els.Query.SetValue("outlook")
		els.Result.Show()
		els.Result.SetHTML("Stable <i>growth</i>")
	})

	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf))
	assert.Contains(t, buf.String(), "<!DOCTYPE html>")
	assert.Contains(t, buf.String(), "Stable <i>growth</i>")

	st := els.Snapshot()
	assert.Equal(t, "outlook", st.Query)
	assert.True(t, st.Result.Visible)
	assert.Equal(t, "Stable growth", st.Result.Text)
	assert.Equal(t, "result", st.Result.ID)
	assert.False(t, st.Loading.Visible)
}
