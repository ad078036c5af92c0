// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render projects a decoded analysis response onto the page: the
// result text, the sentiment and topic blocks, and the source links.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/pdiddy/report-insight/internal/page"
	"github.com/pdiddy/report-insight/pkg/types"
)

// DefaultPDFPath is the placeholder document every source link targets.
const DefaultPDFPath = "path/to/pdf"

// NoSources is the sources block shown when the response lists none.
const NoSources = "<strong>Sources:</strong> No source sentences provided."

// Renderer builds element markup from a response.
type Renderer struct {
	pdfPath string
	escape  bool
}

// New returns a Renderer for cfg.
func New(cfg types.RenderConfig) *Renderer {
	pdfPath := cfg.PDFPath
	if pdfPath == "" {
		pdfPath = DefaultPDFPath
	}
	return &Renderer{pdfPath: pdfPath, escape: cfg.EscapeMarkup}
}

// Result returns the markup for the result element.
func (r *Renderer) Result(v types.Value) string {
	return r.markup(v.String())
}

// Sentiment returns the "Sentiment Analysis" block.
func (r *Renderer) Sentiment(raw json.RawMessage) string {
	return r.jsonBlock("Sentiment Analysis", raw)
}

// Topics returns the "Topic Modeling" block.
func (r *Renderer) Topics(raw json.RawMessage) string {
	return r.jsonBlock("Topic Modeling", raw)
}

// Sources returns the sources block. Each source becomes a link to the
// placeholder document anchored at its 1-based list position.
func (r *Renderer) Sources(sources []string) string {
	if len(sources) == 0 {
		return NoSources
	}
	var b strings.Builder
	b.WriteString("<strong>Sources:</strong><ul>")
	for i, src := range sources {
		fmt.Fprintf(&b, `<li><a href="%s#page=%d" target="_blank">%s</a></li>`,
			html.EscapeString(r.pdfPath), i+1, r.markup(src))
	}
	b.WriteString("</ul>")
	return b.String()
}

// Apply writes the sentiment, topics and sources blocks for resp. The
// sources block is always shown. Callers sharing the page hold its lock.
func (r *Renderer) Apply(els *page.Elements, resp *types.Response) {
	els.Sentiment.SetHTML(r.Sentiment(resp.Sentiment))
	els.Topics.SetHTML(r.Topics(resp.Topics))
	els.SourceList.Show()
	els.SourceList.SetHTML(r.Sources(resp.Sources))
}

func (r *Renderer) jsonBlock(title string, raw json.RawMessage) string {
	return "<h3>" + title + "</h3><pre>" + r.markup(PrettyJSON(raw)) + "</pre>"
}

func (r *Renderer) markup(s string) string {
	if r.escape {
		return html.EscapeString(s)
	}
	return s
}

// PrettyJSON indents raw with two spaces. An absent value renders as
// "undefined".
func PrettyJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "undefined"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
