// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package page holds the host document the controller renders into.
// Elements are addressed by id and manipulated through goquery selections:
// show, hide, replace markup, replace text.
package page

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/report-insight/pkg/types"
)

// Element ids the controller binds to.
const (
	IDSubmitButton  = "submitBtn"
	IDCompareButton = "compareBtn"
	IDQuery         = "query"
	IDLoading       = "loading"
	IDResult        = "result"
	IDSentiment     = "sentiment"
	IDTopics        = "topics"
	IDSourceList    = "sourceList"
)

//go:embed index.html
var defaultDocument string

// Page is a parsed host document. Element accessors are not synchronised:
// code sharing a Page across goroutines mutates it inside Update. Render
// and Snapshot take the lock themselves.
type Page struct {
	mu  sync.Mutex
	doc *goquery.Document
}

// Load parses an HTML host document.
func Load(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing host page: %w", err)
	}
	return &Page{doc: doc}, nil
}

// Default parses the embedded host page.
func Default() (*Page, error) {
	return Load(strings.NewReader(defaultDocument))
}

// Lookup returns the element with the given id.
func (p *Page) Lookup(id string) (*Element, error) {
	sel := p.doc.Find("#" + id)
	if sel.Length() == 0 {
		return nil, fmt.Errorf("host page has no element with id %q", id)
	}
	return &Element{id: id, sel: sel.First()}, nil
}

// Update runs fn while holding the page lock.
func (p *Page) Update(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn()
}

// Render writes the whole document.
func (p *Page) Render(w io.Writer) error {
	p.mu.Lock()
	html, err := p.doc.Html()
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("rendering host page: %w", err)
	}
	_, err = io.WriteString(w, html)
	return err
}

// Elements are the page elements the controller reads and writes, resolved
// once when the controller is built.
type Elements struct {
	page *Page

	SubmitButton  *Element
	CompareButton *Element
	Query         *Element
	Loading       *Element
	Result        *Element
	Sentiment     *Element
	Topics        *Element
	SourceList    *Element
}

// Bind resolves every controller element. It fails naming the first id the
// document lacks.
func (p *Page) Bind() (*Elements, error) {
	els := &Elements{page: p}
	targets := []struct {
		id  string
		dst **Element
	}{
		{IDSubmitButton, &els.SubmitButton},
		{IDCompareButton, &els.CompareButton},
		{IDQuery, &els.Query},
		{IDLoading, &els.Loading},
		{IDResult, &els.Result},
		{IDSentiment, &els.Sentiment},
		{IDTopics, &els.Topics},
		{IDSourceList, &els.SourceList},
	}
	for _, t := range targets {
		el, err := p.Lookup(t.id)
		if err != nil {
			return nil, err
		}
		*t.dst = el
	}
	return els, nil
}

// Page returns the document the elements belong to.
func (e *Elements) Page() *Page { return e.page }

// Snapshot captures the state of every written element.
func (e *Elements) Snapshot() types.PageState {
	e.page.mu.Lock()
	defer e.page.mu.Unlock()
	return types.PageState{
		Query:      e.Query.Value(),
		Loading:    e.Loading.State(),
		Result:     e.Result.State(),
		Sentiment:  e.Sentiment.State(),
		Topics:     e.Topics.State(),
		SourceList: e.SourceList.State(),
	}
}

// Element is one node of the host page.
type Element struct {
	id  string
	sel *goquery.Selection
}

// ID returns the element id.
func (e *Element) ID() string { return e.id }

// Show sets display: block.
func (e *Element) Show() { e.sel.SetAttr("style", "display: block;") }

// Hide sets display: none.
func (e *Element) Hide() { e.sel.SetAttr("style", "display: none;") }

// Visible reports whether the inline style leaves the element displayed.
func (e *Element) Visible() bool {
	style, _ := e.sel.Attr("style")
	style = strings.ReplaceAll(strings.ToLower(style), " ", "")
	return !strings.Contains(style, "display:none")
}

// SetHTML replaces the element's content with markup, which is parsed.
func (e *Element) SetHTML(markup string) { e.sel.SetHtml(markup) }

// SetText replaces the element's content with text, which is never parsed.
func (e *Element) SetText(text string) { e.sel.SetText(text) }

// HTML returns the inner markup.
func (e *Element) HTML() string {
	html, _ := e.sel.Html()
	return html
}

// Text returns the text content.
func (e *Element) Text() string { return e.sel.Text() }

// Value returns the value attribute of an input.
func (e *Element) Value() string { return e.sel.AttrOr("value", "") }

// SetValue sets the value attribute of an input.
func (e *Element) SetValue(v string) { e.sel.SetAttr("value", v) }

// Find returns the descendants of the element matching selector.
func (e *Element) Find(selector string) *goquery.Selection { return e.sel.Find(selector) }

// State captures the element for a snapshot.
func (e *Element) State() types.ElementState {
	return types.ElementState{
		ID:      e.id,
		Visible: e.Visible(),
		HTML:    e.HTML(),
		Text:    e.Text(),
	}
}
