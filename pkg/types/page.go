// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ElementState is the visible state of one page element.
type ElementState struct {
	// ID is the element's id attribute on the host page.
	ID string `json:"id" yaml:"id"`

	// Visible reports whether the element is displayed.
	Visible bool `json:"visible" yaml:"visible"`

	// HTML is the element's inner markup.
	HTML string `json:"html" yaml:"html"`

	// Text is the element's text content with markup stripped.
	Text string `json:"text" yaml:"text"`
}

// PageState is a snapshot of every element the controller writes to.
type PageState struct {
	// Query is the current value of the query input.
	Query string `json:"query" yaml:"query"`

	Loading    ElementState `json:"loading" yaml:"loading"`
	Result     ElementState `json:"result" yaml:"result"`
	Sentiment  ElementState `json:"sentiment" yaml:"sentiment"`
	Topics     ElementState `json:"topics" yaml:"topics"`
	SourceList ElementState `json:"source_list" yaml:"source_list"`
}
