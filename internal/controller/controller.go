// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package controller implements the query and compare flows: a click shows
// the loading indicator, one request goes to the analysis API, and the
// decoded response is projected onto the page.
package controller

import (
	"context"
	"time"

	"github.com/pdiddy/report-insight/internal/api"
	"github.com/pdiddy/report-insight/internal/logger"
	"github.com/pdiddy/report-insight/internal/metrics"
	"github.com/pdiddy/report-insight/internal/page"
	"github.com/pdiddy/report-insight/internal/render"
	"github.com/pdiddy/report-insight/pkg/types"
)

// Flow names.
const (
	FlowSubmit  = "submit"
	FlowCompare = "compare"
)

// Report identifiers sent by every compare click.
const (
	CompareReport1 = "Report1"
	CompareReport2 = "Report2"
)

// ErrorPrefix starts the result text of a failed request.
const ErrorPrefix = "Error: "

// Backend is the analysis API the flows call.
type Backend interface {
	Query(ctx context.Context, query string) (*api.Result, error)
	Compare(ctx context.Context, report1, report2 string) (*api.Result, error)
}

// Options carries the optional collaborators of a Controller.
type Options struct {
	Logger  *logger.Logger
	Metrics *metrics.Recorder

	// AnswerFallback makes the submit flow show "answer" when "insight"
	// is missing.
	AnswerFallback bool
}

// Controller binds the submit and compare flows to page elements.
type Controller struct {
	els            *page.Elements
	backend        Backend
	renderer       *render.Renderer
	log            *logger.Logger
	metrics        *metrics.Recorder
	answerFallback bool

	// latest is the ticket of the most recent click. Guarded by the page lock.
	latest uint64
}

// New returns a Controller writing to els.
func New(els *page.Elements, backend Backend, renderer *render.Renderer, opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &Controller{
		els:            els,
		backend:        backend,
		renderer:       renderer,
		log:            log.WithComponent("controller"),
		metrics:        opts.Metrics,
		answerFallback: opts.AnswerFallback,
	}
}

// Elements returns the page elements the controller writes to.
func (c *Controller) Elements() *page.Elements { return c.els }

// Pending tracks one flow invocation.
type Pending struct {
	ticket uint64
	done   chan struct{}
	stale  bool
	err    error
}

// Ticket returns the sequence number assigned to the click.
func (p *Pending) Ticket() uint64 { return p.ticket }

// Done is closed once the response (or failure) has been handled.
func (p *Pending) Done() <-chan struct{} { return p.done }

// Wait blocks until the flow is done or ctx ends.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stale reports whether a newer click superseded this one, so its response
// was discarded. Only meaningful after Done.
func (p *Pending) Stale() bool { return p.stale }

// Err returns the network or decode failure of the request, if any. Only
// meaningful after Done.
func (p *Pending) Err() error { return p.err }

// Submit reads the query input and posts it to the query endpoint. It
// returns as soon as the request is under way.
func (c *Controller) Submit(ctx context.Context) *Pending {
	return c.submit(ctx, c.els.Query.Value)
}

// SubmitText writes text into the query input and submits it, as one step
// with respect to other clicks.
func (c *Controller) SubmitText(ctx context.Context, text string) *Pending {
	return c.submit(ctx, func() string {
		c.els.Query.SetValue(text)
		return text
	})
}

func (c *Controller) submit(ctx context.Context, read func() string) *Pending {
	var query string
	p := c.begin(func() { query = read() })

	call := func(ctx context.Context) (*api.Result, error) {
		return c.backend.Query(ctx, query)
	}
	pick := func(resp *types.Response) (types.Value, bool) {
		primary := resp.Insight
		if c.answerFallback {
			primary = primary.Or(resp.Answer)
		}
		return primary.Or(resp.Error), primary.Truthy()
	}
	go c.run(ctx, FlowSubmit, p, call, pick)
	return p
}

// Compare posts the fixed report pair to the compare endpoint. Nothing is
// read from the page.
func (c *Controller) Compare(ctx context.Context) *Pending {
	p := c.begin(nil)

	call := func(ctx context.Context) (*api.Result, error) {
		return c.backend.Compare(ctx, CompareReport1, CompareReport2)
	}
	pick := func(resp *types.Response) (types.Value, bool) {
		return resp.Comparison.Or(resp.Error), resp.Comparison.Truthy()
	}
	go c.run(ctx, FlowCompare, p, call, pick)
	return p
}

// begin issues a ticket, runs read under the page lock, then shows the
// loading indicator and hides the result.
func (c *Controller) begin(read func()) *Pending {
	p := &Pending{done: make(chan struct{})}
	c.els.Page().Update(func() {
		if read != nil {
			read()
		}
		c.latest++
		p.ticket = c.latest
		c.els.Loading.Show()
		c.els.Result.Hide()
	})
	return p
}

func (c *Controller) run(
	ctx context.Context,
	flow string,
	p *Pending,
	call func(context.Context) (*api.Result, error),
	pick func(*types.Response) (types.Value, bool),
) {
	defer close(p.done)

	ctx = logger.WithFlow(logger.WithRequestID(ctx, logger.GenerateRequestID()), flow)
	log := c.log.WithContext(ctx)

	start := time.Now()
	c.metrics.Started(flow)
	log.Debug("request sent", "ticket", p.ticket)

	res, err := call(ctx)
	p.err = err

	var answered bool
	c.els.Page().Update(func() {
		if p.ticket != c.latest {
			p.stale = true
			return
		}
		c.els.Loading.Hide()
		c.els.Result.Show()
		if err != nil {
			c.els.Result.SetText(ErrorPrefix + err.Error())
			return
		}
		var shown types.Value
		shown, answered = pick(&res.Response)
		c.els.Result.SetHTML(c.renderer.Result(shown))
		c.renderer.Apply(c.els, &res.Response)
	})

	elapsed := time.Since(start)
	switch {
	case p.stale:
		log.Debug("discarded response superseded by a newer click", "ticket", p.ticket, "elapsed", elapsed)
		c.metrics.Finished(flow, metrics.OutcomeStale, elapsed)
	case err != nil:
		log.Error("request failed", "error", err, "elapsed", elapsed)
		c.metrics.Finished(flow, metrics.OutcomeFailure, elapsed)
	default:
		if res.StatusCode >= 400 {
			log.Warn("backend returned an error status", "status", res.StatusCode)
		}
		outcome := metrics.OutcomeSuccess
		if !answered {
			outcome = metrics.OutcomeAppError
		}
		log.Info("response rendered", "status", res.StatusCode, "sources", len(res.Response.Sources), "elapsed", elapsed)
		c.metrics.Finished(flow, outcome, elapsed)
	}
}
