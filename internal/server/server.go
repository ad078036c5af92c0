// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server hosts the page and turns form posts into controller clicks.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pdiddy/report-insight/internal/controller"
	"github.com/pdiddy/report-insight/internal/logger"
)

const (
	shutdownTimeout = 10 * time.Second

	// refreshSeconds is how often a page showing the loading indicator
	// asks the browser to reload.
	refreshSeconds = "1"
)

// Server serves the page for one controller.
type Server struct {
	ctx    context.Context
	ctrl   *controller.Controller
	engine *gin.Engine
	log    *logger.Logger
}

// New builds the router. Flows triggered through the server run under ctx,
// which outlives the request that started them. gatherer backs /metrics.
func New(ctx context.Context, ctrl *controller.Controller, gatherer prometheus.Gatherer, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Discard()
	}
	s := &Server{
		ctx:    ctx,
		ctrl:   ctrl,
		engine: gin.New(),
		log:    log.WithComponent("server"),
	}

	s.engine.Use(gin.Recovery(), s.accessLog)

	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	ui := s.engine.Group("/ui")
	ui.POST("/submit", s.handleSubmit)
	ui.POST("/compare", s.handleCompare)
	ui.GET("/state", s.handleState)

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// ListenAndServe serves on addr until the server context ends, then shuts
// down gracefully.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving %s: %w", addr, err)
	case <-s.ctx.Done():
	}

	s.log.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func (s *Server) handleIndex(c *gin.Context) {
	var buf bytes.Buffer
	if err := s.ctrl.Elements().Page().Render(&buf); err != nil {
		s.log.Error("rendering page", "error", err)
		c.String(http.StatusInternalServerError, "Render error")
		return
	}
	if s.ctrl.Elements().Snapshot().Loading.Visible {
		c.Header("Refresh", refreshSeconds)
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleSubmit(c *gin.Context) {
	s.ctrl.SubmitText(s.ctx, c.PostForm("query"))
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleCompare(c *gin.Context) {
	s.ctrl.Compare(s.ctx)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleState(c *gin.Context) {
	c.JSON(http.StatusOK, s.ctrl.Elements().Snapshot())
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.log.Debug("http request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"elapsed", time.Since(start),
	)
}
