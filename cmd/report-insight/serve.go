// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/report-insight/internal/api"
	"github.com/pdiddy/report-insight/internal/controller"
	"github.com/pdiddy/report-insight/internal/metrics"
	"github.com/pdiddy/report-insight/internal/render"
	"github.com/pdiddy/report-insight/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the query and compare page",
	Long: `Serve hosts the page in a browser-facing HTTP server. The submit and
compare buttons post back to the server, which calls the analysis API and
renders the answer into the page. While a request is outstanding the page
shows its loading indicator and refreshes itself.

Endpoints: / (page), /ui/submit, /ui/compare, /ui/state (JSON snapshot),
/healthz, /metrics.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("page", "", "host page to serve instead of the built-in one")

	if err := viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("server.page_path", serveCmd.Flags().Lookup("page")); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	gin.SetMode(cfg.Server.GinMode)

	p, err := loadPage(cfg.Server.PagePath)
	if err != nil {
		return err
	}
	els, err := p.Bind()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client := api.New(nil, cfg.API)
	ctrl := controller.New(els, client, render.New(cfg.Render), controller.Options{
		Logger:         log,
		Metrics:        metrics.New(reg),
		AnswerFallback: cfg.Render.AnswerFallback,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("analysis API", "query", client.QueryURL(), "compare", client.CompareURL())
	return server.New(ctx, ctrl, reg, log).ListenAndServe(cfg.Server.Addr)
}
