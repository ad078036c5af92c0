// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/report-insight/internal/api"
	"github.com/pdiddy/report-insight/internal/controller"
	"github.com/pdiddy/report-insight/internal/page"
	"github.com/pdiddy/report-insight/internal/render"
)

// --- query subcommand ---

var queryCmd = &cobra.Command{
	Use:   "query [text...]",
	Short: "Ask the analysis API a question and print the rendered page",
	Long: `Query types the given text into the query box, clicks submit, waits for
the analysis API, and prints what the page shows: the insight (or the
backend's error), sentiment, topics and source links. An empty query is
sent as-is.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		return runFlow(cmd, func(ctx context.Context, c *controller.Controller) *controller.Pending {
			return c.SubmitText(ctx, text)
		})
	},
}

// --- compare subcommand ---

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the two reports and print the rendered page",
	Long: `Compare clicks the compare button: the fixed report pair Report1 and
Report2 is sent to the analysis API and the comparison (or the backend's
error) is printed with sentiment, topics and source links.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFlow(cmd, func(ctx context.Context, c *controller.Controller) *controller.Pending {
			return c.Compare(ctx)
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{queryCmd, compareCmd} {
		c.Flags().String("format", "text", "output format: text, json, yaml, or html")
		rootCmd.AddCommand(c)
	}
}

// --- shared helpers ---

func runFlow(cmd *cobra.Command, click func(context.Context, *controller.Controller) *controller.Pending) error {
	format, _ := cmd.Flags().GetString("format")
	if !validFormat(format) {
		return fmt.Errorf("unsupported format %q: use text, json, yaml, or html", format)
	}

	p, err := loadPage(cfg.Server.PagePath)
	if err != nil {
		return err
	}
	els, err := p.Bind()
	if err != nil {
		return err
	}

	ctrl := controller.New(els, api.New(nil, cfg.API), render.New(cfg.Render), controller.Options{
		Logger:         log,
		AnswerFallback: cfg.Render.AnswerFallback,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	pending := click(ctx, ctrl)
	if err := pending.Wait(ctx); err != nil {
		return err
	}

	if err := writePage(cmd.OutOrStdout(), format, els); err != nil {
		return err
	}
	if pending.Err() != nil {
		return fmt.Errorf("request failed: %w", pending.Err())
	}
	return nil
}

// loadPage returns the host page at path, or the embedded page when path is empty.
func loadPage(path string) (*page.Page, error) {
	if path == "" {
		return page.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening host page: %w", err)
	}
	defer f.Close()
	return page.Load(f)
}

func validFormat(format string) bool {
	switch format {
	case "text", "json", "yaml", "html":
		return true
	}
	return false
}

func writePage(w io.Writer, format string, els *page.Elements) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(els.Snapshot())
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(els.Snapshot()); err != nil {
			return err
		}
		return enc.Close()
	case "html":
		return els.Page().Render(w)
	default:
		return writeText(w, els)
	}
}

// writeText prints the page the way a reader would see it.
func writeText(w io.Writer, els *page.Elements) error {
	var b strings.Builder
	els.Page().Update(func() {
		b.WriteString(els.Result.Text())
		b.WriteString("\n")

		for _, block := range []*page.Element{els.Sentiment, els.Topics} {
			title := block.Find("h3").Text()
			if title == "" {
				continue
			}
			fmt.Fprintf(&b, "\n%s\n%s\n", title, block.Find("pre").Text())
		}

		if !els.SourceList.Visible() {
			return
		}
		links := els.SourceList.Find("a")
		if links.Length() == 0 {
			fmt.Fprintf(&b, "\n%s\n", els.SourceList.Text())
			return
		}
		b.WriteString("\nSources:\n")
		links.Each(func(i int, a *goquery.Selection) {
			fmt.Fprintf(&b, "  %d. %s (%s)\n", i+1, a.Text(), a.AttrOr("href", ""))
		})
	})
	_, err := io.WriteString(w, b.String())
	return err
}
