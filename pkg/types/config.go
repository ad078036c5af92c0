package types

import "time"

// HTTPConfig holds shared HTTP settings used for calls to the analysis API.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout.
	Timeout time.Duration `json:"timeout" mapstructure:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with API requests
	// (e.g. "report-insight/0.1").
	UserAgent string `json:"user_agent" mapstructure:"user_agent" yaml:"user_agent"`
}

// APIConfig locates the analysis backend.
type APIConfig struct {
	HTTPConfig `mapstructure:",squash" yaml:",inline"`

	// BaseURL is the scheme and host of the backend (default http://127.0.0.1:5000).
	BaseURL string `json:"base_url" mapstructure:"base_url" yaml:"base_url"`

	// QueryPath and ComparePath are joined onto BaseURL.
	QueryPath   string `json:"query_path" mapstructure:"query_path" yaml:"query_path"`
	ComparePath string `json:"compare_path" mapstructure:"compare_path" yaml:"compare_path"`
}

// RenderConfig controls how responses are projected onto the page.
type RenderConfig struct {
	// PDFPath is the placeholder document every source link points at.
	PDFPath string `json:"pdf_path" mapstructure:"pdf_path" yaml:"pdf_path"`

	// EscapeMarkup escapes server-supplied strings before they reach the
	// page. Off by default: the backend's markup is interpreted as-is.
	EscapeMarkup bool `json:"escape_markup" mapstructure:"escape_markup" yaml:"escape_markup"`

	// AnswerFallback lets the submit flow display the backend's "answer"
	// field when "insight" is missing.
	AnswerFallback bool `json:"answer_fallback" mapstructure:"answer_fallback" yaml:"answer_fallback"`
}

// ServerConfig holds settings for the page server.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" mapstructure:"addr" yaml:"addr"`

	// PagePath optionally replaces the embedded host page.
	PagePath string `json:"page_path,omitempty" mapstructure:"page_path" yaml:"page_path,omitempty"`

	// GinMode is passed to gin.SetMode (debug, release, test).
	GinMode string `json:"gin_mode" mapstructure:"gin_mode" yaml:"gin_mode"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" mapstructure:"level" yaml:"level"`

	// Format is "text" (colourised) or "json".
	Format string `json:"format" mapstructure:"format" yaml:"format"`
}

// Config groups all settings of report-insight.
type Config struct {
	API    APIConfig    `json:"api" mapstructure:"api" yaml:"api"`
	Render RenderConfig `json:"render" mapstructure:"render" yaml:"render"`
	Server ServerConfig `json:"server" mapstructure:"server" yaml:"server"`
	Log    LogConfig    `json:"log" mapstructure:"log" yaml:"log"`
}
