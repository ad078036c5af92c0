package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pdiddy/report-insight/internal/api"
	"github.com/pdiddy/report-insight/internal/render"
	"github.com/pdiddy/report-insight/pkg/types"
)

// configErr records a config file named with --config that could not be read.
var configErr error

// setDefaults registers every config key so AutomaticEnv can resolve it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", api.DefaultBaseURL)
	v.SetDefault("api.query_path", api.DefaultQueryPath)
	v.SetDefault("api.compare_path", api.DefaultComparePath)
	v.SetDefault("api.timeout", 0)
	v.SetDefault("api.user_agent", "report-insight/"+version)

	v.SetDefault("render.pdf_path", render.DefaultPDFPath)
	v.SetDefault("render.escape_markup", false)
	v.SetDefault("render.answer_fallback", false)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.page_path", "")
	v.SetDefault("server.gin_mode", "release")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// loadConfig decodes the merged flag, env, file and default settings.
func loadConfig() (types.Config, error) {
	if configErr != nil {
		return types.Config{}, configErr
	}
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (types.Config, error) {
	var out types.Config
	if err := v.Unmarshal(&out); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	return out, nil
}
