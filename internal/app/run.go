package app

import (
	"context"

	"github.com/vk/ediref/internal/ctxlog"
	"github.com/vk/ediref/internal/report"
)

// Run executes exactly one catalog operation based on the provided
// configuration. Mode priority: standards listing, then code search, then
// document listing. Every well-formed invocation succeeds; "no results" is
// reported on the output writer, not through the error return.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	r := report.New(a.outW, !appConfig.NoColor)

	switch {
	case appConfig.ListStandards:
		r.Standards(ctx, appConfig.Detailed)
	case appConfig.Code != "":
		r.Search(ctx, appConfig.Code, appConfig.ShowAll)
	default:
		r.Documents(ctx, appConfig.StandardFilter, appConfig.IndustryFilter)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
