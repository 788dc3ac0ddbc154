package app

import (
	"errors"

	"signalpro/internal/output"
	"signalpro/internal/render"
)

// GenerateOptions parameterise a single document generation.
type GenerateOptions struct {
	Request  GenerateRequest
	Filename string // optional override of the default <TICKER>_<kind>.html
	PNGPath  string // optional trajectory PNG export
}

// GenerateResult bundles the write result and the companion summary.
type GenerateResult struct {
	File    output.Result
	Summary output.Summary
}

// Generate renders one signal document and writes it to the output dir.
// The request is validated first; nothing is written on any failure.
func (a *App) Generate(opts GenerateOptions) (GenerateResult, error) {
	req := opts.Request
	if err := req.Normalize(); err != nil {
		return GenerateResult{}, err
	}

	rec, err := req.BuildRecord()
	if err != nil {
		return GenerateResult{}, err
	}

	doc, err := render.Compose(rec)
	if err != nil {
		return GenerateResult{}, err
	}

	filename := opts.Filename
	if filename == "" {
		filename = output.DefaultFilename(rec)
	}

	res, err := a.NewWriter().Write(filename, doc)
	if err != nil {
		return GenerateResult{}, err
	}

	if opts.PNGPath != "" {
		if rec.ChartSeries == nil {
			return GenerateResult{}, errors.New("png export requires a chart series; remove noChart")
		}
		pngOpts := output.PNGOptions{Width: a.Config.Chart.PNGWidth, Height: a.Config.Chart.PNGHeight}
		if err := output.WriteTrajectoryPNG(opts.PNGPath, rec.ChartSeries, pngOpts); err != nil {
			return GenerateResult{}, err
		}
		a.Logger.Info().Str("path", opts.PNGPath).Msg("trajectory png written")
	}

	summary := output.SummaryFor(rec)
	summary.Filename = res.Filename

	a.Logger.Info().
		Str("ticker", rec.Ticker).
		Str("kind", string(rec.Kind)).
		Str("priority", string(rec.Priority)).
		Int("bytes", res.Bytes).
		Msg("signal generated")

	return GenerateResult{File: res, Summary: summary}, nil
}

// Preview validates a request and returns its derived summary without
// writing any document.
func (a *App) Preview(req GenerateRequest) (output.Summary, error) {
	if err := req.Normalize(); err != nil {
		return output.Summary{}, err
	}
	rec, err := req.BuildRecord()
	if err != nil {
		return output.Summary{}, err
	}
	return output.SummaryFor(rec), nil
}
