package app

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"signalpro/internal/signal"
	"signalpro/internal/trajectory"
)

var validate = validator.New()

// StatInput is one key statistic in wire form.
type StatInput struct {
	Value       string `json:"value" validate:"required"`
	Label       string `json:"label" validate:"required"`
	IsFavorable *bool  `json:"isFavorable" default:"true"`
}

// GenerateRequest is the transliterated wire form of a signal record,
// accepted by the CLI --input file and the HTTP API.
type GenerateRequest struct {
	Ticker        string  `json:"ticker" validate:"required"`
	CompanyName   string  `json:"companyName" validate:"required"`
	SignalKind    string  `json:"signalKind" validate:"required"`
	CurrentPrice  float64 `json:"currentPrice" validate:"gt=0"`
	ChangePercent float64 `json:"changePercent"`

	Priority            string      `json:"priority" default:"normal" validate:"oneof=elevated-urgent elevated-hot informational-watch normal"`
	Stats               []StatInput `json:"stats" validate:"dive"`
	StrategyTitle       string      `json:"strategyTitle"`
	StrategyDescription string      `json:"strategyDescription"`
	StrategyLinkText    string      `json:"strategyLinkText"`
	StrategyLinkURL     string      `json:"strategyLinkUrl"`

	// ChartPattern drives trajectory synthesis; NoChart omits the chart
	// section entirely. EventLabel overrides the synthesized label.
	ChartPattern string `json:"chartPattern" default:"momentum"`
	NoChart      bool   `json:"noChart"`
	EventLabel   string `json:"eventLabel"`

	Timestamp     string `json:"timestamp"`
	Notifications *bool  `json:"notifications" default:"true"`
	RiskStyle     bool   `json:"riskStyle"`
	BorderStyle   string `json:"borderStyle" default:"solid" validate:"oneof=solid dashed"`
}

// Normalize applies defaults and validates the request shape. Domain
// semantics (kind names, strategy completeness) are enforced by
// signal.NewRecord.
func (r *GenerateRequest) Normalize() error {
	if err := defaults.Set(r); err != nil {
		return fmt.Errorf("apply request defaults: %w", err)
	}
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validate request: %w", err)
	}
	return nil
}

// BuildRecord maps a normalized request to a validated signal record,
// synthesizing the chart series unless noChart is set.
func (r *GenerateRequest) BuildRecord() (*signal.Record, error) {
	price := decimal.NewFromFloat(r.CurrentPrice)
	changePct := decimal.NewFromFloat(r.ChangePercent)

	params := signal.RecordParams{
		Ticker:              strings.ToUpper(strings.TrimSpace(r.Ticker)),
		DisplayName:         r.CompanyName,
		Kind:                signal.Kind(r.SignalKind),
		CurrentPrice:        price,
		PriceChangeAbsolute: price.Mul(changePct).Div(decimal.NewFromInt(100)),
		PriceChangePercent:  changePct,
		Priority:            signal.Priority(r.Priority),
		TimestampLabel:      r.Timestamp,
		Notifications:       r.Notifications,
		RiskStyleEnabled:    r.RiskStyle,
		BorderVariant:       signal.BorderVariant(r.BorderStyle),
	}

	for _, s := range r.Stats {
		favorable := true
		if s.IsFavorable != nil {
			favorable = *s.IsFavorable
		}
		params.KeyStatistics = append(params.KeyStatistics, signal.KeyStatistic{
			DisplayValue: s.Value,
			Label:        s.Label,
			IsFavorable:  favorable,
		})
	}

	if r.StrategyTitle != "" && r.StrategyDescription != "" {
		params.Strategy = &signal.StrategyNote{
			Title:       r.StrategyTitle,
			Description: r.StrategyDescription,
			LinkText:    r.StrategyLinkText,
			LinkURL:     r.StrategyLinkURL,
		}
	}

	if !r.NoChart {
		series, err := trajectory.Synthesize(params.Ticker, price, trajectory.Pattern(r.ChartPattern))
		if err != nil {
			return nil, err
		}
		if r.EventLabel != "" {
			series.EventLabel = r.EventLabel
		}
		params.ChartSeries = series
	}

	return signal.NewRecord(params)
}
