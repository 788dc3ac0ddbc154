// Package signal defines the data model for a single trading signal:
// its kind, priority, price context, key statistics, optional strategy
// note, and optional synthetic chart series. Records are built through
// NewRecord, which owns all structural validation; downstream consumers
// (the compositor, the writers) read records without mutating them.
package signal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SeriesLen is the fixed number of points in every chart sequence: 20
// historical points ending at "now" and 20 forward points per band.
const SeriesLen = 20

// Strategy link defaults, applied when a note omits them.
const (
	DefaultLinkText = "Learn more →"
	DefaultLinkURL  = "https://example.com/strategy"
)

// BorderVariant selects the card border treatment.
type BorderVariant string

const (
	BorderSolid  BorderVariant = "solid"
	BorderDashed BorderVariant = "dashed"
)

// KeyStatistic is one value+label cell in the stats grid. DisplayValue is
// opaque display text; it is never parsed numerically. IsFavorable alone
// decides the value's coloring.
type KeyStatistic struct {
	DisplayValue string
	Label        string
	IsFavorable  bool
}

// StrategyNote describes the trade idea attached to a signal. A nil note
// omits the strategy section from the rendered document.
type StrategyNote struct {
	Title       string
	Description string
	LinkText    string
	LinkURL     string
}

// ChartSeries holds one now-centered trajectory: SeriesLen historical
// points ending near the current price, followed by three forward
// scenario bands of SeriesLen points each.
type ChartSeries struct {
	Historical  []float64
	BandUpper   []float64
	BandBase    []float64
	BandLower   []float64
	EventLabel  string
	AccentColor string
}

func (s *ChartSeries) validate() error {
	for _, seq := range []struct {
		name   string
		points []float64
	}{
		{"historical", s.Historical},
		{"band_upper", s.BandUpper},
		{"band_base", s.BandBase},
		{"band_lower", s.BandLower},
	} {
		if len(seq.points) != SeriesLen {
			return fmt.Errorf("chart series %s must have %d points, got %d", seq.name, SeriesLen, len(seq.points))
		}
	}
	return nil
}

// RecordParams collects every field of a signal record. Ticker through
// PriceChangePercent are required; the rest default as documented on Record.
type RecordParams struct {
	Ticker              string
	DisplayName         string
	Kind                Kind
	CurrentPrice        decimal.Decimal
	PriceChangeAbsolute decimal.Decimal
	PriceChangePercent  decimal.Decimal

	Priority         Priority
	KeyStatistics    []KeyStatistic
	Strategy         *StrategyNote
	ChartSeries      *ChartSeries
	TimestampLabel   string
	Notifications    *bool
	RiskStyleEnabled bool
	BorderVariant    BorderVariant
}

// Record is the root aggregate handed to the compositor. Construct through
// NewRecord; the zero value is not usable.
type Record struct {
	Ticker              string
	DisplayName         string
	Kind                Kind
	CurrentPrice        decimal.Decimal
	PriceChangeAbsolute decimal.Decimal
	PriceChangePercent  decimal.Decimal

	Priority               Priority
	KeyStatistics          []KeyStatistic
	Strategy               *StrategyNote
	ChartSeries            *ChartSeries
	TimestampLabel         string
	NotificationsDefaultOn bool
	RiskStyleEnabled       bool
	BorderVariant          BorderVariant
}

// NewRecord validates params and materialises a Record with defaults
// applied. This is the single validation boundary: composition never
// re-checks the record.
func NewRecord(p RecordParams) (*Record, error) {
	if p.Ticker == "" {
		return nil, fmt.Errorf("signal: ticker is required")
	}
	if p.DisplayName == "" {
		return nil, fmt.Errorf("signal: display name is required")
	}
	if !p.Kind.Valid() {
		if p.Kind == "" {
			return nil, fmt.Errorf("signal: kind is required")
		}
		return nil, fmt.Errorf("signal: unknown kind %q", p.Kind)
	}
	if !p.CurrentPrice.IsPositive() {
		return nil, fmt.Errorf("signal: current price must be greater than zero, got %s", p.CurrentPrice)
	}

	priority := p.Priority
	if priority == "" {
		priority = PriorityNormal
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("signal: unknown priority %q", p.Priority)
	}

	border := p.BorderVariant
	if border == "" {
		border = BorderSolid
	}
	if border != BorderSolid && border != BorderDashed {
		return nil, fmt.Errorf("signal: unknown border variant %q", p.BorderVariant)
	}

	if p.ChartSeries != nil {
		if err := p.ChartSeries.validate(); err != nil {
			return nil, fmt.Errorf("signal: %w", err)
		}
	}

	strategy := p.Strategy
	if strategy != nil {
		if strategy.Title == "" || strategy.Description == "" {
			return nil, fmt.Errorf("signal: strategy note requires title and description")
		}
		note := *strategy
		if note.LinkText == "" {
			note.LinkText = DefaultLinkText
		}
		if note.LinkURL == "" {
			note.LinkURL = DefaultLinkURL
		}
		strategy = &note
	}

	timestamp := p.TimestampLabel
	if timestamp == "" {
		timestamp = "Just now"
	}

	notifications := true
	if p.Notifications != nil {
		notifications = *p.Notifications
	}

	return &Record{
		Ticker:                 p.Ticker,
		DisplayName:            p.DisplayName,
		Kind:                   p.Kind,
		CurrentPrice:           p.CurrentPrice,
		PriceChangeAbsolute:    p.PriceChangeAbsolute,
		PriceChangePercent:     p.PriceChangePercent,
		Priority:               priority,
		KeyStatistics:          p.KeyStatistics,
		Strategy:               strategy,
		ChartSeries:            p.ChartSeries,
		TimestampLabel:         timestamp,
		NotificationsDefaultOn: notifications,
		RiskStyleEnabled:       p.RiskStyleEnabled,
		BorderVariant:          border,
	}, nil
}
