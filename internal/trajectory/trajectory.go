// Package trajectory synthesises plausible price paths for signal charts.
// Given a current price and a named pattern it produces 20 historical
// points ending at the price plus three forward scenario bands. Output is
// intentionally non-deterministic: each point carries bounded uniform
// noise, and only the shape and boundary behaviour are contractual.
package trajectory

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"signalpro/internal/signal"
)

// Pattern names the historical shape to synthesise.
type Pattern string

const (
	PatternMomentum Pattern = "momentum"
	PatternVolatile Pattern = "volatile"
	PatternBreakout Pattern = "breakout"
	PatternDecline  Pattern = "decline"
)

// DefaultAccent is the brand green used until the compositor applies the
// per-kind accent.
const DefaultAccent = "#00ff88"

// ErrNonPositivePrice rejects synthesis requests with a price <= 0.
var ErrNonPositivePrice = errors.New("current price must be greater than zero")

// Synthesize builds a chart series for symbol around price. Unrecognised
// patterns take the decline shape. The symbol is only used for labelling.
func Synthesize(symbol string, price decimal.Decimal, pattern Pattern) (*signal.ChartSeries, error) {
	if !price.IsPositive() {
		return nil, fmt.Errorf("synthesize %s: %w", symbol, ErrNonPositivePrice)
	}

	p := price.InexactFloat64()
	historical := make([]float64, signal.SeriesLen)

	switch pattern {
	case PatternMomentum:
		// Prior run-up: climb from 0.8P, then hover at P.
		base := p * 0.8
		for i := range historical {
			if i < 15 {
				historical[i] = base + (p-base)*float64(i)/15 + noise(2)
			} else {
				historical[i] = p + noise(3)
			}
		}
	case PatternVolatile:
		// Oscillation around P with no directional drift.
		for i := range historical {
			historical[i] = p + math.Sin(float64(i)*0.5)*p*0.1 + noise(5)
		}
	case PatternBreakout:
		// Consolidation plateau near 0.9P, late ramp into P.
		for i := range historical {
			if i < 15 {
				historical[i] = p*0.9 + noise(2)
			} else {
				historical[i] = p*0.9 + (p-p*0.9)*float64(i-15)/5
			}
		}
	default:
		// Decline, and the fallback for unknown patterns: downtrend from 1.2P.
		base := p * 1.2
		for i := range historical {
			historical[i] = base - (base-p)*float64(i)/signal.SeriesLen + noise(2)
		}
	}

	upper := make([]float64, signal.SeriesLen)
	baseBand := make([]float64, signal.SeriesLen)
	lower := make([]float64, signal.SeriesLen)
	for i := 0; i < signal.SeriesLen; i++ {
		progress := float64(i) / signal.SeriesLen
		// Upper and lower bands are deliberately superlinear so the
		// scenarios fan out at later indices.
		upper[i] = p + p*0.3*progress + math.Pow(float64(i), 1.1)
		baseBand[i] = p + p*0.1*progress
		lower[i] = p - p*0.2*progress - math.Pow(float64(i), 1.05)
	}

	return &signal.ChartSeries{
		Historical:  historical,
		BandUpper:   upper,
		BandBase:    baseBand,
		BandLower:   lower,
		EventLabel:  fmt.Sprintf("Signal @ $%s", price.StringFixed(2)),
		AccentColor: DefaultAccent,
	}, nil
}

// noise draws from a bounded uniform distribution over [-bound, bound].
func noise(bound float64) float64 {
	return (rand.Float64()*2 - 1) * bound
}
