package trajectory

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"signalpro/internal/signal"
)

func TestSynthesizeLengths(t *testing.T) {
	patterns := []Pattern{PatternMomentum, PatternVolatile, PatternBreakout, PatternDecline, Pattern("mystery")}
	for _, pattern := range patterns {
		series, err := Synthesize("TEST", decimal.NewFromInt(100), pattern)
		if err != nil {
			t.Fatalf("pattern %s: %v", pattern, err)
		}
		for name, seq := range map[string][]float64{
			"historical": series.Historical,
			"band_upper": series.BandUpper,
			"band_base":  series.BandBase,
			"band_lower": series.BandLower,
		} {
			if len(seq) != signal.SeriesLen {
				t.Fatalf("pattern %s: %s has %d points, want %d", pattern, name, len(seq), signal.SeriesLen)
			}
		}
	}
}

func TestSynthesizeBandsStartAtPrice(t *testing.T) {
	series, err := Synthesize("TEST", decimal.NewFromFloat(42.15), PatternVolatile)
	if err != nil {
		t.Fatal(err)
	}

	p := 42.15
	for name, first := range map[string]float64{
		"band_upper": series.BandUpper[0],
		"band_base":  series.BandBase[0],
		"band_lower": series.BandLower[0],
	} {
		if math.Abs(first-p) > 1e-9 {
			t.Fatalf("%s starts at %f, want %f", name, first, p)
		}
	}
}

func TestSynthesizeBandOrdering(t *testing.T) {
	series, err := Synthesize("TEST", decimal.NewFromInt(250), PatternMomentum)
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i < signal.SeriesLen; i++ {
		if series.BandUpper[i] <= series.BandBase[i] {
			t.Fatalf("index %d: upper %f not above base %f", i, series.BandUpper[i], series.BandBase[i])
		}
		if series.BandBase[i] <= series.BandLower[i] {
			t.Fatalf("index %d: base %f not above lower %f", i, series.BandBase[i], series.BandLower[i])
		}
	}
}

func TestSynthesizeEndpoints(t *testing.T) {
	p := 200.0
	price := decimal.NewFromFloat(p)

	cases := []struct {
		pattern   Pattern
		target    float64
		tolerance float64
	}{
		{PatternMomentum, p, 3},
		{PatternBreakout, p * 0.98, 1e-9},
		{PatternDecline, p * 1.01, 2},
		{PatternVolatile, p, p*0.1 + 5},
	}

	for _, tc := range cases {
		series, err := Synthesize("TEST", price, tc.pattern)
		if err != nil {
			t.Fatalf("pattern %s: %v", tc.pattern, err)
		}
		last := series.Historical[signal.SeriesLen-1]
		if math.Abs(last-tc.target) > tc.tolerance+1e-9 {
			t.Fatalf("pattern %s: last point %f not within %f of %f", tc.pattern, last, tc.tolerance, tc.target)
		}
	}
}

func TestSynthesizeRejectsNonPositivePrice(t *testing.T) {
	for _, price := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := Synthesize("TEST", price, PatternMomentum)
		if !errors.Is(err, ErrNonPositivePrice) {
			t.Fatalf("price %s: got %v, want ErrNonPositivePrice", price, err)
		}
	}
}

func TestSynthesizeLabels(t *testing.T) {
	series, err := Synthesize("CRCL", decimal.NewFromInt(69), PatternBreakout)
	if err != nil {
		t.Fatal(err)
	}

	if series.EventLabel != "Signal @ $69.00" {
		t.Fatalf("event label %q", series.EventLabel)
	}
	if series.AccentColor != DefaultAccent {
		t.Fatalf("accent %q, want %q", series.AccentColor, DefaultAccent)
	}
}
