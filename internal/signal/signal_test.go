package signal

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func minimalParams() RecordParams {
	return RecordParams{
		Ticker:              "GOOGL",
		DisplayName:         "Google Post-Earnings",
		Kind:                KindEarningsMomentum,
		CurrentPrice:        decimal.NewFromFloat(178.25),
		PriceChangeAbsolute: decimal.NewFromFloat(13.96),
		PriceChangePercent:  decimal.NewFromFloat(8.5),
	}
}

func TestNewRecordDefaults(t *testing.T) {
	rec, err := NewRecord(minimalParams())
	if err != nil {
		t.Fatal(err)
	}

	if rec.Priority != PriorityNormal {
		t.Fatalf("priority %q, want normal", rec.Priority)
	}
	if rec.BorderVariant != BorderSolid {
		t.Fatalf("border %q, want solid", rec.BorderVariant)
	}
	if rec.TimestampLabel != "Just now" {
		t.Fatalf("timestamp %q", rec.TimestampLabel)
	}
	if !rec.NotificationsDefaultOn {
		t.Fatal("notifications should default on")
	}
}

func TestNewRecordStrategyLinkDefaults(t *testing.T) {
	p := minimalParams()
	p.Strategy = &StrategyNote{Title: "Post-Earnings Momentum", Description: "Buy at open."}

	rec, err := NewRecord(p)
	if err != nil {
		t.Fatal(err)
	}

	if rec.Strategy.LinkText != DefaultLinkText {
		t.Fatalf("link text %q", rec.Strategy.LinkText)
	}
	if rec.Strategy.LinkURL != DefaultLinkURL {
		t.Fatalf("link url %q", rec.Strategy.LinkURL)
	}
	if p.Strategy.LinkText != "" {
		t.Fatal("input strategy note must not be mutated")
	}
}

func TestNewRecordValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RecordParams)
		want   string
	}{
		{"missing ticker", func(p *RecordParams) { p.Ticker = "" }, "ticker"},
		{"missing display name", func(p *RecordParams) { p.DisplayName = "" }, "display name"},
		{"missing kind", func(p *RecordParams) { p.Kind = "" }, "kind is required"},
		{"unknown kind", func(p *RecordParams) { p.Kind = "moon-phase" }, "unknown kind"},
		{"zero price", func(p *RecordParams) { p.CurrentPrice = decimal.Zero }, "greater than zero"},
		{"negative price", func(p *RecordParams) { p.CurrentPrice = decimal.NewFromInt(-1) }, "greater than zero"},
		{"unknown priority", func(p *RecordParams) { p.Priority = "shouting" }, "unknown priority"},
		{"unknown border", func(p *RecordParams) { p.BorderVariant = "dotted" }, "border"},
		{"strategy missing description", func(p *RecordParams) {
			p.Strategy = &StrategyNote{Title: "Only a title"}
		}, "title and description"},
		{"short chart series", func(p *RecordParams) {
			p.ChartSeries = &ChartSeries{
				Historical: make([]float64, 3),
				BandUpper:  make([]float64, SeriesLen),
				BandBase:   make([]float64, SeriesLen),
				BandLower:  make([]float64, SeriesLen),
			}
		}, "historical"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := minimalParams()
			tc.mutate(&p)
			_, err := NewRecord(p)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestKindDisplayName(t *testing.T) {
	if got := KindIPODebut.DisplayName(); got != "IPO DEBUT" {
		t.Fatalf("got %q", got)
	}
	if got := KindHighRiskDerivative.DisplayName(); got != "HIGH RISK DERIVATIVE PLAY" {
		t.Fatalf("got %q", got)
	}
}

func TestStyleForFallback(t *testing.T) {
	got := StyleFor(Kind("moon-phase"))
	want := kindStyles[KindEarningsMomentum]
	if got != want {
		t.Fatalf("fallback style %+v, want %+v", got, want)
	}
}

func TestStyleIsGradient(t *testing.T) {
	if !StyleFor(KindIPODebut).IsGradient() {
		t.Fatal("ipo-debut should be a gradient")
	}
	if StyleFor(KindCreditSpread).IsGradient() {
		t.Fatal("credit-spread should be flat")
	}
}

func TestPriorityLabels(t *testing.T) {
	cases := map[Priority]string{
		PriorityUrgent: "⚡ URGENT",
		PriorityHot:    "🔥 HOT",
		PriorityWatch:  "👀 WATCH",
		PriorityNormal: "",
	}
	for p, want := range cases {
		if got := p.Label(); got != want {
			t.Fatalf("priority %s: label %q, want %q", p, got, want)
		}
	}
}
