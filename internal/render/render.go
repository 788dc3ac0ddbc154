// Package render composes signal records into self-contained mobile HTML
// documents. Compose is a pure function: no IO, no validation, and
// byte-identical output for identical records.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"

	"signalpro/internal/signal"
)

var docTemplate = template.Must(template.New("signal").Parse(documentTemplate))

// lightBadges lists flat badge backgrounds bright enough to need dark text.
var lightBadges = map[string]bool{
	"#ffd93d": true,
	"#f7931a": true,
}

type statView struct {
	Value      string
	Label      string
	ValueClass string
}

type strategyView struct {
	Title       string
	Description string
	LinkText    string
	LinkURL     string
}

// documentView is the flattened template model for one signal page.
type documentView struct {
	Title           string
	Ticker          string
	DisplayName     string
	BadgeClass      template.CSS
	BadgeText       string
	BadgeBackground template.CSS
	BadgeDarkText   bool
	BadgeAnimated   bool
	Accent          template.CSS
	PriorityLabel   string
	Price           string
	Change          string
	ChangeClass     string
	CardClasses     string
	RiskStyle       bool
	DashedBorder    bool
	HasChart        bool
	CanvasID        string
	EventLabel      string
	Stats           []statView
	Strategy        *strategyView
	ToggleOn        bool
	Timestamp       string
	ChartJS         template.JS
	ClientJS        template.JS
}

// maxStats caps the statistics grid for the mobile layout.
const maxStats = 3

// Compose renders one complete document for rec.
func Compose(rec *signal.Record) (string, error) {
	var buf bytes.Buffer
	if err := docTemplate.Execute(&buf, buildView(rec)); err != nil {
		return "", fmt.Errorf("compose document: %w", err)
	}
	return buf.String(), nil
}

func buildView(rec *signal.Record) documentView {
	style := signal.StyleFor(rec.Kind)

	view := documentView{
		Ticker:          rec.Ticker,
		DisplayName:     rec.DisplayName,
		BadgeClass:      template.CSS(style.BadgeClass),
		BadgeText:       rec.Kind.DisplayName(),
		BadgeBackground: template.CSS(style.Background),
		BadgeDarkText:   lightBadges[style.Background],
		BadgeAnimated:   style.IsGradient(),
		Accent:          template.CSS(style.Accent),
		PriorityLabel:   rec.Priority.Label(),
		Price:           formatUSD(rec.CurrentPrice),
		Change:          formatPercent(rec.PriceChangePercent),
		ChangeClass:     changeClass(rec.PriceChangePercent),
		RiskStyle:       rec.RiskStyleEnabled,
		DashedBorder:    rec.BorderVariant == signal.BorderDashed,
		ToggleOn:        rec.NotificationsDefaultOn,
		Timestamp:       rec.TimestampLabel,
		ClientJS:        template.JS(clientScript),
	}

	titleSubject := rec.Kind.DisplayName()
	if rec.Strategy != nil {
		titleSubject = rec.Strategy.Title
		view.Strategy = &strategyView{
			Title:       rec.Strategy.Title,
			Description: rec.Strategy.Description,
			LinkText:    rec.Strategy.LinkText,
			LinkURL:     rec.Strategy.LinkURL,
		}
	}
	view.Title = fmt.Sprintf("%s - %s", rec.Ticker, titleSubject)

	classes := []string{"signal-card"}
	if rec.RiskStyleEnabled {
		classes = append(classes, "risk")
	}
	if rec.BorderVariant == signal.BorderDashed {
		classes = append(classes, "dashed")
	}
	view.CardClasses = strings.Join(classes, " ")

	for i, stat := range rec.KeyStatistics {
		if i == maxStats {
			break
		}
		sv := statView{Value: stat.DisplayValue, Label: stat.Label}
		if stat.IsFavorable {
			sv.ValueClass = "positive"
		}
		view.Stats = append(view.Stats, sv)
	}

	if rec.ChartSeries != nil {
		view.HasChart = true
		view.CanvasID = canvasID(rec.Ticker)
		view.EventLabel = rec.ChartSeries.EventLabel
		view.ChartJS = template.JS(buildChartJS(view.CanvasID, rec.CurrentPrice, rec.ChartSeries, style.Accent))
	}

	return view
}

func canvasID(ticker string) string {
	return "chart-" + strings.ToLower(ticker)
}

// changeClass picks the percent coloring: strictly positive is favorable,
// zero or negative is not.
func changeClass(pct decimal.Decimal) string {
	if pct.IsPositive() {
		return "positive"
	}
	return "negative"
}

// formatPercent renders the change to one decimal place with an explicit
// leading "+" for positive values.
func formatPercent(pct decimal.Decimal) string {
	text := pct.StringFixed(1) + "%"
	if pct.IsPositive() {
		return "+" + text
	}
	return text
}

// formatUSD renders a price to two decimals with thousands separators,
// e.g. 105456 -> "105,456.00".
func formatUSD(price decimal.Decimal) string {
	fixed := price.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	if len(intPart) <= 3 {
		return sign + intPart + "." + fracPart
	}

	var sb strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(intPart[i : i+3])
	}
	return sign + sb.String() + "." + fracPart
}
