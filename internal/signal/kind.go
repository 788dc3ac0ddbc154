package signal

import "strings"

// Kind categorises a trading signal and selects its visual styling.
type Kind string

const (
	KindIPODebut              Kind = "ipo-debut"
	KindHighRiskDerivative    Kind = "high-risk-derivative-play"
	KindPreMarketMover        Kind = "pre-market-mover"
	KindSplitAnnouncement     Kind = "split-announcement"
	KindCreditSpread          Kind = "credit-spread"
	KindCryptoYield           Kind = "crypto-yield-play"
	KindRegulatoryCatalyst    Kind = "regulatory-catalyst"
	KindEarningsMomentum      Kind = "earnings-momentum"
	KindUnusualDerivativeFlow Kind = "unusual-derivative-flow"
	KindShortSqueeze          Kind = "short-squeeze"
)

// Style bundles the visual attributes associated with a Kind. Background is
// either a flat hex color or a CSS linear-gradient descriptor; gradient
// backgrounds apply to the badge only, the card always keeps the neutral
// dark gradient.
type Style struct {
	BadgeClass string
	Background string
	Accent     string
}

// IsGradient reports whether the background is a gradient descriptor.
func (s Style) IsGradient() bool {
	return strings.Contains(s.Background, "gradient")
}

var kindStyles = map[Kind]Style{
	KindIPODebut:              {BadgeClass: "ipo-debut", Background: "linear-gradient(135deg, #ff4757, #ff6348)", Accent: "#ff4757"},
	KindHighRiskDerivative:    {BadgeClass: "yolo-play", Background: "linear-gradient(135deg, #ff00ff, #ff4757)", Accent: "#ff00ff"},
	KindPreMarketMover:        {BadgeClass: "pre-market", Background: "#ffd93d", Accent: "#ffd93d"},
	KindSplitAnnouncement:     {BadgeClass: "stock-split", Background: "#3498db", Accent: "#3498db"},
	KindCreditSpread:          {BadgeClass: "option-spread", Background: "#e74c3c", Accent: "#e74c3c"},
	KindCryptoYield:           {BadgeClass: "crypto-play", Background: "#f7931a", Accent: "#f7931a"},
	KindRegulatoryCatalyst:    {BadgeClass: "fda-event", Background: "#16a085", Accent: "#16a085"},
	KindEarningsMomentum:      {BadgeClass: "post-market", Background: "#95a5a6", Accent: "#95a5a6"},
	KindUnusualDerivativeFlow: {BadgeClass: "indicator-signal", Background: "#d35400", Accent: "#d35400"},
	KindShortSqueeze:          {BadgeClass: "yolo-play", Background: "linear-gradient(135deg, #ff00ff, #ff4757)", Accent: "#ff00ff"},
}

// kindOrder fixes display ordering for Kinds and API listings.
var kindOrder = []Kind{
	KindIPODebut,
	KindHighRiskDerivative,
	KindPreMarketMover,
	KindSplitAnnouncement,
	KindCreditSpread,
	KindCryptoYield,
	KindRegulatoryCatalyst,
	KindEarningsMomentum,
	KindUnusualDerivativeFlow,
	KindShortSqueeze,
}

// StyleFor returns the style triple for a kind. Unknown kinds fall back to
// the neutral earnings-momentum grey.
func StyleFor(k Kind) Style {
	if s, ok := kindStyles[k]; ok {
		return s
	}
	return kindStyles[KindEarningsMomentum]
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	_, ok := kindStyles[k]
	return ok
}

// DisplayName returns the badge text for a kind, e.g. "IPO DEBUT".
func (k Kind) DisplayName() string {
	return strings.ToUpper(strings.ReplaceAll(string(k), "-", " "))
}

// Kinds returns every defined kind in display order.
func Kinds() []Kind {
	out := make([]Kind, len(kindOrder))
	copy(out, kindOrder)
	return out
}
