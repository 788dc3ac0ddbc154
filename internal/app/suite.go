package app

import (
	"encoding/json"
	"fmt"

	"signalpro/internal/output"
)

// Suite renders the full showcase set (one signal per kind) plus a
// summary.json index of the generated documents.
func (a *App) Suite() ([]GenerateResult, error) {
	requests := suiteRequests()
	results := make([]GenerateResult, 0, len(requests))
	for _, req := range requests {
		res, err := a.Generate(GenerateOptions{Request: req})
		if err != nil {
			return nil, fmt.Errorf("suite %s: %w", req.Ticker, err)
		}
		results = append(results, res)
	}

	summaries := make([]output.Summary, len(results))
	for i, r := range results {
		summaries[i] = r.Summary
	}
	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal suite summary: %w", err)
	}
	if _, err := a.NewWriter().Write("summary.json", string(data)+"\n"); err != nil {
		return nil, err
	}

	a.Logger.Info().Int("signals", len(results)).Msg("suite generated")
	return results, nil
}

// suiteRequests returns one realistic showcase request per signal kind.
func suiteRequests() []GenerateRequest {
	unfavorable := false

	return []GenerateRequest{
		{
			Ticker: "CRCL", CompanyName: "Circle Internet Group",
			SignalKind: "ipo-debut", Priority: "elevated-hot",
			CurrentPrice: 69.00, ChangePercent: 122.6,
			Stats: []StatInput{
				{Value: "223%", Label: "Day 1 High"},
				{Value: "$6.8B", Label: "Valuation"},
				{Value: "46M", Label: "Volume"},
			},
			StrategyTitle:       "Hot IPO Momentum Play",
			StrategyDescription: "Stablecoin leader 3x'd on debut. ARK bought $150M. Watch for dip to $60-65 for entry. Similar to Coinbase IPO pattern - expect volatility.",
			StrategyLinkText:    "IPO playbook →",
			StrategyLinkURL:     "https://example.com/ipo-trading-strategy",
			ChartPattern:        "breakout", EventLabel: "IPO $69 → peak",
			Timestamp: "15 min ago",
		},
		{
			Ticker: "BTC", CompanyName: "Bitcoin 150K Moonshot",
			SignalKind:   "high-risk-derivative-play",
			CurrentPrice: 105456.00, ChangePercent: 3.8,
			Stats: []StatInput{
				{Value: "250%", Label: "Max Gain"},
				{Value: "-100%", Label: "Max Loss", IsFavorable: &unfavorable},
				{Value: "$850", Label: "Per Call"},
			},
			StrategyTitle:       "Dec 150K Call Options",
			StrategyDescription: "Kalshi shows 75% odds of 150K by Q4. Buy $130K calls for December. High risk, high reward - only risk what you can lose!",
			StrategyLinkText:    "View odds →",
			StrategyLinkURL:     "https://kalshi.com/markets/kxbtcmax150",
			ChartPattern:        "momentum", EventLabel: "Kalshi 75% → 150K",
			Timestamp: "1 hour ago", RiskStyle: true,
		},
		{
			Ticker: "NVDA", CompanyName: "Nvidia Pre-Market Surge",
			SignalKind:   "pre-market-mover",
			CurrentPrice: 1125.50, ChangePercent: 5.2,
			Stats: []StatInput{
				{Value: "+6.8%", Label: "Pre-Mkt"},
				{Value: "2.5M", Label: "Volume"},
				{Value: "9:28", Label: "Entry"},
			},
			StrategyTitle:       "Pre-Market Gap & Go",
			StrategyDescription: "TSMC production boost news. Pre-market up 6.8% on heavy volume. Buy at 9:28-9:30 for opening momentum. Set stop at pre-market low.",
			StrategyLinkText:    "Pre-market guide →",
			StrategyLinkURL:     "https://example.com/premarket-trading",
			ChartPattern:        "breakout", EventLabel: "Taiwan news 4AM",
			Timestamp: "Pre-market", BorderStyle: "dashed",
		},
		{
			Ticker: "AMZN", CompanyName: "Amazon Split Announced",
			SignalKind:   "split-announcement",
			CurrentPrice: 3245.00, ChangePercent: 8.2,
			Stats: []StatInput{
				{Value: "20:1", Label: "Ratio"},
				{Value: "+15%", Label: "Avg Run"},
				{Value: "28d", Label: "To Split"},
			},
			StrategyTitle:       "Pre-Split Momentum",
			StrategyDescription: "20:1 split announced. Historical data shows 15% avg gain from announcement to split date. Buy shares or Aug calls. Retail FOMO incoming.",
			StrategyLinkText:    "Split history →",
			StrategyLinkURL:     "https://example.com/stock-split-strategy",
			ChartPattern:        "momentum",
			Timestamp:           "2 hours ago",
		},
		{
			Ticker: "TSLA", CompanyName: "Tesla Iron Condor",
			SignalKind:   "credit-spread",
			CurrentPrice: 245.80, ChangePercent: -1.2,
			Stats: []StatInput{
				{Value: "$3.20", Label: "Credit"},
				{Value: "72%", Label: "PoP"},
				{Value: "21d", Label: "DTE"},
			},
			StrategyTitle:       "Sell 240/235 Put Spread",
			StrategyDescription: "Post-earnings IV crush. Sell 240/235 put spread for $3.20 credit. 72% probability of profit. Max loss $180. Range-bound expected.",
			StrategyLinkText:    "Spread calculator →",
			StrategyLinkURL:     "https://example.com/credit-spreads",
			ChartPattern:        "volatile",
			Timestamp:           "3 hours ago",
		},
		{
			Ticker: "ETH", CompanyName: "Ethereum Staking Play",
			SignalKind:   "crypto-yield-play",
			CurrentPrice: 3856.00, ChangePercent: 4.5,
			Stats: []StatInput{
				{Value: "5.2%", Label: "APY"},
				{Value: "$4.2K", Label: "Target"},
				{Value: "85", Label: "RSI"},
			},
			StrategyTitle:       "Stake & Trade Momentum",
			StrategyDescription: "Shanghai upgrade complete. Staking APY 5.2% + price appreciation. Buy spot ETH or ETHE. DeFi TVL surging, institutions accumulating.",
			StrategyLinkText:    "Staking guide →",
			StrategyLinkURL:     "https://example.com/eth-staking",
			ChartPattern:        "momentum",
			Timestamp:           "4 hours ago",
		},
		{
			Ticker: "SAVA", CompanyName: "Cassava Sciences",
			SignalKind:   "regulatory-catalyst",
			CurrentPrice: 42.15, ChangePercent: 12.3,
			Stats: []StatInput{
				{Value: "+180%", Label: "If Pass"},
				{Value: "-65%", Label: "If Fail", IsFavorable: &unfavorable},
				{Value: "220%", Label: "IV"},
			},
			StrategyTitle:       "Binary FDA Event - YOLO!",
			StrategyDescription: "Alzheimer's drug PDUFA date 7/28. Buy OTM calls for 10x potential. Ultra high risk - total loss possible. Size accordingly!",
			StrategyLinkText:    "FDA calendar →",
			StrategyLinkURL:     "https://example.com/fda-calendar",
			ChartPattern:        "volatile", EventLabel: "FDA 7/28",
			Timestamp: "5 hours ago", RiskStyle: true,
		},
		{
			Ticker: "GOOGL", CompanyName: "Google Post-Earnings",
			SignalKind:   "earnings-momentum",
			CurrentPrice: 178.25, ChangePercent: 8.5,
			Stats: []StatInput{
				{Value: "+11%", Label: "AH Move"},
				{Value: "$185", Label: "Target"},
				{Value: "5.2M", Label: "AH Vol"},
			},
			StrategyTitle:       "Post-Earnings Momentum",
			StrategyDescription: "Crushed earnings, raised guidance. After-hours up 11%. Buy at open for continuation. Historical 3-day momentum after beats averages +5%.",
			StrategyLinkText:    "ER playbook →",
			StrategyLinkURL:     "https://example.com/earnings-momentum",
			ChartPattern:        "momentum",
			Timestamp:           "After hours",
		},
		{
			Ticker: "AMD", CompanyName: "Unusual Call Buying",
			SignalKind: "unusual-derivative-flow", Priority: "informational-watch",
			CurrentPrice: 185.40, ChangePercent: 2.1,
			Stats: []StatInput{
				{Value: "$2.5M", Label: "Premium"},
				{Value: "10x", Label: "Avg Vol"},
				{Value: "$200", Label: "Strike"},
			},
			StrategyTitle:       "Follow the Smart Money",
			StrategyDescription: "10,000 Aug $200 calls bought for $2.5M. 10x normal volume. Someone knows something. Follow with smaller position or spreads.",
			StrategyLinkText:    "Flow data →",
			StrategyLinkURL:     "https://example.com/options-flow",
			ChartPattern:        "momentum",
			Timestamp:           "30 min ago",
		},
		{
			Ticker: "GME", CompanyName: "GameStop Gamma Ramp",
			SignalKind:   "short-squeeze",
			CurrentPrice: 45.20, ChangePercent: 35.2,
			Stats: []StatInput{
				{Value: "140%", Label: "Short %"},
				{Value: "+420%", Label: "Target"},
				{Value: "💎🙌", Label: "Hands"},
			},
			StrategyTitle:       "Diamond Hands Squeeze Play",
			StrategyDescription: "Short interest 140%, cost to borrow 85%. Gamma ramp building. Pure YOLO - lottery ticket only! Not investment advice. Apes together strong! 🚀",
			StrategyLinkText:    "Join apes →",
			StrategyLinkURL:     "https://reddit.com/r/wallstreetbets",
			ChartPattern:        "volatile",
			Timestamp:           "TO THE MOON!", RiskStyle: true,
		},
	}
}
