package render

// documentTemplate is the HTML template for a signal page, embedded as a
// Go constant so rendered documents stay self-contained. The only external
// reference is the Chart.js CDN script.
const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://cdnjs.cloudflare.com/ajax/libs/Chart.js/4.4.0/chart.umd.js"></script>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: #000000;
            color: #ffffff;
            padding: 10px;
            max-width: 420px;
            margin: 0 auto;
            min-height: 100vh;
            -webkit-font-smoothing: antialiased;
        }

        /* Header */
        .header {
            display: flex;
            justify-content: space-between;
            align-items: center;
            padding: 15px 5px;
            margin-bottom: 15px;
        }

        .logo {
            font-size: 22px;
            font-weight: bold;
            background: linear-gradient(45deg, #00ff88, #00d4ff, #ff00ff);
            -webkit-background-clip: text;
            -webkit-text-fill-color: transparent;
            display: flex;
            align-items: center;
            gap: 5px;
        }

        .back-button {
            display: flex;
            align-items: center;
            gap: 5px;
            color: #00ff88;
            text-decoration: none;
            font-size: 14px;
            font-weight: 500;
            transition: opacity 0.3s;
        }

        .back-button:hover {
            opacity: 0.8;
        }

        /* Signal Card */
        .signal-card {
            background: linear-gradient(135deg, #1a1a1a 0%, #2a2a2a 100%);
            border-radius: 16px;
            padding: 16px;
            border: 1px solid {{.Accent}};
            position: relative;
            overflow: hidden;
            animation: fadeIn 0.5s ease;
        }
{{- if .RiskStyle}}

        .signal-card.risk {
            background: linear-gradient(135deg, #1a1a1a 0%, #2d0d2d 100%);
            border-color: #ff00ff;
            animation: risk-glow 3s ease-in-out infinite;
        }

        @keyframes risk-glow {
            0%, 100% { box-shadow: 0 0 10px rgba(255, 0, 255, 0.3); }
            50% { box-shadow: 0 0 20px rgba(255, 0, 255, 0.5); }
        }
{{- end}}
{{- if .DashedBorder}}

        .signal-card.dashed {
            border-style: dashed;
            border-color: #ffd93d;
        }
{{- end}}

        @keyframes fadeIn {
            from {
                opacity: 0;
                transform: translateY(10px);
            }
            to {
                opacity: 1;
                transform: translateY(0);
            }
        }

        .hot-label {
            position: absolute;
            top: 10px;
            right: 10px;
            background: linear-gradient(135deg, #ff4757, #ff6348);
            color: white;
            font-size: 9px;
            font-weight: bold;
            padding: 3px 8px;
            border-radius: 10px;
            text-transform: uppercase;
            animation: hot-pulse 2s infinite;
        }

        @keyframes hot-pulse {
            0%, 100% { transform: scale(1); }
            50% { transform: scale(1.1); }
        }

        .signal-header {
            margin-bottom: 12px;
        }

        .ticker-main {
            display: flex;
            align-items: center;
            gap: 8px;
            margin-bottom: 4px;
        }

        .ticker {
            font-size: 20px;
            font-weight: bold;
        }

        .strategy-badge {
            padding: 4px 10px;
            border-radius: 12px;
            font-size: 10px;
            font-weight: 600;
            text-transform: uppercase;
            letter-spacing: 0.5px;
        }

        .strategy-badge.{{.BadgeClass}} {
            background: {{.BadgeBackground}};
{{- if .BadgeDarkText}}
            color: #000;
{{- end}}
{{- if .BadgeAnimated}}
            animation: color-shift 3s infinite;
{{- end}}
        }

        @keyframes color-shift {
            0%, 100% { filter: hue-rotate(0deg); }
            50% { filter: hue-rotate(30deg); }
        }

        .company-name {
            font-size: 12px;
            color: #666;
            margin-bottom: 6px;
        }

        .price-row {
            display: flex;
            align-items: baseline;
            gap: 8px;
        }

        .price {
            font-size: 24px;
            font-weight: bold;
        }

        .change {
            font-size: 14px;
            font-weight: 600;
        }

        .positive { color: #00ff88; }
        .negative { color: #ff4757; }

        /* Chart Section */
        .chart-section {
            height: 100px;
            margin-bottom: 12px;
            position: relative;
            background: rgba(255, 255, 255, 0.02);
            border-radius: 10px;
            padding: 8px;
        }

        .chart-section::after {
            content: '';
            position: absolute;
            top: 10%;
            left: 50%;
            width: 1px;
            height: 80%;
            background: rgba(255, 255, 255, 0.2);
            border-left: 1px dashed rgba(255, 255, 255, 0.3);
        }

        .event-label {
            position: absolute;
            top: 8px;
            right: 8px;
            background: rgba(0, 0, 0, 0.8);
            padding: 3px 8px;
            border-radius: 6px;
            font-size: 10px;
            backdrop-filter: blur(10px);
            border: 1px solid rgba(255, 255, 255, 0.1);
            z-index: 10;
        }

        .prediction-indicator {
            position: absolute;
            bottom: 4px;
            left: 50%;
            transform: translateX(-50%);
            font-size: 9px;
            color: #666;
            letter-spacing: 0.5px;
            text-transform: uppercase;
        }

        /* Key Stats */
        .key-stats {
            display: grid;
            grid-template-columns: repeat(3, 1fr);
            gap: 8px;
            margin-bottom: 12px;
        }

        .stat {
            text-align: center;
            padding: 8px 4px;
            background: rgba(255, 255, 255, 0.05);
            border-radius: 8px;
        }

        .stat-value {
            font-size: 16px;
            font-weight: bold;
            margin-bottom: 2px;
        }

        .stat-label {
            font-size: 10px;
            color: #666;
            text-transform: uppercase;
        }

        /* Strategy Info */
        .strategy-info {
            background: rgba(255, 255, 255, 0.03);
            border-radius: 10px;
            padding: 12px;
            margin-bottom: 12px;
            border: 1px solid rgba(255, 255, 255, 0.08);
        }

        .strategy-title {
            font-size: 13px;
            font-weight: 600;
            margin-bottom: 6px;
            color: #00d4ff;
        }

        .strategy-desc {
            font-size: 12px;
            line-height: 1.4;
            color: #aaa;
            margin-bottom: 6px;
        }

        .strategy-link {
            display: inline-flex;
            align-items: center;
            gap: 4px;
            color: #00ff88;
            text-decoration: none;
            font-size: 11px;
            font-weight: 500;
        }

        /* Signal Footer */
        .signal-footer {
            display: flex;
            justify-content: space-between;
            align-items: center;
            font-size: 11px;
            color: #666;
        }

        .notify-toggle {
            display: flex;
            align-items: center;
            gap: 6px;
        }

        .toggle {
            width: 36px;
            height: 20px;
            background: #333;
            border-radius: 10px;
            position: relative;
            cursor: pointer;
            transition: background 0.3s;
        }

        .toggle.on {
            background: #00ff88;
        }

        .toggle-knob {
            width: 16px;
            height: 16px;
            background: white;
            border-radius: 50%;
            position: absolute;
            top: 2px;
            left: 2px;
            transition: transform 0.3s;
        }

        .toggle.on .toggle-knob {
            transform: translateX(16px);
        }

        /* Haptic Feedback */
        .haptic {
            cursor: pointer;
            -webkit-tap-highlight-color: transparent;
        }

        /* Mobile Optimizations */
        @media (max-width: 375px) {
            .signal-card {
                padding: 12px;
            }

            .ticker {
                font-size: 18px;
            }

            .price {
                font-size: 22px;
            }

            .key-stats {
                gap: 6px;
            }

            .stat {
                padding: 6px 4px;
            }

            .stat-value {
                font-size: 14px;
            }
        }

        /* Watch Mode */
        @media (max-width: 200px) {
            body {
                padding: 8px;
            }

            .signal-card {
                padding: 10px;
            }

            .ticker {
                font-size: 16px;
            }

            .price {
                font-size: 18px;
            }

            .chart-section {
                height: 50px;
            }

            .key-stats {
                display: none;
            }

            .strategy-info {
                font-size: 10px;
                padding: 8px;
            }

            .strategy-desc {
                display: none;
            }
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="logo">SignalPro</div>
        <a href="../summary.html" class="back-button haptic">
            <svg width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
                <path d="M19 12H5M12 19l-7-7 7-7"/>
            </svg>
            Back
        </a>
    </div>

    <div class="{{.CardClasses}}">
{{- if .PriorityLabel}}
        <div class="hot-label">{{.PriorityLabel}}</div>
{{- end}}
        <div class="signal-header">
            <div class="ticker-main">
                <span class="ticker">{{.Ticker}}</span>
                <span class="strategy-badge {{.BadgeClass}}">{{.BadgeText}}</span>
            </div>
            <div class="company-name">{{.DisplayName}}</div>
            <div class="price-row">
                <span class="price">${{.Price}}</span>
                <span class="change {{.ChangeClass}}">{{.Change}}</span>
            </div>
        </div>
{{- if .HasChart}}

        <div class="chart-section">
            <canvas id="{{.CanvasID}}"></canvas>
            <div class="event-label">{{.EventLabel}}</div>
            <div class="prediction-indicator">← now | prediction →</div>
        </div>
{{- end}}
{{- if .Stats}}

        <div class="key-stats">
{{- range .Stats}}
            <div class="stat">
                <div class="stat-value{{if .ValueClass}} {{.ValueClass}}{{end}}">{{.Value}}</div>
                <div class="stat-label">{{.Label}}</div>
            </div>
{{- end}}
        </div>
{{- end}}
{{- if .Strategy}}

        <div class="strategy-info">
            <div class="strategy-title">{{.Strategy.Title}}</div>
            <div class="strategy-desc">
                {{.Strategy.Description}}
            </div>
            <a href="{{.Strategy.LinkURL}}" class="strategy-link">
                {{.Strategy.LinkText}}
            </a>
        </div>
{{- end}}

        <div class="signal-footer">
            <div class="notify-toggle">
                <span>Exit alert</span>
                <div class="toggle{{if .ToggleOn}} on{{end}} haptic" onclick="toggleNotify(this)">
                    <div class="toggle-knob"></div>
                </div>
            </div>
            <span>{{.Timestamp}}</span>
        </div>
    </div>

    <script>
{{.ChartJS}}
{{.ClientJS}}
    </script>
</body>
</html>
`
