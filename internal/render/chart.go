package render

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"signalpro/internal/signal"
)

// chartScript is the Chart.js initialisation for the scenario-band chart.
// The 40-slot axis runs -20..19 with "now" at zero; the historical line
// and the forward bands are null-padded into their halves.
const chartScript = `        // Mini chart configuration
        const miniChartOptions = {
            responsive: true,
            maintainAspectRatio: false,
            plugins: {
                legend: { display: false },
                tooltip: { enabled: false }
            },
            scales: {
                x: {
                    display: false,
                    grid: { display: false }
                },
                y: {
                    display: false,
                    grid: { display: false }
                }
            },
            elements: {
                point: { radius: 0 },
                line: { borderWidth: 2 }
            },
            interaction: {
                intersect: false
            }
        };

        // Initialize chart with prediction bands
        const chartCtx = document.getElementById('%[1]s')?.getContext('2d');
        if (chartCtx) {
            const currentPrice = %[2]s;
            new Chart(chartCtx, {
                type: 'line',
                data: {
                    labels: Array.from({length: 40}, (_, i) => i - 20),
                    datasets: [
                        {
                            label: 'Historical',
                            data: %[3]s.concat(Array(20).fill(null)),
                            borderColor: '%[4]s',
                            backgroundColor: 'transparent',
                            borderWidth: 2,
                            pointRadius: 0,
                            tension: 0.3
                        },
                        {
                            label: 'Upper Band',
                            data: Array(20).fill(null).concat(%[5]s),
                            borderColor: 'rgba(255, 71, 87, 0.3)',
                            borderDash: [5, 5],
                            borderWidth: 1,
                            pointRadius: 0,
                            fill: '+1',
                            backgroundColor: 'rgba(255, 71, 87, 0.1)'
                        },
                        {
                            label: 'Base Case',
                            data: Array(20).fill(null).concat(%[6]s),
                            borderColor: '%[4]s',
                            borderDash: [5, 5],
                            borderWidth: 2,
                            pointRadius: 0
                        },
                        {
                            label: 'Lower Band',
                            data: Array(20).fill(null).concat(%[7]s),
                            borderColor: 'rgba(255, 71, 87, 0.3)',
                            borderDash: [5, 5],
                            borderWidth: 1,
                            pointRadius: 0,
                            fill: false
                        }
                    ]
                },
                options: miniChartOptions
            });
        }`

// buildChartJS embeds the series into the Chart.js snippet. The line color
// is the kind accent, overriding whatever accent the series carried.
func buildChartJS(canvasID string, price decimal.Decimal, series *signal.ChartSeries, accent string) string {
	return fmt.Sprintf(chartScript,
		canvasID,
		price.String(),
		marshalFloats(series.Historical),
		accent,
		marshalFloats(series.BandUpper),
		marshalFloats(series.BandBase),
		marshalFloats(series.BandLower),
	)
}

func marshalFloats(vals []float64) string {
	b, err := json.Marshal(vals)
	if err != nil {
		return "[]"
	}
	return string(b)
}
