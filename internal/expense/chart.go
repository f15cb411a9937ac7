package expense

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderChart writes an HTML page holding a pie chart of totals with percentage labels.
func RenderChart(w io.Writer, totals []CategoryTotal) error {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Expense Summary",
			Width:     "560px",
			Height:    "400px",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Formatter: "{b}: {c} ({d}%)"}),
	)

	items := make([]opts.PieData, 0, len(totals))
	for _, t := range totals {
		items = append(items, opts.PieData{Name: t.Category, Value: t.Total})
	}
	pie.AddSeries("expenses", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {d}%",
		}))

	return pie.Render(w)
}
