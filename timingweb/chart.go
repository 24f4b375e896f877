package timingweb

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/colorfulnotion/timetree/timing"
)

// RenderChart writes an HTML page with a bar chart of per-name totals and
// run counts taken from the recorder's current snapshot.
func RenderChart(w io.Writer, rec *timing.Recorder) error {
	page := components.NewPage()
	page.AddCharts(totalsChart(rec.Snapshot()))
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render timing chart: %w", err)
	}
	return nil
}

func totalsChart(rows []timing.Row) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Timing Summary",
			Subtitle: "Total and mean time per recorded name",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	names := make([]string, 0, len(rows))
	totals := make([]opts.BarData, 0, len(rows))
	means := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
		totals = append(totals, opts.BarData{
			Value: float64(row.Total.Microseconds()) / 1000.0,
		})
		means = append(means, opts.BarData{
			Value: float64(row.Mean.Microseconds()) / 1000.0,
		})
	}

	bar.SetXAxis(names).
		AddSeries("total (ms)", totals).
		AddSeries("mean (ms)", means)
	return bar
}
