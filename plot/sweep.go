// Package plot renders evaluation results as HTML charts
package plot

import (
	"fmt"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/rotframe/go-rotframe/evaluate"
	"io"
)

// SweepChart builds a line chart of the top-1 and top-K accuracy curves
// over the evaluated threshold sweep
func SweepChart(res *evaluate.Result) *charts.Line {

	x := make([]string, len(res.Sweep))
	top1 := make([]opts.LineData, len(res.Sweep))
	topK := make([]opts.LineData, len(res.Sweep))

	for i, pt := range res.Sweep {
		x[i] = fmt.Sprintf("%d", pt.Threshold)
		top1[i] = opts.LineData{Value: pt.Top1}
		topK[i] = opts.LineData{Value: pt.TopK}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Angle Accuracy Sweep",
			Width:     "900px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Accuracy vs Bias Threshold",
			Subtitle: fmt.Sprintf("samples=%d top1=%.4f topk=%.4f",
				len(res.Bias), res.Top1, res.TopK),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "threshold (deg)",
			NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "accuracy", Min: 0, Max: 1,
			NameLocation: "middle", NameGap: 35}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	line.SetXAxis(x).
		AddSeries("top1", top1).
		AddSeries("topk", topK,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		)

	return line
}

// WriteSweepHTML renders the sweep chart of the result as a standalone HTML
// page to the writer
func WriteSweepHTML(res *evaluate.Result, w io.Writer) error {

	line := SweepChart(res)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	return nil
}
