package service

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// BalancePoint is the balance right after one transaction.
type BalancePoint struct {
	Date    time.Time
	Balance models.Money
}

// BalanceHistory walks the summary's transactions in date order and returns
// the running balance, anchored so that the last point equals the total
// balance of all accounts.
func BalanceHistory(summary models.DashboardSummary) []BalancePoint {
	ordered := slices.Clone(summary.Transactions)
	slices.SortStableFunc(ordered, func(a, b models.Transaction) int {
		return a.Date.Compare(b.Date)
	})

	var delta models.Money
	for _, t := range ordered {
		delta += t.SignedAmount()
	}

	running := summary.TotalBalance - delta
	points := make([]BalancePoint, 0, len(ordered))
	for _, t := range ordered {
		running += t.SignedAmount()
		points = append(points, BalancePoint{Date: t.Date, Balance: running})
	}
	return points
}

func (s *clientDashboardService) RenderBalanceChart(summary models.DashboardSummary, w io.Writer) error {
	points := BalanceHistory(summary)
	if len(points) < 2 {
		return ErrNotEnoughData
	}

	xValues := make([]time.Time, len(points))
	yValues := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = p.Date
		yValues[i] = p.Balance.Float64()
	}

	graph := chart.Chart{
		Title:  "Balance",
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v any) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.2f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Balance",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
				},
			},
		},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render balance chart: %w", err)
	}
	return nil
}
