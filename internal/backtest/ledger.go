package backtest

import (
	"straddle-backtest/internal/model"

	"github.com/shopspring/decimal"
)

// Result is the outcome of one preset run.
type Result struct {
	ID       string
	Strategy string

	// Legs are in run order; a combined run has the short leg first.
	Legs     []model.LegResult
	Combined *model.CombinedMetrics

	// Trades is the display list: a single leg's trades, or both legs merged
	// by day. It may be truncated; Legs always hold the full lists.
	Trades []model.TradeEvent

	// Degraded is set when at least one simulator invocation failed.
	Degraded bool
}

// NetPnL is the book's realized P&L.
func (r *Result) NetPnL() decimal.Decimal {
	if r.Combined != nil {
		return r.Combined.TotalPnL
	}
	return r.Legs[0].NetPnL
}

func (r *Result) PositionCount() int {
	if r.Combined != nil {
		return r.Combined.TotalPositions
	}
	return r.Legs[0].PositionCount
}

func (r *Result) WinRate() float64 {
	if r.Combined != nil {
		return r.Combined.WinRate
	}
	return r.Legs[0].WinRate
}

// FinalPrice is the last underlying price reported. Legs of one run share a
// price path, so the first leg that reported one is used.
func (r *Result) FinalPrice() decimal.Decimal {
	for _, leg := range r.Legs {
		if !leg.FinalPrice.IsZero() {
			return leg.FinalPrice
		}
	}
	return decimal.Zero
}
