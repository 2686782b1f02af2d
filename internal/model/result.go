package model

import "github.com/shopspring/decimal"

// LegResult is the aggregate outcome of one simulator run for one leg.
// Built once by the analysis package and not mutated afterwards.
type LegResult struct {
	Leg Leg

	NetPnL        decimal.Decimal
	PositionCount int
	WinRate       float64 // percent, 0..100
	FinalPrice    decimal.Decimal

	Trades      []TradeEvent
	HorizonDays int
}

// PnLPerDay is NetPnL spread over the simulated horizon, 0 when the horizon is unknown.
func (r LegResult) PnLPerDay() decimal.Decimal {
	if r.HorizonDays <= 0 {
		return decimal.Zero
	}
	return r.NetPnL.Div(decimal.NewFromInt(int64(r.HorizonDays)))
}

// CombinedMetrics is the short+long view of a book. It is derived on demand
// from two LegResults and never stored.
type CombinedMetrics struct {
	ShortPnL decimal.Decimal
	LongPnL  decimal.Decimal
	TotalPnL decimal.Decimal

	ShortPnLPerDay decimal.Decimal
	LongPnLPerDay  decimal.Decimal
	TotalPnLPerDay decimal.Decimal

	ShortPositions int
	LongPositions  int
	TotalPositions int

	ShortWinRate float64
	LongWinRate  float64
	// WinRate is the plain mean of the two leg win rates, not a pooled rate.
	WinRate float64
}
