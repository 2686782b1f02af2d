// Package analysis aggregates extracted trades into per-leg and combined
// performance figures.
package analysis

import (
	"straddle-backtest/internal/model"

	"github.com/shopspring/decimal"
)

// RealizedPnL sums P&L over close events that carry a parsed value and
// reports how many events were counted and how many of them were winners.
func RealizedPnL(trades []model.TradeEvent) (sum decimal.Decimal, closes, wins int) {
	sum = decimal.Zero
	for _, t := range trades {
		if t.Kind != model.TradeClose || !t.PnL.Valid {
			continue
		}
		closes++
		sum = sum.Add(t.PnL.Decimal)
		if t.PnL.Decimal.IsPositive() {
			wins++
		}
	}
	return sum, closes, wins
}

// WinRate is wins/closes as a percentage, 0 when nothing closed.
func WinRate(wins, closes int) float64 {
	if closes <= 0 {
		return 0
	}
	return float64(wins) / float64(closes) * 100.0
}

// Summarize builds the LegResult for one run.
//
// Net P&L is the sum of per-trade realized P&L. The footer's "Net P&L" total
// is only consulted when that sum is exactly zero; it has been seen to
// disagree with the trades it summarizes.
func Summarize(leg model.Leg, trades []model.TradeEvent, footer Footer, horizonDays int) model.LegResult {
	net, closes, wins := RealizedPnL(trades)
	if net.IsZero() && footer.NetPnL.Valid {
		net = footer.NetPnL.Decimal
	}
	return model.LegResult{
		Leg:           leg,
		NetPnL:        net,
		PositionCount: footer.PositionCount,
		WinRate:       WinRate(wins, closes),
		FinalPrice:    footer.FinalPrice,
		Trades:        trades,
		HorizonDays:   horizonDays,
	}
}
