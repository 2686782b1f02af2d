package analysis

import (
	"sort"

	"straddle-backtest/internal/model"
)

// Combine folds a short and a long leg into book-level figures. P&L and
// position counts add up; the win rate is the unweighted mean of the two
// legs, so a leg with one close counts as much as a leg with a hundred.
func Combine(short, long model.LegResult) model.CombinedMetrics {
	shortDay := short.PnLPerDay()
	longDay := long.PnLPerDay()
	return model.CombinedMetrics{
		ShortPnL: short.NetPnL,
		LongPnL:  long.NetPnL,
		TotalPnL: short.NetPnL.Add(long.NetPnL),

		ShortPnLPerDay: shortDay,
		LongPnLPerDay:  longDay,
		TotalPnLPerDay: shortDay.Add(longDay),

		ShortPositions: short.PositionCount,
		LongPositions:  long.PositionCount,
		TotalPositions: short.PositionCount + long.PositionCount,

		ShortWinRate: short.WinRate,
		LongWinRate:  long.WinRate,
		WinRate:      (short.WinRate + long.WinRate) / 2,
	}
}

// MergeTrades interleaves two legs' trades by day. Ties keep the order of
// the inputs: a before b, and each leg's own order.
func MergeTrades(a, b []model.TradeEvent) []model.TradeEvent {
	out := make([]model.TradeEvent, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DayIndex < out[j].DayIndex
	})
	return out
}
