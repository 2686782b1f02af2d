package cli

import (
	"fmt"
	"io"

	"straddle-backtest/internal/backtest"
	"straddle-backtest/internal/model"
)

func printLeg(out io.Writer, r model.LegResult) {
	name := string(r.Leg)
	if name == "" {
		name = "output"
	}
	fmt.Fprintf(out, "%-8s net=$%s positions=%d win_rate=%.1f%% per_day=$%s final_price=$%s\n",
		name,
		r.NetPnL.StringFixed(2),
		r.PositionCount,
		r.WinRate,
		r.PnLPerDay().StringFixed(2),
		r.FinalPrice.StringFixed(2),
	)
}

func printResult(out io.Writer, res *backtest.Result) {
	fmt.Fprintf(out, "Run %s (%s)\n", res.ID, res.Strategy)
	if res.Degraded {
		fmt.Fprintln(out, "WARNING: the simulator failed; results are partial")
	}
	for _, leg := range res.Legs {
		printLeg(out, leg)
	}
	if m := res.Combined; m != nil {
		fmt.Fprintf(out, "%-8s net=$%s positions=%d win_rate=%.1f%% per_day=$%s\n",
			"total",
			m.TotalPnL.StringFixed(2),
			m.TotalPositions,
			m.WinRate,
			m.TotalPnLPerDay.StringFixed(2),
		)
	}
}

// printTrades prints up to limit trades (0 = all).
func printTrades(out io.Writer, trades []model.TradeEvent, limit int) {
	if len(trades) == 0 {
		return
	}
	n := len(trades)
	if limit > 0 && limit < n {
		n = limit
	}

	fmt.Fprintf(out, "\n%-5s %-5s %-6s %-10s %s\n", "day", "kind", "leg", "pnl", "message")
	for _, t := range trades[:n] {
		pnl := ""
		if t.PnL.Valid {
			pnl = t.PnL.Decimal.StringFixed(0)
		}
		fmt.Fprintf(out, "%-5d %-5s %-6s %-10s %s\n", t.DayIndex, t.Kind, t.SourceLeg, pnl, t.RawText)
	}
	if n < len(trades) {
		fmt.Fprintf(out, "... %d more\n", len(trades)-n)
	}
}
