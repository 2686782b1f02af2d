package backtest

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"straddle-backtest/internal/model"
)

// WriteTradesCSV writes the trade ledger to path.
func WriteTradesCSV(path string, trades []model.TradeEvent) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteTrades(f, trades); err != nil {
		return err
	}
	return f.Close()
}

func WriteTrades(out io.Writer, trades []model.TradeEvent) error {
	w := csv.NewWriter(out)

	header := []string{
		"index",
		"day",
		"leg",
		"trade_type",
		"pnl",
		"message",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, t := range trades {
		row := []string{
			strconv.Itoa(i),
			strconv.Itoa(t.DayIndex),
			string(t.SourceLeg),
			string(t.Kind),
			fmtPnL(t),
			t.RawText,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtPnL(t model.TradeEvent) string {
	if !t.PnL.Valid {
		return ""
	}
	return t.PnL.Decimal.String()
}
