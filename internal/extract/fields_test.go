package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDay(t *testing.T) {
	cases := map[string]int{
		"Day 17 (Thu W2): Price $60.43":           17,
		"  Day 3 (Thu W0) 14:00 | Price $61.02":   3,
		"[SHORT] Day 5: CLOSED position 2":        5,
		"  -> OPENED position 2 at 14:00":         0,
		"Holding since Day 4":                     0,
		"Day x: nonsense":                         0,
		"Day 99999999999999999999999: overflowed": 0,
	}
	for line, want := range cases {
		assert.Equal(t, want, ParseDay(line), line)
	}
}

func TestParsePnL(t *testing.T) {
	cases := []struct {
		line  string
		want  string
		valid bool
	}{
		{"CLOSED position 1 at 14:00 | P&L: $-6131 (ProfitTarget)", "-6131", true},
		{"CLOSED position 2 | P&L: $1,234 (Roll)", "1234", true},
		{"CLOSED position 3 | P&L: $-24,604 (Expiration)", "-24604", true},
		{"CLOSED position 4 | P&L:$0 (Roll)", "0", true},
		{"CLOSED position 5 | no pnl here", "", false},
		{"CLOSED position 6 | P&L: $ (Roll)", "", false},
	}
	for _, tc := range cases {
		got := ParsePnL(tc.line)
		assert.Equal(t, tc.valid, got.Valid, tc.line)
		if tc.valid {
			assert.Equal(t, tc.want, got.Decimal.String(), tc.line)
		}
	}
}
