package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Footer holds the simulator's end-of-run summary lines. Each field is
// independent: a malformed line leaves its own field unset and nothing else.
type Footer struct {
	NetPnL        decimal.NullDecimal
	PositionCount int
	FinalPrice    decimal.Decimal
}

var (
	footerNetPnL = regexp.MustCompile(`\(\$?([-+]?\d[\d,]*) total\)`)
	footerPrice  = regexp.MustCompile(`\$(\d+(?:\.\d+)?)`)
)

const (
	tokenNetPnL     = "Net P&L:"
	tokenPositions  = "Total positions opened:"
	tokenFinalPrice = "Final underlying price:"
)

// ParseFooter scans the whole output for summary tokens. When a token is
// printed more than once the last occurrence wins.
func ParseFooter(output string) Footer {
	var f Footer
	for _, line := range strings.Split(output, "\n") {
		switch {
		case strings.Contains(line, tokenNetPnL):
			if m := footerNetPnL.FindStringSubmatch(line); m != nil {
				if d, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", "")); err == nil {
					f.NetPnL = decimal.NullDecimal{Decimal: d, Valid: true}
				}
			}
		case strings.Contains(line, tokenPositions):
			_, value, _ := strings.Cut(line, tokenPositions)
			if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n >= 0 {
				f.PositionCount = n
			}
		case strings.Contains(line, tokenFinalPrice):
			_, value, _ := strings.Cut(line, tokenFinalPrice)
			if m := footerPrice.FindStringSubmatch(value); m != nil {
				if d, err := decimal.NewFromString(m[1]); err == nil {
					f.FinalPrice = d
				}
			}
		}
	}
	return f
}
