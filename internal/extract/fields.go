package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	dayPattern = regexp.MustCompile(`^Day\s+(\d+)`)
	pnlPattern = regexp.MustCompile(`P&L:\s*\$([-+]?\d[\d,]*)`)
)

// ParseDay reads the leading "Day <n>" token. A line may carry a bracketed
// leg tag ahead of it. Lines without the token (roll continuations such as
// "-> OPENED position ...") report day 0.
func ParseDay(line string) int {
	s := strings.TrimSpace(line)
	if strings.HasPrefix(s, "[") {
		if end := strings.IndexByte(s, ']'); end >= 0 {
			s = strings.TrimSpace(s[end+1:])
		}
	}
	m := dayPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return day
}

// ParsePnL reads the realized "P&L: $<amount>" field of a close line.
// Thousands separators are accepted. The result is invalid when the field
// is missing or malformed, which keeps it out of sums instead of counting
// it as zero.
func ParsePnL(line string) decimal.NullDecimal {
	m := pnlPattern.FindStringSubmatch(line)
	if m == nil {
		return decimal.NullDecimal{}
	}
	return parseAmount(m[1])
}

func parseAmount(s string) decimal.NullDecimal {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
