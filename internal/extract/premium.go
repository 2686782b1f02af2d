package extract

import "strings"

// The simulator prints open premiums unsigned for both sides. For a long
// straddle the premium is paid, so the two amount fields below are shown
// as negative. Nothing else on the line is touched.
var premiumFields = []struct{ prefix, suffix string }{
	{prefix: "| $", suffix: " per barrel"},
	{prefix: "($", suffix: " total)"},
}

// NormalizeLongPremium prefixes a minus sign to every "| $<x> per barrel"
// and "($<x> total)" amount that is not already negative. Applying it to
// its own output returns the same string.
func NormalizeLongPremium(line string) string {
	for _, f := range premiumFields {
		line = negateField(line, f.prefix, f.suffix)
	}
	return line
}

func negateField(line, prefix, suffix string) string {
	var b strings.Builder
	rest := line
	for {
		i := strings.Index(rest, prefix)
		if i < 0 {
			b.WriteString(rest)
			return b.String()
		}
		start := i + len(prefix)
		end := start
		for end < len(rest) && isAmountByte(rest[end]) {
			end++
		}
		b.WriteString(rest[:start])
		if end > start && strings.HasPrefix(rest[end:], suffix) {
			b.WriteByte('-')
		}
		rest = rest[start:]
	}
}

func isAmountByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == ','
}
