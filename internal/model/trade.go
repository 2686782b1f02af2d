package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TradeKind is the lifecycle stage a simulator line reports.
// Keep these values stable; they are the trade_type strings the UI consumes.
type TradeKind string

const (
	TradeOpen  TradeKind = "open"
	TradeClose TradeKind = "close"
	TradeHold  TradeKind = "hold"
)

// Leg identifies which side of the combined book produced a trade.
// The zero value means the output was not tagged.
type Leg string

const (
	LegNone  Leg = ""
	LegShort Leg = "short"
	LegLong  Leg = "long"
)

// ParseLeg maps user input ("short", "LONG", "") onto a Leg.
func ParseLeg(s string) (Leg, bool) {
	switch Leg(strings.ToLower(strings.TrimSpace(s))) {
	case LegNone:
		return LegNone, true
	case LegShort:
		return LegShort, true
	case LegLong:
		return LegLong, true
	default:
		return LegNone, false
	}
}

// Tag is the bracketed prefix added to trade messages, e.g. "[LONG] ".
func (l Leg) Tag() string {
	switch l {
	case LegShort:
		return "[SHORT] "
	case LegLong:
		return "[LONG] "
	default:
		return ""
	}
}

// TradeEvent is one trade lifecycle line extracted from simulator output.
type TradeEvent struct {
	Kind     TradeKind
	DayIndex int

	// RawText is the source line, trimmed, with the leg tag prepended when tagged.
	RawText   string
	SourceLeg Leg

	// PnL is only valid on close events whose realized P&L could be parsed.
	PnL decimal.NullDecimal
}
