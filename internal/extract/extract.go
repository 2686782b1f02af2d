// Package extract turns simulator log output into structured trade events.
//
// The simulator writes human-oriented text; nothing here treats it as
// trusted. Lines that do not carry a trade marker are dropped, and fields
// that cannot be parsed are left unset on an otherwise valid event.
package extract

import (
	"strings"

	"straddle-backtest/internal/model"
)

const (
	markerOpen  = "OPENED position"
	markerClose = "CLOSED position"
	markerHold  = "Holding pos"
)

// Classify reports the trade kind for a line, first matching marker wins.
func Classify(line string) (model.TradeKind, bool) {
	switch {
	case strings.Contains(line, markerOpen):
		return model.TradeOpen, true
	case strings.Contains(line, markerClose):
		return model.TradeClose, true
	case strings.Contains(line, markerHold):
		return model.TradeHold, true
	default:
		return "", false
	}
}

// Extract scans output line by line and returns the trade events in the
// order they were printed. When leg is set, each message is prefixed with
// the leg tag and long-leg opens get their premiums rendered as outflows.
func Extract(output string, leg model.Leg) []model.TradeEvent {
	var events []model.TradeEvent
	for _, raw := range strings.Split(output, "\n") {
		line := strings.TrimSpace(raw)
		kind, ok := Classify(line)
		if !ok {
			continue
		}

		ev := model.TradeEvent{
			Kind:      kind,
			DayIndex:  ParseDay(line),
			SourceLeg: leg,
		}
		switch kind {
		case model.TradeOpen:
			if leg == model.LegLong {
				line = NormalizeLongPremium(line)
			}
		case model.TradeClose:
			ev.PnL = ParsePnL(line)
		}
		// Output from the combined runner may already carry the tag.
		if !strings.HasPrefix(line, leg.Tag()) {
			line = leg.Tag() + line
		}
		ev.RawText = line
		events = append(events, ev)
	}
	return events
}
