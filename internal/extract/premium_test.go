package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLongPremium(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "open line",
			in:   "Day 0 (Mon W0): Price $62.00 | OPENED position 1 at 15:00 | Strikes: Put $59.00 Call $65.00 | $6.13 per barrel ($6131 total)",
			want: "Day 0 (Mon W0): Price $62.00 | OPENED position 1 at 15:00 | Strikes: Put $59.00 Call $65.00 | $-6.13 per barrel ($-6131 total)",
		},
		{
			name: "already negative",
			in:   "Day 0: OPENED position 1 | $-6.13 per barrel ($-6131 total)",
			want: "Day 0: OPENED position 1 | $-6.13 per barrel ($-6131 total)",
		},
		{
			name: "roll suffix kept",
			in:   "-> OPENED position 2 | $5.91 per barrel ($5911 total) (same strikes)",
			want: "-> OPENED position 2 | $-5.91 per barrel ($-5911 total) (same strikes)",
		},
		{
			name: "strike prices untouched",
			in:   "OPENED position 1 | Strikes: Put $59.00 Call $65.00",
			want: "OPENED position 1 | Strikes: Put $59.00 Call $65.00",
		},
		{
			name: "compact combined format untouched",
			in:   "[LONG] Day 0: OPENED position 1 | Strikes: P$59.00 C$65.00 | $6.13 ($6131)",
			want: "[LONG] Day 0: OPENED position 1 | Strikes: P$59.00 C$65.00 | $6.13 ($6131)",
		},
		{
			name: "grouped total",
			in:   "OPENED position 1 | $12.50 per barrel ($12,500 total)",
			want: "OPENED position 1 | $-12.50 per barrel ($-12,500 total)",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeLongPremium(tc.in))
		})
	}
}

func TestNormalizeLongPremiumIdempotent(t *testing.T) {
	lines := []string{
		"Day 0 (Mon W0): Price $62.00 | OPENED position 1 at 15:00 | Strikes: Put $59.00 Call $65.00 | $6.13 per barrel ($6131 total)",
		"  -> OPENED position 2 at 14:00 | $5.91 per barrel ($5911 total)",
		"OPENED position 3 | $-1.00 per barrel ($1000 total)",
		"no premium fields at all",
	}
	for _, line := range lines {
		once := NormalizeLongPremium(line)
		assert.Equal(t, once, NormalizeLongPremium(once), line)
	}
}
