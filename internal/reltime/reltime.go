// Package reltime formats elapsed time as short human-readable labels
// ("Just now", "5 minutes ago", "Jan 5"). The output is a pure function
// of the two instants, so a stored timestamp always reformats to the
// same label at the same evaluation time.
package reltime

import (
	"fmt"
	"time"
)

// String returns the display label for ts as seen from now.
func String(now, ts time.Time) string {
	seconds := int(now.Sub(ts) / time.Second)
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case seconds < 60:
		return "Just now"
	case minutes < 60:
		return agoLabel(minutes, "minute")
	case hours < 24:
		return agoLabel(hours, "hour")
	case days < 7:
		return agoLabel(days, "day")
	default:
		return ts.Format("Jan 2")
	}
}

func agoLabel(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
