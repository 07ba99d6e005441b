// ABOUTME: Relative time formatting for trade timestamps
// ABOUTME: Converts an event time into a human-readable "X ago" string

package format

import (
	"fmt"
	"time"
)

// Ago describes how long before now the given time was, using the
// largest whole unit: "34 seconds ago", "5 minutes ago", "2 hours ago",
// "3 days ago".
func Ago(t time.Time, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return plural(int(d.Seconds()), "second")
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	default:
		return plural(int(d.Hours()/24), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
